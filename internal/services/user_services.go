package services

import (
	"context"
	"strings"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type UserService struct {
	API *backendapi.Client
}

func NewUserService(api *backendapi.Client) *UserService {
	return &UserService{API: api}
}

// List returns one page of the admin user list. The query is trimmed here so
// the debounced search box can send raw input.
func (s *UserService) List(ctx context.Context, page int, query, bearer string) (*model.UserList, error) {
	if page < 1 {
		page = 1
	}
	return s.API.ListUsers(ctx, page, strings.TrimSpace(query), bearer)
}
