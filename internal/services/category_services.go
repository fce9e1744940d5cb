package services

import (
	"context"
	"errors"
	"strings"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type CategoryService struct {
	API *backendapi.Client
}

func NewCategoryService(api *backendapi.Client) *CategoryService {
	return &CategoryService{API: api}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.API.ListCategories(ctx)
}

// ListActive filters deactivated categories out of the admin list, for the
// customer-facing navigation.
func (s *CategoryService) ListActive(ctx context.Context) ([]model.Category, error) {
	all, err := s.API.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]model.Category, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (s *CategoryService) Create(ctx context.Context, name, description, bearer string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}
	return s.API.CreateCategory(ctx, backendapi.CategoryInput{Name: name, Description: description}, bearer)
}

func (s *CategoryService) Update(ctx context.Context, id, name, description, bearer string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("category name is required")
	}
	return s.API.UpdateCategory(ctx, id, backendapi.CategoryInput{Name: name, Description: description}, bearer)
}

// Deactivate soft-deletes a category.
func (s *CategoryService) Deactivate(ctx context.Context, id, bearer string) error {
	return s.API.DeactivateCategory(ctx, id, bearer)
}
