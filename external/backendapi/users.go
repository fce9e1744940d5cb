package backendapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

// ListUsers returns one page of the admin user list, optionally filtered by a
// search query. The backend requires an admin bearer token.
func (c *Client) ListUsers(ctx context.Context, page int, query, bearer string) (*model.UserList, error) {
	if bearer == "" {
		return nil, errors.New("bearer token is required")
	}
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if query != "" {
		q.Set("query", query)
	}
	var out model.UserList
	if err := c.doJSON(ctx, http.MethodGet, "/user/getAllUsers", q, nil, bearer, &out); err != nil {
		return nil, err
	}
	if out.Users == nil {
		out.Users = []model.User{}
	}
	return &out, nil
}
