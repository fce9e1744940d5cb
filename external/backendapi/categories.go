package backendapi

import (
	"context"
	"net/http"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListCategories returns all categories, active and inactive.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, nil, "", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Category{}
	}
	return out, nil
}

// CreateCategory creates a category; admin only.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput, bearer string) (*model.Category, error) {
	var out model.Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", nil, in, bearer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory renames or re-describes a category.
func (c *Client) UpdateCategory(ctx context.Context, categoryID string, in CategoryInput, bearer string) error {
	return c.doJSON(ctx, http.MethodPut, "/categories/"+categoryID, nil, in, bearer, nil)
}

// DeactivateCategory soft-deletes: the category stays referenced by existing
// courses but drops out of navigation.
func (c *Client) DeactivateCategory(ctx context.Context, categoryID string, bearer string) error {
	return c.doJSON(ctx, http.MethodDelete, "/categories/"+categoryID, nil, nil, bearer, nil)
}
