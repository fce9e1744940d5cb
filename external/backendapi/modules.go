package backendapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type ModuleInput struct {
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	Position int    `json:"position,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// ListModules returns the modules of one course, in position order.
func (c *Client) ListModules(ctx context.Context, courseID string) ([]model.Module, error) {
	q := url.Values{}
	q.Set("courseId", courseID)
	var out []model.Module
	if err := c.doJSON(ctx, http.MethodGet, "/modules", q, nil, "", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Module{}
	}
	return out, nil
}

// CreateModule adds a module to a course; admin only.
func (c *Client) CreateModule(ctx context.Context, in ModuleInput, bearer string) (*model.Module, error) {
	var out model.Module
	if err := c.doJSON(ctx, http.MethodPost, "/modules", nil, in, bearer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateModule edits title, position or duration.
func (c *Client) UpdateModule(ctx context.Context, moduleID string, in ModuleInput, bearer string) error {
	return c.doJSON(ctx, http.MethodPut, "/modules/"+moduleID, nil, in, bearer, nil)
}

// DeleteModule removes a module and its materials.
func (c *Client) DeleteModule(ctx context.Context, moduleID string, bearer string) error {
	return c.doJSON(ctx, http.MethodDelete, "/modules/"+moduleID, nil, nil, bearer, nil)
}
