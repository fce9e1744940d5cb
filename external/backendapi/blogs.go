package backendapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type BlogInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Author  string   `json:"author,omitempty"`
	Image   string   `json:"image,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// ListBlogs returns one page of blog posts.
func (c *Client) ListBlogs(ctx context.Context, page int) (*model.BlogList, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	var out model.BlogList
	if err := c.doJSON(ctx, http.MethodGet, "/blogs", q, nil, "", &out); err != nil {
		return nil, err
	}
	if out.Blogs == nil {
		out.Blogs = []model.Blog{}
	}
	return &out, nil
}

// GetBlog fetches one post by id.
func (c *Client) GetBlog(ctx context.Context, blogID string) (*model.Blog, error) {
	var out model.Blog
	if err := c.doJSON(ctx, http.MethodGet, "/blogs/"+blogID, nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlog creates a post; requires the admin bearer token.
func (c *Client) CreateBlog(ctx context.Context, in BlogInput, bearer string) (*model.Blog, error) {
	var out model.Blog
	if err := c.doJSON(ctx, http.MethodPost, "/blogs", nil, in, bearer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBlog replaces a post's editable fields.
func (c *Client) UpdateBlog(ctx context.Context, blogID string, in BlogInput, bearer string) error {
	return c.doJSON(ctx, http.MethodPut, "/blogs/"+blogID, nil, in, bearer, nil)
}

// DeleteBlog removes a post.
func (c *Client) DeleteBlog(ctx context.Context, blogID string, bearer string) error {
	return c.doJSON(ctx, http.MethodDelete, "/blogs/"+blogID, nil, nil, bearer, nil)
}
