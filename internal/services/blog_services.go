package services

import (
	"context"
	"strings"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type BlogService struct {
	API *backendapi.Client
}

func NewBlogService(api *backendapi.Client) *BlogService {
	return &BlogService{API: api}
}

func (s *BlogService) List(ctx context.Context, page int) (*model.BlogList, error) {
	if page < 1 {
		page = 1
	}
	return s.API.ListBlogs(ctx, page)
}

func (s *BlogService) Get(ctx context.Context, id string) (*model.Blog, error) {
	return s.API.GetBlog(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, in backendapi.BlogInput, bearer string) (*model.Blog, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if verr := requireFields(map[string]string{"title": in.Title, "content": in.Content}); verr != nil {
		return nil, verr
	}
	return s.API.CreateBlog(ctx, in, bearer)
}

func (s *BlogService) Update(ctx context.Context, id string, in backendapi.BlogInput, bearer string) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if verr := requireFields(map[string]string{"title": in.Title, "content": in.Content}); verr != nil {
		return verr
	}
	return s.API.UpdateBlog(ctx, id, in, bearer)
}

func (s *BlogService) Delete(ctx context.Context, id string, bearer string) error {
	return s.API.DeleteBlog(ctx, id, bearer)
}
