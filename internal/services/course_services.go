package services

import (
	"context"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/cache"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type CourseService struct {
	API   *backendapi.Client
	Cache *cache.Dashboard
}

func NewCourseService(api *backendapi.Client, dc *cache.Dashboard) *CourseService {
	return &CourseService{API: api, Cache: dc}
}

// Dashboard returns the navigation aggregate, served from the cache when warm.
func (s *CourseService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if dash, ok := s.Cache.Get(ctx); ok {
		return dash, nil
	}
	dash, err := s.API.GetDashboard(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, dash)
	return dash, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*model.Course, error) {
	return s.API.GetCourse(ctx, id)
}

func (s *CourseService) List(ctx context.Context, page int, category, query string) (*model.CourseList, error) {
	if page < 1 {
		page = 1
	}
	return s.API.ListCourses(ctx, page, category, query)
}
