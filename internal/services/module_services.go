package services

import (
	"context"
	"errors"
	"strings"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type ModuleService struct {
	API *backendapi.Client
}

func NewModuleService(api *backendapi.Client) *ModuleService {
	return &ModuleService{API: api}
}

func (s *ModuleService) ListByCourse(ctx context.Context, courseID string) ([]model.Module, error) {
	if courseID == "" {
		return nil, errors.New("course id is required")
	}
	return s.API.ListModules(ctx, courseID)
}

func (s *ModuleService) Create(ctx context.Context, in backendapi.ModuleInput, bearer string) (*model.Module, error) {
	in.Title = strings.TrimSpace(in.Title)
	if verr := requireFields(map[string]string{"title": in.Title, "course_id": in.CourseID}); verr != nil {
		return nil, verr
	}
	return s.API.CreateModule(ctx, in, bearer)
}

func (s *ModuleService) Update(ctx context.Context, id string, in backendapi.ModuleInput, bearer string) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return errors.New("module title is required")
	}
	return s.API.UpdateModule(ctx, id, in, bearer)
}

func (s *ModuleService) Delete(ctx context.Context, id, bearer string) error {
	return s.API.DeleteModule(ctx, id, bearer)
}
