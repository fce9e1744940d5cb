package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type MaterialService struct {
	API *backendapi.Client
}

func NewMaterialService(api *backendapi.Client) *MaterialService {
	return &MaterialService{API: api}
}

func (s *MaterialService) ListByModule(ctx context.Context, moduleID string) ([]model.Material, error) {
	if moduleID == "" {
		return nil, errors.New("module id is required")
	}
	return s.API.ListMaterials(ctx, moduleID)
}

func (s *MaterialService) Create(ctx context.Context, in backendapi.MaterialInput, bearer string) (*model.Material, error) {
	in.Title = strings.TrimSpace(in.Title)
	if verr := requireFields(map[string]string{"title": in.Title, "module_id": in.ModuleID, "type": in.Type}); verr != nil {
		return nil, verr
	}
	// link materials carry their URL inline; file materials get one on upload
	if in.Type == "link" && strings.TrimSpace(in.URL) == "" {
		return nil, &ValidationError{Fields: map[string]string{"url": "url is required for link materials"}}
	}
	return s.API.CreateMaterial(ctx, in, bearer)
}

func (s *MaterialService) Update(ctx context.Context, id string, in backendapi.MaterialInput, bearer string) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return errors.New("material title is required")
	}
	return s.API.UpdateMaterial(ctx, id, in, bearer)
}

func (s *MaterialService) Delete(ctx context.Context, id, bearer string) error {
	return s.API.DeleteMaterial(ctx, id, bearer)
}

func (s *MaterialService) Upload(ctx context.Context, id, filename string, file io.Reader, bearer string) (*model.Material, error) {
	if filename == "" {
		return nil, errors.New("filename is required")
	}
	return s.API.UploadMaterialFile(ctx, id, filename, file, bearer)
}
