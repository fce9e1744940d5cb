package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

type MaterialInput struct {
	ModuleID string `json:"module_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"`
	Position int    `json:"position,omitempty"`
}

// ListMaterials returns the materials of one module.
func (c *Client) ListMaterials(ctx context.Context, moduleID string) ([]model.Material, error) {
	q := url.Values{}
	q.Set("moduleId", moduleID)
	var out []model.Material
	if err := c.doJSON(ctx, http.MethodGet, "/materials", q, nil, "", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Material{}
	}
	return out, nil
}

// CreateMaterial registers a material; admin only. File-backed materials get
// their URL from UploadMaterialFile afterwards.
func (c *Client) CreateMaterial(ctx context.Context, in MaterialInput, bearer string) (*model.Material, error) {
	var out model.Material
	if err := c.doJSON(ctx, http.MethodPost, "/materials", nil, in, bearer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMaterial edits a material's metadata.
func (c *Client) UpdateMaterial(ctx context.Context, materialID string, in MaterialInput, bearer string) error {
	return c.doJSON(ctx, http.MethodPut, "/materials/"+materialID, nil, in, bearer, nil)
}

// DeleteMaterial removes a material.
func (c *Client) DeleteMaterial(ctx context.Context, materialID string, bearer string) error {
	return c.doJSON(ctx, http.MethodDelete, "/materials/"+materialID, nil, nil, bearer, nil)
}

// UploadMaterialFile streams a file to the upload sub-resource and returns the
// stored material with its final URL.
func (c *Client) UploadMaterialFile(ctx context.Context, materialID, filename string, file io.Reader, bearer string) (*model.Material, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/materials/"+materialID+"/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend upload %s: %s", materialID, resp.Status)
	}

	var out model.Material
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
