package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniketraut16/edulike-sub001/internal/model"
)

func TestCategoryListActiveFiltersDeactivated(t *testing.T) {
	api, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Category{
			{CategoryID: "1", Name: "Data", IsActive: true},
			{CategoryID: "2", Name: "Legacy", IsActive: false},
			{CategoryID: "3", Name: "Cloud", IsActive: true},
		})
	})
	svc := NewCategoryService(api)

	active, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Data", active[0].Name)
	assert.Equal(t, "Cloud", active[1].Name)
}

func TestCategoryCreateRequiresName(t *testing.T) {
	api, calls := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {})
	svc := NewCategoryService(api)

	_, err := svc.Create(context.Background(), "   ", "", "tok")

	assert.EqualError(t, err, "category name is required")
	assert.Equal(t, 0, *calls)
}

func TestCategoryDeactivateUsesDelete(t *testing.T) {
	api, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/categories/42", r.URL.Path)
	})
	svc := NewCategoryService(api)

	assert.NoError(t, svc.Deactivate(context.Background(), "42", "tok"))
}
