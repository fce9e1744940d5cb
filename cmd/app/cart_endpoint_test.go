package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/model"
)

// newCartApp wires the cart routes against a stand-in backend.
func newCartApp(t *testing.T, backend http.HandlerFunc) *echo.Echo {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	api, err := backendapi.New(srv.URL)
	require.NoError(t, err)

	e := echo.New()
	registerCartRoutes(e.Group(""), api, "edulike_cart_token", zap.NewNop())
	return e
}

func emptyCartBackend(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/cart/items" {
		json.NewEncoder(w).Encode(model.CartItemsResponse{Items: []model.CartItem{}})
		return
	}
	w.WriteHeader(http.StatusOK)
}

func TestAddItemRejectsNegativeQuantity(t *testing.T) {
	e := newCartApp(t, emptyCartBackend)

	req := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"course_id":"c1","quantity":-1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItemBackendOutageIsBadGateway(t *testing.T) {
	e := newCartApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/cart/add" {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"error": "cart service unavailable"})
			return
		}
		emptyCartBackend(w, r)
	})

	req := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"course_id":"c1","quantity":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetCartSetsAnonymousCookie(t *testing.T) {
	e := newCartApp(t, emptyCartBackend)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "edulike_cart_token", cookies[0].Name)
	assert.True(t, strings.HasPrefix(cookies[0].Value, "guest_"))
}
