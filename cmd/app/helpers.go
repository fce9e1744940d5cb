package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aniketraut16/edulike-sub001/internal/services"
)

// cookieTokenStore backs the anonymous cart token with a long-lived cookie.
// The key argument is ignored: one fixed cookie holds the one token.
type cookieTokenStore struct {
	c    echo.Context
	name string
}

func (s cookieTokenStore) Get(string) (string, bool) {
	ck, err := s.c.Cookie(s.name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	return ck.Value, true
}

func (s cookieTokenStore) Set(_ string, value string) {
	s.c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
	})
}

// errorJSON maps service errors onto the JSON error shape; validation errors
// carry their field map so the form can report inline.
func errorJSON(c echo.Context, code int, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}
	return c.JSON(code, map[string]string{"error": err.Error()})
}
