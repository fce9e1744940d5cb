package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aniketraut16/edulike-sub001/internal/middleware"
	"github.com/aniketraut16/edulike-sub001/internal/services"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// registerCategoryRoutes mounts category endpoints.
// Public: GET /categories (active only), admin: full list + CUD, where
// DELETE deactivates rather than destroying.
func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService) {
	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.ListActive(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p := g.Group("/categories")
	p.Use(middleware.JWTMiddleware())

	p.GET("/all", middleware.AdminOnly(func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}))

	p.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cat, err := cs.Create(c.Request().Context(), req.Name, req.Description, middleware.GetBearer(c))
		if err != nil {
			return errorJSON(c, http.StatusBadGateway, err)
		}
		return c.JSON(http.StatusCreated, cat)
	}))

	p.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.Update(c.Request().Context(), c.Param("id"), req.Name, req.Description, middleware.GetBearer(c)); err != nil {
			return errorJSON(c, http.StatusBadGateway, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	}))

	p.DELETE("/:id", middleware.AdminOnly(func(c echo.Context) error {
		if err := cs.Deactivate(c.Request().Context(), c.Param("id"), middleware.GetBearer(c)); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deactivated"})
	}))
}
