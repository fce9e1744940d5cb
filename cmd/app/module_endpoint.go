package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/middleware"
	"github.com/aniketraut16/edulike-sub001/internal/services"
)

type moduleRequest struct {
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	Position int    `json:"position,omitempty"`
	Duration string `json:"duration,omitempty"`
}

func (r moduleRequest) input() backendapi.ModuleInput {
	return backendapi.ModuleInput{
		CourseID: r.CourseID,
		Title:    r.Title,
		Position: r.Position,
		Duration: r.Duration,
	}
}

// registerModuleRoutes mounts course-module endpoints.
// Public: GET /modules?courseId=   Admin: POST/PUT/DELETE
func registerModuleRoutes(g *echo.Group, ms *services.ModuleService) {
	g.GET("/modules", func(c echo.Context) error {
		list, err := ms.ListByCourse(c.Request().Context(), c.QueryParam("courseId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p := g.Group("/modules")
	p.Use(middleware.JWTMiddleware())

	p.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(moduleRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		mod, err := ms.Create(c.Request().Context(), req.input(), middleware.GetBearer(c))
		if err != nil {
			return errorJSON(c, http.StatusBadGateway, err)
		}
		return c.JSON(http.StatusCreated, mod)
	}))

	p.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(moduleRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ms.Update(c.Request().Context(), c.Param("id"), req.input(), middleware.GetBearer(c)); err != nil {
			return errorJSON(c, http.StatusBadGateway, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	}))

	p.DELETE("/:id", middleware.AdminOnly(func(c echo.Context) error {
		if err := ms.Delete(c.Request().Context(), c.Param("id"), middleware.GetBearer(c)); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	}))
}
