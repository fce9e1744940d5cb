package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/middleware"
	"github.com/aniketraut16/edulike-sub001/internal/services"
)

type materialRequest struct {
	ModuleID string `json:"module_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"`
	Position int    `json:"position,omitempty"`
}

func (r materialRequest) input() backendapi.MaterialInput {
	return backendapi.MaterialInput{
		ModuleID: r.ModuleID,
		Title:    r.Title,
		Type:     r.Type,
		URL:      r.URL,
		Position: r.Position,
	}
}

// registerMaterialRoutes mounts module-material endpoints, including the file
// upload sub-resource (multipart passthrough to the backend).
func registerMaterialRoutes(g *echo.Group, ms *services.MaterialService) {
	g.GET("/materials", func(c echo.Context) error {
		list, err := ms.ListByModule(c.Request().Context(), c.QueryParam("moduleId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p := g.Group("/materials")
	p.Use(middleware.JWTMiddleware())

	p.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(materialRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		mat, err := ms.Create(c.Request().Context(), req.input(), middleware.GetBearer(c))
		if err != nil {
			return errorJSON(c, http.StatusBadGateway, err)
		}
		return c.JSON(http.StatusCreated, mat)
	}))

	p.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(materialRequest)
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

	p.POST("/:id/upload", middleware.AdminOnly(func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
		}
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read file"})
		}
		defer src.Close()

		mat, err := ms.Upload(c.Request().Context(), c.Param("id"), fh.Filename, src, middleware.GetBearer(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, mat)
	}))
}
