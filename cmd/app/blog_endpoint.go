package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/middleware"
	"github.com/aniketraut16/edulike-sub001/internal/services"
)

type blogRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Author  string   `json:"author,omitempty"`
	Image   string   `json:"image,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

func (r blogRequest) input() backendapi.BlogInput {
	return backendapi.BlogInput{
		Title:   r.Title,
		Content: r.Content,
		Author:  r.Author,
		Image:   r.Image,
		Tags:    r.Tags,
	}
}

// registerBlogRoutes mounts blog endpoints.
// Public: GET /blogs (?page=), GET /blogs/:id
// Admin:  POST /blogs, PUT /blogs/:id, DELETE /blogs/:id
func registerBlogRoutes(g *echo.Group, bs *services.BlogService) {
	g.GET("/blogs", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		list, err := bs.List(c.Request().Context(), page)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/blogs/:id", func(c echo.Context) error {
		blog, err := bs.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "blog not found"})
		}
		return c.JSON(http.StatusOK, blog)
	})

	p := g.Group("/blogs")
	p.Use(middleware.JWTMiddleware())

	p.POST("", middleware.AdminOnly(func(c echo.Context) error {
		req := new(blogRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		blog, err := bs.Create(c.Request().Context(), req.input(), middleware.GetBearer(c))
		if err != nil {
			return errorJSON(c, http.StatusBadGateway, err)
		}
		return c.JSON(http.StatusCreated, blog)
	}))

	p.PUT("/:id", middleware.AdminOnly(func(c echo.Context) error {
		req := new(blogRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := bs.Update(c.Request().Context(), c.Param("id"), req.input(), middleware.GetBearer(c)); err != nil {
			return errorJSON(c, http.StatusBadGateway, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	}))

	p.DELETE("/:id", middleware.AdminOnly(func(c echo.Context) error {
		if err := bs.Delete(c.Request().Context(), c.Param("id"), middleware.GetBearer(c)); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	}))
}
