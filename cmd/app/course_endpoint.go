package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aniketraut16/edulike-sub001/internal/services"
)

// registerCourseRoutes mounts the public catalog endpoints.
//
//	GET /courses       -> list (?page=&category=&query=)
//	GET /courses/:id   -> get
func registerCourseRoutes(g *echo.Group, cs *services.CourseService) {
	g.GET("/courses", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		list, err := cs.List(c.Request().Context(), page, c.QueryParam("category"), c.QueryParam("query"))
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/courses/:id", func(c echo.Context) error {
		course, err := cs.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
		}
		return c.JSON(http.StatusOK, course)
	})
}
