package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aniketraut16/edulike-sub001/internal/middleware"
	"github.com/aniketraut16/edulike-sub001/internal/services"
)

// registerSubscriptionRoutes mounts the authenticated subscription views:
// the user's subscriptions and the courses each one grants.
func registerSubscriptionRoutes(g *echo.Group, ss *services.SubscriptionService) {
	p := g.Group("/subscriptions")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		list, err := ss.ListForUser(c.Request().Context(), middleware.GetBearer(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p.GET("/:id/courses", func(c echo.Context) error {
		list, err := ss.Courses(c.Request().Context(), c.Param("id"), middleware.GetBearer(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})
}
