package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aniketraut16/edulike-sub001/internal/middleware"
	"github.com/aniketraut16/edulike-sub001/internal/services"
)

// registerUserRoutes mounts the admin user list: paginated, searchable, and
// bearer-token protected end to end (the token is forwarded upstream).
func registerUserRoutes(g *echo.Group, us *services.UserService) {
	p := g.Group("/users")
	p.Use(middleware.JWTMiddleware())

	p.GET("", middleware.AdminOnly(func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		list, err := us.List(c.Request().Context(), page, c.QueryParam("query"), middleware.GetBearer(c))
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}))
}
