package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aniketraut16/edulike-sub001/internal/model"
	"github.com/aniketraut16/edulike-sub001/internal/services"
)

// registerContentRoutes mounts the navigation bootstrap endpoint. A failed
// dashboard fetch degrades to empty lists rather than an error page: this data
// is presentational and the client re-triggers by reloading.
func registerContentRoutes(g *echo.Group, cs *services.CourseService, logger *zap.Logger) {
	g.GET("/content/home", func(c echo.Context) error {
		dash, err := cs.Dashboard(c.Request().Context())
		if err != nil {
			logger.Error("dashboard fetch failed", zap.Error(err))
			dash = &model.Dashboard{
				Categories: []model.CategoryCourses{},
				TopCourses: []model.Course{},
			}
		}
		return c.JSON(http.StatusOK, dash)
	})
}
