package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/aniketraut16/edulike-sub001/external/backendapi"
	"github.com/aniketraut16/edulike-sub001/internal/cache"
	"github.com/aniketraut16/edulike-sub001/internal/config"
	"github.com/aniketraut16/edulike-sub001/internal/middleware"
	"github.com/aniketraut16/edulike-sub001/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	middleware.Init(cfg.JWTSecret)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ======================
	// EXTERNALS
	// ======================
	api, err := backendapi.New(cfg.BackendAPIURL)
	if err != nil {
		logger.Fatal("backend client", zap.Error(err))
	}

	var dashCache *cache.Dashboard
	if cfg.RedisAddr != "" {
		rdb := cache.New(cfg.RedisAddr)
		defer rdb.Close()
		dashCache = cache.NewDashboard(rdb, logger)
	} else {
		dashCache = cache.NewDashboard(nil, logger)
	}

	// ======================
	// SERVICES
	// ======================
	courseSvc := services.NewCourseService(api, dashCache)
	blogSvc := services.NewBlogService(api)
	categorySvc := services.NewCategoryService(api)
	moduleSvc := services.NewModuleService(api)
	materialSvc := services.NewMaterialService(api)
	userSvc := services.NewUserService(api)
	subSvc := services.NewSubscriptionService(api)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	app := e.Group("/edulike")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerContentRoutes(app, courseSvc, logger)
	registerCourseRoutes(app, courseSvc)
	registerCartRoutes(app, api, cfg.CartCookieName, logger)
	registerBlogRoutes(app, blogSvc)
	registerCategoryRoutes(app, categorySvc)
	registerModuleRoutes(app, moduleSvc)
	registerMaterialRoutes(app, materialSvc)
	registerUserRoutes(app, userSvc)
	registerSubscriptionRoutes(app, subSvc)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
