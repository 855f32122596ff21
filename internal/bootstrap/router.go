package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/college/internal/app/controllers"
	appRoutes "github.com/yigit/college/internal/app/routes"
	appServices "github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/config"
	appMiddleware "github.com/yigit/college/internal/middleware"
)

// Dependencies holds everything the report server needs
type Dependencies struct {
	Services         *appServices.Services
	ReportController *appControllers.ReportController
	Logger           zerolog.Logger
}

// BuildDependencies initializes services and controllers over an open handle
func BuildDependencies(cfg *config.Config, h *Handle, lgr zerolog.Logger) *Dependencies {
	svcs := appServices.NewServices(h.Repos, cfg)

	// Both strategies are served; the configured one answers requests that name none.
	alternate := config.StrategyMemory
	if svcs.Report.Strategy() == config.StrategyMemory {
		alternate = config.StrategyPipeline
	}

	return &Dependencies{
		Services: svcs,
		ReportController: appControllers.NewReportController(
			svcs.Report,
			cfg.Report.Format,
			appServices.NewReportService(h.Repos, alternate),
		),
		Logger: lgr,
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery(lgr))

	appRoutes.SetupRouter(router, deps.ReportController)
	return router
}
