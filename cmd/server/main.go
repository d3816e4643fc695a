package main

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"beetguru/config"
	"beetguru/database"
	"beetguru/pkg/middleware"
	"beetguru/router"

	// Auth
	authCtrlImp "beetguru/pkg/auth/controllerImp"
	authRepoImp "beetguru/pkg/auth/repositoryImp"
	authSvcImp "beetguru/pkg/auth/serviceImp"

	// Locations
	locCtrlImp "beetguru/pkg/location/controllerImp"
	locRepoImp "beetguru/pkg/location/repositoryImp"
	locSvcImp "beetguru/pkg/location/serviceImp"

	// Cultivars
	"beetguru/pkg/cultivar/catalog"
	cultCtrlImp "beetguru/pkg/cultivar/controllerImp"
	cultRepoImp "beetguru/pkg/cultivar/repositoryImp"

	// Assessments
	assessCtrlImp "beetguru/pkg/assessment/controllerImp"
	assessRepoImp "beetguru/pkg/assessment/repositoryImp"
	assessSvcImp "beetguru/pkg/assessment/serviceImp"

	// Reports
	repCtrlImp "beetguru/pkg/report/controllerImp"
	repRepoImp "beetguru/pkg/report/repositoryImp"
	repSvcImp "beetguru/pkg/report/serviceImp"

	// Customers
	custCtrlImp "beetguru/pkg/customer/controllerImp"
	custRepoImp "beetguru/pkg/customer/repositoryImp"

	// Advisory (mock fallback)
	"beetguru/pkg/advisory"

	// Shell + health
	healthCtrlImp "beetguru/pkg/health/controllerImp"
	sessCtrlImp "beetguru/pkg/shell/controllerImp"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// 1) Config
	cfg := config.Load(logger)

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)
	if cfg.SeedDemo {
		if err := database.SeedDemo(db); err != nil {
			logger.Warn("seed", zap.Error(err))
		}
	}

	// 3) Cultivar catalog
	cultRepo := cultRepoImp.New(db)
	if rows, err := catalog.LoadCSV(cfg.CultivarCSV); err != nil {
		logger.Info("cultivar catalog not loaded", zap.Error(err))
	} else if n, err := catalog.Import(cultRepo, rows); err != nil {
		logger.Warn("cultivar import", zap.Error(err))
	} else if n > 0 {
		logger.Info("cultivar catalog imported", zap.Int("rows", n))
	}

	// 4) Advisory client (mock fallback)
	var advisor advisory.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		advisor = advisory.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		advisor = advisory.NewMock()
	}

	// 5) Repos
	locRepo := locRepoImp.New(db)
	assessRepo := assessRepoImp.New(db)
	repRepo := repRepoImp.New(db)
	custRepo := custRepoImp.New(db)
	authRepo := authRepoImp.New(db)

	// 6) Services
	locSvc := locSvcImp.New(locRepo, assessRepo)
	repSvc := repSvcImp.New(repRepo, assessRepo, locRepo, cultRepo, advisor)
	assessSvc := assessSvcImp.New(assessRepo, locRepo, cultRepo, repSvc)
	authSvc := authSvcImp.New(authRepo, cfg.JWTSecret)

	// 7) Controllers
	ctrls := router.Controllers{
		Location:   locCtrlImp.New(locSvc),
		Cultivar:   cultCtrlImp.New(cultRepo, cfg.CatalogDomains),
		Assessment: assessCtrlImp.New(assessSvc),
		Report:     repCtrlImp.New(repSvc),
		Customer:   custCtrlImp.New(custRepo),
		Auth:       authCtrlImp.New(authSvc),
		Session:    sessCtrlImp.New(db),
		Health:     healthCtrlImp.NewHealthCtrl(db),
	}

	// 8) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())

	authMW := middleware.JWT(cfg.JWTSecret)
	if cfg.DevLogin {
		logger.Warn("dev login enabled, tokens are not checked")
		authMW = middleware.DevLogin()
	}
	r := router.New(e, ctrls, authMW)

	// 9) Start
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
