package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/etec-portal-api/api/swagger"
	"github.com/noah-isme/etec-portal-api/internal/handler"
	"github.com/noah-isme/etec-portal-api/internal/middleware"
	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/repository"
	"github.com/noah-isme/etec-portal-api/internal/service"
	"github.com/noah-isme/etec-portal-api/internal/store"
	"github.com/noah-isme/etec-portal-api/pkg/cache"
	"github.com/noah-isme/etec-portal-api/pkg/config"
	"github.com/noah-isme/etec-portal-api/pkg/database"
	"github.com/noah-isme/etec-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/etec-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/etec-portal-api/pkg/middleware/requestid"
)

// @title E-Tec Portal API
// @version 0.1.0
// @description Demo portal backend: accounts, marks, events and session
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	backing, err := newStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to open store", "driver", cfg.Store.Driver, "error", err)
	}
	gateway := store.NewGateway(store.NewInstrumentedStore(backing, metricsSvc))

	accounts := repository.NewAccountRepository(gateway)
	marks := repository.NewMarkRepository(gateway)
	events := repository.NewEventRepository(gateway)
	inquiries := repository.NewInquiryRepository(gateway)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := accounts.SeedAdminIfMissing(seedCtx, models.Account{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}); err != nil {
		logr.Sugar().Fatalw("failed to seed admin account", "error", err)
	}

	validate := service.NewValidator()

	authSvc := service.NewAuthService(accounts, gateway, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	accountSvc := service.NewAccountService(accounts, validate, logr)
	markSvc := service.NewMarkService(marks, validate, logr)
	eventSvc := service.NewEventService(events, validate, logr)
	viewSvc := service.NewViewService(eventSvc, markSvc, accountSvc)
	exportSvc := service.NewExportService(viewSvc, logr)
	contactSvc := service.NewContactService(inquiries, validate, logr)

	authH := handler.NewAuthHandler(authSvc)
	accountH := handler.NewAccountHandler(accountSvc)
	markH := handler.NewMarkHandler(markSvc, viewSvc)
	eventH := handler.NewEventHandler(eventSvc, viewSvc)
	dashboardH := handler.NewDashboardHandler(authSvc, viewSvc)
	exportH := handler.NewExportHandler(exportSvc)
	contactH := handler.NewContactHandler(contactSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/signup", accountH.Signup)
		api.POST("/auth/login/student", authH.LoginStudent)
		api.POST("/auth/login/admin", authH.LoginAdmin)
		api.GET("/events", eventH.List)
		api.POST("/contact", contactH.Submit)
		api.POST("/newsletter", contactH.Subscribe)
	}

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))
	{
		authed.POST("/auth/logout", authH.Logout)
		authed.GET("/auth/me", authH.Me)
		authed.GET("/dashboard", dashboardH.Dashboard)
		authed.GET("/marks", markH.List)
		authed.GET("/exports/marks", exportH.Marks)
	}

	admin := authed.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		admin.POST("/marks", markH.Record)
		admin.POST("/events", eventH.Create)
		admin.GET("/students", accountH.Students)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newStore opens the configured key-value backend. The file driver is the
// default and needs no external services.
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(db)
	default:
		return store.NewFileStore(cfg.Store.DataDir)
	}
}
