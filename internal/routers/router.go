package routers

import (
	"time"

	"github.com/haierkeys/note-recall-service/internal/app"
	"github.com/haierkeys/note-recall-service/internal/middleware"
	"github.com/haierkeys/note-recall-service/internal/routers/api_router"
	"github.com/haierkeys/note-recall-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/auth",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter assembles the public HTTP router: middleware chain, public auth
// routes and token-protected resource routes.
// NewRouter 组装对外 HTTP 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()
	r.HandleMethodNotAllowed = true

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo(app.Name, appContainer.Version()))
		api.Use(gin.Logger())
		api.Use(middleware.TraceMiddlewareWithConfig(middleware.TracerConfig{
			Enabled: cfg.Tracer.Enabled,
			Header:  cfg.Tracer.Header,
		})) // Trace ID 中间件
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		sessionHandler := api_router.NewSessionHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		tagHandler := api_router.NewTagHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.POST("/auth/signup", userHandler.Signup)
		api.POST("/auth/login", userHandler.Login)

		// 无需认证的状态接口
		api.GET("/health", healthHandler.Health)
		api.GET("/version", healthHandler.ServerVersion)

		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).GET("/user/info", userHandler.UserInfo)

		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).GET("/sessions", sessionHandler.List)
		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).POST("/sessions", sessionHandler.Create)
		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).PATCH("/sessions/:id", sessionHandler.Rename)
		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).DELETE("/sessions/:id", sessionHandler.Delete)

		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).GET("/notes", noteHandler.List)
		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).POST("/notes", noteHandler.Create)
		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).PUT("/notes/:id", noteHandler.Update)
		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).DELETE("/notes/:id", noteHandler.Delete)

		api.Use(middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)).GET("/tags", tagHandler.List)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())
	r.NoMethod(middleware.MethodNotAllow())

	return r
}
