package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mononotes/mononotes/internal/handler/http/middleware"
	"github.com/mononotes/mononotes/internal/usecase"
	usecasecontract "github.com/mononotes/mononotes/internal/usecase/contract"
)

type Router struct {
	postHandler  *PostHandler
	viewHandler  *ViewHandler
	adminHandler *AdminHandler
	logger       usecasecontract.IAppLogger
	adminSecret  string
}

func NewRouter(contentUsecase usecase.IContentUseCase, publishUsecase usecase.IPublishUseCase, viewUsecase usecase.IViewUseCase, logger usecasecontract.IAppLogger, adminSecret string) *Router {
	return &Router{
		postHandler:  NewPostHandler(contentUsecase, viewUsecase),
		viewHandler:  NewViewHandler(viewUsecase),
		adminHandler: NewAdminHandler(contentUsecase, publishUsecase),
		logger:       logger,
		adminSecret:  adminSecret,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(r.logger))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public post routes
	posts := v1.Group("/posts")
	{
		posts.GET("", r.postHandler.GetPostsHandler)
		posts.GET("/:slug", r.postHandler.GetPostDetailHandler)
	}

	// Public view counter routes
	views := v1.Group("/views")
	{
		views.GET("/:slug", r.viewHandler.GetViewCountHandler)
		views.POST("/:slug", r.viewHandler.IncreaseViewCountHandler)
	}

	// Protected admin routes (authorization required)
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(r.adminSecret))
	{
		admin.GET("/posts", r.adminHandler.ListPostsHandler)
		admin.POST("/posts", r.adminHandler.CommitPostHandler)
		admin.POST("/posts/upload", r.adminHandler.UploadPostHandler)
		admin.DELETE("/posts/:slug", r.adminHandler.DeletePostHandler)
	}
}
