package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/mononotes/mononotes/internal/handler/http"
	redisclient "github.com/mononotes/mononotes/internal/infrastructure/cache"
	"github.com/mononotes/mononotes/internal/infrastructure/config"
	"github.com/mononotes/mononotes/internal/infrastructure/deploy"
	"github.com/mononotes/mononotes/internal/infrastructure/github"
	"github.com/mononotes/mononotes/internal/infrastructure/localmirror"
	"github.com/mononotes/mononotes/internal/infrastructure/logger"
	"github.com/mononotes/mononotes/internal/infrastructure/memcache"
	"github.com/mononotes/mononotes/internal/infrastructure/store"
	"github.com/mononotes/mononotes/internal/infrastructure/validator"
	"github.com/mononotes/mononotes/internal/usecase"

	"github.com/mononotes/mononotes/internal/domain/contract"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Remote content store; absence degrades reads to the local mirror
	// and makes writes fail with a configuration error.
	var fetcher contract.IContentFetcher
	if appConfig.RemoteConfigured() {
		client, err := github.NewClient(github.Config{
			Token:      appConfig.GitHubToken,
			Repo:       appConfig.Repo,
			ContentDir: appConfig.ContentDir,
			Timeout:    appConfig.RemoteTimeout,
		})
		if err != nil {
			appLogger.Fatalf("invalid remote configuration: %v", err)
		}
		fetcher = client
	} else {
		appLogger.Warningf("GITHUB_TOKEN or REPO not set, serving local content only")
	}

	// Dependency Injection: content pipeline
	mirror := localmirror.New(appConfig.LocalContentDir)
	postCache := memcache.New(appConfig.CacheTTL)
	contentUsecase := usecase.NewContentUseCase(fetcher, mirror, postCache, appLogger, appConfig.Branch, appConfig.PostsPerPage)

	var notifier contract.IDeployNotifier
	if appConfig.DeployHookURL != "" {
		notifier = deploy.NewWebhookNotifier(appConfig.DeployHookURL, appConfig.RemoteTimeout)
	}
	publishUsecase := usecase.NewPublishUseCase(fetcher, contentUsecase, notifier, appLogger, appConfig.Branch, appConfig.ContentDir)

	// Optional Dependency Injection: Redis view counters
	var viewStore contract.IViewStore
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			viewStore = store.NewViewStore(rdb)
		}
	}
	viewUsecase := usecase.NewViewUseCase(viewStore, appLogger, appConfig.ViewThrottle)

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(contentUsecase, publishUsecase, viewUsecase, appLogger, appConfig.AdminJWTSecret)
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
