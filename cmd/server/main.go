package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/githoney/bounty-bot/internal/commands"
	"github.com/githoney/bounty-bot/internal/handlers"
	"github.com/githoney/bounty-bot/internal/middleware"
	"github.com/githoney/bounty-bot/internal/services"
	"github.com/githoney/bounty-bot/pkg/config"
	"github.com/githoney/bounty-bot/pkg/logger"
	"github.com/google/go-github/v57/github"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init()

	// Initialize dependencies
	githubClient := services.NewGithubClient(config.AppConfig.GitHub.Token)
	backendService := services.NewBackendService(config.AppConfig.Backend.URL, config.AppConfig.Backend.APIKey)
	tweetService := services.NewTweetService(config.AppConfig.TweetBot.URL, config.AppConfig.TweetBot.APIKey)

	bot := commands.NewBot(
		config.AppConfig.GitHub.BotMention,
		config.AppConfig.Frontend.URL,
		config.AppConfig.Frontend.Network,
		backendService,
		tweetService,
	)

	// Initialize router
	router := gin.Default()
	setupRoutes(router, bot, githubClient)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, bot *commands.Bot, githubClient *github.Client) {
	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(bot, githubClient, config.AppConfig.GitHub.WebhookSecret)
	closeIssuesHandler := handlers.NewCloseIssuesHandler(githubClient)
	healthHandler := handlers.NewHealthHandler()

	// Webhook endpoint
	router.POST("/webhooks", webhookHandler.Handle)

	// Admin routes, guarded by the backend API key
	admin := router.Group("/")
	admin.Use(middleware.APIKeyRequired(config.AppConfig.Backend.APIKey))
	{
		admin.POST("/close-issues", closeIssuesHandler.CloseIssues)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
