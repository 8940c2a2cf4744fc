package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"newsly/db"
	"newsly/internal/auth"
	"newsly/internal/config"
	"newsly/internal/handler"
	"newsly/internal/repository"
	"newsly/pkg/llm"
	"newsly/pkg/news"
	"newsly/pkg/nlp"
	"newsly/pkg/scrape"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	tokenExpiry      = time.Hour
	trendingCacheTTL = 5 * time.Minute
)

func main() {

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer database.Close()

	userRepo := repository.NewUserRepository(database)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, tokenExpiry)

	var provider news.Provider
	switch {
	case cfg.NewsAPIKey != "":
		provider = news.NewNewsAPIClient(cfg.NewsAPIKey)
	case cfg.GNewsAPIKey != "":
		provider = news.NewGNewsClient(cfg.GNewsAPIKey)
	default:
		slog.Warn("no news source API key configured, news routes will fail")
	}

	var cache handler.TrendingCache
	if cfg.RedisURL != "" {
		redisClient, err := db.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer redisClient.Close()
		cache = db.NewCache(redisClient, "newsly:cache:trending:", trendingCacheTTL)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var summarizer handler.Summarizer
	var recommender handler.Recommender
	switch {
	case cfg.NLPServiceURL != "":
		nlpClient := nlp.NewClient(cfg.NLPServiceURL)
		summarizer = nlpClient
		recommender = nlpClient
		go nlpClient.WarmUp(ctx)
	case cfg.OpenAIKey != "":
		summarizer = llm.NewOpenAIClient(cfg.OpenAIKey)
	case cfg.AnthropicKey != "":
		summarizer = llm.NewAnthropicClient(cfg.AnthropicKey)
	default:
		slog.Warn("no summarizer configured, summarize route will fail")
	}

	authHandler := handler.NewAuthHandler(userRepo, tokens)
	preferenceHandler := handler.NewPreferenceHandler(userRepo)
	newsHandler := handler.NewNewsHandler(provider, userRepo, cache)
	scrapeHandler := handler.NewScrapeHandler(scrape.NewExtractor())
	nlpHandler := handler.NewNLPHandler(summarizer, recommender)
	healthHandler := handler.NewHealthHandler(userRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:5173"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	requireAuth := auth.RequireAuth(tokens)

	r.GET("/", healthHandler.GetRoot)
	r.GET("/health", healthHandler.GetHealth)

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	r.POST("/update-preferences", requireAuth, preferenceHandler.UpdatePreferences)
	r.GET("/api/get-preferences", preferenceHandler.GetPreferences)

	r.GET("/api/news", requireAuth, newsHandler.GetNews)
	r.GET("/api/trending-news", newsHandler.GetTrending)

	r.GET("/scrape", requireAuth, scrapeHandler.Scrape)

	r.POST("/summarize", nlpHandler.Summarize)
	r.POST("/get-recommendations", nlpHandler.GetRecommendations)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
