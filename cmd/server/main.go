package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/labourlink-api/internal/config"
	"github.com/yukikurage/labourlink-api/internal/constants"
	"github.com/yukikurage/labourlink-api/internal/database"
	"github.com/yukikurage/labourlink-api/internal/middleware"
	"github.com/yukikurage/labourlink-api/internal/router"
	"github.com/yukikurage/labourlink-api/internal/services"
	"github.com/yukikurage/labourlink-api/internal/utils"
	"golang.org/x/sync/errgroup"
)

const sessionMaxAge = 86400 * 7

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	defer redisClient.Close()

	var drafter services.JobDrafter
	if cfg.OpenAIAPIKey != "" {
		drafter = services.NewAIService(cfg.OpenAIAPIKey)
	}

	r := router.New(router.Dependencies{
		DB:             database.GetDB(),
		SessionStore:   newSessionStore(cfg),
		ChatLimiter:    middleware.NewChatLimiter(ctx, redisClient),
		JobDrafter:     drafter,
		Tokens:         utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		ChatRateLimit:  cfg.ChatRateLimit,
		ChatRateWindow: cfg.ChatRateWindow,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	if sqlDB, err := database.GetDB().DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server stopped")
}

// newSessionStore keeps sessions in Redis and falls back to signed cookies
// when Redis cannot be reached.
func newSessionStore(cfg *config.Config) sessions.Store {
	options := sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	}

	store, err := redisStore.NewStore(
		10,              // Redis pool size
		"tcp",           // network type
		cfg.RedisAddr(), // Redis address from config
		"",              // username (empty for default user)
		"",              // password (empty = no password)
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Printf("Warning: Redis session store unavailable, using cookie sessions: %v", err)
		cookieStore := cookie.NewStore([]byte(cfg.SessionSecret))
		cookieStore.Options(options)
		return cookieStore
	}

	store.Options(options)
	return store
}
