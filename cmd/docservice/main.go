package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/docintegrator/doc-service/internal/auth"
	"github.com/docintegrator/doc-service/internal/config"
	"github.com/docintegrator/doc-service/internal/database"
	"github.com/docintegrator/doc-service/internal/document/handler"
	"github.com/docintegrator/doc-service/internal/document/repository"
	"github.com/docintegrator/doc-service/internal/document/service"
	"github.com/docintegrator/doc-service/pkg/logger"
	"github.com/docintegrator/doc-service/pkg/metrics"
	"github.com/docintegrator/doc-service/pkg/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer logger.Sync()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	store, cleanup := buildStore(ctx, cfg)
	defer cleanup()

	svc := service.New(store, cfg.Policy())

	r := gin.New()
	r.Use(gin.Recovery(), metrics.Middleware())

	// permissive CORS for dev; front with a stricter policy in production
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	if cfg.RateLimit.Enabled {
		r.Use(rateLimiter(ctx, cfg))
	}

	var guards []gin.HandlerFunc
	if cfg.JWT.Secret != "" {
		ts := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)
		guards = append(guards, middleware.AuthMiddleware(ts))
		logger.Infof("bearer-token guard enabled for mutating routes")
	}

	handler.RegisterDocumentRoutes(r, svc, guards...)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", func(c *gin.Context) {
		if _, err := store.List(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ready": true})
	})

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("document service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// buildStore picks the persistence backend: PostgreSQL when DATABASE_URL is
// set, MongoDB when MONGODB_URI is set, in-memory otherwise. Connection
// failures fall back to the next option so the service stays bootable in
// development.
func buildStore(ctx context.Context, cfg *config.Config) (repository.Store, func()) {
	if cfg.Database.URL != "" {
		db, err := database.ConnectPostgres(ctx, cfg.Database)
		if err == nil {
			logger.Infof("using PostgreSQL document store")
			return repository.NewPostgresStore(db), func() { db.Close() }
		}
		logger.Warnf("cannot connect to PostgreSQL (%v), trying next backend", err)
	}
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			logger.Infof("using MongoDB document store")
			col := client.Database(cfg.MongoDB.Database).Collection("documents")
			return repository.NewMongoStore(col), func() { client.Disconnect(context.Background()) }
		}
		logger.Warnf("cannot connect to MongoDB (%v), falling back to memory", err)
	}
	logger.Infof("using in-memory document store")
	return repository.NewMemoryStore(), func() {}
}

func rateLimiter(ctx context.Context, cfg *config.Config) gin.HandlerFunc {
	if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err == nil {
			logger.Infof("using Redis-backed rate limiter")
			window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			return middleware.RedisRateLimitMiddleware(client, cfg.RateLimit.RPS, cfg.RateLimit.Burst, window)
		}
		logger.Warnf("redis unavailable, using in-memory rate limiter")
	}
	return middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}
