package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pocketledger/pocketledger/internal/auth"
	"github.com/pocketledger/pocketledger/internal/cache"
	"github.com/pocketledger/pocketledger/internal/config"
	"github.com/pocketledger/pocketledger/internal/database"
	"github.com/pocketledger/pocketledger/internal/handlers"
	"github.com/pocketledger/pocketledger/internal/logger"
	"github.com/pocketledger/pocketledger/internal/middleware"
	redisclient "github.com/pocketledger/pocketledger/internal/redis"
	"github.com/pocketledger/pocketledger/internal/service"
	"github.com/pocketledger/pocketledger/internal/storage"
)

func main() {
	log := logger.New("server")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
		log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}

	if err := storage.RunMigrations(cfg.Database.PrimaryDSN); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	dbManager, err := database.NewDBManager(ctx, database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		ReplicaDSNs:     cfg.Database.ReplicaDSNs,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	// Redis is optional: without it the server runs unthrottled and
	// summaries always hit the store.
	var redisConn *redisclient.Client
	if cfg.Redis.Addr != "" {
		redisConn, err = redisclient.NewClient(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redis unavailable, continuing without rate limiting and cache: %v", err)
			redisConn = nil
		}
		if redisConn != nil {
			defer redisConn.Close()
		}
	}

	jwtManager := auth.NewJWTManager(jwtSecret, cfg.Auth.TokenTTL)
	userStorage := storage.NewUserStorage(dbManager)
	transactionStorage := storage.NewTransactionStorage(dbManager)
	taskStorage := storage.NewTaskStorage(dbManager)

	var summaryCache *cache.Cache
	if redisConn != nil {
		summaryCache = cache.NewMultiTierCache(cfg.Cache.L1Capacity, redisConn.GetClient(), cfg.Cache.SummaryTTL)
	}

	authService := service.NewAuthService(userStorage, jwtManager, cfg.Auth.BcryptCost)
	ledgerService := service.NewLedgerService(transactionStorage, summaryCache)
	taskService := service.NewTaskService(taskStorage)

	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	taskHandler := handlers.NewTaskHandler(taskService)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	requireAuth := authMiddleware.RequireAuth
	mux.HandleFunc("POST /api/transactions", requireAuth(transactionHandler.Create))
	mux.HandleFunc("GET /api/transactions", requireAuth(transactionHandler.List))
	mux.HandleFunc("GET /api/transactions/summary", requireAuth(transactionHandler.Summary))
	mux.HandleFunc("PUT /api/transactions/{id}", requireAuth(transactionHandler.Update))
	mux.HandleFunc("DELETE /api/transactions/{id}", requireAuth(transactionHandler.Delete))

	mux.HandleFunc("POST /api/tasks", requireAuth(taskHandler.Create))
	mux.HandleFunc("GET /api/tasks", requireAuth(taskHandler.List))
	mux.HandleFunc("PUT /api/tasks/{id}", requireAuth(taskHandler.Update))
	mux.HandleFunc("DELETE /api/tasks/{id}", requireAuth(taskHandler.Delete))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	var handler http.Handler = mux
	handler = middleware.RequestLogger(log)(handler)
	if redisConn != nil {
		limiter := middleware.NewRateLimiter(redisConn.GetClient(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
		handler = limiter.Middleware(handler)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler,
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
