package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"watchmark/internal/config"
	"watchmark/internal/handler"
	"watchmark/internal/middleware"
	"watchmark/internal/repo"
	"watchmark/internal/service"
	"watchmark/internal/session"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "watchmark",
		Short: "watchmark backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run watchmark server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		return fmt.Errorf("open mongo: %w", err)
	}
	defer func() { _ = repo.Close(db) }()

	pointer, err := newSessionPointer(ctx, cfg.Session)
	if err != nil {
		return fmt.Errorf("init session pointer: %w", err)
	}

	var userStore repo.UserStore = repo.NewUserRepo(db)
	if cfg.UserCache.Size > 0 {
		userStore = repo.WrapLRUCache(userStore, cfg.UserCache.Size, time.Duration(cfg.UserCache.TTLSeconds)*time.Second)
	}

	jwtSecret := []byte(cfg.JWTSecret)
	jwtTTL := time.Hour * time.Duration(cfg.JWTTTLHours)
	authService := service.NewAuthService(userStore, pointer, jwtSecret, jwtTTL, cfg.BcryptCost)
	bookmarkService := service.NewBookmarkService(userStore, pointer)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.CORSAllowlist),
		gzip.Gzip(gzip.DefaultCompression),
	)
	handler.RegisterRoutes(engine, handler.RouterDeps{
		Auth:            handler.NewAuthHandler(authService),
		Bookmarks:       handler.NewBookmarkHandler(bookmarkService),
		JWTSecret:       jwtSecret,
		LoginRateWindow: time.Duration(cfg.LoginRateSeconds) * time.Second,
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: engine}

	logutil.GetLogger(context.Background()).Info("http server listening",
		zap.String("addr", addr),
		zap.String("session_store", cfg.Session.Type),
	)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newSessionPointer(ctx context.Context, cfg config.SessionConfig) (session.CurrentUser, error) {
	switch cfg.Type {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return session.NewRedisPointer(client, cfg.Redis.Key), nil
	default:
		return session.NewFilePointer(cfg.File), nil
	}
}
