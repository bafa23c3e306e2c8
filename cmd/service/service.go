package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"blog/internal/cache"
	"blog/internal/database"
	blogmw "blog/internal/middleware"
	"blog/internal/router"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "blog/docs" // 引入 swag 產出的 docs
)

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

type config struct {
	databaseURL   string
	redisAddr     string
	redisPassword string
	redisDB       int
	secretKey     string
	sessionTTL    time.Duration
	addr          string
	cookieSecure  bool
}

func loadConfig() (config, error) {
	cfg := config{
		sessionTTL: 24 * time.Hour,
		addr:       ":8080",
	}

	cfg.databaseURL = os.Getenv("DATABASE_URL")
	if cfg.databaseURL == "" {
		return cfg, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	cfg.redisAddr = os.Getenv("REDIS_ADDR")
	if cfg.redisAddr == "" {
		return cfg, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return cfg, fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return cfg, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	cfg.redisDB = redisIndex

	// 本機 Redis 通常沒有密碼
	cfg.redisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.secretKey = os.Getenv("SECRET_KEY")
	if cfg.secretKey == "" {
		return cfg, fmt.Errorf("環境變數 SECRET_KEY 未設定")
	}

	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return cfg, fmt.Errorf("無效的 SESSION_TTL_HOURS: %q", v)
		}
		cfg.sessionTTL = time.Duration(hours) * time.Hour
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.addr = v
	}

	// 部署在 TLS 之後時設為 true
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("無效的 COOKIE_SECURE: %q", v)
		}
		cfg.cookieSecure = secure
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.databaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.redisAddr, cfg.redisPassword, cfg.redisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.databaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("載入樣板失敗: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer
	e.HTTPErrorHandler = view.HTTPErrorHandler(blogmw.CurrentIdentity)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	sessions := service.NewSessionManager(rdb, db, cfg.secretKey, cfg.sessionTTL)
	router.Setup(e, db, rdb, sessions, cfg.cookieSecure)

	return startServer(e, cfg.addr)
}
