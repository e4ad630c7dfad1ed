package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "mortgage-calculator/internal/adapter/http"
	idemp "mortgage-calculator/internal/adapter/middleware"
	"mortgage-calculator/internal/adapter/repository/mysql"
	"mortgage-calculator/internal/config"
	domain "mortgage-calculator/internal/domain/mortgage"
	"mortgage-calculator/internal/infrastructure/cache"
	"mortgage-calculator/internal/infrastructure/db"
	"mortgage-calculator/internal/usecase/mortgage"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// history stays nil (disabled) unless configured
	var repo domain.Repository
	if cfg.HistoryEnabled {
		gdb, err := db.OpenGorm(cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql: %v", err)
		}
		r := mysql.NewCalculationRepository(gdb)
		if err := r.Migrate(ctx); err != nil {
			log.Fatalf("mysql migrate: %v", err)
		}
		repo = r
	}

	var calculateMW []echo.MiddlewareFunc
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		calculateMW = append(calculateMW, idemp.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL()))
	}

	h := httpadp.NewHandler(cfg.HistoryEnabled, cfg.RedisAddr != "")
	mh := httpadp.NewMortgageHandler(mortgage.NewUsecase(repo))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	httpadp.Register(e, h, mh, calculateMW...)

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("listening on %s (history=%t, idempotency=%t)", addr, cfg.HistoryEnabled, cfg.RedisAddr != "")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
