package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/app"
	"github.com/fadilmartias/bid-analyzer/internal/config"
	"github.com/fadilmartias/bid-analyzer/internal/domain/fiber/handler"
	"github.com/fadilmartias/bid-analyzer/internal/logger"
	"github.com/fadilmartias/bid-analyzer/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zl, err := logger.New(appConfig.IsProduction(), os.Getenv("LOG_VERBOSE") == "true")
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	ctx := context.Background()
	a, err := app.New(ctx, zl)
	if err != nil {
		zl.Fatal("failed to start", zap.Error(err))
	}
	defer a.Close()

	srv := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 6 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	srv.Use(fiberlogger.New())
	srv.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	srv.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	srv.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	srv.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	srv.Use(healthcheck.New())
	srv.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	srv.Use(middleware.RateLimiter(50, 1*time.Minute))

	handler.RegisterRoutes(srv, handler.Usecases{
		Analyzer:  a.Analyzer,
		Monitor:   a.Monitor,
		Checklist: a.Checklist,
		History:   a.History,
	}, zl)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zl.Info("shutting down")
		if err := srv.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Warn("shutdown failed", zap.Error(err))
		}
	}()

	zl.Info("server running", zap.String("addr", appConfig.Port))
	if err := srv.Listen(appConfig.Port); err != nil {
		zl.Fatal("listen failed", zap.Error(err))
	}
}
