package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/smoldovan/lunchroom/internal/api"
	"github.com/smoldovan/lunchroom/internal/cli"
	"github.com/smoldovan/lunchroom/internal/config"
	"github.com/smoldovan/lunchroom/internal/db"
)

func main() {
	cfg := config.Load()
	time.Local = cfg.Location

	if len(os.Args) > 1 && os.Args[1] == "invite-admin" {
		runInviteAdmin(cfg, os.Args[2:])
		return
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, cfg)

	app := fiber.New(fiber.Config{
		AppName:               "Lunchroom",
		DisableStartupMessage: true,
		BodyLimit:             20 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Lunchroom listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runInviteAdmin(cfg *config.Config, args []string) {
	flags := flag.NewFlagSet("invite-admin", flag.ExitOnError)
	email := flags.String("email", "", "email address for the admin account")
	if err := flags.Parse(args); err != nil {
		os.Exit(2)
	}

	if err := cli.RunInviteAdminCommand(cfg.DBPath, *email); err != nil {
		log.Fatalf("invite-admin failed: %v", err)
	}
}
