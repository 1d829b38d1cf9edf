package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/benbeisheim/chess-rules/internal/controller"
	"github.com/benbeisheim/chess-rules/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Flags (env fallbacks).
	addr := flag.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := flag.String("origins", getenv("CHESS_ALLOWED_ORIGINS", "http://localhost:5173"), "comma-separated allowed origins")
	level := flag.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	format := flag.String("log-format", getenv("CHESS_LOG_FORMAT", "cli"), "log format (cli, text, json)")
	flag.Parse()

	if err := setupLogging(*level, *format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(func(c *fiber.Ctx) error {
		log.WithFields(log.Fields{"method": c.Method(), "path": c.Path()}).Debug("incoming request")
		return c.Next()
	})

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)
	controller.RegisterRoutes(app, gameService, splitCSV(*origins))

	log.WithField("addr", *addr).Info("HTTP listening")
	if err := app.Listen(*addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func setupLogging(level, format string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "cli":
		log.SetHandler(cli.New(os.Stderr))
	case "text":
		log.SetHandler(text.New(os.Stderr))
	case "json":
		log.SetHandler(json.New(os.Stderr))
	default:
		return fmt.Errorf("invalid log format %q; valid: cli, text, json", format)
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
