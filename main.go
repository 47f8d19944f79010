package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"marhaba/config"
	"marhaba/database"
	"marhaba/database/seeders"
	"marhaba/logger"
	"marhaba/routes"
	"marhaba/services/auth"
	"marhaba/services/chat"
	"marhaba/services/marketplace"
	"marhaba/services/receipt"
	"marhaba/store"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Error("Invalid configuration", err)
		os.Exit(1)
	}

	logFile, err := logger.Setup(cfg.LogDir)
	if err != nil {
		logger.Error("Failed to set up log file", err)
	} else {
		defer logFile.Close()
	}

	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		BodyLimit:       4 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	st := store.New(store.InitialState())

	// The journal persists to postgres when a database is configured and
	// falls back to the application log otherwise
	var sink logger.Sink = logger.LogSink{}
	if cfg.Database.Enabled() {
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			logger.Error("Failed to connect to the database", err)
			os.Exit(1)
		}
		sink = logger.NewGormSink(db)
	} else {
		logger.Warning("No database configured, action journal goes to the log only")
	}
	journal := logger.NewAsyncLogger(sink)
	go journal.ProcessLog()
	unsubscribe := st.Subscribe(journal.Listener())
	defer func() {
		unsubscribe()
		journal.Close()
	}()

	seeders.SeedMarketplace(st)

	var streamer chat.Streamer
	if cfg.GeminiAPIKey != "" {
		gemini, err := chat.NewGeminiStreamer(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to create Gemini client, assistant runs in fallback mode", err)
		} else {
			streamer = gemini
		}
	} else {
		logger.Warning("GEMINI_API_KEY not set, assistant runs in fallback mode")
	}

	exporter := receipt.NewSimulatedExporter(func() store.Language {
		return st.GetState().Language
	})

	routes.SetupRoutes(app, routes.Services{
		Store:        st,
		Marketplace:  marketplace.New(st),
		Auth:         auth.New(st, auth.NewTokenIssuer(cfg.JWTSecret, time.Now), time.Now),
		Receipts:     receipt.NewService(st, exporter),
		Assistant:    chat.NewAssistant(streamer),
		IsProduction: cfg.IsProduction(),
	})

	logger.Success("Server is running on " + cfg.Addr() +
		"\n\t\t\t\t\t\t******************************************************************************************\n")
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Error("Server stopped", err)
	}
}
