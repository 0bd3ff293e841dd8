package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/davidmrt/promptforge/internal/app"
	"github.com/davidmrt/promptforge/internal/persistence"
	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"
)

type config struct {
	App          app.Config
	GeminiAPIKey string
	GeminiModel  string
	DBDsn        string
	SqlitePath   string
}

func loadConfig() config {
	err := godotenv.Load()
	if err != nil {
		slog.Info("No .env file found, relying on process environment")
	}

	port := os.Getenv("GOPORT")
	if port == "" {
		port = "8000"
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		slog.Error("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-flash-latest"
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		slog.Error("SESSION_SECRET environment variable not set")
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "promptforge.db"
	}

	return config{
		App:          app.Config{Port: port, SessionSecret: sessionSecret},
		GeminiAPIKey: geminiAPIKey,
		GeminiModel:  geminiModel,
		DBDsn:        os.Getenv("DB_DSN"),
		SqlitePath:   sqlitePath,
	}
}

func main() {
	config := loadConfig()

	db, err := persistence.Connect(config.DBDsn, config.SqlitePath)
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}

	// Generation calls are single-shot with no retry; the client timeout
	// is the only bound on them.
	client := resty.New().SetTimeout(60 * time.Second)

	geminiRepo := persistence.GeminiRepo{
		Client:  client,
		APIKey:  config.GeminiAPIKey,
		Model:   config.GeminiModel,
		BaseUrl: "https://generativelanguage.googleapis.com/v1beta",
	}
	userRepo := persistence.UserRepo{DB: db}
	promptRepo := persistence.PromptRepo{DB: db}

	a := app.App{
		GenerationRepo: geminiRepo,
		UserRepo:       userRepo,
		PromptRepo:     promptRepo,
		Config:         config.App,
	}

	a.Start()
}
