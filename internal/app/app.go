package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/davidmrt/promptforge/internal/domain"
	"github.com/gorilla/mux"
)

type Config struct {
	Port          string
	SessionSecret string
}

type GenerationRepo interface {
	Generate(ctx context.Context, prompt string, config domain.GenerationConfig) (string, error)
}

type UserRepo interface {
	Insert(user *domain.User) error
	FindById(id string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
}

type PromptRepo interface {
	Insert(prompt *domain.SavedPrompt) error
	FindById(id string) (*domain.SavedPrompt, error)
	FindByUserId(userId string) ([]domain.SavedPrompt, error)
	Update(prompt *domain.SavedPrompt) error
	Delete(id string) error
}

type App struct {
	GenerationRepo GenerationRepo
	UserRepo       UserRepo
	PromptRepo     PromptRepo
	Config         Config
}

func genConfig(temperature float32, schema *domain.Schema) domain.GenerationConfig {
	config := domain.GenerationConfig{Temperature: temperature}
	if schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = schema
	}

	return config
}

func (a App) Start() {
	router := mux.NewRouter().StrictSlash(true)
	a.routes(router)

	slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
	err := http.ListenAndServe(fmt.Sprintf(":%s", a.Config.Port), router)

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}
}
