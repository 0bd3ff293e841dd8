package app

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (a App) routes(router *mux.Router) {
	router.Handle("/health", AppHandler(a.health)).Methods("GET")
	router.Handle("/api/purposes", AppHandler(a.listPurposes)).Methods("GET")

	router.Handle("/api/optimize", AppHandler(a.optimize)).Methods("POST")
	router.Handle("/api/translate", AppHandler(a.translate)).Methods("POST")

	router.Handle("/api/auth/register", AppHandler(a.register)).Methods("POST")
	router.Handle("/api/auth/login", AppHandler(a.login)).Methods("POST")

	router.Handle("/api/prompts/create", AppHandler(a.createPrompt)).Methods("POST")
	router.Handle("/api/prompts/getAll", AppHandler(a.getAllPrompts)).Methods("POST")
	router.Handle("/api/prompts/getById", AppHandler(a.getPromptById)).Methods("POST")
	router.Handle("/api/prompts/update", AppHandler(a.updatePrompt)).Methods("POST")
	router.Handle("/api/prompts/delete", AppHandler(a.deletePrompt)).Methods("POST")
}

func (a App) health(r *http.Request) *appResp {
	return &appResp{Code: 200, Body: map[string]string{"status": "ok"}}
}
