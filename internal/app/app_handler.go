package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

type appResp struct {
	Error error
	Code  int
	Body  interface{}
}

type errBody struct {
	Error string  `json:"error"`
	Code  ErrCode `json:"code"`
}

// AppHandler adapts a handler returning *appResp into an http.Handler.
// Errors are logged with their cause and serialized as the caller-safe
// envelope only.
type AppHandler func(*http.Request) *appResp

func (h AppHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(r)

	if resp.Error != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", resp.Error.Error()))

		var appError *AppError
		if !errors.As(resp.Error, &appError) {
			appError = appErr(ErrInternal, "Internal server error")
		}

		writeJSON(w, statusCode(appError.Code), errBody{Error: appError.Msg, Code: appError.Code})
		return
	}

	code := resp.Code
	if code == 0 {
		code = 200
	}

	writeJSON(w, code, resp.Body)
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(body)

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}
}
