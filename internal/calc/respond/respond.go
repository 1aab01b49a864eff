package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"Cablesize/internal/calc/conductor"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, errorBody{Error: msg, Code: code})
}

// Error writes a calculation error. Catalog exhaustion is reported as 422,
// every other domain error as 400.
func Error(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		slog.Error("calculation failed", "error", err)
		Message(w, code, "Calculation error")
		return
	}
	Message(w, code, err.Error())
}

func Status(err error) int {
	switch {
	case errors.Is(err, conductor.ErrNoSuitableSection), errors.Is(err, conductor.ErrNoCompliantSection):
		return http.StatusUnprocessableEntity
	case errors.Is(err, conductor.ErrInvalidInput), errors.Is(err, conductor.ErrInvalidLineType):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Decode reads a JSON request body into v, answering 400 on failure.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Message(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
