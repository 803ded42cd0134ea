package handlers

import (
	"encoding/json"
	"net/http"
)

const msgInternalError = "внутренняя ошибка сервера"

// SuccessResponse конверт успешного ответа
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse конверт ответа с ошибкой
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// RespondJSON отправляет успешный ответ {"success": true, "data": ...}
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, SuccessResponse{Success: true, Data: data})
}

// RespondMessage отправляет успешный ответ с данными и сообщением
func RespondMessage(w http.ResponseWriter, status int, data interface{}, message string) {
	writeJSON(w, status, SuccessResponse{Success: true, Data: data, Message: message})
}

// RespondError отправляет ответ с ошибкой {"success": false, "error": ...}
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: message})
}

// RespondValidationError отправляет 400 со списком всех нарушений
func RespondValidationError(w http.ResponseWriter, message string, details []string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Error: message, Details: details})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отправляет 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// SetNoCacheHeaders запрещает кеширование ответа (списки и статистика всегда актуальны)
func SetNoCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.Header().Set("Surrogate-Control", "no-store")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
