package response

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the standard response wrapper: {success, data?, message?}.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Write sends an arbitrary envelope with the given status code.
func Write(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(resp)
}

// JSON sends a success response carrying data.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	Write(w, status, APIResponse{
		Success: true,
		Data:    data,
	})
}

// JSONMessage sends a success response carrying data and a human-readable message.
func JSONMessage(w http.ResponseWriter, status int, data interface{}, message string) {
	Write(w, status, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Message sends a success response with only a message.
func Message(w http.ResponseWriter, status int, message string) {
	Write(w, status, APIResponse{
		Success: true,
		Message: message,
	})
}

// Error sends an error response with a message.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, APIResponse{
		Success: false,
		Message: message,
	})
}

// Common error responses
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
