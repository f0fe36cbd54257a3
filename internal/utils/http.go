package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON serializes data and writes it with statusCode and a JSON
// content type. On marshal failure it answers 500 and returns the error.
//
//	WriteJSON(w, models.InvokeResponse{Value: name}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes msg as an [ErrorResponse].
func WriteError(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Error: msg}, statusCode)
}
