package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data, sets the Content-Type header and the given status
// code, and writes the JSON body to w. It is the single response-writing
// helper used by all HTTP handlers so every endpoint serializes the same way.
//
// When marshaling fails the response is replaced with a plain 500 and the
// wrapped marshal error is returned; the number of bytes written to the body
// is returned otherwise.
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
