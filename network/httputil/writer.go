// Package httputil writes JSON responses in the remote signer wire format.
package httputil

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// DefaultErrorJson is the body of every non-200 response.
type DefaultErrorJson struct {
	Message string `json:"error"`
}

// WriteJson writes v as the response body with the given status code.
func WriteJson(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Could not write response message")
	}
}

// HandleError writes message as an error body with the given status code.
func HandleError(w http.ResponseWriter, message string, code int) {
	WriteJson(w, code, &DefaultErrorJson{Message: message})
}

// WriteRaw writes body unchanged. It is used to simulate malformed responses.
func WriteRaw(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		log.WithError(err).Error("Could not write response message")
	}
}
