package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/purpleshorts-go/apperror"
)

// WriteJSON serializes data to JSON and writes it with the given status.
// Shared by every handler package.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError writes a standardized error response. Errors that are not
// *apperror.AppError are wrapped in a generic internal error first, so the
// route layer never emits an unmapped error shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Unknown error", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}

// Message is the JSON body for success responses that carry no resource
// payload, e.g. delete and update acknowledgements.
type Message struct {
	Message string `json:"message" example:"Post liked successfully"`
}
