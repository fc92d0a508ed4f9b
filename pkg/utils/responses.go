package utils

import (
	"encoding/json"
	"net/http"
)

// DetailResponse is the error body shape of the catalog service.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ResponseJSON writes a bare JSON payload with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Error responses -------------

// ResponseDetail writes an error body in the service's detail shape.
func ResponseDetail(w http.ResponseWriter, code int, detail string) {
	ResponseJSON(w, code, DetailResponse{Detail: detail})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusBadRequest, detail)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusNotFound, detail)
}

// returns 422 Unprocessable Entity with formatted field errors
func ResponseValidationError(w http.ResponseWriter, errors map[string]string) {
	ResponseDetail(w, http.StatusUnprocessableEntity, FormatValidationErrors(errors))
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusInternalServerError, detail)
}
