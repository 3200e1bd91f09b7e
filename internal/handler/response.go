package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dreamjobs/api/internal/model"
)

// ListingResponse is the job listing payload. TotalPagesCount carries the
// unfiltered collection total; the field name is the contract the frontend
// pagination was built against.
type ListingResponse struct {
	Result          []*model.Job `json:"result"`
	TotalPagesCount int          `json:"totalPagesCount"`
}

// CreatedResponse acknowledges an insert with the store-assigned ID
type CreatedResponse struct {
	InsertedID string `json:"insertedId"`
}

// AckResponse acknowledges a mutation with no payload of its own
type AckResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	WriteJSON(w, err.Status, err)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(v)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
