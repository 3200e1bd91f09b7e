package handler

import (
	"context"
	"net/http"

	"github.com/dreamjobs/api/internal/model"
)

// ApplicationsService defines the application operations the handler
// depends on
type ApplicationsService interface {
	Apply(ctx context.Context, input *model.AppliedJobInput) (string, error)
	ListApplied(ctx context.Context, email string, category, sort *string) ([]*model.Job, error)
}

// ApplicationHandler handles job application endpoints
type ApplicationHandler struct {
	applications ApplicationsService
}

// ApplicationHandlerConfig holds configuration for the application handler
type ApplicationHandlerConfig struct {
	Applications ApplicationsService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(cfg ApplicationHandlerConfig) *ApplicationHandler {
	return &ApplicationHandler{applications: cfg.Applications}
}

// Apply handles POST /api/v1/user/applied-job
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var input model.AppliedJobInput
	if err := DecodeJSON(r, &input); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	id, err := h.applications.Apply(r.Context(), &input)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, CreatedResponse{InsertedID: id})
}

// ListApplied handles GET /api/v1/user/applied-job. Runs behind the
// session and ownership middleware, so the email query parameter is the
// caller's own.
func (h *ApplicationHandler) ListApplied(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	email := q.Get("email")

	var category, sort *string
	if v := q.Get("jobCategory"); v != "" {
		category = &v
	}
	if v := q.Get("sort"); v != "" {
		sort = &v
	}

	jobs, err := h.applications.ListApplied(r.Context(), email, category, sort)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, jobs)
}
