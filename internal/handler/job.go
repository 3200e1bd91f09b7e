package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dreamjobs/api/internal/middleware"
	"github.com/dreamjobs/api/internal/model"
	"github.com/dreamjobs/api/internal/service"
)

// JobsService defines the job operations the handler depends on
type JobsService interface {
	List(ctx context.Context, filter model.JobFilter) (*service.JobPage, error)
	Get(ctx context.Context, id string) (*model.Job, error)
	Create(ctx context.Context, input *model.JobInput) (string, error)
	Replace(ctx context.Context, id string, input *model.JobInput) error
	IncrementApplicants(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobs JobsService
}

// JobHandlerConfig holds configuration for the job handler
type JobHandlerConfig struct {
	Jobs JobsService
}

// NewJobHandler creates a new job handler
func NewJobHandler(cfg JobHandlerConfig) *JobHandler {
	return &JobHandler{jobs: cfg.Jobs}
}

// IncrementRequest represents the update-applicant-count request body
type IncrementRequest struct {
	JobID string `json:"jobId"`
}

// parseJobFilter reads the listing query parameters into a filter.
// Absent parameters stay nil; pages/limit parse errors read as zero,
// which turns pagination off.
func parseJobFilter(r *http.Request) model.JobFilter {
	q := r.URL.Query()
	filter := model.JobFilter{}

	if v := q.Get("jobCategory"); v != "" {
		filter.Category = &v
	}
	if v := q.Get("jobTitle"); v != "" {
		filter.Title = &v
	}
	if v := q.Get("sort"); v != "" {
		filter.Sort = &v
	}

	filter.Page, _ = strconv.Atoi(q.Get("pages"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	return filter
}

// List handles GET /api/v1/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseJobFilter(r)

	page, err := h.jobs.List(r.Context(), filter)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, ListingResponse{
		Result:          page.Jobs,
		TotalPagesCount: page.TotalCount,
	})
}

// MyJobs handles GET /api/v1/my-jobs. Runs behind the session and
// ownership middleware; the email query parameter has already been
// checked against the session identity.
func (h *JobHandler) MyJobs(w http.ResponseWriter, r *http.Request) {
	filter := parseJobFilter(r)

	email := middleware.GetUserEmail(r.Context())
	filter.PosterEmail = &email

	page, err := h.jobs.List(r.Context(), filter)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, ListingResponse{
		Result:          page.Jobs,
		TotalPagesCount: page.TotalCount,
	})
}

// Get handles GET /api/v1/job/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Create handles POST /api/v1/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.JobInput
	if err := DecodeJSON(r, &input); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	id, err := h.jobs.Create(r.Context(), &input)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, CreatedResponse{InsertedID: id})
}

// Replace handles PUT /api/v1/job/{id}. A missing job acknowledges the
// same way as a replaced one; the store reports zero matched records and
// nothing distinguishes the cases.
func (h *JobHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var input model.JobInput
	if err := DecodeJSON(r, &input); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.jobs.Replace(r.Context(), id, &input); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, AckResponse{Acknowledged: true})
}

// IncrementApplicants handles POST /api/v1/job/update-applicant-count
func (h *JobHandler) IncrementApplicants(w http.ResponseWriter, r *http.Request) {
	var req IncrementRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.jobs.IncrementApplicants(r.Context(), req.JobID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, AckResponse{Acknowledged: true})
}

// Delete handles DELETE /api/v1/user/delete-job/{id}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.jobs.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, AckResponse{Acknowledged: true})
}
