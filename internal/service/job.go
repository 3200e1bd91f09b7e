package service

import (
	"context"
	"strings"

	"github.com/dreamjobs/api/internal/model"
)

// JobRepository defines the interface for job posting storage
type JobRepository interface {
	Create(ctx context.Context, input *model.JobInput) (string, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, filter model.JobFilter) ([]*model.Job, error)
	CountAll(ctx context.Context) (int, error)
	Replace(ctx context.Context, id string, input *model.JobInput) error
	IncrementApplicants(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// JobService handles job posting operations
type JobService struct {
	jobRepo JobRepository
}

// JobServiceConfig holds configuration for the job service
type JobServiceConfig struct {
	JobRepo JobRepository
}

// NewJobService creates a new job service
func NewJobService(cfg JobServiceConfig) *JobService {
	return &JobService{jobRepo: cfg.JobRepo}
}

// JobPage is one page of listings together with the collection total
type JobPage struct {
	Jobs       []*model.Job
	TotalCount int
}

// List returns the jobs matching the filter plus the unfiltered collection
// total. The total deliberately ignores the filter: clients size their
// pagination against the whole collection, and that is the contract the
// frontend was built on.
func (s *JobService) List(ctx context.Context, filter model.JobFilter) (*JobPage, error) {
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.jobRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &JobPage{Jobs: jobs, TotalCount: total}, nil
}

// Get retrieves a single job posting
func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrJobIDRequired
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Create inserts a new job posting and returns its ID. Beyond the integer
// coercion of the applicant count there is no field validation.
func (s *JobService) Create(ctx context.Context, input *model.JobInput) (string, error) {
	return s.jobRepo.Create(ctx, input)
}

// Replace overwrites all fields of a job posting. An unknown ID is a
// silent no-op, mirroring the store's zero-matched acknowledgement.
func (s *JobService) Replace(ctx context.Context, id string, input *model.JobInput) error {
	if strings.TrimSpace(id) == "" {
		return ErrJobIDRequired
	}
	return s.jobRepo.Replace(ctx, id, input)
}

// IncrementApplicants bumps a job's applicant count by one
func (s *JobService) IncrementApplicants(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrJobIDRequired
	}
	return s.jobRepo.IncrementApplicants(ctx, id)
}

// Delete removes a job posting. Applications referencing it are not
// cleaned up; the join layer tolerates the dangling references.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrJobIDRequired
	}
	return s.jobRepo.Delete(ctx, id)
}
