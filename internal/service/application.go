package service

import (
	"context"
	"strings"

	"github.com/dreamjobs/api/internal/model"
)

// AppliedJobRepository defines the interface for job application storage
type AppliedJobRepository interface {
	Create(ctx context.Context, input *model.AppliedJobInput) (string, error)
	GetByApplicant(ctx context.Context, email string) ([]*model.AppliedJob, error)
}

// JobFinder resolves a set of job IDs into job postings
type JobFinder interface {
	GetByIDs(ctx context.Context, ids []string, category, sort *string) ([]*model.Job, error)
}

// ApplicationService handles job applications and the read-time join back
// to the job postings they reference.
type ApplicationService struct {
	appliedRepo AppliedJobRepository
	jobFinder   JobFinder
}

// ApplicationServiceConfig holds configuration for the application service
type ApplicationServiceConfig struct {
	AppliedRepo AppliedJobRepository
	JobFinder   JobFinder
}

// NewApplicationService creates a new application service
func NewApplicationService(cfg ApplicationServiceConfig) *ApplicationService {
	return &ApplicationService{
		appliedRepo: cfg.AppliedRepo,
		jobFinder:   cfg.JobFinder,
	}
}

// Apply records a job application and returns the new record's ID.
// Nothing verifies the job ID resolves or that the applicant has not
// already applied; duplicates are ordinary records.
func (s *ApplicationService) Apply(ctx context.Context, input *model.AppliedJobInput) (string, error) {
	return s.appliedRepo.Create(ctx, input)
}

// ListApplied resolves an applicant's applications into the referenced job
// postings, with an optional category filter and sort. Job IDs that no
// longer resolve drop out silently; no pagination is applied here.
func (s *ApplicationService) ListApplied(ctx context.Context, email string, category, sort *string) ([]*model.Job, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}

	applications, err := s.appliedRepo.GetByApplicant(ctx, email)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]string, 0, len(applications))
	for _, applied := range applications {
		jobIDs = append(jobIDs, applied.JobID)
	}

	if len(jobIDs) == 0 {
		return []*model.Job{}, nil
	}

	return s.jobFinder.GetByIDs(ctx, jobIDs, category, sort)
}
