package repository

import (
	"context"

	"github.com/dreamjobs/api/internal/database"
	"github.com/dreamjobs/api/internal/model"
)

// AppliedJobRepository handles job application data access
type AppliedJobRepository struct {
	db database.Database
}

// NewAppliedJobRepository creates a new applied job repository
func NewAppliedJobRepository(db database.Database) *AppliedJobRepository {
	return &AppliedJobRepository{db: db}
}

// Create records a job application and returns the store-assigned ID.
// The referenced job ID is stored by value; nothing checks it resolves.
func (r *AppliedJobRepository) Create(ctx context.Context, input *model.AppliedJobInput) (string, error) {
	query := `
		CREATE applied_job CONTENT {
			applicant_email: $applicant_email,
			job_id: $job_id
		}
	`

	vars := map[string]interface{}{
		"applicant_email": input.ApplicantEmail,
		"job_id":          input.JobID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return "", err
	}

	return extractCreatedID(result)
}

// GetByApplicant retrieves all applications submitted by an email address.
// Duplicate applications to the same job come back as separate records.
func (r *AppliedJobRepository) GetByApplicant(ctx context.Context, email string) ([]*model.AppliedJob, error) {
	query := `SELECT * FROM applied_job WHERE applicant_email = $applicant_email`
	vars := map[string]interface{}{"applicant_email": email}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseAppliedJobsResult(result)
}

func parseAppliedJobResult(result interface{}) (*model.AppliedJob, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, database.ErrQuery
	}

	applied := &model.AppliedJob{
		ID:             convertSurrealID(data["id"]),
		ApplicantEmail: getString(data, "applicant_email"),
		JobID:          getString(data, "job_id"),
	}

	return applied, nil
}

func parseAppliedJobsResult(result []interface{}) ([]*model.AppliedJob, error) {
	applications := make([]*model.AppliedJob, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					applied, err := parseAppliedJobResult(item)
					if err != nil {
						continue
					}
					applications = append(applications, applied)
				}
				continue
			}
		}

		applied, err := parseAppliedJobResult(res)
		if err != nil {
			continue
		}
		applications = append(applications, applied)
	}

	return applications, nil
}
