package repository

import (
	"context"
	"errors"

	"github.com/dreamjobs/api/internal/database"
	"github.com/dreamjobs/api/internal/model"
)

// JobRepository handles job posting data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job posting and returns the store-assigned ID
func (r *JobRepository) Create(ctx context.Context, input *model.JobInput) (string, error) {
	query := `
		CREATE job CONTENT {
			title: $title,
			category: $category,
			poster_name: $poster_name,
			poster_email: $poster_email,
			picture_url: $picture_url,
			salary_range: $salary_range,
			posting_date: $posting_date,
			application_deadline: $application_deadline,
			applicants_count: $applicants_count,
			description: $description
		}
	`

	vars := map[string]interface{}{
		"title":                input.Title,
		"category":             input.Category,
		"poster_name":          input.PosterName,
		"poster_email":         input.PosterEmail,
		"picture_url":          input.PictureURL,
		"salary_range":         input.SalaryRange,
		"posting_date":         input.PostingDate,
		"application_deadline": input.ApplicationDeadline,
		"applicants_count":     input.ApplicantsCount.Int(),
		"description":          input.Description,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return "", err
	}

	return extractCreatedID(result)
}

// GetByID retrieves a job posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	job, err := parseJobResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

// List retrieves job postings matching the filter
func (r *JobRepository) List(ctx context.Context, filter model.JobFilter) ([]*model.Job, error) {
	query, vars := buildJobListQuery(filter)

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseJobsResult(result)
}

// CountAll returns the total number of job postings, ignoring any filter
func (r *JobRepository) CountAll(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM job GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if data, ok := result.(map[string]interface{}); ok {
		return getInt(data, "count"), nil
	}
	return extractCount(result), nil
}

// Replace overwrites every tracked field of a job posting. A missing ID is
// a silent no-op, the store reports zero matched records.
func (r *JobRepository) Replace(ctx context.Context, id string, input *model.JobInput) error {
	query := `
		UPDATE job SET
			title = $title,
			category = $category,
			poster_name = $poster_name,
			poster_email = $poster_email,
			picture_url = $picture_url,
			salary_range = $salary_range,
			posting_date = $posting_date,
			application_deadline = $application_deadline,
			applicants_count = $applicants_count,
			description = $description
		WHERE id = type::record($id)
	`

	vars := map[string]interface{}{
		"id":                   id,
		"title":                input.Title,
		"category":             input.Category,
		"poster_name":          input.PosterName,
		"poster_email":         input.PosterEmail,
		"picture_url":          input.PictureURL,
		"salary_range":         input.SalaryRange,
		"posting_date":         input.PostingDate,
		"application_deadline": input.ApplicationDeadline,
		"applicants_count":     input.ApplicantsCount.Int(),
		"description":          input.Description,
	}

	return r.db.Execute(ctx, query, vars)
}

// IncrementApplicants atomically adds one to a job's applicant count.
// The increment happens at the store, never as a fetch-then-write.
func (r *JobRepository) IncrementApplicants(ctx context.Context, id string) error {
	query := `UPDATE job SET applicants_count += 1 WHERE id = type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a job posting by ID. Application records referencing the
// job are left in place; the applied-job join drops them at read time.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE job WHERE id = type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// GetByIDs retrieves the jobs whose IDs appear in the given set, with an
// optional category filter and sort. IDs that no longer resolve simply
// drop out of the result.
func (r *JobRepository) GetByIDs(ctx context.Context, ids []string, category, sort *string) ([]*model.Job, error) {
	if len(ids) == 0 {
		return []*model.Job{}, nil
	}

	query := `SELECT * FROM job WHERE type::string(id) IN $ids`
	vars := map[string]interface{}{"ids": ids}

	if category != nil {
		query += ` AND category = $category`
		vars["category"] = *category
	}

	query += sortClause(sort)

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseJobsResult(result)
}

func parseJobResult(result interface{}) (*model.Job, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			resultData, ok := resp["result"].([]interface{})
			if !ok || len(resultData) == 0 {
				return nil, database.ErrNotFound
			}
			result = resultData[0]
		}
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	job := &model.Job{
		ID:                  convertSurrealID(data["id"]),
		Title:               getString(data, "title"),
		Category:            getString(data, "category"),
		PosterName:          getString(data, "poster_name"),
		PosterEmail:         getString(data, "poster_email"),
		PictureURL:          getString(data, "picture_url"),
		SalaryRange:         getString(data, "salary_range"),
		PostingDate:         getString(data, "posting_date"),
		ApplicationDeadline: getString(data, "application_deadline"),
		ApplicantsCount:     model.FlexInt(getInt(data, "applicants_count")),
		Description:         getString(data, "description"),
	}

	return job, nil
}

func parseJobsResult(result []interface{}) ([]*model.Job, error) {
	jobs := make([]*model.Job, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					job, err := parseJobResult(item)
					if err != nil {
						continue
					}
					jobs = append(jobs, job)
				}
				continue
			}
		}

		job, err := parseJobResult(res)
		if err != nil {
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
