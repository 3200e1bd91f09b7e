package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Job represents a job posting
type Job struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Category            string  `json:"category"`
	PosterName          string  `json:"posterName"`
	PosterEmail         string  `json:"posterEmail"`
	PictureURL          string  `json:"pictureUrl"`
	SalaryRange         string  `json:"salaryRange"`
	PostingDate         string  `json:"postingDate"`
	ApplicationDeadline string  `json:"applicationDeadline"`
	ApplicantsCount     FlexInt `json:"applicantsCount"`
	Description         string  `json:"description"`
}

// AppliedJob links an applicant to a job posting. Records are immutable once
// created; JobID references Job.ID by value with no integrity enforcement.
type AppliedJob struct {
	ID             string `json:"id"`
	ApplicantEmail string `json:"applicantEmail"`
	JobID          string `json:"jobId"`
}

// JobInput is the request body for creating or replacing a job posting.
// ApplicantsCount accepts both JSON numbers and numeric strings.
type JobInput struct {
	Title               string  `json:"title"`
	Category            string  `json:"category"`
	PosterName          string  `json:"posterName"`
	PosterEmail         string  `json:"posterEmail"`
	PictureURL          string  `json:"pictureUrl"`
	SalaryRange         string  `json:"salaryRange"`
	PostingDate         string  `json:"postingDate"`
	ApplicationDeadline string  `json:"applicationDeadline"`
	ApplicantsCount     FlexInt `json:"applicantsCount"`
	Description         string  `json:"description"`
}

// AppliedJobInput is the request body for submitting a job application
type AppliedJobInput struct {
	ApplicantEmail string `json:"applicantEmail"`
	JobID          string `json:"jobId"`
}

// SortDirection values accepted by the listing endpoints
const (
	SortAscending  = "asc"
	SortDescending = "dsc"
)

// JobFilter holds the optional listing parameters. Nil pointer fields mean
// the parameter was absent; Page and Limit are taken as supplied, so the
// offset math is visible to callers before any clamping happens.
type JobFilter struct {
	Category    *string
	Title       *string
	Sort        *string
	PosterEmail *string
	Page        int
	Limit       int
}

// Offset computes the raw skip offset (page-1)*limit. Non-positive pages
// yield a negative offset; clamping is the query layer's decision.
func (f JobFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// HasPagination reports whether a result window was requested. Only a
// positive limit activates LIMIT/START: a page number alone would mean
// LIMIT 0, which selects nothing, so it is ignored and the full result
// is returned instead.
func (f JobFilter) HasPagination() bool {
	return f.Limit > 0
}

// FlexInt is an int that unmarshals from either a JSON number or a numeric
// string, matching clients that post counts as text ("0" becomes 0).
// Unparseable values coerce to zero rather than failing the request.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Tolerate fractional numbers by truncating
		if fl, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			*f = FlexInt(int(fl))
			return nil
		}
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// MarshalJSON implements json.Marshaler; always emits a JSON number
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Int returns the plain integer value
func (f FlexInt) Int() int {
	return int(f)
}
