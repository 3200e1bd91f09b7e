package handler

import (
	"errors"

	"github.com/dreamjobs/api/internal/database"
	"github.com/dreamjobs/api/internal/model"
	"github.com/dreamjobs/api/internal/service"
	"github.com/dreamjobs/api/pkg/jwt"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, jwt.ErrTokenExpired),
		errors.Is(err, jwt.ErrInvalidSignature),
		errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrTokenNotYetValid):
		return model.NewUnauthorizedError(err.Error())

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrJobIDRequired):
		return model.NewBadRequestError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")
	case errors.Is(err, database.ErrNotFound):
		return model.NewNotFoundError("record")

	// ===== Store Errors → 500 =====
	case errors.Is(err, database.ErrConnection),
		errors.Is(err, database.ErrQuery):
		return model.NewInternalError("storage failure")
	}

	// Default: internal server error with a generic message
	return model.NewInternalError("an unexpected error occurred")
}
