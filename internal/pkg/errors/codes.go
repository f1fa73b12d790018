package errors

import "net/http"

var (
	// ErrInvalidGeometry marks a malformed or inverted bounding box.
	// It is raised before any feature query is issued.
	ErrInvalidGeometry = New(
		"INVALID_GEOMETRY",
		"Invalid bounding box: min must not exceed max on either axis",
		http.StatusBadRequest,
	)

	// ErrServiceUnavailable is returned when the feature-query service
	// fails the initial request and the single retry.
	ErrServiceUnavailable = New(
		"SERVICE_UNAVAILABLE",
		"Feature-query service unavailable after retry",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"File storage operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
