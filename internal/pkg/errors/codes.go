package errors

import "net/http"

var (
	ErrInvalidCoordinate = New(
		"INVALID_COORDINATE",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrEmptySiteSet = New(
		"EMPTY_SITE_SET",
		"No eligible sites match the request",
		http.StatusNotFound,
	)

	ErrDuplicateSite = New(
		"DUPLICATE_SITE",
		"Duplicate site in request",
		http.StatusBadRequest,
	)

	ErrInfeasibleSite = New(
		"INFEASIBLE_SITE",
		"Site round trip exceeds the daily deadline",
		http.StatusUnprocessableEntity,
	)

	ErrPlanNotFound = New(
		"PLAN_NOT_FOUND",
		"Plan not found",
		http.StatusNotFound,
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

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
