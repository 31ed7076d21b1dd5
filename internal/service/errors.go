package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")
	ErrTokenIsInvalid = errors.New("token is invalid")
	ErrTokenCreation  = errors.New("token creation failed")

	// ErrTitleMissing is returned when a bucketlist or item is submitted
	// without a title.
	ErrTitleMissing = errors.New("title is required")

	// ErrDescriptionMissing is returned when the description field is absent
	// from a create request. An empty description is allowed; a missing one
	// is not.
	ErrDescriptionMissing = errors.New("description not found")

	// ErrLimitExceeded is returned when a list request asks for more than
	// the maximum page size.
	ErrLimitExceeded = errors.New("maximum pagination limit exceeded")

	// ErrAccessForbidden is returned when an authenticated user attempts to
	// mutate a resource owned by somebody else.
	ErrAccessForbidden = errors.New("access to resource forbidden")
)
