package http

import (
	"errors"
	"net/http"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/service"
	"github.com/buckylist/bucky/internal/store"
	"github.com/buckylist/bucky/internal/utils"
	"github.com/buckylist/bucky/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrTitleMissing:        http.StatusBadRequest,
	service.ErrDescriptionMissing:  http.StatusBadRequest,
	service.ErrLimitExceeded:       http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,
	service.ErrAccessForbidden:     http.StatusForbidden,

	store.ErrUsernameTaken:      http.StatusBadRequest,
	store.ErrEmailTaken:         http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrBucketListNotFound: http.StatusNotFound,
	store.ErrItemNotFound:       http.StatusNotFound,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	ErrCredentialNotPresent: http.StatusUnauthorized,
	ErrCredentialInvalid:    http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func categoryFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	default:
		return "internal server error"
	}
}

// respondError maps err to its HTTP status and writes the structured
// {error, message} payload. Unmapped errors degrade to a generic 500 body so
// that no internal detail leaks to the client.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = "internal server error"
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Error:   categoryFromStatus(status),
		Message: message,
	}, status)
}
