package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/buckylist/bucky/internal/service"
	"github.com/buckylist/bucky/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "title missing", err: service.ErrTitleMissing, want: http.StatusBadRequest},
		{name: "wrapped title missing", err: fmt.Errorf("%w: bucketlist does not have a title", service.ErrTitleMissing), want: http.StatusBadRequest},
		{name: "description missing", err: service.ErrDescriptionMissing, want: http.StatusBadRequest},
		{name: "limit exceeded", err: service.ErrLimitExceeded, want: http.StatusBadRequest},
		{name: "username taken", err: store.ErrUsernameTaken, want: http.StatusBadRequest},
		{name: "email taken", err: store.ErrEmailTaken, want: http.StatusBadRequest},
		{name: "wrong password", err: service.ErrWrongPassword, want: http.StatusUnauthorized},
		{name: "token expired", err: service.ErrTokenIsExpired, want: http.StatusUnauthorized},
		{name: "no user found", err: store.ErrNoUserWasFound, want: http.StatusUnauthorized},
		{name: "wrapped no user found", err: fmt.Errorf("user search by email failed: %w", store.ErrNoUserWasFound), want: http.StatusUnauthorized},
		{name: "credential not present", err: ErrCredentialNotPresent, want: http.StatusUnauthorized},
		{name: "forbidden", err: service.ErrAccessForbidden, want: http.StatusForbidden},
		{name: "bucketlist not found", err: store.ErrBucketListNotFound, want: http.StatusNotFound},
		{name: "item not found", err: store.ErrItemNotFound, want: http.StatusNotFound},
		{name: "scanning row", err: store.ErrScanningRow, want: http.StatusInternalServerError},
		{name: "unmapped", err: errors.New("surprise"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFromError(tt.err); got != tt.want {
				t.Errorf("statusFromError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestCategoryFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{status: http.StatusBadRequest, want: "bad request"},
		{status: http.StatusUnauthorized, want: "unauthorized"},
		{status: http.StatusForbidden, want: "forbidden"},
		{status: http.StatusNotFound, want: "not found"},
		{status: http.StatusInternalServerError, want: "internal server error"},
		{status: http.StatusBadGateway, want: "internal server error"},
	}

	for _, tt := range tests {
		if got := categoryFromStatus(tt.status); got != tt.want {
			t.Errorf("categoryFromStatus(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
