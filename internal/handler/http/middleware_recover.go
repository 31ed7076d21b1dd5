package http

import (
	"net/http"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/utils"
	"github.com/buckylist/bucky/models"
)

// withRecover converts a downstream panic into the same structured 500 body
// every other failure produces, instead of an empty connection reset.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromRequest(r)
				log.Error().Interface("panic", rec).Msg("panic recovered in http handler")

				utils.WriteJSON(w, models.ErrorResponse{
					Error:   "internal server error",
					Message: "internal server error",
				}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
