package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/service"
	"github.com/buckylist/bucky/internal/store"
	"github.com/buckylist/bucky/internal/utils"
	"github.com/buckylist/bucky/models"
)

// parseIDParam extracts a numeric URL parameter. Non-numeric values map to
// notFoundErr so that /bucketlists/abc answers 404 the same way a numeric ID
// with no row behind it does.
func parseIDParam(r *http.Request, param string, notFoundErr error) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, notFoundErr
	}
	return id, nil
}

// callerID pulls the authenticated user's ID stored by the auth middleware.
func callerID(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrCredentialNotPresent
	}
	return userID, nil
}

// bucketListLocation is the canonical URL path of a bucketlist.
func bucketListLocation(bucketlistID int64) string {
	return fmt.Sprintf("%s/bucketlists/%d", apiPrefix, bucketlistID)
}

// listBucketLists answers GET /bucketlists with the caller's bucketlists in
// creation order. Optional query parameters: q (title substring filter) and
// limit (page size, default 20, capped at 100).
func (h *Handler) listBucketLists(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, err := callerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var limit int
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil {
			log.Err(err).Str("limit", rawLimit).Msg("bad limit query parameter")
			h.respondError(w, r, service.ErrInvalidDataProvided)
			return
		}
	}

	bucketlists, err := h.services.BucketListService.ListForUser(ctx, userID, r.URL.Query().Get("q"), limit)
	if err != nil {
		log.Err(err).Msg("listing bucketlists failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, bucketlists, http.StatusOK)
}

func (h *Handler) createBucketList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, err := callerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req models.BucketListCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding bucketlist create request body")
		h.respondError(w, r, service.ErrInvalidDataProvided)
		return
	}

	bucketlist, err := h.services.BucketListService.Create(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("bucketlist creation failed")
		h.respondError(w, r, err)
		return
	}

	log.Info().Int64("bucketlist_id", bucketlist.ID).Msg("bucketlist created")
	utils.WriteJSON(w, models.MessageResponse{
		Message:  "Bucketlist created successfully.",
		Location: bucketListLocation(bucketlist.ID),
	}, http.StatusCreated)
}

func (h *Handler) getBucketList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	bucketlistID, err := parseIDParam(r, "bucketlistID", store.ErrBucketListNotFound)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	bucketlist, err := h.services.BucketListService.Get(ctx, bucketlistID)
	if err != nil {
		log.Err(err).Int64("bucketlist_id", bucketlistID).Msg("bucketlist lookup failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, bucketlist, http.StatusOK)
}

func (h *Handler) updateBucketList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, err := callerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	bucketlistID, err := parseIDParam(r, "bucketlistID", store.ErrBucketListNotFound)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var patch models.BucketListPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("error decoding bucketlist update request body")
		h.respondError(w, r, service.ErrInvalidDataProvided)
		return
	}

	bucketlist, err := h.services.BucketListService.Update(ctx, bucketlistID, userID, patch)
	if err != nil {
		log.Err(err).Int64("bucketlist_id", bucketlistID).Msg("bucketlist update failed")
		h.respondError(w, r, err)
		return
	}

	log.Info().Int64("bucketlist_id", bucketlist.ID).Msg("bucketlist updated")
	utils.WriteJSON(w, models.MessageResponse{
		Message:  "Bucketlist updated successfully.",
		Location: bucketListLocation(bucketlist.ID),
	}, http.StatusOK)
}

func (h *Handler) deleteBucketList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, err := callerID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	bucketlistID, err := parseIDParam(r, "bucketlistID", store.ErrBucketListNotFound)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.services.BucketListService.Delete(ctx, bucketlistID, userID); err != nil {
		log.Err(err).Int64("bucketlist_id", bucketlistID).Msg("bucketlist deletion failed")
		h.respondError(w, r, err)
		return
	}

	log.Info().Int64("bucketlist_id", bucketlistID).Msg("bucketlist deleted")
	w.WriteHeader(http.StatusNoContent)
}
