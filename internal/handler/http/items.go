package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/service"
	"github.com/buckylist/bucky/internal/store"
	"github.com/buckylist/bucky/internal/utils"
	"github.com/buckylist/bucky/models"
)

// itemLocation is the canonical URL path of an item inside its bucketlist.
func itemLocation(bucketlistID, itemID int64) string {
	return fmt.Sprintf("%s/bucketlists/%d/items/%d", apiPrefix, bucketlistID, itemID)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	bucketlistID, err := parseIDParam(r, "bucketlistID", store.ErrBucketListNotFound)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	items, err := h.services.ItemService.List(ctx, bucketlistID)
	if err != nil {
		log.Err(err).Int64("bucketlist_id", bucketlistID).Msg("listing items failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
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

	var req models.ItemCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding item create request body")
		h.respondError(w, r, service.ErrInvalidDataProvided)
		return
	}

	item, err := h.services.ItemService.Create(ctx, bucketlistID, userID, req)
	if err != nil {
		log.Err(err).Int64("bucketlist_id", bucketlistID).Msg("item creation failed")
		h.respondError(w, r, err)
		return
	}

	log.Info().Int64("bucketlist_id", bucketlistID).Int64("item_id", item.ID).Msg("item created")
	utils.WriteJSON(w, models.MessageResponse{
		Message:  "Item successfully added in bucketlist.",
		Location: itemLocation(bucketlistID, item.ID),
	}, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	bucketlistID, err := parseIDParam(r, "bucketlistID", store.ErrBucketListNotFound)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	itemID, err := parseIDParam(r, "itemID", store.ErrItemNotFound)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.services.ItemService.Get(ctx, bucketlistID, itemID)
	if err != nil {
		log.Err(err).Int64("bucketlist_id", bucketlistID).Int64("item_id", itemID).Msg("item lookup failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
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

	itemID, err := parseIDParam(r, "itemID", store.ErrItemNotFound)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("error decoding item update request body")
		h.respondError(w, r, service.ErrInvalidDataProvided)
		return
	}

	item, err := h.services.ItemService.Update(ctx, bucketlistID, itemID, userID, patch)
	if err != nil {
		log.Err(err).Int64("bucketlist_id", bucketlistID).Int64("item_id", itemID).Msg("item update failed")
		h.respondError(w, r, err)
		return
	}

	log.Info().Int64("bucketlist_id", bucketlistID).Int64("item_id", item.ID).Msg("item updated")
	utils.WriteJSON(w, models.MessageResponse{
		Message:  "Item updated successfully.",
		Location: itemLocation(bucketlistID, item.ID),
	}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
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

	itemID, err := parseIDParam(r, "itemID", store.ErrItemNotFound)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.services.ItemService.Delete(ctx, bucketlistID, itemID, userID); err != nil {
		log.Err(err).Int64("bucketlist_id", bucketlistID).Int64("item_id", itemID).Msg("item deletion failed")
		h.respondError(w, r, err)
		return
	}

	log.Info().Int64("bucketlist_id", bucketlistID).Int64("item_id", itemID).Msg("item deleted")
	w.WriteHeader(http.StatusNoContent)
}
