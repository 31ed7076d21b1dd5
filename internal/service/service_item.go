package service

import (
	"context"
	"fmt"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/store"
	"github.com/buckylist/bucky/models"
)

// itemService is the concrete implementation of ItemService.
//
// Items have no owner of their own: every authorization decision resolves
// against the parent bucketlist's created_by, which is why the service holds
// both repositories.
type itemService struct {
	bucketListRepository store.BucketListRepository
	itemRepository       store.ItemRepository
	logger               *logger.Logger
}

// NewItemService constructs an ItemService wired to the given repositories.
func NewItemService(bucketListRepository store.BucketListRepository, itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		bucketListRepository: bucketListRepository,
		itemRepository:       itemRepository,
		logger:               logger,
	}
}

// Create validates the request and persists a new item under the given
// bucketlist.
//
// Returns store.ErrBucketListNotFound when the parent does not exist,
// ErrAccessForbidden when ownerID does not own the parent, ErrTitleMissing /
// ErrDescriptionMissing on invalid input.
func (s *itemService) Create(ctx context.Context, bucketlistID, ownerID int64, req models.ItemCreateRequest) (models.Item, error) {
	if err := s.checkOwnership(ctx, bucketlistID, ownerID); err != nil {
		return models.Item{}, err
	}

	if req.Title == "" {
		return models.Item{}, fmt.Errorf("%w: item does not have a title", ErrTitleMissing)
	}
	if req.Description == nil {
		return models.Item{}, ErrDescriptionMissing
	}

	created, err := s.itemRepository.Create(ctx, models.Item{
		BucketListID: bucketlistID,
		Title:        req.Title,
		Description:  *req.Description,
		Status:       req.Status,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("bucketlist", bucketlistID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns one item of the given bucketlist. Read access is not
// ownership-scoped, but the parent must exist and the item must belong to it.
func (s *itemService) Get(ctx context.Context, bucketlistID, itemID int64) (models.Item, error) {
	if _, err := s.bucketListRepository.GetByID(ctx, bucketlistID); err != nil {
		return models.Item{}, err
	}

	return s.itemRepository.GetByID(ctx, bucketlistID, itemID)
}

// List returns all items of the given bucketlist in creation order.
func (s *itemService) List(ctx context.Context, bucketlistID int64) ([]models.Item, error) {
	if _, err := s.bucketListRepository.GetByID(ctx, bucketlistID); err != nil {
		return nil, err
	}

	return s.itemRepository.ListByBucketList(ctx, bucketlistID)
}

// Update applies the supplied fields of patch to the item.
//
// Ownership is checked against the parent bucketlist; a non-owner gets
// ErrAccessForbidden even when the item exists.
func (s *itemService) Update(ctx context.Context, bucketlistID, itemID, ownerID int64, patch models.ItemPatch) (models.Item, error) {
	if err := s.checkOwnership(ctx, bucketlistID, ownerID); err != nil {
		return models.Item{}, err
	}

	return s.itemRepository.Update(ctx, bucketlistID, itemID, patch)
}

// Delete removes one item. Same Forbidden semantics as Update.
func (s *itemService) Delete(ctx context.Context, bucketlistID, itemID, ownerID int64) error {
	if err := s.checkOwnership(ctx, bucketlistID, ownerID); err != nil {
		return err
	}

	return s.itemRepository.Delete(ctx, bucketlistID, itemID)
}

// checkOwnership loads the parent bucketlist and verifies that ownerID is
// its creator. The not-found case deliberately precedes the ownership check
// so that a missing parent is reported as 404, not 403.
func (s *itemService) checkOwnership(ctx context.Context, bucketlistID, ownerID int64) error {
	bucketlist, err := s.bucketListRepository.GetByID(ctx, bucketlistID)
	if err != nil {
		return err
	}

	if bucketlist.CreatedBy != ownerID {
		logger.FromContext(ctx).Warn().
			Int64("bucketlist", bucketlistID).
			Int64("owner", bucketlist.CreatedBy).
			Int64("caller", ownerID).
			Msg("mutation rejected: caller does not own parent bucketlist")
		return ErrAccessForbidden
	}

	return nil
}
