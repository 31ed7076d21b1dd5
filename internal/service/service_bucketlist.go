package service

import (
	"context"
	"fmt"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/store"
	"github.com/buckylist/bucky/models"
)

const (
	// defaultListLimit is applied when a list request does not specify one.
	defaultListLimit = 20

	// maxListLimit is the hard cap on page size; larger requests are
	// rejected, not clamped.
	maxListLimit = 100
)

// bucketListService is the concrete implementation of BucketListService.
//
// Every mutation follows the same shape: read the entity, check ownership,
// then apply the change. Reads are open to any authenticated user.
type bucketListService struct {
	bucketListRepository store.BucketListRepository
	logger               *logger.Logger
}

// NewBucketListService constructs a BucketListService wired to the given
// repository.
func NewBucketListService(bucketListRepository store.BucketListRepository, logger *logger.Logger) BucketListService {
	return &bucketListService{
		bucketListRepository: bucketListRepository,
		logger:               logger,
	}
}

// Create validates the request and persists a new bucketlist owned by
// ownerID.
//
// Returns ErrTitleMissing when the title is empty and ErrDescriptionMissing
// when the description field was absent from the request. An explicitly
// empty description is accepted.
func (s *bucketListService) Create(ctx context.Context, ownerID int64, req models.BucketListCreateRequest) (models.BucketList, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" {
		return models.BucketList{}, fmt.Errorf("%w: bucketlist does not have a title", ErrTitleMissing)
	}
	if req.Description == nil {
		return models.BucketList{}, ErrDescriptionMissing
	}

	created, err := s.bucketListRepository.Create(ctx, models.BucketList{
		Title:       req.Title,
		Description: *req.Description,
		CreatedBy:   ownerID,
	})
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("bucketlist creation ended with error")
		return models.BucketList{}, fmt.Errorf("bucketlist creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns one bucketlist with its items. Read access is not
// ownership-scoped.
func (s *bucketListService) Get(ctx context.Context, bucketlistID int64) (models.BucketList, error) {
	return s.bucketListRepository.GetByID(ctx, bucketlistID)
}

// ListForUser returns the caller's own bucketlists, optionally filtered by a
// substring match on title.
//
// A non-positive limit selects the default page size; limits above
// maxListLimit fail with ErrLimitExceeded regardless of how many rows would
// actually match.
func (s *bucketListService) ListForUser(ctx context.Context, userID int64, titleQuery string, limit int) ([]models.BucketList, error) {
	if limit > maxListLimit {
		return nil, ErrLimitExceeded
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.bucketListRepository.ListByOwner(ctx, userID, titleQuery, limit)
}

// Update applies the non-empty fields of patch to the bucketlist.
//
// Returns store.ErrBucketListNotFound when the bucketlist does not exist and
// ErrAccessForbidden when ownerID is not the creator.
func (s *bucketListService) Update(ctx context.Context, bucketlistID, ownerID int64, patch models.BucketListPatch) (models.BucketList, error) {
	log := logger.FromContext(ctx)

	bucketlist, err := s.bucketListRepository.GetByID(ctx, bucketlistID)
	if err != nil {
		return models.BucketList{}, err
	}

	if bucketlist.CreatedBy != ownerID {
		log.Warn().
			Int64("bucketlist", bucketlistID).
			Int64("owner", bucketlist.CreatedBy).
			Int64("caller", ownerID).
			Msg("update rejected: caller is not the owner")
		return models.BucketList{}, ErrAccessForbidden
	}

	return s.bucketListRepository.Update(ctx, bucketlistID, patch)
}

// Delete removes the bucketlist and, through the cascade on the items table,
// all of its items.
//
// Returns store.ErrBucketListNotFound when the bucketlist does not exist and
// ErrAccessForbidden when ownerID is not the creator.
func (s *bucketListService) Delete(ctx context.Context, bucketlistID, ownerID int64) error {
	log := logger.FromContext(ctx)

	bucketlist, err := s.bucketListRepository.GetByID(ctx, bucketlistID)
	if err != nil {
		return err
	}

	if bucketlist.CreatedBy != ownerID {
		log.Warn().
			Int64("bucketlist", bucketlistID).
			Int64("owner", bucketlist.CreatedBy).
			Int64("caller", ownerID).
			Msg("delete rejected: caller is not the owner")
		return ErrAccessForbidden
	}

	return s.bucketListRepository.Delete(ctx, bucketlistID)
}
