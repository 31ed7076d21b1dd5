package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/models"
)

// bucketListRepository is the SQL-backed implementation of
// [BucketListRepository]. It owns the "bucketlists" table; items are loaded
// through the embedded item queries so that GetByID returns a fully
// populated aggregate.
type bucketListRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBucketListRepository constructs a [BucketListRepository] backed by the
// provided database connection and logger.
func NewBucketListRepository(db *DB, logger *logger.Logger) BucketListRepository {
	logger.Debug().Msg("creating bucketlist repository")
	return &bucketListRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new bucketlist row and returns it with server-assigned
// fields (ID, DateCreated, DateModified).
func (r *bucketListRepository) Create(ctx context.Context, bucketlist models.BucketList) (models.BucketList, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBucketList, bucketlist.Title, bucketlist.Description, bucketlist.CreatedBy)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bucketListRepository.Create").Msg("error: row is nil")
		return models.BucketList{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(
		&bucketlist.ID,
		&bucketlist.Title,
		&bucketlist.Description,
		&bucketlist.CreatedBy,
		&bucketlist.DateCreated,
		&bucketlist.DateModified,
	); err != nil {
		log.Err(err).Str("func", "*bucketListRepository.Create").Msg("error: scanning error")
		return models.BucketList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	bucketlist.Items = []models.Item{}

	return bucketlist, nil
}

// GetByID retrieves one bucketlist together with its items in creation
// order. Returns [ErrBucketListNotFound] when the row does not exist.
func (r *bucketListRepository) GetByID(ctx context.Context, bucketlistID int64) (models.BucketList, error) {
	log := logger.FromContext(ctx)

	var bucketlist models.BucketList
	row := r.db.QueryRowContext(ctx, getBucketList, bucketlistID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bucketListRepository.GetByID").Msg("error: row is nil")
		return models.BucketList{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(
		&bucketlist.ID,
		&bucketlist.Title,
		&bucketlist.Description,
		&bucketlist.CreatedBy,
		&bucketlist.DateCreated,
		&bucketlist.DateModified,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BucketList{}, ErrBucketListNotFound
		}

		log.Err(err).Str("func", "*bucketListRepository.GetByID").Msg("error: scanning error")
		return models.BucketList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	items, err := r.loadItems(ctx, bucketlistID)
	if err != nil {
		return models.BucketList{}, err
	}
	bucketlist.Items = items

	return bucketlist, nil
}

// ListByOwner returns up to limit bucketlists owned by ownerID in creation
// order, optionally filtered by a substring match on title. Items are loaded
// for every returned bucketlist.
func (r *bucketListRepository) ListByOwner(ctx context.Context, ownerID int64, titleQuery string, limit int) ([]models.BucketList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListByOwnerQuery(ownerID, titleQuery, limit)
	if err != nil {
		log.Err(err).Str("func", "*bucketListRepository.ListByOwner").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bucketListRepository.ListByOwner").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bucketlists := make([]models.BucketList, 0, limit)
	for rows.Next() {
		var b models.BucketList
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.CreatedBy, &b.DateCreated, &b.DateModified); err != nil {
			log.Err(err).Str("func", "*bucketListRepository.ListByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bucketlists = append(bucketlists, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for i := range bucketlists {
		items, err := r.loadItems(ctx, bucketlists[i].ID)
		if err != nil {
			return nil, err
		}
		bucketlists[i].Items = items
	}

	return bucketlists, nil
}

// Update applies the non-empty fields of patch to the bucketlist and
// refreshes date_modified. Returns [ErrBucketListNotFound] when the row does
// not exist.
func (r *bucketListRepository) Update(ctx context.Context, bucketlistID int64, patch models.BucketListPatch) (models.BucketList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBucketListUpdateQuery(bucketlistID, patch, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*bucketListRepository.Update").Msg("error building query")
		return models.BucketList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var bucketlist models.BucketList
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bucketListRepository.Update").Msg("error: row is nil")
		return models.BucketList{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := row.Scan(
		&bucketlist.ID,
		&bucketlist.Title,
		&bucketlist.Description,
		&bucketlist.CreatedBy,
		&bucketlist.DateCreated,
		&bucketlist.DateModified,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BucketList{}, ErrBucketListNotFound
		}

		log.Err(err).Str("func", "*bucketListRepository.Update").Msg("error: scanning error")
		return models.BucketList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	items, err := r.loadItems(ctx, bucketlistID)
	if err != nil {
		return models.BucketList{}, err
	}
	bucketlist.Items = items

	return bucketlist, nil
}

// Delete removes the bucketlist. Its items go with it: the items table
// carries ON DELETE CASCADE on bucketlist_id. Returns
// [ErrBucketListNotFound] when no row was deleted.
func (r *bucketListRepository) Delete(ctx context.Context, bucketlistID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBucketList, bucketlistID)
	if err != nil {
		log.Err(err).Str("func", "*bucketListRepository.Delete").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBucketListNotFound
	}

	return nil
}

func (r *bucketListRepository) loadItems(ctx context.Context, bucketlistID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listItemsByBucketList, bucketlistID)
	if err != nil {
		log.Err(err).Str("func", "*bucketListRepository.loadItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.BucketListID, &item.Title, &item.Description, &item.Status, &item.DateCreated, &item.DateModified); err != nil {
			log.Err(err).Str("func", "*bucketListRepository.loadItems").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
