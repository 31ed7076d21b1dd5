package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/models"
	"github.com/jackc/pgerrcode"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
// Every query is scoped by bucketlist_id so an item can never be read or
// mutated through a foreign parent.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new item under its parent bucketlist and returns it with
// server-assigned fields. A foreign-key violation on the parent reference is
// reported as [ErrBucketListNotFound].
func (r *itemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, item.BucketListID, item.Title, item.Description, item.Status)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.Create").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Item{}, ErrBucketListNotFound
		default:
			return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(
		&item.ID,
		&item.BucketListID,
		&item.Title,
		&item.Description,
		&item.Status,
		&item.DateCreated,
		&item.DateModified,
	); err != nil {
		log.Err(err).Str("func", "*itemRepository.Create").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// GetByID retrieves one item scoped under its parent bucketlist.
// Returns [ErrItemNotFound] when no matching row exists.
func (r *itemRepository) GetByID(ctx context.Context, bucketlistID, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, getItem, bucketlistID, itemID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.GetByID").Msg("error: row is nil")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(
		&item.ID,
		&item.BucketListID,
		&item.Title,
		&item.Description,
		&item.Status,
		&item.DateCreated,
		&item.DateModified,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.GetByID").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// ListByBucketList returns all items of one bucketlist in creation order.
func (r *itemRepository) ListByBucketList(ctx context.Context, bucketlistID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listItemsByBucketList, bucketlistID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListByBucketList").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.BucketListID, &item.Title, &item.Description, &item.Status, &item.DateCreated, &item.DateModified); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListByBucketList").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// Update applies the supplied fields of patch to the item and refreshes
// date_modified. Returns [ErrItemNotFound] when no matching row exists.
func (r *itemRepository) Update(ctx context.Context, bucketlistID, itemID int64, patch models.ItemPatch) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildItemUpdateQuery(bucketlistID, itemID, patch, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.Update").Msg("error building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.Update").Msg("error: row is nil")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := row.Scan(
		&item.ID,
		&item.BucketListID,
		&item.Title,
		&item.Description,
		&item.Status,
		&item.DateCreated,
		&item.DateModified,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.Update").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Delete removes one item scoped under its parent bucketlist.
// Returns [ErrItemNotFound] when no row was deleted.
func (r *itemRepository) Delete(ctx context.Context, bucketlistID, itemID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteItem, bucketlistID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.Delete").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
