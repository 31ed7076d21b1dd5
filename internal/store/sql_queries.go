package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/buckylist/bucky/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createBucketList = `INSERT INTO bucketlists (title, description, created_by)
    VALUES ($1, $2, $3)
    RETURNING bucketlist_id, title, description, created_by, date_created, date_modified;`

	getBucketList = `SELECT bucketlist_id, title, description, created_by, date_created, date_modified
    FROM bucketlists
    WHERE bucketlist_id = $1;`

	deleteBucketList = `DELETE FROM bucketlists
    WHERE bucketlist_id = $1;`

	createItem = `INSERT INTO items (bucketlist_id, title, description, status)
    VALUES ($1, $2, $3, $4)
    RETURNING item_id, bucketlist_id, title, description, status, date_created, date_modified;`

	getItem = `SELECT item_id, bucketlist_id, title, description, status, date_created, date_modified
    FROM items
    WHERE bucketlist_id = $1 AND item_id = $2;`

	listItemsByBucketList = `SELECT item_id, bucketlist_id, title, description, status, date_created, date_modified
    FROM items
    WHERE bucketlist_id = $1
    ORDER BY date_created, item_id;`

	deleteItem = `DELETE FROM items
    WHERE bucketlist_id = $1 AND item_id = $2;`
)

// psql is the shared statement builder configured for $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListByOwnerQuery assembles the owner-scoped bucketlist listing query.
// When titleQuery is non-empty, rows are additionally filtered by a substring
// match on title. Results come back in creation order, capped at limit.
func buildListByOwnerQuery(ownerID int64, titleQuery string, limit int) (string, []any, error) {
	builder := psql.
		Select("bucketlist_id", "title", "description", "created_by", "date_created", "date_modified").
		From("bucketlists").
		Where(sq.Eq{"created_by": ownerID})

	if titleQuery != "" {
		builder = builder.Where(sq.Like{"title": "%" + titleQuery + "%"})
	}

	return builder.
		OrderBy("date_created", "bucketlist_id").
		Limit(uint64(limit)).
		ToSql()
}

// buildBucketListUpdateQuery assembles a partial UPDATE for a bucketlist.
// Only non-empty patch fields are applied; date_modified is always refreshed.
func buildBucketListUpdateQuery(bucketlistID int64, patch models.BucketListPatch, now time.Time) (string, []any, error) {
	builder := psql.
		Update("bucketlists").
		Set("date_modified", now)

	if patch.Title != "" {
		builder = builder.Set("title", patch.Title)
	}
	if patch.Description != "" {
		builder = builder.Set("description", patch.Description)
	}

	return builder.
		Where(sq.Eq{"bucketlist_id": bucketlistID}).
		Suffix("RETURNING bucketlist_id, title, description, created_by, date_created, date_modified").
		ToSql()
}

// buildItemUpdateQuery assembles a partial UPDATE for an item scoped under
// its parent bucketlist. Empty strings are skipped; Status is applied only
// when the pointer is set.
func buildItemUpdateQuery(bucketlistID, itemID int64, patch models.ItemPatch, now time.Time) (string, []any, error) {
	builder := psql.
		Update("items").
		Set("date_modified", now)

	if patch.Title != "" {
		builder = builder.Set("title", patch.Title)
	}
	if patch.Description != "" {
		builder = builder.Set("description", patch.Description)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}

	return builder.
		Where(sq.Eq{"bucketlist_id": bucketlistID, "item_id": itemID}).
		Suffix("RETURNING item_id, bucketlist_id, title, description, status, date_created, date_modified").
		ToSql()
}
