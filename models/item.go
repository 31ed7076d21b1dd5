package models

import "time"

// Item is a single goal entry belonging to exactly one bucketlist.
//
// Items carry no owner of their own: authorization always resolves against
// the parent bucketlist's CreatedBy.
type Item struct {
	ID int64 `json:"id"`

	// BucketListID references the parent bucketlist. It is implied by the
	// resource path and therefore not serialized.
	BucketListID int64 `json:"-"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Status is false while the goal is incomplete and true once done.
	Status bool `json:"status"`

	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemPatch carries the mutable item fields for a partial update.
// Empty strings are left untouched; Status is applied only when supplied.
type ItemPatch struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      *bool  `json:"status"`
}
