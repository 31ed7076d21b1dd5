package models

import "time"

// BucketList is a named, owned collection of goal items.
//
// Every bucketlist has exactly one owning user (CreatedBy). Items live and die
// with their parent: deleting a bucketlist cascade-deletes its items.
type BucketList struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Items are the bucketlist's entries in creation order.
	Items []Item `json:"items"`

	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`

	// CreatedBy is the UserID of the owning user. Only the owner may mutate
	// or delete the bucketlist; any authenticated user may read it.
	CreatedBy int64 `json:"created_by"`
}

// TableName returns the name of the database table
// associated with the BucketList model.
func (b BucketList) TableName() string {
	return "bucketlists"
}

// BucketListPatch carries the mutable bucketlist fields for a partial update.
// Empty fields are left untouched.
type BucketListPatch struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
