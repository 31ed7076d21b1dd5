package store

import (
	"context"

	"github.com/buckylist/bucky/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// BucketListRepository persists bucketlists and their ownership metadata.
type BucketListRepository interface {
	Create(ctx context.Context, bucketlist models.BucketList) (models.BucketList, error)
	GetByID(ctx context.Context, bucketlistID int64) (models.BucketList, error)
	ListByOwner(ctx context.Context, ownerID int64, titleQuery string, limit int) ([]models.BucketList, error)
	Update(ctx context.Context, bucketlistID int64, patch models.BucketListPatch) (models.BucketList, error)
	Delete(ctx context.Context, bucketlistID int64) error
}

// ItemRepository persists items scoped under their parent bucketlist.
type ItemRepository interface {
	Create(ctx context.Context, item models.Item) (models.Item, error)
	GetByID(ctx context.Context, bucketlistID, itemID int64) (models.Item, error)
	ListByBucketList(ctx context.Context, bucketlistID int64) ([]models.Item, error)
	Update(ctx context.Context, bucketlistID, itemID int64, patch models.ItemPatch) (models.Item, error)
	Delete(ctx context.Context, bucketlistID, itemID int64) error
}
