package service

import (
	"context"
	"time"

	"github.com/buckylist/bucky/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	TokenDuration() time.Duration
}

// BucketListService implements bucketlist CRUD with ownership enforcement.
// Reads are open to any authenticated user; mutation is owner-only.
type BucketListService interface {
	Create(ctx context.Context, ownerID int64, req models.BucketListCreateRequest) (models.BucketList, error)
	Get(ctx context.Context, bucketlistID int64) (models.BucketList, error)
	ListForUser(ctx context.Context, userID int64, titleQuery string, limit int) ([]models.BucketList, error)
	Update(ctx context.Context, bucketlistID, ownerID int64, patch models.BucketListPatch) (models.BucketList, error)
	Delete(ctx context.Context, bucketlistID, ownerID int64) error
}

// ItemService implements item CRUD scoped under a parent bucketlist.
// Authorization always resolves against the parent bucketlist's owner.
type ItemService interface {
	Create(ctx context.Context, bucketlistID, ownerID int64, req models.ItemCreateRequest) (models.Item, error)
	Get(ctx context.Context, bucketlistID, itemID int64) (models.Item, error)
	List(ctx context.Context, bucketlistID int64) ([]models.Item, error)
	Update(ctx context.Context, bucketlistID, itemID, ownerID int64, patch models.ItemPatch) (models.Item, error)
	Delete(ctx context.Context, bucketlistID, itemID, ownerID int64) error
}
