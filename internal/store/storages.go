package store

import (
	"github.com/buckylist/bucky/internal/logger"
)

// Repositories groups all data-access interfaces behind one constructor so
// the service layer can be wired from a single value.
type Repositories struct {
	UserRepository       UserRepository
	BucketListRepository BucketListRepository
	ItemRepository       ItemRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, logger),
		BucketListRepository: NewBucketListRepository(db, logger),
		ItemRepository:       NewItemRepository(db, logger),
	}
}
