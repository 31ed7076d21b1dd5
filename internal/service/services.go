package service

import (
	"github.com/buckylist/bucky/internal/config"
	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/store"
)

type Services struct {
	AuthService       AuthService
	BucketListService BucketListService
	ItemService       ItemService
}

func NewServices(repositories *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repositories.UserRepository, cfg, logger),
		BucketListService: NewBucketListService(repositories.BucketListRepository, logger),
		ItemService:       NewItemService(repositories.BucketListRepository, repositories.ItemRepository, logger),
	}
}
