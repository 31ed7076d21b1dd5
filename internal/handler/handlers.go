package handler

import (
	"github.com/buckylist/bucky/internal/config"
	"github.com/buckylist/bucky/internal/handler/http"
	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
