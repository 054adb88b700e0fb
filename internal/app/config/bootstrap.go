package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	// Sync on stdout/stderr returns EINVAL on some platforms; nothing to flush then.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")
	return nil
}
