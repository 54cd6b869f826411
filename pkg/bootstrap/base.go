package bootstrap

import (
	"context"
	"fmt"

	"avery/internal/config"
	"avery/internal/logger"
	"avery/internal/store"
)

type Base struct {
	Config *config.Config
	Logger logger.Logger
	Store  *store.FileStore
}

func NewBase(cfg *config.Config, log logger.Logger) *Base {
	return &Base{
		Config: cfg,
		Logger: log,
	}
}

func (b *Base) InitStore() error {
	fileStore, err := store.NewFileStore(b.Config.Storage, b.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize file store: %w", err)
	}

	b.Store = fileStore
	return nil
}

func (b *Base) Shutdown(ctx context.Context, additionalShutdown func(ctx context.Context) []error) error {
	b.Logger.Info("Shutting down application...")

	var errs []error

	if additionalShutdown != nil {
		errs = append(errs, additionalShutdown(ctx)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	b.Logger.Info("Application exited successfully")
	return nil
}
