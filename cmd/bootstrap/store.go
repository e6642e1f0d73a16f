package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"booking-api/internal/infra/store"
	"booking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewRecordStore,
	),
)

func NewRecordStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (store.RecordStore, error) {
	switch cfg.Store.Driver {
	case "file":
		return store.NewFileStore(cfg.Store.Path, logger)

	case "memory":
		return store.NewMemoryStore(), nil

	case "postgres":
		pg, cleanup, err := store.NewPostgresStore(cfg.DB, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return pg, nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
