package app

import (
	"context"

	"github.com/focuskit/go-focus-app/internal/config"
	"github.com/focuskit/go-focus-app/internal/services"
	"github.com/focuskit/go-focus-app/internal/storage"
)

var globalStorage storage.KV

func MustOpenStorage() {
	cfg := config.Global().Storage

	kv, err := storage.OpenSQLite(cfg.Path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", cfg.Path).
			Msg("failed to open storage")
		panic(err)
	}
	globalStorage = kv

	globalLogger.Info().
		Str("path", cfg.Path).
		Msg("opened storage")
}

func CloseStorage() {
	err := globalStorage.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close storage")
		return
	}
	globalLogger.Info().Msg("closed storage")
}

// MustSeedData writes the first-run state: the trophy catalog and the
// default settings blobs. Every step is idempotent across restarts.
func MustSeedData() {
	ctx := context.Background()

	trophyService := services.NewTrophyService(globalLogger, globalStorage)
	seeded := trophyService.SeedIfEmpty(ctx, services.DefaultTrophies())
	if seeded > 0 {
		globalLogger.Info().
			Int("count", seeded).
			Msg("seeded trophy catalog")
	}

	settingsService := services.NewSettingsService(globalLogger, globalStorage)
	settingsService.InitDefaults(ctx)
}
