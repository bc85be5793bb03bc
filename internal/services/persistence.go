package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/storage"
)

// readCollection loads the whole record-set stored under key. A
// missing key or a corrupt blob degrades to an empty collection.
func readCollection[T any](ctx context.Context, logger zerolog.Logger, kv storage.KV, key string) []T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logger.Error().
				Err(err).
				Str("key", key).
				Msg("failed to read collection")
		}
		return nil
	}

	var items []T
	err = json.Unmarshal(raw, &items)
	if err != nil {
		logger.Error().
			Err(err).
			Str("key", key).
			Msg("corrupt collection blob, falling back to empty")
		return nil
	}
	return items
}

// writeCollection replaces the whole record-set stored under key.
// Write failures are logged and swallowed: the in-memory result of
// the operation stands, persistence silently did not happen.
func writeCollection[T any](ctx context.Context, logger zerolog.Logger, kv storage.KV, key string, items []T) {
	raw, err := json.Marshal(items)
	if err != nil {
		logger.Error().
			Err(err).
			Str("key", key).
			Msg("failed to marshal collection")
		return
	}

	err = kv.Set(ctx, key, raw)
	if err != nil {
		logger.Error().
			Err(err).
			Str("key", key).
			Msg("failed to persist collection")
	}
}

// readObject loads a single-object key, reporting whether it existed
// and parsed.
func readObject[T any](ctx context.Context, logger zerolog.Logger, kv storage.KV, key string, out *T) bool {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logger.Error().
				Err(err).
				Str("key", key).
				Msg("failed to read object")
		}
		return false
	}

	err = json.Unmarshal(raw, out)
	if err != nil {
		logger.Error().
			Err(err).
			Str("key", key).
			Msg("corrupt object blob, treating as absent")
		return false
	}
	return true
}

func writeObject[T any](ctx context.Context, logger zerolog.Logger, kv storage.KV, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Error().
			Err(err).
			Str("key", key).
			Msg("failed to marshal object")
		return
	}

	err = kv.Set(ctx, key, raw)
	if err != nil {
		logger.Error().
			Err(err).
			Str("key", key).
			Msg("failed to persist object")
	}
}
