// Package storage provides the key-value blob backend the app
// persists into. Every logical collection lives under one key and is
// read and written as a whole JSON blob; there are no partial updates
// at this boundary.
package storage

import (
	"context"
	"errors"
)

// Storage keys, one record-set each.
const (
	KeyTasks                = "tasks"
	KeyJournalEntries       = "journal_entries"
	KeyTrophies             = "trophies"
	KeyAcquiredTrophies     = "acquired_trophies"
	KeyDailyChallenge       = "daily_challenge"
	KeyPomodoroSettings     = "pomodoro_settings"
	KeyNotificationSettings = "notification_settings"
)

var ErrKeyNotFound = errors.New("storage key not found")

type KV interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
