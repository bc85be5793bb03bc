package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/dates"
	"github.com/focuskit/go-focus-app/internal/models"
	"github.com/focuskit/go-focus-app/internal/storage"
)

type journalServiceImpl struct {
	logger zerolog.Logger
	kv     storage.KV
	clock  dates.Clock
}

func NewJournalService(
	logger zerolog.Logger,
	kv storage.KV,
	clock dates.Clock,
) JournalService {
	return &journalServiceImpl{
		logger: logger,
		kv:     kv,
		clock:  clock,
	}
}

func (s *journalServiceImpl) ListEntries(ctx context.Context) []models.JournalEntry {
	entries := readCollection[models.JournalEntry](ctx, s.logger, s.kv, storage.KeyJournalEntries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}

func (s *journalServiceImpl) GetEntry(ctx context.Context, id string) (*models.JournalEntry, error) {
	entries := s.ListEntries(ctx)
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}

	s.logger.Info().
		Str("entry_id", id).
		Msg("journal entry not found")
	return nil, ErrEntryNotFound
}

func (s *journalServiceImpl) CreateEntry(ctx context.Context, content string) (*models.JournalEntry, error) {
	err := validateContent(content)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	entries := readCollection[models.JournalEntry](ctx, s.logger, s.kv, storage.KeyJournalEntries)
	entries = append(entries, entry)
	writeCollection(ctx, s.logger, s.kv, storage.KeyJournalEntries, entries)

	s.logger.Info().
		Str("entry_id", entry.ID).
		Msg("created journal entry")
	return &entry, nil
}

func (s *journalServiceImpl) UpdateEntry(ctx context.Context, id, content string) (*models.JournalEntry, error) {
	err := validateContent(content)
	if err != nil {
		return nil, err
	}

	entries := readCollection[models.JournalEntry](ctx, s.logger, s.kv, storage.KeyJournalEntries)
	for i := range entries {
		if entries[i].ID != id {
			continue
		}

		entries[i].Content = content
		entries[i].UpdatedAt = s.clock.Now()
		writeCollection(ctx, s.logger, s.kv, storage.KeyJournalEntries, entries)

		s.logger.Info().
			Str("entry_id", id).
			Msg("updated journal entry")
		return &entries[i], nil
	}

	s.logger.Info().
		Str("entry_id", id).
		Msg("journal entry not found")
	return nil, ErrEntryNotFound
}

func (s *journalServiceImpl) DeleteEntry(ctx context.Context, id string) bool {
	entries := readCollection[models.JournalEntry](ctx, s.logger, s.kv, storage.KeyJournalEntries)

	remaining := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			remaining = append(remaining, entry)
		}
	}
	if len(remaining) == len(entries) {
		return false
	}

	writeCollection(ctx, s.logger, s.kv, storage.KeyJournalEntries, remaining)

	s.logger.Info().
		Str("entry_id", id).
		Msg("deleted journal entry")
	return true
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if len([]rune(content)) > models.MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}
