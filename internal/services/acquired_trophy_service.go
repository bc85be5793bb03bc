package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/dates"
	"github.com/focuskit/go-focus-app/internal/models"
	"github.com/focuskit/go-focus-app/internal/storage"
)

type acquiredTrophyServiceImpl struct {
	logger zerolog.Logger
	kv     storage.KV
	clock  dates.Clock
}

func NewAcquiredTrophyService(
	logger zerolog.Logger,
	kv storage.KV,
	clock dates.Clock,
) AcquiredTrophyService {
	return &acquiredTrophyServiceImpl{
		logger: logger,
		kv:     kv,
		clock:  clock,
	}
}

func (s *acquiredTrophyServiceImpl) ListAcquired(ctx context.Context) []models.AcquiredTrophy {
	return readCollection[models.AcquiredTrophy](ctx, s.logger, s.kv, storage.KeyAcquiredTrophies)
}

func (s *acquiredTrophyServiceImpl) GetByTrophyID(ctx context.Context, trophyID string) *models.AcquiredTrophy {
	acquired := s.ListAcquired(ctx)
	for i := range acquired {
		if acquired[i].TrophyID == trophyID {
			return &acquired[i]
		}
	}
	return nil
}

func (s *acquiredTrophyServiceImpl) IsAcquired(ctx context.Context, trophyID string) bool {
	return s.GetByTrophyID(ctx, trophyID) != nil
}

func (s *acquiredTrophyServiceImpl) Acquire(ctx context.Context, trophyID string) *models.AcquiredTrophy {
	existing := s.GetByTrophyID(ctx, trophyID)
	if existing != nil {
		s.logger.Debug().
			Str("trophy_id", trophyID).
			Msg("trophy already acquired")
		return existing
	}

	record := models.AcquiredTrophy{
		ID:         uuid.NewString(),
		TrophyID:   trophyID,
		AcquiredAt: s.clock.Now(),
	}

	acquired := s.ListAcquired(ctx)
	acquired = append(acquired, record)
	writeCollection(ctx, s.logger, s.kv, storage.KeyAcquiredTrophies, acquired)

	s.logger.Info().
		Str("trophy_id", trophyID).
		Msg("acquired trophy")
	return &record
}

func (s *acquiredTrophyServiceImpl) Revoke(ctx context.Context, trophyID string) bool {
	acquired := s.ListAcquired(ctx)

	remaining := make([]models.AcquiredTrophy, 0, len(acquired))
	for _, record := range acquired {
		if record.TrophyID != trophyID {
			remaining = append(remaining, record)
		}
	}
	if len(remaining) == len(acquired) {
		return false
	}

	writeCollection(ctx, s.logger, s.kv, storage.KeyAcquiredTrophies, remaining)

	s.logger.Info().
		Str("trophy_id", trophyID).
		Msg("revoked trophy")
	return true
}
