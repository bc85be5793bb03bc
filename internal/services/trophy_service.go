package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/models"
	"github.com/focuskit/go-focus-app/internal/storage"
)

type trophyServiceImpl struct {
	logger zerolog.Logger
	kv     storage.KV
}

func NewTrophyService(
	logger zerolog.Logger,
	kv storage.KV,
) TrophyService {
	return &trophyServiceImpl{
		logger: logger,
		kv:     kv,
	}
}

func (s *trophyServiceImpl) ListTrophies(ctx context.Context) []models.Trophy {
	return readCollection[models.Trophy](ctx, s.logger, s.kv, storage.KeyTrophies)
}

func (s *trophyServiceImpl) GetTrophy(ctx context.Context, id string) (*models.Trophy, error) {
	trophies := s.ListTrophies(ctx)
	for i := range trophies {
		if trophies[i].ID == id {
			return &trophies[i], nil
		}
	}

	s.logger.Info().
		Str("trophy_id", id).
		Msg("trophy not found")
	return nil, ErrTrophyNotFound
}

func (s *trophyServiceImpl) SeedIfEmpty(ctx context.Context, defs []models.Trophy) int {
	existing := s.ListTrophies(ctx)
	if len(existing) > 0 {
		s.logger.Debug().
			Int("count", len(existing)).
			Msg("trophy catalog already seeded")
		return 0
	}

	writeCollection(ctx, s.logger, s.kv, storage.KeyTrophies, defs)

	s.logger.Info().
		Int("count", len(defs)).
		Msg("seeded trophy catalog")
	return len(defs)
}

// DefaultTrophies is the fixed catalog written at first run.
func DefaultTrophies() []models.Trophy {
	return []models.Trophy{
		{ID: "card-sunrise", Name: "Sunrise", Kind: models.KindCard, Image: "/trophies/card-sunrise.png", Description: "A card for starting the day with a plan."},
		{ID: "card-tide", Name: "Tide", Kind: models.KindCard, Image: "/trophies/card-tide.png", Description: "A card for steady, repeated effort."},
		{ID: "card-ember", Name: "Ember", Kind: models.KindCard, Image: "/trophies/card-ember.png", Description: "A card for keeping the focus burning."},
		{ID: "card-summit", Name: "Summit", Kind: models.KindCard, Image: "/trophies/card-summit.png", Description: "A card for finishing what looked too big."},
		{ID: "badge-planner", Name: "Planner", Kind: models.KindBadge, Image: "/trophies/badge-planner.png", Description: "A badge for scheduling work days ahead."},
		{ID: "badge-finisher", Name: "Finisher", Kind: models.KindBadge, Image: "/trophies/badge-finisher.png", Description: "A badge for clearing every due task."},
		{ID: "badge-streak", Name: "Streak", Kind: models.KindBadge, Image: "/trophies/badge-streak.png", Description: "A badge for showing up day after day."},
		{ID: "badge-deepwork", Name: "Deep Work", Kind: models.KindBadge, Image: "/trophies/badge-deepwork.png", Description: "A badge for an uninterrupted session."},
		{ID: "char-owl", Name: "Night Owl", Kind: models.KindCharacter, Image: "/trophies/char-owl.png", Description: "A companion who works when it is quiet."},
		{ID: "char-fox", Name: "Clever Fox", Kind: models.KindCharacter, Image: "/trophies/char-fox.png", Description: "A companion who plans the shortest path."},
		{ID: "char-bear", Name: "Steady Bear", Kind: models.KindCharacter, Image: "/trophies/char-bear.png", Description: "A companion who never rushes and never stops."},
		{ID: "char-crane", Name: "Paper Crane", Kind: models.KindCharacter, Image: "/trophies/char-crane.png", Description: "A companion folded from finished to-do lists."},
	}
}
