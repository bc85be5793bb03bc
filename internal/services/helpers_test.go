package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/dates"
	"github.com/focuskit/go-focus-app/internal/models"
	"github.com/focuskit/go-focus-app/internal/storage"
)

// testStart is 09:00 on an arbitrary Monday.
var testStart = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	kv       *storage.Memory
	clock    *dates.FakeClock
	tasks    TaskService
	trophies TrophyService
	acquired AcquiredTrophyService
	journal  JournalService
	settings SettingsService
}

func zerologNop() zerolog.Logger { return zerolog.Nop() }

func newFixture() *fixture {
	logger := zerolog.Nop()
	kv := storage.NewMemory()
	clock := dates.NewFakeClock(testStart)

	return &fixture{
		kv:       kv,
		clock:    clock,
		tasks:    NewTaskService(logger, kv, clock),
		trophies: NewTrophyService(logger, kv),
		acquired: NewAcquiredTrophyService(logger, kv, clock),
		journal:  NewJournalService(logger, kv, clock),
		settings: NewSettingsService(logger, kv),
	}
}

func (f *fixture) challenges() ChallengeService {
	return NewChallengeService(zerolog.Nop(), f.kv, f.clock, f.trophies, f.acquired, f.tasks)
}

func (f *fixture) today() string {
	return dates.Day(f.clock.Now())
}

func (f *fixture) dayFromNow(days int) string {
	return dates.Day(f.clock.Now().Add(time.Duration(days) * 24 * time.Hour))
}

func threeTrophies() []models.Trophy {
	return []models.Trophy{
		{ID: "t1", Name: "One", Kind: models.KindCard, Image: "/t1.png", Description: "first"},
		{ID: "t2", Name: "Two", Kind: models.KindBadge, Image: "/t2.png", Description: "second"},
		{ID: "t3", Name: "Three", Kind: models.KindCharacter, Image: "/t3.png", Description: "third"},
	}
}
