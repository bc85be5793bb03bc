package services

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/dates"
	"github.com/focuskit/go-focus-app/internal/models"
	"github.com/focuskit/go-focus-app/internal/storage"
)

// eligibilityLookbackDays is the minimum number of whole calendar
// days between a task's creation day and its due day for the task to
// count toward the challenge.
const eligibilityLookbackDays = 2

type challengeServiceImpl struct {
	logger   zerolog.Logger
	kv       storage.KV
	clock    dates.Clock
	trophies TrophyService
	acquired AcquiredTrophyService
	tasks    TaskService
}

func NewChallengeService(
	logger zerolog.Logger,
	kv storage.KV,
	clock dates.Clock,
	trophyService TrophyService,
	acquiredTrophyService AcquiredTrophyService,
	taskService TaskService,
) ChallengeService {
	return &challengeServiceImpl{
		logger:   logger,
		kv:       kv,
		clock:    clock,
		trophies: trophyService,
		acquired: acquiredTrophyService,
		tasks:    taskService,
	}
}

func (s *challengeServiceImpl) TodayChallenge(ctx context.Context) (*models.DailyChallenge, error) {
	today := dates.Day(s.clock.Now())

	var challenge models.DailyChallenge
	if readObject(ctx, s.logger, s.kv, storage.KeyDailyChallenge, &challenge) && challenge.Date == today {
		return &challenge, nil
	}

	return s.rollChallenge(ctx, today)
}

// rollChallenge picks a trophy uniformly at random and overwrites the
// persisted challenge. Nothing prevents the same trophy from being
// picked on consecutive days.
func (s *challengeServiceImpl) rollChallenge(ctx context.Context, today string) (*models.DailyChallenge, error) {
	catalog := s.trophies.ListTrophies(ctx)
	if len(catalog) == 0 {
		s.logger.Warn().Msg("trophy catalog is empty, no challenge possible")
		return nil, ErrNoChallenge
	}

	selected := catalog[rand.Intn(len(catalog))]
	challenge := models.DailyChallenge{
		TrophyID: selected.ID,
		Date:     today,
	}

	writeObject(ctx, s.logger, s.kv, storage.KeyDailyChallenge, challenge)

	s.logger.Info().
		Str("trophy_id", challenge.TrophyID).
		Str("date", challenge.Date).
		Msg("rolled daily challenge")
	return &challenge, nil
}

func (s *challengeServiceImpl) EligibleTasks(ctx context.Context) []models.Task {
	today := dates.Day(s.clock.Now())

	var eligible []models.Task
	for _, task := range s.tasks.ListTasks(ctx) {
		if task.DueDate == nil || *task.DueDate != today {
			continue
		}
		if dates.DaysBetween(dates.Day(task.CreatedAt), today) < eligibilityLookbackDays {
			continue
		}
		eligible = append(eligible, task)
	}
	return eligible
}

func (s *challengeServiceImpl) CheckCondition(ctx context.Context) Condition {
	eligible := s.EligibleTasks(ctx)
	if len(eligible) == 0 {
		// An empty eligible set never grants; a day without
		// qualifying tasks is not a reward.
		return Condition{}
	}

	completed := 0
	for _, task := range eligible {
		if task.Completed {
			completed++
		}
	}

	return Condition{
		IsEligible:     completed == len(eligible),
		EligibleTasks:  eligible,
		CompletedCount: completed,
		TotalCount:     len(eligible),
	}
}

func (s *challengeServiceImpl) AcquireIfEligible(ctx context.Context) (*Acquisition, error) {
	return s.acquireToday(ctx, false)
}

func (s *challengeServiceImpl) ForceAcquire(ctx context.Context) (*Acquisition, error) {
	return s.acquireToday(ctx, true)
}

func (s *challengeServiceImpl) acquireToday(ctx context.Context, force bool) (*Acquisition, error) {
	challenge, err := s.TodayChallenge(ctx)
	if err != nil {
		return nil, err
	}

	if existing := s.acquired.GetByTrophyID(ctx, challenge.TrophyID); existing != nil {
		return &Acquisition{
			AcquiredTrophy: *existing,
			Challenge:      *challenge,
		}, nil
	}

	if !force {
		condition := s.CheckCondition(ctx)
		if !condition.IsEligible {
			return nil, nil
		}
	}

	record := s.acquired.Acquire(ctx, challenge.TrophyID)

	s.logger.Info().
		Str("trophy_id", challenge.TrophyID).
		Bool("forced", force).
		Msg("granted daily challenge trophy")
	return &Acquisition{
		AcquiredTrophy: *record,
		Challenge:      *challenge,
	}, nil
}

func (s *challengeServiceImpl) IsAcquiredToday(ctx context.Context) bool {
	challenge, err := s.TodayChallenge(ctx)
	if err != nil {
		return false
	}
	return s.acquired.IsAcquired(ctx, challenge.TrophyID)
}

func (s *challengeServiceImpl) ResetAcquisition(ctx context.Context) bool {
	challenge, err := s.TodayChallenge(ctx)
	if err != nil {
		return false
	}
	return s.acquired.Revoke(ctx, challenge.TrophyID)
}
