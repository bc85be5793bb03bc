package services

import (
	"context"
	"errors"

	"github.com/focuskit/go-focus-app/internal/models"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyTitle     = errors.New("task title is empty")
	ErrTitleTooLong   = errors.New("task title is too long")
	ErrInvalidDueDate = errors.New("due date is not a valid calendar day")
	ErrDueDateInPast  = errors.New("due date is in the past")

	ErrTrophyNotFound = errors.New("trophy not found")
	ErrNoChallenge    = errors.New("no challenge available")

	ErrEntryNotFound  = errors.New("journal entry not found")
	ErrEmptyContent   = errors.New("journal content is empty")
	ErrContentTooLong = errors.New("journal content is too long")

	ErrInvalidSettings = errors.New("invalid settings")
)

type TaskService interface {
	ListTasks(ctx context.Context) []models.Task

	// GetTask returns ErrTaskNotFound when no task has the given id.
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// CreateTask validates the title and due date, then appends the
	// task and rewrites the whole persisted collection.
	//
	// It returns ErrEmptyTitle, ErrTitleTooLong, ErrInvalidDueDate or
	// ErrDueDateInPast on validation failure; nothing is written then.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// UpdateTask applies a partial update. A Title change re-runs
	// title validation; a Completed transition sets or clears
	// CompletedAt. It returns ErrTaskNotFound for an unknown id.
	UpdateTask(ctx context.Context, id string, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask reports whether a task was removed.
	DeleteTask(ctx context.Context, id string) bool

	// ListTodayTasks returns tasks whose due day is today.
	ListTodayTasks(ctx context.Context) []models.Task

	ListCompleted(ctx context.Context) []models.Task
	ListIncomplete(ctx context.Context) []models.Task
}

type CreateTaskParams struct {
	Title   string
	DueDate *string
}

type UpdateTaskParams struct {
	Title        *string
	DueDate      *string
	ClearDueDate bool
	Completed    *bool
}

type TrophyService interface {
	ListTrophies(ctx context.Context) []models.Trophy

	// GetTrophy returns ErrTrophyNotFound when no trophy has the
	// given id.
	GetTrophy(ctx context.Context, id string) (*models.Trophy, error)

	// SeedIfEmpty writes defs to the catalog only when it holds no
	// entries yet, making repeated application starts idempotent.
	// It returns the number of trophies written.
	SeedIfEmpty(ctx context.Context, defs []models.Trophy) int
}

type AcquiredTrophyService interface {
	ListAcquired(ctx context.Context) []models.AcquiredTrophy

	// GetByTrophyID returns nil when the trophy was never acquired.
	GetByTrophyID(ctx context.Context, trophyID string) *models.AcquiredTrophy

	IsAcquired(ctx context.Context, trophyID string) bool

	// Acquire creates the ledger entry for trophyID. If one already
	// exists it is returned unchanged; the ledger never holds two
	// entries for the same trophy.
	Acquire(ctx context.Context, trophyID string) *models.AcquiredTrophy

	// Revoke removes the ledger entry for trophyID and reports
	// whether one existed.
	Revoke(ctx context.Context, trophyID string) bool
}

// ChallengeService rolls the daily challenge, evaluates the
// completion condition against the task store and grants the trophy
// exactly once.
type ChallengeService interface {
	// TodayChallenge returns the persisted challenge when its date is
	// still today. Otherwise it picks a trophy uniformly at random,
	// overwrites the persisted challenge in place and returns the new
	// one. An empty catalog yields ErrNoChallenge and persists
	// nothing. Rollover is lazy: it happens on the next call after
	// midnight, never on a background timer.
	TodayChallenge(ctx context.Context) (*models.DailyChallenge, error)

	// EligibleTasks returns tasks due today that were created at
	// least two full calendar days ago. The lookback rewards
	// planning ahead; same-day and next-day creations never count.
	EligibleTasks(ctx context.Context) []models.Task

	// CheckCondition never reports eligible for an empty task set.
	CheckCondition(ctx context.Context) Condition

	// AcquireIfEligible grants today's trophy when the condition
	// holds. Safe to call repeatedly: an already-granted trophy is
	// returned as-is. A nil result with nil error means the
	// condition is not met yet.
	AcquireIfEligible(ctx context.Context) (*Acquisition, error)

	// ForceAcquire grants today's trophy without checking the
	// condition. Debug tooling only.
	ForceAcquire(ctx context.Context) (*Acquisition, error)

	IsAcquiredToday(ctx context.Context) bool

	// ResetAcquisition revokes today's grant and reports whether one
	// existed.
	ResetAcquisition(ctx context.Context) bool
}

type Condition struct {
	IsEligible     bool
	EligibleTasks  []models.Task
	CompletedCount int
	TotalCount     int
}

type Acquisition struct {
	AcquiredTrophy models.AcquiredTrophy
	Challenge      models.DailyChallenge
}

type JournalService interface {
	// ListEntries returns entries newest first.
	ListEntries(ctx context.Context) []models.JournalEntry

	// GetEntry returns ErrEntryNotFound when no entry has the given id.
	GetEntry(ctx context.Context, id string) (*models.JournalEntry, error)

	// CreateEntry returns ErrEmptyContent or ErrContentTooLong on
	// validation failure.
	CreateEntry(ctx context.Context, content string) (*models.JournalEntry, error)

	UpdateEntry(ctx context.Context, id, content string) (*models.JournalEntry, error)

	DeleteEntry(ctx context.Context, id string) bool
}

type SettingsService interface {
	// InitDefaults seeds both settings blobs when absent. Idempotent
	// across restarts.
	InitDefaults(ctx context.Context)

	PomodoroSettings(ctx context.Context) models.PomodoroSettings

	// UpdatePomodoroSettings returns ErrInvalidSettings when a value
	// is out of range.
	UpdatePomodoroSettings(ctx context.Context, settings models.PomodoroSettings) (models.PomodoroSettings, error)

	NotificationSettings(ctx context.Context) models.NotificationSettings
	UpdateNotificationSettings(ctx context.Context, settings models.NotificationSettings) models.NotificationSettings
}
