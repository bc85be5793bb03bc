package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/dates"
	"github.com/focuskit/go-focus-app/internal/models"
	"github.com/focuskit/go-focus-app/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	kv     storage.KV
	clock  dates.Clock
}

func NewTaskService(
	logger zerolog.Logger,
	kv storage.KV,
	clock dates.Clock,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		kv:     kv,
		clock:  clock,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) []models.Task {
	return readCollection[models.Task](ctx, s.logger, s.kv, storage.KeyTasks)
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id string) (*models.Task, error) {
	tasks := s.ListTasks(ctx)
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("task not found")
	return nil, ErrTaskNotFound
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	err := s.validateTitle(params.Title)
	if err != nil {
		return nil, err
	}

	err = s.validateDueDate(params.DueDate)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:        uuid.NewString(),
		Title:     params.Title,
		CreatedAt: s.clock.Now(),
		DueDate:   params.DueDate,
	}

	tasks := s.ListTasks(ctx)
	tasks = append(tasks, task)
	writeCollection(ctx, s.logger, s.kv, storage.KeyTasks, tasks)

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return &task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, params UpdateTaskParams) (*models.Task, error) {
	tasks := s.ListTasks(ctx)

	index := -1
	for i := range tasks {
		if tasks[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		s.logger.Info().
			Str("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	task := tasks[index]

	if params.Title != nil {
		err := s.validateTitle(*params.Title)
		if err != nil {
			return nil, err
		}
		task.Title = *params.Title
	}

	if params.ClearDueDate {
		task.DueDate = nil
	} else if params.DueDate != nil {
		err := s.validateDueDate(params.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = params.DueDate
	}

	if params.Completed != nil {
		s.applyCompleted(&task, *params.Completed)
	}

	tasks[index] = task
	writeCollection(ctx, s.logger, s.kv, storage.KeyTasks, tasks)

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("updated task")
	return &task, nil
}

// applyCompleted keeps the invariant that CompletedAt is non-nil
// exactly when Completed is true.
func (s *taskServiceImpl) applyCompleted(task *models.Task, completed bool) {
	if completed && !task.Completed {
		now := s.clock.Now()
		task.CompletedAt = &now
	} else if !completed {
		task.CompletedAt = nil
	}
	task.Completed = completed
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) bool {
	tasks := s.ListTasks(ctx)

	remaining := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}
	if len(remaining) == len(tasks) {
		s.logger.Info().
			Str("task_id", id).
			Msg("task not found")
		return false
	}

	writeCollection(ctx, s.logger, s.kv, storage.KeyTasks, remaining)

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return true
}

func (s *taskServiceImpl) ListTodayTasks(ctx context.Context) []models.Task {
	today := dates.Day(s.clock.Now())

	var due []models.Task
	for _, task := range s.ListTasks(ctx) {
		if task.DueDate != nil && *task.DueDate == today {
			due = append(due, task)
		}
	}
	return due
}

func (s *taskServiceImpl) ListCompleted(ctx context.Context) []models.Task {
	var completed []models.Task
	for _, task := range s.ListTasks(ctx) {
		if task.Completed {
			completed = append(completed, task)
		}
	}
	return completed
}

func (s *taskServiceImpl) ListIncomplete(ctx context.Context) []models.Task {
	var incomplete []models.Task
	for _, task := range s.ListTasks(ctx) {
		if !task.Completed {
			incomplete = append(incomplete, task)
		}
	}
	return incomplete
}

func (s *taskServiceImpl) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len([]rune(title)) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// validateDueDate rejects due days earlier than today. The comparison
// is by calendar day, never by time of day.
func (s *taskServiceImpl) validateDueDate(dueDate *string) error {
	if dueDate == nil {
		return nil
	}
	if !dates.Valid(*dueDate) {
		return ErrInvalidDueDate
	}
	if *dueDate < dates.Day(s.clock.Now()) {
		return ErrDueDateInPast
	}
	return nil
}
