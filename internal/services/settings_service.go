package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/models"
	"github.com/focuskit/go-focus-app/internal/storage"
)

type settingsServiceImpl struct {
	logger zerolog.Logger
	kv     storage.KV
}

func NewSettingsService(
	logger zerolog.Logger,
	kv storage.KV,
) SettingsService {
	return &settingsServiceImpl{
		logger: logger,
		kv:     kv,
	}
}

func (s *settingsServiceImpl) InitDefaults(ctx context.Context) {
	var pomodoro models.PomodoroSettings
	if !readObject(ctx, s.logger, s.kv, storage.KeyPomodoroSettings, &pomodoro) {
		writeObject(ctx, s.logger, s.kv, storage.KeyPomodoroSettings, models.DefaultPomodoroSettings())
		s.logger.Info().Msg("initialized default pomodoro settings")
	}

	var notifications models.NotificationSettings
	if !readObject(ctx, s.logger, s.kv, storage.KeyNotificationSettings, &notifications) {
		writeObject(ctx, s.logger, s.kv, storage.KeyNotificationSettings, models.DefaultNotificationSettings())
		s.logger.Info().Msg("initialized default notification settings")
	}
}

func (s *settingsServiceImpl) PomodoroSettings(ctx context.Context) models.PomodoroSettings {
	var settings models.PomodoroSettings
	if !readObject(ctx, s.logger, s.kv, storage.KeyPomodoroSettings, &settings) {
		return models.DefaultPomodoroSettings()
	}
	return settings
}

func (s *settingsServiceImpl) UpdatePomodoroSettings(ctx context.Context, settings models.PomodoroSettings) (models.PomodoroSettings, error) {
	err := validatePomodoroSettings(settings)
	if err != nil {
		return models.PomodoroSettings{}, err
	}

	writeObject(ctx, s.logger, s.kv, storage.KeyPomodoroSettings, settings)

	s.logger.Info().Msg("updated pomodoro settings")
	return settings, nil
}

func (s *settingsServiceImpl) NotificationSettings(ctx context.Context) models.NotificationSettings {
	var settings models.NotificationSettings
	if !readObject(ctx, s.logger, s.kv, storage.KeyNotificationSettings, &settings) {
		return models.DefaultNotificationSettings()
	}
	return settings
}

func (s *settingsServiceImpl) UpdateNotificationSettings(ctx context.Context, settings models.NotificationSettings) models.NotificationSettings {
	writeObject(ctx, s.logger, s.kv, storage.KeyNotificationSettings, settings)

	s.logger.Info().Msg("updated notification settings")
	return settings
}

func validatePomodoroSettings(settings models.PomodoroSettings) error {
	if settings.SessionDuration < 1 || settings.SessionDuration > 180 {
		return ErrInvalidSettings
	}
	if settings.ShortBreakDuration < 0 || settings.ShortBreakDuration > 60 {
		return ErrInvalidSettings
	}
	if settings.LongBreakDuration < 0 || settings.LongBreakDuration > 120 {
		return ErrInvalidSettings
	}
	if settings.SessionsUntilLongBreak < 1 || settings.SessionsUntilLongBreak > 20 {
		return ErrInvalidSettings
	}
	if settings.TotalSessions < 1 || settings.TotalSessions > 50 {
		return ErrInvalidSettings
	}
	return nil
}
