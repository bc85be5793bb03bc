package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focuskit/go-focus-app/internal/models"
)

type pomodoroSettingsBody struct {
	SessionDuration        int `json:"session_duration"`
	ShortBreakDuration     int `json:"short_break_duration"`
	LongBreakDuration      int `json:"long_break_duration"`
	SessionsUntilLongBreak int `json:"sessions_until_long_break"`
	TotalSessions          int `json:"total_sessions"`
}

func newPomodoroSettingsBody(settings models.PomodoroSettings) pomodoroSettingsBody {
	return pomodoroSettingsBody{
		SessionDuration:        settings.SessionDuration,
		ShortBreakDuration:     settings.ShortBreakDuration,
		LongBreakDuration:      settings.LongBreakDuration,
		SessionsUntilLongBreak: settings.SessionsUntilLongBreak,
		TotalSessions:          settings.TotalSessions,
	}
}

func (h *handlerImpl) HandleGetPomodoroSettings(c *gin.Context) {
	c.JSON(http.StatusOK, newPomodoroSettingsBody(h.settings.PomodoroSettings(c)))
}

func (h *handlerImpl) HandleUpdatePomodoroSettings(c *gin.Context) {
	var req pomodoroSettingsBody
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	updated, err := h.settings.UpdatePomodoroSettings(c, models.PomodoroSettings{
		SessionDuration:        req.SessionDuration,
		ShortBreakDuration:     req.ShortBreakDuration,
		LongBreakDuration:      req.LongBreakDuration,
		SessionsUntilLongBreak: req.SessionsUntilLongBreak,
		TotalSessions:          req.TotalSessions,
	})
	if abortServiceError(c, err) {
		return
	}

	h.logger.Info().Msg("updated pomodoro settings")
	c.JSON(http.StatusOK, newPomodoroSettingsBody(updated))
}

type notificationSettingsBody struct {
	Enabled      bool `json:"enabled"`
	SessionEnd   bool `json:"session_end"`
	BreakEnd     bool `json:"break_end"`
	SoundEnabled bool `json:"sound_enabled"`
}

func newNotificationSettingsBody(settings models.NotificationSettings) notificationSettingsBody {
	return notificationSettingsBody{
		Enabled:      settings.Enabled,
		SessionEnd:   settings.SessionEnd,
		BreakEnd:     settings.BreakEnd,
		SoundEnabled: settings.SoundEnabled,
	}
}

func (h *handlerImpl) HandleGetNotificationSettings(c *gin.Context) {
	c.JSON(http.StatusOK, newNotificationSettingsBody(h.settings.NotificationSettings(c)))
}

func (h *handlerImpl) HandleUpdateNotificationSettings(c *gin.Context) {
	var req notificationSettingsBody
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	updated := h.settings.UpdateNotificationSettings(c, models.NotificationSettings{
		Enabled:      req.Enabled,
		SessionEnd:   req.SessionEnd,
		BreakEnd:     req.BreakEnd,
		SoundEnabled: req.SoundEnabled,
	})

	h.logger.Info().Msg("updated notification settings")
	c.JSON(http.StatusOK, newNotificationSettingsBody(updated))
}
