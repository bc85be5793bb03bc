package models

// PomodoroSettings holds the timer configuration. Durations are in
// minutes.
type PomodoroSettings struct {
	SessionDuration        int `json:"sessionDuration"`
	ShortBreakDuration     int `json:"shortBreakDuration"`
	LongBreakDuration      int `json:"longBreakDuration"`
	SessionsUntilLongBreak int `json:"sessionsUntilLongBreak"`
	TotalSessions          int `json:"totalSessions"`
}

func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		SessionDuration:        25,
		ShortBreakDuration:     5,
		LongBreakDuration:      15,
		SessionsUntilLongBreak: 4,
		TotalSessions:          4,
	}
}

type NotificationSettings struct {
	Enabled      bool `json:"enabled"`
	SessionEnd   bool `json:"sessionEnd"`
	BreakEnd     bool `json:"breakEnd"`
	SoundEnabled bool `json:"soundEnabled"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:      true,
		SessionEnd:   true,
		BreakEnd:     true,
		SoundEnabled: false,
	}
}
