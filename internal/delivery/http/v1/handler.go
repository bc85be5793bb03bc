package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/services"
)

// ChallengeGuard suspends the background acquisition checks for a
// guard window. The reset handler arms it so a stale in-flight check
// cannot re-grant the trophy it just revoked.
type ChallengeGuard interface {
	Suspend()
}

type Handler interface {
	HandleListTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleSetTaskCompleted(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleListTrophies(c *gin.Context)
	HandleGetTrophy(c *gin.Context)
	HandleListAcquiredTrophies(c *gin.Context)

	HandleGetChallenge(c *gin.Context)
	HandleGetCondition(c *gin.Context)
	HandleAcquire(c *gin.Context)
	HandleForceAcquire(c *gin.Context)
	HandleIsAcquired(c *gin.Context)
	HandleResetAcquisition(c *gin.Context)

	HandleListJournalEntries(c *gin.Context)
	HandleCreateJournalEntry(c *gin.Context)
	HandleGetJournalEntry(c *gin.Context)
	HandleUpdateJournalEntry(c *gin.Context)
	HandleDeleteJournalEntry(c *gin.Context)

	HandleGetPomodoroSettings(c *gin.Context)
	HandleUpdatePomodoroSettings(c *gin.Context)
	HandleGetNotificationSettings(c *gin.Context)
	HandleUpdateNotificationSettings(c *gin.Context)
}

type handlerImpl struct {
	logger     zerolog.Logger
	tasks      services.TaskService
	trophies   services.TrophyService
	acquired   services.AcquiredTrophyService
	challenges services.ChallengeService
	journal    services.JournalService
	settings   services.SettingsService
	guard      ChallengeGuard
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	trophyService services.TrophyService,
	acquiredTrophyService services.AcquiredTrophyService,
	challengeService services.ChallengeService,
	journalService services.JournalService,
	settingsService services.SettingsService,
	guard ChallengeGuard,
) Handler {
	return &handlerImpl{
		logger:     logger,
		tasks:      taskService,
		trophies:   trophyService,
		acquired:   acquiredTrophyService,
		challenges: challengeService,
		journal:    journalService,
		settings:   settingsService,
		guard:      guard,
	}
}
