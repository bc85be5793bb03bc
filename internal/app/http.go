package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/focuskit/go-focus-app/internal/config"
	"github.com/focuskit/go-focus-app/internal/dates"
	v1 "github.com/focuskit/go-focus-app/internal/delivery/http/v1"
	"github.com/focuskit/go-focus-app/internal/services"
	"github.com/focuskit/go-focus-app/internal/watcher"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	acquisitionWatcher := registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	// The watcher lives exactly as long as the server does.
	watcherCtx, stopWatcher := context.WithCancel(context.Background())
	go acquisitionWatcher.Run(watcherCtx)

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")
	stopWatcher()

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) *watcher.Watcher {
	challengeCfg := config.Global().Challenge
	clock := dates.RealClock{}

	taskService := services.NewTaskService(globalLogger, globalStorage, clock)
	trophyService := services.NewTrophyService(globalLogger, globalStorage)
	acquiredTrophyService := services.NewAcquiredTrophyService(globalLogger, globalStorage, clock)
	challengeService := services.NewChallengeService(
		globalLogger,
		globalStorage,
		clock,
		trophyService,
		acquiredTrophyService,
		taskService,
	)
	journalService := services.NewJournalService(globalLogger, globalStorage, clock)
	settingsService := services.NewSettingsService(globalLogger, globalStorage)

	acquisitionWatcher := watcher.New(globalLogger, challengeService, clock, watcher.Config{
		Interval:   challengeCfg.PollInterval,
		ResetGuard: challengeCfg.ResetGuard,
	})

	v1Handler := v1.New(
		globalLogger,
		taskService,
		trophyService,
		acquiredTrophyService,
		challengeService,
		journalService,
		settingsService,
		acquisitionWatcher,
	)
	router = router.Group("/api/v1")

	tasksRouter := router.Group("/tasks")
	tasksRouter.GET("", v1Handler.HandleListTasks)
	tasksRouter.POST("", v1Handler.HandleCreateTask)
	tasksRouter.GET("/:id", v1Handler.HandleGetTask)
	tasksRouter.PATCH("/:id", v1Handler.HandleUpdateTask)
	tasksRouter.PUT("/:id/completed", v1Handler.HandleSetTaskCompleted)
	tasksRouter.DELETE("/:id", v1Handler.HandleDeleteTask)

	trophiesRouter := router.Group("/trophies")
	trophiesRouter.GET("", v1Handler.HandleListTrophies)
	trophiesRouter.GET("/:id", v1Handler.HandleGetTrophy)

	// The trophy shelf: ledger entries joined with their catalog
	// trophies.
	router.GET("/collection", v1Handler.HandleListAcquiredTrophies)

	challengeRouter := router.Group("/challenge")
	challengeRouter.GET("", v1Handler.HandleGetChallenge)
	challengeRouter.GET("/condition", v1Handler.HandleGetCondition)
	challengeRouter.GET("/acquired", v1Handler.HandleIsAcquired)
	challengeRouter.POST("/acquire", v1Handler.HandleAcquire)
	challengeRouter.POST("/force-acquire", v1Handler.HandleForceAcquire)
	challengeRouter.DELETE("/acquisition", v1Handler.HandleResetAcquisition)

	journalRouter := router.Group("/journal")
	journalRouter.GET("", v1Handler.HandleListJournalEntries)
	journalRouter.POST("", v1Handler.HandleCreateJournalEntry)
	journalRouter.GET("/:id", v1Handler.HandleGetJournalEntry)
	journalRouter.PUT("/:id", v1Handler.HandleUpdateJournalEntry)
	journalRouter.DELETE("/:id", v1Handler.HandleDeleteJournalEntry)

	settingsRouter := router.Group("/settings")
	settingsRouter.GET("/pomodoro", v1Handler.HandleGetPomodoroSettings)
	settingsRouter.PUT("/pomodoro", v1Handler.HandleUpdatePomodoroSettings)
	settingsRouter.GET("/notifications", v1Handler.HandleGetNotificationSettings)
	settingsRouter.PUT("/notifications", v1Handler.HandleUpdateNotificationSettings)

	return acquisitionWatcher
}
