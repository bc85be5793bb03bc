package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/focuskit/go-focus-app/internal/services"
)

type getChallengeResponse struct {
	Date   string            `json:"date"`
	Trophy getTrophyResponse `json:"trophy"`
}

func (h *handlerImpl) HandleGetChallenge(c *gin.Context) {
	challenge, err := h.challenges.TodayChallenge(c)
	if err != nil {
		if errors.Is(err, services.ErrNoChallenge) {
			h.logger.Warn().Msg("no challenge available")
			c.Status(http.StatusNoContent)
			return
		}
		abortServiceError(c, err)
		return
	}

	trophy, err := h.trophies.GetTrophy(c, challenge.TrophyID)
	if abortServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, getChallengeResponse{
		Date:   challenge.Date,
		Trophy: newGetTrophyResponse(trophy),
	})
}

type getConditionResponse struct {
	IsEligible     bool              `json:"is_eligible"`
	CompletedCount int               `json:"completed_count"`
	TotalCount     int               `json:"total_count"`
	EligibleTasks  []getTaskResponse `json:"eligible_tasks"`
}

func (h *handlerImpl) HandleGetCondition(c *gin.Context) {
	condition := h.challenges.CheckCondition(c)

	c.JSON(http.StatusOK, getConditionResponse{
		IsEligible:     condition.IsEligible,
		CompletedCount: condition.CompletedCount,
		TotalCount:     condition.TotalCount,
		EligibleTasks:  newTaskListResponse(condition.EligibleTasks),
	})
}

type acquisitionResponse struct {
	AcquiredAt time.Time            `json:"acquired_at"`
	Challenge  getChallengeResponse `json:"challenge"`
}

func (h *handlerImpl) respondAcquisition(c *gin.Context, result *services.Acquisition, err error) {
	if err != nil {
		if errors.Is(err, services.ErrNoChallenge) {
			h.logger.Warn().Msg("no challenge available")
			c.Status(http.StatusNoContent)
			return
		}
		abortServiceError(c, err)
		return
	}
	if result == nil {
		// Condition not met; nothing was granted.
		c.Status(http.StatusNoContent)
		return
	}

	trophy, err := h.trophies.GetTrophy(c, result.Challenge.TrophyID)
	if abortServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, acquisitionResponse{
		AcquiredAt: result.AcquiredTrophy.AcquiredAt,
		Challenge: getChallengeResponse{
			Date:   result.Challenge.Date,
			Trophy: newGetTrophyResponse(trophy),
		},
	})
}

func (h *handlerImpl) HandleAcquire(c *gin.Context) {
	result, err := h.challenges.AcquireIfEligible(c)
	h.respondAcquisition(c, result, err)
}

func (h *handlerImpl) HandleForceAcquire(c *gin.Context) {
	h.logger.Warn().Msg("force-acquiring daily challenge trophy")

	result, err := h.challenges.ForceAcquire(c)
	h.respondAcquisition(c, result, err)
}

func (h *handlerImpl) HandleIsAcquired(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"acquired": h.challenges.IsAcquiredToday(c),
	})
}

func (h *handlerImpl) HandleResetAcquisition(c *gin.Context) {
	// Suspend the watcher before touching the ledger so an in-flight
	// poll cannot re-grant from a condition it checked pre-reset.
	if h.guard != nil {
		h.guard.Suspend()
	}

	if !h.challenges.ResetAcquisition(c) {
		h.logger.Warn().Msg("no acquisition to reset")
		abort(c, newNotFoundError("challenge not acquired"))
		return
	}

	h.logger.Info().Msg("reset challenge acquisition")
	c.Status(http.StatusNoContent)
}
