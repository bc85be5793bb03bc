package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/focuskit/go-focus-app/internal/models"
)

type getTrophyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func newGetTrophyResponse(trophy *models.Trophy) getTrophyResponse {
	return getTrophyResponse{
		ID:          trophy.ID,
		Name:        trophy.Name,
		Kind:        trophy.Kind,
		Image:       trophy.Image,
		Description: trophy.Description,
	}
}

func (h *handlerImpl) HandleListTrophies(c *gin.Context) {
	trophies := h.trophies.ListTrophies(c)

	response := make([]getTrophyResponse, len(trophies))
	for i := range trophies {
		response[i] = newGetTrophyResponse(&trophies[i])
	}

	h.logger.Debug().
		Int("count", len(response)).
		Msg("fetched trophies")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetTrophy(c *gin.Context) {
	trophy, err := h.trophies.GetTrophy(c, c.Param("id"))
	if abortServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, newGetTrophyResponse(trophy))
}

// getAcquiredTrophyResponse joins a ledger entry with its catalog
// trophy, the collection view the trophy shelf renders from.
type getAcquiredTrophyResponse struct {
	ID         string            `json:"id"`
	AcquiredAt time.Time         `json:"acquired_at"`
	Trophy     getTrophyResponse `json:"trophy"`
}

func (h *handlerImpl) HandleListAcquiredTrophies(c *gin.Context) {
	acquired := h.acquired.ListAcquired(c)

	response := make([]getAcquiredTrophyResponse, 0, len(acquired))
	for _, record := range acquired {
		trophy, err := h.trophies.GetTrophy(c, record.TrophyID)
		if err != nil {
			// Ledger entry referencing a trophy that left the
			// catalog; skip it rather than fail the whole view.
			h.logger.Warn().
				Str("trophy_id", record.TrophyID).
				Msg("acquired trophy missing from catalog")
			continue
		}

		response = append(response, getAcquiredTrophyResponse{
			ID:         record.ID,
			AcquiredAt: record.AcquiredAt,
			Trophy:     newGetTrophyResponse(trophy),
		})
	}

	h.logger.Debug().
		Int("count", len(response)).
		Msg("fetched acquired trophies")
	c.JSON(http.StatusOK, response)
}
