package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/focuskit/go-focus-app/internal/models"
)

type getJournalEntryResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newGetJournalEntryResponse(entry *models.JournalEntry) getJournalEntryResponse {
	return getJournalEntryResponse{
		ID:        entry.ID,
		Content:   entry.Content,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func (h *handlerImpl) HandleListJournalEntries(c *gin.Context) {
	entries := h.journal.ListEntries(c)

	response := make([]getJournalEntryResponse, len(entries))
	for i := range entries {
		response[i] = newGetJournalEntryResponse(&entries[i])
	}

	h.logger.Debug().
		Int("count", len(response)).
		Msg("fetched journal entries")
	c.JSON(http.StatusOK, response)
}

type journalEntryRequest struct {
	Content string `json:"content"`
}

func (h *handlerImpl) HandleCreateJournalEntry(c *gin.Context) {
	var req journalEntryRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	entry, err := h.journal.CreateEntry(c, req.Content)
	if abortServiceError(c, err) {
		return
	}

	h.logger.Info().Msg("created journal entry")
	c.JSON(http.StatusCreated, newGetJournalEntryResponse(entry))
}

func (h *handlerImpl) HandleGetJournalEntry(c *gin.Context) {
	entry, err := h.journal.GetEntry(c, c.Param("id"))
	if abortServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, newGetJournalEntryResponse(entry))
}

func (h *handlerImpl) HandleUpdateJournalEntry(c *gin.Context) {
	var req journalEntryRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	entry, err := h.journal.UpdateEntry(c, c.Param("id"), req.Content)
	if abortServiceError(c, err) {
		return
	}

	h.logger.Info().Msg("updated journal entry")
	c.JSON(http.StatusOK, newGetJournalEntryResponse(entry))
}

func (h *handlerImpl) HandleDeleteJournalEntry(c *gin.Context) {
	id := c.Param("id")
	if !h.journal.DeleteEntry(c, id) {
		h.logger.Warn().
			Str("entry_id", id).
			Msg("journal entry not found")
		abort(c, newNotFoundError("journal entry not found"))
		return
	}

	h.logger.Info().Msg("deleted journal entry")
	c.Status(http.StatusNoContent)
}
