package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lexibook/internal/domain"
	"lexibook/internal/middleware"
)

func (h *Handler) listSections(c *gin.Context) {
	userID := middleware.UserID(c)

	sections, err := h.progressService.ListSections(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func (h *Handler) upsertSection(c *gin.Context) {
	userID := middleware.UserID(c)

	var body struct {
		WordbookID      uuid.UUID `json:"wordbookId" binding:"required"`
		CompletedPages  int       `json:"completedPages"`
		CompletedPasses int       `json:"completedPasses"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	state := domain.ProgressState{
		CompletedPages:  body.CompletedPages,
		CompletedPasses: body.CompletedPasses,
	}
	if err := h.progressService.UpsertSection(userID, body.WordbookID, state); err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c)
}

func (h *Handler) listDaily(c *gin.Context) {
	userID := middleware.UserID(c)

	records, err := h.progressService.ListDaily(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *Handler) recordDaily(c *gin.Context) {
	userID := middleware.UserID(c)

	var body domain.DailyRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.progressService.RecordDaily(userID, body.Date, body.WordsLearned); err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c)
}
