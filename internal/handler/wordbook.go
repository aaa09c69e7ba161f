package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lexibook/internal/middleware"
	"lexibook/internal/service"
)

func (h *Handler) listWordbooks(c *gin.Context) {
	userID := middleware.UserID(c)

	includeTemplates := c.Query("includeTemplates") == "true"
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	books, err := h.wordbookService.List(userID, includeTemplates, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wordbooks": books})
}

func (h *Handler) getWordbook(c *gin.Context) {
	userID := middleware.UserID(c)
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	book, err := h.wordbookService.Get(userID, bookID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (h *Handler) createWordbook(c *gin.Context) {
	userID := middleware.UserID(c)

	var in service.CreateWordbookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	book, err := h.wordbookService.Create(userID, in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

func (h *Handler) updateWordbook(c *gin.Context) {
	userID := middleware.UserID(c)
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var in service.UpdateWordbookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	book, err := h.wordbookService.Update(userID, bookID, in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (h *Handler) deleteWordbook(c *gin.Context) {
	userID := middleware.UserID(c)
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.wordbookService.Delete(userID, bookID); err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c)
}

func (h *Handler) importEntries(c *gin.Context) {
	userID := middleware.UserID(c)
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var body struct {
		Words []service.EntryInput `json:"words"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.wordbookService.ImportEntries(userID, bookID, body.Words)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid wordbook id %q", c.Param("id"))})
		return uuid.Nil, false
	}
	return id, true
}
