package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexibook/internal/middleware"
	"lexibook/internal/service"
)

func (h *Handler) listVisibility(c *gin.Context) {
	userID := middleware.UserID(c)

	records, err := h.visService.List(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"visibility": records})
}

func (h *Handler) applyVisibility(c *gin.Context) {
	userID := middleware.UserID(c)

	var body struct {
		Items []service.VisibilityItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.visService.Apply(userID, body.Items); err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c)
}
