package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexibook/internal/middleware"
)

func (h *Handler) getProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	profile, err := h.profileService.Get(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var body struct {
		DisplayName *string `json:"displayName"`
		AvatarEmoji *string `json:"avatarEmoji"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.profileService.Update(userID, body.DisplayName, body.AvatarEmoji)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
