package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexibook/internal/middleware"
	"lexibook/internal/service"
)

// Handler wires the HTTP API to the service layer
type Handler struct {
	authService     *service.AuthService
	wordbookService *service.WordbookService
	progressService *service.ProgressService
	visService      *service.VisibilityService
	profileService  *service.ProfileService
	logger          *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	authService *service.AuthService,
	wordbookService *service.WordbookService,
	progressService *service.ProgressService,
	visService *service.VisibilityService,
	profileService *service.ProfileService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService:     authService,
		wordbookService: wordbookService,
		progressService: progressService,
		visService:      visService,
		profileService:  profileService,
		logger:          logger,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(middleware.Auth(h.authService, h.logger))
	{
		api.GET("/profile", h.getProfile)
		api.PATCH("/profile", h.updateProfile)

		api.GET("/progress/daily", h.listDaily)
		api.POST("/progress/daily", h.recordDaily)
		api.GET("/progress/sections", h.listSections)
		api.POST("/progress/sections", h.upsertSection)

		api.GET("/visibility", h.listVisibility)
		api.POST("/visibility", h.applyVisibility)

		api.GET("/wordbooks", h.listWordbooks)
		api.POST("/wordbooks", h.createWordbook)
		api.GET("/wordbooks/:id", h.getWordbook)
		api.PATCH("/wordbooks/:id", h.updateWordbook)
		api.DELETE("/wordbooks/:id", h.deleteWordbook)
		api.POST("/wordbooks/:id/entries", h.importEntries)
	}
}

// respondError maps service errors to HTTP statuses with the standard
// {"error": ...} body
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal error",
			"details": err.Error(),
		})
	}
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
