package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/utils"
)

// Handler handles HTTP requests for notifications
type Handler struct {
	service Service
}

// NewHandler creates a new notification handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// NotifyDesignUpdate handles the design-update trigger
func (h *Handler) NotifyDesignUpdate(c *gin.Context) {
	designID, err := utils.ObjectIDParam(c, "designId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.service.NotifyClientDesignUpdate(c.Request.Context(), designID); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListByUser handles listing a recipient's notifications
func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := utils.ObjectIDParam(c, "userId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	notifications, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}
