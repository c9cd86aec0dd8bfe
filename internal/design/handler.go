package design

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/utils"
)

// Handler handles HTTP requests for design reads
type Handler struct {
	service Service
}

// NewHandler creates a new design handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetRequest handles showing a design request with its sketch URL
func (h *Handler) GetRequest(c *gin.Context) {
	id, err := utils.ObjectIDParam(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	details, err := h.service.GetRequest(c.Request.Context(), id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// ListByClient handles listing a client's designs
func (h *Handler) ListByClient(c *gin.Context) {
	clientID, err := utils.ObjectIDParam(c, "userId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	designs, err := h.service.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, designs)
}
