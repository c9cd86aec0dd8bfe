package designer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/utils"
)

// Handler handles HTTP requests for designer profiles
type Handler struct {
	service Service
}

// NewHandler creates a new designer handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FormUpdateProfile represents the patchable contact fields
type FormUpdateProfile struct {
	ContactNumber *string `json:"contactNumber"`
	Address       *string `json:"address"`
}

// GetByUser handles looking up the designer owned by a user
func (h *Handler) GetByUser(c *gin.Context) {
	userID, err := utils.ObjectIDParam(c, "userId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	designer, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	// absence is a valid answer, not a 404
	c.JSON(http.StatusOK, gin.H{"designer": designer})
}

// UpdateProfile handles patching a designer's contact fields
func (h *Handler) UpdateProfile(c *gin.Context) {
	designerID, err := utils.ObjectIDParam(c, "designerId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	var form FormUpdateProfile
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), designerID, form.ContactNumber, form.Address); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
