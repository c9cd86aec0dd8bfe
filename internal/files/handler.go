package files

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
)

// Handler handles HTTP requests for storage handle resolution
type Handler struct {
	service Service
}

// NewHandler creates a new files handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FormResolveURLs represents the batch resolution payload.
// An absent list is valid and resolves to an empty batch.
type FormResolveURLs struct {
	StorageIDs []string `json:"storageIds"`
}

// GetURL handles resolving one storage handle
func (h *Handler) GetURL(c *gin.Context) {
	storageID := c.Param("storageId")
	if storageID == "" {
		errors.HandleError(c, errors.ErrInvalidInput(nil).WithMessage("Missing storageId"))
		return
	}

	url, err := h.service.GetURL(c.Request.Context(), storageID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetURLs handles resolving a batch of storage handles
func (h *Handler) GetURLs(c *gin.Context) {
	var form FormResolveURLs
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	urls, err := h.service.GetURLs(c.Request.Context(), form.StorageIDs)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"urls": urls})
}
