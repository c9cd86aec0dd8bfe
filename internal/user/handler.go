package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
)

// Handler handles HTTP requests for the user directory
type Handler struct {
	service Service
}

// NewHandler creates a new user handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetByClerkID handles looking up a user by external identity id
func (h *Handler) GetByClerkID(c *gin.Context) {
	clerkID := c.Param("clerkId")
	if clerkID == "" {
		errors.HandleError(c, errors.ErrInvalidInput(nil).WithMessage("Missing clerkId"))
		return
	}

	u, err := h.service.GetByClerkID(c.Request.Context(), clerkID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// ListAll handles listing every user
func (h *Handler) ListAll(c *gin.Context) {
	users, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// ListDesigners handles the enriched designer directory view
func (h *Handler) ListDesigners(c *gin.Context) {
	listings, err := h.service.ListDesigners(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

// ListPublic handles listing the public user projection
func (h *Handler) ListPublic(c *gin.Context) {
	users, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
