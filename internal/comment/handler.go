package comment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler handles HTTP requests for comments
type Handler struct {
	service Service
}

// NewHandler creates a new comment handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FormAddComment represents the comment creation payload
type FormAddComment struct {
	PreviewID string `json:"previewId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// Add handles creating a comment
func (h *Handler) Add(c *gin.Context) {
	var form FormAddComment
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	previewID, err := primitive.ObjectIDFromHex(form.PreviewID)
	if err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err).WithMessage("Invalid previewId"))
		return
	}
	userID, err := primitive.ObjectIDFromHex(form.UserID)
	if err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err).WithMessage("Invalid userId"))
		return
	}

	id, err := h.service.Add(c.Request.Context(), previewID, userID, form.Text)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// ListByPreview handles listing a preview's comments
func (h *Handler) ListByPreview(c *gin.Context) {
	previewID, err := utils.ObjectIDParam(c, "previewId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	comments, err := h.service.ListByPreview(c.Request.Context(), previewID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// ListByUser handles listing a user's comments
func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := utils.ObjectIDParam(c, "userId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	comments, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
