package rating

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler handles HTTP requests for ratings
type Handler struct {
	service Service
}

// NewHandler creates a new rating handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FormAddRating represents the rating creation payload
type FormAddRating struct {
	PortfolioID string  `json:"portfolioId" binding:"required"`
	DesignID    string  `json:"designId" binding:"required"`
	ReviewerID  string  `json:"reviewerId" binding:"required"`
	Rating      int     `json:"rating" binding:"required,min=1,max=5"`
	Feedback    *string `json:"feedback"`
}

// Add handles creating a rating
func (h *Handler) Add(c *gin.Context) {
	var form FormAddRating
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	portfolioID, err := primitive.ObjectIDFromHex(form.PortfolioID)
	if err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err).WithMessage("Invalid portfolioId"))
		return
	}
	designID, err := primitive.ObjectIDFromHex(form.DesignID)
	if err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err).WithMessage("Invalid designId"))
		return
	}
	reviewerID, err := primitive.ObjectIDFromHex(form.ReviewerID)
	if err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err).WithMessage("Invalid reviewerId"))
		return
	}

	feedback := ""
	if form.Feedback != nil {
		feedback = *form.Feedback
	}

	id, err := h.service.Add(c.Request.Context(), portfolioID, designID, reviewerID, form.Rating, feedback)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}
