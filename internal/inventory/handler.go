package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler handles HTTP requests for inventory
type Handler struct {
	service Service
}

// NewHandler creates a new inventory handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FormCreateItem represents the item creation payload
type FormCreateItem struct {
	Name         string   `json:"name" binding:"required"`
	CategoryID   string   `json:"categoryId" binding:"required"`
	Unit         string   `json:"unit" binding:"required"`
	Stock        float64  `json:"stock" binding:"min=0"`
	ReorderLevel *float64 `json:"reorderLevel"`
	Description  *string  `json:"description"`
}

// FormUpdateItem represents the item patch payload
type FormUpdateItem struct {
	Name         *string  `json:"name"`
	CategoryID   *string  `json:"categoryId"`
	Unit         *string  `json:"unit"`
	Stock        *float64 `json:"stock"`
	ReorderLevel *float64 `json:"reorderLevel"`
	Description  *string  `json:"description"`
}

// CreateItem handles creating an inventory item
func (h *Handler) CreateItem(c *gin.Context) {
	var form FormCreateItem
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(form.CategoryID)
	if err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err).WithMessage("Invalid categoryId"))
		return
	}

	id, err := h.service.CreateItem(c.Request.Context(), &Item{
		Name:         form.Name,
		CategoryID:   categoryID,
		Unit:         form.Unit,
		Stock:        form.Stock,
		ReorderLevel: form.ReorderLevel,
		Description:  form.Description,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// ListItems handles listing every item with category names attached
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.GetItems(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListCategories handles listing every category
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// UpdateItem handles patching an inventory item
func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := utils.ObjectIDParam(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	var form FormUpdateItem
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	update := ItemUpdate{
		Name:         form.Name,
		Unit:         form.Unit,
		Stock:        form.Stock,
		ReorderLevel: form.ReorderLevel,
		Description:  form.Description,
	}
	if form.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*form.CategoryID)
		if err != nil {
			errors.HandleError(c, errors.ErrInvalidInput(err).WithMessage("Invalid categoryId"))
			return
		}
		update.CategoryID = &categoryID
	}

	if err := h.service.UpdateItem(c.Request.Context(), id, update); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteItem handles deleting an inventory item
func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := utils.ObjectIDParam(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
