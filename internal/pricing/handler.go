package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterValidators adds the printtype rule to gin's binding validator
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("printtype", func(fl validator.FieldLevel) bool {
			t := fl.Field().String()
			return t == PrintSublimation || t == PrintDtf
		})
	}
}

// Handler handles HTTP requests for both pricing catalogs
type Handler struct {
	designers DesignerService
	prints    PrintService
}

// NewHandler creates a new pricing handler
func NewHandler(designers DesignerService, prints PrintService) *Handler {
	return &Handler{designers: designers, prints: prints}
}

// FormCreateDesignerPricing represents the designer pricing creation payload
type FormCreateDesignerPricing struct {
	DesignerID       string   `json:"designerId" binding:"required"`
	NormalAmount     float64  `json:"normalAmount" binding:"required,gt=0"`
	DiscountedAmount *float64 `json:"discountedAmount"`
	Description      *string  `json:"description"`
}

// FormUpdateDesignerPricing represents the designer pricing patch payload
type FormUpdateDesignerPricing struct {
	NormalAmount     *float64 `json:"normalAmount"`
	DiscountedAmount *float64 `json:"discountedAmount"`
	Description      *string  `json:"description"`
}

// FormCreatePrintPricing represents the print pricing creation payload
type FormCreatePrintPricing struct {
	PrintType   string  `json:"printType" binding:"required,printtype"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description *string `json:"description"`
}

// FormUpdatePrintPricing represents the print pricing patch payload
type FormUpdatePrintPricing struct {
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
}

// ListDesignerPricing handles listing every designer pricing record
func (h *Handler) ListDesignerPricing(c *gin.Context) {
	responses, err := h.designers.GetAll(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// ListByDesigner handles listing one designer's pricing records
func (h *Handler) ListByDesigner(c *gin.Context) {
	designerID, err := utils.ObjectIDParam(c, "designerId")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	records, err := h.designers.GetByDesigner(c.Request.Context(), designerID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateDesignerPricing handles creating a designer pricing record
func (h *Handler) CreateDesignerPricing(c *gin.Context) {
	var form FormCreateDesignerPricing
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	designerID, err := primitive.ObjectIDFromHex(form.DesignerID)
	if err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err).WithMessage("Invalid designerId"))
		return
	}

	id, err := h.designers.Create(c.Request.Context(), &DesignerPricing{
		DesignerID:       designerID,
		NormalAmount:     form.NormalAmount,
		DiscountedAmount: form.DiscountedAmount,
		Description:      form.Description,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// UpdateDesignerPricing handles patching a designer pricing record
func (h *Handler) UpdateDesignerPricing(c *gin.Context) {
	id, err := utils.ObjectIDParam(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	var form FormUpdateDesignerPricing
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	err = h.designers.Update(c.Request.Context(), id, DesignerPricingUpdate{
		NormalAmount:     form.NormalAmount,
		DiscountedAmount: form.DiscountedAmount,
		Description:      form.Description,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteDesignerPricing handles deleting a designer pricing record
func (h *Handler) DeleteDesignerPricing(c *gin.Context) {
	id, err := utils.ObjectIDParam(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.designers.Remove(c.Request.Context(), id); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPrintPricing handles listing every print pricing record
func (h *Handler) ListPrintPricing(c *gin.Context) {
	records, err := h.prints.GetAll(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreatePrintPricing handles creating a print pricing record
func (h *Handler) CreatePrintPricing(c *gin.Context) {
	var form FormCreatePrintPricing
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	id, err := h.prints.Create(c.Request.Context(), &PrintPricing{
		PrintType:   form.PrintType,
		Amount:      form.Amount,
		Description: form.Description,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// UpdatePrintPricing handles patching a print pricing record
func (h *Handler) UpdatePrintPricing(c *gin.Context) {
	id, err := utils.ObjectIDParam(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	var form FormUpdatePrintPricing
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.HandleError(c, errors.ErrInvalidInput(err))
		return
	}

	err = h.prints.Update(c.Request.Context(), id, PrintPricingUpdate{
		Amount:      form.Amount,
		Description: form.Description,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePrintPricing handles deleting a print pricing record
func (h *Handler) DeletePrintPricing(c *gin.Context) {
	id, err := utils.ObjectIDParam(c, "id")
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.prints.Remove(c.Request.Context(), id); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
