package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPrintService is a mock implementation of PrintService
type MockPrintService struct {
	mock.Mock
}

func (m *MockPrintService) GetAll(ctx context.Context) ([]PrintPricing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PrintPricing), args.Error(1)
}

func (m *MockPrintService) Create(ctx context.Context, pricing *PrintPricing) (primitive.ObjectID, error) {
	args := m.Called(ctx, pricing)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockPrintService) Update(ctx context.Context, id primitive.ObjectID, update PrintPricingUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockPrintService) Remove(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDesignerService is a mock implementation of DesignerService
type MockDesignerService struct {
	mock.Mock
}

func (m *MockDesignerService) GetAll(ctx context.Context) ([]DesignerPricingResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DesignerPricingResponse), args.Error(1)
}

func (m *MockDesignerService) GetByDesigner(ctx context.Context, designerID primitive.ObjectID) ([]DesignerPricing, error) {
	args := m.Called(ctx, designerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DesignerPricing), args.Error(1)
}

func (m *MockDesignerService) Create(ctx context.Context, pricing *DesignerPricing) (primitive.ObjectID, error) {
	args := m.Called(ctx, pricing)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockDesignerService) Update(ctx context.Context, id primitive.ObjectID, update DesignerPricingUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockDesignerService) Remove(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	router := gin.New()
	router.POST("/pricing/print", handler.CreatePrintPricing)
	router.DELETE("/pricing/print/:id", handler.DeletePrintPricing)
	return router
}

func TestCreatePrintPricing_Success(t *testing.T) {
	prints := new(MockPrintService)
	handler := NewHandler(new(MockDesignerService), prints)
	router := setupRouter(handler)

	prints.On("Create", mock.Anything, mock.MatchedBy(func(p *PrintPricing) bool {
		return p.PrintType == PrintSublimation && p.Amount == 120
	})).Return(primitive.NewObjectID(), nil)

	body, _ := json.Marshal(FormCreatePrintPricing{PrintType: PrintSublimation, Amount: 120})
	req := httptest.NewRequest("POST", "/pricing/print", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	prints.AssertExpectations(t)
}

func TestCreatePrintPricing_UnknownPrintType(t *testing.T) {
	prints := new(MockPrintService)
	handler := NewHandler(new(MockDesignerService), prints)
	router := setupRouter(handler)

	body, _ := json.Marshal(FormCreatePrintPricing{PrintType: "Embroidery", Amount: 120})
	req := httptest.NewRequest("POST", "/pricing/print", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	prints.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeletePrintPricing_AbsentIDIsNoOp(t *testing.T) {
	prints := new(MockPrintService)
	handler := NewHandler(new(MockDesignerService), prints)
	router := setupRouter(handler)

	id := primitive.NewObjectID()
	prints.On("Remove", mock.Anything, id).Return(nil)

	req := httptest.NewRequest("DELETE", "/pricing/print/"+id.Hex(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	prints.AssertExpectations(t)
}
