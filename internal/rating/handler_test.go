package rating

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

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, portfolioID, designID, reviewerID primitive.ObjectID, score int, feedback string) (primitive.ObjectID, error) {
	args := m.Called(ctx, portfolioID, designID, reviewerID, score, feedback)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func setupRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/ratings", handler.Add)
	return router
}

func postRating(router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdd_Success(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService)
	router := setupRouter(handler)

	portfolioID := primitive.NewObjectID()
	designID := primitive.NewObjectID()
	reviewerID := primitive.NewObjectID()

	mockService.On("Add", mock.Anything, portfolioID, designID, reviewerID, 4, "clean lines").
		Return(primitive.NewObjectID(), nil)

	feedback := "clean lines"
	w := postRating(router, FormAddRating{
		PortfolioID: portfolioID.Hex(),
		DesignID:    designID.Hex(),
		ReviewerID:  reviewerID.Hex(),
		Rating:      4,
		Feedback:    &feedback,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestAdd_FeedbackDefaultsToEmpty(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService)
	router := setupRouter(handler)

	portfolioID := primitive.NewObjectID()
	designID := primitive.NewObjectID()
	reviewerID := primitive.NewObjectID()

	mockService.On("Add", mock.Anything, portfolioID, designID, reviewerID, 5, "").
		Return(primitive.NewObjectID(), nil)

	w := postRating(router, FormAddRating{
		PortfolioID: portfolioID.Hex(),
		DesignID:    designID.Hex(),
		ReviewerID:  reviewerID.Hex(),
		Rating:      5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestAdd_RatingOutOfRange(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService)
	router := setupRouter(handler)

	w := postRating(router, FormAddRating{
		PortfolioID: primitive.NewObjectID().Hex(),
		DesignID:    primitive.NewObjectID().Hex(),
		ReviewerID:  primitive.NewObjectID().Hex(),
		Rating:      6,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdd_MissingReviewer(t *testing.T) {
	mockService := new(MockService)
	handler := NewHandler(mockService)
	router := setupRouter(handler)

	w := postRating(router, map[string]interface{}{
		"portfolioId": primitive.NewObjectID().Hex(),
		"designId":    primitive.NewObjectID().Hex(),
		"rating":      3,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
