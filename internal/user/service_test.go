package user

import (
	"context"
	"testing"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/designer"
	apperrors "github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByClerkID(ctx context.Context, clerkID string) (*User, error) {
	args := m.Called(ctx, clerkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role string) ([]User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

// MockDesignerProvider is a mock implementation of DesignerProvider
type MockDesignerProvider struct {
	mock.Mock
}

func (m *MockDesignerProvider) FindAll(ctx context.Context) ([]designer.Designer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]designer.Designer), args.Error(1)
}

// MockPortfolioProvider is a mock implementation of PortfolioProvider
type MockPortfolioProvider struct {
	mock.Mock
}

func (m *MockPortfolioProvider) FindAll(ctx context.Context) ([]designer.Portfolio, error) {
	args := m.Called(ctx)
	return args.Get(0).([]designer.Portfolio), args.Error(1)
}

func TestListDesigners_JoinsDesignersAndPortfolios(t *testing.T) {
	repo := new(MockUserRepository)
	designers := new(MockDesignerProvider)
	portfolios := new(MockPortfolioProvider)
	service := NewService(repo, designers, portfolios)

	// fixture: two designer-role users, one with a designer record and
	// portfolio, one with nothing attached
	withRecord := User{ID: primitive.NewObjectID(), FirstName: "Ana", Role: "designer"}
	withoutRecord := User{ID: primitive.NewObjectID(), FirstName: "Ben", Role: "designer"}

	designerID := primitive.NewObjectID()
	portfolioID := primitive.NewObjectID()

	repo.On("FindByRole", mock.Anything, "designer").Return([]User{withRecord, withoutRecord}, nil)
	designers.On("FindAll", mock.Anything).Return([]designer.Designer{
		{ID: designerID, UserID: withRecord.ID},
	}, nil)
	portfolios.On("FindAll", mock.Anything).Return([]designer.Portfolio{
		{ID: portfolioID, DesignerID: designerID, Specialization: "Jerseys", Skills: []string{"vector", "sublimation"}},
	}, nil)

	listings, err := service.ListDesigners(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "Jerseys", listings[0].Specialization)
	assert.Equal(t, []string{"vector", "sublimation"}, listings[0].Skills)
	require.NotNil(t, listings[0].PortfolioID)
	assert.Equal(t, portfolioID, *listings[0].PortfolioID)

	// a designer-role user with no designer record still appears, with defaults
	assert.Equal(t, "General", listings[1].Specialization)
	assert.Empty(t, listings[1].Skills)
	assert.Nil(t, listings[1].PortfolioID)
}

func TestListDesigners_DesignerWithoutPortfolioGetsDefaults(t *testing.T) {
	repo := new(MockUserRepository)
	designers := new(MockDesignerProvider)
	portfolios := new(MockPortfolioProvider)
	service := NewService(repo, designers, portfolios)

	u := User{ID: primitive.NewObjectID(), Role: "designer"}
	repo.On("FindByRole", mock.Anything, "designer").Return([]User{u}, nil)
	designers.On("FindAll", mock.Anything).Return([]designer.Designer{
		{ID: primitive.NewObjectID(), UserID: u.ID},
	}, nil)
	portfolios.On("FindAll", mock.Anything).Return([]designer.Portfolio{}, nil)

	listings, err := service.ListDesigners(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "General", listings[0].Specialization)
	assert.Empty(t, listings[0].Skills)
	assert.Nil(t, listings[0].PortfolioID)
}

func TestGetByClerkID_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo, new(MockDesignerProvider), new(MockPortfolioProvider))

	repo.On("FindByClerkID", mock.Anything, "user_missing").Return(nil, mongo.ErrNoDocuments)

	_, err := service.GetByClerkID(context.Background(), "user_missing")

	assert.Error(t, err)
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestListPublic_ProjectsMinimalFields(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo, new(MockDesignerProvider), new(MockPortfolioProvider))

	u := User{
		ID:        primitive.NewObjectID(),
		ClerkID:   "user_1",
		FirstName: "Ana",
		LastName:  "Cruz",
		Email:     "ana@example.com",
		Role:      "client",
	}
	repo.On("FindAll", mock.Anything).Return([]User{u}, nil)

	public, err := service.ListPublic(context.Background())

	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, u.ID, public[0].ID)
	assert.Equal(t, "Ana", public[0].FirstName)
	assert.Equal(t, "Cruz", public[0].LastName)
	assert.Equal(t, "ana@example.com", public[0].Email)
}
