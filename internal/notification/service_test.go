package notification

import (
	"context"
	"testing"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/design"
	apperrors "github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *Notification) (primitive.ObjectID, error) {
	args := m.Called(ctx, notification)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockNotificationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

// MockDesignProvider is a mock implementation of DesignProvider
type MockDesignProvider struct {
	mock.Mock
}

func (m *MockDesignProvider) FindByID(ctx context.Context, id primitive.ObjectID) (*design.Design, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*design.Design), args.Error(1)
}

func (m *MockDesignProvider) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestNotifyClientDesignUpdate_Success(t *testing.T) {
	repo := new(MockNotificationRepository)
	designs := new(MockDesignProvider)
	service := NewService(repo, designs)

	designID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()

	designs.On("FindByID", mock.Anything, designID).Return(&design.Design{
		ID:       designID,
		ClientID: clientID,
		Status:   design.StatusPending,
	}, nil)
	designs.On("SetStatus", mock.Anything, designID, design.StatusInProgress).Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *Notification) bool {
		return n.UserID == clientID &&
			n.RecipientType == RecipientClient &&
			!n.Read &&
			!n.CreatedAt.IsZero()
	})).Return(primitive.NewObjectID(), nil)

	err := service.NotifyClientDesignUpdate(context.Background(), designID)

	assert.NoError(t, err)
	designs.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestNotifyClientDesignUpdate_DesignNotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	designs := new(MockDesignProvider)
	service := NewService(repo, designs)

	designID := primitive.NewObjectID()
	designs.On("FindByID", mock.Anything, designID).Return(nil, mongo.ErrNoDocuments)

	err := service.NotifyClientDesignUpdate(context.Background(), designID)

	assert.Error(t, err)
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)

	// no writes on a missing design
	designs.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNotifyClientDesignUpdate_NoClient(t *testing.T) {
	repo := new(MockNotificationRepository)
	designs := new(MockDesignProvider)
	service := NewService(repo, designs)

	designID := primitive.NewObjectID()
	designs.On("FindByID", mock.Anything, designID).Return(&design.Design{
		ID:     designID,
		Status: design.StatusPending,
	}, nil)

	err := service.NotifyClientDesignUpdate(context.Background(), designID)

	assert.Error(t, err)
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)

	// no writes on a design without a client
	designs.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNotifyClientDesignUpdate_RollsBackStatusOnInsertFailure(t *testing.T) {
	repo := new(MockNotificationRepository)
	designs := new(MockDesignProvider)
	service := NewService(repo, designs)

	designID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()

	designs.On("FindByID", mock.Anything, designID).Return(&design.Design{
		ID:       designID,
		ClientID: clientID,
		Status:   design.StatusPending,
	}, nil)
	designs.On("SetStatus", mock.Anything, designID, design.StatusInProgress).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(primitive.NilObjectID, assert.AnError)
	// the compensation restores the prior status
	designs.On("SetStatus", mock.Anything, designID, design.StatusPending).Return(nil)

	err := service.NotifyClientDesignUpdate(context.Background(), designID)

	assert.Error(t, err)
	designs.AssertCalled(t, "SetStatus", mock.Anything, designID, design.StatusPending)
	designs.AssertExpectations(t)
	repo.AssertExpectations(t)
}
