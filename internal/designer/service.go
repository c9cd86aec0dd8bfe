package designer

import (
	"context"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service defines the interface for designer profile business logic
type Service interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*Designer, error)
	UpdateProfile(ctx context.Context, designerID primitive.ObjectID, contactNumber, address *string) error
}

// DefaultService implements Service
type DefaultService struct {
	repository DesignerRepository
}

// NewService creates a new designer service
func NewService(repository DesignerRepository) Service {
	return &DefaultService{repository: repository}
}

// GetByUser returns the designer owned by the user; nil (not an error) when there is none
func (s *DefaultService) GetByUser(ctx context.Context, userID primitive.ObjectID) (*Designer, error) {
	return s.repository.FindByUser(ctx, userID)
}

// UpdateProfile patches whichever contact fields are present
func (s *DefaultService) UpdateProfile(ctx context.Context, designerID primitive.ObjectID, contactNumber, address *string) error {
	// nothing supplied, nothing to do
	if contactNumber == nil && address == nil {
		return nil
	}

	if _, err := s.repository.FindByID(ctx, designerID); err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.ErrNotFound(err).WithMessage("Designer not found")
		}
		return err
	}

	return s.repository.UpdateProfile(ctx, designerID, contactNumber, address)
}
