package design

import (
	"context"
	"log"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SketchResolver resolves a sketch storage handle to a URL
type SketchResolver interface {
	GetURL(ctx context.Context, storageID string) (*string, error)
}

// Service defines the interface for design reads
type Service interface {
	GetRequest(ctx context.Context, id primitive.ObjectID) (*RequestDetails, error)
	ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]Design, error)
}

// DefaultService implements Service
type DefaultService struct {
	repository DesignRepository
	sketches   SketchResolver
}

// NewService creates a new design service
func NewService(repository DesignRepository, sketches SketchResolver) Service {
	return &DefaultService{repository: repository, sketches: sketches}
}

// GetRequest returns a design request with its sketch handle resolved.
// A request without a sketch, or one whose handle no longer resolves,
// still renders; the URL is simply null.
func (s *DefaultService) GetRequest(ctx context.Context, id primitive.ObjectID) (*RequestDetails, error) {
	req, err := s.repository.FindRequestByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrNotFound(err).WithMessage("Design request not found")
		}
		return nil, err
	}

	details := &RequestDetails{DesignRequest: *req}
	if req.SketchID != nil {
		url, err := s.sketches.GetURL(ctx, *req.SketchID)
		if err != nil {
			log.Printf("failed to resolve sketch %s: %v\n", *req.SketchID, err)
		} else {
			details.SketchURL = url
		}
	}

	return details, nil
}

// ListByClient returns the client's designs for the dashboard
func (s *DefaultService) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]Design, error) {
	return s.repository.FindByClient(ctx, clientID)
}
