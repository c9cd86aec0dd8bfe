package rating

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines the interface for rating business logic
type Service interface {
	Add(ctx context.Context, portfolioID, designID, reviewerID primitive.ObjectID, score int, feedback string) (primitive.ObjectID, error)
}

// DefaultService implements Service
type DefaultService struct {
	repository RatingRepository
}

// NewService creates a new rating service
func NewService(repository RatingRepository) Service {
	return &DefaultService{repository: repository}
}

// Add inserts one rating record. The 1-5 bound is enforced at the
// binding layer; feedback defaults to the empty string upstream.
func (s *DefaultService) Add(ctx context.Context, portfolioID, designID, reviewerID primitive.ObjectID, score int, feedback string) (primitive.ObjectID, error) {
	return s.repository.Create(ctx, &Rating{
		PortfolioID: portfolioID,
		DesignID:    designID,
		ReviewerID:  reviewerID,
		Rating:      score,
		Feedback:    feedback,
		CreatedAt:   time.Now().UTC(),
	})
}
