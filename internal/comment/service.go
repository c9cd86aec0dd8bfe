package comment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines the interface for comment business logic
type Service interface {
	Add(ctx context.Context, previewID, userID primitive.ObjectID, text string) (primitive.ObjectID, error)
	ListByPreview(ctx context.Context, previewID primitive.ObjectID) ([]Comment, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]Comment, error)
}

// DefaultService implements Service
type DefaultService struct {
	repository CommentRepository
}

// NewService creates a new comment service
func NewService(repository CommentRepository) Service {
	return &DefaultService{repository: repository}
}

// Add inserts a comment stamped with the current time.
// Preview and author ids are trusted; referential checks stay with the caller.
func (s *DefaultService) Add(ctx context.Context, previewID, userID primitive.ObjectID, text string) (primitive.ObjectID, error) {
	return s.repository.Create(ctx, &Comment{
		PreviewID: previewID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
}

// ListByPreview returns a preview's comments, oldest first
func (s *DefaultService) ListByPreview(ctx context.Context, previewID primitive.ObjectID) ([]Comment, error) {
	return s.repository.FindByPreview(ctx, previewID)
}

// ListByUser returns a user's comments, oldest first
func (s *DefaultService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]Comment, error) {
	return s.repository.FindByUser(ctx, userID)
}
