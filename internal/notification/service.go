package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/design"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DesignProvider supplies the design lookups and status patch
type DesignProvider interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*design.Design, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// Service defines the interface for notification business logic
type Service interface {
	NotifyClientDesignUpdate(ctx context.Context, designID primitive.ObjectID) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]Notification, error)
}

// DefaultService implements Service
type DefaultService struct {
	repository NotificationRepository
	designs    DesignProvider
}

// NewService creates a new notification service
func NewService(repository NotificationRepository, designs DesignProvider) Service {
	return &DefaultService{repository: repository, designs: designs}
}

// NotifyClientDesignUpdate moves a design to in_progress and notifies the
// owning client. Both checks run before any write. The two writes are not
// atomic; if the notification insert fails the status patch is rolled back,
// leaving only the residual risk of the compensating patch itself failing.
func (s *DefaultService) NotifyClientDesignUpdate(ctx context.Context, designID primitive.ObjectID) error {
	d, err := s.designs.FindByID(ctx, designID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.ErrNotFound(err).WithMessage("Design not found")
		}
		return err
	}

	if d.ClientID.IsZero() {
		return errors.ErrInvalidState(nil).WithMessage("Design has no client")
	}

	priorStatus := d.Status
	if err := s.designs.SetStatus(ctx, designID, design.StatusInProgress); err != nil {
		return err
	}

	_, err = s.repository.Create(ctx, &Notification{
		UserID:        d.ClientID,
		RecipientType: RecipientClient,
		Message:       fmt.Sprintf("Your design %s has been updated", designID.Hex()),
		Read:          false,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		// compensate: put the status back so the client never sees an
		// in_progress design they were not told about
		if rollbackErr := s.designs.SetStatus(ctx, designID, priorStatus); rollbackErr != nil {
			log.Printf("failed to roll back status of design %s: %v\n", designID.Hex(), rollbackErr)
		}
		return err
	}

	return nil
}

// ListByUser returns a recipient's notifications
func (s *DefaultService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]Notification, error) {
	return s.repository.FindByUser(ctx, userID)
}
