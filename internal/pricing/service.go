package pricing

import (
	"context"
	"time"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DesignerPricingUpdate carries the patchable designer pricing fields
type DesignerPricingUpdate struct {
	NormalAmount     *float64
	DiscountedAmount *float64
	Description      *string
}

// PrintPricingUpdate carries the patchable print pricing fields
type PrintPricingUpdate struct {
	Amount      *float64
	Description *string
}

// DesignerService defines the interface for designer pricing business logic
type DesignerService interface {
	GetAll(ctx context.Context) ([]DesignerPricingResponse, error)
	GetByDesigner(ctx context.Context, designerID primitive.ObjectID) ([]DesignerPricing, error)
	Create(ctx context.Context, pricing *DesignerPricing) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, update DesignerPricingUpdate) error
	Remove(ctx context.Context, id primitive.ObjectID) error
}

// PrintService defines the interface for print pricing business logic
type PrintService interface {
	GetAll(ctx context.Context) ([]PrintPricing, error)
	Create(ctx context.Context, pricing *PrintPricing) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, update PrintPricingUpdate) error
	Remove(ctx context.Context, id primitive.ObjectID) error
}

// DefaultDesignerService implements DesignerService
type DefaultDesignerService struct {
	repository DesignerPricingRepository
}

// NewDesignerService creates a new designer pricing service
func NewDesignerService(repository DesignerPricingRepository) DesignerService {
	return &DefaultDesignerService{repository: repository}
}

// GetAll returns every record reshaped to the external projection
func (s *DefaultDesignerService) GetAll(ctx context.Context) ([]DesignerPricingResponse, error) {
	records, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DesignerPricingResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}
	return responses, nil
}

// GetByDesigner returns the records owned by one designer
func (s *DefaultDesignerService) GetByDesigner(ctx context.Context, designerID primitive.ObjectID) ([]DesignerPricing, error) {
	return s.repository.FindByDesigner(ctx, designerID)
}

// Create inserts a record with matching creation and update timestamps
func (s *DefaultDesignerService) Create(ctx context.Context, pricing *DesignerPricing) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	pricing.CreatedAt = now
	pricing.UpdatedAt = now
	return s.repository.Create(ctx, pricing)
}

// Update patches the supplied fields after confirming the record exists
func (s *DefaultDesignerService) Update(ctx context.Context, id primitive.ObjectID, update DesignerPricingUpdate) error {
	if _, err := s.repository.FindByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.ErrNotFound(err).WithMessage("Designer pricing not found")
		}
		return err
	}

	fields := bson.M{}
	if update.NormalAmount != nil {
		fields["price"] = *update.NormalAmount
	}
	if update.DiscountedAmount != nil {
		fields["discountedPrice"] = *update.DiscountedAmount
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}

	return s.repository.Update(ctx, id, fields)
}

// Remove deletes a record; absent ids succeed as a no-op
func (s *DefaultDesignerService) Remove(ctx context.Context, id primitive.ObjectID) error {
	return s.repository.Delete(ctx, id)
}

// DefaultPrintService implements PrintService
type DefaultPrintService struct {
	repository PrintPricingRepository
}

// NewPrintService creates a new print pricing service
func NewPrintService(repository PrintPricingRepository) PrintService {
	return &DefaultPrintService{repository: repository}
}

// GetAll returns every print pricing record
func (s *DefaultPrintService) GetAll(ctx context.Context) ([]PrintPricing, error) {
	return s.repository.FindAll(ctx)
}

// Create inserts a record with matching creation and update timestamps
func (s *DefaultPrintService) Create(ctx context.Context, pricing *PrintPricing) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	pricing.CreatedAt = now
	pricing.UpdatedAt = now
	return s.repository.Create(ctx, pricing)
}

// Update patches the supplied fields after confirming the record exists
func (s *DefaultPrintService) Update(ctx context.Context, id primitive.ObjectID, update PrintPricingUpdate) error {
	if _, err := s.repository.FindByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.ErrNotFound(err).WithMessage("Print pricing not found")
		}
		return err
	}

	fields := bson.M{}
	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}

	return s.repository.Update(ctx, id, fields)
}

// Remove deletes a record; absent ids succeed as a no-op
func (s *DefaultPrintService) Remove(ctx context.Context, id primitive.ObjectID) error {
	return s.repository.Delete(ctx, id)
}
