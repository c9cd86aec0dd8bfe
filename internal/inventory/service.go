package inventory

import (
	"context"
	"time"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ItemUpdate carries the patchable item fields
type ItemUpdate struct {
	Name         *string
	CategoryID   *primitive.ObjectID
	Unit         *string
	Stock        *float64
	ReorderLevel *float64
	Description  *string
}

// Service defines the interface for inventory business logic
type Service interface {
	CreateItem(ctx context.Context, item *Item) (primitive.ObjectID, error)
	GetItems(ctx context.Context) ([]EnrichedItem, error)
	GetCategories(ctx context.Context) ([]Category, error)
	UpdateItem(ctx context.Context, id primitive.ObjectID, update ItemUpdate) error
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
}

// DefaultService implements Service
type DefaultService struct {
	repository InventoryRepository
}

// NewService creates a new inventory service
func NewService(repository InventoryRepository) Service {
	return &DefaultService{repository: repository}
}

// CreateItem inserts an item with matching creation and update timestamps
func (s *DefaultService) CreateItem(ctx context.Context, item *Item) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.repository.CreateItem(ctx, item)
}

// GetItems returns every item with its category name attached. The
// categories are fetched once and joined through a map; an item whose
// category is gone gets the "Unknown" placeholder instead of failing
// the whole read.
func (s *DefaultService) GetItems(ctx context.Context) ([]EnrichedItem, error) {
	items, err := s.repository.FindItems(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.repository.FindCategories(ctx)
	if err != nil {
		return nil, err
	}

	nameByID := make(map[string]string, len(categories))
	for _, cat := range categories {
		nameByID[cat.ID.Hex()] = cat.Name
	}

	enriched := make([]EnrichedItem, 0, len(items))
	for _, item := range items {
		name, ok := nameByID[item.CategoryID.Hex()]
		if !ok {
			name = UnknownCategory
		}
		enriched = append(enriched, EnrichedItem{Item: item, CategoryName: name})
	}

	return enriched, nil
}

// GetCategories returns every category
func (s *DefaultService) GetCategories(ctx context.Context) ([]Category, error) {
	return s.repository.FindCategories(ctx)
}

// UpdateItem patches the supplied fields after confirming the item exists
func (s *DefaultService) UpdateItem(ctx context.Context, id primitive.ObjectID, update ItemUpdate) error {
	if _, err := s.repository.FindItemByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.ErrNotFound(err).WithMessage("Inventory item not found")
		}
		return err
	}

	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.CategoryID != nil {
		fields["categoryId"] = *update.CategoryID
	}
	if update.Unit != nil {
		fields["unit"] = *update.Unit
	}
	if update.Stock != nil {
		fields["stock"] = *update.Stock
	}
	if update.ReorderLevel != nil {
		fields["reorderLevel"] = *update.ReorderLevel
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}

	return s.repository.UpdateItem(ctx, id, fields)
}

// DeleteItem removes an item; absent ids succeed as a no-op
func (s *DefaultService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	return s.repository.DeleteItem(ctx, id)
}
