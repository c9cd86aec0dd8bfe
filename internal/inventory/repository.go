package inventory

import (
	"context"
	"time"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InventoryRepository defines the interface for inventory data access
type InventoryRepository interface {
	CreateItem(ctx context.Context, item *Item) (primitive.ObjectID, error)
	FindItems(ctx context.Context) ([]Item, error)
	FindItemByID(ctx context.Context, id primitive.ObjectID) (*Item, error)
	UpdateItem(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
	FindCategories(ctx context.Context) ([]Category, error)
}

// InventoryRepositoryImpl implements InventoryRepository
type InventoryRepositoryImpl struct {
	db *mongo.Database
}

// NewRepository creates a new inventory repository
func NewRepository(database *mongo.Database) InventoryRepository {
	return &InventoryRepositoryImpl{db: database}
}

// CreateItem inserts an item and returns its new id
func (r *InventoryRepositoryImpl) CreateItem(ctx context.Context, item *Item) (primitive.ObjectID, error) {
	res, err := r.db.Collection(db.CollInventoryItems).InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindItems returns every inventory item
func (r *InventoryRepositoryImpl) FindItems(ctx context.Context) ([]Item, error) {
	cur, err := r.db.Collection(db.CollInventoryItems).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindItemByID finds an item by id
func (r *InventoryRepositoryImpl) FindItemByID(ctx context.Context, id primitive.ObjectID) (*Item, error) {
	var item Item
	err := r.db.Collection(db.CollInventoryItems).FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem patches the given fields and refreshes the updated timestamp
func (r *InventoryRepositoryImpl) UpdateItem(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	_, err := r.db.Collection(db.CollInventoryItems).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

// DeleteItem removes an item; deleting an absent id is a no-op
func (r *InventoryRepositoryImpl) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.db.Collection(db.CollInventoryItems).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// FindCategories returns every inventory category
func (r *InventoryRepositoryImpl) FindCategories(ctx context.Context) ([]Category, error) {
	cur, err := r.db.Collection(db.CollInventoryCats).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	categories := []Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
