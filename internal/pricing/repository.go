package pricing

import (
	"context"
	"time"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DesignerPricingRepository defines the interface for designer pricing data access
type DesignerPricingRepository interface {
	FindAll(ctx context.Context) ([]DesignerPricing, error)
	FindByDesigner(ctx context.Context, designerID primitive.ObjectID) ([]DesignerPricing, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*DesignerPricing, error)
	Create(ctx context.Context, pricing *DesignerPricing) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PrintPricingRepository defines the interface for print pricing data access
type PrintPricingRepository interface {
	FindAll(ctx context.Context) ([]PrintPricing, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*PrintPricing, error)
	Create(ctx context.Context, pricing *PrintPricing) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DesignerPricingRepositoryImpl struct {
	db *mongo.Database
}

// NewDesignerRepository creates a new designer pricing repository
func NewDesignerRepository(database *mongo.Database) DesignerPricingRepository {
	return &DesignerPricingRepositoryImpl{db: database}
}

func (r *DesignerPricingRepositoryImpl) FindAll(ctx context.Context) ([]DesignerPricing, error) {
	return findPricing[DesignerPricing](ctx, r.db.Collection(db.CollDesignerPricing), bson.M{})
}

func (r *DesignerPricingRepositoryImpl) FindByDesigner(ctx context.Context, designerID primitive.ObjectID) ([]DesignerPricing, error) {
	return findPricing[DesignerPricing](ctx, r.db.Collection(db.CollDesignerPricing), bson.M{"designerId": designerID})
}

func (r *DesignerPricingRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*DesignerPricing, error) {
	var p DesignerPricing
	err := r.db.Collection(db.CollDesignerPricing).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DesignerPricingRepositoryImpl) Create(ctx context.Context, pricing *DesignerPricing) (primitive.ObjectID, error) {
	res, err := r.db.Collection(db.CollDesignerPricing).InsertOne(ctx, pricing)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Update patches the given fields and refreshes the updated timestamp
func (r *DesignerPricingRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	_, err := r.db.Collection(db.CollDesignerPricing).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

// Delete removes a record; deleting an absent id is a no-op
func (r *DesignerPricingRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.db.Collection(db.CollDesignerPricing).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

type PrintPricingRepositoryImpl struct {
	db *mongo.Database
}

// NewPrintRepository creates a new print pricing repository
func NewPrintRepository(database *mongo.Database) PrintPricingRepository {
	return &PrintPricingRepositoryImpl{db: database}
}

func (r *PrintPricingRepositoryImpl) FindAll(ctx context.Context) ([]PrintPricing, error) {
	return findPricing[PrintPricing](ctx, r.db.Collection(db.CollPrintPricing), bson.M{})
}

func (r *PrintPricingRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*PrintPricing, error) {
	var p PrintPricing
	err := r.db.Collection(db.CollPrintPricing).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrintPricingRepositoryImpl) Create(ctx context.Context, pricing *PrintPricing) (primitive.ObjectID, error) {
	res, err := r.db.Collection(db.CollPrintPricing).InsertOne(ctx, pricing)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Update patches the given fields and refreshes the updated timestamp
func (r *PrintPricingRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	_, err := r.db.Collection(db.CollPrintPricing).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

// Delete removes a record; deleting an absent id is a no-op
func (r *PrintPricingRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.db.Collection(db.CollPrintPricing).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func findPricing[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	records := []T{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
