package designer

import (
	"context"
	"time"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DesignerRepository defines the interface for designer data access
type DesignerRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*Designer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Designer, error)
	FindAll(ctx context.Context) ([]Designer, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, contactNumber, address *string) error
}

// PortfolioRepository defines the interface for portfolio data access
type PortfolioRepository interface {
	FindByDesigner(ctx context.Context, designerID primitive.ObjectID) (*Portfolio, error)
	FindAll(ctx context.Context) ([]Portfolio, error)
}

type DesignerRepositoryImpl struct {
	db *mongo.Database
}

// NewRepository creates a new designer repository
func NewRepository(database *mongo.Database) DesignerRepository {
	return &DesignerRepositoryImpl{db: database}
}

// FindByUser returns the first designer owned by the user, or nil when absent
func (r *DesignerRepositoryImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) (*Designer, error) {
	var d Designer
	err := r.db.Collection(db.CollDesigners).FindOne(ctx, bson.M{"userId": userID}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByID finds a designer by id
func (r *DesignerRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Designer, error) {
	var d Designer
	err := r.db.Collection(db.CollDesigners).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindAll returns every designer record
func (r *DesignerRepositoryImpl) FindAll(ctx context.Context) ([]Designer, error) {
	cur, err := r.db.Collection(db.CollDesigners).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	designers := []Designer{}
	if err := cur.All(ctx, &designers); err != nil {
		return nil, err
	}
	return designers, nil
}

// UpdateProfile patches only the supplied contact fields
func (r *DesignerRepositoryImpl) UpdateProfile(ctx context.Context, id primitive.ObjectID, contactNumber, address *string) error {
	update := bson.M{"updatedAt": time.Now().UTC()}
	if contactNumber != nil {
		update["contactNumber"] = *contactNumber
	}
	if address != nil {
		update["address"] = *address
	}

	_, err := r.db.Collection(db.CollDesigners).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

type PortfolioRepositoryImpl struct {
	db *mongo.Database
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(database *mongo.Database) PortfolioRepository {
	return &PortfolioRepositoryImpl{db: database}
}

// FindByDesigner returns the first portfolio of a designer, or nil when absent
func (r *PortfolioRepositoryImpl) FindByDesigner(ctx context.Context, designerID primitive.ObjectID) (*Portfolio, error) {
	var p Portfolio
	err := r.db.Collection(db.CollPortfolios).FindOne(ctx, bson.M{"designerId": designerID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns every portfolio record
func (r *PortfolioRepositoryImpl) FindAll(ctx context.Context) ([]Portfolio, error) {
	cur, err := r.db.Collection(db.CollPortfolios).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	portfolios := []Portfolio{}
	if err := cur.All(ctx, &portfolios); err != nil {
		return nil, err
	}
	return portfolios, nil
}
