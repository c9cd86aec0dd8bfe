package design

import (
	"context"
	"time"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DesignRepository defines the interface for design data access
type DesignRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*Design, error)
	FindByClient(ctx context.Context, clientID primitive.ObjectID) ([]Design, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	FindRequestByID(ctx context.Context, id primitive.ObjectID) (*DesignRequest, error)
}

// DesignRepositoryImpl implements DesignRepository
type DesignRepositoryImpl struct {
	db *mongo.Database
}

// NewRepository creates a new design repository
func NewRepository(database *mongo.Database) DesignRepository {
	return &DesignRepositoryImpl{db: database}
}

// FindByID finds a design by id
func (r *DesignRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Design, error) {
	var d Design
	err := r.db.Collection(db.CollDesigns).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByClient returns every design owned by the client
func (r *DesignRepositoryImpl) FindByClient(ctx context.Context, clientID primitive.ObjectID) ([]Design, error) {
	cur, err := r.db.Collection(db.CollDesigns).Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	designs := []Design{}
	if err := cur.All(ctx, &designs); err != nil {
		return nil, err
	}
	return designs, nil
}

// SetStatus patches a design's status and refreshes its updated timestamp
func (r *DesignRepositoryImpl) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := r.db.Collection(db.CollDesigns).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	return err
}

// FindRequestByID finds a design request by id
func (r *DesignRepositoryImpl) FindRequestByID(ctx context.Context, id primitive.ObjectID) (*DesignRequest, error) {
	var req DesignRequest
	err := r.db.Collection(db.CollDesignRequests).FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
