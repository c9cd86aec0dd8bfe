package rating

import (
	"context"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RatingRepository defines the interface for rating data access
type RatingRepository interface {
	Create(ctx context.Context, rating *Rating) (primitive.ObjectID, error)
}

// RatingRepositoryImpl implements RatingRepository
type RatingRepositoryImpl struct {
	db *mongo.Database
}

// NewRepository creates a new rating repository
func NewRepository(database *mongo.Database) RatingRepository {
	return &RatingRepositoryImpl{db: database}
}

// Create inserts a rating and returns its new id
func (r *RatingRepositoryImpl) Create(ctx context.Context, rating *Rating) (primitive.ObjectID, error) {
	res, err := r.db.Collection(db.CollRatings).InsertOne(ctx, rating)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}
