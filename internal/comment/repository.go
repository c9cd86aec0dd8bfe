package comment

import (
	"context"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) (primitive.ObjectID, error)
	FindByPreview(ctx context.Context, previewID primitive.ObjectID) ([]Comment, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Comment, error)
}

// CommentRepositoryImpl implements CommentRepository
type CommentRepositoryImpl struct {
	db *mongo.Database
}

// NewRepository creates a new comment repository
func NewRepository(database *mongo.Database) CommentRepository {
	return &CommentRepositoryImpl{db: database}
}

// insertion order: createdAt first, _id breaks same-millisecond ties
var insertionOrder = options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

// Create inserts a comment and returns its new id
func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *Comment) (primitive.ObjectID, error) {
	res, err := r.db.Collection(db.CollComments).InsertOne(ctx, comment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByPreview returns a preview's comments in insertion order
func (r *CommentRepositoryImpl) FindByPreview(ctx context.Context, previewID primitive.ObjectID) ([]Comment, error) {
	return r.find(ctx, bson.M{"previewId": previewID})
}

// FindByUser returns a user's comments in insertion order
func (r *CommentRepositoryImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Comment, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *CommentRepositoryImpl) find(ctx context.Context, filter bson.M) ([]Comment, error) {
	cur, err := r.db.Collection(db.CollComments).Find(ctx, filter, insertionOrder)
	if err != nil {
		return nil, err
	}
	comments := []Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
