package notification

import (
	"context"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) (primitive.ObjectID, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Notification, error)
}

// NotificationRepositoryImpl implements NotificationRepository
type NotificationRepositoryImpl struct {
	db *mongo.Database
}

// NewRepository creates a new notification repository
func NewRepository(database *mongo.Database) NotificationRepository {
	return &NotificationRepositoryImpl{db: database}
}

// Create inserts a notification and returns its new id
func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *Notification) (primitive.ObjectID, error) {
	res, err := r.db.Collection(db.CollNotifications).InsertOne(ctx, notification)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByUser returns a recipient's notifications, newest first
func (r *NotificationRepositoryImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.db.Collection(db.CollNotifications).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	notifications := []Notification{}
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
