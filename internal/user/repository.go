package user

import (
	"context"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindByClerkID(ctx context.Context, clerkID string) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindByRole(ctx context.Context, role string) ([]User, error)
}

// UserRepositoryImpl implements UserRepository
type UserRepositoryImpl struct {
	db *mongo.Database
}

// NewRepository creates a new user repository
func NewRepository(database *mongo.Database) UserRepository {
	return &UserRepositoryImpl{db: database}
}

// FindByClerkID finds a user by its external identity id.
// The unique index on clerkId rules out more than one match.
func (r *UserRepositoryImpl) FindByClerkID(ctx context.Context, clerkID string) (*User, error) {
	var u User
	err := r.db.Collection(db.CollUsers).FindOne(ctx, bson.M{"clerkId": clerkID}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID finds a user by id
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var u User
	err := r.db.Collection(db.CollUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindAll returns every user record
func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]User, error) {
	cur, err := r.db.Collection(db.CollUsers).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByRole returns every user with the given role
func (r *UserRepositoryImpl) FindByRole(ctx context.Context, role string) ([]User, error) {
	cur, err := r.db.Collection(db.CollUsers).Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
