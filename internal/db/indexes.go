package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the secondary indexes the repositories rely on.
// Safe to run on every startup; Mongo treats existing indexes as no-ops.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		CollUsers: {
			{Keys: bson.D{{Key: "clerkId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollDesigners: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		CollPortfolios: {
			{Keys: bson.D{{Key: "designerId", Value: 1}}},
		},
		CollComments: {
			{Keys: bson.D{{Key: "previewId", Value: 1}}},
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		CollNotifications: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		CollDesignerPricing: {
			{Keys: bson.D{{Key: "designerId", Value: 1}}},
		},
		CollPrintPricing: {
			{Keys: bson.D{{Key: "printType", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollInventoryItems: {
			{Keys: bson.D{{Key: "categoryId", Value: 1}}},
		},
		CollDesigns: {
			{Keys: bson.D{{Key: "clientId", Value: 1}}},
		},
		CollDesignRequests: {
			{Keys: bson.D{{Key: "clientId", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := AppDb.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			log.Printf("Warning: failed to create indexes on %s: %v\n", coll, err)
		}
	}
}
