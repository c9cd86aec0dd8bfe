package db

import (
	"context"
	"log"
	"time"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	appClient *mongo.Client
	AppDb     *mongo.Database
)

// Collection names used across repositories
const (
	CollUsers           = "users"
	CollDesigners       = "designers"
	CollPortfolios      = "portfolios"
	CollDesigns         = "designs"
	CollDesignRequests  = "design_requests"
	CollComments        = "comments"
	CollNotifications   = "notifications"
	CollDesignerPricing = "designer_pricing"
	CollPrintPricing    = "print_pricing"
	CollInventoryItems  = "inventory_items"
	CollInventoryCats   = "inventory_categories"
	CollRatings         = "design_feedback"
)

func ConnectDb() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.MongoURI))
	if err != nil {
		log.Fatalf("error connecting to db %v", err)
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("error pinging db %v", err)
		return err
	}

	appClient = client
	AppDb = client.Database(config.AppConfig.MongoDB)
	log.Println("Success connecting to db")

	return nil
}

func CloseDb() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := appClient.Disconnect(ctx); err != nil {
		log.Fatalf("failed to close db %v", err)
	}
	log.Println("Closing DB")
}
