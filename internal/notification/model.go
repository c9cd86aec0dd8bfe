package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipient types
const (
	RecipientClient   = "client"
	RecipientDesigner = "designer"
)

type Notification struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	RecipientType string             `bson:"recipientType" json:"recipientType"`
	Message       string             `bson:"message" json:"message"`
	Read          bool               `bson:"read" json:"read"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
