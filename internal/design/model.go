package design

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Design statuses follow the fulfillment flow
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Design struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID   primitive.ObjectID `bson:"clientId,omitempty" json:"clientId"`
	DesignerID primitive.ObjectID `bson:"designerId,omitempty" json:"designerId,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type DesignRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID    primitive.ObjectID `bson:"clientId" json:"clientId"`
	Description string             `bson:"description" json:"description"`
	SketchID    *string            `bson:"sketchId,omitempty" json:"sketchId,omitempty"` // opaque storage handle
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// RequestDetails is a request enriched with its resolved sketch URL
type RequestDetails struct {
	DesignRequest
	SketchURL *string `json:"sketchUrl"`
}
