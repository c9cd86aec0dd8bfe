package inventory

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type Item struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	CategoryID   primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	Unit         string             `bson:"unit" json:"unit"`
	Stock        float64            `bson:"stock" json:"stock"`
	ReorderLevel *float64           `bson:"reorderLevel,omitempty" json:"reorderLevel,omitempty"`
	Description  *string            `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EnrichedItem is an item carrying its denormalized category name
type EnrichedItem struct {
	Item
	CategoryName string `json:"categoryName"`
}

// UnknownCategory is the fallback name for items whose category is gone
const UnknownCategory = "Unknown"
