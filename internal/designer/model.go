package designer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Designer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	ContactNumber string             `bson:"contactNumber" json:"contactNumber"`
	Address       string             `bson:"address" json:"address"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Portfolio struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DesignerID     primitive.ObjectID `bson:"designerId" json:"designerId"`
	Specialization string             `bson:"specialization" json:"specialization"`
	Skills         []string           `bson:"skills" json:"skills"`
}
