package rating

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Rating struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PortfolioID primitive.ObjectID `bson:"portfolioId" json:"portfolioId"`
	DesignID    primitive.ObjectID `bson:"designId" json:"designId"`
	ReviewerID  primitive.ObjectID `bson:"reviewerId" json:"reviewerId"`
	Rating      int                `bson:"rating" json:"rating"`
	Feedback    string             `bson:"feedback" json:"feedback"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
