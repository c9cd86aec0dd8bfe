package pricing

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Print types offered by the shop
const (
	PrintSublimation = "Sublimation"
	PrintDtf         = "Dtf"
)

// DesignerPricing is stored with legacy field names; responses use the
// stable external naming below.
type DesignerPricing struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DesignerID       primitive.ObjectID `bson:"designerId" json:"designerId"`
	NormalAmount     float64            `bson:"price" json:"normalAmount"`
	DiscountedAmount *float64           `bson:"discountedPrice,omitempty" json:"discountedAmount,omitempty"`
	Description      *string            `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DesignerPricingResponse is the reshaped projection served to clients
type DesignerPricingResponse struct {
	ID               primitive.ObjectID `json:"id"`
	DesignerID       primitive.ObjectID `json:"designerId"`
	NormalAmount     float64            `json:"normalAmount"`
	DiscountedAmount *float64           `json:"discountedAmount"`
	Description      *string            `json:"description"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// ToResponse reshapes a record into its external projection
func (p *DesignerPricing) ToResponse() DesignerPricingResponse {
	return DesignerPricingResponse{
		ID:               p.ID,
		DesignerID:       p.DesignerID,
		NormalAmount:     p.NormalAmount,
		DiscountedAmount: p.DiscountedAmount,
		Description:      p.Description,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type PrintPricing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PrintType   string             `bson:"printType" json:"printType"`
	Amount      float64            `bson:"amount" json:"amount"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
