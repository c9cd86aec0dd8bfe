package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClerkID   string             `bson:"clerkId" json:"clerkId"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role" json:"role"` // client, designer or admin
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PublicUser is the minimal projection exposed to other clients
type PublicUser struct {
	ID        primitive.ObjectID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Email     string             `json:"email"`
}

// DesignerListing merges a designer-role user with their portfolio summary
type DesignerListing struct {
	User
	Specialization string              `json:"specialization"`
	Skills         []string            `json:"skills"`
	PortfolioID    *primitive.ObjectID `json:"portfolioId,omitempty"`
}

// ToPublicUser strips a user down to its public projection
func (u *User) ToPublicUser() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
