package user

import (
	"context"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/designer"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// DesignerProvider supplies the designer records joined into listings
type DesignerProvider interface {
	FindAll(ctx context.Context) ([]designer.Designer, error)
}

// PortfolioProvider supplies the portfolio records joined into listings
type PortfolioProvider interface {
	FindAll(ctx context.Context) ([]designer.Portfolio, error)
}

// Service defines the interface for the user directory
type Service interface {
	GetByClerkID(ctx context.Context, clerkID string) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
	ListDesigners(ctx context.Context) ([]DesignerListing, error)
	ListPublic(ctx context.Context) ([]PublicUser, error)
}

// DefaultService implements Service
type DefaultService struct {
	repository UserRepository
	designers  DesignerProvider
	portfolios PortfolioProvider
}

// NewService creates a new user directory service
func NewService(repository UserRepository, designers DesignerProvider, portfolios PortfolioProvider) Service {
	return &DefaultService{
		repository: repository,
		designers:  designers,
		portfolios: portfolios,
	}
}

// GetByClerkID looks up a user by its external identity id
func (s *DefaultService) GetByClerkID(ctx context.Context, clerkID string) (*User, error) {
	u, err := s.repository.FindByClerkID(ctx, clerkID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrNotFound(err).WithMessage("User not found")
		}
		return nil, err
	}
	return u, nil
}

// ListAll returns every user with all fields
func (s *DefaultService) ListAll(ctx context.Context) ([]User, error) {
	return s.repository.FindAll(ctx)
}

// ListDesigners returns every designer-role user merged with their
// designer record and portfolio summary. Each collection is fetched
// once and joined through maps; a user without a designer record still
// appears, carrying the defaults.
func (s *DefaultService) ListDesigners(ctx context.Context) ([]DesignerListing, error) {
	users, err := s.repository.FindByRole(ctx, "designer")
	if err != nil {
		return nil, err
	}

	designers, err := s.designers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	portfolios, err := s.portfolios.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	designerByUser := make(map[string]designer.Designer, len(designers))
	for _, d := range designers {
		if _, ok := designerByUser[d.UserID.Hex()]; !ok {
			designerByUser[d.UserID.Hex()] = d
		}
	}
	portfolioByDesigner := make(map[string]designer.Portfolio, len(portfolios))
	for _, p := range portfolios {
		if _, ok := portfolioByDesigner[p.DesignerID.Hex()]; !ok {
			portfolioByDesigner[p.DesignerID.Hex()] = p
		}
	}

	listings := make([]DesignerListing, 0, len(users))
	for _, u := range users {
		listing := DesignerListing{
			User:           u,
			Specialization: "General",
			Skills:         []string{},
		}

		if d, ok := designerByUser[u.ID.Hex()]; ok {
			if p, ok := portfolioByDesigner[d.ID.Hex()]; ok {
				listing.Specialization = p.Specialization
				if p.Skills != nil {
					listing.Skills = p.Skills
				}
				portfolioID := p.ID
				listing.PortfolioID = &portfolioID
			}
		}

		listings = append(listings, listing)
	}

	return listings, nil
}

// ListPublic returns the minimal public projection of every user
func (s *DefaultService) ListPublic(ctx context.Context) ([]PublicUser, error) {
	users, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.ToPublicUser())
	}
	return public, nil
}
