package files

import (
	"context"
	"log"
	"sync"

	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/storage"
)

// Limit on in-flight blob store calls per batch.
const maxParallelResolves = 8

// Service defines the interface for storage handle resolution
type Service interface {
	GetURL(ctx context.Context, storageID string) (*string, error)
	GetURLs(ctx context.Context, storageIDs []string) ([]string, error)
}

// DefaultService implements Service
type DefaultService struct {
	resolver storage.Resolver
}

// NewService creates a new file reference service
func NewService(resolver storage.Resolver) Service {
	return &DefaultService{resolver: resolver}
}

// GetURL resolves a single handle. A nil URL is a valid outcome and is
// passed through untouched.
func (s *DefaultService) GetURL(ctx context.Context, storageID string) (*string, error) {
	return s.resolver.Resolve(ctx, storageID)
}

// GetURLs resolves a batch concurrently. Results are collected by input
// index before nulls are filtered, so the surviving URLs keep their
// relative input order. A nil or empty input yields an empty slice.
func (s *DefaultService) GetURLs(ctx context.Context, storageIDs []string) ([]string, error) {
	if len(storageIDs) == 0 {
		return []string{}, nil
	}

	resolved := make([]*string, len(storageIDs))
	sem := make(chan struct{}, maxParallelResolves)
	var wg sync.WaitGroup

	for i, id := range storageIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			url, err := s.resolver.Resolve(ctx, id)
			if err != nil {
				// a failed handle drops out of the batch like a null one
				log.Printf("failed to resolve storage handle %s: %v\n", id, err)
				return
			}
			resolved[i] = url
		}(i, id)
	}
	wg.Wait()

	urls := make([]string, 0, len(storageIDs))
	for _, url := range resolved {
		if url != nil {
			urls = append(urls, *url)
		}
	}
	return urls, nil
}
