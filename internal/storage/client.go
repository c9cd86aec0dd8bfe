package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Resolver resolves an opaque storage handle to a retrievable URL.
// A nil URL with a nil error means the store knows the handle but has
// no URL for it (or the handle is gone); callers must pass that through.
type Resolver interface {
	Resolve(ctx context.Context, storageID string) (*string, error)
}

type BlobClient struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

func NewBlobClient(baseURL, secret string) *BlobClient {
	return &BlobClient{
		baseURL: baseURL,
		secret:  secret,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type urlResponse struct {
	URL *string `json:"url"`
}

// Resolve calls the blob store for a single handle.
func (s *BlobClient) Resolve(ctx context.Context, storageID string) (*string, error) {
	url := fmt.Sprintf(
		"%s/storage/%s/url",
		s.baseURL,
		storageID,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.secret)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The store reports unknown handles as 404; that is a valid outcome
	// for callers, not a failure of this client.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf(
			"blob store resolve error: status=%d body=%s",
			resp.StatusCode,
			string(b),
		)
	}

	var payload urlResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.URL, nil
}
