package files

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver maps handles to URLs; a missing entry resolves to nil
type fakeResolver struct {
	urls map[string]string
	errs map[string]error
}

func (f *fakeResolver) Resolve(ctx context.Context, storageID string) (*string, error) {
	if err, ok := f.errs[storageID]; ok {
		return nil, err
	}
	if url, ok := f.urls[storageID]; ok {
		return &url, nil
	}
	return nil, nil
}

func TestGetURLs_EmptyInput(t *testing.T) {
	service := NewService(&fakeResolver{})

	urls, err := service.GetURLs(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{}, urls)
}

func TestGetURLs_FiltersNullsPreservingOrder(t *testing.T) {
	service := NewService(&fakeResolver{
		urls: map[string]string{
			"a": "https://cdn.example.com/a",
			"c": "https://cdn.example.com/c",
		},
	})

	// b resolves to null and drops out; a stays ahead of c
	urls, err := service.GetURLs(context.Background(), []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a", "https://cdn.example.com/c"}, urls)
}

func TestGetURLs_FailedHandleDropsOut(t *testing.T) {
	service := NewService(&fakeResolver{
		urls: map[string]string{"a": "https://cdn.example.com/a"},
		errs: map[string]error{"b": assert.AnError},
	})

	urls, err := service.GetURLs(context.Background(), []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a"}, urls)
}

func TestGetURLs_LargeBatchKeepsInputOrder(t *testing.T) {
	resolver := &fakeResolver{urls: map[string]string{}}
	ids := make([]string, 0, 50)
	for _, suffix := range strings.Split("abcdefghij", "") {
		for i := 0; i < 5; i++ {
			id := suffix + string(rune('0'+i))
			ids = append(ids, id)
			resolver.urls[id] = "https://cdn.example.com/" + id
		}
	}
	service := NewService(resolver)

	urls, err := service.GetURLs(context.Background(), ids)

	require.NoError(t, err)
	require.Len(t, urls, len(ids))
	for i, id := range ids {
		assert.Equal(t, "https://cdn.example.com/"+id, urls[i])
	}
}

func TestGetURL_NullPassesThrough(t *testing.T) {
	service := NewService(&fakeResolver{})

	url, err := service.GetURL(context.Background(), "gone")

	require.NoError(t, err)
	assert.Nil(t, url)
}
