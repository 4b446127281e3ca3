package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStorage signs everything deterministically and records the keys it saw.
type stubStorage struct {
	keys    []string
	signErr error
}

func (s *stubStorage) SignUpload(ctx context.Context, key string) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	s.keys = append(s.keys, key)
	return "https://bucket.s3.amazonaws.com/" + key + "?signature=abc", nil
}

func (s *stubStorage) ObjectURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (s *stubStorage) Delete(ctx context.Context, key string) error {
	return nil
}

func TestCreateSignedURLs(t *testing.T) {
	store := &stubStorage{}
	svc := NewUploadService(store)

	urls, err := svc.CreateSignedURLs(context.Background(), "user-a", []string{"front.jpg", "kitchen.png"})
	require.NoError(t, err)
	require.Len(t, urls, 2)

	front := urls["front.jpg"]
	assert.True(t, strings.HasPrefix(front.URL, "https://cdn.example.com/user-a/"),
		"object URL should be namespaced by user, got %q", front.URL)
	assert.True(t, strings.HasSuffix(front.URL, ".jpg"), "extension preserved, got %q", front.URL)
	assert.Contains(t, front.CompleteURL, "signature=")

	kitchen := urls["kitchen.png"]
	assert.True(t, strings.HasSuffix(kitchen.URL, ".png"))

	// Keys are unique even for identical file names.
	require.Len(t, store.keys, 2)
	assert.NotEqual(t, store.keys[0], store.keys[1])
}

func TestCreateSignedURLsFailsWholeBatch(t *testing.T) {
	store := &stubStorage{signErr: errors.New("s3 unavailable")}
	svc := NewUploadService(store)

	urls, err := svc.CreateSignedURLs(context.Background(), "user-a", []string{"a.jpg", "b.jpg"})
	assert.Error(t, err)
	assert.Nil(t, urls)
}
