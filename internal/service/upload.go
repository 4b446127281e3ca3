package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/imovead/imovead/internal/model"
	"github.com/imovead/imovead/internal/storage"
)

// UploadService issues presigned upload URLs so photo bytes go straight
// from the browser to object storage.
type UploadService struct {
	storage storage.Storage
}

func NewUploadService(storage storage.Storage) *UploadService {
	return &UploadService{storage: storage}
}

// CreateSignedURLs generates one object key per file name, namespaced by
// the requesting user and a random unique suffix, preserving the original
// extension. Any storage failure fails the whole batch; there is no
// partial retry.
func (s *UploadService) CreateSignedURLs(ctx context.Context, userID string, fileNames []string) (map[string]model.SignedUpload, error) {
	result := make(map[string]model.SignedUpload, len(fileNames))

	for _, fileName := range fileNames {
		ext := filepath.Ext(fileName)
		key := fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), ext)

		completeURL, err := s.storage.SignUpload(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to sign upload for %q: %w", fileName, err)
		}

		result[fileName] = model.SignedUpload{
			URL:         s.storage.ObjectURL(key),
			CompleteURL: completeURL,
		}
	}

	return result, nil
}
