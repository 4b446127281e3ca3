package handler

import (
	"net/http"

	"github.com/imovead/imovead/internal/ctxkeys"
	"github.com/imovead/imovead/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// CreateSignedURLs handles s3.createSignedUrls. Input is a JSON array of
// client-side file names; output maps each name to its public URL and a
// presigned upload URL. The server never touches the photo bytes.
func (h *UploadHandler) CreateSignedURLs(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var fileNames []string
	if !decodeBody(w, r, &fileNames) {
		return
	}

	result, err := h.uploadService.CreateSignedURLs(r.Context(), userID, fileNames)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
