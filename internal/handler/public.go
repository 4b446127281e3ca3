package handler

import (
	"net/http"

	"github.com/imovead/imovead/internal/service"
)

// PublicHandler serves the unauthenticated read path. It queries by slug
// only, with no ownership filter, and is a separate code path from
// property.show on purpose: the authorization boundary stays explicit.
type PublicHandler struct {
	propertyService *service.PropertyService
}

func NewPublicHandler(propertyService *service.PropertyService) *PublicHandler {
	return &PublicHandler{
		propertyService: propertyService,
	}
}

// Show serves GET /api/listings/{slug}, the public advertisement page data.
func (h *PublicHandler) Show(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyService.PublicBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, property)
}
