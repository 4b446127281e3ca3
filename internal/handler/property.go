package handler

import (
	"net/http"

	"github.com/imovead/imovead/internal/ctxkeys"
	"github.com/imovead/imovead/internal/model"
	"github.com/imovead/imovead/internal/service"
)

type PropertyHandler struct {
	propertyService *service.PropertyService
}

func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

type slugResponse struct {
	Slug string `json:"slug"`
}

// Create handles property.create. The sell wizard submits its composed
// state as a single payload once the final step completes.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var in service.CreatePropertyInput
	if !decodeBody(w, r, &in) {
		return
	}

	slug, err := h.propertyService.Create(r.Context(), userID, in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, slugResponse{Slug: slug})
}

// List handles property.list. The procedure always returns the full owned
// set; the optional ?status=active|inactive filter is dashboard sugar.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	properties, err := h.propertyService.Properties(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	switch r.URL.Query().Get("status") {
	case "active":
		properties = filterByActive(properties, true)
	case "inactive":
		properties = filterByActive(properties, false)
	}

	respondJSON(w, http.StatusOK, properties)
}

func filterByActive(properties []*model.Property, active bool) []*model.Property {
	filtered := make([]*model.Property, 0, len(properties))
	for _, p := range properties {
		if p.Active == active {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Show handles property.show: the ownership-scoped dashboard lookup.
func (h *PropertyHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var in struct {
		Slug string `json:"slug"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	property, err := h.propertyService.BySlug(r.Context(), userID, in.Slug)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var in service.UpdatePropertyInput
	if !decodeBody(w, r, &in) {
		return
	}

	slug, err := h.propertyService.Update(r.Context(), userID, in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, slugResponse{Slug: slug})
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var in struct {
		ID int64 `json:"id"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	err := h.propertyService.Delete(r.Context(), userID, in.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) AddPhotos(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var in struct {
		ID     int64    `json:"id"`
		Photos []string `json:"photos"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	err := h.propertyService.AddPhotos(r.Context(), userID, in.ID, in.Photos)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var in struct {
		ID    int64  `json:"id"`
		Photo string `json:"photo"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	err := h.propertyService.RemovePhoto(r.Context(), userID, in.ID, in.Photo)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var in struct {
		ID     int64 `json:"id"`
		Active bool  `json:"active"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	err := h.propertyService.SetActive(r.Context(), userID, in.ID, in.Active)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
