package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/imovead/imovead/internal/model"
	"github.com/imovead/imovead/internal/repository"
	"github.com/imovead/imovead/internal/validation"
)

var (
	ErrLastPhoto = errors.New("property must have at least one photo")
)

type PropertyService struct {
	repo repository.PropertyRepository
}

func NewPropertyService(repo repository.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

// CreatePropertyInput is the composed output of the sell wizard; the
// multi-step state lives entirely in the client and arrives here as one
// payload.
type CreatePropertyInput struct {
	AdvertisementType string `json:"advertisementType"`
	PropertyType      string `json:"propertyType"`

	Title       string `json:"title"`
	Description string `json:"description"`

	PostalCode   string `json:"postalCode"`
	State        string `json:"state"`
	City         string `json:"city"`
	District     string `json:"district"`
	Street       string `json:"street"`
	StreetNumber string `json:"streetNumber"`
	Complement   string `json:"complement"`

	UsefulArea    float64 `json:"usefulArea"`
	TotalArea     float64 `json:"totalArea"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	ParkingSpaces int     `json:"parkingSpaces"`
	Suites        int     `json:"suites"`

	Price       float64  `json:"price"`
	Condominium *float64 `json:"condominium"`
	Iptu        *float64 `json:"iptu"`

	Photos []string `json:"photos"`
}

// UpdatePropertyInput carries the mutable fields; nil means unchanged.
// Address, area and room-count fields cannot be changed after creation.
type UpdatePropertyInput struct {
	ID int64 `json:"id"`

	AdvertisementType *string  `json:"advertisementType"`
	PropertyType      *string  `json:"propertyType"`
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	Condominium       *float64 `json:"condominium"`
	Iptu              *float64 `json:"iptu"`
}

// Create validates the listing input and inserts it owned by userID.
// Returns the generated slug.
func (s *PropertyService) Create(ctx context.Context, userID string, in CreatePropertyInput) (string, error) {
	errs := validation.Errors{}
	errs.Check("advertisementType", validation.ValidateAdvertisementType(in.AdvertisementType))
	errs.Check("propertyType", validation.ValidatePropertyType(in.PropertyType))
	errs.Check("title", validation.ValidateTitle(in.Title))
	errs.Check("description", validation.ValidateDescription(in.Description))
	errs.Check("postalCode", validation.ValidateRequired(in.PostalCode))
	errs.Check("state", validation.ValidateRequired(in.State))
	errs.Check("city", validation.ValidateRequired(in.City))
	errs.Check("district", validation.ValidateRequired(in.District))
	errs.Check("street", validation.ValidateRequired(in.Street))
	errs.Check("streetNumber", validation.ValidateRequired(in.StreetNumber))
	errs.Check("usefulArea", validation.ValidateArea(in.UsefulArea))
	errs.Check("totalArea", validation.ValidateArea(in.TotalArea))
	errs.Check("bedrooms", validation.ValidateCount(in.Bedrooms))
	errs.Check("bathrooms", validation.ValidateCount(in.Bathrooms))
	errs.Check("parkingSpaces", validation.ValidateCount(in.ParkingSpaces))
	errs.Check("suites", validation.ValidateCount(in.Suites))
	errs.Check("price", validation.ValidatePrice(in.Price))
	errs.Check("photos", validation.ValidatePhotos(in.Photos))
	if len(errs) > 0 {
		return "", errs
	}

	property := &model.Property{
		AdvertisementType: in.AdvertisementType,
		PropertyType:      in.PropertyType,
		Title:             in.Title,
		Description:       in.Description,
		PostalCode:        in.PostalCode,
		State:             in.State,
		City:              in.City,
		District:          in.District,
		Street:            in.Street,
		StreetNumber:      in.StreetNumber,
		Complement:        in.Complement,
		UsefulArea:        in.UsefulArea,
		TotalArea:         in.TotalArea,
		Bedrooms:          in.Bedrooms,
		Bathrooms:         in.Bathrooms,
		ParkingSpaces:     in.ParkingSpaces,
		Suites:            in.Suites,
		Price:             in.Price,
		Condominium:       in.Condominium,
		Iptu:              in.Iptu,
		Photos:            in.Photos,
		UserID:            userID,
		Active:            true,
		CreatedAt:         time.Now(),
	}

	err := s.repo.Create(ctx, property)
	if err != nil {
		return "", fmt.Errorf("failed to create property: %w", err)
	}

	return property.Slug, nil
}

// Properties returns every listing owned by userID, regardless of status.
// Status filtering is a presentation concern layered on top.
func (s *PropertyService) Properties(ctx context.Context, userID string) ([]*model.Property, error) {
	return s.repo.ByOwner(ctx, userID)
}

// BySlug is the dashboard lookup: ownership-scoped, so another user's
// slug behaves exactly like a missing one.
func (s *PropertyService) BySlug(ctx context.Context, userID, slug string) (*model.Property, error) {
	return s.repo.BySlugAndOwner(ctx, slug, userID)
}

// PublicBySlug serves the public advertisement page: no ownership filter.
func (s *PropertyService) PublicBySlug(ctx context.Context, slug string) (*model.Property, error) {
	return s.repo.BySlug(ctx, slug)
}

// Update applies the patch to an owned listing and returns its slug,
// which changes only when the title changed.
func (s *PropertyService) Update(ctx context.Context, userID string, in UpdatePropertyInput) (string, error) {
	errs := validation.Errors{}
	if in.AdvertisementType != nil {
		errs.Check("advertisementType", validation.ValidateAdvertisementType(*in.AdvertisementType))
	}
	if in.PropertyType != nil {
		errs.Check("propertyType", validation.ValidatePropertyType(*in.PropertyType))
	}
	if in.Title != nil {
		errs.Check("title", validation.ValidateTitle(*in.Title))
	}
	if in.Description != nil {
		errs.Check("description", validation.ValidateDescription(*in.Description))
	}
	if in.Price != nil {
		errs.Check("price", validation.ValidatePrice(*in.Price))
	}
	if len(errs) > 0 {
		return "", errs
	}

	return s.repo.Update(ctx, in.ID, userID, repository.PropertyPatch{
		AdvertisementType: in.AdvertisementType,
		PropertyType:      in.PropertyType,
		Title:             in.Title,
		Description:       in.Description,
		Price:             in.Price,
		Condominium:       in.Condominium,
		Iptu:              in.Iptu,
	})
}

func (s *PropertyService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}

// AddPhotos appends the uploaded photo URLs to the listing. No
// de-duplication and no upper limit, matching the upload flow.
func (s *PropertyService) AddPhotos(ctx context.Context, userID string, id int64, photos []string) error {
	return s.repo.MutatePhotos(ctx, id, userID, func(current model.PhotoList) (model.PhotoList, error) {
		return append(current, photos...), nil
	})
}

// RemovePhoto removes the first occurrence of photo from the listing.
// A listing must keep at least one photo; removing the last one fails
// with ErrLastPhoto and leaves the list untouched.
func (s *PropertyService) RemovePhoto(ctx context.Context, userID string, id int64, photo string) error {
	return s.repo.MutatePhotos(ctx, id, userID, func(current model.PhotoList) (model.PhotoList, error) {
		if len(current) == 1 {
			return nil, ErrLastPhoto
		}
		i := slices.Index(current, photo)
		if i < 0 {
			return current, nil
		}
		return slices.Delete(current, i, i+1), nil
	})
}

func (s *PropertyService) SetActive(ctx context.Context, userID string, id int64, active bool) error {
	return s.repo.SetActive(ctx, id, userID, active)
}
