package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovead/imovead/internal/db"
	"github.com/imovead/imovead/internal/model"
	"github.com/imovead/imovead/internal/repository"
	"github.com/imovead/imovead/internal/validation"
)

func newPropertyService(t *testing.T) *PropertyService {
	t.Helper()
	return NewPropertyService(repository.NewPropertyRepository(db.NewTestDB(t)))
}

func createInput(title string) CreatePropertyInput {
	return CreatePropertyInput{
		AdvertisementType: model.AdvertisementTypeSell,
		PropertyType:      model.PropertyTypeApartment,
		Title:             title,
		Description:       "Two bedroom apartment with a balcony.",
		PostalCode:        "04038-001",
		State:             "SP",
		City:              "São Paulo",
		District:          "Vila Clementino",
		Street:            "Rua Sena Madureira",
		StreetNumber:      "1500",
		UsefulArea:        65,
		TotalArea:         80,
		Bedrooms:          2,
		Bathrooms:         1,
		ParkingSpaces:     1,
		Suites:            0,
		Price:             380000,
		Photos:            []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"},
	}
}

func TestCreateAndShowRoundTrip(t *testing.T) {
	svc := newPropertyService(t)
	ctx := context.Background()

	slug, err := svc.Create(ctx, "user-a", createInput("Nice House"))
	require.NoError(t, err)
	assert.Equal(t, "1-nice-house", slug)

	p, err := svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)
	assert.Equal(t, "Nice House", p.Title)
	assert.Equal(t, "user-a", p.UserID)
	assert.True(t, p.Active)
	assert.Len(t, p.Photos, 2)
}

func TestCreateCollectsFieldErrors(t *testing.T) {
	svc := newPropertyService(t)

	in := createInput("Nice House")
	in.Title = ""
	in.AdvertisementType = "lease"
	in.Price = 0
	in.Photos = nil

	_, err := svc.Create(context.Background(), "user-a", in)
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "advertisementType")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "photos")
	assert.NotContains(t, errs, "city")
}

func TestUpdateValidatesOnlySetFields(t *testing.T) {
	svc := newPropertyService(t)
	ctx := context.Background()

	slug, err := svc.Create(ctx, "user-a", createInput("Nice House"))
	require.NoError(t, err)

	p, err := svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)

	bad := "warehouse"
	_, err = svc.Update(ctx, "user-a", UpdatePropertyInput{ID: p.ID, PropertyType: &bad})
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "propertyType")

	price := 420000.0
	newSlug, err := svc.Update(ctx, "user-a", UpdatePropertyInput{ID: p.ID, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, slug, newSlug, "slug only changes with the title")
}

func TestUpdateNotOwnedIsNotFound(t *testing.T) {
	svc := newPropertyService(t)
	ctx := context.Background()

	slug, err := svc.Create(ctx, "user-a", createInput("Nice House"))
	require.NoError(t, err)

	p, err := svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(ctx, "user-b", UpdatePropertyInput{ID: p.ID, Title: &title})
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)
}

func TestAddAndRemovePhotosPreservesOrder(t *testing.T) {
	svc := newPropertyService(t)
	ctx := context.Background()

	slug, err := svc.Create(ctx, "user-a", createInput("Nice House"))
	require.NoError(t, err)

	p, err := svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)

	require.NoError(t, svc.AddPhotos(ctx, "user-a", p.ID, []string{"https://cdn.example.com/3.jpg"}))
	require.NoError(t, svc.RemovePhoto(ctx, "user-a", p.ID, "https://cdn.example.com/1.jpg"))

	p, err = svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)
	assert.Equal(t, model.PhotoList{
		"https://cdn.example.com/2.jpg",
		"https://cdn.example.com/3.jpg",
	}, p.Photos)
}

func TestRemovePhotoAbsentURLIsNoOp(t *testing.T) {
	svc := newPropertyService(t)
	ctx := context.Background()

	slug, err := svc.Create(ctx, "user-a", createInput("Nice House"))
	require.NoError(t, err)

	p, err := svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)

	require.NoError(t, svc.RemovePhoto(ctx, "user-a", p.ID, "https://cdn.example.com/nope.jpg"))

	p, err = svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)
	assert.Len(t, p.Photos, 2)
}

func TestRemoveLastPhotoFails(t *testing.T) {
	svc := newPropertyService(t)
	ctx := context.Background()

	in := createInput("Nice House")
	in.Photos = []string{"https://cdn.example.com/only.jpg"}
	slug, err := svc.Create(ctx, "user-a", in)
	require.NoError(t, err)

	p, err := svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)

	err = svc.RemovePhoto(ctx, "user-a", p.ID, "https://cdn.example.com/only.jpg")
	assert.ErrorIs(t, err, ErrLastPhoto)

	p, err = svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)
	assert.Equal(t, model.PhotoList{"https://cdn.example.com/only.jpg"}, p.Photos)
}

func TestSetActiveHidesFromNothingButFlagsIt(t *testing.T) {
	svc := newPropertyService(t)
	ctx := context.Background()

	slug, err := svc.Create(ctx, "user-a", createInput("Nice House"))
	require.NoError(t, err)

	p, err := svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(ctx, "user-a", p.ID, false))

	// Owner still sees the paused listing in the dashboard.
	p, err = svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)
	assert.False(t, p.Active)
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc := newPropertyService(t)
	ctx := context.Background()

	slug, err := svc.Create(ctx, "user-a", createInput("Nice House"))
	require.NoError(t, err)

	p, err := svc.BySlug(ctx, "user-a", slug)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "user-b", p.ID), repository.ErrPropertyNotFound)
	require.NoError(t, svc.Delete(ctx, "user-a", p.ID))

	_, err = svc.PublicBySlug(ctx, slug)
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)
}
