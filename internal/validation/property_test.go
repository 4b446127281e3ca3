package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsCheck(t *testing.T) {
	errs := Errors{}
	errs.Check("title", ValidateTitle(""))
	errs.Check("price", ValidatePrice(100))

	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "title")
	assert.Equal(t, "validation failed: title", errs.Error())
}

func TestValidateAdvertisementType(t *testing.T) {
	assert.NoError(t, ValidateAdvertisementType("sell"))
	assert.NoError(t, ValidateAdvertisementType("rent"))
	assert.Error(t, ValidateAdvertisementType("lease"))
	assert.Error(t, ValidateAdvertisementType(""))
}

func TestValidatePropertyType(t *testing.T) {
	assert.NoError(t, ValidatePropertyType("house"))
	assert.NoError(t, ValidatePropertyType("apartment"))
	assert.Error(t, ValidatePropertyType("castle"))
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Nice House"))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle("   "))
	assert.Error(t, ValidateTitle(strings.Repeat("x", 101)))
	assert.NoError(t, ValidateTitle(strings.Repeat("x", 100)))
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription("A fine place."))
	assert.Error(t, ValidateDescription(""))
	assert.Error(t, ValidateDescription(strings.Repeat("x", 1001)))
}

func TestValidateNumericFields(t *testing.T) {
	assert.NoError(t, ValidateArea(0.5))
	assert.Error(t, ValidateArea(0))
	assert.Error(t, ValidateArea(-10))

	assert.NoError(t, ValidateCount(0))
	assert.Error(t, ValidateCount(-1))

	assert.NoError(t, ValidatePrice(1))
	assert.Error(t, ValidatePrice(0))
}

func TestValidatePhotos(t *testing.T) {
	assert.NoError(t, ValidatePhotos([]string{"https://cdn.example.com/a.jpg"}))
	assert.Error(t, ValidatePhotos(nil))
	assert.Error(t, ValidatePhotos([]string{}))
}
