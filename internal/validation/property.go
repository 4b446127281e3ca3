package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/imovead/imovead/internal/model"
)

// Errors maps field names to human-readable messages. A nil/empty map
// means the input passed validation.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Check records err under field; nil errors are ignored.
func (e Errors) Check(field string, err error) {
	if err != nil {
		e[field] = err.Error()
	}
}

func ValidateAdvertisementType(v string) error {
	if !slices.Contains(model.AdvertisementTypes, v) {
		return fmt.Errorf("must be one of: %s", strings.Join(model.AdvertisementTypes, ", "))
	}
	return nil
}

func ValidatePropertyType(v string) error {
	if !slices.Contains(model.PropertyTypes, v) {
		return fmt.Errorf("must be one of: %s", strings.Join(model.PropertyTypes, ", "))
	}
	return nil
}

// ValidateTitle validates the listing title
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 100 {
		return errors.New("title is too long (max 100 characters)")
	}

	return nil
}

// ValidateDescription validates the listing description
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)

	if trimmed == "" {
		return errors.New("description is required")
	}

	if len(trimmed) > 1000 {
		return errors.New("description is too long (max 1000 characters)")
	}

	return nil
}

func ValidateRequired(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("is required")
	}
	return nil
}

func ValidateArea(v float64) error {
	if v <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

func ValidateCount(v int) error {
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func ValidatePrice(v float64) error {
	if v <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

func ValidatePhotos(photos []string) error {
	if len(photos) == 0 {
		return errors.New("at least one photo is required")
	}
	return nil
}
