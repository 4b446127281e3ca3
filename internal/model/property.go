package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	AdvertisementTypeSell = "sell"
	AdvertisementTypeRent = "rent"
)

const (
	PropertyTypeHouse      = "house"
	PropertyTypeApartment  = "apartment"
	PropertyTypeLand       = "land"
	PropertyTypeCommercial = "commercial"
	PropertyTypeOther      = "other"
)

// AdvertisementTypes lists the accepted values for Property.AdvertisementType.
var AdvertisementTypes = []string{AdvertisementTypeSell, AdvertisementTypeRent}

// PropertyTypes lists the accepted values for Property.PropertyType.
var PropertyTypes = []string{
	PropertyTypeHouse,
	PropertyTypeApartment,
	PropertyTypeLand,
	PropertyTypeCommercial,
	PropertyTypeOther,
}

// Property is a single listing advertisement. The owner is identified by
// UserID, which is the subject of the external identity provider's token.
type Property struct {
	ID                int64  `db:"id" json:"id"`
	AdvertisementType string `db:"advertisement_type" json:"advertisementType"`
	PropertyType      string `db:"property_type" json:"propertyType"`

	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Slug        string `db:"slug" json:"slug"`

	PostalCode   string `db:"postal_code" json:"postalCode"`
	State        string `db:"state" json:"state"`
	City         string `db:"city" json:"city"`
	District     string `db:"district" json:"district"`
	Street       string `db:"street" json:"street"`
	StreetNumber string `db:"street_number" json:"streetNumber"`
	Complement   string `db:"complement" json:"complement"`

	UsefulArea    float64 `db:"useful_area" json:"usefulArea"`
	TotalArea     float64 `db:"total_area" json:"totalArea"`
	Bedrooms      int     `db:"bedrooms" json:"bedrooms"`
	Bathrooms     int     `db:"bathrooms" json:"bathrooms"`
	ParkingSpaces int     `db:"parking_spaces" json:"parkingSpaces"`
	Suites        int     `db:"suites" json:"suites"`

	Price       float64  `db:"price" json:"price"`
	Condominium *float64 `db:"condominium" json:"condominium"`
	Iptu        *float64 `db:"iptu" json:"iptu"`

	Photos PhotoList `db:"photos" json:"photos"`

	UserID    string    `db:"user_id" json:"userId"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// PhotoList is the ordered set of photo URLs for a listing, stored as a
// JSON-encoded TEXT column so it round-trips identically on SQLite and
// Postgres.
type PhotoList []string

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode photos: %w", err)
	}
	return string(data), nil
}

func (p *PhotoList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), p)
	case []byte:
		return json.Unmarshal(v, p)
	default:
		return fmt.Errorf("cannot scan %T into PhotoList", src)
	}
}
