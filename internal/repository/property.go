package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/imovead/imovead/internal/model"
	"github.com/imovead/imovead/internal/slug"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
)

// slugAttempts bounds the retry loop on slug collisions. The unique index
// on properties.slug is the actual guarantee; retries only pick a new
// candidate with a random suffix.
const slugAttempts = 4

// PropertyPatch carries the mutable listing fields; nil means unchanged.
// Address, area and room-count fields are deliberately absent.
type PropertyPatch struct {
	AdvertisementType *string
	PropertyType      *string
	Title             *string
	Description       *string
	Price             *float64
	Condominium       *float64
	Iptu              *float64
}

type PropertyRepository interface {
	// Create inserts the listing and derives its slug from the current
	// listing count inside the same transaction. Sets p.ID and p.Slug.
	Create(ctx context.Context, p *model.Property) error

	// BySlug is the public lookup: no ownership filter.
	BySlug(ctx context.Context, slugKey string) (*model.Property, error)

	// BySlugAndOwner and ByIDAndOwner are the ownership-scoped lookups
	// used by the dashboard and by every mutation.
	BySlugAndOwner(ctx context.Context, slugKey, userID string) (*model.Property, error)
	ByIDAndOwner(ctx context.Context, id int64, userID string) (*model.Property, error)

	ByOwner(ctx context.Context, userID string) ([]*model.Property, error)

	// Update applies the patch in a read-check-write transaction and
	// returns the listing's slug, recomputed from the row id when the
	// title changed.
	Update(ctx context.Context, id int64, userID string, patch PropertyPatch) (string, error)

	// MutatePhotos runs fn against the current photo list inside a
	// transaction and persists the result. An error from fn aborts the
	// transaction and is returned unchanged.
	MutatePhotos(ctx context.Context, id int64, userID string, fn func(model.PhotoList) (model.PhotoList, error)) error

	SetActive(ctx context.Context, id int64, userID string, active bool) error
	Delete(ctx context.Context, id int64, userID string) error
}

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, p *model.Property) error {
	for attempt := 0; attempt < slugAttempts; attempt++ {
		err := r.tryCreate(ctx, p, attempt)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
	}
	return fmt.Errorf("failed to create property: slug attempts exhausted for %q", p.Title)
}

func (r *propertyRepository) tryCreate(ctx context.Context, p *model.Property, attempt int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Sequence number = current listing count + 1, read in the same
	// transaction as the insert.
	var count int64
	err = tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM properties`)
	if err != nil {
		return err
	}

	p.Slug = slug.Make(count+1, p.Title)
	if attempt > 0 {
		p.Slug = slug.WithSuffix(p.Slug)
	}

	query := `INSERT INTO properties (
	              advertisement_type, property_type, title, description, slug,
	              postal_code, state, city, district, street, street_number, complement,
	              useful_area, total_area, bedrooms, bathrooms, parking_spaces, suites,
	              price, condominium, iptu, photos, user_id, active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	                  $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	          RETURNING id`

	err = tx.QueryRowxContext(ctx, query,
		p.AdvertisementType,
		p.PropertyType,
		p.Title,
		p.Description,
		p.Slug,
		p.PostalCode,
		p.State,
		p.City,
		p.District,
		p.Street,
		p.StreetNumber,
		p.Complement,
		p.UsefulArea,
		p.TotalArea,
		p.Bedrooms,
		p.Bathrooms,
		p.ParkingSpaces,
		p.Suites,
		p.Price,
		p.Condominium,
		p.Iptu,
		p.Photos,
		p.UserID,
		p.Active,
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *propertyRepository) BySlug(ctx context.Context, slugKey string) (*model.Property, error) {
	p := &model.Property{}
	query := `SELECT * FROM properties WHERE slug = $1`

	err := r.db.GetContext(ctx, p, query, slugKey)
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}

	return p, err
}

func (r *propertyRepository) BySlugAndOwner(ctx context.Context, slugKey, userID string) (*model.Property, error) {
	p := &model.Property{}
	query := `SELECT * FROM properties WHERE slug = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, p, query, slugKey, userID)
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}

	return p, err
}

func (r *propertyRepository) ByIDAndOwner(ctx context.Context, id int64, userID string) (*model.Property, error) {
	p := &model.Property{}
	query := `SELECT * FROM properties WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, p, query, id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}

	return p, err
}

func (r *propertyRepository) ByOwner(ctx context.Context, userID string) ([]*model.Property, error) {
	var properties []*model.Property
	query := `SELECT * FROM properties WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &properties, query, userID)
	if err != nil {
		return nil, err
	}

	return properties, nil
}

func (r *propertyRepository) Update(ctx context.Context, id int64, userID string, patch PropertyPatch) (string, error) {
	for attempt := 0; attempt < slugAttempts; attempt++ {
		slugKey, err := r.tryUpdate(ctx, id, userID, patch, attempt)
		if err == nil {
			return slugKey, nil
		}
		if !isUniqueViolation(err) {
			return "", err
		}
	}
	return "", fmt.Errorf("failed to update property %d: slug attempts exhausted", id)
}

func (r *propertyRepository) tryUpdate(ctx context.Context, id int64, userID string, patch PropertyPatch, attempt int) (string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	p := &model.Property{}
	err = tx.GetContext(ctx, p, `SELECT * FROM properties WHERE id = $1 AND user_id = $2`, id, userID)
	if err == sql.ErrNoRows {
		return "", ErrPropertyNotFound
	}
	if err != nil {
		return "", err
	}

	titleChanged := patch.Title != nil && *patch.Title != p.Title

	if patch.AdvertisementType != nil {
		p.AdvertisementType = *patch.AdvertisementType
	}
	if patch.PropertyType != nil {
		p.PropertyType = *patch.PropertyType
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Condominium != nil {
		p.Condominium = patch.Condominium
	}
	if patch.Iptu != nil {
		p.Iptu = patch.Iptu
	}

	if titleChanged {
		// Slug base switches to the row id after creation: stable and
		// unique, unlike the creation-time sequence number.
		p.Slug = slug.Make(id, p.Title)
		if attempt > 0 {
			p.Slug = slug.WithSuffix(p.Slug)
		}
	}

	query := `UPDATE properties
	          SET advertisement_type = $1, property_type = $2, title = $3,
	              description = $4, slug = $5, price = $6, condominium = $7, iptu = $8
	          WHERE id = $9 AND user_id = $10`

	result, err := tx.ExecContext(ctx, query,
		p.AdvertisementType,
		p.PropertyType,
		p.Title,
		p.Description,
		p.Slug,
		p.Price,
		p.Condominium,
		p.Iptu,
		id,
		userID,
	)
	if err != nil {
		return "", err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "", ErrPropertyNotFound
	}

	err = tx.Commit()
	if err != nil {
		return "", err
	}

	return p.Slug, nil
}

func (r *propertyRepository) MutatePhotos(ctx context.Context, id int64, userID string, fn func(model.PhotoList) (model.PhotoList, error)) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	p := &model.Property{}
	err = tx.GetContext(ctx, p, `SELECT * FROM properties WHERE id = $1 AND user_id = $2`, id, userID)
	if err == sql.ErrNoRows {
		return ErrPropertyNotFound
	}
	if err != nil {
		return err
	}

	photos, err := fn(p.Photos)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE properties SET photos = $1 WHERE id = $2 AND user_id = $3`,
		photos, id, userID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *propertyRepository) SetActive(ctx context.Context, id int64, userID string, active bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE properties SET active = $1 WHERE id = $2 AND user_id = $3`,
		active, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM properties WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

// isUniqueViolation matches the unique-constraint errors of both supported
// drivers: modernc sqlite ("UNIQUE constraint failed") and pgx
// ("duplicate key value violates unique constraint").
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
