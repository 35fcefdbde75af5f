package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

const propertyColumns = `
	id, owner_id, title, description, type, city, address,
	monthly_rent, deposit, rooms, area_sqm, amenities, photos,
	furnished, available_from, is_active, is_verified, created_at, updated_at
`

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	query := `
		INSERT INTO properties (
			owner_id, title, description, type, city, address,
			monthly_rent, deposit, rooms, area_sqm, amenities, photos,
			furnished, available_from, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		property.OwnerID, property.Title, property.Description, property.Type,
		property.City, property.Address, property.MonthlyRent, property.Deposit,
		property.Rooms, property.AreaSqm, pq.Array(property.Amenities),
		pq.Array(property.Photos), property.Furnished, property.AvailableFrom,
		property.IsActive,
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	property, err := r.scanProperty(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	query := `
		UPDATE properties
		SET title = $1, description = $2, type = $3, city = $4, address = $5,
		    monthly_rent = $6, deposit = $7, rooms = $8, area_sqm = $9,
		    amenities = $10, photos = $11, furnished = $12, available_from = $13,
		    is_active = $14, updated_at = CURRENT_TIMESTAMP
		WHERE id = $15
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		property.Title, property.Description, property.Type, property.City,
		property.Address, property.MonthlyRent, property.Deposit, property.Rooms,
		property.AreaSqm, pq.Array(property.Amenities), pq.Array(property.Photos),
		property.Furnished, property.AvailableFrom, property.IsActive, property.ID,
	).Scan(&property.UpdatedAt)
}

func (r *propertyRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM properties WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepository) Search(ctx context.Context, filter repository.PropertyFilter, limit, offset int) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE is_active = true`
	args := []interface{}{}
	argCount := 1

	if filter.City != nil && *filter.City != "" {
		query += fmt.Sprintf(" AND city = $%d", argCount)
		args = append(args, *filter.City)
		argCount++
	}
	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argCount)
		args = append(args, *filter.Type)
		argCount++
	}
	if filter.MinRent != nil {
		query += fmt.Sprintf(" AND monthly_rent >= $%d", argCount)
		args = append(args, *filter.MinRent)
		argCount++
	}
	if filter.MaxRent != nil {
		query += fmt.Sprintf(" AND monthly_rent <= $%d", argCount)
		args = append(args, *filter.MaxRent)
		argCount++
	}
	if filter.MinRooms != nil {
		query += fmt.Sprintf(" AND rooms >= $%d", argCount)
		args = append(args, *filter.MinRooms)
		argCount++
	}
	if filter.Furnished != nil {
		query += fmt.Sprintf(" AND furnished = $%d", argCount)
		args = append(args, *filter.Furnished)
		argCount++
	}
	if filter.VerifiedOnly {
		query += " AND is_verified = true"
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, limit, offset)

	return r.queryProperties(ctx, query, args...)
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID int, limit, offset int) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryProperties(ctx, query, ownerID, limit, offset)
}

func (r *propertyRepository) ListUnverified(ctx context.Context, limit, offset int) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE is_verified = false AND is_active = true ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	return r.queryProperties(ctx, query, limit, offset)
}

func (r *propertyRepository) SetVerified(ctx context.Context, id int, verified bool) error {
	query := `UPDATE properties SET is_verified = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, verified, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepository) AddPhoto(ctx context.Context, id int, photoURL string) error {
	query := `
		UPDATE properties
		SET photos = array_append(photos, $1), updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, photoURL, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *propertyRepository) scanProperty(row rowScanner) (*domain.Property, error) {
	var property domain.Property
	err := row.Scan(
		&property.ID, &property.OwnerID, &property.Title, &property.Description,
		&property.Type, &property.City, &property.Address, &property.MonthlyRent,
		&property.Deposit, &property.Rooms, &property.AreaSqm,
		pq.Array(&property.Amenities), pq.Array(&property.Photos),
		&property.Furnished, &property.AvailableFrom, &property.IsActive,
		&property.IsVerified, &property.CreatedAt, &property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) queryProperties(ctx context.Context, query string, args ...interface{}) ([]*domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*domain.Property
	for rows.Next() {
		property, err := r.scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}
