package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var propertyRowColumns = []string{
	"id", "owner_id", "title", "description", "type", "city", "address",
	"monthly_rent", "deposit", "rooms", "area_sqm", "amenities", "photos",
	"furnished", "available_from", "is_active", "is_verified", "created_at", "updated_at",
}

func propertyRow(id int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(propertyRowColumns).AddRow(
		id, 7, "Sunny flat", "Bright two-room flat", "apartment", "Berlin",
		"Hauptstr. 5", 950.0, nil, 2, nil, "{wifi,balcony}", "{}",
		true, nil, true, false, now, now,
	)
}

func TestPropertySearchAppliesFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	city := "Berlin"
	maxRent := 1000.0
	furnished := true

	mock.ExpectQuery(regexp.QuoteMeta("FROM properties WHERE is_active = true AND city = $1 AND monthly_rent <= $2 AND furnished = $3 ORDER BY created_at DESC LIMIT $4 OFFSET $5")).
		WithArgs(city, maxRent, furnished, 20, 0).
		WillReturnRows(propertyRow(1))

	results, err := repo.Search(context.Background(), repository.PropertyFilter{
		City:      &city,
		MaxRent:   &maxRent,
		Furnished: &furnished,
	}, 20, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Sunny flat", results[0].Title)
	assert.Equal(t, []string{"wifi", "balcony"}, results[0].Amenities)
	assert.Empty(t, results[0].Photos)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertySearchVerifiedOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = true AND is_verified = true ORDER BY created_at DESC LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns))

	results, err := repo.Search(context.Background(), repository.PropertyFilter{VerifiedOnly: true}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM properties WHERE id = $1")).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertySetVerifiedNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE properties SET is_verified = $1")).
		WithArgs(true, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetVerified(context.Background(), 42, true)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyAddPhoto(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPropertyRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("SET photos = array_append(photos, $1)")).
		WithArgs("/uploads/abc.jpg", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddPhoto(context.Background(), 1, "/uploads/abc.jpg")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
