package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type reservationRepository struct {
	db *sqlx.DB
}

func NewReservationRepository(db *sqlx.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (property_id, tenant_id, move_in_date, months, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		reservation.PropertyID, reservation.TenantID, reservation.MoveInDate,
		reservation.Months, reservation.Message, reservation.Status,
	).Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int) (*domain.Reservation, error) {
	var reservation domain.Reservation
	query := `SELECT * FROM reservations WHERE id = $1`
	err := r.db.GetContext(ctx, &reservation, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) ListByTenant(ctx context.Context, tenantID int, limit, offset int) ([]*domain.Reservation, error) {
	var reservations []*domain.Reservation
	query := `SELECT * FROM reservations WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &reservations, query, tenantID, limit, offset)
	return reservations, err
}

func (r *reservationRepository) ListByProperty(ctx context.Context, propertyID int, limit, offset int) ([]*domain.Reservation, error) {
	var reservations []*domain.Reservation
	query := `SELECT * FROM reservations WHERE property_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &reservations, query, propertyID, limit, offset)
	return reservations, err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int, status domain.ReservationStatus) error {
	query := `UPDATE reservations SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}
