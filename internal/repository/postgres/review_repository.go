package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (property_id, tenant_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, review.PropertyID, review.TenantID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrReviewAlreadyExists
		}
		return err
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	var review domain.Review
	query := `SELECT * FROM reviews WHERE id = $1`
	err := r.db.GetContext(ctx, &review, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByTenantAndProperty(ctx context.Context, tenantID, propertyID int) (*domain.Review, error) {
	var review domain.Review
	query := `SELECT * FROM reviews WHERE tenant_id = $1 AND property_id = $2`
	err := r.db.GetContext(ctx, &review, query, tenantID, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByProperty(ctx context.Context, propertyID int, limit, offset int) ([]*domain.Review, error) {
	var reviews []*domain.Review
	query := `SELECT * FROM reviews WHERE property_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &reviews, query, propertyID, limit, offset)
	return reviews, err
}

func (r *reviewRepository) GetRatingSummary(ctx context.Context, propertyID int) (*domain.RatingSummary, error) {
	summary := domain.RatingSummary{PropertyID: propertyID}
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE property_id = $1`
	err := r.db.QueryRowContext(ctx, query, propertyID).
		Scan(&summary.AverageRating, &summary.ReviewCount)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM reviews WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
