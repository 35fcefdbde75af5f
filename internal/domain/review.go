package domain

import "time"

type Review struct {
	ID         int       `json:"id" db:"id"`
	PropertyID int       `json:"property_id" db:"property_id"`
	TenantID   int       `json:"tenant_id" db:"tenant_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    *string   `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// RatingSummary is the aggregate over all reviews of one property.
type RatingSummary struct {
	PropertyID    int     `json:"property_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
