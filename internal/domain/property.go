package domain

import "time"

type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyStudio     PropertyType = "studio"
	PropertySharedRoom PropertyType = "shared_room"
)

type Property struct {
	ID            int          `json:"id" db:"id"`
	OwnerID       int          `json:"owner_id" db:"owner_id"`
	Title         string       `json:"title" db:"title"`
	Description   *string      `json:"description" db:"description"`
	Type          PropertyType `json:"type" db:"type"`
	City          string       `json:"city" db:"city"`
	Address       string       `json:"address" db:"address"`
	MonthlyRent   float64      `json:"monthly_rent" db:"monthly_rent"`
	Deposit       *float64     `json:"deposit" db:"deposit"`
	Rooms         int          `json:"rooms" db:"rooms"`
	AreaSqm       *float64     `json:"area_sqm" db:"area_sqm"`
	Amenities     []string     `json:"amenities" db:"amenities"`
	Photos        []string     `json:"photos" db:"photos"`
	Furnished     bool         `json:"furnished" db:"furnished"`
	AvailableFrom *time.Time   `json:"available_from" db:"available_from"`
	IsActive      bool         `json:"is_active" db:"is_active"`
	IsVerified    bool         `json:"is_verified" db:"is_verified"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

func (p *Property) IsOwnedBy(userID int) bool {
	return p.OwnerID == userID
}
