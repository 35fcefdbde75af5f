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

const roommateProfileColumns = `
	id, user_id, property_id, display_name, age, occupation, bio,
	sleep_schedule, cleanliness, social_level, noise_level, guest_policy,
	smoking_preference, pet_preference,
	pref_min_age, pref_max_age, preferred_gender, preferred_occupations,
	deal_breakers, important_qualities,
	show_age, show_occupation, show_bio, show_lifestyle,
	is_active, created_at, updated_at
`

type roommateProfileRepository struct {
	db *sqlx.DB
}

func NewRoommateProfileRepository(db *sqlx.DB) repository.RoommateProfileRepository {
	return &roommateProfileRepository{db: db}
}

func (r *roommateProfileRepository) Create(ctx context.Context, profile *domain.RoommateProfile) error {
	query := `
		INSERT INTO roommate_profiles (
			user_id, property_id, display_name, age, occupation, bio,
			sleep_schedule, cleanliness, social_level, noise_level, guest_policy,
			smoking_preference, pet_preference,
			pref_min_age, pref_max_age, preferred_gender, preferred_occupations,
			deal_breakers, important_qualities,
			show_age, show_occupation, show_bio, show_lifestyle, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.PropertyID, profile.DisplayName, profile.Age,
		profile.Occupation, profile.Bio,
		profile.Lifestyle.SleepSchedule, profile.Lifestyle.Cleanliness,
		profile.Lifestyle.SocialLevel, profile.Lifestyle.NoiseLevel,
		profile.Lifestyle.GuestPolicy, profile.Lifestyle.Smoking, profile.Lifestyle.Pets,
		profile.Compatibility.PrefMinAge, profile.Compatibility.PrefMaxAge,
		profile.Compatibility.PreferredGender,
		pq.Array(profile.Compatibility.PreferredOccupations),
		pq.Array(profile.Compatibility.DealBreakers),
		pq.Array(profile.Compatibility.ImportantQualities),
		profile.Privacy.ShowAge, profile.Privacy.ShowOccupation,
		profile.Privacy.ShowBio, profile.Privacy.ShowLifestyle,
		profile.IsActive,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		// Partial unique index on (user_id, property_id) WHERE is_active.
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrRoommateProfileExists
		}
		return err
	}
	return nil
}

func (r *roommateProfileRepository) GetByID(ctx context.Context, id int) (*domain.RoommateProfile, error) {
	query := `SELECT ` + roommateProfileColumns + ` FROM roommate_profiles WHERE id = $1`
	profile, err := r.scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoommateProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *roommateProfileRepository) GetActiveByUserAndProperty(ctx context.Context, userID, propertyID int) (*domain.RoommateProfile, error) {
	query := `SELECT ` + roommateProfileColumns + ` FROM roommate_profiles WHERE user_id = $1 AND property_id = $2 AND is_active = true`
	profile, err := r.scanProfile(r.db.QueryRowContext(ctx, query, userID, propertyID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoommateProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *roommateProfileRepository) ListActiveByProperty(ctx context.Context, propertyID int) ([]*domain.RoommateProfile, error) {
	query := `SELECT ` + roommateProfileColumns + ` FROM roommate_profiles WHERE property_id = $1 AND is_active = true ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.RoommateProfile
	for rows.Next() {
		profile, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (r *roommateProfileRepository) Update(ctx context.Context, profile *domain.RoommateProfile) error {
	query := `
		UPDATE roommate_profiles
		SET display_name = $1, age = $2, occupation = $3, bio = $4,
		    sleep_schedule = $5, cleanliness = $6, social_level = $7,
		    noise_level = $8, guest_policy = $9, smoking_preference = $10,
		    pet_preference = $11,
		    pref_min_age = $12, pref_max_age = $13, preferred_gender = $14,
		    preferred_occupations = $15, deal_breakers = $16, important_qualities = $17,
		    show_age = $18, show_occupation = $19, show_bio = $20, show_lifestyle = $21,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $22
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.Age, profile.Occupation, profile.Bio,
		profile.Lifestyle.SleepSchedule, profile.Lifestyle.Cleanliness,
		profile.Lifestyle.SocialLevel, profile.Lifestyle.NoiseLevel,
		profile.Lifestyle.GuestPolicy, profile.Lifestyle.Smoking, profile.Lifestyle.Pets,
		profile.Compatibility.PrefMinAge, profile.Compatibility.PrefMaxAge,
		profile.Compatibility.PreferredGender,
		pq.Array(profile.Compatibility.PreferredOccupations),
		pq.Array(profile.Compatibility.DealBreakers),
		pq.Array(profile.Compatibility.ImportantQualities),
		profile.Privacy.ShowAge, profile.Privacy.ShowOccupation,
		profile.Privacy.ShowBio, profile.Privacy.ShowLifestyle,
		profile.ID,
	).Scan(&profile.UpdatedAt)
}

func (r *roommateProfileRepository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE roommate_profiles SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1 AND is_active = true`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRoommateProfileNotFound
	}
	return nil
}

func (r *roommateProfileRepository) scanProfile(row rowScanner) (*domain.RoommateProfile, error) {
	var profile domain.RoommateProfile
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.PropertyID, &profile.DisplayName,
		&profile.Age, &profile.Occupation, &profile.Bio,
		&profile.Lifestyle.SleepSchedule, &profile.Lifestyle.Cleanliness,
		&profile.Lifestyle.SocialLevel, &profile.Lifestyle.NoiseLevel,
		&profile.Lifestyle.GuestPolicy, &profile.Lifestyle.Smoking, &profile.Lifestyle.Pets,
		&profile.Compatibility.PrefMinAge, &profile.Compatibility.PrefMaxAge,
		&profile.Compatibility.PreferredGender,
		pq.Array(&profile.Compatibility.PreferredOccupations),
		pq.Array(&profile.Compatibility.DealBreakers),
		pq.Array(&profile.Compatibility.ImportantQualities),
		&profile.Privacy.ShowAge, &profile.Privacy.ShowOccupation,
		&profile.Privacy.ShowBio, &profile.Privacy.ShowLifestyle,
		&profile.IsActive, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
