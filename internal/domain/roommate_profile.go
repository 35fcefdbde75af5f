package domain

import "time"

// Lifestyle axes are closed enums validated at the write boundary,
// so the scorer can assume well-formed values.

type SleepSchedule string

const (
	SleepEarly  SleepSchedule = "early"
	SleepNormal SleepSchedule = "normal"
	SleepLate   SleepSchedule = "late"
)

type Cleanliness string

const (
	CleanlinessVeryClean Cleanliness = "very_clean"
	CleanlinessClean     Cleanliness = "clean"
	CleanlinessModerate  Cleanliness = "moderate"
	CleanlinessRelaxed   Cleanliness = "relaxed"
)

type SocialLevel string

const (
	SocialVerySocial SocialLevel = "very_social"
	SocialSocial     SocialLevel = "social"
	SocialModerate   SocialLevel = "moderate"
	SocialPrivate    SocialLevel = "private"
)

type NoiseLevel string

const (
	NoiseQuiet    NoiseLevel = "quiet"
	NoiseModerate NoiseLevel = "moderate"
	NoiseLively   NoiseLevel = "lively"
)

type GuestPolicy string

const (
	GuestsNone       GuestPolicy = "no_guests"
	GuestsOccasional GuestPolicy = "occasional"
	GuestsFrequent   GuestPolicy = "frequent"
	GuestsAnytime    GuestPolicy = "anytime"
)

type SmokingPreference string

const (
	SmokingNonSmoker   SmokingPreference = "non_smoker"
	SmokingOutdoorOnly SmokingPreference = "outdoor_only"
	SmokingSmoker      SmokingPreference = "smoker"
)

type PetPreference string

const (
	PetsNone     PetPreference = "no_pets"
	PetsCatsOnly PetPreference = "cats_only"
	PetsDogsOnly PetPreference = "dogs_only"
	PetsAny      PetPreference = "any_pets"
)

type Gender string

const (
	GenderAny       Gender = "any"
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non_binary"
)

// Lifestyle holds the seven compatibility axes.
type Lifestyle struct {
	SleepSchedule SleepSchedule     `json:"sleep_schedule"`
	Cleanliness   Cleanliness       `json:"cleanliness"`
	SocialLevel   SocialLevel       `json:"social_level"`
	NoiseLevel    NoiseLevel        `json:"noise_level"`
	GuestPolicy   GuestPolicy       `json:"guest_policy"`
	Smoking       SmokingPreference `json:"smoking_preference"`
	Pets          PetPreference     `json:"pet_preference"`
}

// CompatibilityPreferences are the user's stated matching preferences.
type CompatibilityPreferences struct {
	PrefMinAge           *int     `json:"pref_min_age"`
	PrefMaxAge           *int     `json:"pref_max_age"`
	PreferredGender      Gender   `json:"preferred_gender"`
	PreferredOccupations []string `json:"preferred_occupations"`
	DealBreakers         []string `json:"deal_breakers"`
	ImportantQualities   []string `json:"important_qualities"`
}

// PrivacySettings control which fields other users can see. They are a
// presentation concern only and are never consulted by the scorer.
type PrivacySettings struct {
	ShowAge        bool `json:"show_age"`
	ShowOccupation bool `json:"show_occupation"`
	ShowBio        bool `json:"show_bio"`
	ShowLifestyle  bool `json:"show_lifestyle"`
}

// RoommateProfile is one user's roommate-seeker profile for one property.
// At most one active profile may exist per (user, property) pair; profiles
// are deactivated rather than hard-deleted.
type RoommateProfile struct {
	ID            int                      `json:"id" db:"id"`
	UserID        int                      `json:"user_id" db:"user_id"`
	PropertyID    int                      `json:"property_id" db:"property_id"`
	DisplayName   string                   `json:"display_name" db:"display_name"`
	Age           *int                     `json:"age" db:"age"`
	Occupation    *string                  `json:"occupation" db:"occupation"`
	Bio           *string                  `json:"bio" db:"bio"`
	Lifestyle     Lifestyle                `json:"lifestyle"`
	Compatibility CompatibilityPreferences `json:"compatibility"`
	Privacy       PrivacySettings          `json:"privacy_settings"`
	IsActive      bool                     `json:"is_active" db:"is_active"`
	CreatedAt     time.Time                `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at" db:"updated_at"`
}
