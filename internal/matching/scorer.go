// Package matching implements the roommate compatibility scorer. It is a
// pure computation over profile values: no I/O, no shared state, safe to
// call from any number of request handlers.
package matching

import "github.com/roomnest-app/roomnest-backend/internal/domain"

// Factor labels, in evaluation order.
const (
	FactorSleepSchedule = "sleep_schedule"
	FactorCleanliness   = "cleanliness"
	FactorSocialLevel   = "social_level"
	FactorNoiseLevel    = "noise_level"
	FactorGuestPolicy   = "guest_policy"
	FactorSmoking       = "smoking_preference"
	FactorPets          = "pet_preference"
	FactorAgeRange      = "preferred_age_range"
)

// Weighting. Any monotonic scheme works as long as a full match with an
// in-range age clears 80 and a smoking plus age conflict drops below 50.
const (
	baseScore           = 40
	matchBonus          = 8
	mismatchPenalty     = 2
	hardConflictPenalty = 25
	ageMatchBonus       = 4
	ageConflictPenalty  = 15
)

type axis struct {
	name      string
	subject   string
	candidate string
	// conflicts reports a hard conflict between two differing values.
	// Nil for axes where a difference is only a neutral mismatch.
	conflicts func(a, b string) bool
}

// Score compares the subject's profile against a candidate and returns a
// 0-100 score with the matching and conflicting factor lists.
//
// The result is not symmetric: the age axis is evaluated against the
// subject's stated preferred age range only.
func Score(subject, candidate *domain.RoommateProfile) domain.CompatibilityScore {
	axes := []axis{
		{FactorSleepSchedule, string(subject.Lifestyle.SleepSchedule), string(candidate.Lifestyle.SleepSchedule), nil},
		{FactorCleanliness, string(subject.Lifestyle.Cleanliness), string(candidate.Lifestyle.Cleanliness), nil},
		{FactorSocialLevel, string(subject.Lifestyle.SocialLevel), string(candidate.Lifestyle.SocialLevel), nil},
		{FactorNoiseLevel, string(subject.Lifestyle.NoiseLevel), string(candidate.Lifestyle.NoiseLevel), nil},
		{FactorGuestPolicy, string(subject.Lifestyle.GuestPolicy), string(candidate.Lifestyle.GuestPolicy), nil},
		{FactorSmoking, string(subject.Lifestyle.Smoking), string(candidate.Lifestyle.Smoking), smokingConflict},
		{FactorPets, string(subject.Lifestyle.Pets), string(candidate.Lifestyle.Pets), petConflict},
	}

	score := baseScore
	var matching, conflicting []string

	for _, a := range axes {
		switch {
		case a.subject == a.candidate:
			score += matchBonus
			matching = append(matching, a.name)
		case a.conflicts != nil && a.conflicts(a.subject, a.candidate):
			score -= hardConflictPenalty
			conflicting = append(conflicting, a.name)
		default:
			score -= mismatchPenalty
		}
	}

	// Age range is checked against the subject's preference. A candidate
	// without a stated age skips the axis entirely.
	if candidate.Age != nil {
		minAge := subject.Compatibility.PrefMinAge
		maxAge := subject.Compatibility.PrefMaxAge
		if minAge != nil || maxAge != nil {
			inRange := true
			if minAge != nil && *candidate.Age < *minAge {
				inRange = false
			}
			if maxAge != nil && *candidate.Age > *maxAge {
				inRange = false
			}
			if inRange {
				score += ageMatchBonus
				matching = append(matching, FactorAgeRange)
			} else {
				score -= ageConflictPenalty
				conflicting = append(conflicting, FactorAgeRange)
			}
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.CompatibilityScore{
		UserID:             candidate.UserID,
		Score:              score,
		MatchingFactors:    matching,
		ConflictingFactors: conflicting,
	}
}

func smokingConflict(a, b string) bool {
	return (a == string(domain.SmokingNonSmoker) && b == string(domain.SmokingSmoker)) ||
		(a == string(domain.SmokingSmoker) && b == string(domain.SmokingNonSmoker))
}

// petConflict holds when exactly one side wants a pet-free home.
func petConflict(a, b string) bool {
	return (a == string(domain.PetsNone)) != (b == string(domain.PetsNone))
}
