package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

func intPtr(v int) *int { return &v }

// baseProfile returns the reference profile used across tests: normal
// sleeper, clean, moderately social, quiet, occasional guests, non-smoker,
// no pets, preferring roommates aged 20-35.
func baseProfile(userID int) *domain.RoommateProfile {
	return &domain.RoommateProfile{
		UserID:      userID,
		PropertyID:  1,
		DisplayName: "Test User",
		Age:         intPtr(27),
		Lifestyle: domain.Lifestyle{
			SleepSchedule: domain.SleepNormal,
			Cleanliness:   domain.CleanlinessClean,
			SocialLevel:   domain.SocialModerate,
			NoiseLevel:    domain.NoiseQuiet,
			GuestPolicy:   domain.GuestsOccasional,
			Smoking:       domain.SmokingNonSmoker,
			Pets:          domain.PetsNone,
		},
		Compatibility: domain.CompatibilityPreferences{
			PrefMinAge: intPtr(20),
			PrefMaxAge: intPtr(35),
		},
	}
}

func TestScore_IdenticalProfiles(t *testing.T) {
	subject := baseProfile(1)
	candidate := baseProfile(2)

	result := Score(subject, candidate)

	assert.Greater(t, result.Score, 80)
	assert.Empty(t, result.ConflictingFactors)
	assert.Equal(t, 2, result.UserID)
	// Every lifestyle axis matches, plus the age range.
	assert.Equal(t, []string{
		FactorSleepSchedule,
		FactorCleanliness,
		FactorSocialLevel,
		FactorNoiseLevel,
		FactorGuestPolicy,
		FactorSmoking,
		FactorPets,
		FactorAgeRange,
	}, result.MatchingFactors)
}

func TestScore_SmokerAndAgeConflict(t *testing.T) {
	subject := baseProfile(1)
	candidate := baseProfile(2)
	candidate.Lifestyle.Smoking = domain.SmokingSmoker
	candidate.Age = intPtr(45)

	result := Score(subject, candidate)

	assert.Less(t, result.Score, 50)
	assert.Contains(t, result.ConflictingFactors, FactorSmoking)
	assert.Contains(t, result.ConflictingFactors, FactorAgeRange)
	assert.NotContains(t, result.MatchingFactors, FactorSmoking)
}

func TestScore_Deterministic(t *testing.T) {
	subject := baseProfile(1)
	candidate := baseProfile(2)
	candidate.Lifestyle.NoiseLevel = domain.NoiseLively
	candidate.Lifestyle.Pets = domain.PetsAny

	first := Score(subject, candidate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(subject, candidate))
	}
}

func TestScore_Asymmetric(t *testing.T) {
	// A states an age preference, B does not. A's check against B's age
	// of 45 fails, while B applies no age check at all, so the two
	// directions must differ.
	a := baseProfile(1)
	b := baseProfile(2)
	b.Age = intPtr(45)
	b.Compatibility.PrefMinAge = nil
	b.Compatibility.PrefMaxAge = nil

	ab := Score(a, b)
	ba := Score(b, a)

	assert.NotEqual(t, ab.Score, ba.Score)
	assert.Contains(t, ab.ConflictingFactors, FactorAgeRange)
	assert.NotContains(t, ba.ConflictingFactors, FactorAgeRange)
	assert.NotContains(t, ba.MatchingFactors, FactorAgeRange)
}

func TestScore_MissingAgeSkipsAxis(t *testing.T) {
	subject := baseProfile(1)
	candidate := baseProfile(2)
	candidate.Age = nil

	result := Score(subject, candidate)

	require.NotZero(t, result.Score)
	assert.NotContains(t, result.MatchingFactors, FactorAgeRange)
	assert.NotContains(t, result.ConflictingFactors, FactorAgeRange)
}

func TestScore_AgeRangeBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		conflict bool
	}{
		{"exactly min", 20, false},
		{"exactly max", 35, false},
		{"one below min", 19, true},
		{"one above max", 36, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject := baseProfile(1)
			candidate := baseProfile(2)
			candidate.Age = intPtr(tt.age)

			result := Score(subject, candidate)
			if tt.conflict {
				assert.Contains(t, result.ConflictingFactors, FactorAgeRange)
				assert.NotContains(t, result.MatchingFactors, FactorAgeRange)
			} else {
				assert.Contains(t, result.MatchingFactors, FactorAgeRange)
				assert.NotContains(t, result.ConflictingFactors, FactorAgeRange)
			}
		})
	}
}

func TestScore_HardConflictOutweighsNeutralMismatch(t *testing.T) {
	subject := baseProfile(1)

	identical := baseProfile(2)
	outdoor := baseProfile(3)
	outdoor.Lifestyle.Smoking = domain.SmokingOutdoorOnly
	smoker := baseProfile(4)
	smoker.Lifestyle.Smoking = domain.SmokingSmoker

	full := Score(subject, identical)
	neutral := Score(subject, outdoor)
	conflict := Score(subject, smoker)

	assert.Greater(t, full.Score, neutral.Score)
	assert.Greater(t, neutral.Score, conflict.Score)
	// The neutral mismatch records no factor either way.
	assert.NotContains(t, neutral.MatchingFactors, FactorSmoking)
	assert.NotContains(t, neutral.ConflictingFactors, FactorSmoking)
	assert.Contains(t, conflict.ConflictingFactors, FactorSmoking)
}

func TestScore_PetConflicts(t *testing.T) {
	subject := baseProfile(1)
	subject.Lifestyle.Pets = domain.PetsNone

	withPets := baseProfile(2)
	withPets.Lifestyle.Pets = domain.PetsAny
	assert.Contains(t, Score(subject, withPets).ConflictingFactors, FactorPets)

	// Differing pet species are a neutral mismatch, not a conflict.
	catPerson := baseProfile(3)
	catPerson.Lifestyle.Pets = domain.PetsCatsOnly
	dogPerson := baseProfile(4)
	dogPerson.Lifestyle.Pets = domain.PetsDogsOnly
	result := Score(catPerson, dogPerson)
	assert.NotContains(t, result.ConflictingFactors, FactorPets)
	assert.NotContains(t, result.MatchingFactors, FactorPets)
}

func TestScore_ClampedToBounds(t *testing.T) {
	// Worst case: every axis mismatched, both hard conflicts, age out of
	// range. The raw sum goes negative and must clamp to zero.
	subject := baseProfile(1)
	candidate := &domain.RoommateProfile{
		UserID: 2,
		Age:    intPtr(60),
		Lifestyle: domain.Lifestyle{
			SleepSchedule: domain.SleepLate,
			Cleanliness:   domain.CleanlinessRelaxed,
			SocialLevel:   domain.SocialVerySocial,
			NoiseLevel:    domain.NoiseLively,
			GuestPolicy:   domain.GuestsAnytime,
			Smoking:       domain.SmokingSmoker,
			Pets:          domain.PetsAny,
		},
	}

	result := Score(subject, candidate)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.Equal(t, 0, result.Score)

	// And the best case stays within the upper bound.
	best := Score(subject, baseProfile(3))
	assert.LessOrEqual(t, best.Score, 100)
}
