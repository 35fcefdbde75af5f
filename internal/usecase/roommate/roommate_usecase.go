package roommate

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/matching"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

// matchCacheTTL bounds how stale a cached match list can get between
// profile writes.
const matchCacheTTL = 5 * time.Minute

type RoommateUseCase struct {
	roommateRepo     repository.RoommateProfileRepository
	propertyRepo     repository.PropertyRepository
	notificationRepo repository.NotificationRepository
	matchCache       repository.MatchCache
	log              zerolog.Logger
}

func NewRoommateUseCase(
	roommateRepo repository.RoommateProfileRepository,
	propertyRepo repository.PropertyRepository,
	notificationRepo repository.NotificationRepository,
	matchCache repository.MatchCache,
	log zerolog.Logger,
) *RoommateUseCase {
	return &RoommateUseCase{
		roommateRepo:     roommateRepo,
		propertyRepo:     propertyRepo,
		notificationRepo: notificationRepo,
		matchCache:       matchCache,
		log:              log,
	}
}

// LifestyleRequest carries the seven compatibility axes. Every value is
// validated against its closed enum here, at the write boundary, so the
// scorer can treat profiles as well-formed.
type LifestyleRequest struct {
	SleepSchedule string `json:"sleep_schedule" binding:"required,oneof=early normal late"`
	Cleanliness   string `json:"cleanliness" binding:"required,oneof=very_clean clean moderate relaxed"`
	SocialLevel   string `json:"social_level" binding:"required,oneof=very_social social moderate private"`
	NoiseLevel    string `json:"noise_level" binding:"required,oneof=quiet moderate lively"`
	GuestPolicy   string `json:"guest_policy" binding:"required,oneof=no_guests occasional frequent anytime"`
	Smoking       string `json:"smoking_preference" binding:"required,oneof=non_smoker outdoor_only smoker"`
	Pets          string `json:"pet_preference" binding:"required,oneof=no_pets cats_only dogs_only any_pets"`
}

// CompatibilityRequest carries the stated matching preferences
type CompatibilityRequest struct {
	PrefMinAge           *int     `json:"pref_min_age" binding:"omitempty,min=16,max=120"`
	PrefMaxAge           *int     `json:"pref_max_age" binding:"omitempty,min=16,max=120"`
	PreferredGender      string   `json:"preferred_gender" binding:"omitempty,oneof=any male female non_binary"`
	PreferredOccupations []string `json:"preferred_occupations" binding:"omitempty,max=10"`
	DealBreakers         []string `json:"deal_breakers" binding:"omitempty,max=20"`
	ImportantQualities   []string `json:"important_qualities" binding:"omitempty,max=20"`
}

// PrivacyRequest carries per-field visibility toggles
type PrivacyRequest struct {
	ShowAge        bool `json:"show_age"`
	ShowOccupation bool `json:"show_occupation"`
	ShowBio        bool `json:"show_bio"`
	ShowLifestyle  bool `json:"show_lifestyle"`
}

// CreateProfileRequest represents roommate profile creation request
type CreateProfileRequest struct {
	PropertyID    int                  `json:"property_id" binding:"required"`
	DisplayName   string               `json:"display_name" binding:"required,min=2,max=100"`
	Age           *int                 `json:"age" binding:"omitempty,min=16,max=120"`
	Occupation    *string              `json:"occupation" binding:"omitempty,max=100"`
	Bio           *string              `json:"bio" binding:"omitempty,max=500"`
	Lifestyle     LifestyleRequest     `json:"lifestyle" binding:"required"`
	Compatibility CompatibilityRequest `json:"compatibility"`
	Privacy       *PrivacyRequest      `json:"privacy_settings"`
}

// UpdateProfileRequest represents roommate profile update request
type UpdateProfileRequest struct {
	DisplayName   *string               `json:"display_name" binding:"omitempty,min=2,max=100"`
	Age           *int                  `json:"age" binding:"omitempty,min=16,max=120"`
	Occupation    *string               `json:"occupation" binding:"omitempty,max=100"`
	Bio           *string               `json:"bio" binding:"omitempty,max=500"`
	Lifestyle     *LifestyleRequest     `json:"lifestyle"`
	Compatibility *CompatibilityRequest `json:"compatibility"`
	Privacy       *PrivacyRequest       `json:"privacy_settings"`
}

// CandidateProfile is another user's profile with privacy settings applied
type CandidateProfile struct {
	UserID      int               `json:"user_id"`
	DisplayName string            `json:"display_name"`
	Age         *int              `json:"age,omitempty"`
	Occupation  *string           `json:"occupation,omitempty"`
	Bio         *string           `json:"bio,omitempty"`
	Lifestyle   *domain.Lifestyle `json:"lifestyle,omitempty"`
}

// MatchResult pairs a candidate with the subject's compatibility score
type MatchResult struct {
	Candidate          *CandidateProfile `json:"candidate"`
	Score              int               `json:"score"`
	MatchingFactors    []string          `json:"matching_factors"`
	ConflictingFactors []string          `json:"conflicting_factors"`
}

// CreateProfile opts a user into roommate matching for a property
func (uc *RoommateUseCase) CreateProfile(ctx context.Context, userID int, req *CreateProfileRequest) (*domain.RoommateProfile, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	profile := &domain.RoommateProfile{
		UserID:      userID,
		PropertyID:  req.PropertyID,
		DisplayName: req.DisplayName,
		Age:         req.Age,
		Occupation:  req.Occupation,
		Bio:         req.Bio,
		Lifestyle:   req.Lifestyle.toDomain(),
		Compatibility: domain.CompatibilityPreferences{
			PrefMinAge:           req.Compatibility.PrefMinAge,
			PrefMaxAge:           req.Compatibility.PrefMaxAge,
			PreferredGender:      preferredGender(req.Compatibility.PreferredGender),
			PreferredOccupations: req.Compatibility.PreferredOccupations,
			DealBreakers:         req.Compatibility.DealBreakers,
			ImportantQualities:   req.Compatibility.ImportantQualities,
		},
		Privacy:  privacyFromRequest(req.Privacy),
		IsActive: true,
	}

	if err := uc.roommateRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	uc.invalidateMatches(ctx, req.PropertyID)
	uc.notifyExistingSeekers(ctx, profile)

	return profile, nil
}

// GetMyProfile returns the user's active profile for a property
func (uc *RoommateUseCase) GetMyProfile(ctx context.Context, userID, propertyID int) (*domain.RoommateProfile, error) {
	return uc.roommateRepo.GetActiveByUserAndProperty(ctx, userID, propertyID)
}

// UpdateProfile mutates the user's active profile for a property
func (uc *RoommateUseCase) UpdateProfile(ctx context.Context, userID, propertyID int, req *UpdateProfileRequest) (*domain.RoommateProfile, error) {
	profile, err := uc.roommateRepo.GetActiveByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Occupation != nil {
		profile.Occupation = req.Occupation
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Lifestyle != nil {
		profile.Lifestyle = req.Lifestyle.toDomain()
	}
	if req.Compatibility != nil {
		profile.Compatibility = domain.CompatibilityPreferences{
			PrefMinAge:           req.Compatibility.PrefMinAge,
			PrefMaxAge:           req.Compatibility.PrefMaxAge,
			PreferredGender:      preferredGender(req.Compatibility.PreferredGender),
			PreferredOccupations: req.Compatibility.PreferredOccupations,
			DealBreakers:         req.Compatibility.DealBreakers,
			ImportantQualities:   req.Compatibility.ImportantQualities,
		}
	}
	if req.Privacy != nil {
		profile.Privacy = privacyFromRequest(req.Privacy)
	}

	if err := uc.roommateRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update roommate profile: %w", err)
	}

	uc.invalidateMatches(ctx, propertyID)
	return profile, nil
}

// DeactivateProfile retires the profile; it is never hard-deleted
func (uc *RoommateUseCase) DeactivateProfile(ctx context.Context, userID, propertyID int) error {
	profile, err := uc.roommateRepo.GetActiveByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if err := uc.roommateRepo.Deactivate(ctx, profile.ID); err != nil {
		return err
	}
	uc.invalidateMatches(ctx, propertyID)
	return nil
}

// FindMatches scores every other active seeker for the property against
// the subject's profile and returns them ranked by descending score.
func (uc *RoommateUseCase) FindMatches(ctx context.Context, userID, propertyID int) ([]*MatchResult, error) {
	subject, err := uc.roommateRepo.GetActiveByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.roommateRepo.ListActiveByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	scores := uc.cachedScores(ctx, subject, candidates)

	byUser := make(map[int]*domain.RoommateProfile, len(candidates))
	for _, c := range candidates {
		byUser[c.UserID] = c
	}

	results := make([]*MatchResult, 0, len(scores))
	for _, score := range scores {
		candidate, ok := byUser[score.UserID]
		if !ok {
			// Cached entry for a seeker who deactivated since.
			continue
		}
		results = append(results, &MatchResult{
			Candidate:          candidateView(candidate),
			Score:              score.Score,
			MatchingFactors:    score.MatchingFactors,
			ConflictingFactors: score.ConflictingFactors,
		})
	}
	return results, nil
}

// cachedScores returns ranked compatibility scores, recomputing on miss.
// Cache failures degrade to computing; they never fail the request.
func (uc *RoommateUseCase) cachedScores(ctx context.Context, subject *domain.RoommateProfile, candidates []*domain.RoommateProfile) []domain.CompatibilityScore {
	if cached, ok, err := uc.matchCache.Get(ctx, subject.UserID, subject.PropertyID); err == nil && ok {
		return cached
	} else if err != nil {
		uc.log.Warn().Err(err).Msg("match cache read failed")
	}

	scores := make([]domain.CompatibilityScore, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.UserID == subject.UserID {
			continue
		}
		scores = append(scores, matching.Score(subject, candidate))
	}

	// Descending by score; ties broken by user id for a stable order.
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].UserID < scores[j].UserID
	})

	if err := uc.matchCache.Set(ctx, subject.UserID, subject.PropertyID, scores, matchCacheTTL); err != nil {
		uc.log.Warn().Err(err).Msg("match cache write failed")
	}
	return scores
}

func (uc *RoommateUseCase) invalidateMatches(ctx context.Context, propertyID int) {
	if err := uc.matchCache.InvalidateProperty(ctx, propertyID); err != nil {
		uc.log.Warn().Err(err).Int("property_id", propertyID).Msg("match cache invalidation failed")
	}
}

// notifyExistingSeekers tells current seekers on the property that a new
// candidate appeared. Best effort.
func (uc *RoommateUseCase) notifyExistingSeekers(ctx context.Context, profile *domain.RoommateProfile) {
	others, err := uc.roommateRepo.ListActiveByProperty(ctx, profile.PropertyID)
	if err != nil {
		uc.log.Warn().Err(err).Msg("failed to list seekers for notification")
		return
	}
	for _, other := range others {
		if other.UserID == profile.UserID {
			continue
		}
		notification := &domain.Notification{
			UserID: other.UserID,
			Type:   domain.NotificationNewMatch,
			Title:  "New roommate candidate",
			Body:   fmt.Sprintf("%s is now looking for a roommate on a property you follow", profile.DisplayName),
		}
		if err := uc.notificationRepo.Create(ctx, notification); err != nil {
			uc.log.Warn().Err(err).Int("user_id", other.UserID).Msg("failed to create match notification")
		}
	}
}

func (r LifestyleRequest) toDomain() domain.Lifestyle {
	return domain.Lifestyle{
		SleepSchedule: domain.SleepSchedule(r.SleepSchedule),
		Cleanliness:   domain.Cleanliness(r.Cleanliness),
		SocialLevel:   domain.SocialLevel(r.SocialLevel),
		NoiseLevel:    domain.NoiseLevel(r.NoiseLevel),
		GuestPolicy:   domain.GuestPolicy(r.GuestPolicy),
		Smoking:       domain.SmokingPreference(r.Smoking),
		Pets:          domain.PetPreference(r.Pets),
	}
}

func preferredGender(value string) domain.Gender {
	if value == "" {
		return domain.GenderAny
	}
	return domain.Gender(value)
}

func privacyFromRequest(req *PrivacyRequest) domain.PrivacySettings {
	if req == nil {
		// Everything visible by default; users opt out per field.
		return domain.PrivacySettings{ShowAge: true, ShowOccupation: true, ShowBio: true, ShowLifestyle: true}
	}
	return domain.PrivacySettings{
		ShowAge:        req.ShowAge,
		ShowOccupation: req.ShowOccupation,
		ShowBio:        req.ShowBio,
		ShowLifestyle:  req.ShowLifestyle,
	}
}

// candidateView strips fields the candidate chose to hide
func candidateView(profile *domain.RoommateProfile) *CandidateProfile {
	view := &CandidateProfile{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
	}
	if profile.Privacy.ShowAge {
		view.Age = profile.Age
	}
	if profile.Privacy.ShowOccupation {
		view.Occupation = profile.Occupation
	}
	if profile.Privacy.ShowBio {
		view.Bio = profile.Bio
	}
	if profile.Privacy.ShowLifestyle {
		lifestyle := profile.Lifestyle
		view.Lifestyle = &lifestyle
	}
	return view
}
