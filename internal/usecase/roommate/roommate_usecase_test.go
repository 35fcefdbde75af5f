package roommate

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
	redisrepo "github.com/roomnest-app/roomnest-backend/internal/repository/redis"
)

type fakeRoommateRepo struct {
	profiles map[int]*domain.RoommateProfile
	nextID   int
}

func newFakeRoommateRepo() *fakeRoommateRepo {
	return &fakeRoommateRepo{profiles: make(map[int]*domain.RoommateProfile), nextID: 1}
}

func (r *fakeRoommateRepo) Create(_ context.Context, profile *domain.RoommateProfile) error {
	for _, p := range r.profiles {
		if p.IsActive && p.UserID == profile.UserID && p.PropertyID == profile.PropertyID {
			return domain.ErrRoommateProfileExists
		}
	}
	profile.ID = r.nextID
	r.nextID++
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeRoommateRepo) GetByID(_ context.Context, id int) (*domain.RoommateProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrRoommateProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRoommateRepo) GetActiveByUserAndProperty(_ context.Context, userID, propertyID int) (*domain.RoommateProfile, error) {
	for _, p := range r.profiles {
		if p.IsActive && p.UserID == userID && p.PropertyID == propertyID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrRoommateProfileNotFound
}

func (r *fakeRoommateRepo) ListActiveByProperty(_ context.Context, propertyID int) ([]*domain.RoommateProfile, error) {
	var out []*domain.RoommateProfile
	for _, p := range r.profiles {
		if p.IsActive && p.PropertyID == propertyID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRoommateRepo) Update(_ context.Context, profile *domain.RoommateProfile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return domain.ErrRoommateProfileNotFound
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeRoommateRepo) Deactivate(_ context.Context, id int) error {
	p, ok := r.profiles[id]
	if !ok {
		return domain.ErrRoommateProfileNotFound
	}
	p.IsActive = false
	return nil
}

type fakePropertyRepo struct {
	properties map[int]*domain.Property
}

func (r *fakePropertyRepo) Create(_ context.Context, _ *domain.Property) error { return nil }

func (r *fakePropertyRepo) GetByID(_ context.Context, id int) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return p, nil
}

func (r *fakePropertyRepo) Update(_ context.Context, _ *domain.Property) error { return nil }
func (r *fakePropertyRepo) Delete(_ context.Context, _ int) error              { return nil }

func (r *fakePropertyRepo) Search(_ context.Context, _ repository.PropertyFilter, _, _ int) ([]*domain.Property, error) {
	return nil, nil
}

func (r *fakePropertyRepo) ListByOwner(_ context.Context, _ int, _, _ int) ([]*domain.Property, error) {
	return nil, nil
}

func (r *fakePropertyRepo) ListUnverified(_ context.Context, _, _ int) ([]*domain.Property, error) {
	return nil, nil
}

func (r *fakePropertyRepo) SetVerified(_ context.Context, _ int, _ bool) error { return nil }
func (r *fakePropertyRepo) AddPhoto(_ context.Context, _ int, _ string) error  { return nil }

type fakeNotificationRepo struct {
	created []*domain.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, _ int, _, _ int) ([]*domain.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, _, _ int) error { return nil }
func (r *fakeNotificationRepo) CountUnread(_ context.Context, _ int) (int, error) {
	return 0, nil
}

type testEnv struct {
	uc            *RoommateUseCase
	roommateRepo  *fakeRoommateRepo
	notifications *fakeNotificationRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	roommateRepo := newFakeRoommateRepo()
	propertyRepo := &fakePropertyRepo{properties: map[int]*domain.Property{
		10: {ID: 10, OwnerID: 99, Title: "Sunny flat", IsActive: true},
	}}
	notifications := &fakeNotificationRepo{}

	uc := NewRoommateUseCase(
		roommateRepo,
		propertyRepo,
		notifications,
		redisrepo.NewMatchCache(client),
		zerolog.Nop(),
	)
	return &testEnv{uc: uc, roommateRepo: roommateRepo, notifications: notifications}
}

func seekerProfile(userID int, lifestyle domain.Lifestyle) *domain.RoommateProfile {
	return &domain.RoommateProfile{
		UserID:      userID,
		PropertyID:  10,
		DisplayName: "Seeker",
		Lifestyle:   lifestyle,
		Privacy:     domain.PrivacySettings{ShowAge: true, ShowOccupation: true, ShowBio: true, ShowLifestyle: true},
		IsActive:    true,
	}
}

func quietLifestyle() domain.Lifestyle {
	return domain.Lifestyle{
		SleepSchedule: domain.SleepEarly,
		Cleanliness:   domain.CleanlinessClean,
		SocialLevel:   domain.SocialModerate,
		NoiseLevel:    domain.NoiseQuiet,
		GuestPolicy:   domain.GuestsOccasional,
		Smoking:       domain.SmokingNonSmoker,
		Pets:          domain.PetsNone,
	}
}

func TestFindMatchesRankedByScore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	subject := seekerProfile(1, quietLifestyle())
	require.NoError(t, env.roommateRepo.Create(ctx, subject))

	// Identical lifestyle scores highest.
	twin := seekerProfile(2, quietLifestyle())
	require.NoError(t, env.roommateRepo.Create(ctx, twin))

	// A smoker hard-conflicts with the non-smoking subject.
	smokerLifestyle := quietLifestyle()
	smokerLifestyle.Smoking = domain.SmokingSmoker
	smoker := seekerProfile(3, smokerLifestyle)
	require.NoError(t, env.roommateRepo.Create(ctx, smoker))

	matches, err := env.uc.FindMatches(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, 2, matches[0].Candidate.UserID)
	assert.Equal(t, 3, matches[1].Candidate.UserID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
	assert.Contains(t, matches[1].ConflictingFactors, "smoking_preference")
}

func TestFindMatchesExcludesSelf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.roommateRepo.Create(ctx, seekerProfile(1, quietLifestyle())))

	matches, err := env.uc.FindMatches(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchesRespectsPrivacy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.roommateRepo.Create(ctx, seekerProfile(1, quietLifestyle())))

	age := 27
	occupation := "nurse"
	hidden := seekerProfile(2, quietLifestyle())
	hidden.Age = &age
	hidden.Occupation = &occupation
	hidden.Privacy = domain.PrivacySettings{ShowAge: false, ShowOccupation: false, ShowBio: true, ShowLifestyle: false}
	require.NoError(t, env.roommateRepo.Create(ctx, hidden))

	matches, err := env.uc.FindMatches(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	candidate := matches[0].Candidate
	assert.Nil(t, candidate.Age)
	assert.Nil(t, candidate.Occupation)
	assert.Nil(t, candidate.Lifestyle)
	assert.Equal(t, "Seeker", candidate.DisplayName)
}

func TestFindMatchesUsesCacheUntilInvalidated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.roommateRepo.Create(ctx, seekerProfile(1, quietLifestyle())))
	require.NoError(t, env.roommateRepo.Create(ctx, seekerProfile(2, quietLifestyle())))

	first, err := env.uc.FindMatches(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, first, 1)
	firstScore := first[0].Score

	// A direct repo write bypasses invalidation, so the cached score holds.
	stale, err := env.roommateRepo.GetActiveByUserAndProperty(ctx, 2, 10)
	require.NoError(t, err)
	stale.Lifestyle.Smoking = domain.SmokingSmoker
	require.NoError(t, env.roommateRepo.Update(ctx, stale))

	cached, err := env.uc.FindMatches(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, firstScore, cached[0].Score)

	// Going through the use case invalidates and recomputes.
	smoking := string(domain.SmokingSmoker)
	_, err = env.uc.UpdateProfile(ctx, 2, 10, &UpdateProfileRequest{
		Lifestyle: &LifestyleRequest{
			SleepSchedule: string(domain.SleepEarly),
			Cleanliness:   string(domain.CleanlinessClean),
			SocialLevel:   string(domain.SocialModerate),
			NoiseLevel:    string(domain.NoiseQuiet),
			GuestPolicy:   string(domain.GuestsOccasional),
			Smoking:       smoking,
			Pets:          string(domain.PetsNone),
		},
	})
	require.NoError(t, err)

	fresh, err := env.uc.FindMatches(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Less(t, fresh[0].Score, firstScore)
	assert.Contains(t, fresh[0].ConflictingFactors, "smoking_preference")
}

func TestCreateProfileUnknownProperty(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.CreateProfile(context.Background(), 1, &CreateProfileRequest{
		PropertyID:  404,
		DisplayName: "Seeker",
		Lifestyle: LifestyleRequest{
			SleepSchedule: "early", Cleanliness: "clean", SocialLevel: "moderate",
			NoiseLevel: "quiet", GuestPolicy: "occasional",
			Smoking: "non_smoker", Pets: "no_pets",
		},
	})
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestCreateProfileNotifiesExistingSeekers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.roommateRepo.Create(ctx, seekerProfile(5, quietLifestyle())))

	_, err := env.uc.CreateProfile(ctx, 6, &CreateProfileRequest{
		PropertyID:  10,
		DisplayName: "Newcomer",
		Lifestyle: LifestyleRequest{
			SleepSchedule: "late", Cleanliness: "relaxed", SocialLevel: "very_social",
			NoiseLevel: "lively", GuestPolicy: "anytime",
			Smoking: "outdoor_only", Pets: "any_pets",
		},
	})
	require.NoError(t, err)

	require.Len(t, env.notifications.created, 1)
	assert.Equal(t, 5, env.notifications.created[0].UserID)
	assert.Equal(t, domain.NotificationNewMatch, env.notifications.created[0].Type)
}

func TestDeactivateProfileRemovesFromMatching(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.roommateRepo.Create(ctx, seekerProfile(1, quietLifestyle())))
	require.NoError(t, env.roommateRepo.Create(ctx, seekerProfile(2, quietLifestyle())))

	require.NoError(t, env.uc.DeactivateProfile(ctx, 2, 10))

	_, err := env.uc.GetMyProfile(ctx, 2, 10)
	assert.ErrorIs(t, err, domain.ErrRoommateProfileNotFound)

	matches, err := env.uc.FindMatches(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
