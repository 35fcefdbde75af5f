package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type fakeReservationRepo struct {
	reservations map[int]*domain.Reservation
	nextID       int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[int]*domain.Reservation), nextID: 1}
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) error {
	reservation.ID = r.nextID
	r.nextID++
	copied := *reservation
	r.reservations[reservation.ID] = &copied
	return nil
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id int) (*domain.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeReservationRepo) ListByTenant(_ context.Context, tenantID int, _, _ int) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, res := range r.reservations {
		if res.TenantID == tenantID {
			copied := *res
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ListByProperty(_ context.Context, propertyID int, _, _ int) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, res := range r.reservations {
		if res.PropertyID == propertyID {
			copied := *res
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, id int, status domain.ReservationStatus) error {
	res, ok := r.reservations[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	res.Status = status
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

func (r *fakeNotificationRepo) MarkRead(_ context.Context, _, _ int) error        { return nil }
func (r *fakeNotificationRepo) CountUnread(_ context.Context, _ int) (int, error) { return 0, nil }

type testEnv struct {
	uc            *ReservationUseCase
	reservations  *fakeReservationRepo
	notifications *fakeNotificationRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	reservations := newFakeReservationRepo()
	notifications := &fakeNotificationRepo{}
	properties := &fakePropertyRepo{properties: map[int]*domain.Property{
		10: {ID: 10, OwnerID: 99, Title: "Sunny flat", IsActive: true},
		11: {ID: 11, OwnerID: 99, Title: "Dark basement", IsActive: false},
	}}

	uc := NewReservationUseCase(reservations, properties, notifications, zerolog.Nop())
	return &testEnv{uc: uc, reservations: reservations, notifications: notifications}
}

func createRequest() *CreateReservationRequest {
	return &CreateReservationRequest{
		PropertyID: 10,
		MoveInDate: time.Now().AddDate(0, 1, 0),
		Months:     6,
	}
}

func TestCreateReservationNotifiesLandlord(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.uc.Create(context.Background(), 5, createRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationPending, created.Status)

	require.Len(t, env.notifications.created, 1)
	assert.Equal(t, 99, env.notifications.created[0].UserID)
	assert.Equal(t, domain.NotificationReservationCreated, env.notifications.created[0].Type)
}

func TestCreateReservationOnInactiveListing(t *testing.T) {
	env := newTestEnv(t)

	req := createRequest()
	req.PropertyID = 11
	_, err := env.uc.Create(context.Background(), 5, req)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestCreateReservationOnOwnListing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Create(context.Background(), 99, createRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateReservationPastMoveIn(t *testing.T) {
	env := newTestEnv(t)

	req := createRequest()
	req.MoveInDate = time.Now().AddDate(0, 0, -2)
	_, err := env.uc.Create(context.Background(), 5, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApproveByLandlord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.uc.Create(ctx, 5, createRequest())
	require.NoError(t, err)

	landlord := &domain.User{ID: 99, Role: domain.RoleLandlord}
	approved, err := env.uc.Approve(ctx, created.ID, landlord)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationApproved, approved.Status)

	// Tenant is told about the decision.
	last := env.notifications.created[len(env.notifications.created)-1]
	assert.Equal(t, 5, last.UserID)
	assert.Equal(t, domain.NotificationReservationUpdated, last.Type)
}

func TestApproveByStrangerForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.uc.Create(ctx, 5, createRequest())
	require.NoError(t, err)

	stranger := &domain.User{ID: 7, Role: domain.RoleLandlord}
	_, err = env.uc.Approve(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApproveByAdminAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.uc.Create(ctx, 5, createRequest())
	require.NoError(t, err)

	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	approved, err := env.uc.Approve(ctx, created.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationApproved, approved.Status)
}

func TestDeclineAlreadyDecided(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.uc.Create(ctx, 5, createRequest())
	require.NoError(t, err)

	landlord := &domain.User{ID: 99, Role: domain.RoleLandlord}
	_, err = env.uc.Approve(ctx, created.ID, landlord)
	require.NoError(t, err)

	_, err = env.uc.Decline(ctx, created.ID, landlord)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancelByTenant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.uc.Create(ctx, 5, createRequest())
	require.NoError(t, err)

	cancelled, err := env.uc.Cancel(ctx, created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, cancelled.Status)
}

func TestCancelApprovedReservation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.uc.Create(ctx, 5, createRequest())
	require.NoError(t, err)

	landlord := &domain.User{ID: 99, Role: domain.RoleLandlord}
	_, err = env.uc.Approve(ctx, created.ID, landlord)
	require.NoError(t, err)

	cancelled, err := env.uc.Cancel(ctx, created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, cancelled.Status)
}

func TestCancelByOtherTenantForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.uc.Create(ctx, 5, createRequest())
	require.NoError(t, err)

	_, err = env.uc.Cancel(ctx, created.ID, 6)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
