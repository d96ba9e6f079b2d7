package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-listing-backend/internal/model"
)

func createTestSlot(t *testing.T, s *gormStore, apartmentID int64, owner string) *model.ReserveChoice {
	t.Helper()
	slot, err := s.CreateSlot(context.Background(), apartmentID, owner, "2021-05-01", "10:00:00", "11:00:00")
	require.NoError(t, err)
	return slot
}

func TestCreateReserveDerivesApartment(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	apartment := createTestApartment(t, s, "landlord")
	slot := createTestSlot(t, s, apartment.ID, "landlord")

	reserve, err := s.CreateReserve(ctx, slot.ID, "tenant")
	require.NoError(t, err)
	assert.Equal(t, apartment.ID, reserve.ApartmentID)
	assert.Equal(t, slot.ID, reserve.ReserveChoiceID)
	assert.Equal(t, "tenant", reserve.Username)
	assert.False(t, reserve.Cancelled)
}

func TestCreateReserveMissingSlot(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateReserve(context.Background(), 404, "tenant")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreateReserveSharedSlot(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	apartment := createTestApartment(t, s, "landlord")
	slot := createTestSlot(t, s, apartment.ID, "landlord")

	// Two tenants booking the same window is a group viewing, not a conflict.
	_, err := s.CreateReserve(ctx, slot.ID, "tenant-a")
	require.NoError(t, err)
	_, err = s.CreateReserve(ctx, slot.ID, "tenant-b")
	require.NoError(t, err)
}

func TestReservePartyChecks(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	apartment := createTestApartment(t, s, "landlord")
	slot := createTestSlot(t, s, apartment.ID, "landlord")
	reserve, err := s.CreateReserve(ctx, slot.ID, "tenant")
	require.NoError(t, err)

	_, err = s.GetReserve(ctx, reserve.ID, "stranger")
	require.Error(t, err)
	assert.True(t, IsNotAuthorized(err))

	got, err := s.GetReserve(ctx, reserve.ID, "landlord")
	require.NoError(t, err)
	assert.Equal(t, reserve.ID, got.ID)

	_, err = s.SetReserveCancelled(ctx, reserve.ID, "stranger", true)
	require.Error(t, err)
	assert.True(t, IsNotAuthorized(err))

	cancelled, err := s.SetReserveCancelled(ctx, reserve.ID, "tenant", true)
	require.NoError(t, err)
	assert.True(t, cancelled.Cancelled)

	// Cancelled bookings stay readable; the row is never removed.
	got, err = s.GetReserve(ctx, reserve.ID, "tenant")
	require.NoError(t, err)
	assert.True(t, got.Cancelled)
}

func TestListReservesScoping(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	apartment := createTestApartment(t, s, "landlord")
	slot := createTestSlot(t, s, apartment.ID, "landlord")

	_, err := s.CreateReserve(ctx, slot.ID, "tenant-a")
	require.NoError(t, err)
	_, err = s.CreateReserve(ctx, slot.ID, "tenant-b")
	require.NoError(t, err)

	// The owner sees every booking on their apartment.
	all, err := s.ListReserves(ctx, ListReservesParams{ApartmentID: apartment.ID}, "landlord")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Anyone else may not filter by an apartment they do not own.
	_, err = s.ListReserves(ctx, ListReservesParams{ApartmentID: apartment.ID}, "tenant-a")
	require.Error(t, err)
	assert.True(t, IsNotAuthorized(err))

	// Without an apartment filter the listing is scoped to the requester.
	own, err := s.ListReserves(ctx, ListReservesParams{}, "tenant-a")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "tenant-a", own[0].Username)

	// Asking for another user's bookings by name is refused.
	_, err = s.ListReserves(ctx, ListReservesParams{Username: "tenant-b"}, "tenant-a")
	require.Error(t, err)
	assert.True(t, IsNotAuthorized(err))
}
