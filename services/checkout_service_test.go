package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

func newCheckoutService(f *fakeBackend, guests ...models.Guest) (*CheckoutService, *GuestStore) {
	store := NewGuestStore()
	store.ReplaceAll(guests, nil)
	return NewCheckoutService(store, f, zap.NewNop()), store
}

func checkedInGuest() models.Guest {
	return models.Guest{
		ID:          10,
		Name:        "Anna Varghese",
		RoomNumber:  "204",
		Status:      models.StatusCheckedIn,
		TotalAmount: 4500,
		PaidAmount:  2000,
	}
}

func TestBeginSeedsDraft(t *testing.T) {
	svc, _ := newCheckoutService(&fakeBackend{}, checkedInGuest())

	draft, err := svc.Begin(10)
	require.NoError(t, err)

	assert.Equal(t, models.DraftDrafting, draft.State)
	assert.Equal(t, utils.TodayDisplay(), draft.CheckoutDate)
	assert.Equal(t, 4500.0, draft.OriginalTotal)
	assert.Equal(t, 4500.0, draft.FinalAmount)
	assert.NotEmpty(t, draft.ID)
}

func TestBeginRejectsWrongStatus(t *testing.T) {
	g := checkedInGuest()
	g.Status = models.StatusReserved
	svc, _ := newCheckoutService(&fakeBackend{}, g)

	_, err := svc.Begin(10)
	assert.ErrorIs(t, err, ErrNotCheckedIn)

	_, err = svc.Begin(99)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestBeginTwiceReturnsOpenDraft(t *testing.T) {
	svc, _ := newCheckoutService(&fakeBackend{}, checkedInGuest())

	first, err := svc.Begin(10)
	require.NoError(t, err)

	charges := 500.0
	_, err = svc.Update(10, UpdateDraftRequest{AdditionalCharges: &charges})
	require.NoError(t, err)

	again, err := svc.Begin(10)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 5000.0, again.FinalAmount)
}

func TestAdditionalChargesDeriveFinalAmount(t *testing.T) {
	svc, _ := newCheckoutService(&fakeBackend{}, checkedInGuest())
	_, err := svc.Begin(10)
	require.NoError(t, err)

	charges := 500.0
	draft, err := svc.Update(10, UpdateDraftRequest{AdditionalCharges: &charges})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, draft.FinalAmount)
	assert.False(t, draft.FinalOverridden)
}

func TestFinalAmountOverrideSticksUntilChargesChange(t *testing.T) {
	svc, _ := newCheckoutService(&fakeBackend{}, checkedInGuest())
	_, err := svc.Begin(10)
	require.NoError(t, err)

	manual := 4800.0
	draft, err := svc.Update(10, UpdateDraftRequest{FinalAmount: &manual})
	require.NoError(t, err)
	assert.Equal(t, 4800.0, draft.FinalAmount)
	assert.True(t, draft.FinalOverridden)

	// editing notes leaves the override in place
	notes := "late checkout approved"
	draft, err = svc.Update(10, UpdateDraftRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, 4800.0, draft.FinalAmount)

	// changing charges re-links the derivation
	charges := 200.0
	draft, err = svc.Update(10, UpdateDraftRequest{AdditionalCharges: &charges})
	require.NoError(t, err)
	assert.Equal(t, 4700.0, draft.FinalAmount)
	assert.False(t, draft.FinalOverridden)
}

func TestSubmitForcesPaidEqualFinal(t *testing.T) {
	f := &fakeBackend{
		updatedGuest: models.Guest{
			ID: 10, Name: "Anna Varghese", Status: models.StatusCheckedOut,
			TotalAmount: 5000, PaidAmount: 5000,
		},
	}
	svc, store := newCheckoutService(f, checkedInGuest())
	_, err := svc.Begin(10)
	require.NoError(t, err)

	charges := 500.0
	_, err = svc.Update(10, UpdateDraftRequest{AdditionalCharges: &charges})
	require.NoError(t, err)

	guest, message, err := svc.Submit(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, f.guestUpdates, 1)
	fields := f.guestUpdates[0]
	assert.Equal(t, models.StatusCheckedOut, fields["status"])
	assert.Equal(t, 5000.0, fields["paidAmount"])
	assert.Equal(t, 5000.0, fields["totalAmount"])

	assert.Equal(t, models.StatusCheckedOut, guest.Status)
	assert.Contains(t, message, "Anna Varghese")

	// draft cleared, cache updated, machine back to idle
	_, err = svc.Draft(10)
	assert.ErrorIs(t, err, ErrNoDraft)
	cached, ok := store.Guest(10)
	require.True(t, ok)
	assert.Equal(t, models.StatusCheckedOut, cached.Status)
}

func TestSubmitValidatesDraft(t *testing.T) {
	svc, _ := newCheckoutService(&fakeBackend{}, checkedInGuest())
	_, err := svc.Begin(10)
	require.NoError(t, err)

	bad := "31-02-2024"
	_, err = svc.Update(10, UpdateDraftRequest{CheckoutDate: &bad})
	require.NoError(t, err)

	_, _, err = svc.Submit(context.Background(), 10)
	assert.Equal(t, "checkoutDate", fieldOf(t, err))

	good := utils.TodayDisplay()
	negative := -10.0
	_, err = svc.Update(10, UpdateDraftRequest{CheckoutDate: &good, FinalAmount: &negative})
	require.NoError(t, err)

	_, _, err = svc.Submit(context.Background(), 10)
	assert.Equal(t, "finalAmount", fieldOf(t, err))
}

func TestSubmitBackendFailureKeepsDraftForRetry(t *testing.T) {
	f := &fakeBackend{updateGuestErr: errors.New("backend down")}
	svc, _ := newCheckoutService(f, checkedInGuest())
	_, err := svc.Begin(10)
	require.NoError(t, err)

	_, _, err = svc.Submit(context.Background(), 10)
	require.Error(t, err)

	draft, err := svc.Draft(10)
	require.NoError(t, err)
	assert.Equal(t, models.DraftDrafting, draft.State)
}

func TestCancelDiscardsDraft(t *testing.T) {
	svc, _ := newCheckoutService(&fakeBackend{}, checkedInGuest())
	_, err := svc.Begin(10)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(10))
	_, err = svc.Draft(10)
	assert.ErrorIs(t, err, ErrNoDraft)

	assert.ErrorIs(t, svc.Cancel(10), ErrNoDraft)
}
