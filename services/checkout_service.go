package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

// UpdateDraftRequest carries edits to an open checkout draft. Nil fields
// are left alone. Setting AdditionalCharges re-derives the final amount
// from the original total; setting FinalAmount directly overrides that
// derivation until additional charges change again.
type UpdateDraftRequest struct {
	CheckoutDate      *string  `json:"checkoutDate,omitempty"`
	AdditionalCharges *float64 `json:"additionalCharges,omitempty"`
	FinalAmount       *float64 `json:"finalAmount,omitempty"`
	PaymentMethod     *string  `json:"paymentMethod,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// CheckoutService runs the checkout state machine, one draft per guest:
// idle -> drafting -> submitting -> idle. Drafts live in memory only.
type CheckoutService struct {
	store     *GuestStore
	api       BackendAPI
	validator *GuestValidator
	logger    *zap.Logger

	mu     sync.Mutex
	drafts map[int]*models.CheckoutDraft
}

func NewCheckoutService(store *GuestStore, api BackendAPI, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		store:     store,
		api:       api,
		validator: NewGuestValidator(),
		logger:    logger,
		drafts:    make(map[int]*models.CheckoutDraft),
	}
}

// Begin opens a draft for a checked-in guest, seeded with today's date and
// the guest's current total. Beginning again while a draft is open returns
// the open draft unchanged.
func (s *CheckoutService) Begin(guestID int) (models.CheckoutDraft, error) {
	guest, ok := s.store.Guest(guestID)
	if !ok {
		return models.CheckoutDraft{}, ErrGuestNotFound
	}
	if guest.Status != models.StatusCheckedIn {
		return models.CheckoutDraft{}, ErrNotCheckedIn
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.drafts[guestID]; ok {
		return *existing, nil
	}

	draft := &models.CheckoutDraft{
		ID:            uuid.NewString(),
		GuestID:       guest.ID,
		GuestName:     guest.Name,
		State:         models.DraftDrafting,
		CheckoutDate:  utils.TodayDisplay(),
		OriginalTotal: guest.TotalAmount,
		FinalAmount:   guest.TotalAmount,
		PaymentMethod: models.PaymentCash,
	}
	s.drafts[guestID] = draft
	return *draft, nil
}

// Draft returns the open draft for a guest.
func (s *CheckoutService) Draft(guestID int) (models.CheckoutDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[guestID]
	if !ok {
		return models.CheckoutDraft{}, ErrNoDraft
	}
	return *draft, nil
}

// Update applies edits to an open draft.
func (s *CheckoutService) Update(guestID int, req UpdateDraftRequest) (models.CheckoutDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[guestID]
	if !ok {
		return models.CheckoutDraft{}, ErrNoDraft
	}
	if draft.State != models.DraftDrafting {
		return models.CheckoutDraft{}, ErrDraftSubmitting
	}

	if req.CheckoutDate != nil {
		draft.CheckoutDate = utils.AutoFormatDate(*req.CheckoutDate)
	}
	if req.AdditionalCharges != nil {
		draft.AdditionalCharges = *req.AdditionalCharges
		draft.FinalAmount = draft.OriginalTotal + draft.AdditionalCharges
		draft.FinalOverridden = false
	}
	if req.FinalAmount != nil {
		draft.FinalAmount = *req.FinalAmount
		draft.FinalOverridden = true
	}
	if req.PaymentMethod != nil {
		draft.PaymentMethod = *req.PaymentMethod
	}
	if req.Notes != nil {
		draft.Notes = *req.Notes
	}
	return *draft, nil
}

// Submit validates the draft and transitions the guest to checked-out on
// the backend, with paid amount forced equal to the final amount. On
// success the draft is cleared and a notification message naming the guest
// is returned; on backend failure the draft stays open for retry.
func (s *CheckoutService) Submit(ctx context.Context, guestID int) (models.Guest, string, error) {
	s.mu.Lock()
	draft, ok := s.drafts[guestID]
	if !ok {
		s.mu.Unlock()
		return models.Guest{}, "", ErrNoDraft
	}
	if draft.State != models.DraftDrafting {
		s.mu.Unlock()
		return models.Guest{}, "", ErrDraftSubmitting
	}
	if err := s.validator.ValidateCheckout(*draft); err != nil {
		s.mu.Unlock()
		return models.Guest{}, "", err
	}
	draft.State = models.DraftSubmitting
	snapshot := *draft
	s.mu.Unlock()

	updated, err := s.api.UpdateGuest(ctx, guestID, map[string]any{
		"status":        models.StatusCheckedOut,
		"checkOutDate":  utils.ToBackendDate(snapshot.CheckoutDate),
		"totalAmount":   snapshot.FinalAmount,
		"paidAmount":    snapshot.FinalAmount,
		"paymentMethod": snapshot.PaymentMethod,
		"notes":         snapshot.Notes,
	})
	if err != nil {
		s.mu.Lock()
		if d, ok := s.drafts[guestID]; ok {
			d.State = models.DraftDrafting
		}
		s.mu.Unlock()
		return models.Guest{}, "", fmt.Errorf("submit checkout: %w", err)
	}

	s.store.ApplyGuestUpdated(updated)
	s.mu.Lock()
	delete(s.drafts, guestID)
	s.mu.Unlock()

	s.logger.Info("guest checked out",
		zap.Int("guest", guestID),
		zap.Float64("final", snapshot.FinalAmount),
	)
	return updated, fmt.Sprintf("%s checked out successfully", snapshot.GuestName), nil
}

// Cancel discards an open draft.
func (s *CheckoutService) Cancel(guestID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[guestID]
	if !ok {
		return ErrNoDraft
	}
	if draft.State != models.DraftDrafting {
		return ErrDraftSubmitting
	}
	delete(s.drafts, guestID)
	return nil
}
