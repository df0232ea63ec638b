package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

// BackendAPI is the slice of the remote hotel backend the station consumes.
// *backend.Client satisfies it; tests substitute fakes.
type BackendAPI interface {
	ListGuests(ctx context.Context) ([]models.Guest, error)
	CreateGuest(ctx context.Context, g models.Guest) (models.Guest, error)
	UpdateGuest(ctx context.Context, id int, fields map[string]any) (models.Guest, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	UpdateRoom(ctx context.Context, id int, fields map[string]any) (models.Room, error)
	ListActivities(ctx context.Context) ([]models.Activity, error)
	DashboardReport(ctx context.Context) (models.DashboardReport, error)
}

// SyncStatus describes how fresh the cache is: last load, push-channel
// state, and whether the last load degraded to the built-in sample
// dataset.
type SyncStatus struct {
	LastLoad        time.Time `json:"lastLoad"`
	LoadError       string    `json:"loadError,omitempty"`
	UsingSampleData bool      `json:"usingSampleData"`
	PushConnected   bool      `json:"pushConnected"`
	LastEvent       time.Time `json:"lastEvent"`
}

// GuestService owns the guest cache: it loads it, keeps it in step with
// push events, and runs the add-guest flow.
type GuestService struct {
	store     *GuestStore
	api       BackendAPI
	validator *GuestValidator
	logger    *zap.Logger

	mu            sync.Mutex
	lastLoad      time.Time
	loadErr       string
	usingSample   bool
	pushConnected bool
	lastEvent     time.Time
}

func NewGuestService(store *GuestStore, api BackendAPI, logger *zap.Logger) *GuestService {
	return &GuestService{
		store:     store,
		api:       api,
		validator: NewGuestValidator(),
		logger:    logger,
	}
}

// Store exposes the underlying cache for read-side collaborators.
func (s *GuestService) Store() *GuestStore {
	return s.store
}

// LoadAll fetches the guest and room lists and replaces the cache
// wholesale. On any failure the cache degrades to the built-in sample
// dataset and the error is kept visible in Status until a load succeeds.
func (s *GuestService) LoadAll(ctx context.Context) error {
	guests, gErr := s.api.ListGuests(ctx)
	rooms, rErr := s.api.ListRooms(ctx)

	if gErr != nil || rErr != nil {
		err := gErr
		if err == nil {
			err = rErr
		}
		s.logger.Error("load failed, falling back to sample data", zap.Error(err))
		s.store.ReplaceAll(sampleGuests(), sampleRooms())
		s.mu.Lock()
		s.loadErr = err.Error()
		s.usingSample = true
		s.mu.Unlock()
		return fmt.Errorf("load guests and rooms: %w", err)
	}

	s.store.ReplaceAll(guests, rooms)
	s.mu.Lock()
	s.lastLoad = time.Now()
	s.loadErr = ""
	s.usingSample = false
	s.mu.Unlock()
	s.logger.Info("cache loaded", zap.Int("guests", len(guests)), zap.Int("rooms", len(rooms)))
	return nil
}

// SetPushConnected records the push channel's connection state; a dead
// channel shows up in Status so the desk can warn about stale data.
func (s *GuestService) SetPushConnected(connected bool) {
	s.mu.Lock()
	s.pushConnected = connected
	s.mu.Unlock()
}

// Status reports the current sync state.
func (s *GuestService) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SyncStatus{
		LastLoad:        s.lastLoad,
		LoadError:       s.loadErr,
		UsingSampleData: s.usingSample,
		PushConnected:   s.pushConnected,
		LastEvent:       s.lastEvent,
	}
}

// Search returns the display projection for the given query and status
// filter.
func (s *GuestService) Search(query, status string) []models.Guest {
	return s.store.Projection(query, status)
}

// AddGuest runs the validation gate, creates the guest on the backend,
// marks the room occupied, and refreshes the guest list. A validation
// failure returns before any network call; a network failure leaves the
// cache untouched.
func (s *GuestService) AddGuest(ctx context.Context, req AddGuestRequest) (models.Guest, error) {
	if err := s.validator.ValidateAdd(req, s.store.RoomHeldByCheckedIn); err != nil {
		return models.Guest{}, err
	}

	guest := buildGuest(req)
	created, err := s.api.CreateGuest(ctx, guest)
	if err != nil {
		return models.Guest{}, fmt.Errorf("create guest: %w", err)
	}

	if room, ok := s.store.RoomByNumber(req.RoomNumber); ok {
		_, err := s.api.UpdateRoom(ctx, room.ID, map[string]any{
			"status":       models.RoomOccupied,
			"currentGuest": created.Name,
			"checkInDate":  created.CheckInDate,
			"checkOutDate": created.CheckOutDate,
		})
		if err != nil {
			// Guest exists either way; the room record catches up on the
			// next room_updated push or full reload.
			s.logger.Warn("room status update failed after guest create",
				zap.String("room", req.RoomNumber), zap.Error(err))
		}
	} else {
		s.logger.Warn("created guest references unknown room", zap.String("room", req.RoomNumber))
	}

	if err := s.refreshGuests(ctx); err != nil {
		s.logger.Warn("guest list refresh failed, merging created record", zap.Error(err))
		s.store.PrependGuest(created)
	}
	return created, nil
}

func (s *GuestService) refreshGuests(ctx context.Context) error {
	guests, err := s.api.ListGuests(ctx)
	if err != nil {
		return err
	}
	s.store.ReplaceGuests(guests)
	return nil
}

// HandleEvent is the push-channel reducer for the guest cache. Events are
// applied in arrival order with no version check; a stale event can win
// over a newer edit, which is the accepted consistency model.
func (s *GuestService) HandleEvent(evt models.Event) {
	s.mu.Lock()
	s.lastEvent = time.Now()
	s.mu.Unlock()

	switch evt.Type {
	case models.EventGuestUpdated:
		g, err := decodeGuest(evt)
		if err != nil {
			s.logger.Warn("bad guest_updated payload", zap.Error(err))
			return
		}
		if !s.store.ApplyGuestUpdated(g) {
			s.logger.Debug("guest_updated for unknown guest dropped", zap.Int("id", g.ID))
		}
	case models.EventGuestCreated:
		g, err := decodeGuest(evt)
		if err != nil {
			s.logger.Warn("bad guest_created payload", zap.Error(err))
			return
		}
		s.store.PrependGuest(g)
	case models.EventRoomUpdated, models.EventRoomShifted:
		// Room payloads are not merged piecemeal; the whole cache is
		// refetched instead.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.LoadAll(ctx); err != nil {
			s.logger.Warn("reload after room event failed", zap.Error(err))
		}
	}
}

func decodeGuest(evt models.Event) (models.Guest, error) {
	var g models.Guest
	if err := json.Unmarshal(evt.Payload, &g); err != nil {
		return models.Guest{}, err
	}
	return g, nil
}

func buildGuest(req AddGuestRequest) models.Guest {
	g := models.Guest{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		IDProof:      composeIDProof(req.IDProofType, req.IDProofNumber),
		RoomNumber:   strings.TrimSpace(req.RoomNumber),
		CheckInDate:  utils.ToBackendDate(req.CheckInDate),
		CheckOutDate: utils.ToBackendDate(req.CheckOutDate),
		Status:       models.StatusCheckedIn,
		Category:     req.Category,
	}
	if g.Category == "" {
		g.Category = models.CategorySolo
	}

	if req.Complimentary {
		g.Complimentary = true
		// Complimentary stays carry no bill at all.
		g.TotalAmount = 0
		g.PaidAmount = 0
	} else {
		g.TotalAmount = req.TotalAmount + req.ExtraBedTotal()
		g.PaidAmount = req.PaidAmount
	}

	if sec := req.SecondaryGuest; sec != nil && sec.Enabled {
		g.SecondaryGuest = &models.SecondaryGuest{
			Name:    strings.TrimSpace(sec.Name),
			Phone:   strings.TrimSpace(sec.Phone),
			IDProof: composeIDProof(sec.IDProofType, sec.IDProofNumber),
		}
	}
	for _, bed := range req.ExtraBeds {
		g.ExtraBeds = append(g.ExtraBeds, models.ExtraBed{
			Name:    strings.TrimSpace(bed.Name),
			Phone:   strings.TrimSpace(bed.Phone),
			IDProof: composeIDProof(bed.IDProofType, bed.IDProofNumber),
			Charge:  bed.Charge,
		})
	}
	return g
}

func composeIDProof(idType, number string) string {
	idType = strings.TrimSpace(idType)
	number = strings.TrimSpace(number)
	if idType == "" {
		return number
	}
	return idType + "-" + number
}
