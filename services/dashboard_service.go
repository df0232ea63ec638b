package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotel-frontdesk/models"
)

// DashboardService merges the backend's revenue report and activity feed
// with occupancy figures derived from the local cache. Remote data is
// cached until an activity_updated push invalidates it.
type DashboardService struct {
	store  *GuestStore
	api    BackendAPI
	logger *zap.Logger
	ttl    time.Duration

	mu         sync.Mutex
	report     models.DashboardReport
	activities []models.Activity
	fetchedAt  time.Time
}

func NewDashboardService(store *GuestStore, api BackendAPI, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		api:    api,
		logger: logger,
		ttl:    time.Minute,
	}
}

// Invalidate drops the cached remote report; the next Dashboard call
// refetches it.
func (s *DashboardService) Invalidate() {
	s.mu.Lock()
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}

// Dashboard assembles the full dashboard. Remote fetch failures degrade to
// the last known report; occupancy is always computed from the live cache.
func (s *DashboardService) Dashboard(ctx context.Context) models.Dashboard {
	s.mu.Lock()
	stale := time.Since(s.fetchedAt) > s.ttl
	s.mu.Unlock()

	if stale {
		s.refresh(ctx)
	}

	s.mu.Lock()
	dash := models.Dashboard{
		Report:     s.report,
		Activities: s.activities,
	}
	s.mu.Unlock()

	dash.Occupancy = s.occupancy()
	return dash
}

func (s *DashboardService) refresh(ctx context.Context) {
	report, rErr := s.api.DashboardReport(ctx)
	acts, aErr := s.api.ListActivities(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if rErr != nil {
		s.logger.Warn("dashboard report fetch failed", zap.Error(rErr))
	} else {
		s.report = report
	}
	if aErr != nil {
		s.logger.Warn("activities fetch failed", zap.Error(aErr))
	} else {
		s.activities = acts
	}
	if rErr == nil && aErr == nil {
		s.fetchedAt = time.Now()
	}
}

func (s *DashboardService) occupancy() models.OccupancySummary {
	var sum models.OccupancySummary

	rooms := s.store.Rooms()
	sum.TotalRooms = len(rooms)
	for _, r := range rooms {
		switch r.Status {
		case models.RoomOccupied:
			sum.OccupiedRooms++
		case models.RoomAvailable:
			sum.AvailableRooms++
		}
	}
	if sum.TotalRooms > 0 {
		sum.OccupancyPercent = float64(sum.OccupiedRooms) / float64(sum.TotalRooms) * 100
	}

	for _, g := range s.store.Guests() {
		switch g.Status {
		case models.StatusCheckedIn:
			sum.CheckedInGuests++
			sum.OutstandingBalance += g.BalanceDue()
		case models.StatusReserved:
			sum.ReservedGuests++
		}
	}
	return sum
}
