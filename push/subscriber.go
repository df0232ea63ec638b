// Package push maintains the station's one long-lived connection to the
// backend's notification channel. Events arrive as {type, payload}
// envelopes and are handed to a single dispatch function in arrival order;
// the channel carries no sequence numbers, so the last event observed wins.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"hotel-frontdesk/models"
)

var errClosed = errors.New("subscriber closed")

type subscribeMessage struct {
	Action   string `json:"action"`
	ClientID string `json:"client_id"`
}

// Subscriber owns the websocket connection and reconnects with exponential
// backoff when it drops. Close tears it down exactly once; a closed
// subscriber never delivers again, so a remount gets a fresh instance.
type Subscriber struct {
	url      string
	clientID string
	logger   *zap.Logger
	onState  func(connected bool)

	mu   sync.Mutex
	conn *websocket.Conn

	once sync.Once
	done chan struct{}
}

func NewSubscriber(url string, logger *zap.Logger) *Subscriber {
	return &Subscriber{
		url:      url,
		clientID: uuid.NewString(),
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// NotifyState registers a callback invoked as the channel connects and
// drops. Register before Run.
func (s *Subscriber) NotifyState(fn func(connected bool)) {
	s.onState = fn
}

func (s *Subscriber) notify(connected bool) {
	if s.onState != nil {
		s.onState(connected)
	}
}

// Run connects and dispatches events until Close is called or ctx is
// cancelled. Dispatch runs on the read goroutine, so handlers see events
// strictly in arrival order.
func (s *Subscriber) Run(ctx context.Context, dispatch func(models.Event)) {
	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		default:
		}

		conn, err := s.connect(ctx)
		if err != nil {
			if !errors.Is(err, errClosed) && !errors.Is(err, context.Canceled) {
				s.logger.Error("push channel gave up", zap.Error(err))
			}
			return
		}

		// A Close that raced the dial wins: the fresh connection is
		// rejected and nothing from it may be dispatched.
		if !s.adopt(conn) {
			_ = conn.Close()
			return
		}
		s.logger.Info("push channel connected", zap.String("url", s.url))
		s.notify(true)

		s.readLoop(conn, dispatch)
		s.notify(false)
		s.setConn(nil)
	}
}

func (s *Subscriber) connect(ctx context.Context) (*websocket.Conn, error) {
	op := func() (*websocket.Conn, error) {
		select {
		case <-s.done:
			return nil, backoff.Permanent(errClosed)
		default:
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
		if err != nil {
			s.logger.Warn("push channel dial failed", zap.Error(err))
			return nil, err
		}
		sub := subscribeMessage{Action: "subscribe", ClientID: s.clientID}
		if err := conn.WriteJSON(sub); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return conn, nil
	}
	// The channel is a per-lifetime resource: retries never give up on
	// their own, only Close or ctx cancellation stop them.
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(0),
	)
}

// adopt records the connection for Close to find. It refuses when the
// subscriber was closed while the dial was in flight.
func (s *Subscriber) adopt(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return false
	default:
	}
	s.conn = conn
	return true
}

func (s *Subscriber) readLoop(conn *websocket.Conn, dispatch func(models.Event)) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
			default:
				s.logger.Warn("push channel read error", zap.Error(err))
			}
			_ = conn.Close()
			return
		}

		var evt models.Event
		if err := json.Unmarshal(data, &evt); err != nil {
			s.logger.Warn("push channel bad payload", zap.Error(err))
			continue
		}
		if evt.Type == "" {
			continue
		}
		dispatch(evt)
	}
}

func (s *Subscriber) setConn(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
}

// Close shuts the channel down. Safe to call more than once; only the
// first call has any effect.
func (s *Subscriber) Close() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		if s.conn != nil {
			_ = s.conn.Close()
		}
		s.mu.Unlock()
	})
}
