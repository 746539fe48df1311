package schedule

import (
	"context"
	"sync"

	"gymdesk/internal/domain"
	"gymdesk/internal/pkg/format"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is a real-time schedule change pushed to connected boards.
// At is the wall-clock HH:MM the event was emitted, for the board's
// activity ticker.
type Event struct {
	Type    string      `json:"type"`
	At      string      `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventBookingCreated   = "booking_created"
	EventBookingUpdated   = "booking_updated"
	EventBookingCancelled = "booking_cancelled"
	EventBookingDeleted   = "booking_deleted"
)

// Hub fans schedule events out to every connected board. A write
// failure drops that connection; it never fails the booking operation
// that produced the event.
type Hub struct {
	connections map[int64]*websocket.Conn
	nextID      int64
	mutex       sync.RWMutex
	log         *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
		log:         log,
	}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	h.connections[h.nextID] = conn
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[id]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, id)
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Broadcast(event Event) {
	if event.At == "" {
		event.At = format.NowClock()
	}

	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.log.Warn("dropping schedule board connection",
				zap.Int64("conn_id", id), zap.Error(err))
			h.Unregister(id)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}

func (h *Hub) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	h.Broadcast(Event{Type: EventBookingCreated, Payload: b})
	return nil
}

func (h *Hub) NotifyBookingUpdated(ctx context.Context, b *domain.Booking) error {
	h.Broadcast(Event{Type: EventBookingUpdated, Payload: b})
	return nil
}

func (h *Hub) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error {
	h.Broadcast(Event{Type: EventBookingCancelled, Payload: b})
	return nil
}

func (h *Hub) NotifyBookingDeleted(ctx context.Context, id int64) error {
	h.Broadcast(Event{Type: EventBookingDeleted, Payload: map[string]int64{"id": id}})
	return nil
}
