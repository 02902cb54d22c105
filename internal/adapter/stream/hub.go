package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hermes-ido/internal/core/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	// sendBuffer is how many events a subscriber may lag behind before it
	// is disconnected.
	sendBuffer = 64
)

type subscriber struct {
	campaignID *int64
	send       chan []byte
}

func (s *subscriber) wants(evt domain.Event) bool {
	return s.campaignID == nil || *s.campaignID == evt.CampaignID
}

// Hub fans committed events out to websocket subscribers. It implements
// port.EventPublisher and http.Handler.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

// NewHub returns a hub with no subscribers.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		subs: make(map[*subscriber]struct{}),
	}
}

// Publish queues evt for every interested subscriber. Subscribers whose
// buffer is full are dropped.
func (h *Hub) Publish(_ context.Context, evt domain.Event) error {
	msg, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs {
		if !s.wants(evt) {
			continue
		}
		select {
		case s.send <- msg:
		default:
			h.logger.Warn("dropping slow event subscriber")
			delete(h.subs, s)
			close(s.send)
		}
	}
	return nil
}

// Subscribers reports the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// ServeHTTP upgrades the request to a websocket and streams events until
// the client goes away. The optional campaign query parameter restricts
// the stream to one campaign.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sub := &subscriber{send: make(chan []byte, sendBuffer)}
	if raw := r.URL.Query().Get("campaign"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid campaign", http.StatusBadRequest)
			return
		}
		sub.campaignID = &id
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", slog.Any("error", err))
		return
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go h.readLoop(conn, sub)
	h.writeLoop(conn, sub)
}

// readLoop discards client messages and unregisters the subscriber once
// the connection fails.
func (h *Hub) readLoop(conn *websocket.Conn, sub *subscriber) {
	defer h.remove(sub)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()
	for {
		select {
		case msg, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.remove(sub)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(sub)
				return
			}
		}
	}
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.send)
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs {
		delete(h.subs, s)
		close(s.send)
	}
}
