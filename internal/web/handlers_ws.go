package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"zigbee-zcl/internal/sniffer"
)

// WSHub manages WebSocket connections and fans pipeline events out to them.
type WSHub struct {
	clients map[*wsClient]struct{}
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan sniffer.Event

	done     chan struct{}
	stopOnce sync.Once
}

type wsClient struct {
	conn  *websocket.Conn
	send  chan []byte
	match func(sniffer.Event) bool // nil accepts everything
}

func (c *wsClient) wants(ev sniffer.Event) bool {
	return c.match == nil || c.match(ev)
}

func NewWSHub(logger *slog.Logger) *WSHub {
	return &WSHub{
		clients:    make(map[*wsClient]struct{}),
		logger:     logger,
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan sniffer.Event, 256),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until Stop is called.
func (h *WSHub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("ws client connected", "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("ws client disconnected", "total", total)

		case ev := <-h.broadcast:
			h.fanOut(ev)
		}
	}
}

func (h *WSHub) fanOut(ev sniffer.Event) {
	var data []byte
	h.mu.Lock()
	defer h.mu.Unlock()
	var slow []*wsClient
	for client := range h.clients {
		if !client.wants(ev) {
			continue
		}
		if data == nil {
			var err error
			if data, err = json.Marshal(ev); err != nil {
				h.logger.Error("ws marshal", "err", err)
				return
			}
		}
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	for _, client := range slow {
		delete(h.clients, client)
		close(client.send)
		h.logger.Warn("ws client evicted (too slow)")
	}
}

// Stop closes every client. Calling it again is a no-op.
func (h *WSHub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

// Broadcast queues an event for every interested client without blocking.
func (h *WSHub) Broadcast(ev sniffer.Event) {
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("ws broadcast channel full, dropping event")
	}
}

// streamFilter builds a client filter from the query string:
//
//	cluster=<name>   only frames decoded against that cluster
//	errors=false     drop frame_error events
//	state=false      drop source_state events
func streamFilter(r *http.Request) (func(sniffer.Event) bool, error) {
	q := r.URL.Query()
	cluster := q.Get("cluster")
	errs, state := true, true
	for name, dst := range map[string]*bool{"errors": &errs, "state": &state} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, err
			}
			*dst = b
		}
	}
	if cluster == "" && errs && state {
		return nil, nil
	}
	return func(ev sniffer.Event) bool {
		switch ev.Type {
		case sniffer.EventSourceState:
			return state
		case sniffer.EventFrameError:
			return errs && cluster == ""
		case sniffer.EventFrameDecoded:
			if cluster == "" {
				return true
			}
			fe, ok := ev.Data.(*sniffer.FrameEvent)
			return ok && fe.Frame != nil && fe.Frame.MatchesCluster(cluster)
		}
		return true
	}, nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	match, err := streamFilter(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid stream filter")
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(s.allowedOrigins) > 0 {
		opts.OriginPatterns = s.allowedOrigins
	}
	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		s.logger.Error("ws accept", "err", err)
		return
	}

	conn.SetReadLimit(4096)

	client := &wsClient{
		conn:  conn,
		send:  make(chan []byte, 64),
		match: match,
	}

	select {
	case s.wsHub.register <- client:
	case <-s.wsHub.done:
		conn.Close(websocket.StatusGoingAway, "server shutdown")
		return
	}

	go s.wsWritePump(client)
	s.wsReadPump(client)
}

func (s *Server) wsWritePump(client *wsClient) {
	for msg := range client.send {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := client.conn.Write(ctx, websocket.MessageText, msg)
		cancel()
		if err != nil {
			return
		}
	}
	client.conn.Close(websocket.StatusNormalClosure, "")
}

// wsReadPump drains client messages until the connection or the hub goes
// away. The stream is one-way; incoming messages are discarded.
func (s *Server) wsReadPump(client *wsClient) {
	defer func() {
		select {
		case s.wsHub.unregister <- client:
		case <-s.wsHub.done:
			client.conn.Close(websocket.StatusGoingAway, "server shutdown")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-s.wsHub.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		if _, _, err := client.conn.Read(ctx); err != nil {
			return
		}
	}
}
