package sniffer

import (
	"log/slog"
	"sync"
)

// Event types
const (
	EventFrameDecoded = "frame_decoded"
	EventFrameError   = "frame_error"
	EventSourceState  = "source_state"
	EventScriptLog    = "script_log"
)

// Event is published on the bus. Data is a *FrameEvent for the frame events,
// a SourceState for EventSourceState and a ScriptLog for EventScriptLog.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// SourceState reports a capture source starting or stopping.
type SourceState struct {
	Source  string `json:"source"`
	Running bool   `json:"running"`
	Error   string `json:"error,omitempty"`
}

// ScriptLog is a message logged by a frame hook script.
type ScriptLog struct {
	Script  string `json:"script"`
	Message string `json:"message"`
}

type EventHandler func(Event)

// EventBus provides pub/sub for pipeline events.
type EventBus struct {
	mu          sync.RWMutex
	handlers    map[string]map[uint64]EventHandler
	allHandlers map[uint64]EventHandler
	nextID      uint64
	logger      *slog.Logger
}

func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{
		handlers:    make(map[string]map[uint64]EventHandler),
		allHandlers: make(map[uint64]EventHandler),
		logger:      logger,
	}
}

// On registers a handler for one event type and returns its unsubscribe
// function.
func (eb *EventBus) On(eventType string, handler EventHandler) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	id := eb.nextID
	eb.nextID++
	if eb.handlers[eventType] == nil {
		eb.handlers[eventType] = make(map[uint64]EventHandler)
	}
	eb.handlers[eventType][id] = handler
	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		delete(eb.handlers[eventType], id)
	}
}

// OnAll registers a handler that receives every event.
func (eb *EventBus) OnAll(handler EventHandler) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	id := eb.nextID
	eb.nextID++
	eb.allHandlers[id] = handler
	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		delete(eb.allHandlers, id)
	}
}

// Subscribe returns a channel that receives events of the given types, or of
// every type when none are given. Events are dropped while the channel is
// full. The channel is never closed; stop reading after calling cancel.
func (eb *EventBus) Subscribe(size int, types ...string) (<-chan Event, func()) {
	ch := make(chan Event, size)
	deliver := func(e Event) {
		select {
		case ch <- e:
		default:
			eb.logger.Debug("subscriber full, event dropped", "type", e.Type)
		}
	}
	if len(types) == 0 {
		return ch, eb.OnAll(deliver)
	}
	cancels := make([]func(), 0, len(types))
	for _, t := range types {
		cancels = append(cancels, eb.On(t, deliver))
	}
	return ch, func() {
		for _, c := range cancels {
			c()
		}
	}
}

// Emit calls every matching handler synchronously. A panicking handler is
// recovered and logged.
func (eb *EventBus) Emit(event Event) {
	eb.mu.RLock()
	handlers := make([]EventHandler, 0, len(eb.handlers[event.Type])+len(eb.allHandlers))
	for _, h := range eb.handlers[event.Type] {
		handlers = append(handlers, h)
	}
	for _, h := range eb.allHandlers {
		handlers = append(handlers, h)
	}
	eb.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					eb.logger.Error("event handler panic", "type", event.Type, "panic", r)
				}
			}()
			h(event)
		}()
	}
}
