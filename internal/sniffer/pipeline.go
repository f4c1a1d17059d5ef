// Package sniffer decodes captured frames, persists them and publishes the
// results to the rest of the process.
package sniffer

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"zigbee-zcl/internal/capture"
	"zigbee-zcl/internal/source"
	"zigbee-zcl/internal/zcl"
)

// HexBytes marshals to a lowercase hex string.
type HexBytes []byte

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

// FrameEvent is a captured frame together with its decoded form, or the
// reason it could not be decoded.
type FrameEvent struct {
	ID               string     `json:"id,omitempty"`
	Source           string     `json:"source"`
	Time             time.Time  `json:"time"`
	ClusterID        uint16     `json:"clusterId"`
	ManufacturerHint uint16     `json:"manufacturerHint,omitempty"`
	Raw              HexBytes   `json:"raw"`
	Frame            *zcl.Frame `json:"frame,omitempty"`
	Error            string     `json:"error,omitempty"`
}

// Stats counts frames seen by the pipeline since it was created.
type Stats struct {
	Decoded uint64 `json:"decoded"`
	Failed  uint64 `json:"failed"`
	Stored  uint64 `json:"stored"`
}

// Pipeline decodes raw frames through the registry. Frames arrive from
// sources started by Run or from Submit.
type Pipeline struct {
	registry *zcl.Registry
	store    capture.Store // nil disables persistence
	events   *EventBus
	logger   *slog.Logger
	in       chan source.RawFrame

	decoded atomic.Uint64
	failed  atomic.Uint64
	stored  atomic.Uint64
}

func NewPipeline(registry *zcl.Registry, store capture.Store, events *EventBus, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		registry: registry,
		store:    store,
		events:   events,
		logger:   logger,
		in:       make(chan source.RawFrame, 64),
	}
}

func (p *Pipeline) Registry() *zcl.Registry { return p.registry }

func (p *Pipeline) Events() *EventBus { return p.events }

// Store returns the capture store, nil when persistence is disabled.
func (p *Pipeline) Store() capture.Store { return p.store }

func (p *Pipeline) Stats() Stats {
	return Stats{Decoded: p.decoded.Load(), Failed: p.failed.Load(), Stored: p.stored.Load()}
}

// Decode decodes f without storing or publishing it.
func (p *Pipeline) Decode(f source.RawFrame) *FrameEvent {
	ev := &FrameEvent{
		Source:           f.Source,
		Time:             f.Time,
		ClusterID:        f.ClusterID,
		ManufacturerHint: f.ManufacturerHint,
		Raw:              f.Data,
	}
	frame, err := p.registry.ParseFrame(f.ClusterID, f.Data, f.ManufacturerHint)
	if err != nil {
		ev.Error = err.Error()
		return ev
	}
	ev.Frame = frame
	return ev
}

// DecodeRecord rebuilds the event for a stored capture against the current
// registry.
func (p *Pipeline) DecodeRecord(rec *capture.Record) *FrameEvent {
	ev := p.Decode(source.RawFrame{
		Source:           rec.Source,
		Time:             rec.Time,
		ClusterID:        rec.ClusterID,
		ManufacturerHint: rec.ManufacturerHint,
		Data:             rec.Raw,
	})
	ev.ID = rec.ID
	return ev
}

// Process decodes f, stores it and publishes the result on the event bus.
// A failing store is logged; the frame is still published.
func (p *Pipeline) Process(f source.RawFrame) *FrameEvent {
	if f.Time.IsZero() {
		f.Time = time.Now()
	}
	ev := p.Decode(f)
	if ev.Error != "" {
		p.failed.Add(1)
		p.logger.Debug("frame decode failed", "source", f.Source, "cluster", f.ClusterID, "err", ev.Error)
	} else {
		p.decoded.Add(1)
	}

	if p.store != nil {
		rec := &capture.Record{
			Source:           f.Source,
			ClusterID:        f.ClusterID,
			ManufacturerHint: f.ManufacturerHint,
			Raw:              f.Data,
			Error:            ev.Error,
		}
		if id, err := p.store.Save(rec); err != nil {
			p.logger.Error("store capture", "err", err)
		} else {
			ev.ID = id
			ev.Time = rec.Time
			p.stored.Add(1)
		}
	}

	if ev.Error != "" {
		p.events.Emit(Event{Type: EventFrameError, Data: ev})
	} else {
		p.events.Emit(Event{Type: EventFrameDecoded, Data: ev})
	}
	return ev
}

// Submit queues f for the Run loop. It blocks while the queue is full.
func (p *Pipeline) Submit(ctx context.Context, f source.RawFrame) error {
	select {
	case p.in <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts every source and processes frames until ctx is cancelled.
// Sources that end early are reported on the bus; Run keeps serving Submit.
func (p *Pipeline) Run(ctx context.Context, sources ...source.Source) error {
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src source.Source) {
			defer wg.Done()
			p.logger.Info("source started", "source", src.Name())
			p.events.Emit(Event{Type: EventSourceState, Data: SourceState{Source: src.Name(), Running: true}})

			err := src.Run(ctx, p.in)
			state := SourceState{Source: src.Name()}
			if err != nil && ctx.Err() == nil {
				state.Error = err.Error()
				p.logger.Error("source stopped", "source", src.Name(), "err", err)
			} else {
				p.logger.Info("source stopped", "source", src.Name())
			}
			p.events.Emit(Event{Type: EventSourceState, Data: state})
		}(src)
	}

	for {
		select {
		case f := <-p.in:
			p.Process(f)
		case <-ctx.Done():
			wg.Wait()
			return nil
		}
	}
}
