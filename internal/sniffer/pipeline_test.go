package sniffer

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"zigbee-zcl/internal/capture"
	"zigbee-zcl/internal/source"
	"zigbee-zcl/internal/zcl"
	"zigbee-zcl/internal/zcl/clusters"
)

func testRegistry(t *testing.T) *zcl.Registry {
	t.Helper()
	r, err := clusters.Default()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func testStore(t *testing.T) *capture.BoltStore {
	t.Helper()
	s, err := capture.NewBoltStore(filepath.Join(t.TempDir(), "captures.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var (
	offWithEffect = source.RawFrame{Source: "test", ClusterID: 6, Data: []byte{0x01, 0x01, 0x40, 0x01, 0x00}}
	truncated     = source.RawFrame{Source: "test", ClusterID: 6, Data: []byte{0x01, 0x01}}
)

func TestProcessDecodesStoresAndPublishes(t *testing.T) {
	store := testStore(t)
	bus := NewEventBus(newTestLogger())
	p := NewPipeline(testRegistry(t), store, bus, newTestLogger())

	var got []Event
	bus.OnAll(func(e Event) { got = append(got, e) })

	ev := p.Process(offWithEffect)
	if ev.Error != "" {
		t.Fatalf("decode error: %s", ev.Error)
	}
	if !ev.Frame.MatchesCommand("offWithEffect") {
		t.Errorf("command %s", ev.Frame.Command().Name)
	}
	if ev.ID == "" {
		t.Fatal("capture was not stored")
	}
	if ev.Time.IsZero() {
		t.Error("time not set")
	}

	rec, err := store.Get(ev.ID)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Source != "test" || rec.ClusterID != 6 || rec.Error != "" {
		t.Errorf("record %+v", rec)
	}

	if len(got) != 1 || got[0].Type != EventFrameDecoded || got[0].Data.(*FrameEvent) != ev {
		t.Errorf("events %+v", got)
	}
	if s := p.Stats(); s != (Stats{Decoded: 1, Stored: 1}) {
		t.Errorf("stats %+v", s)
	}
}

func TestProcessDecodeError(t *testing.T) {
	store := testStore(t)
	bus := NewEventBus(newTestLogger())
	p := NewPipeline(testRegistry(t), store, bus, newTestLogger())

	var got Event
	bus.On(EventFrameError, func(e Event) { got = e })

	ev := p.Process(truncated)
	if ev.Frame != nil || !strings.Contains(ev.Error, zcl.ErrFrameTooShort.Error()) {
		t.Errorf("event %+v", ev)
	}
	if got.Data.(*FrameEvent) != ev {
		t.Error("error event not published")
	}

	failed, err := store.List(capture.ListOptions{Failed: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 1 || failed[0].Error != ev.Error {
		t.Errorf("failed captures %+v", failed)
	}
	if s := p.Stats(); s != (Stats{Failed: 1, Stored: 1}) {
		t.Errorf("stats %+v", s)
	}
}

type brokenStore struct{ capture.Store }

func (brokenStore) Save(*capture.Record) (string, error) { return "", errors.New("disk full") }

func TestProcessStoreFailureStillPublishes(t *testing.T) {
	bus := NewEventBus(newTestLogger())
	p := NewPipeline(testRegistry(t), brokenStore{}, bus, newTestLogger())

	published := false
	bus.On(EventFrameDecoded, func(Event) { published = true })

	ev := p.Process(offWithEffect)
	if ev.ID != "" {
		t.Errorf("id = %q, want empty", ev.ID)
	}
	if !published {
		t.Error("frame not published")
	}
	if s := p.Stats(); s.Stored != 0 || s.Decoded != 1 {
		t.Errorf("stats %+v", s)
	}
}

func TestProcessWithoutStore(t *testing.T) {
	p := NewPipeline(testRegistry(t), nil, NewEventBus(newTestLogger()), newTestLogger())
	if ev := p.Process(offWithEffect); ev.ID != "" || ev.Frame == nil {
		t.Errorf("event %+v", ev)
	}
}

func TestDecodeRecord(t *testing.T) {
	store := testStore(t)
	p := NewPipeline(testRegistry(t), store, NewEventBus(newTestLogger()), newTestLogger())

	id := p.Process(source.RawFrame{
		Source: "test", ClusterID: 0xFC00, ManufacturerHint: clusters.ManufacturerUbisys,
		Data: []byte{0x00, 0x08, 0x00, 0x00, 0x00},
	}).ID
	rec, err := store.Get(id)
	if err != nil {
		t.Fatal(err)
	}

	ev := p.DecodeRecord(rec)
	if ev.ID != id || ev.Error != "" {
		t.Fatalf("event %+v", ev)
	}
	if !ev.Frame.MatchesCluster("manuSpecificUbisysDeviceSetup") {
		t.Errorf("cluster %s", ev.Frame.Cluster().Name)
	}
}

func TestFrameEventJSON(t *testing.T) {
	p := NewPipeline(testRegistry(t), nil, NewEventBus(newTestLogger()), newTestLogger())
	ev := p.Decode(source.RawFrame{
		Source:    "test",
		Time:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ClusterID: 0,
		Data:      []byte{0x18, 0x04, 0x0b, 0x0c, 0x82},
	})
	out, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"source":"test","time":"2026-01-02T03:04:05Z","clusterId":0,"raw":"18040b0c82",` +
		`"frame":{"header":{"frameControl":{"frameType":0,"manufacturerSpecific":false,"direction":1,` +
		`"disableDefaultResponse":true},"transactionSequenceNumber":4,"commandIdentifier":11},` +
		`"cluster":"genBasic","command":"defaultRsp","payload":{"cmdId":12,"statusCode":130}}}`
	if string(out) != want {
		t.Errorf("got  %s\nwant %s", out, want)
	}
}

func TestRunConsumesSourcesAndSubmit(t *testing.T) {
	bus := NewEventBus(newTestLogger())
	p := NewPipeline(testRegistry(t), nil, bus, newTestLogger())

	frames, cancelSub := bus.Subscribe(8, EventFrameDecoded, EventFrameError)
	defer cancelSub()
	states, cancelStates := bus.Subscribe(8, EventSourceState)
	defer cancelStates()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	replay := source.NewReader("file:replay", strings.NewReader("0006:0101400100\n0006:0101\n"), newTestLogger())
	go func() { done <- p.Run(ctx, replay) }()

	if err := p.Submit(ctx, source.RawFrame{Source: "mqtt", ClusterID: 0, Data: []byte{0x18, 0x04, 0x0b, 0x0c, 0x82}}); err != nil {
		t.Fatal(err)
	}

	seen := map[string]int{}
	for i := 0; i < 3; i++ {
		select {
		case e := <-frames:
			seen[e.Type]++
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d frames processed", i)
		}
	}
	if seen[EventFrameDecoded] != 2 || seen[EventFrameError] != 1 {
		t.Errorf("events %v", seen)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline did not stop")
	}

	first := <-states
	if st := first.Data.(SourceState); st.Source != "file:replay" || !st.Running {
		t.Errorf("first state %+v", st)
	}
}

func TestSubmitCancelled(t *testing.T) {
	p := NewPipeline(testRegistry(t), nil, NewEventBus(newTestLogger()), newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < cap(p.in); i++ {
		p.in <- offWithEffect
	}
	if err := p.Submit(ctx, offWithEffect); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
