package capture

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// saveAt stores rec as if it had been captured at when.
func saveAt(t *testing.T, s *BoltStore, rec *Record, when time.Time) string {
	t.Helper()
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	ms := when.UnixMilli()
	for i := 5; i >= 0; i-- {
		id[i] = byte(ms)
		ms >>= 8
	}
	if err := s.put(id, rec); err != nil {
		t.Fatal(err)
	}
	return rec.ID
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)

	rec := &Record{
		Source:           "serial:/dev/ttyACM0",
		ClusterID:        0x0006,
		ManufacturerHint: 0x117c,
		Raw:              []byte{0x01, 0x01, 0x40, 0x01, 0x00},
	}
	before := time.Now().Add(-time.Second)
	id, err := s.Save(rec)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" || id != rec.ID {
		t.Fatalf("id = %q, rec.ID = %q", id, rec.ID)
	}
	if rec.Time.Before(before) {
		t.Errorf("time = %v, want after %v", rec.Time, before)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != id {
		t.Errorf("id = %q, want %q", got.ID, id)
	}
	if !got.Time.Equal(rec.Time) {
		t.Errorf("time = %v, want %v", got.Time, rec.Time)
	}
	if got.Source != rec.Source {
		t.Errorf("source = %q, want %q", got.Source, rec.Source)
	}
	if got.ClusterID != 6 || got.ManufacturerHint != 0x117c {
		t.Errorf("cluster = %d manuf = 0x%04X", got.ClusterID, got.ManufacturerHint)
	}
	if !bytes.Equal(got.Raw, rec.Raw) {
		t.Errorf("raw = %X, want %X", got.Raw, rec.Raw)
	}
	if got.Error != "" {
		t.Errorf("error = %q, want empty", got.Error)
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(id.String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if _, err := s.Get("not-a-uuid"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("got %v, want ErrInvalidID", err)
	}
	if _, err := s.Get(uuid.New().String()); !errors.Is(err, ErrInvalidID) {
		t.Errorf("v4 id: got %v, want ErrInvalidID", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Save(&Record{ClusterID: 0, Raw: []byte{0x18, 0x04, 0x0b, 0x0c, 0x82}})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 4; i++ {
		// Straddle midnight so the records span two day buckets.
		ids = append(ids, saveAt(t, s, &Record{ClusterID: uint16(i)}, base.Add(time.Duration(i)*30*time.Second)))
	}

	got, err := s.List(ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d records, want 4", len(got))
	}
	for i, rec := range got {
		if want := ids[len(ids)-1-i]; rec.ID != want {
			t.Errorf("record %d = %s, want %s", i, rec.ID, want)
		}
	}

	got, err = s.List(ListOptions{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != ids[3] || got[1].ID != ids[2] {
		t.Errorf("limited list = %v", got)
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	saveAt(t, s, &Record{Source: "serial", ClusterID: 6}, base)
	saveAt(t, s, &Record{Source: "mqtt", ClusterID: 6, Error: "zcl: frame too short"}, base.Add(time.Hour))
	saveAt(t, s, &Record{Source: "serial", ClusterID: 8}, base.Add(48*time.Hour))

	onOff := uint16(6)
	tests := []struct {
		name string
		opts ListOptions
		want int
	}{
		{"all", ListOptions{}, 3},
		{"source", ListOptions{Source: "serial"}, 2},
		{"cluster", ListOptions{ClusterID: &onOff}, 2},
		{"failed", ListOptions{Failed: true}, 1},
		{"since", ListOptions{Since: base.Add(time.Minute)}, 2},
		{"until", ListOptions{Until: base.Add(time.Hour)}, 1},
		{"window", ListOptions{Since: base.Add(time.Minute), Until: base.Add(24 * time.Hour)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestListEmpty(t *testing.T) {
	s := newTestStore(t)
	got, err := s.List(ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
}

func TestPrune(t *testing.T) {
	s := newTestStore(t)

	day := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	old := saveAt(t, s, &Record{ClusterID: 1}, day.Add(-36*time.Hour))
	morning := saveAt(t, s, &Record{ClusterID: 2}, day.Add(6*time.Hour))
	evening := saveAt(t, s, &Record{ClusterID: 3}, day.Add(20*time.Hour))
	next := saveAt(t, s, &Record{ClusterID: 4}, day.Add(30*time.Hour))

	n, err := s.Prune(day.Add(12 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("pruned %d, want 2", n)
	}
	for _, id := range []string{old, morning} {
		if _, err := s.Get(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: got %v, want ErrNotFound", id, err)
		}
	}
	for _, id := range []string{evening, next} {
		if _, err := s.Get(id); err != nil {
			t.Errorf("%s: %v", id, err)
		}
	}

	n, err = s.Prune(day)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("second prune removed %d, want 0", n)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	id, err := s.Save(&Record{ClusterID: 0x0300, Raw: []byte{0x01, 0x02, 0x07}})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := s.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.ClusterID != 0x0300 {
		t.Errorf("cluster = 0x%04X, want 0x0300", got.ClusterID)
	}
}
