package capture

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested capture does not exist in the store.
	ErrNotFound = errors.New("capture not found")
	// ErrInvalidID is returned for IDs that were not issued by Save.
	ErrInvalidID = errors.New("invalid capture id")
)

// Store defines the capture persistence interface.
type Store interface {
	// Save assigns rec a fresh ID, stamps rec.Time from it and persists it.
	Save(rec *Record) (string, error)
	Get(id string) (*Record, error)
	// List returns matching records, newest first.
	List(opts ListOptions) ([]*Record, error)
	Delete(id string) error
	// Prune removes every record captured before the given time and
	// returns how many were removed.
	Prune(before time.Time) (int, error)
	Close() error
}

// Record is a raw ZCL frame as it was captured. The decoded form is not
// stored; it is rebuilt from Raw against the current registry.
type Record struct {
	ID               string    `json:"id" cbor:"1,keyasint"`
	Time             time.Time `json:"time" cbor:"2,keyasint"`
	Source           string    `json:"source" cbor:"3,keyasint"`
	ClusterID        uint16    `json:"cluster_id" cbor:"4,keyasint"`
	ManufacturerHint uint16    `json:"manufacturer_hint,omitempty" cbor:"5,keyasint,omitempty"`
	Raw              []byte    `json:"raw" cbor:"6,keyasint"`
	Error            string    `json:"error,omitempty" cbor:"7,keyasint,omitempty"`
}

// ListOptions filters List. Zero values match everything.
type ListOptions struct {
	Since     time.Time
	Until     time.Time
	Source    string
	ClusterID *uint16
	Failed    bool // only records that did not decode
	Limit     int
}

func (o ListOptions) match(rec *Record) bool {
	if !o.Since.IsZero() && rec.Time.Before(o.Since) {
		return false
	}
	if !o.Until.IsZero() && !rec.Time.Before(o.Until) {
		return false
	}
	if o.Source != "" && rec.Source != o.Source {
		return false
	}
	if o.ClusterID != nil && rec.ClusterID != *o.ClusterID {
		return false
	}
	if o.Failed && rec.Error == "" {
		return false
	}
	return true
}
