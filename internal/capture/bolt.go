package capture

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var bucketCaptures = []byte("captures")

const dayLayout = "2006-01-02"

// BoltStore implements Store using BoltDB. Records live in one nested bucket
// per UTC day, keyed by their UUIDv7 bytes, so cursor order is capture order
// and pruning a day drops a whole bucket.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens or creates a BoltDB database.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCaptures)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// idTime returns the millisecond timestamp carried by a version 7 UUID.
func idTime(id uuid.UUID) time.Time {
	var ms int64
	for _, b := range id[:6] {
		ms = ms<<8 | int64(b)
	}
	return time.UnixMilli(ms)
}

func dayKey(t time.Time) []byte {
	return []byte(t.UTC().Format(dayLayout))
}

func parseID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil || u.Version() != 7 {
		return uuid.UUID{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return u, nil
}

func (s *BoltStore) Save(rec *Record) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("capture id: %w", err)
	}
	if err := s.put(id, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *BoltStore) put(id uuid.UUID, rec *Record) error {
	rec.ID = id.String()
	rec.Time = idTime(id)

	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketCaptures)
		if root == nil {
			return fmt.Errorf("bucket %q not found", bucketCaptures)
		}
		day, err := root.CreateBucketIfNotExists(dayKey(rec.Time))
		if err != nil {
			return err
		}
		return day.Put(id[:], data)
	})
}

func (s *BoltStore) Get(id string) (*Record, error) {
	u, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var rec *Record
	err = s.db.View(func(tx *bolt.Tx) error {
		day := dayBucket(tx, idTime(u))
		if day == nil {
			return fmt.Errorf("capture %s: %w", id, ErrNotFound)
		}
		data := day.Get(u[:])
		if data == nil {
			return fmt.Errorf("capture %s: %w", id, ErrNotFound)
		}
		rec, err = decodeRecord(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func dayBucket(tx *bolt.Tx, t time.Time) *bolt.Bucket {
	root := tx.Bucket(bucketCaptures)
	if root == nil {
		return nil
	}
	return root.Bucket(dayKey(t))
}

func (s *BoltStore) Delete(id string) error {
	u, err := parseID(id)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		day := dayBucket(tx, idTime(u))
		if day == nil || day.Get(u[:]) == nil {
			return fmt.Errorf("capture %s: %w", id, ErrNotFound)
		}
		return day.Delete(u[:])
	})
}

func (s *BoltStore) List(opts ListOptions) ([]*Record, error) {
	var records []*Record
	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketCaptures)
		if root == nil {
			return nil
		}
		var first, last []byte
		if !opts.Since.IsZero() {
			first = dayKey(opts.Since)
		}
		if !opts.Until.IsZero() {
			last = dayKey(opts.Until)
		}

		days := root.Cursor()
		for name, v := days.Last(); name != nil; name, v = days.Prev() {
			if v != nil {
				continue // not a day bucket
			}
			if last != nil && bytes.Compare(name, last) > 0 {
				continue
			}
			if first != nil && bytes.Compare(name, first) < 0 {
				break
			}
			c := root.Bucket(name).Cursor()
			for k, data := c.Last(); k != nil; k, data = c.Prev() {
				rec, err := decodeRecord(data)
				if err != nil {
					return err
				}
				if !opts.match(rec) {
					continue
				}
				records = append(records, rec)
				if opts.Limit > 0 && len(records) >= opts.Limit {
					return nil
				}
			}
		}
		return nil
	})
	return records, err
}

func (s *BoltStore) Prune(before time.Time) (int, error) {
	cutoff := dayKey(before)
	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketCaptures)
		if root == nil {
			return nil
		}

		var drop [][]byte
		c := root.Cursor()
		for name, v := c.First(); name != nil && v == nil; name, v = c.Next() {
			if bytes.Compare(name, cutoff) >= 0 {
				break
			}
			drop = append(drop, append([]byte(nil), name...))
		}
		for _, name := range drop {
			removed += root.Bucket(name).Stats().KeyN
			if err := root.DeleteBucket(name); err != nil {
				return err
			}
		}

		// The cutoff day itself is trimmed record by record.
		day := root.Bucket(cutoff)
		if day == nil {
			return nil
		}
		var keys [][]byte
		dc := day.Cursor()
		for k, _ := dc.First(); k != nil; k, _ = dc.Next() {
			u, err := uuid.FromBytes(k)
			if err != nil || !idTime(u).Before(before) {
				break
			}
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := day.Delete(k); err != nil {
				return err
			}
		}
		removed += len(keys)
		return nil
	})
	return removed, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
