package zcl

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Key selects a cluster, attribute or command either by numeric ID or by name.
// The zero Key selects nothing.
type Key struct {
	id     uint16
	name   string
	byName bool
	set    bool
}

func ByID(id uint16) Key { return Key{id: id, set: true} }

func ByName(name string) Key { return Key{name: name, byName: true, set: true} }

// ParseKey interprets s as an ID when it parses as an integer (decimal or 0x
// prefixed) and as a name otherwise.
func ParseKey(s string) Key {
	if v, err := strconv.ParseUint(s, 0, 16); err == nil {
		return ByID(uint16(v))
	}
	return ByName(s)
}

func (k Key) IsZero() bool { return !k.set }

// ID returns the numeric ID and true when the key selects by ID.
func (k Key) ID() (uint16, bool) { return k.id, k.set && !k.byName }

// Name returns the name and true when the key selects by name.
func (k Key) Name() (string, bool) { return k.name, k.byName }

func (k Key) String() string {
	switch {
	case !k.set:
		return ""
	case k.byName:
		return k.name
	default:
		return strconv.Itoa(int(k.id))
	}
}

func (k Key) matches(id uint16, name string) bool {
	if !k.set {
		return false
	}
	if k.byName {
		return k.name == name
	}
	return k.id == id
}

func (k Key) MarshalJSON() ([]byte, error) {
	switch {
	case !k.set:
		return []byte("null"), nil
	case k.byName:
		return json.Marshal(k.name)
	default:
		return json.Marshal(k.id)
	}
}

// UnmarshalJSON accepts a number, a name or null.
func (k *Key) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*k = Key{}
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*k = ParseKey(name)
		return nil
	}
	var id uint16
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("zcl: key must be a name or a 16-bit ID: %w", err)
	}
	*k = ByID(id)
	return nil
}
