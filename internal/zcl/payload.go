package zcl

import (
	"fmt"
	"slices"
)

// Fields is the payload of a cluster-specific command, keyed by parameter
// name.
type Fields map[string]any

func (Fields) isPayload() {}

// Uint returns a numeric field as uint64.
func (f Fields) Uint(name string) (uint64, bool) {
	v, ok := f[name]
	if !ok {
		return 0, false
	}
	return toUint64(v)
}

var listTypes = []DataType{
	TypeListUint8, TypeListUint16, TypeListUint24, TypeListUint32, TypeListZoneInfo,
}

// holds reports whether the condition lets its parameter be present. While
// decoding, b is the payload buffer; while encoding, b is nil and the
// presence of the field itself decides buffer-size conditions.
func (c Condition) holds(name string, fields Fields, b *Buffer) bool {
	switch c.Kind {
	case CondStatusEquals, CondStatusNotEquals:
		status, ok := fields.Uint("status")
		if !ok {
			return false
		}
		return (status == c.Value) == (c.Kind == CondStatusEquals)
	case CondBitMaskSet, CondBitMaskClear:
		v, ok := fields.Uint(c.Param)
		if !ok {
			return false
		}
		if c.Kind == CondBitMaskSet {
			return v&c.Mask == c.Mask
		}
		return v&c.Mask == 0
	case CondMinimumRemaining:
		if b == nil {
			_, ok := fields[name]
			return ok
		}
		return uint64(b.Remaining()) >= c.Value
	}
	return false
}

func (p ParamDef) present(fields Fields, b *Buffer) bool {
	for _, c := range p.Conditions {
		if !c.holds(p.Name, fields, b) {
			return false
		}
	}
	return true
}

func (p ParamDef) options(params []ParamDef, i int, fields Fields) Options {
	opts := Options{Fields: fields}
	if i > 0 && slices.Contains(listTypes, p.Type) {
		if n, ok := fields.Uint(params[i-1].Name); ok {
			opts.Length = int(n)
		}
	}
	if p.Type == TypeUseDataType {
		if t, ok := fields.Uint("dataType"); ok {
			opts.DataType = DataType(t)
		}
	}
	return opts
}

// decodeFields reads params in order, skipping those whose conditions do not
// hold for the fields decoded so far.
func decodeFields(b *Buffer, params []ParamDef) (Fields, error) {
	fields := make(Fields, len(params))
	for i, p := range params {
		if !p.present(fields, b) {
			continue
		}
		v, err := b.Read(p.Type, p.options(params, i, fields))
		if err != nil {
			return nil, fmt.Errorf("zcl: parameter %s: %w", p.Name, err)
		}
		fields[p.Name] = v
	}
	return fields, nil
}

func encodeFields(b *Buffer, params []ParamDef, fields Fields) error {
	for i, p := range params {
		if !p.present(fields, nil) {
			continue
		}
		v, ok := fields[p.Name]
		if !ok {
			return fmt.Errorf("zcl: parameter %s missing", p.Name)
		}
		if err := checkListLength(params, i, fields, v); err != nil {
			return err
		}
		if err := b.Write(p.Type, v, p.options(params, i, fields)); err != nil {
			return fmt.Errorf("zcl: parameter %s: %w", p.Name, err)
		}
	}
	return nil
}

// checkListLength rejects a list whose element count disagrees with the
// count parameter in front of it. The decoder trusts the count, so such a
// payload would not read back as written.
func checkListLength(params []ParamDef, i int, fields Fields, v any) error {
	p := params[i]
	if i == 0 || !slices.Contains(listTypes, p.Type) {
		return nil
	}
	countName := params[i-1].Name
	n, ok := fields.Uint(countName)
	if !ok {
		return nil
	}
	items, ok := toSlice(v)
	if !ok {
		return nil // Write reports the conversion error
	}
	if uint64(len(items)) != n {
		return fmt.Errorf("zcl: parameter %s has %d elements, %s says %d", p.Name, len(items), countName, n)
	}
	return nil
}
