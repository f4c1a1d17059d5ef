package zcl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Array is the value of array, set and bag attributes. Unlike a bare element
// sequence, it keeps the element type next to the elements so the value can
// be written back unchanged: [0x20, 3, 0, 1, 2, 3] decodes to
// Array{ElementType: TypeUint8, Elements: [1 2 3]}, not to [1 2 3].
type Array struct {
	ElementType DataType `json:"elementType"`
	Elements    []any    `json:"elements"`
}

// StructElement is one member of a struct value.
type StructElement struct {
	Type  DataType `json:"elmType"`
	Value any      `json:"elmVal"`
}

type TimeOfDay struct {
	Hours      uint8 `json:"hours"`
	Minutes    uint8 `json:"minutes"`
	Seconds    uint8 `json:"seconds"`
	Hundredths uint8 `json:"hundredths"`
}

// Date holds the full year; the wire carries the offset from 1900.
type Date struct {
	Year      int   `json:"year"`
	Month     uint8 `json:"month"`
	Day       uint8 `json:"day"`
	DayOfWeek uint8 `json:"dayOfWeek"`
}

// ZoneInfo is one entry of an IAS zone table listing.
type ZoneInfo struct {
	ZoneID     uint8  `json:"zoneID"`
	ZoneStatus uint16 `json:"zoneStatus"`
}

// ExtensionFieldSet is the per-cluster state stored in a scene.
type ExtensionFieldSet struct {
	ClusterID uint16 `json:"clstId"`
	Data      []byte `json:"extField"`
}

// ThermoTransition is one step of a thermostat weekly schedule. Which
// setpoints are present depends on the schedule mode.
type ThermoTransition struct {
	TransitionTime uint16 `json:"transitionTime"`
	HeatSetpoint   *int16 `json:"heatSetpoint,omitempty"`
	CoolSetpoint   *int16 `json:"coolSetpoint,omitempty"`
}

// TuyaDataPoint is one datapoint in a Tuya MCU command.
type TuyaDataPoint struct {
	DP       uint8  `json:"dp"`
	DataType uint8  `json:"datatype"`
	Data     []byte `json:"data"`
}

// StructuredSelector addresses an element inside a structured attribute.
// The low nibble of Indicator is the number of indexes; write commands use
// the high nibble to add or remove set elements.
type StructuredSelector struct {
	Indicator uint8    `json:"indicator"`
	Indexes   []uint16 `json:"indexes,omitempty"`
}

// XiaomiEntry is one tagged reading packed into attribute 0xFF01.
type XiaomiEntry struct {
	Tag   uint8
	Type  DataType
	Value any
}

// XiaomiTLV is the decoded content of attribute 0xFF01, in wire order.
type XiaomiTLV []XiaomiEntry

// Get returns the value stored under tag.
func (x XiaomiTLV) Get(tag uint8) (any, bool) {
	for _, e := range x {
		if e.Tag == tag {
			return e.Value, true
		}
	}
	return nil, false
}

// MarshalJSON renders the entries as an object keyed by tag.
func (x XiaomiTLV) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range x {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(int(e.Tag))))
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func readList[T any](n int, read func() (T, error)) ([]T, error) {
	out := make([]T, 0, n)
	for range n {
		v, err := read()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func writeList(b *Buffer, t DataType, v any, max uint64, put func(uint64)) error {
	items, ok := toSlice(v)
	if !ok {
		return convertError(v, t)
	}
	for _, item := range items {
		u, err := unsigned(item, t, max)
		if err != nil {
			return err
		}
		put(u)
	}
	return nil
}

func (b *Buffer) readArray() (Array, error) {
	elemType, err := b.ReadUint8()
	if err != nil {
		return Array{}, err
	}
	count, err := b.ReadUint16()
	if err != nil {
		return Array{}, err
	}
	arr := Array{ElementType: DataType(elemType), Elements: make([]any, 0, count)}
	for range int(count) {
		v, err := b.Read(arr.ElementType, Options{})
		if err != nil {
			return Array{}, err
		}
		arr.Elements = append(arr.Elements, v)
	}
	return arr, nil
}

func (b *Buffer) writeArray(t DataType, v any) error {
	var arr Array
	switch a := v.(type) {
	case Array:
		arr = a
	case *Array:
		arr = *a
	default:
		if err := convertInto(v, &arr); err != nil {
			return convertError(v, t)
		}
	}
	if !arr.ElementType.IsWire() {
		return fmt.Errorf("%w: array of %s", ErrUnknownDataType, arr.ElementType)
	}
	if len(arr.Elements) > math.MaxUint16-1 {
		return fmt.Errorf("zcl: %s too long: %d elements", t, len(arr.Elements))
	}
	b.WriteUint8(uint8(arr.ElementType))
	b.WriteUint16(uint16(len(arr.Elements)))
	for i, e := range arr.Elements {
		if err := b.Write(arr.ElementType, e, Options{}); err != nil {
			return fmt.Errorf("zcl: %s element %d: %w", t, i, err)
		}
	}
	return nil
}

func (b *Buffer) readStruct() ([]StructElement, error) {
	count, err := b.ReadUint16()
	if err != nil {
		return nil, err
	}
	out := make([]StructElement, 0, count)
	for range int(count) {
		t, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		v, err := b.Read(DataType(t), Options{})
		if err != nil {
			return nil, err
		}
		out = append(out, StructElement{Type: DataType(t), Value: v})
	}
	return out, nil
}

func (b *Buffer) writeStruct(v any) error {
	var elems []StructElement
	if err := convertInto(v, &elems); err != nil {
		return convertError(v, TypeStruct)
	}
	if len(elems) > math.MaxUint16-1 {
		return fmt.Errorf("zcl: struct too long: %d elements", len(elems))
	}
	b.WriteUint16(uint16(len(elems)))
	for i, e := range elems {
		if !e.Type.IsWire() {
			return fmt.Errorf("%w: struct element %d has type %s", ErrUnknownDataType, i, e.Type)
		}
		b.WriteUint8(uint8(e.Type))
		if err := b.Write(e.Type, e.Value, Options{}); err != nil {
			return fmt.Errorf("zcl: struct element %d: %w", i, err)
		}
	}
	return nil
}

func (b *Buffer) readTimeOfDay() (TimeOfDay, error) {
	p, err := b.ReadBytes(4)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hours: p[0], Minutes: p[1], Seconds: p[2], Hundredths: p[3]}, nil
}

func (b *Buffer) readDate() (Date, error) {
	p, err := b.ReadBytes(4)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: 1900 + int(p[0]), Month: p[1], Day: p[2], DayOfWeek: p[3]}, nil
}

func (b *Buffer) readZoneInfo(n int) ([]ZoneInfo, error) {
	out := make([]ZoneInfo, 0, n)
	for range n {
		id, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		status, err := b.ReadUint16()
		if err != nil {
			return nil, err
		}
		out = append(out, ZoneInfo{ZoneID: id, ZoneStatus: status})
	}
	return out, nil
}

func (b *Buffer) writeZoneInfo(v any) error {
	var zones []ZoneInfo
	if err := convertInto(v, &zones); err != nil {
		return convertError(v, TypeListZoneInfo)
	}
	for _, z := range zones {
		b.WriteUint8(z.ZoneID)
		b.WriteUint16(z.ZoneStatus)
	}
	return nil
}

// readExtensionFieldSets consumes the rest of the buffer.
func (b *Buffer) readExtensionFieldSets() ([]ExtensionFieldSet, error) {
	var out []ExtensionFieldSet
	for b.Remaining() > 0 {
		clusterID, err := b.ReadUint16()
		if err != nil {
			return nil, err
		}
		n, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		data, err := b.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		out = append(out, ExtensionFieldSet{ClusterID: clusterID, Data: data})
	}
	return out, nil
}

func (b *Buffer) writeExtensionFieldSets(v any) error {
	var sets []ExtensionFieldSet
	if err := convertInto(v, &sets); err != nil {
		return convertError(v, TypeExtensionFieldSets)
	}
	for _, s := range sets {
		if len(s.Data) > math.MaxUint8 {
			return fmt.Errorf("zcl: extension field set for cluster 0x%04X too long: %d", s.ClusterID, len(s.Data))
		}
		b.WriteUint16(s.ClusterID)
		b.WriteUint8(uint8(len(s.Data)))
		b.WriteBytes(s.Data)
	}
	return nil
}

// Thermostat schedule mode bits.
const (
	thermoModeHeat = 0x01
	thermoModeCool = 0x02
)

func thermoLayout(fields Fields) (count int, heat, cool bool) {
	n, _ := toUint64(fields["numoftrans"])
	mode, _ := toUint64(fields["mode"])
	return int(n), mode&thermoModeHeat != 0, mode&thermoModeCool != 0
}

func (b *Buffer) readThermoTransitions(fields Fields) ([]ThermoTransition, error) {
	count, heat, cool := thermoLayout(fields)
	out := make([]ThermoTransition, 0, count)
	for range count {
		var tr ThermoTransition
		var err error
		if tr.TransitionTime, err = b.ReadUint16(); err != nil {
			return nil, err
		}
		if heat {
			v, err := b.ReadUint16()
			if err != nil {
				return nil, err
			}
			sp := int16(v)
			tr.HeatSetpoint = &sp
		}
		if cool {
			v, err := b.ReadUint16()
			if err != nil {
				return nil, err
			}
			sp := int16(v)
			tr.CoolSetpoint = &sp
		}
		out = append(out, tr)
	}
	return out, nil
}

func (b *Buffer) writeThermoTransitions(v any, fields Fields) error {
	var transitions []ThermoTransition
	if err := convertInto(v, &transitions); err != nil {
		return convertError(v, TypeListThermoTransitions)
	}
	count, heat, cool := thermoLayout(fields)
	if count != len(transitions) {
		return fmt.Errorf("zcl: %d transitions, numoftrans says %d", len(transitions), count)
	}
	for i, tr := range transitions {
		b.WriteUint16(tr.TransitionTime)
		if heat {
			if tr.HeatSetpoint == nil {
				return fmt.Errorf("zcl: transition %d: heat setpoint required by mode", i)
			}
			b.WriteUint16(uint16(*tr.HeatSetpoint))
		}
		if cool {
			if tr.CoolSetpoint == nil {
				return fmt.Errorf("zcl: transition %d: cool setpoint required by mode", i)
			}
			b.WriteUint16(uint16(*tr.CoolSetpoint))
		}
	}
	return nil
}

// readTuyaDataPoints consumes the rest of the buffer. Tuya encodes the
// datapoint length big-endian.
func (b *Buffer) readTuyaDataPoints() ([]TuyaDataPoint, error) {
	var out []TuyaDataPoint
	for b.Remaining() > 0 {
		dp, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		dt, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		n, err := b.ReadUint16BE()
		if err != nil {
			return nil, err
		}
		data, err := b.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		out = append(out, TuyaDataPoint{DP: dp, DataType: dt, Data: data})
	}
	return out, nil
}

func (b *Buffer) writeTuyaDataPoints(v any) error {
	var dps []TuyaDataPoint
	if err := convertInto(v, &dps); err != nil {
		return convertError(v, TypeListTuyaDataPointValues)
	}
	for _, dp := range dps {
		if len(dp.Data) > math.MaxUint16 {
			return fmt.Errorf("zcl: tuya datapoint %d too long: %d", dp.DP, len(dp.Data))
		}
		b.WriteUint8(dp.DP)
		b.WriteUint8(dp.DataType)
		b.WriteUint16BE(uint16(len(dp.Data)))
		b.WriteBytes(dp.Data)
	}
	return nil
}

func (b *Buffer) readStructuredSelector() (StructuredSelector, error) {
	indicator, err := b.ReadUint8()
	if err != nil {
		return StructuredSelector{}, err
	}
	indexes, err := readList(int(indicator&0x0F), b.ReadUint16)
	if err != nil {
		return StructuredSelector{}, err
	}
	if len(indexes) == 0 {
		indexes = nil
	}
	return StructuredSelector{Indicator: indicator, Indexes: indexes}, nil
}

func (b *Buffer) writeStructuredSelector(v any) error {
	var sel StructuredSelector
	if err := convertInto(v, &sel); err != nil {
		return convertError(v, TypeStructuredSelector)
	}
	if sel.Indicator&0x0F == 0 {
		sel.Indicator |= uint8(len(sel.Indexes))
	}
	if len(sel.Indexes) > 0x0F || int(sel.Indicator&0x0F) != len(sel.Indexes) {
		return fmt.Errorf("zcl: selector indicator %d does not match %d indexes", sel.Indicator, len(sel.Indexes))
	}
	b.WriteUint8(sel.Indicator)
	for _, idx := range sel.Indexes {
		b.WriteUint16(idx)
	}
	return nil
}

// readXiaomiTLV decodes the tag-type-value entries packed into attribute
// 0xFF01. Some firmware announces one byte more than it sends, so the length
// prefix is capped at what is left.
func (b *Buffer) readXiaomiTLV() (XiaomiTLV, error) {
	n, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	body, err := b.ReadBytes(min(int(n), b.Remaining()))
	if err != nil {
		return nil, err
	}
	sub := NewBuffer(body)
	var out XiaomiTLV
	for sub.Remaining() > 0 {
		tag, err := sub.ReadUint8()
		if err != nil {
			return nil, err
		}
		t, err := sub.ReadUint8()
		if err != nil {
			return nil, err
		}
		v, err := sub.Read(DataType(t), Options{})
		if err != nil {
			return nil, fmt.Errorf("zcl: xiaomi tag %d: %w", tag, err)
		}
		out = append(out, XiaomiEntry{Tag: tag, Type: DataType(t), Value: v})
	}
	return out, nil
}

func (b *Buffer) writeXiaomiTLV(x XiaomiTLV) error {
	body := NewBuffer(nil)
	for _, e := range x {
		if !e.Type.IsWire() {
			return fmt.Errorf("%w: xiaomi tag %d has type %s", ErrUnknownDataType, e.Tag, e.Type)
		}
		body.WriteUint8(e.Tag)
		body.WriteUint8(uint8(e.Type))
		if err := body.Write(e.Type, e.Value, Options{}); err != nil {
			return fmt.Errorf("zcl: xiaomi tag %d: %w", e.Tag, err)
		}
	}
	if err := b.writeLength(TypeCharStr, body.Len(), false); err != nil {
		return err
	}
	b.WriteBytes(body.Bytes())
	return nil
}
