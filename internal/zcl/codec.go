package zcl

import (
	"fmt"
	"math"
	"strconv"

	"github.com/x448/float16"
)

// Options carries the context some types need to decode or encode.
type Options struct {
	// Length is the element count of list types, taken from the parameter
	// preceding the list.
	Length int
	// DataType is the wire type of a TypeUseDataType value.
	DataType DataType
	// AttrID is the attribute being decoded. 0xFF01 selects the Xiaomi
	// tag-type-value layout inside a character string.
	AttrID uint16
	// Fields holds the command parameters decoded so far.
	Fields Fields
}

// AttrXiaomiTLV is the attribute ID Xiaomi devices use to pack several
// readings into one character string.
const AttrXiaomiTLV uint16 = 0xFF01

func value[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Read decodes one value of type t at the cursor.
func (b *Buffer) Read(t DataType, opts Options) (any, error) {
	switch t {
	case TypeNoData:
		return nil, nil
	case TypeBool:
		v, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		return v != 0, nil
	case TypeData8, TypeBitmap8, TypeUint8, TypeEnum8:
		return value(b.ReadUint8())
	case TypeData16, TypeBitmap16, TypeUint16, TypeEnum16, TypeClusterID, TypeAttrID:
		return value(b.ReadUint16())
	case TypeData24, TypeBitmap24, TypeUint24:
		return value(b.ReadUint24())
	case TypeData32, TypeBitmap32, TypeUint32, TypeUTC, TypeBACnetOID:
		return value(b.ReadUint32())
	case TypeInt8:
		v, err := b.ReadUint8()
		return value(int8(v), err)
	case TypeInt16:
		v, err := b.ReadUint16()
		return value(int16(v), err)
	case TypeInt24:
		v, err := b.ReadUint24()
		if v&0x800000 != 0 {
			v |= 0xFF000000 // sign extend
		}
		return value(int32(v), err)
	case TypeInt32:
		v, err := b.ReadUint32()
		return value(int32(v), err)
	case TypeData40, TypeBitmap40, TypeUint40, TypeInt40,
		TypeData48, TypeBitmap48, TypeUint48, TypeInt48,
		TypeData56, TypeBitmap56, TypeUint56, TypeInt56:
		return value(b.readChunks(TypeSize(t)))
	case TypeData64, TypeBitmap64, TypeUint64, TypeInt64, TypeEUI64:
		v, err := b.ReadUint64()
		return value(formatHex64(v), err)
	case TypeFloat16:
		v, err := b.ReadUint16()
		return value(float16.Frombits(v).Float32(), err)
	case TypeFloat32:
		v, err := b.ReadUint32()
		return value(math.Float32frombits(v), err)
	case TypeFloat64:
		v, err := b.ReadUint64()
		return value(math.Float64frombits(v), err)
	case TypeOctetStr:
		return b.readOctetStr(false)
	case TypeOctetStr16:
		return b.readOctetStr(true)
	case TypeCharStr:
		if opts.AttrID == AttrXiaomiTLV {
			return value(b.readXiaomiTLV())
		}
		return b.readCharStr(false)
	case TypeCharStr16:
		return b.readCharStr(true)
	case TypeArray, TypeSet, TypeBag:
		return value(b.readArray())
	case TypeStruct:
		return value(b.readStruct())
	case TypeToD:
		return value(b.readTimeOfDay())
	case TypeDate:
		return value(b.readDate())
	case TypeSecKey:
		return value(b.ReadBytes(16))
	case TypeUseDataType:
		if !opts.DataType.IsWire() || opts.DataType == TypeUnknown {
			return nil, fmt.Errorf("%w: %s used as attribute type", ErrUnknownDataType, opts.DataType)
		}
		return b.Read(opts.DataType, opts)
	case TypeListUint8:
		return value(readList(opts.Length, b.ReadUint8))
	case TypeListUint16:
		return value(readList(opts.Length, b.ReadUint16))
	case TypeListUint24:
		return value(readList(opts.Length, b.ReadUint24))
	case TypeListUint32:
		return value(readList(opts.Length, b.ReadUint32))
	case TypeListZoneInfo:
		return value(b.readZoneInfo(opts.Length))
	case TypeExtensionFieldSets:
		return value(b.readExtensionFieldSets())
	case TypeListThermoTransitions:
		return value(b.readThermoTransitions(opts.Fields))
	case TypeListTuyaDataPointValues:
		return value(b.readTuyaDataPoints())
	case TypeStructuredSelector:
		return value(b.readStructuredSelector())
	case TypeBuffer:
		if opts.Length > 0 {
			return value(b.ReadBytes(opts.Length))
		}
		return b.ReadRest(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDataType, t)
}

// Write encodes v as type t.
func (b *Buffer) Write(t DataType, v any, opts Options) error {
	switch t {
	case TypeNoData:
		return nil
	case TypeBool:
		val, ok := toBool(v)
		if !ok {
			return convertError(v, t)
		}
		if val {
			b.WriteUint8(1)
		} else {
			b.WriteUint8(0)
		}
		return nil
	case TypeData8, TypeBitmap8, TypeUint8, TypeEnum8:
		u, err := unsigned(v, t, math.MaxUint8)
		if err != nil {
			return err
		}
		b.WriteUint8(uint8(u))
		return nil
	case TypeData16, TypeBitmap16, TypeUint16, TypeEnum16, TypeClusterID, TypeAttrID:
		u, err := unsigned(v, t, math.MaxUint16)
		if err != nil {
			return err
		}
		b.WriteUint16(uint16(u))
		return nil
	case TypeData24, TypeBitmap24, TypeUint24:
		u, err := unsigned(v, t, 0xFFFFFF)
		if err != nil {
			return err
		}
		b.WriteUint24(uint32(u))
		return nil
	case TypeData32, TypeBitmap32, TypeUint32, TypeUTC, TypeBACnetOID:
		u, err := unsigned(v, t, math.MaxUint32)
		if err != nil {
			return err
		}
		b.WriteUint32(uint32(u))
		return nil
	case TypeInt8:
		i, err := signed(v, t, 8)
		if err != nil {
			return err
		}
		b.WriteUint8(uint8(int8(i)))
		return nil
	case TypeInt16:
		i, err := signed(v, t, 16)
		if err != nil {
			return err
		}
		b.WriteUint16(uint16(int16(i)))
		return nil
	case TypeInt24:
		i, err := signed(v, t, 24)
		if err != nil {
			return err
		}
		b.WriteUint24(uint32(int32(i)) & 0xFFFFFF)
		return nil
	case TypeInt32:
		i, err := signed(v, t, 32)
		if err != nil {
			return err
		}
		b.WriteUint32(uint32(int32(i)))
		return nil
	case TypeData40, TypeBitmap40, TypeUint40, TypeInt40,
		TypeData48, TypeBitmap48, TypeUint48, TypeInt48,
		TypeData56, TypeBitmap56, TypeUint56, TypeInt56:
		return b.writeChunks(t, v)
	case TypeData64, TypeBitmap64, TypeUint64, TypeInt64, TypeEUI64:
		u, ok := parseHex64(v)
		if !ok {
			return convertError(v, t)
		}
		b.WriteUint64(u)
		return nil
	case TypeFloat16:
		f, ok := toFloat64(v)
		if !ok {
			return convertError(v, t)
		}
		b.WriteUint16(float16.Fromfloat32(float32(f)).Bits())
		return nil
	case TypeFloat32:
		f, ok := toFloat64(v)
		if !ok {
			return convertError(v, t)
		}
		b.WriteUint32(math.Float32bits(float32(f)))
		return nil
	case TypeFloat64:
		f, ok := toFloat64(v)
		if !ok {
			return convertError(v, t)
		}
		b.WriteUint64(math.Float64bits(f))
		return nil
	case TypeOctetStr:
		return b.writeOctetStr(t, v, false)
	case TypeOctetStr16:
		return b.writeOctetStr(t, v, true)
	case TypeCharStr:
		return b.writeCharStr(t, v, false)
	case TypeCharStr16:
		return b.writeCharStr(t, v, true)
	case TypeArray, TypeSet, TypeBag:
		return b.writeArray(t, v)
	case TypeStruct:
		return b.writeStruct(v)
	case TypeToD:
		var tod TimeOfDay
		if err := convertInto(v, &tod); err != nil {
			return convertError(v, t)
		}
		b.WriteBytes([]byte{tod.Hours, tod.Minutes, tod.Seconds, tod.Hundredths})
		return nil
	case TypeDate:
		var d Date
		if err := convertInto(v, &d); err != nil {
			return convertError(v, t)
		}
		if d.Year < 1900 || d.Year > 1900+0xFF {
			return fmt.Errorf("zcl: date year %d out of range 1900..2155", d.Year)
		}
		b.WriteBytes([]byte{uint8(d.Year - 1900), d.Month, d.Day, d.DayOfWeek})
		return nil
	case TypeSecKey:
		key, ok := toBytes(v)
		if !ok || len(key) != 16 {
			return fmt.Errorf("zcl: %s requires 16 bytes", t)
		}
		b.WriteBytes(key)
		return nil
	case TypeUseDataType:
		if !opts.DataType.IsWire() || opts.DataType == TypeUnknown {
			return fmt.Errorf("%w: %s used as attribute type", ErrUnknownDataType, opts.DataType)
		}
		return b.Write(opts.DataType, v, opts)
	case TypeListUint8:
		return writeList(b, t, v, math.MaxUint8, func(u uint64) { b.WriteUint8(uint8(u)) })
	case TypeListUint16:
		return writeList(b, t, v, math.MaxUint16, func(u uint64) { b.WriteUint16(uint16(u)) })
	case TypeListUint24:
		return writeList(b, t, v, 0xFFFFFF, func(u uint64) { b.WriteUint24(uint32(u)) })
	case TypeListUint32:
		return writeList(b, t, v, math.MaxUint32, func(u uint64) { b.WriteUint32(uint32(u)) })
	case TypeListZoneInfo:
		return b.writeZoneInfo(v)
	case TypeExtensionFieldSets:
		return b.writeExtensionFieldSets(v)
	case TypeListThermoTransitions:
		return b.writeThermoTransitions(v, opts.Fields)
	case TypeListTuyaDataPointValues:
		return b.writeTuyaDataPoints(v)
	case TypeStructuredSelector:
		return b.writeStructuredSelector(v)
	case TypeBuffer:
		p, ok := toBytes(v)
		if !ok {
			return convertError(v, t)
		}
		b.WriteBytes(p)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownDataType, t)
}

func convertError(v any, t DataType) error {
	return fmt.Errorf("zcl: cannot convert %T to %s", v, t)
}

func unsigned(v any, t DataType, max uint64) (uint64, error) {
	u, ok := toUint64(v)
	if !ok {
		return 0, convertError(v, t)
	}
	if u > max {
		return 0, fmt.Errorf("zcl: value %d overflows %s (max %d)", u, t, max)
	}
	return u, nil
}

func signed(v any, t DataType, bits uint) (int64, error) {
	i, ok := toInt64(v)
	if !ok {
		return 0, convertError(v, t)
	}
	lo, hi := -int64(1)<<(bits-1), int64(1)<<(bits-1)-1
	if i < lo || i > hi {
		return 0, fmt.Errorf("zcl: value %d overflows %s (range %d..%d)", i, t, lo, hi)
	}
	return i, nil
}

// readChunks decodes a 40, 48 or 56 bit integer as [msb, lsb]: the low 32
// bits come first on the wire, the remaining 1 to 3 bytes follow.
func (b *Buffer) readChunks(size int) ([]uint32, error) {
	lsb, err := b.ReadUint32()
	if err != nil {
		return nil, err
	}
	var msb uint32
	switch size - 4 {
	case 1:
		var v uint8
		v, err = b.ReadUint8()
		msb = uint32(v)
	case 2:
		var v uint16
		v, err = b.ReadUint16()
		msb = uint32(v)
	case 3:
		msb, err = b.ReadUint24()
	}
	if err != nil {
		return nil, err
	}
	return []uint32{msb, lsb}, nil
}

func (b *Buffer) writeChunks(t DataType, v any) error {
	high := TypeSize(t) - 4
	var msb, lsb uint64
	if items, ok := toSlice(v); ok {
		if len(items) != 2 {
			return fmt.Errorf("zcl: %s takes [msb, lsb], got %d chunks", t, len(items))
		}
		var okMSB, okLSB bool
		msb, okMSB = toUint64(items[0])
		lsb, okLSB = toUint64(items[1])
		if !okMSB || !okLSB {
			return convertError(v, t)
		}
	} else {
		u, ok := toUint64(v)
		if !ok {
			return convertError(v, t)
		}
		msb, lsb = u>>32, u&math.MaxUint32
	}
	if lsb > math.MaxUint32 || msb >= 1<<(8*high) {
		return fmt.Errorf("zcl: value [%d, %d] overflows %s", msb, lsb, t)
	}
	b.WriteUint32(uint32(lsb))
	switch high {
	case 1:
		b.WriteUint8(uint8(msb))
	case 2:
		b.WriteUint16(uint16(msb))
	case 3:
		b.WriteUint24(uint32(msb))
	}
	return nil
}

func formatHex64(v uint64) string {
	return fmt.Sprintf("0x%016x", v)
}

func parseHex64(v any) (uint64, bool) {
	if s, ok := v.(string); ok {
		u, err := strconv.ParseUint(s, 0, 64)
		return u, err == nil
	}
	return toUint64(v)
}

func (b *Buffer) readOctetStr(long bool) (any, error) {
	n, invalid, err := b.readLength(long)
	if err != nil || invalid {
		return nil, err
	}
	return value(b.ReadBytes(n))
}

func (b *Buffer) readCharStr(long bool) (any, error) {
	n, invalid, err := b.readLength(long)
	if err != nil || invalid {
		return nil, err
	}
	p, err := b.ReadBytes(n)
	return value(string(p), err)
}

// readLength reads a string length prefix. An all-ones length marks an
// invalid string with no body.
func (b *Buffer) readLength(long bool) (int, bool, error) {
	if long {
		n, err := b.ReadUint16()
		return int(n), n == 0xFFFF, err
	}
	n, err := b.ReadUint8()
	return int(n), n == 0xFF, err
}

func (b *Buffer) writeLength(t DataType, n int, long bool) error {
	if long {
		if n > 0xFFFE {
			return fmt.Errorf("zcl: data too long for %s: %d (max 65534)", t, n)
		}
		b.WriteUint16(uint16(n))
		return nil
	}
	if n > 0xFE {
		return fmt.Errorf("zcl: data too long for %s: %d (max 254)", t, n)
	}
	b.WriteUint8(uint8(n))
	return nil
}

func (b *Buffer) writeInvalidLength(long bool) {
	if long {
		b.WriteUint16(0xFFFF)
	} else {
		b.WriteUint8(0xFF)
	}
}

func (b *Buffer) writeOctetStr(t DataType, v any, long bool) error {
	if v == nil {
		b.writeInvalidLength(long)
		return nil
	}
	var p []byte
	if s, ok := v.(string); ok {
		p = []byte(s)
	} else if p, ok = toBytes(v); !ok {
		return convertError(v, t)
	}
	if err := b.writeLength(t, len(p), long); err != nil {
		return err
	}
	b.WriteBytes(p)
	return nil
}

// writeCharStr writes a length-prefixed string. A byte slice is taken as an
// already framed string and written verbatim.
func (b *Buffer) writeCharStr(t DataType, v any, long bool) error {
	switch s := v.(type) {
	case nil:
		b.writeInvalidLength(long)
		return nil
	case string:
		if err := b.writeLength(t, len(s), long); err != nil {
			return err
		}
		b.WriteBytes([]byte(s))
		return nil
	case XiaomiTLV:
		if long {
			return convertError(v, t)
		}
		return b.writeXiaomiTLV(s)
	}
	p, ok := toBytes(v)
	if !ok {
		return convertError(v, t)
	}
	b.WriteBytes(p)
	return nil
}
