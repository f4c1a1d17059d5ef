package zcl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DataType is a ZCL wire data type. Values below 0x100 are the on-air type
// codes; the codec-only shapes used in command parameter lists start at 0x1000
// and never appear on the wire.
type DataType uint16

// ZCL data type IDs
const (
	TypeNoData     DataType = 0x00
	TypeData8      DataType = 0x08
	TypeData16     DataType = 0x09
	TypeData24     DataType = 0x0A
	TypeData32     DataType = 0x0B
	TypeData40     DataType = 0x0C
	TypeData48     DataType = 0x0D
	TypeData56     DataType = 0x0E
	TypeData64     DataType = 0x0F
	TypeBool       DataType = 0x10
	TypeBitmap8    DataType = 0x18
	TypeBitmap16   DataType = 0x19
	TypeBitmap24   DataType = 0x1A
	TypeBitmap32   DataType = 0x1B
	TypeBitmap40   DataType = 0x1C
	TypeBitmap48   DataType = 0x1D
	TypeBitmap56   DataType = 0x1E
	TypeBitmap64   DataType = 0x1F
	TypeUint8      DataType = 0x20
	TypeUint16     DataType = 0x21
	TypeUint24     DataType = 0x22
	TypeUint32     DataType = 0x23
	TypeUint40     DataType = 0x24
	TypeUint48     DataType = 0x25
	TypeUint56     DataType = 0x26
	TypeUint64     DataType = 0x27
	TypeInt8       DataType = 0x28
	TypeInt16      DataType = 0x29
	TypeInt24      DataType = 0x2A
	TypeInt32      DataType = 0x2B
	TypeInt40      DataType = 0x2C
	TypeInt48      DataType = 0x2D
	TypeInt56      DataType = 0x2E
	TypeInt64      DataType = 0x2F
	TypeEnum8      DataType = 0x30
	TypeEnum16     DataType = 0x31
	TypeFloat16    DataType = 0x38
	TypeFloat32    DataType = 0x39
	TypeFloat64    DataType = 0x3A
	TypeOctetStr   DataType = 0x41
	TypeCharStr    DataType = 0x42
	TypeOctetStr16 DataType = 0x43
	TypeCharStr16  DataType = 0x44
	TypeArray      DataType = 0x48
	TypeStruct     DataType = 0x4C
	TypeSet        DataType = 0x50
	TypeBag        DataType = 0x51
	TypeToD        DataType = 0xE0 // Time of Day
	TypeDate       DataType = 0xE1
	TypeUTC        DataType = 0xE2
	TypeClusterID  DataType = 0xE8
	TypeAttrID     DataType = 0xE9
	TypeBACnetOID  DataType = 0xEA
	TypeEUI64      DataType = 0xF0
	TypeSecKey     DataType = 0xF1
	TypeUnknown    DataType = 0xFF
)

// Codec-only parameter shapes.
const (
	// TypeUseDataType takes its wire type from Options.DataType.
	TypeUseDataType DataType = 0x1000 + iota
	TypeListUint8
	TypeListUint16
	TypeListUint24
	TypeListUint32
	TypeListZoneInfo
	TypeExtensionFieldSets
	TypeListThermoTransitions
	TypeListTuyaDataPointValues
	TypeStructuredSelector
	// TypeBuffer is Options.Length raw bytes, or the rest of the frame when
	// Length is zero.
	TypeBuffer
)

var typeNames = map[DataType]string{
	TypeNoData:     "nodata",
	TypeData8:      "data8",
	TypeData16:     "data16",
	TypeData24:     "data24",
	TypeData32:     "data32",
	TypeData40:     "data40",
	TypeData48:     "data48",
	TypeData56:     "data56",
	TypeData64:     "data64",
	TypeBool:       "bool",
	TypeBitmap8:    "map8",
	TypeBitmap16:   "map16",
	TypeBitmap24:   "map24",
	TypeBitmap32:   "map32",
	TypeBitmap40:   "map40",
	TypeBitmap48:   "map48",
	TypeBitmap56:   "map56",
	TypeBitmap64:   "map64",
	TypeUint8:      "uint8",
	TypeUint16:     "uint16",
	TypeUint24:     "uint24",
	TypeUint32:     "uint32",
	TypeUint40:     "uint40",
	TypeUint48:     "uint48",
	TypeUint56:     "uint56",
	TypeUint64:     "uint64",
	TypeInt8:       "int8",
	TypeInt16:      "int16",
	TypeInt24:      "int24",
	TypeInt32:      "int32",
	TypeInt40:      "int40",
	TypeInt48:      "int48",
	TypeInt56:      "int56",
	TypeInt64:      "int64",
	TypeEnum8:      "enum8",
	TypeEnum16:     "enum16",
	TypeFloat16:    "float16",
	TypeFloat32:    "float32",
	TypeFloat64:    "float64",
	TypeOctetStr:   "octstr",
	TypeCharStr:    "string",
	TypeOctetStr16: "octstr16",
	TypeCharStr16:  "string16",
	TypeArray:      "array",
	TypeStruct:     "struct",
	TypeSet:        "set",
	TypeBag:        "bag",
	TypeToD:        "ToD",
	TypeDate:       "date",
	TypeUTC:        "UTC",
	TypeClusterID:  "clusterId",
	TypeAttrID:     "attribId",
	TypeBACnetOID:  "bacOID",
	TypeEUI64:      "EUI64",
	TypeSecKey:     "key128",
	TypeUnknown:    "unk",

	TypeUseDataType:             "useDataType",
	TypeListUint8:               "listUint8",
	TypeListUint16:              "listUint16",
	TypeListUint24:              "listUint24",
	TypeListUint32:              "listUint32",
	TypeListZoneInfo:            "listZoneInfo",
	TypeExtensionFieldSets:      "extensionFieldSets",
	TypeListThermoTransitions:   "listThermoTransitions",
	TypeListTuyaDataPointValues: "listTuyaDataPointValues",
	TypeStructuredSelector:      "structuredSelector",
	TypeBuffer:                  "buffer",
}

var typesByName = func() map[string]DataType {
	m := make(map[string]DataType, len(typeNames))
	for t, name := range typeNames {
		m[strings.ToLower(name)] = t
	}
	return m
}()

// String returns a human-readable name for a ZCL type.
func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint16(t))
}

// TypeName returns a human-readable name for a ZCL type.
func TypeName(t DataType) string { return t.String() }

// ParseDataType resolves a type name (case-insensitive) or a numeric code.
func ParseDataType(s string) (DataType, error) {
	if t, ok := typesByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDataType, s)
	}
	return DataType(v), nil
}

// UnmarshalText lets cluster definition files name types ("uint8") or give
// their code ("0x20"). Encoding stays numeric.
func (t *DataType) UnmarshalText(text []byte) error {
	v, err := ParseDataType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// UnmarshalJSON accepts the numeric code or a quoted name.
func (t *DataType) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return t.UnmarshalText([]byte(s))
	}
	var v uint16
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("zcl: data type: %w", err)
	}
	*t = DataType(v)
	return nil
}

// IsWire reports whether t is an on-air type code.
func (t DataType) IsWire() bool { return t < 0x100 }

// TypeSize returns the fixed size in bytes of a ZCL type, or -1 for variable-length types.
func TypeSize(t DataType) int {
	switch t {
	case TypeNoData:
		return 0
	case TypeData8, TypeBool, TypeBitmap8, TypeUint8, TypeInt8, TypeEnum8:
		return 1
	case TypeData16, TypeBitmap16, TypeUint16, TypeInt16, TypeEnum16, TypeFloat16, TypeClusterID, TypeAttrID:
		return 2
	case TypeData24, TypeBitmap24, TypeUint24, TypeInt24:
		return 3
	case TypeData32, TypeBitmap32, TypeUint32, TypeInt32, TypeFloat32, TypeToD, TypeDate, TypeUTC, TypeBACnetOID:
		return 4
	case TypeData40, TypeBitmap40, TypeUint40, TypeInt40:
		return 5
	case TypeData48, TypeBitmap48, TypeUint48, TypeInt48:
		return 6
	case TypeData56, TypeBitmap56, TypeUint56, TypeInt56:
		return 7
	case TypeData64, TypeBitmap64, TypeUint64, TypeInt64, TypeFloat64, TypeEUI64:
		return 8
	case TypeSecKey:
		return 16
	default:
		return -1
	}
}

// Class separates types whose values can be compared numerically (analog)
// from those that cannot (discrete). Reportable change only applies to analog
// attributes.
type Class uint8

const (
	ClassDiscrete Class = iota
	ClassAnalog
)

func (c Class) String() string {
	if c == ClassAnalog {
		return "analog"
	}
	return "discrete"
}

// Classify returns the class of a wire type.
func Classify(t DataType) (Class, error) {
	switch {
	case t >= TypeData8 && t <= TypeData64,
		t == TypeBool,
		t >= TypeBitmap8 && t <= TypeBitmap64,
		t == TypeEnum8, t == TypeEnum16,
		t >= TypeOctetStr && t <= TypeCharStr16,
		t == TypeArray, t == TypeStruct, t == TypeSet, t == TypeBag,
		t == TypeClusterID, t == TypeAttrID, t == TypeBACnetOID,
		t == TypeEUI64, t == TypeSecKey:
		return ClassDiscrete, nil
	case t >= TypeUint8 && t <= TypeInt64,
		t >= TypeFloat16 && t <= TypeFloat64,
		t == TypeToD, t == TypeDate, t == TypeUTC:
		return ClassAnalog, nil
	}
	return 0, fmt.Errorf("%w: don't know value type for %s", ErrUnknownDataType, t)
}
