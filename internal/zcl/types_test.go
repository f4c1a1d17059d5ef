package zcl

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func readOne(t *testing.T, typ DataType, data []byte, opts Options) (any, *Buffer) {
	t.Helper()
	b := NewBuffer(data)
	v, err := b.Read(typ, opts)
	if err != nil {
		t.Fatal(err)
	}
	return v, b
}

func writeOne(t *testing.T, typ DataType, v any, opts Options) []byte {
	t.Helper()
	b := NewBuffer(nil)
	if err := b.Write(typ, v, opts); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func TestReadWriteUint8(t *testing.T) {
	v, b := readOne(t, TypeUint8, []byte{0x42}, Options{})
	if b.Position() != 1 {
		t.Errorf("position %d, want 1", b.Position())
	}
	if v.(uint8) != 0x42 {
		t.Errorf("got %v, want 0x42", v)
	}

	if got := writeOne(t, TypeUint8, uint8(0x42), Options{}); !bytes.Equal(got, []byte{0x42}) {
		t.Errorf("encoded %X, want 42", got)
	}
}

func TestReadUint16(t *testing.T) {
	v, _ := readOne(t, TypeUint16, []byte{0x34, 0x12}, Options{})
	if v.(uint16) != 0x1234 {
		t.Errorf("got %v, want 0x1234", v)
	}
}

func TestReadWriteBool(t *testing.T) {
	v, _ := readOne(t, TypeBool, []byte{0x01}, Options{})
	if v.(bool) != true {
		t.Error("expected true")
	}
	v, _ = readOne(t, TypeBool, []byte{0x00}, Options{})
	if v.(bool) != false {
		t.Error("expected false")
	}

	if got := writeOne(t, TypeBool, true, Options{}); !bytes.Equal(got, []byte{1}) {
		t.Errorf("encoded %X, want 01", got)
	}
}

func TestReadInt16Negative(t *testing.T) {
	v, _ := readOne(t, TypeInt16, []byte{0x9C, 0xFF}, Options{}) // -100
	if v.(int16) != -100 {
		t.Errorf("got %v, want -100", v)
	}

	if got := writeOne(t, TypeInt16, -100, Options{}); !bytes.Equal(got, []byte{0x9C, 0xFF}) {
		t.Errorf("encoded %X, want 9CFF", got)
	}
}

func TestReadInt24SignExtends(t *testing.T) {
	v, _ := readOne(t, TypeInt24, []byte{0xFE, 0xFF, 0xFF}, Options{})
	if v.(int32) != -2 {
		t.Errorf("got %v, want -2", v)
	}
	v, _ = readOne(t, TypeInt24, []byte{0x01, 0x00, 0x00}, Options{})
	if v.(int32) != 1 {
		t.Errorf("got %v, want 1", v)
	}

	if got := writeOne(t, TypeInt24, -2, Options{}); !bytes.Equal(got, []byte{0xFE, 0xFF, 0xFF}) {
		t.Errorf("encoded %X, want FEFFFF", got)
	}
}

func TestReadUint24(t *testing.T) {
	v, _ := readOne(t, TypeUint24, []byte{0x01, 0x02, 0x03}, Options{})
	if v.(uint32) != 0x030201 {
		t.Errorf("got %v, want 0x030201", v)
	}
}

func TestReadWriteFloat32(t *testing.T) {
	data := []byte{0x00, 0x00, 0x20, 0x41} // 10.0
	v, _ := readOne(t, TypeFloat32, data, Options{})
	if v.(float32) != 10.0 {
		t.Errorf("got %v, want 10.0", v)
	}

	if got := writeOne(t, TypeFloat32, 10.0, Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %X, want %X", got, data)
	}
}

func TestReadFloat16(t *testing.T) {
	v, _ := readOne(t, TypeFloat16, []byte{0x00, 0x3C}, Options{}) // 1.0
	if v.(float32) != 1.0 {
		t.Errorf("got %v, want 1.0", v)
	}
}

func TestReadFloat64(t *testing.T) {
	w := NewBuffer(nil)
	w.WriteUint64(math.Float64bits(-2.5))
	v, _ := readOne(t, TypeFloat64, w.Bytes(), Options{})
	if v.(float64) != -2.5 {
		t.Errorf("got %v, want -2.5", v)
	}
}

func TestReadWriteCharStr(t *testing.T) {
	data := []byte{5, 'h', 'e', 'l', 'l', 'o'}
	v, b := readOne(t, TypeCharStr, data, Options{})
	if v.(string) != "hello" {
		t.Errorf("got %q, want %q", v, "hello")
	}
	if b.Position() != 6 {
		t.Errorf("position %d, want 6", b.Position())
	}

	if got := writeOne(t, TypeCharStr, "hello", Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %X, want %X", got, data)
	}
}

func TestReadWriteLongCharStr(t *testing.T) {
	data := []byte{5, 0, 'h', 'e', 'l', 'l', 'o'}
	v, _ := readOne(t, TypeCharStr16, data, Options{})
	if v.(string) != "hello" {
		t.Errorf("got %q, want %q", v, "hello")
	}

	if got := writeOne(t, TypeCharStr16, "hello", Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %X, want %X", got, data)
	}
}

func TestCharStrInvalidLength(t *testing.T) {
	v, b := readOne(t, TypeCharStr, []byte{0xFF, 0x01}, Options{})
	if v != nil {
		t.Errorf("got %v, want nil", v)
	}
	if b.Position() != 1 {
		t.Errorf("position %d, want 1", b.Position())
	}

	if got := writeOne(t, TypeCharStr, nil, Options{}); !bytes.Equal(got, []byte{0xFF}) {
		t.Errorf("encoded %X, want FF", got)
	}
}

func TestWriteCharStrFromBytesIsVerbatim(t *testing.T) {
	raw := []byte{0x07, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x14}
	if got := writeOne(t, TypeCharStr, raw, Options{}); !bytes.Equal(got, raw) {
		t.Errorf("encoded %X, want %X", got, raw)
	}
	if got := writeOne(t, TypeCharStr, []any{7.0, 0.0}, Options{}); !bytes.Equal(got, []byte{7, 0}) {
		t.Errorf("encoded %X, want 0700", got)
	}
}

func TestReadWriteOctetStr(t *testing.T) {
	data := []byte{3, 0xAA, 0xBB, 0xCC}
	v, _ := readOne(t, TypeOctetStr, data, Options{})
	if !bytes.Equal(v.([]byte), []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("got %X, want AABBCC", v)
	}

	if got := writeOne(t, TypeOctetStr, []byte{0xAA, 0xBB, 0xCC}, Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %X, want %X", got, data)
	}
}

func TestWriteCharStrTooLong(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Write(TypeCharStr, string(make([]byte, 255)), Options{}); err == nil {
		t.Error("expected error for 255 byte string")
	}
}

func TestReadWriteEUI64(t *testing.T) {
	data := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	v, _ := readOne(t, TypeEUI64, data, Options{})
	if v.(string) != "0x0102030405060708" {
		t.Errorf("got %v, want 0x0102030405060708", v)
	}

	if got := writeOne(t, TypeEUI64, "0x0102030405060708", Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %X, want %X", got, data)
	}
}

func TestReadUint64AsHex(t *testing.T) {
	v, _ := readOne(t, TypeUint64, []byte{1, 5, 4, 5, 6, 7, 7, 9}, Options{})
	if v.(string) != "0x0907070605040501" {
		t.Errorf("got %v, want 0x0907070605040501", v)
	}

	want := []byte{1, 5, 4, 5, 6, 7, 7, 9}
	if got := writeOne(t, TypeUint64, "0x0907070605040501", Options{}); !bytes.Equal(got, want) {
		t.Errorf("encoded %X, want %X", got, want)
	}
}

func TestReadUTC(t *testing.T) {
	v, _ := readOne(t, TypeUTC, []byte{234, 83, 218, 36}, Options{})
	if v.(uint32) != 618288106 {
		t.Errorf("got %v, want 618288106", v)
	}
}

func TestReadUnderrun(t *testing.T) {
	b := NewBuffer([]byte{0x01})
	_, err := b.Read(TypeUint16, Options{})
	if !errors.Is(err, ErrBufferUnderrun) {
		t.Errorf("got %v, want ErrBufferUnderrun", err)
	}
}

func TestWriteOverflow(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Write(TypeUint8, 256, Options{}); err == nil {
		t.Error("expected overflow error for 256 as uint8")
	}
	if err := b.Write(TypeInt8, -129, Options{}); err == nil {
		t.Error("expected overflow error for -129 as int8")
	}
	if err := b.Write(TypeUint16, "abc", Options{}); err == nil {
		t.Error("expected conversion error for string as uint16")
	}
}

func TestWriteAcceptsLooseNumbers(t *testing.T) {
	for _, v := range []any{3, uint16(3), 3.0, "3", int64(3)} {
		if got := writeOne(t, TypeUint16, v, Options{}); !bytes.Equal(got, []byte{3, 0}) {
			t.Errorf("%T: encoded %X, want 0300", v, got)
		}
	}
}

func TestUseDataType(t *testing.T) {
	v, _ := readOne(t, TypeUseDataType, []byte{0x10, 0x00}, Options{DataType: TypeUint16})
	if v.(uint16) != 16 {
		t.Errorf("got %v, want 16", v)
	}

	b := NewBuffer([]byte{0x00})
	if _, err := b.Read(TypeUseDataType, Options{DataType: TypeListUint8}); !errors.Is(err, ErrUnknownDataType) {
		t.Errorf("got %v, want ErrUnknownDataType", err)
	}
}

func TestTypeSize(t *testing.T) {
	tests := []struct {
		typ  DataType
		want int
	}{
		{TypeNoData, 0},
		{TypeBool, 1},
		{TypeUint8, 1},
		{TypeUint16, 2},
		{TypeAttrID, 2},
		{TypeUint24, 3},
		{TypeFloat32, 4},
		{TypeUTC, 4},
		{TypeUint40, 5},
		{TypeInt48, 6},
		{TypeBitmap56, 7},
		{TypeEUI64, 8},
		{TypeSecKey, 16},
		{TypeCharStr, -1},
		{TypeArray, -1},
		{TypeListUint8, -1},
	}
	for _, tt := range tests {
		if got := TypeSize(tt.typ); got != tt.want {
			t.Errorf("TypeSize(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	analog := []DataType{TypeUint8, TypeInt16, TypeUint48, TypeFloat32, TypeToD, TypeDate, TypeUTC}
	for _, typ := range analog {
		c, err := Classify(typ)
		if err != nil {
			t.Fatal(err)
		}
		if c != ClassAnalog {
			t.Errorf("Classify(%s) = %s, want analog", typ, c)
		}
	}

	discrete := []DataType{TypeData8, TypeBool, TypeBitmap16, TypeEnum8, TypeCharStr, TypeStruct, TypeEUI64, TypeAttrID}
	for _, typ := range discrete {
		c, err := Classify(typ)
		if err != nil {
			t.Fatal(err)
		}
		if c != ClassDiscrete {
			t.Errorf("Classify(%s) = %s, want discrete", typ, c)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	_, err := Classify(DataType(99))
	if !errors.Is(err, ErrUnknownDataType) {
		t.Fatalf("got %v, want ErrUnknownDataType", err)
	}
	want := "zcl: unknown data type: don't know value type for 0x63"
	if err.Error() != want {
		t.Errorf("error %q, want %q", err.Error(), want)
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"uint8", TypeUint8},
		{"UINT8", TypeUint8},
		{"string", TypeCharStr},
		{"listUint16", TypeListUint16},
		{"0x20", TypeUint8},
		{"33", TypeUint16},
	}
	for _, tt := range tests {
		got, err := ParseDataType(tt.in)
		if err != nil {
			t.Fatalf("ParseDataType(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDataType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDataType("notatype"); !errors.Is(err, ErrUnknownDataType) {
		t.Errorf("got %v, want ErrUnknownDataType", err)
	}
}

func TestDataTypeString(t *testing.T) {
	if TypeUint8.String() != "uint8" {
		t.Errorf("got %q, want uint8", TypeUint8.String())
	}
	if TypeName(TypeEUI64) != "EUI64" {
		t.Errorf("got %q, want EUI64", TypeName(TypeEUI64))
	}
	if DataType(0x99).String() != "0x99" {
		t.Errorf("got %q, want 0x99", DataType(0x99).String())
	}
	if !TypeUnknown.IsWire() || TypeBuffer.IsWire() {
		t.Error("IsWire misclassifies codec-only types")
	}
}
