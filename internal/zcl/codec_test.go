package zcl

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestReadArray(t *testing.T) {
	v, b := readOne(t, TypeArray, []byte{32, 3, 0, 1, 2, 3}, Options{})
	want := Array{ElementType: TypeUint8, Elements: []any{uint8(1), uint8(2), uint8(3)}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
	if b.Position() != 6 {
		t.Errorf("position %d, want 6", b.Position())
	}
}

func TestWriteArray(t *testing.T) {
	arr := Array{ElementType: TypeUint8, Elements: []any{1, 2, 3}}
	want := []byte{32, 3, 0, 1, 2, 3}
	if got := writeOne(t, TypeArray, arr, Options{}); !bytes.Equal(got, want) {
		t.Errorf("encoded %v, want %v", got, want)
	}

	// JSON shaped input, as it arrives from the API.
	var loose any
	if err := json.Unmarshal([]byte(`{"elementType":33,"elements":[1,258]}`), &loose); err != nil {
		t.Fatal(err)
	}
	want = []byte{33, 2, 0, 1, 0, 2, 1}
	if got := writeOne(t, TypeSet, loose, Options{}); !bytes.Equal(got, want) {
		t.Errorf("encoded %v, want %v", got, want)
	}
}

func TestReadStruct(t *testing.T) {
	b := NewBuffer([]byte{0, 2, 0, 32, 8, 33, 4, 0})
	if _, err := b.ReadUint8(); err != nil {
		t.Fatal(err)
	}
	v, err := b.Read(TypeStruct, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []StructElement{{Type: TypeUint8, Value: uint8(8)}, {Type: TypeUint16, Value: uint16(4)}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
	if b.Position() != 8 {
		t.Errorf("position %d, want 8", b.Position())
	}

	if got := writeOne(t, TypeStruct, want, Options{}); !bytes.Equal(got, []byte{2, 0, 32, 8, 33, 4, 0}) {
		t.Errorf("encoded %v", got)
	}
}

func TestReadWriteExtensionFieldSets(t *testing.T) {
	data := []byte{5, 0, 3, 1, 2, 3}
	v, _ := readOne(t, TypeExtensionFieldSets, data, Options{})
	want := []ExtensionFieldSet{{ClusterID: 5, Data: []byte{1, 2, 3}}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}

	if got := writeOne(t, TypeExtensionFieldSets, want, Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %v, want %v", got, data)
	}
}

func TestReadWriteZoneInfo(t *testing.T) {
	data := []byte{1, 5, 0, 2, 6, 0}
	v, _ := readOne(t, TypeListZoneInfo, data, Options{Length: 2})
	want := []ZoneInfo{{ZoneID: 1, ZoneStatus: 5}, {ZoneID: 2, ZoneStatus: 6}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}

	if got := writeOne(t, TypeListZoneInfo, want, Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %v, want %v", got, data)
	}
}

func TestReadChunkedIntegers(t *testing.T) {
	tests := []struct {
		typ  DataType
		data []byte
		want []uint32
	}{
		{TypeUint40, []byte{40, 0, 0, 0, 30}, []uint32{30, 40}},
		{TypeUint48, []byte{1, 5, 4, 5, 6, 7}, []uint32{1798, 84149505}},
		{TypeUint56, []byte{1, 5, 4, 5, 6, 7, 7}, []uint32{460550, 84149505}},
	}
	for _, tt := range tests {
		v, b := readOne(t, tt.typ, tt.data, Options{})
		if !reflect.DeepEqual(v, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.typ, v, tt.want)
		}
		if b.Remaining() != 0 {
			t.Errorf("%s: %d bytes left", tt.typ, b.Remaining())
		}
		if got := writeOne(t, tt.typ, tt.want, Options{}); !bytes.Equal(got, tt.data) {
			t.Errorf("%s: encoded %v, want %v", tt.typ, got, tt.data)
		}
	}
}

func TestWriteChunkedFromInteger(t *testing.T) {
	want := []byte{1, 5, 4, 5, 6, 7}
	if got := writeOne(t, TypeUint48, uint64(1798)<<32|84149505, Options{}); !bytes.Equal(got, want) {
		t.Errorf("encoded %v, want %v", got, want)
	}
}

func TestWriteChunkedRejectsBadInput(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.Write(TypeUint56, []any{1, 2, 3}, Options{}); err == nil {
		t.Error("expected error for three chunks")
	}
	if err := b.Write(TypeUint40, []uint32{256, 0}, Options{}); err == nil {
		t.Error("expected overflow error for msb 256 in uint40")
	}
}

func TestReadWriteLists(t *testing.T) {
	v, _ := readOne(t, TypeListUint16, []byte{10, 0, 20, 0}, Options{Length: 2})
	if !reflect.DeepEqual(v, []uint16{10, 20}) {
		t.Errorf("got %v, want [10 20]", v)
	}
	v, _ = readOne(t, TypeListUint24, []byte{1, 0, 0}, Options{Length: 1})
	if !reflect.DeepEqual(v, []uint32{1}) {
		t.Errorf("got %v, want [1]", v)
	}

	if got := writeOne(t, TypeListUint16, []any{10.0, 20.0}, Options{}); !bytes.Equal(got, []byte{10, 0, 20, 0}) {
		t.Errorf("encoded %v", got)
	}
	b := NewBuffer(nil)
	if err := b.Write(TypeListUint8, []int{300}, Options{}); err == nil {
		t.Error("expected overflow error for 300 in listUint8")
	}
}

func TestReadBuffer(t *testing.T) {
	v, b := readOne(t, TypeBuffer, []byte{1, 2, 3, 4}, Options{Length: 2})
	if !bytes.Equal(v.([]byte), []byte{1, 2}) || b.Remaining() != 2 {
		t.Errorf("got %v with %d left", v, b.Remaining())
	}
	v, b = readOne(t, TypeBuffer, []byte{1, 2, 3, 4}, Options{})
	if !bytes.Equal(v.([]byte), []byte{1, 2, 3, 4}) || b.Remaining() != 0 {
		t.Errorf("got %v with %d left", v, b.Remaining())
	}
}

func TestReadWriteTimeOfDayAndDate(t *testing.T) {
	v, _ := readOne(t, TypeToD, []byte{13, 45, 30, 50}, Options{})
	tod := TimeOfDay{Hours: 13, Minutes: 45, Seconds: 30, Hundredths: 50}
	if v != tod {
		t.Errorf("got %+v, want %+v", v, tod)
	}
	if got := writeOne(t, TypeToD, tod, Options{}); !bytes.Equal(got, []byte{13, 45, 30, 50}) {
		t.Errorf("encoded %v", got)
	}

	v, _ = readOne(t, TypeDate, []byte{124, 10, 17, 6}, Options{})
	date := Date{Year: 2024, Month: 10, Day: 17, DayOfWeek: 6}
	if v != date {
		t.Errorf("got %+v, want %+v", v, date)
	}
	if got := writeOne(t, TypeDate, map[string]any{"year": 2024, "month": 10, "day": 17, "dayOfWeek": 6}, Options{}); !bytes.Equal(got, []byte{124, 10, 17, 6}) {
		t.Errorf("encoded %v", got)
	}

	b := NewBuffer(nil)
	if err := b.Write(TypeDate, Date{Year: 1800}, Options{}); err == nil {
		t.Error("expected error for year 1800")
	}
}

func TestThermoTransitions(t *testing.T) {
	fields := Fields{"numoftrans": uint8(2), "mode": uint8(thermoModeHeat | thermoModeCool)}
	data := []byte{
		0x68, 0x01, 0xD0, 0x07, 0x98, 0x08, // 360 min, heat 20.00, cool 22.00
		0x20, 0x03, 0x08, 0x07, 0x60, 0x09,
	}
	v, b := readOne(t, TypeListThermoTransitions, data, Options{Fields: fields})
	trs := v.([]ThermoTransition)
	if len(trs) != 2 || b.Remaining() != 0 {
		t.Fatalf("got %d transitions with %d bytes left", len(trs), b.Remaining())
	}
	if trs[0].TransitionTime != 360 || *trs[0].HeatSetpoint != 2000 || *trs[0].CoolSetpoint != 2200 {
		t.Errorf("first transition %+v", trs[0])
	}
	if got := writeOne(t, TypeListThermoTransitions, trs, Options{Fields: fields}); !bytes.Equal(got, data) {
		t.Errorf("encoded %X, want %X", got, data)
	}

	heatOnly := Fields{"numoftrans": 1, "mode": thermoModeHeat}
	v, _ = readOne(t, TypeListThermoTransitions, []byte{0x00, 0x00, 0xD0, 0x07}, Options{Fields: heatOnly})
	if tr := v.([]ThermoTransition)[0]; tr.CoolSetpoint != nil || *tr.HeatSetpoint != 2000 {
		t.Errorf("heat only transition %+v", tr)
	}
	b = NewBuffer(nil)
	if err := b.Write(TypeListThermoTransitions, []ThermoTransition{{}}, Options{Fields: heatOnly}); err == nil {
		t.Error("expected error for missing heat setpoint")
	}
}

func TestTuyaDataPoints(t *testing.T) {
	data := []byte{
		0x01, 0x01, 0x00, 0x01, 0x01, // dp 1 bool on
		0x02, 0x02, 0x00, 0x04, 0x00, 0x00, 0x00, 0xC8, // dp 2 value 200
	}
	v, _ := readOne(t, TypeListTuyaDataPointValues, data, Options{})
	want := []TuyaDataPoint{
		{DP: 1, DataType: 1, Data: []byte{0x01}},
		{DP: 2, DataType: 2, Data: []byte{0x00, 0x00, 0x00, 0xC8}},
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %+v, want %+v", v, want)
	}
	if got := writeOne(t, TypeListTuyaDataPointValues, want, Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %X, want %X", got, data)
	}
}

func TestStructuredSelector(t *testing.T) {
	data := []byte{0x02, 0x01, 0x00, 0x03, 0x00}
	v, _ := readOne(t, TypeStructuredSelector, data, Options{})
	want := StructuredSelector{Indicator: 2, Indexes: []uint16{1, 3}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %+v, want %+v", v, want)
	}
	if got := writeOne(t, TypeStructuredSelector, StructuredSelector{Indexes: []uint16{1, 3}}, Options{}); !bytes.Equal(got, data) {
		t.Errorf("encoded %X, want %X", got, data)
	}

	b := NewBuffer(nil)
	if err := b.Write(TypeStructuredSelector, StructuredSelector{Indicator: 3, Indexes: []uint16{1}}, Options{}); err == nil {
		t.Error("expected error for mismatched indicator")
	}
}

func TestXiaomiTLV(t *testing.T) {
	// The length announces 34 bytes but only 33 follow.
	data := []byte{34, 1, 33, 213, 12, 3, 40, 33, 4, 33, 168, 19, 5, 33, 43, 0, 6, 36, 0, 0, 5, 0, 0,
		8, 33, 4, 2, 10, 33, 0, 0, 100, 16, 0}
	v, b := readOne(t, TypeCharStr, data, Options{AttrID: AttrXiaomiTLV})
	if b.Remaining() != 0 {
		t.Errorf("%d bytes left", b.Remaining())
	}
	tlv := v.(XiaomiTLV)
	if len(tlv) != 8 {
		t.Fatalf("got %d entries, want 8", len(tlv))
	}
	if got, _ := tlv.Get(1); got != uint16(3285) {
		t.Errorf("tag 1 = %v, want 3285", got)
	}
	if got, _ := tlv.Get(3); got != int8(33) {
		t.Errorf("tag 3 = %v, want 33", got)
	}
	if got, _ := tlv.Get(6); !reflect.DeepEqual(got, []uint32{0, 327680}) {
		t.Errorf("tag 6 = %v, want [0 327680]", got)
	}
	if got, _ := tlv.Get(100); got != false {
		t.Errorf("tag 100 = %v, want false", got)
	}
	if _, ok := tlv.Get(2); ok {
		t.Error("tag 2 should be absent")
	}

	out, err := json.Marshal(tlv)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"1":3285,"3":33,"4":5032,"5":43,"6":[0,327680],"8":516,"10":0,"100":false}`
	if string(out) != want {
		t.Errorf("json %s, want %s", out, want)
	}

	// Written back with the true length.
	enc := writeOne(t, TypeCharStr, tlv, Options{AttrID: AttrXiaomiTLV})
	if enc[0] != 33 || !bytes.Equal(enc[1:], data[1:]) {
		t.Errorf("encoded %v", enc)
	}
}

func TestReadSecKey(t *testing.T) {
	key := bytes.Repeat([]byte{0xAB}, 16)
	v, _ := readOne(t, TypeSecKey, key, Options{})
	if !bytes.Equal(v.([]byte), key) {
		t.Errorf("got %X", v)
	}
	b := NewBuffer(nil)
	if err := b.Write(TypeSecKey, []byte{1, 2}, Options{}); err == nil {
		t.Error("expected error for short key")
	}
}
