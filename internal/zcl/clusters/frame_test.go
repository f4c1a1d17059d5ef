package clusters

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"zigbee-zcl/internal/zcl"
)

func parse(t *testing.T, clusterName string, data []byte) *zcl.Frame {
	t.Helper()
	c := cluster(t, zcl.ByName(clusterName), 0)
	f, err := registry(t).ParseFrame(c.ID, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func build(t *testing.T, spec zcl.FrameSpec) []byte {
	t.Helper()
	f, err := registry(t).NewFrame(spec)
	if err != nil {
		t.Fatal(err)
	}
	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func checkHeader(t *testing.T, got, want zcl.Header) {
	t.Helper()
	if got != want {
		t.Errorf("header %+v, want %+v", got, want)
	}
}

func checkPayload(t *testing.T, got, want zcl.Payload) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("payload %#v, want %#v", got, want)
	}
}

func serverToClient(tsn, cmd uint8) zcl.Header {
	return zcl.Header{
		FrameControl: zcl.FrameControl{
			FrameType:              zcl.FrameTypeGlobal,
			Direction:              zcl.DirectionServerToClient,
			DisableDefaultResponse: true,
		},
		TransactionSequence: tsn,
		CommandID:           cmd,
	}
}

func TestParseReport(t *testing.T) {
	f := parse(t, "genAnalogInput", []byte{0x18, 0x4a, 0x0a, 0x55, 0x00, 0x39, 0x00, 0x00, 0x00, 0x00})
	checkHeader(t, f.Header(), serverToClient(74, 10))
	checkPayload(t, f.Payload(), zcl.AttributeRecords{{AttrID: 85, DataType: zcl.TypeFloat32, Value: float32(0)}})

	if !f.IsGlobal() || f.IsClusterSpecific() {
		t.Error("report should be a global frame")
	}
	if !f.MatchesCluster("genAnalogInput") || f.MatchesCluster("genBasic") {
		t.Error("cluster match wrong")
	}
	if !f.MatchesCommand("report") || f.MatchesCommand("read") {
		t.Error("command match wrong")
	}
}

func TestParseManufacturerSpecificCommand(t *testing.T) {
	f := parse(t, "genScenes", []byte{0x05, 0x7c, 0x11, 0x1d, 0x07, 0x00, 0x01, 0x0d, 0x00})
	checkHeader(t, f.Header(), zcl.Header{
		FrameControl:        zcl.FrameControl{FrameType: zcl.FrameTypeSpecific, ManufacturerSpecific: true},
		ManufacturerCode:    4476,
		TransactionSequence: 29,
		CommandID:           7,
	})
	checkPayload(t, f.Payload(), zcl.Fields{"value": uint16(256), "value2": uint16(13)})
	if !f.MatchesCommand("tradfriArrowSingle") {
		t.Errorf("command %s", f.Command().Name)
	}
}

func TestParseListPayload(t *testing.T) {
	f := parse(t, "genGroups", []byte{0x11, 0x7c, 0x02, 2, 10, 0, 20, 0})
	checkPayload(t, f.Payload(), zcl.Fields{"groupcount": uint8(2), "grouplist": []uint16{10, 20}})
	if !f.MatchesCommand("getMembership") {
		t.Errorf("command %s", f.Command().Name)
	}
}

func TestParseCommandResponse(t *testing.T) {
	f := parse(t, "genGroups", []byte{0x19, 0x7c, 0x03, 0, 10, 0})
	checkPayload(t, f.Payload(), zcl.Fields{"status": uint8(0), "groupid": uint16(10)})
	if !f.MatchesCommand("removeRsp") {
		t.Errorf("command %s", f.Command().Name)
	}
}

func TestParseOccupancyReport(t *testing.T) {
	f := parse(t, "msOccupancySensing", []byte{24, 169, 10, 0, 0, 24, 1})
	checkPayload(t, f.Payload(), zcl.AttributeRecords{{AttrID: 0, DataType: zcl.TypeBitmap8, Value: uint8(1)}})
}

func TestParseConfigReportResponse(t *testing.T) {
	f := parse(t, "genPowerCfg", []byte{0x08, 0x01, 0x07, 0x00})
	checkPayload(t, f.Payload(), zcl.ConfigureReportingResponse{zcl.ReportingSuccess{}})

	f = parse(t, "genPowerCfg", []byte{0x08, 0x01, 0x07, 0x02, 0x01, 0x01, 0x01})
	checkPayload(t, f.Payload(), zcl.ConfigureReportingResponse{
		zcl.ReportingFailure{Status: 2, Direction: 1, AttrID: 257},
	})
}

func TestParseDefaultResponse(t *testing.T) {
	f := parse(t, "genBasic", []byte{0x18, 0x04, 0x0b, 0x0c, 0x82})
	checkHeader(t, f.Header(), serverToClient(4, 11))
	checkPayload(t, f.Payload(), zcl.DefaultResponse{CommandID: 12, Status: 130})
}

func TestParseXiaomiReport(t *testing.T) {
	data := []byte{28, 95, 17, 3, 10, 5, 0, 66, 21, 108, 117, 109, 105, 46, 115, 101, 110, 115, 111, 114, 95, 119,
		108, 101, 97, 107, 46, 97, 113, 49, 1, 255, 66, 34, 1, 33, 213, 12, 3, 40, 33, 4, 33, 168, 19, 5, 33, 43, 0,
		6, 36, 0, 0, 5, 0, 0, 8, 33, 4, 2, 10, 33, 0, 0, 100, 16, 0}
	f := parse(t, "genBasic", data)

	want := serverToClient(3, 10)
	want.FrameControl.ManufacturerSpecific = true
	want.ManufacturerCode = 4447
	checkHeader(t, f.Header(), want)

	out, err := json.Marshal(f.Payload())
	if err != nil {
		t.Fatal(err)
	}
	wantJSON := `[{"attrId":5,"dataType":66,"attrData":"lumi.sensor_wleak.aq1"},` +
		`{"attrId":65281,"dataType":66,"attrData":{"1":3285,"3":33,"4":5032,"5":43,"6":[0,327680],"8":516,"10":0,"100":false}}]`
	if string(out) != wantJSON {
		t.Errorf("payload %s\nwant %s", out, wantJSON)
	}

	tlv, ok := f.Payload().(zcl.AttributeRecords)[1].Value.(zcl.XiaomiTLV)
	if !ok {
		t.Fatalf("attribute 0xFF01 decoded as %T", f.Payload().(zcl.AttributeRecords)[1].Value)
	}
	if v, _ := tlv.Get(1); v != uint16(3285) {
		t.Errorf("battery = %v, want 3285", v)
	}
}

func TestParseStruct(t *testing.T) {
	data := []byte{28, 52, 18, 194, 10, 2, 255, 76, 6, 0, 16, 1, 33, 206, 11, 33, 168, 67, 36, 1, 0, 0, 0, 0,
		33, 48, 2, 32, 86}
	f := parse(t, "genBasic", data)

	want := serverToClient(194, 10)
	want.FrameControl.ManufacturerSpecific = true
	want.ManufacturerCode = 4660
	checkHeader(t, f.Header(), want)

	checkPayload(t, f.Payload(), zcl.AttributeRecords{{
		AttrID:   0xFF02,
		DataType: zcl.TypeStruct,
		Value: []zcl.StructElement{
			{Type: zcl.TypeBool, Value: true},
			{Type: zcl.TypeUint16, Value: uint16(3022)},
			{Type: zcl.TypeUint16, Value: uint16(17320)},
			{Type: zcl.TypeUint40, Value: []uint32{0, 1}},
			{Type: zcl.TypeUint16, Value: uint16(560)},
			{Type: zcl.TypeUint8, Value: uint8(86)},
		},
	}})

	// Struct values write back byte for byte.
	f2, err := registry(t).NewFrame(zcl.FrameSpec{
		FrameType:              zcl.FrameTypeGlobal,
		Direction:              zcl.DirectionServerToClient,
		DisableDefaultResponse: true,
		ManufacturerCode:       4660,
		TransactionSequence:    194,
		Cluster:                zcl.ByName("genBasic"),
		Command:                zcl.ByName("report"),
		Payload:                f.Payload(),
	})
	if err != nil {
		t.Fatal(err)
	}
	out, err := f2.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("encoded %v, want %v", out, data)
	}
}

func TestParseDiscoverResponse(t *testing.T) {
	f := parse(t, "genPowerCfg", []byte{24, 23, 13, 0, 32, 0, 32, 33, 0, 32, 49, 0, 48, 51, 0, 32, 53, 0, 24})
	checkHeader(t, f.Header(), serverToClient(23, 13))
	checkPayload(t, f.Payload(), zcl.DiscoverAttributesResponse{
		Complete: 0,
		Attributes: []zcl.AttributeInfo{
			{AttrID: 32, DataType: zcl.TypeUint8},
			{AttrID: 33, DataType: zcl.TypeUint8},
			{AttrID: 49, DataType: zcl.TypeEnum8},
			{AttrID: 51, DataType: zcl.TypeUint8},
			{AttrID: 53, DataType: zcl.TypeBitmap8},
		},
	})
}

func TestParseTooShort(t *testing.T) {
	_, err := registry(t).ParseFrame(1, []byte{0x08, 0x01}, 0)
	if !errors.Is(err, zcl.ErrFrameTooShort) {
		t.Errorf("got %v, want ErrFrameTooShort", err)
	}
}

func TestParseReadResponses(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want zcl.ReadAttributesResponse
	}{
		{"failed", []byte{8, 1, 1, 1, 0, 2}, zcl.ReadAttributesResponse{zcl.ReadFailure{AttrID: 1, Status: 2}}},
		{"success", []byte{8, 1, 1, 1, 0, 0, 32, 3},
			zcl.ReadAttributesResponse{zcl.ReadSuccess{AttrID: 1, DataType: zcl.TypeUint8, Value: uint8(3)}}},
		{"data8 alias", []byte{8, 1, 1, 1, 0, 0, 8, 3},
			zcl.ReadAttributesResponse{zcl.ReadSuccess{AttrID: 1, DataType: zcl.TypeData8, Value: uint8(3)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parse(t, "genBasic", tt.data)
			checkPayload(t, f.Payload(), tt.want)
		})
	}
}

func TestParseConfigReport(t *testing.T) {
	f := parse(t, "genBasic", []byte{8, 1, 6, 1, 1, 0, 10, 10})
	checkPayload(t, f.Payload(), zcl.ConfigureReporting{zcl.ReportReceived{AttrID: 1, Timeout: 2570}})

	f = parse(t, "genBasic", []byte{8, 1, 6, 0, 0, 1, 32, 1, 0, 10, 0, 20})
	checkPayload(t, f.Payload(), zcl.ConfigureReporting{zcl.ReportSent{
		AttrID: 256, DataType: zcl.TypeUint8, MinInterval: 1, MaxInterval: 10, Change: uint8(20),
	}})

	f = parse(t, "genBasic", []byte{8, 1, 6, 0, 0, 1, 8, 1, 0, 10, 0})
	checkPayload(t, f.Payload(), zcl.ConfigureReporting{zcl.ReportSent{
		AttrID: 256, DataType: zcl.TypeData8, MinInterval: 1, MaxInterval: 10,
	}})
}

func TestParseLongReadResponse(t *testing.T) {
	data := []byte{24, 7, 1, 5, 0, 0, 66, 30, 84, 82, 65, 68, 70, 82, 73, 32, 98, 117, 108, 98, 32, 69, 50, 55, 32,
		87, 83, 32, 111, 112, 97, 108, 32, 57, 56, 48, 108, 109, 6, 0, 0, 66, 8, 50, 48, 49, 55, 48, 51, 51, 49, 7, 0,
		0, 48, 1, 10, 0, 0, 65, 15, 76, 69, 68, 49, 53, 52, 53, 71, 49, 50, 69, 50, 55, 69, 85}
	f := parse(t, "genBasic", data)
	checkHeader(t, f.Header(), serverToClient(7, 1))
	checkPayload(t, f.Payload(), zcl.ReadAttributesResponse{
		zcl.ReadSuccess{AttrID: 5, DataType: zcl.TypeCharStr, Value: "TRADFRI bulb E27 WS opal 980lm"},
		zcl.ReadSuccess{AttrID: 6, DataType: zcl.TypeCharStr, Value: "20170331"},
		zcl.ReadSuccess{AttrID: 7, DataType: zcl.TypeEnum8, Value: uint8(1)},
		zcl.ReadSuccess{AttrID: 10, DataType: zcl.TypeOctetStr, Value: []byte("LED1545G12E27EU")},
	})
}

func TestParseSelectsManufacturerCluster(t *testing.T) {
	f, err := registry(t).ParseFrame(0xFC00, []byte{0x04, 0xf2, 0x10, 0x08, 0x01, 0x00, 0x00, 0x00, 0x20, 0x01}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !f.MatchesCluster("manuSpecificUbisysDeviceSetup") {
		t.Errorf("cluster %s", f.Cluster().Name)
	}

	// Without a code in the header the hint decides.
	f, err = registry(t).ParseFrame(0xFC00, []byte{0x00, 0x08, 0x00, 0x00, 0x00}, ManufacturerUbisys)
	if err != nil {
		t.Fatal(err)
	}
	if !f.MatchesCluster("manuSpecificUbisysDeviceSetup") {
		t.Errorf("cluster %s", f.Cluster().Name)
	}
}

func TestBuildSelectsManufacturerCluster(t *testing.T) {
	tests := []struct {
		manuf uint16
		want  string
	}{
		{0x10f2, "manuSpecificUbisysDeviceSetup"},
		{0x10f3, "manuSpecificPhilips"},
	}
	for _, tt := range tests {
		f, err := registry(t).NewFrame(zcl.FrameSpec{
			FrameType:           zcl.FrameTypeGlobal,
			ManufacturerCode:    tt.manuf,
			TransactionSequence: 8,
			Command:             zcl.ByName("readRsp"),
			Cluster:             zcl.ByID(0xFC00),
			Payload: zcl.ReadAttributesResponse{
				zcl.ReadSuccess{AttrID: 0, DataType: zcl.TypeUint8, Value: 1},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		if f.Cluster().Name != tt.want {
			t.Errorf("manufacturer 0x%04x: cluster %s, want %s", tt.manuf, f.Cluster().Name, tt.want)
		}
	}
}

func TestBuildGlobalFrames(t *testing.T) {
	tests := []struct {
		name string
		spec zcl.FrameSpec
		want []byte
	}{
		{
			name: "discover",
			spec: zcl.FrameSpec{
				TransactionSequence: 8, Command: zcl.ByName("discover"), Cluster: zcl.ByID(0),
				Payload: zcl.DiscoverAttributes{StartAttrID: 0, MaxAttrIDs: 240},
			},
			want: []byte{0, 8, 12, 0, 0, 240},
		},
		{
			name: "readRsp UTC",
			spec: zcl.FrameSpec{
				Direction: zcl.DirectionServerToClient, DisableDefaultResponse: true,
				TransactionSequence: 74, Command: zcl.ByName("readRsp"), Cluster: zcl.ByID(0),
				Payload: zcl.ReadAttributesResponse{
					zcl.ReadSuccess{AttrID: 0, DataType: zcl.TypeUTC, Value: 618288106},
				},
			},
			want: []byte{24, 74, 1, 0, 0, 0, 226, 234, 83, 218, 36},
		},
		{
			name: "write string as bytes",
			spec: zcl.FrameSpec{
				DisableDefaultResponse: true, ManufacturerCode: 0x115f,
				TransactionSequence: 15, Command: zcl.ByName("write"), Cluster: zcl.ByID(0),
				Payload: zcl.AttributeRecords{{
					AttrID: 0x0401, DataType: zcl.TypeCharStr,
					Value: []byte{0x07, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x14},
				}},
			},
			want: []byte{0x14, 0x5f, 0x11, 0x0f, 0x02, 0x01, 0x04, 0x42, 0x07, 0x00, 0x02, 0x01, 0x00, 0x00, 0x00, 0x14},
		},
		{
			name: "readRsp success",
			spec: zcl.FrameSpec{
				Direction: zcl.DirectionServerToClient, TransactionSequence: 1,
				Command: zcl.ByName("readRsp"), Cluster: zcl.ByName("genBasic"),
				Payload: zcl.ReadAttributesResponse{
					zcl.ReadSuccess{AttrID: 1, DataType: zcl.TypeUint8, Value: 3},
				},
			},
			want: []byte{8, 1, 1, 1, 0, 0, 32, 3},
		},
		{
			name: "readRsp failed",
			spec: zcl.FrameSpec{
				Direction: zcl.DirectionServerToClient, TransactionSequence: 1,
				Command: zcl.ByName("readRsp"), Cluster: zcl.ByName("genBasic"),
				Payload: zcl.ReadAttributesResponse{zcl.ReadFailure{AttrID: 1, Status: 2}},
			},
			want: []byte{8, 1, 1, 1, 0, 2},
		},
		{
			name: "defaultRsp",
			spec: zcl.FrameSpec{
				Direction: zcl.DirectionServerToClient, DisableDefaultResponse: true,
				TransactionSequence: 4, Command: zcl.ByName("defaultRsp"), Cluster: zcl.ByName("genBasic"),
				Payload: zcl.DefaultResponse{CommandID: 12, Status: 130},
			},
			want: []byte{0x18, 0x04, 0x0b, 0x0c, 0x82},
		},
		{
			name: "discoverRsp",
			spec: zcl.FrameSpec{
				Direction: zcl.DirectionServerToClient, DisableDefaultResponse: true,
				TransactionSequence: 23, Command: zcl.ByName("discoverRsp"), Cluster: zcl.ByName("genPowerCfg"),
				Payload: zcl.DiscoverAttributesResponse{Attributes: []zcl.AttributeInfo{
					{AttrID: 32, DataType: zcl.TypeUint8},
					{AttrID: 33, DataType: zcl.TypeUint8},
					{AttrID: 49, DataType: zcl.TypeEnum8},
					{AttrID: 51, DataType: zcl.TypeUint8},
					{AttrID: 53, DataType: zcl.TypeBitmap8},
				}},
			},
			want: []byte{24, 23, 13, 0, 32, 0, 32, 33, 0, 32, 49, 0, 48, 51, 0, 32, 53, 0, 24},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := build(t, tt.spec); !bytes.Equal(got, tt.want) {
				t.Errorf("encoded %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildSpecificFrames(t *testing.T) {
	tests := []struct {
		name string
		spec zcl.FrameSpec
		want []byte
	}{
		{
			name: "tradfri arrow",
			spec: zcl.FrameSpec{
				FrameType: zcl.FrameTypeSpecific, ManufacturerCode: 0x117c, TransactionSequence: 29,
				Cluster: zcl.ByName("genScenes"), Command: zcl.ByName("tradfriArrowSingle"),
				Payload: zcl.Fields{"value": 256, "value2": 13},
			},
			want: []byte{0x05, 0x7c, 0x11, 0x1d, 0x07, 0x00, 0x01, 0x0d, 0x00},
		},
		{
			name: "offWithEffect",
			spec: zcl.FrameSpec{
				FrameType: zcl.FrameTypeSpecific, TransactionSequence: 1,
				Cluster: zcl.ByID(6), Command: zcl.ByName("offWithEffect"),
				Payload: zcl.Fields{"effectid": 1, "effectvariant": 0},
			},
			want: []byte{0x01, 1, 64, 1, 0},
		},
		{
			name: "restartDeviceRsp",
			spec: zcl.FrameSpec{
				FrameType: zcl.FrameTypeSpecific, Direction: zcl.DirectionServerToClient, TransactionSequence: 9,
				Cluster: zcl.ByID(21), Command: zcl.ByName("restartDeviceRsp"),
				Payload: zcl.Fields{"status": 1},
			},
			want: []byte{9, 9, 0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := build(t, tt.spec); !bytes.Equal(got, tt.want) {
				t.Errorf("encoded %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildInvalidFrameType(t *testing.T) {
	f, err := registry(t).NewFrame(zcl.FrameSpec{
		FrameType: zcl.FrameType(3),
		Cluster:   zcl.ByID(6),
		Command:   zcl.ByID(64),
		Payload:   zcl.Fields{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.MarshalBinary(); !errors.Is(err, zcl.ErrInvalidFrameType) {
		t.Errorf("got %v, want ErrInvalidFrameType", err)
	}
}

func TestBuildFromJSON(t *testing.T) {
	f, err := registry(t).DecodeFrameRequest([]byte(`{
		"frameType": 1,
		"direction": 0,
		"transactionSequenceNumber": 3,
		"cluster": "ssIasAce",
		"command": "bypass",
		"payload": {"numofzones": 2, "zoneidlist": [4, 7], "armDisarmCode": "1234"}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 3, 0x01, 2, 4, 7, 4, '1', '2', '3', '4'}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded %v, want %v", data, want)
	}

	back, err := registry(t).ParseFrame(0x0501, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	checkPayload(t, back.Payload(), zcl.Fields{
		"numofzones": uint8(2), "zoneidlist": []uint8{4, 7}, "armDisarmCode": "1234",
	})
}

func TestZoneStatusRoundTrip(t *testing.T) {
	data := []byte{0x19, 0x02, 0x08, 0x01, 0x02, 0x01, 0x21, 0x00, 0x02, 0x00, 0x00}
	f := parse(t, "ssIasAce", data)
	checkPayload(t, f.Payload(), zcl.Fields{
		"zonestatuscomplete": uint8(1),
		"numofzones":         uint8(2),
		"zoneinfo":           []zcl.ZoneInfo{{ZoneID: 1, ZoneStatus: 0x21}, {ZoneID: 2, ZoneStatus: 0}},
	})
	out, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("encoded %v, want %v", out, data)
	}
}

func TestTuyaDataReport(t *testing.T) {
	data := []byte{0x09, 0x10, 0x02, 0x00, 0x2A, 0x01, 0x01, 0x00, 0x01, 0x01}
	f := parse(t, "manuSpecificTuya", data)
	checkPayload(t, f.Payload(), zcl.Fields{
		"seq":      uint16(0x2A00),
		"dpValues": []zcl.TuyaDataPoint{{DP: 1, DataType: 1, Data: []byte{0x01}}},
	})
}

func TestBuildListMustMatchCount(t *testing.T) {
	spec := zcl.FrameSpec{
		FrameType: zcl.FrameTypeSpecific, TransactionSequence: 2,
		Cluster: zcl.ByName("genGroups"), Command: zcl.ByName("getMembership"),
		Payload: zcl.Fields{"groupcount": 1, "grouplist": []any{10, 20, 30}},
	}
	if f, err := registry(t).NewFrame(spec); err == nil {
		data, _ := f.MarshalBinary()
		t.Fatalf("built %v, want error for 3 groups with groupcount 1", data)
	}

	spec.Payload = zcl.Fields{"groupcount": 3, "grouplist": []any{10, 20, 30}}
	data := build(t, spec)
	if want := []byte{0x01, 2, 2, 3, 10, 0, 20, 0, 30, 0}; !bytes.Equal(data, want) {
		t.Fatalf("encoded %v, want %v", data, want)
	}
	f := parse(t, "genGroups", data)
	checkPayload(t, f.Payload(), zcl.Fields{"groupcount": uint8(3), "grouplist": []uint16{10, 20, 30}})
}
