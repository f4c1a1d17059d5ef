package clusters

import "zigbee-zcl/internal/zcl"

// Tuya tunnels its datapoints through one cluster; dpValues holds every
// datapoint left in the frame.
var Tuya = zcl.ClusterDef{
	ID:   0xEF00,
	Name: "manuSpecificTuya",
	Commands: []zcl.CommandDef{
		toServer(0x00, "dataRequest", param("seq", zcl.TypeUint16), param("dpValues", zcl.TypeListTuyaDataPointValues)),
		toServer(0x03, "dataQuery"),
		toServer(0x10, "mcuVersionRequest", param("seq", zcl.TypeUint16)),
		toServer(0x04, "sendData", param("seq", zcl.TypeUint16), param("dpValues", zcl.TypeListTuyaDataPointValues)),
		toServer(0x12, "mcuOtaNotify", param("seq", zcl.TypeUint16), param("key_hi", zcl.TypeUint32),
			param("key_lo", zcl.TypeUint32), param("version", zcl.TypeUint8), param("imageSize", zcl.TypeUint32),
			param("crc", zcl.TypeUint32)),
		toServer(0x24, "mcuSyncTime", param("payloadSize", zcl.TypeUint16), param("payload", zcl.TypeListUint8)),
		toServer(0x25, "mcuGatewayConnectionStatus", param("payloadSize", zcl.TypeUint16),
			param("payload", zcl.TypeUint8)),
		toClient(0x01, "dataResponse", param("seq", zcl.TypeUint16), param("dpValues", zcl.TypeListTuyaDataPointValues)),
		toClient(0x02, "dataReport", param("seq", zcl.TypeUint16), param("dpValues", zcl.TypeListTuyaDataPointValues)),
		toClient(0x06, "activeStatusReportAlt", param("seq", zcl.TypeUint16),
			param("dpValues", zcl.TypeListTuyaDataPointValues)),
		toClient(0x11, "mcuVersionResponse", param("seq", zcl.TypeUint16), param("version", zcl.TypeUint8)),
		toClient(0x24, "mcuSyncTimeRequest"),
		toClient(0x25, "mcuGatewayConnectionStatusRequest", param("payloadSize", zcl.TypeUint16)),
	},
}

// Philips is the default variant of 0xFC00; frames carrying the Ubisys
// code resolve to UbisysDeviceSetup instead.
var Philips = zcl.ClusterDef{
	ID:   0xFC00,
	Name: "manuSpecificPhilips",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0031, Name: "config", Type: zcl.TypeBitmap16, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toClient(0x00, "hueNotification", param("button", zcl.TypeUint8), param("unknown1", zcl.TypeUint24),
			param("type", zcl.TypeUint8), param("unknown2", zcl.TypeUint8), param("time", zcl.TypeUint8),
			param("unknown3", zcl.TypeUint8)),
	},
}

var UbisysDeviceSetup = zcl.ClusterDef{
	ID:               0xFC00,
	Name:             "manuSpecificUbisysDeviceSetup",
	ManufacturerCode: ManufacturerUbisys,
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "inputConfigurations", Type: zcl.TypeArray, Access: rw},
		{ID: 0x0001, Name: "inputActions", Type: zcl.TypeArray, Access: rw},
	},
}

var UbisysDimmerSetup = zcl.ClusterDef{
	ID:               0xFC01,
	Name:             "manuSpecificUbisysDimmerSetup",
	ManufacturerCode: ManufacturerUbisys,
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "capabilities", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0001, Name: "status", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0002, Name: "mode", Type: zcl.TypeBitmap8, Access: rw},
	},
}

var Osram = zcl.ClusterDef{
	ID:               0xFC0F,
	Name:             "manuSpecificOsram",
	ManufacturerCode: ManufacturerOsram,
	Commands: []zcl.CommandDef{
		toServer(0x01, "saveStartupParams"),
		toServer(0x02, "resetStartupParams"),
		toClient(0x00, "saveStartupParamsRsp"),
	},
}

var SchneiderPilotMode = zcl.ClusterDef{
	ID:               0xFC21,
	Name:             "schneiderSpecificPilotMode",
	ManufacturerCode: ManufacturerSchneider,
	Attributes: []zcl.AttributeDef{
		{ID: 0x0031, Name: "pilotMode", Type: zcl.TypeEnum8, Access: rw},
	},
}

// Lumi devices report most of their state as one struct in attribute 0x00F7.
var Lumi = zcl.ClusterDef{
	ID:               0xFCC0,
	Name:             "manuSpecificLumi",
	ManufacturerCode: ManufacturerLumi,
	Attributes: []zcl.AttributeDef{
		{ID: 0x0009, Name: "mode", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x00F7, Name: "deviceInfo", Type: zcl.TypeOctetStr, Access: rp},
		{ID: 0x0148, Name: "motionSensitivity", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0102, Name: "detectionInterval", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0106, Name: "monitoringMode", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0107, Name: "approachDistance", Type: zcl.TypeUint8, Access: rw},
	},
}
