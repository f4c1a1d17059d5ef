package clusters

import "zigbee-zcl/internal/zcl"

var IASZone = zcl.ClusterDef{
	ID:   0x0500,
	Name: "ssIasZone",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "zoneState", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0001, Name: "zoneType", Type: zcl.TypeEnum16, Access: ro},
		{ID: 0x0002, Name: "zoneStatus", Type: zcl.TypeBitmap16, Access: rp},
		{ID: 0x0010, Name: "iasCieAddr", Type: zcl.TypeEUI64, Access: rw},
		{ID: 0x0011, Name: "zoneId", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0012, Name: "numZoneSensitivityLevelsSupported", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0013, Name: "currentZoneSensitivityLevel", Type: zcl.TypeUint8, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "enrollRsp", param("enrollrspcode", zcl.TypeUint8), param("zoneid", zcl.TypeUint8)),
		toServer(0x01, "initNormalOpMode"),
		toServer(0x02, "initTestMode", param("testModeDuration", zcl.TypeUint8),
			param("currentZoneSensitivityLevel", zcl.TypeUint8)),
		toClient(0x00, "statusChangeNotification", param("zonestatus", zcl.TypeUint16),
			param("extendedstatus", zcl.TypeUint8), param("zoneID", zcl.TypeUint8), param("delay", zcl.TypeUint16)),
		toClient(0x01, "enrollReq", param("zonetype", zcl.TypeUint16), param("manucode", zcl.TypeUint16)),
	},
}

// IASACE is the alarm keypad cluster. Zone lists carry their own count in
// the field just before them.
var IASACE = zcl.ClusterDef{
	ID:   0x0501,
	Name: "ssIasAce",
	Commands: []zcl.CommandDef{
		toServer(0x00, "arm", param("armmode", zcl.TypeUint8), param("code", zcl.TypeCharStr),
			param("zoneid", zcl.TypeUint8)),
		toServer(0x01, "bypass", param("numofzones", zcl.TypeUint8), param("zoneidlist", zcl.TypeListUint8),
			param("armDisarmCode", zcl.TypeCharStr)),
		toServer(0x02, "emergency"),
		toServer(0x03, "fire"),
		toServer(0x04, "panic"),
		toServer(0x05, "getZoneIDMap"),
		toServer(0x06, "getZoneInfo", param("zoneid", zcl.TypeUint8)),
		toServer(0x07, "getPanelStatus"),
		toServer(0x08, "getBypassedZoneList"),
		toServer(0x09, "getZoneStatus", param("startzoneid", zcl.TypeUint8), param("maxnumzoneid", zcl.TypeUint8),
			param("zonestatusmaskflag", zcl.TypeUint8), param("zonestatusmask", zcl.TypeUint16)),
		toClient(0x00, "armRsp", param("armnotification", zcl.TypeUint8)),
		toClient(0x01, "getZoneIDMapRsp",
			param("zoneidmapsection0", zcl.TypeUint16), param("zoneidmapsection1", zcl.TypeUint16),
			param("zoneidmapsection2", zcl.TypeUint16), param("zoneidmapsection3", zcl.TypeUint16),
			param("zoneidmapsection4", zcl.TypeUint16), param("zoneidmapsection5", zcl.TypeUint16),
			param("zoneidmapsection6", zcl.TypeUint16), param("zoneidmapsection7", zcl.TypeUint16),
			param("zoneidmapsection8", zcl.TypeUint16), param("zoneidmapsection9", zcl.TypeUint16),
			param("zoneidmapsection10", zcl.TypeUint16), param("zoneidmapsection11", zcl.TypeUint16),
			param("zoneidmapsection12", zcl.TypeUint16), param("zoneidmapsection13", zcl.TypeUint16),
			param("zoneidmapsection14", zcl.TypeUint16), param("zoneidmapsection15", zcl.TypeUint16)),
		toClient(0x02, "getZoneInfoRsp", param("zoneid", zcl.TypeUint8), param("zonetype", zcl.TypeUint16),
			param("ieeeaddr", zcl.TypeEUI64), param("zonelabel", zcl.TypeCharStr)),
		toClient(0x03, "zoneStatusChanged", param("zoneid", zcl.TypeUint8), param("zonestatus", zcl.TypeUint16),
			param("audiblenotif", zcl.TypeUint8), param("zonelabel", zcl.TypeCharStr)),
		toClient(0x04, "panelStatusChanged", param("panelstatus", zcl.TypeUint8),
			param("secondsremain", zcl.TypeUint8), param("audiblenotif", zcl.TypeUint8),
			param("alarmstatus", zcl.TypeUint8)),
		toClient(0x05, "getPanelStatusRsp", param("panelstatus", zcl.TypeUint8),
			param("secondsremain", zcl.TypeUint8), param("audiblenotif", zcl.TypeUint8),
			param("alarmstatus", zcl.TypeUint8)),
		toClient(0x06, "setBypassedZoneList", param("numofzones", zcl.TypeUint8),
			param("zoneid", zcl.TypeListUint8)),
		toClient(0x07, "bypassRsp", param("numofzones", zcl.TypeUint8), param("bypassresult", zcl.TypeListUint8)),
		toClient(0x08, "getZoneStatusRsp", param("zonestatuscomplete", zcl.TypeUint8),
			param("numofzones", zcl.TypeUint8), param("zoneinfo", zcl.TypeListZoneInfo)),
	},
}

var IASWD = zcl.ClusterDef{
	ID:   0x0502,
	Name: "ssIasWd",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "maxDuration", Type: zcl.TypeUint16, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "startWarning", param("startwarninginfo", zcl.TypeUint8),
			param("warningduration", zcl.TypeUint16), param("strobedutycycle", zcl.TypeUint8),
			param("strobelevel", zcl.TypeUint8)),
		toServer(0x01, "squawk", param("squawkinfo", zcl.TypeUint8)),
	},
}
