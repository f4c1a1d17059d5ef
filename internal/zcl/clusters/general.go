package clusters

import "zigbee-zcl/internal/zcl"

var Basic = zcl.ClusterDef{
	ID:   0x0000,
	Name: "genBasic",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "zclVersion", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0001, Name: "appVersion", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0002, Name: "stackVersion", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0003, Name: "hwVersion", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0004, Name: "manufacturerName", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0005, Name: "modelId", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0006, Name: "dateCode", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0007, Name: "powerSource", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0008, Name: "appProfileVersion", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0009, Name: "genericDeviceType", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x000A, Name: "productCode", Type: zcl.TypeOctetStr, Access: ro},
		{ID: 0x000B, Name: "productUrl", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x000C, Name: "manufacturerVersionDetails", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x000D, Name: "serialNumber", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x000E, Name: "productLabel", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0010, Name: "locationDesc", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0011, Name: "physicalEnv", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0012, Name: "deviceEnabled", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0013, Name: "alarmMask", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0014, Name: "disableLocalConfig", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x4000, Name: "swBuildId", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0xFF01, Name: "xiaomiLifeline", Type: zcl.TypeCharStr, Access: rp, ManufacturerCode: ManufacturerLumi},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "resetFactDefault"),
		toServer(0xF0, "tuyaSetup"),
	},
}

var PowerConfiguration = zcl.ClusterDef{
	ID:   0x0001,
	Name: "genPowerCfg",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "mainsVoltage", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0001, Name: "mainsFrequency", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0010, Name: "mainsAlarmMask", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0011, Name: "mainsVoltMinThres", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0012, Name: "mainsVoltMaxThres", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0013, Name: "mainsVoltageDwellTripPoint", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0020, Name: "batteryVoltage", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0021, Name: "batteryPercentageRemaining", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0030, Name: "batteryManufacturer", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0031, Name: "batterySize", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0032, Name: "batteryAHrRating", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0033, Name: "batteryQuantity", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0034, Name: "batteryRatedVoltage", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0035, Name: "batteryAlarmMask", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0036, Name: "batteryVoltMinThres", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0037, Name: "batteryVoltThres1", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0038, Name: "batteryVoltThres2", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0039, Name: "batteryVoltThres3", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x003A, Name: "batteryPercentMinThres", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x003B, Name: "batteryPercentThres1", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x003C, Name: "batteryPercentThres2", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x003D, Name: "batteryPercentThres3", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x003E, Name: "batteryAlarmState", Type: zcl.TypeBitmap32, Access: rp},
	},
}

var DeviceTemperature = zcl.ClusterDef{
	ID:   0x0002,
	Name: "genDeviceTempCfg",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "currentTemperature", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0001, Name: "minTempExperienced", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0002, Name: "maxTempExperienced", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0003, Name: "overTempTotalDwell", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0010, Name: "devTempAlarmMask", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0011, Name: "lowTempThres", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0012, Name: "highTempThres", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0013, Name: "lowTempDwellTripPoint", Type: zcl.TypeUint24, Access: rw},
		{ID: 0x0014, Name: "highTempDwellTripPoint", Type: zcl.TypeUint24, Access: rw},
	},
}

var Identify = zcl.ClusterDef{
	ID:   0x0003,
	Name: "genIdentify",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "identifyTime", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0001, Name: "identifyCommissionState", Type: zcl.TypeUnknown, Access: ro},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "identify", param("identifytime", zcl.TypeUint16)),
		toServer(0x01, "identifyQuery"),
		toServer(0x02, "ezmodeInvoke", param("action", zcl.TypeUint8)),
		toServer(0x03, "updateCommissionState", param("action", zcl.TypeUint8), param("commstatemask", zcl.TypeUint8)),
		toServer(0x40, "triggerEffect", param("effectid", zcl.TypeUint8), param("effectvariant", zcl.TypeUint8)),
		toClient(0x00, "identifyQueryRsp", param("timeout", zcl.TypeUint16)),
	},
}

var Groups = zcl.ClusterDef{
	ID:   0x0004,
	Name: "genGroups",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "nameSupport", Type: zcl.TypeBitmap8, Access: ro},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "add", param("groupid", zcl.TypeUint16), param("groupname", zcl.TypeCharStr)),
		toServer(0x01, "view", param("groupid", zcl.TypeUint16)),
		toServer(0x02, "getMembership", param("groupcount", zcl.TypeUint8), param("grouplist", zcl.TypeListUint16)),
		toServer(0x03, "remove", param("groupid", zcl.TypeUint16)),
		toServer(0x04, "removeAll"),
		toServer(0x05, "addIfIdentifying", param("groupid", zcl.TypeUint16), param("groupname", zcl.TypeCharStr)),
		toClient(0x00, "addRsp", param("status", zcl.TypeUint8), param("groupid", zcl.TypeUint16)),
		toClient(0x01, "viewRsp", param("status", zcl.TypeUint8), param("groupid", zcl.TypeUint16), param("groupname", zcl.TypeCharStr)),
		toClient(0x02, "getMembershipRsp", param("capacity", zcl.TypeUint8), param("groupcount", zcl.TypeUint8),
			param("grouplist", zcl.TypeListUint16)),
		toClient(0x03, "removeRsp", param("status", zcl.TypeUint8), param("groupid", zcl.TypeUint16)),
	},
}

var Scenes = zcl.ClusterDef{
	ID:   0x0005,
	Name: "genScenes",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "count", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0001, Name: "currentScene", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0002, Name: "currentGroup", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0003, Name: "sceneValid", Type: zcl.TypeBool, Access: ro},
		{ID: 0x0004, Name: "nameSupport", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0005, Name: "lastCfgBy", Type: zcl.TypeEUI64, Access: ro},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "add", param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8),
			param("transtime", zcl.TypeUint16), param("scenename", zcl.TypeCharStr),
			param("extensionfieldsets", zcl.TypeExtensionFieldSets)),
		toServer(0x01, "view", param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8)),
		toServer(0x02, "remove", param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8)),
		toServer(0x03, "removeAll", param("groupid", zcl.TypeUint16)),
		toServer(0x04, "store", param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8)),
		toServer(0x05, "recall", param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8)),
		toServer(0x06, "getSceneMembership", param("groupid", zcl.TypeUint16)),
		// IKEA TRADFRI remote arrow buttons.
		toServer(0x07, "tradfriArrowSingle", param("value", zcl.TypeUint16), param("value2", zcl.TypeUint16)),
		toServer(0x08, "tradfriArrowHold", param("value", zcl.TypeUint16)),
		toServer(0x09, "tradfriArrowRelease", param("value", zcl.TypeUint16)),
		toServer(0x40, "enhancedAdd", param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8),
			param("transtime", zcl.TypeUint16), param("scenename", zcl.TypeCharStr),
			param("extensionfieldsets", zcl.TypeExtensionFieldSets)),
		toServer(0x41, "enhancedView", param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8)),
		toServer(0x42, "copy", param("mode", zcl.TypeUint8), param("groupidfrom", zcl.TypeUint16),
			param("sceneidfrom", zcl.TypeUint8), param("groupidto", zcl.TypeUint16), param("sceneidto", zcl.TypeUint8)),
		toClient(0x00, "addRsp", param("status", zcl.TypeUint8), param("groupId", zcl.TypeUint16), param("sceneId", zcl.TypeUint8)),
		toClient(0x01, "viewRsp", param("status", zcl.TypeUint8), param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8),
			param("transtime", zcl.TypeUint16, statusSuccess), param("scenename", zcl.TypeCharStr, statusSuccess),
			param("extensionfieldsets", zcl.TypeExtensionFieldSets, statusSuccess)),
		toClient(0x02, "removeRsp", param("status", zcl.TypeUint8), param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8)),
		toClient(0x03, "removeAllRsp", param("status", zcl.TypeUint8), param("groupid", zcl.TypeUint16)),
		toClient(0x04, "storeRsp", param("status", zcl.TypeUint8), param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8)),
		toClient(0x06, "getSceneMembershipRsp", param("status", zcl.TypeUint8), param("capacity", zcl.TypeUint8),
			param("groupid", zcl.TypeUint16), param("scenecount", zcl.TypeUint8, statusSuccess),
			param("scenelist", zcl.TypeListUint8, statusSuccess)),
		toClient(0x40, "enhancedAddRsp", param("status", zcl.TypeUint8), param("groupId", zcl.TypeUint16), param("sceneId", zcl.TypeUint8)),
		toClient(0x41, "enhancedViewRsp", param("status", zcl.TypeUint8), param("groupid", zcl.TypeUint16), param("sceneid", zcl.TypeUint8),
			param("transtime", zcl.TypeUint16, statusSuccess), param("scenename", zcl.TypeCharStr, statusSuccess),
			param("extensionfieldsets", zcl.TypeExtensionFieldSets, statusSuccess)),
		toClient(0x42, "copyRsp", param("status", zcl.TypeUint8), param("groupidfrom", zcl.TypeUint16), param("sceneidfrom", zcl.TypeUint8)),
	},
}

var OnOff = zcl.ClusterDef{
	ID:   0x0006,
	Name: "genOnOff",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "onOff", Type: zcl.TypeBool, Access: rp},
		{ID: 0x4000, Name: "globalSceneCtrl", Type: zcl.TypeBool, Access: ro},
		{ID: 0x4001, Name: "onTime", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x4002, Name: "offWaitTime", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x4003, Name: "startUpOnOff", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x5000, Name: "tuyaBacklightSwitch", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x8001, Name: "tuyaBacklightMode", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x8002, Name: "moesStartUpOnOff", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x8004, Name: "tuyaOperationMode", Type: zcl.TypeEnum8, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "off"),
		toServer(0x01, "on"),
		toServer(0x02, "toggle"),
		toServer(0x40, "offWithEffect", param("effectid", zcl.TypeUint8), param("effectvariant", zcl.TypeUint8)),
		toServer(0x41, "onWithRecallGlobalScene"),
		toServer(0x42, "onWithTimedOff", param("ctrlbits", zcl.TypeUint8), param("ontime", zcl.TypeUint16),
			param("offwaittime", zcl.TypeUint16)),
		toServer(0xFC, "tuyaAction2", param("value", zcl.TypeUint8)),
		toServer(0xFD, "tuyaAction", param("value", zcl.TypeUint8), param("data", zcl.TypeBuffer)),
	},
}

var OnOffSwitchConfiguration = zcl.ClusterDef{
	ID:   0x0007,
	Name: "genOnOffSwitchCfg",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "switchType", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0010, Name: "switchActions", Type: zcl.TypeEnum8, Access: rw},
	},
}

var LevelControl = zcl.ClusterDef{
	ID:   0x0008,
	Name: "genLevelCtrl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "currentLevel", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0001, Name: "remainingTime", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0002, Name: "minLevel", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0003, Name: "maxLevel", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x000F, Name: "options", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0010, Name: "onOffTransitionTime", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0011, Name: "onLevel", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0012, Name: "onTransitionTime", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0013, Name: "offTransitionTime", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0014, Name: "defaultMoveRate", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x4000, Name: "startUpCurrentLevel", Type: zcl.TypeUint8, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "moveToLevel", param("level", zcl.TypeUint8), param("transtime", zcl.TypeUint16)),
		toServer(0x01, "move", param("movemode", zcl.TypeUint8), param("rate", zcl.TypeUint8)),
		toServer(0x02, "step", param("stepmode", zcl.TypeUint8), param("stepsize", zcl.TypeUint8), param("transtime", zcl.TypeUint16)),
		toServer(0x03, "stop"),
		toServer(0x04, "moveToLevelWithOnOff", param("level", zcl.TypeUint8), param("transtime", zcl.TypeUint16)),
		toServer(0x05, "moveWithOnOff", param("movemode", zcl.TypeUint8), param("rate", zcl.TypeUint8)),
		toServer(0x06, "stepWithOnOff", param("stepmode", zcl.TypeUint8), param("stepsize", zcl.TypeUint8), param("transtime", zcl.TypeUint16)),
		toServer(0x07, "stopWithOnOff"),
		toServer(0xF0, "moveToLevelTuya", param("level", zcl.TypeUint16), param("transtime", zcl.TypeUint16)),
	},
}

var Alarms = zcl.ClusterDef{
	ID:   0x0009,
	Name: "genAlarms",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "alarmCount", Type: zcl.TypeUint16, Access: ro},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "reset", param("alarmcode", zcl.TypeUint8), param("clusterid", zcl.TypeUint16)),
		toServer(0x01, "resetAll"),
		toServer(0x02, "getAlarm"),
		toServer(0x03, "resetLog"),
		toClient(0x00, "alarm", param("alarmcode", zcl.TypeUint8), param("clusterid", zcl.TypeUint16)),
		toClient(0x01, "getRsp", param("status", zcl.TypeUint8), param("alarmcode", zcl.TypeUint8, statusSuccess),
			param("clusterid", zcl.TypeUint16, statusSuccess), param("timestamp", zcl.TypeUint32, statusSuccess)),
	},
}

var Time = zcl.ClusterDef{
	ID:   0x000A,
	Name: "genTime",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "time", Type: zcl.TypeUTC, Access: rw},
		{ID: 0x0001, Name: "timeStatus", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0002, Name: "timeZone", Type: zcl.TypeInt32, Access: rw},
		{ID: 0x0003, Name: "dstStart", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0004, Name: "dstEnd", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0005, Name: "dstShift", Type: zcl.TypeInt32, Access: rw},
		{ID: 0x0006, Name: "standardTime", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0007, Name: "localTime", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0008, Name: "lastSetTime", Type: zcl.TypeUTC, Access: ro},
		{ID: 0x0009, Name: "validUntilTime", Type: zcl.TypeUTC, Access: rw},
	},
}

var RSSILocation = zcl.ClusterDef{
	ID:   0x000B,
	Name: "genRssiLocation",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "type", Type: zcl.TypeData8, Access: rw},
		{ID: 0x0001, Name: "method", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0002, Name: "age", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0003, Name: "qualityMeasure", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0004, Name: "numOfDevices", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0010, Name: "coordinate1", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0011, Name: "coordinate2", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0012, Name: "coordinate3", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0013, Name: "power", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0014, Name: "pathLossExponent", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0015, Name: "reportingPeriod", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0016, Name: "calcPeriod", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0017, Name: "numRSSIMeasurements", Type: zcl.TypeUint8, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "setAbsolute", param("coord1", zcl.TypeInt16), param("coord2", zcl.TypeInt16),
			param("coord3", zcl.TypeInt16), param("power", zcl.TypeInt16), param("pathlossexponent", zcl.TypeUint16)),
		toServer(0x02, "getDevConfig", param("targetaddr", zcl.TypeEUI64)),
		toClient(0x00, "devConfigRsp", param("status", zcl.TypeUint8), param("power", zcl.TypeInt16, statusSuccess),
			param("pathlossexp", zcl.TypeUint16, statusSuccess), param("calperiod", zcl.TypeUint16, statusSuccess),
			param("numrssimeasurements", zcl.TypeUint8, statusSuccess), param("reportingperiod", zcl.TypeUint16, statusSuccess)),
	},
}

var Commissioning = zcl.ClusterDef{
	ID:   0x0015,
	Name: "genCommissioning",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "shortress", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0001, Name: "extendedPANId", Type: zcl.TypeEUI64, Access: rw},
		{ID: 0x0002, Name: "panId", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0003, Name: "channelmask", Type: zcl.TypeBitmap32, Access: rw},
		{ID: 0x0004, Name: "protocolVersion", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0005, Name: "stackProfile", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0006, Name: "startupControl", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0010, Name: "trustCenterAddress", Type: zcl.TypeEUI64, Access: rw},
		{ID: 0x0011, Name: "trustCenterMasterKey", Type: zcl.TypeSecKey, Access: rw},
		{ID: 0x0012, Name: "networkKey", Type: zcl.TypeSecKey, Access: rw},
		{ID: 0x0013, Name: "useInsecureJoin", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0014, Name: "preconfiguredLinkKey", Type: zcl.TypeSecKey, Access: rw},
		{ID: 0x0015, Name: "networkKeySeqNum", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0016, Name: "networkKeyType", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0017, Name: "networkManagerAddress", Type: zcl.TypeUint16, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "restartDevice", param("options", zcl.TypeUint8), param("delay", zcl.TypeUint8), param("jitter", zcl.TypeUint8)),
		toServer(0x01, "saveStartupParams", param("options", zcl.TypeUint8), param("index", zcl.TypeUint8)),
		toServer(0x02, "restoreStartupParams", param("options", zcl.TypeUint8), param("index", zcl.TypeUint8)),
		toServer(0x03, "resetStartupParams", param("options", zcl.TypeUint8), param("index", zcl.TypeUint8)),
		toClient(0x00, "restartDeviceRsp", param("status", zcl.TypeUint8)),
		toClient(0x01, "saveStartupParamsRsp", param("status", zcl.TypeUint8)),
		toClient(0x02, "restoreStartupParamsRsp", param("status", zcl.TypeUint8)),
		toClient(0x03, "resetStartupParamsRsp", param("status", zcl.TypeUint8)),
	},
}

var PollControl = zcl.ClusterDef{
	ID:   0x0020,
	Name: "genPollCtrl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "checkinInterval", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0001, Name: "longPollInterval", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0002, Name: "shortPollInterval", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0003, Name: "fastPollTimeout", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0004, Name: "checkinIntervalMin", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0005, Name: "longPollIntervalMin", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0006, Name: "fastPollTimeoutMax", Type: zcl.TypeUint16, Access: ro},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "checkinRsp", param("startFastPolling", zcl.TypeBool), param("fastPollTimeout", zcl.TypeUint16)),
		toServer(0x01, "fastPollStop"),
		toServer(0x02, "setLongPollInterval", param("newLongPollInterval", zcl.TypeUint32)),
		toServer(0x03, "setShortPollInterval", param("newShortPollInterval", zcl.TypeUint16)),
		toClient(0x00, "checkin"),
	},
}

var GreenPower = zcl.ClusterDef{
	ID:   0x0021,
	Name: "greenPower",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0010, Name: "gppMaxProxyTableEntries", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0011, Name: "proxyTable", Type: zcl.TypeOctetStr16, Access: ro},
		{ID: 0x0016, Name: "gppFunctionality", Type: zcl.TypeBitmap24, Access: ro},
		{ID: 0x0017, Name: "gppActiveFunctionality", Type: zcl.TypeBitmap24, Access: ro},
		{ID: 0x0022, Name: "gpSharedSecurityKeyType", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0023, Name: "gpSharedSecurityKey", Type: zcl.TypeSecKey, Access: rw},
		{ID: 0x0024, Name: "gpLinkKey", Type: zcl.TypeSecKey, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "notification", param("options", zcl.TypeUint16), param("srcID", zcl.TypeUint32),
			param("frameCounter", zcl.TypeUint32), param("commandID", zcl.TypeUint8),
			param("payloadSize", zcl.TypeUint8), param("commandFrame", zcl.TypeListUint8),
			param("gppNwkAddr", zcl.TypeUint16, bitSet("options", 0x4000)),
			param("gppGpdLink", zcl.TypeUint8, bitSet("options", 0x4000))),
		toClient(0x01, "pairing", param("options", zcl.TypeUint24), param("srcID", zcl.TypeUint32),
			param("sinkIEEEAddr", zcl.TypeEUI64, bitSet("options", 0x000040)),
			param("sinkNwkAddr", zcl.TypeUint16, bitSet("options", 0x000040)),
			param("sinkGroupID", zcl.TypeUint16, bitSet("options", 0x000010)),
			param("frameCounter", zcl.TypeUint32, bitSet("options", 0x004000))),
	},
}
