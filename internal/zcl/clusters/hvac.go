package clusters

import "zigbee-zcl/internal/zcl"

var PumpConfiguration = zcl.ClusterDef{
	ID:   0x0200,
	Name: "hvacPumpCfgCtrl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "maxPressure", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0001, Name: "maxSpeed", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0002, Name: "maxFlow", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0003, Name: "minConstPressure", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0004, Name: "maxConstPressure", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0011, Name: "effectiveOperationMode", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0012, Name: "effectiveControlMode", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0013, Name: "capacity", Type: zcl.TypeInt16, Access: rp},
		{ID: 0x0014, Name: "speed", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0015, Name: "lifetimeRunningHours", Type: zcl.TypeUint24, Access: rw},
		{ID: 0x0016, Name: "pumpPower", Type: zcl.TypeUint24, Access: rw},
		{ID: 0x0017, Name: "lifetimeEnergyConsumed", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0020, Name: "operationMode", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0021, Name: "controlMode", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0022, Name: "alarmMask", Type: zcl.TypeBitmap16, Access: ro},
	},
}

// Thermostat includes the weekly schedule commands, whose transition list
// layout depends on the numoftrans and mode fields before it, and the
// Danfoss radiator valve extensions.
var Thermostat = zcl.ClusterDef{
	ID:   0x0201,
	Name: "hvacThermostat",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "localTemp", Type: zcl.TypeInt16, Access: rp},
		{ID: 0x0001, Name: "outdoorTemp", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0002, Name: "occupancy", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0003, Name: "absMinHeatSetpointLimit", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0004, Name: "absMaxHeatSetpointLimit", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0005, Name: "absMinCoolSetpointLimit", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0006, Name: "absMaxCoolSetpointLimit", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0007, Name: "pICoolingDemand", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0008, Name: "pIHeatingDemand", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0009, Name: "systemTypeConfig", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0010, Name: "localTemperatureCalibration", Type: zcl.TypeInt8, Access: rw},
		{ID: 0x0011, Name: "occupiedCoolingSetpoint", Type: zcl.TypeInt16, Access: rwp},
		{ID: 0x0012, Name: "occupiedHeatingSetpoint", Type: zcl.TypeInt16, Access: rwp},
		{ID: 0x0013, Name: "unoccupiedCoolingSetpoint", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0014, Name: "unoccupiedHeatingSetpoint", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0015, Name: "minHeatSetpointLimit", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0016, Name: "maxHeatSetpointLimit", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0017, Name: "minCoolSetpointLimit", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0018, Name: "maxCoolSetpointLimit", Type: zcl.TypeInt16, Access: rw},
		{ID: 0x0019, Name: "minSetpointDeadBand", Type: zcl.TypeInt8, Access: rw},
		{ID: 0x001A, Name: "remoteSensing", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x001B, Name: "ctrlSeqeOfOper", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x001C, Name: "systemMode", Type: zcl.TypeEnum8, Access: rwp},
		{ID: 0x001D, Name: "alarmMask", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x001E, Name: "runningMode", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0020, Name: "startOfWeek", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0021, Name: "numberOfWeeklyTrans", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0022, Name: "numberOfDailyTrans", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0023, Name: "tempSetpointHold", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0024, Name: "tempSetpointHoldDuration", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0025, Name: "programingOperMode", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0029, Name: "runningState", Type: zcl.TypeBitmap16, Access: rp},
		{ID: 0x0030, Name: "setpointChangeSource", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0031, Name: "setpointChangeAmount", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0032, Name: "setpointChangeSourceTimeStamp", Type: zcl.TypeUTC, Access: ro},
		{ID: 0x0040, Name: "acType", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0041, Name: "acCapacity", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0042, Name: "acRefrigerantType", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0043, Name: "acConpressorType", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0044, Name: "acErrorCode", Type: zcl.TypeBitmap32, Access: rw},
		{ID: 0x0045, Name: "acLouverPosition", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0046, Name: "acCollTemp", Type: zcl.TypeInt16, Access: ro},
		{ID: 0x0047, Name: "acCapacityFormat", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x4000, Name: "danfossWindowOpenInternal", Type: zcl.TypeEnum8, Access: rp, ManufacturerCode: ManufacturerDanfoss},
		{ID: 0x4003, Name: "danfossWindowOpenExternal", Type: zcl.TypeBool, Access: rw, ManufacturerCode: ManufacturerDanfoss},
		{ID: 0x4010, Name: "danfossDayOfWeek", Type: zcl.TypeEnum8, Access: rw, ManufacturerCode: ManufacturerDanfoss},
		{ID: 0x4011, Name: "danfossTriggerTime", Type: zcl.TypeUint16, Access: rw, ManufacturerCode: ManufacturerDanfoss},
		{ID: 0x4012, Name: "danfossMountedModeActive", Type: zcl.TypeBool, Access: rp, ManufacturerCode: ManufacturerDanfoss},
		{ID: 0x4013, Name: "danfossMountedModeControl", Type: zcl.TypeBool, Access: rw, ManufacturerCode: ManufacturerDanfoss},
		{ID: 0x4014, Name: "danfossThermostatOrientation", Type: zcl.TypeBool, Access: rw, ManufacturerCode: ManufacturerDanfoss},
		{ID: 0x4015, Name: "danfossExternalMeasuredRoomSensor", Type: zcl.TypeInt16, Access: rw, ManufacturerCode: ManufacturerDanfoss},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "setpointRaiseLower", param("mode", zcl.TypeUint8), param("amount", zcl.TypeInt8)),
		toServer(0x01, "setWeeklySchedule", param("numoftrans", zcl.TypeUint8), param("dayofweek", zcl.TypeUint8),
			param("mode", zcl.TypeUint8), param("transitions", zcl.TypeListThermoTransitions)),
		toServer(0x02, "getWeeklySchedule", param("daystoreturn", zcl.TypeUint8), param("modetoreturn", zcl.TypeUint8)),
		toServer(0x03, "clearWeeklySchedule"),
		toServer(0x04, "getRelayStatusLog"),
		toServer(0x40, "danfossSetpointCommand", param("setpointType", zcl.TypeEnum8), param("setpoint", zcl.TypeInt16)),
		toClient(0x00, "getWeeklyScheduleRsp", param("numoftrans", zcl.TypeUint8), param("dayofweek", zcl.TypeUint8),
			param("mode", zcl.TypeUint8), param("transitions", zcl.TypeListThermoTransitions)),
		toClient(0x01, "getRelayStatusLogRsp", param("timeofday", zcl.TypeUint16), param("relaystatus", zcl.TypeUint16),
			param("localtemp", zcl.TypeUint16), param("humidity", zcl.TypeUint8), param("setpoint", zcl.TypeUint16),
			param("unreadentries", zcl.TypeUint16)),
	},
}

var FanControl = zcl.ClusterDef{
	ID:   0x0202,
	Name: "hvacFanCtrl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "fanMode", Type: zcl.TypeEnum8, Access: rwp},
		{ID: 0x0001, Name: "fanModeSequence", Type: zcl.TypeEnum8, Access: rw},
	},
}

var Dehumidification = zcl.ClusterDef{
	ID:   0x0203,
	Name: "hvacDehumidificationCtrl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "relativeHumidity", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0001, Name: "dehumidCooling", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0010, Name: "rhDehumidSetpoint", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0011, Name: "relativeHumidityMode", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0012, Name: "dehumidLockout", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0013, Name: "dehumidHysteresis", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0014, Name: "dehumidMaxCool", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0015, Name: "relativeHumidDisplay", Type: zcl.TypeEnum8, Access: rw},
	},
}

var ThermostatUserInterface = zcl.ClusterDef{
	ID:   0x0204,
	Name: "hvacUserInterfaceCfg",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "tempDisplayMode", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0001, Name: "keypadLockout", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0002, Name: "programmingVisibility", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x4000, Name: "danfossViewingDirection", Type: zcl.TypeEnum8, Access: rw, ManufacturerCode: ManufacturerDanfoss},
	},
}
