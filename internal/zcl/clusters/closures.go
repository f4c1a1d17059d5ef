package clusters

import "zigbee-zcl/internal/zcl"

var ShadeConfiguration = zcl.ClusterDef{
	ID:   0x0100,
	Name: "closuresShadeCfg",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "physicalClosedLimit", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0001, Name: "motorStepSize", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0002, Name: "status", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0010, Name: "closedLimit", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0012, Name: "mode", Type: zcl.TypeEnum8, Access: rw},
	},
}

var DoorLock = zcl.ClusterDef{
	ID:   0x0101,
	Name: "closuresDoorLock",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "lockState", Type: zcl.TypeEnum8, Access: rp},
		{ID: 0x0001, Name: "lockType", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0002, Name: "actuatorEnabled", Type: zcl.TypeBool, Access: ro},
		{ID: 0x0003, Name: "doorState", Type: zcl.TypeEnum8, Access: rp},
		{ID: 0x0004, Name: "doorOpenEvents", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0005, Name: "doorClosedEvents", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0006, Name: "openPeriod", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0011, Name: "numOfTotalUsersSupported", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0012, Name: "numOfPinUsersSupported", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0017, Name: "maxPinLen", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0018, Name: "minPinLen", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0021, Name: "language", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0023, Name: "autoRelockTime", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0024, Name: "soundVolume", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0025, Name: "operatingMode", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0029, Name: "enableOneTouchLocking", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0030, Name: "wrongCodeEntryLimit", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0031, Name: "userCodeTemporaryDisableTime", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0032, Name: "sendPinOta", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0033, Name: "requirePinForRfOperation", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0040, Name: "alarmMask", Type: zcl.TypeBitmap16, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "lockDoor", param("pincodevalue", zcl.TypeCharStr)),
		toServer(0x01, "unlockDoor", param("pincodevalue", zcl.TypeCharStr)),
		toServer(0x02, "toggleDoor", param("pincodevalue", zcl.TypeCharStr)),
		toServer(0x03, "unlockWithTimeout", param("timeout", zcl.TypeUint16), param("pincodevalue", zcl.TypeCharStr)),
		toServer(0x05, "setPinCode", param("userid", zcl.TypeUint16), param("userstatus", zcl.TypeUint8),
			param("usertype", zcl.TypeUint8), param("pincodevalue", zcl.TypeCharStr)),
		toServer(0x06, "getPinCode", param("userid", zcl.TypeUint16)),
		toServer(0x07, "clearPinCode", param("userid", zcl.TypeUint16)),
		toServer(0x08, "clearAllPinCodes"),
		toServer(0x09, "setUserStatus", param("userid", zcl.TypeUint16), param("userstatus", zcl.TypeUint8)),
		toServer(0x0A, "getUserStatus", param("userid", zcl.TypeUint16)),
		toClient(0x00, "lockDoorRsp", param("status", zcl.TypeUint8)),
		toClient(0x01, "unlockDoorRsp", param("status", zcl.TypeUint8)),
		toClient(0x02, "toggleDoorRsp", param("status", zcl.TypeUint8)),
		toClient(0x03, "unlockWithTimeoutRsp", param("status", zcl.TypeUint8)),
		toClient(0x05, "setPinCodeRsp", param("status", zcl.TypeUint8)),
		toClient(0x06, "getPinCodeRsp", param("userid", zcl.TypeUint16), param("userstatus", zcl.TypeUint8),
			param("usertype", zcl.TypeUint8), param("pincodevalue", zcl.TypeCharStr)),
		toClient(0x07, "clearPinCodeRsp", param("status", zcl.TypeUint8)),
		toClient(0x08, "clearAllPinCodesRsp", param("status", zcl.TypeUint8)),
		toClient(0x09, "setUserStatusRsp", param("status", zcl.TypeUint8)),
		toClient(0x0A, "getUserStatusRsp", param("userid", zcl.TypeUint16), param("userstatus", zcl.TypeUint8)),
		toClient(0x20, "operationEventNotification", param("opereventsrc", zcl.TypeUint8),
			param("opereventcode", zcl.TypeUint8), param("userid", zcl.TypeUint16),
			param("pin", zcl.TypeOctetStr), param("zigbeelocaltime", zcl.TypeUint32),
			param("data", zcl.TypeCharStr, minRemaining(1))),
		toClient(0x21, "programmingEventNotification", param("programeventsrc", zcl.TypeUint8),
			param("programeventcode", zcl.TypeUint8), param("userid", zcl.TypeUint16),
			param("pin", zcl.TypeOctetStr), param("usertype", zcl.TypeUint8),
			param("userstatus", zcl.TypeUint8), param("zigbeelocaltime", zcl.TypeUint32),
			param("data", zcl.TypeCharStr, minRemaining(1))),
	},
}

// WindowCovering also carries the Ubisys calibration attributes, which are
// only valid with the Ubisys manufacturer code.
var WindowCovering = zcl.ClusterDef{
	ID:   0x0102,
	Name: "closuresWindowCovering",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "windowCoveringType", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0001, Name: "physicalClosedLimitLiftCm", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0002, Name: "physicalClosedLimitTiltDdegree", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0003, Name: "currentPositionLiftCm", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0004, Name: "currentPositionTiltDdegree", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0005, Name: "numOfActuationsLift", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0006, Name: "numOfActuationsTilt", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0007, Name: "configStatus", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0008, Name: "currentPositionLiftPercentage", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0009, Name: "currentPositionTiltPercentage", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x000A, Name: "operationalStatus", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0010, Name: "installedOpenLimitLiftCm", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0011, Name: "installedClosedLimitLiftCm", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0012, Name: "installedOpenLimitTiltDdegree", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0013, Name: "installedClosedLimitTiltDdegree", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0014, Name: "velocityLift", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0015, Name: "accelerationTimeLift", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0016, Name: "decelerationTimeLift", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0017, Name: "windowCoveringMode", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0018, Name: "intermediateSetpointsLift", Type: zcl.TypeOctetStr, Access: rw},
		{ID: 0x0019, Name: "intermediateSetpointsTilt", Type: zcl.TypeOctetStr, Access: rw},
		{ID: 0x1000, Name: "ubisysTurnaroundGuardTime", Type: zcl.TypeUint8, Access: rw, ManufacturerCode: ManufacturerUbisys},
		{ID: 0x1001, Name: "ubisysLiftToTiltTransitionSteps", Type: zcl.TypeUint16, Access: rw, ManufacturerCode: ManufacturerUbisys},
		{ID: 0x1002, Name: "ubisysTotalSteps", Type: zcl.TypeUint16, Access: rw, ManufacturerCode: ManufacturerUbisys},
		{ID: 0x1003, Name: "ubisysLiftToTiltTransitionSteps2", Type: zcl.TypeUint16, Access: rw, ManufacturerCode: ManufacturerUbisys},
		{ID: 0x1004, Name: "ubisysTotalSteps2", Type: zcl.TypeUint16, Access: rw, ManufacturerCode: ManufacturerUbisys},
		{ID: 0x1005, Name: "ubisysAdditionalSteps", Type: zcl.TypeUint8, Access: rw, ManufacturerCode: ManufacturerUbisys},
		{ID: 0x1006, Name: "ubisysInactivePowerThreshold", Type: zcl.TypeUint16, Access: rw, ManufacturerCode: ManufacturerUbisys},
		{ID: 0x1007, Name: "ubisysStartupSteps", Type: zcl.TypeUint16, Access: rw, ManufacturerCode: ManufacturerUbisys},
		{ID: 0xF000, Name: "tuyaMovingState", Type: zcl.TypeEnum8, Access: rp},
		{ID: 0xF001, Name: "tuyaCalibration", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0xF002, Name: "tuyaMotorReversal", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0xF003, Name: "moesCalibrationTime", Type: zcl.TypeUint16, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "upOpen"),
		toServer(0x01, "downClose"),
		toServer(0x02, "stop"),
		toServer(0x04, "goToLiftValue", param("liftvalue", zcl.TypeUint16)),
		toServer(0x05, "goToLiftPercentage", param("percentageliftvalue", zcl.TypeUint8)),
		toServer(0x07, "goToTiltValue", param("tiltvalue", zcl.TypeUint16)),
		toServer(0x08, "goToTiltPercentage", param("percentagetiltvalue", zcl.TypeUint8)),
		toServer(0x80, "elkoStopOrStepLiftPercentage", param("direction", zcl.TypeUint16), param("stepvalue", zcl.TypeUint16)),
	},
}

var BarrierControl = zcl.ClusterDef{
	ID:   0x0103,
	Name: "barrierControl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0001, Name: "movingState", Type: zcl.TypeEnum8, Access: rp},
		{ID: 0x0002, Name: "safetyStatus", Type: zcl.TypeBitmap16, Access: rp},
		{ID: 0x0003, Name: "capabilities", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x000A, Name: "barrierPosition", Type: zcl.TypeUint8, Access: rp},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "goToPercent", param("percentOpen", zcl.TypeUint8)),
		toServer(0x01, "stop"),
	},
}
