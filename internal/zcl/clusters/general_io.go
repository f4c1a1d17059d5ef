package clusters

import "zigbee-zcl/internal/zcl"

var AnalogInput = zcl.ClusterDef{
	ID:   0x000C,
	Name: "genAnalogInput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0041, Name: "maxPresentValue", Type: zcl.TypeFloat32, Access: rw},
		{ID: 0x0045, Name: "minPresentValue", Type: zcl.TypeFloat32, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeFloat32, Access: rwp},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x006A, Name: "resolution", Type: zcl.TypeFloat32, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0075, Name: "engineeringUnits", Type: zcl.TypeEnum16, Access: rw},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}

var AnalogOutput = zcl.ClusterDef{
	ID:   0x000D,
	Name: "genAnalogOutput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0041, Name: "maxPresentValue", Type: zcl.TypeFloat32, Access: rw},
		{ID: 0x0045, Name: "minPresentValue", Type: zcl.TypeFloat32, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeFloat32, Access: rwp},
		{ID: 0x0057, Name: "priorityArray", Type: zcl.TypeArray, Access: rw},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.TypeFloat32, Access: rw},
		{ID: 0x006A, Name: "resolution", Type: zcl.TypeFloat32, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0075, Name: "engineeringUnits", Type: zcl.TypeEnum16, Access: rw},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}

var AnalogValue = zcl.ClusterDef{
	ID:   0x000E,
	Name: "genAnalogValue",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeFloat32, Access: rwp},
		{ID: 0x0057, Name: "priorityArray", Type: zcl.TypeArray, Access: rw},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.TypeFloat32, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0075, Name: "engineeringUnits", Type: zcl.TypeEnum16, Access: rw},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}

var BinaryInput = zcl.ClusterDef{
	ID:   0x000F,
	Name: "genBinaryInput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0004, Name: "activeText", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x002E, Name: "inactiveText", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0054, Name: "polarity", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeBool, Access: rwp},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}

var BinaryOutput = zcl.ClusterDef{
	ID:   0x0010,
	Name: "genBinaryOutput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0004, Name: "activeText", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x002E, Name: "inactiveText", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0042, Name: "minimumOffTime", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0043, Name: "minimumOnTime", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0054, Name: "polarity", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeBool, Access: rwp},
		{ID: 0x0057, Name: "priorityArray", Type: zcl.TypeArray, Access: rw},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.TypeBool, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}

var BinaryValue = zcl.ClusterDef{
	ID:   0x0011,
	Name: "genBinaryValue",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0004, Name: "activeText", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x002E, Name: "inactiveText", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0042, Name: "minimumOffTime", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0043, Name: "minimumOnTime", Type: zcl.TypeUint32, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeBool, Access: rwp},
		{ID: 0x0057, Name: "priorityArray", Type: zcl.TypeArray, Access: rw},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.TypeBool, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}

var MultistateInput = zcl.ClusterDef{
	ID:   0x0012,
	Name: "genMultistateInput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x000E, Name: "stateText", Type: zcl.TypeArray, Access: rw},
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x004A, Name: "numberOfStates", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeUint16, Access: rwp},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}

var MultistateOutput = zcl.ClusterDef{
	ID:   0x0013,
	Name: "genMultistateOutput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x000E, Name: "stateText", Type: zcl.TypeArray, Access: rw},
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x004A, Name: "numberOfStates", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeUint16, Access: rwp},
		{ID: 0x0057, Name: "priorityArray", Type: zcl.TypeArray, Access: rw},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}

var MultistateValue = zcl.ClusterDef{
	ID:   0x0014,
	Name: "genMultistateValue",
	Attributes: []zcl.AttributeDef{
		{ID: 0x000E, Name: "stateText", Type: zcl.TypeArray, Access: rw},
		{ID: 0x001C, Name: "description", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x004A, Name: "numberOfStates", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0051, Name: "outOfService", Type: zcl.TypeBool, Access: rw},
		{ID: 0x0055, Name: "presentValue", Type: zcl.TypeUint16, Access: rwp},
		{ID: 0x0067, Name: "reliability", Type: zcl.TypeEnum8, Access: rw},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0100, Name: "applicationType", Type: zcl.TypeUint32, Access: ro},
	},
}
