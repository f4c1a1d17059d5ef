package clusters

import "zigbee-zcl/internal/zcl"

// measured returns the attribute set shared by the measurement clusters:
// measuredValue, minMeasuredValue, maxMeasuredValue and tolerance.
func measured(value zcl.DataType, tolerance zcl.DataType) []zcl.AttributeDef {
	return []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: value, Access: rp},
		{ID: 0x0001, Name: "minMeasuredValue", Type: value, Access: ro},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: value, Access: ro},
		{ID: 0x0003, Name: "tolerance", Type: tolerance, Access: ro},
	}
}

var IlluminanceMeasurement = zcl.ClusterDef{
	ID:   0x0400,
	Name: "msIlluminanceMeasurement",
	Attributes: append(measured(zcl.TypeUint16, zcl.TypeUint16),
		zcl.AttributeDef{ID: 0x0004, Name: "lightSensorType", Type: zcl.TypeEnum8, Access: ro},
	),
}

var IlluminanceLevelSensing = zcl.ClusterDef{
	ID:   0x0401,
	Name: "msIlluminanceLevelSensing",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "levelStatus", Type: zcl.TypeEnum8, Access: rp},
		{ID: 0x0001, Name: "lightSensorType", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0010, Name: "illuminanceTargetLevel", Type: zcl.TypeUint16, Access: rw},
	},
}

var TemperatureMeasurement = zcl.ClusterDef{
	ID:   0x0402,
	Name: "msTemperatureMeasurement",
	Attributes: append(measured(zcl.TypeInt16, zcl.TypeUint16),
		zcl.AttributeDef{ID: 0x0010, Name: "minPercentChange", Type: zcl.TypeUint16, Access: ro},
		zcl.AttributeDef{ID: 0x0011, Name: "minAbsoluteChange", Type: zcl.TypeUint16, Access: ro},
	),
}

// PressureMeasurement carries both the kPa values and the extended
// resolution ones scaled by 10^scale.
var PressureMeasurement = zcl.ClusterDef{
	ID:   0x0403,
	Name: "msPressureMeasurement",
	Attributes: append(measured(zcl.TypeInt16, zcl.TypeUint16),
		zcl.AttributeDef{ID: 0x0010, Name: "scaledValue", Type: zcl.TypeInt16, Access: rp},
		zcl.AttributeDef{ID: 0x0011, Name: "minScaledValue", Type: zcl.TypeInt16, Access: ro},
		zcl.AttributeDef{ID: 0x0012, Name: "maxScaledValue", Type: zcl.TypeInt16, Access: ro},
		zcl.AttributeDef{ID: 0x0013, Name: "scaledTolerance", Type: zcl.TypeUint16, Access: ro},
		zcl.AttributeDef{ID: 0x0014, Name: "scale", Type: zcl.TypeInt8, Access: ro},
	),
}

var FlowMeasurement = zcl.ClusterDef{
	ID:         0x0404,
	Name:       "msFlowMeasurement",
	Attributes: measured(zcl.TypeUint16, zcl.TypeUint16),
}

var RelativeHumidity = zcl.ClusterDef{
	ID:         0x0405,
	Name:       "msRelativeHumidity",
	Attributes: measured(zcl.TypeUint16, zcl.TypeUint16),
}

var OccupancySensing = zcl.ClusterDef{
	ID:   0x0406,
	Name: "msOccupancySensing",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "occupancy", Type: zcl.TypeBitmap8, Access: rp},
		{ID: 0x0001, Name: "occupancySensorType", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0002, Name: "occupancySensorTypeBitmap", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0010, Name: "pirOToUDelay", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0011, Name: "pirUToODelay", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0012, Name: "pirUToOThreshold", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0020, Name: "ultrasonicOToUDelay", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0021, Name: "ultrasonicUToODelay", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0022, Name: "ultrasonicUToOThreshold", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0030, Name: "contactOToUDelay", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0031, Name: "contactUToODelay", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0032, Name: "contactUToOThreshold", Type: zcl.TypeUint8, Access: rw},
	},
}

var SoilMoisture = zcl.ClusterDef{
	ID:         0x0408,
	Name:       "msSoilMoisture",
	Attributes: measured(zcl.TypeUint16, zcl.TypeUint16),
}

var PHMeasurement = zcl.ClusterDef{
	ID:         0x0409,
	Name:       "pHMeasurement",
	Attributes: measured(zcl.TypeUint16, zcl.TypeUint16),
}

// The concentration clusters report fractions as single precision floats.

var CarbonMonoxide = zcl.ClusterDef{
	ID:         0x040C,
	Name:       "msCO",
	Attributes: measured(zcl.TypeFloat32, zcl.TypeFloat32),
}

var CarbonDioxide = zcl.ClusterDef{
	ID:         0x040D,
	Name:       "msCO2",
	Attributes: measured(zcl.TypeFloat32, zcl.TypeFloat32),
}

var PM25Measurement = zcl.ClusterDef{
	ID:         0x042A,
	Name:       "pm25Measurement",
	Attributes: measured(zcl.TypeFloat32, zcl.TypeFloat32),
}

var FormaldehydeMeasurement = zcl.ClusterDef{
	ID:         0x042B,
	Name:       "msFormaldehyde",
	Attributes: measured(zcl.TypeFloat32, zcl.TypeFloat32),
}
