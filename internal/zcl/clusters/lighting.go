package clusters

import "zigbee-zcl/internal/zcl"

var ColorControl = zcl.ClusterDef{
	ID:   0x0300,
	Name: "lightingColorCtrl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "currentHue", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0001, Name: "currentSaturation", Type: zcl.TypeUint8, Access: rp},
		{ID: 0x0002, Name: "remainingTime", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0003, Name: "currentX", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0004, Name: "currentY", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0005, Name: "driftCompensation", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0006, Name: "compensationText", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0007, Name: "colorTemperature", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0008, Name: "colorMode", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x000F, Name: "options", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0010, Name: "numPrimaries", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0011, Name: "primary1X", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0012, Name: "primary1Y", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0013, Name: "primary1Intensity", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0015, Name: "primary2X", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0016, Name: "primary2Y", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0017, Name: "primary2Intensity", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0019, Name: "primary3X", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x001A, Name: "primary3Y", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x001B, Name: "primary3Intensity", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0030, Name: "whitePointX", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0031, Name: "whitePointY", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x4000, Name: "enhancedCurrentHue", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x4001, Name: "enhancedColorMode", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x4002, Name: "colorLoopActive", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x4003, Name: "colorLoopDirection", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x4004, Name: "colorLoopTime", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x4005, Name: "colorLoopStartEnhancedHue", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x4006, Name: "colorLoopStoredEnhancedHue", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x400A, Name: "colorCapabilities", Type: zcl.TypeBitmap16, Access: ro},
		{ID: 0x400B, Name: "colorTempPhysicalMin", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x400C, Name: "colorTempPhysicalMax", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x400D, Name: "coupleColorTempToLevelMin", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x4010, Name: "startUpColorTemperature", Type: zcl.TypeUint16, Access: rw},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "moveToHue", param("hue", zcl.TypeUint8), param("direction", zcl.TypeUint8),
			param("transtime", zcl.TypeUint16), param("optionsMask", zcl.TypeBitmap8),
			param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x01, "moveHue", param("movemode", zcl.TypeUint8), param("rate", zcl.TypeUint8),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x02, "stepHue", param("stepmode", zcl.TypeUint8), param("stepsize", zcl.TypeUint8),
			param("transtime", zcl.TypeUint8), param("optionsMask", zcl.TypeBitmap8),
			param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x03, "moveToSaturation", param("saturation", zcl.TypeUint8), param("transtime", zcl.TypeUint16),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x04, "moveSaturation", param("movemode", zcl.TypeUint8), param("rate", zcl.TypeUint8),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x05, "stepSaturation", param("stepmode", zcl.TypeUint8), param("stepsize", zcl.TypeUint8),
			param("transtime", zcl.TypeUint8), param("optionsMask", zcl.TypeBitmap8),
			param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x06, "moveToHueAndSaturation", param("hue", zcl.TypeUint8), param("saturation", zcl.TypeUint8),
			param("transtime", zcl.TypeUint16), param("optionsMask", zcl.TypeBitmap8),
			param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x07, "moveToColor", param("colorx", zcl.TypeUint16), param("colory", zcl.TypeUint16),
			param("transtime", zcl.TypeUint16), param("optionsMask", zcl.TypeBitmap8),
			param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x08, "moveColor", param("ratex", zcl.TypeInt16), param("ratey", zcl.TypeInt16),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x09, "stepColor", param("stepx", zcl.TypeInt16), param("stepy", zcl.TypeInt16),
			param("transtime", zcl.TypeUint16), param("optionsMask", zcl.TypeBitmap8),
			param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x0A, "moveToColorTemp", param("colortemp", zcl.TypeUint16), param("transtime", zcl.TypeUint16),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x40, "enhancedMoveToHue", param("enhancehue", zcl.TypeUint16), param("direction", zcl.TypeUint8),
			param("transtime", zcl.TypeUint16), param("optionsMask", zcl.TypeBitmap8),
			param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x41, "enhancedMoveHue", param("movemode", zcl.TypeUint8), param("rate", zcl.TypeUint16),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x42, "enhancedStepHue", param("stepmode", zcl.TypeUint8), param("stepsize", zcl.TypeUint16),
			param("transtime", zcl.TypeUint16), param("optionsMask", zcl.TypeBitmap8),
			param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x43, "enhancedMoveToHueAndSaturation", param("enhancehue", zcl.TypeUint16),
			param("saturation", zcl.TypeUint8), param("transtime", zcl.TypeUint16),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x44, "colorLoopSet", param("updateflags", zcl.TypeUint8), param("action", zcl.TypeUint8),
			param("direction", zcl.TypeUint8), param("time", zcl.TypeUint16), param("starthue", zcl.TypeUint16),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x47, "stopMoveStep", param("bits", zcl.TypeUint8), param("bytee", zcl.TypeUint8),
			param("action", zcl.TypeUint8), param("direction", zcl.TypeUint8), param("time", zcl.TypeUint16),
			param("starthue", zcl.TypeUint16)),
		toServer(0x4B, "moveColorTemp", param("movemode", zcl.TypeUint8), param("rate", zcl.TypeUint16),
			param("minimum", zcl.TypeUint16), param("maximum", zcl.TypeUint16),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
		toServer(0x4C, "stepColorTemp", param("stepmode", zcl.TypeUint8), param("stepsize", zcl.TypeUint16),
			param("transtime", zcl.TypeUint16), param("minimum", zcl.TypeUint16), param("maximum", zcl.TypeUint16),
			param("optionsMask", zcl.TypeBitmap8), param("optionsOverride", zcl.TypeBitmap8)),
	},
}

var BallastConfiguration = zcl.ClusterDef{
	ID:   0x0301,
	Name: "lightingBallastCfg",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "physicalMinLevel", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0001, Name: "physicalMaxLevel", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0002, Name: "ballastStatus", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0010, Name: "minLevel", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0011, Name: "maxLevel", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0012, Name: "powerOnLevel", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0013, Name: "powerOnFadeTime", Type: zcl.TypeUint16, Access: rw},
		{ID: 0x0014, Name: "intrinsicBallastFactor", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0015, Name: "ballastFactorAdjustment", Type: zcl.TypeUint8, Access: rw},
		{ID: 0x0020, Name: "lampQuantity", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0030, Name: "lampType", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0031, Name: "lampManufacturer", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0032, Name: "lampRatedHours", Type: zcl.TypeUint24, Access: rw},
		{ID: 0x0033, Name: "lampBurnHours", Type: zcl.TypeUint24, Access: rw},
		{ID: 0x0034, Name: "lampAlarmMode", Type: zcl.TypeBitmap8, Access: rw},
		{ID: 0x0035, Name: "lampBurnHoursTripPoint", Type: zcl.TypeUint24, Access: rw},
	},
}
