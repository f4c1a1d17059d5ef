// Package clusters holds the built-in ZCL cluster definitions.
package clusters

import (
	"io"
	"log/slog"
	"sync"

	"zigbee-zcl/internal/zcl"
)

const (
	ro  = zcl.AccessRead
	rw  = zcl.AccessRead | zcl.AccessWrite
	rp  = zcl.AccessRead | zcl.AccessReport
	rwp = zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport
)

// Manufacturer codes used by the overlays below.
const (
	ManufacturerPhilips   uint16 = 0x100B
	ManufacturerSchneider uint16 = 0x105E
	ManufacturerUbisys    uint16 = 0x10F2
	ManufacturerOsram     uint16 = 0x110C
	ManufacturerLumi      uint16 = 0x115F
	ManufacturerDanfoss   uint16 = 0x1246
)

func param(name string, t zcl.DataType, conds ...zcl.Condition) zcl.ParamDef {
	return zcl.ParamDef{Name: name, Type: t, Conditions: conds}
}

func toServer(id uint8, name string, params ...zcl.ParamDef) zcl.CommandDef {
	return zcl.CommandDef{ID: id, Name: name, Direction: zcl.DirectionToServer, Params: params}
}

func toClient(id uint8, name string, params ...zcl.ParamDef) zcl.CommandDef {
	return zcl.CommandDef{ID: id, Name: name, Direction: zcl.DirectionToClient, Params: params}
}

var statusSuccess = zcl.Condition{Kind: zcl.CondStatusEquals, Value: 0}

func bitSet(name string, mask uint64) zcl.Condition {
	return zcl.Condition{Kind: zcl.CondBitMaskSet, Param: name, Mask: mask}
}

func minRemaining(n uint64) zcl.Condition {
	return zcl.Condition{Kind: zcl.CondMinimumRemaining, Value: n}
}

// All returns every built-in definition, standard clusters first.
func All() []zcl.ClusterDef {
	return []zcl.ClusterDef{
		// General (0x0000-0x00FF)
		Basic,                    // 0x0000
		PowerConfiguration,       // 0x0001
		DeviceTemperature,        // 0x0002
		Identify,                 // 0x0003
		Groups,                   // 0x0004
		Scenes,                   // 0x0005
		OnOff,                    // 0x0006
		OnOffSwitchConfiguration, // 0x0007
		LevelControl,             // 0x0008
		Alarms,                   // 0x0009
		Time,                     // 0x000A
		RSSILocation,             // 0x000B
		AnalogInput,              // 0x000C
		AnalogOutput,             // 0x000D
		AnalogValue,              // 0x000E
		BinaryInput,              // 0x000F
		BinaryOutput,             // 0x0010
		BinaryValue,              // 0x0011
		MultistateInput,          // 0x0012
		MultistateOutput,         // 0x0013
		MultistateValue,          // 0x0014
		Commissioning,            // 0x0015
		OTAUpgrade,               // 0x0019
		PowerProfile,             // 0x001A
		ApplianceControl,         // 0x001B
		PollControl,              // 0x0020
		GreenPower,               // 0x0021

		// Closures (0x0100-0x01FF)
		ShadeConfiguration, // 0x0100
		DoorLock,           // 0x0101
		WindowCovering,     // 0x0102
		BarrierControl,     // 0x0103

		// HVAC (0x0200-0x02FF)
		PumpConfiguration,       // 0x0200
		Thermostat,              // 0x0201
		FanControl,              // 0x0202
		Dehumidification,        // 0x0203
		ThermostatUserInterface, // 0x0204

		// Lighting (0x0300-0x03FF)
		ColorControl,         // 0x0300
		BallastConfiguration, // 0x0301

		// Measurement & Sensing (0x0400-0x04FF)
		IlluminanceMeasurement,  // 0x0400
		IlluminanceLevelSensing, // 0x0401
		TemperatureMeasurement,  // 0x0402
		PressureMeasurement,     // 0x0403
		FlowMeasurement,         // 0x0404
		RelativeHumidity,        // 0x0405
		OccupancySensing,        // 0x0406
		SoilMoisture,            // 0x0408
		PHMeasurement,           // 0x0409
		CarbonMonoxide,          // 0x040C
		CarbonDioxide,           // 0x040D
		PM25Measurement,         // 0x042A
		FormaldehydeMeasurement, // 0x042B

		// Security & Safety (0x0500-0x05FF)
		IASZone, // 0x0500
		IASACE,  // 0x0501
		IASWD,   // 0x0502

		// Smart Energy & Home Automation
		Metering,                 // 0x0702
		ApplianceIdentification,  // 0x0B00
		MeterIdentification,      // 0x0B01
		ApplianceEventsAndAlerts, // 0x0B02
		ApplianceStatistics,      // 0x0B03
		ElectricalMeasurement,    // 0x0B04
		Diagnostics,              // 0x0B05
		Touchlink,                // 0x1000

		// Manufacturer specific
		Tuya,               // 0xEF00
		Philips,            // 0xFC00
		UbisysDeviceSetup,  // 0xFC00 (0x10F2)
		UbisysDimmerSetup,  // 0xFC01 (0x10F2)
		Osram,              // 0xFC0F (0x110C)
		SchneiderPilotMode, // 0xFC21 (0x105E)
		Lumi,               // 0xFCC0 (0x115F)
	}
}

// NewRegistry builds a registry holding the built-in definitions followed by
// extra, so extra definitions extend the built-in ones.
func NewRegistry(logger *slog.Logger, extra ...zcl.ClusterDef) (*zcl.Registry, error) {
	return zcl.NewRegistry(logger, append(All(), extra...)...)
}

// Default returns a shared registry of the built-in definitions.
var Default = sync.OnceValues(func() (*zcl.Registry, error) {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
})
