package clusters

import "zigbee-zcl/internal/zcl"

// OTAUpgrade carries firmware images. Several request fields are only sent
// when the matching fieldControl bit is set. imageNotify ends early for the
// shorter payload types, so its trailing fields depend on the bytes left.
var OTAUpgrade = zcl.ClusterDef{
	ID:   0x0019,
	Name: "genOta",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "upgradeServerId", Type: zcl.TypeEUI64, Access: ro},
		{ID: 0x0001, Name: "fileOffset", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0002, Name: "currentFileVersion", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0003, Name: "currentZigbeeStackVersion", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0004, Name: "downloadedFileVersion", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0005, Name: "downloadedZigbeeStackVersion", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0006, Name: "imageUpgradeStatus", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0007, Name: "manufacturerId", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0008, Name: "imageTypeId", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0009, Name: "minimumBlockReqDelay", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x000A, Name: "imageStamp", Type: zcl.TypeUint32, Access: ro},
	},
	Commands: []zcl.CommandDef{
		toServer(0x01, "queryNextImageRequest", param("fieldControl", zcl.TypeUint8),
			param("manufacturerCode", zcl.TypeUint16), param("imageType", zcl.TypeUint16),
			param("fileVersion", zcl.TypeUint32),
			param("hardwareVersion", zcl.TypeUint16, bitSet("fieldControl", 0x01))),
		toServer(0x03, "imageBlockRequest", param("fieldControl", zcl.TypeUint8),
			param("manufacturerCode", zcl.TypeUint16), param("imageType", zcl.TypeUint16),
			param("fileVersion", zcl.TypeUint32), param("fileOffset", zcl.TypeUint32),
			param("maximumDataSize", zcl.TypeUint8),
			param("requestNodeIeeeAddress", zcl.TypeEUI64, bitSet("fieldControl", 0x01)),
			param("minimumBlockPeriod", zcl.TypeUint16, bitSet("fieldControl", 0x02))),
		toServer(0x04, "imagePageRequest", param("fieldControl", zcl.TypeUint8),
			param("manufacturerCode", zcl.TypeUint16), param("imageType", zcl.TypeUint16),
			param("fileVersion", zcl.TypeUint32), param("fileOffset", zcl.TypeUint32),
			param("maximumDataSize", zcl.TypeUint8), param("pageSize", zcl.TypeUint16),
			param("responseSpacing", zcl.TypeUint16),
			param("requestNodeIeeeAddress", zcl.TypeEUI64, bitSet("fieldControl", 0x01))),
		toServer(0x06, "upgradeEndRequest", param("status", zcl.TypeUint8),
			param("manufacturerCode", zcl.TypeUint16), param("imageType", zcl.TypeUint16),
			param("fileVersion", zcl.TypeUint32)),
		toServer(0x08, "queryDeviceSpecificFileRequest", param("eui64", zcl.TypeEUI64),
			param("manufacturerCode", zcl.TypeUint16), param("imageType", zcl.TypeUint16),
			param("fileVersion", zcl.TypeUint32), param("zigbeeStackVersion", zcl.TypeUint16)),
		toClient(0x00, "imageNotify", param("payloadType", zcl.TypeUint8), param("queryJitter", zcl.TypeUint8),
			param("manufacturerCode", zcl.TypeUint16, minRemaining(2)),
			param("imageType", zcl.TypeUint16, minRemaining(2)),
			param("fileVersion", zcl.TypeUint32, minRemaining(4))),
		toClient(0x02, "queryNextImageResponse", param("status", zcl.TypeUint8),
			param("manufacturerCode", zcl.TypeUint16, statusSuccess),
			param("imageType", zcl.TypeUint16, statusSuccess),
			param("fileVersion", zcl.TypeUint32, statusSuccess),
			param("imageSize", zcl.TypeUint32, statusSuccess)),
		toClient(0x05, "imageBlockResponse", param("status", zcl.TypeUint8),
			param("manufacturerCode", zcl.TypeUint16, statusSuccess),
			param("imageType", zcl.TypeUint16, statusSuccess),
			param("fileVersion", zcl.TypeUint32, statusSuccess),
			param("fileOffset", zcl.TypeUint32, statusSuccess),
			param("dataSize", zcl.TypeUint8, statusSuccess),
			param("data", zcl.TypeBuffer, statusSuccess)),
		toClient(0x07, "upgradeEndResponse", param("manufacturerCode", zcl.TypeUint16),
			param("imageType", zcl.TypeUint16), param("fileVersion", zcl.TypeUint32),
			param("currentTime", zcl.TypeUint32), param("upgradeTime", zcl.TypeUint32)),
	},
}

var PowerProfile = zcl.ClusterDef{
	ID:   0x001A,
	Name: "genPowerProfile",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "totalProfileNum", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x0001, Name: "multipleScheduling", Type: zcl.TypeBool, Access: ro},
		{ID: 0x0002, Name: "energyFormatting", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0003, Name: "energyRemote", Type: zcl.TypeBool, Access: rp},
		{ID: 0x0004, Name: "scheduleMode", Type: zcl.TypeBitmap8, Access: rwp},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "powerProfileRequest", param("powerProfileId", zcl.TypeUint8)),
		toServer(0x01, "powerProfileStateReq"),
		toServer(0x06, "getOverallSchedulePriceRsp", param("currency", zcl.TypeUint16),
			param("price", zcl.TypeUint32), param("priceTrailingDigit", zcl.TypeUint8)),
		toServer(0x0A, "energyPhasesScheduleStateReq", param("powerProfileId", zcl.TypeUint8)),
		toClient(0x01, "powerProfileRsp", param("totalProfileNum", zcl.TypeUint8),
			param("powerProfileId", zcl.TypeUint8), param("numOfTransferredPhases", zcl.TypeUint8),
			param("transferredPhases", zcl.TypeListUint8)),
		toClient(0x02, "powerProfileStateRsp", param("powerProfileCount", zcl.TypeUint8),
			param("powerProfileRecords", zcl.TypeBuffer)),
		toClient(0x06, "getOverallSchedulePrice"),
	},
}

var ApplianceControl = zcl.ClusterDef{
	ID:   0x001B,
	Name: "genApplianceCtrl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "startTime", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0001, Name: "finishTime", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0002, Name: "remainingTime", Type: zcl.TypeUint16, Access: rp},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "executionOfCommand", param("commandId", zcl.TypeUint8)),
		toServer(0x01, "signalState"),
		toServer(0x02, "writeFunctions", param("functionId", zcl.TypeUint16),
			param("functionDataType", zcl.TypeUint8), param("functionData", zcl.TypeBuffer)),
		toClient(0x00, "signalStateRsp", param("applianceStatus", zcl.TypeUint8),
			param("remoteEnableFlagsAndDeviceStatus2", zcl.TypeUint8), param("applianceStatus2", zcl.TypeUint24)),
		toClient(0x01, "signalStateNotification", param("applianceStatus", zcl.TypeUint8),
			param("remoteEnableFlagsAndDeviceStatus2", zcl.TypeUint8), param("applianceStatus2", zcl.TypeUint24)),
	},
}
