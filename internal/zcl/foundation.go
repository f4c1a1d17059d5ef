package zcl

// Foundation ZCL command IDs (global, not cluster-specific).
const (
	FoundationReadAttributes                 uint8 = 0x00
	FoundationReadAttributesResponse         uint8 = 0x01
	FoundationWriteAttributes                uint8 = 0x02
	FoundationWriteAttributesUndivided       uint8 = 0x03
	FoundationWriteAttributesResp            uint8 = 0x04
	FoundationWriteAttributesNoResp          uint8 = 0x05
	FoundationConfigReporting                uint8 = 0x06
	FoundationConfigReportingResp            uint8 = 0x07
	FoundationReadReportingConfig            uint8 = 0x08
	FoundationReadReportingConfigResp        uint8 = 0x09
	FoundationReportAttributes               uint8 = 0x0A
	FoundationDefaultResponse                uint8 = 0x0B
	FoundationDiscoverAttributes             uint8 = 0x0C
	FoundationDiscoverAttributesResp         uint8 = 0x0D
	FoundationReadStructured                 uint8 = 0x0E
	FoundationWriteStructured                uint8 = 0x0F
	FoundationWriteStructuredResp            uint8 = 0x10
	FoundationDiscoverCommandsReceived       uint8 = 0x11
	FoundationDiscoverCommandsReceivedResp   uint8 = 0x12
	FoundationDiscoverCommandsGenerated      uint8 = 0x13
	FoundationDiscoverCommandsGeneratedResp  uint8 = 0x14
	FoundationDiscoverAttributesExtended     uint8 = 0x15
	FoundationDiscoverAttributesExtendedResp uint8 = 0x16
)

// ZCL status codes
const (
	ZCLStatusSuccess              uint8 = 0x00
	ZCLStatusFailure              uint8 = 0x01
	ZCLStatusNotAuthorized        uint8 = 0x7E
	ZCLStatusMalformedCommand     uint8 = 0x80
	ZCLStatusUnsupClusterCommand  uint8 = 0x81
	ZCLStatusUnsupGeneralCommand  uint8 = 0x82
	ZCLStatusUnsupManufClusterCmd uint8 = 0x83
	ZCLStatusUnsupManufGeneralCmd uint8 = 0x84
	ZCLStatusInvalidField         uint8 = 0x85
	ZCLStatusUnsupportedAttr      uint8 = 0x86
	ZCLStatusInvalidValue         uint8 = 0x87
	ZCLStatusReadOnly             uint8 = 0x88
	ZCLStatusInsufficientSpace    uint8 = 0x89
	ZCLStatusDuplicateExists      uint8 = 0x8A
	ZCLStatusNotFound             uint8 = 0x8B
	ZCLStatusUnreportable         uint8 = 0x8C
	ZCLStatusInvalidDataType      uint8 = 0x8D
	ZCLStatusInvalidSelector      uint8 = 0x8E
	ZCLStatusWriteOnly            uint8 = 0x8F
	ZCLStatusInconsistentStartup  uint8 = 0x90
	ZCLStatusDefinedOutOfBand     uint8 = 0x91
	ZCLStatusActionDenied         uint8 = 0x93
	ZCLStatusTimeout              uint8 = 0x94
	ZCLStatusAbort                uint8 = 0x95
	ZCLStatusInvalidImage         uint8 = 0x96
	ZCLStatusWaitForData          uint8 = 0x97
	ZCLStatusNoImageAvailable     uint8 = 0x98
	ZCLStatusRequireMoreImage     uint8 = 0x99
	ZCLStatusNotificationPending  uint8 = 0x9A
	ZCLStatusHardwareFailure      uint8 = 0xC0
	ZCLStatusSoftwareFailure      uint8 = 0xC1
	ZCLStatusCalibrationError     uint8 = 0xC2
	ZCLStatusUnsupportedCluster   uint8 = 0xC3
)

// Reporting directions in configure/read reporting records.
const (
	ReportDirectionSend    uint8 = 0x00 // the server sends reports
	ReportDirectionReceive uint8 = 0x01 // the server expects reports
)

func param(name string, t DataType, conds ...Condition) ParamDef {
	return ParamDef{Name: name, Type: t, Conditions: conds}
}

var (
	statusFailed  = Condition{Kind: CondStatusNotEquals, Value: uint64(ZCLStatusSuccess)}
	statusSuccess = Condition{Kind: CondStatusEquals, Value: uint64(ZCLStatusSuccess)}
)

// globalCommands lists the record layout of each foundation command. The
// layouts document the wire format; decoding goes through the typed payloads
// in foundation_payload.go.
var globalCommands = []CommandDef{
	{ID: FoundationReadAttributes, Name: "read", Params: []ParamDef{param("attrId", TypeUint16)}},
	{ID: FoundationReadAttributesResponse, Name: "readRsp", Params: []ParamDef{
		param("attrId", TypeUint16), param("status", TypeUint8),
		param("dataType", TypeUint8, statusSuccess), param("attrData", TypeUseDataType, statusSuccess),
	}},
	{ID: FoundationWriteAttributes, Name: "write", Params: attributeRecordParams},
	{ID: FoundationWriteAttributesUndivided, Name: "writeUndiv", Params: attributeRecordParams},
	{ID: FoundationWriteAttributesResp, Name: "writeRsp", Params: []ParamDef{
		param("status", TypeUint8), param("attrId", TypeUint16, statusFailed),
	}},
	{ID: FoundationWriteAttributesNoResp, Name: "writeNoRsp", Params: attributeRecordParams},
	{ID: FoundationConfigReporting, Name: "configReport", Params: []ParamDef{
		param("direction", TypeUint8), param("attrId", TypeUint16),
		param("dataType", TypeUint8), param("minRepIntval", TypeUint16), param("maxRepIntval", TypeUint16),
		param("repChange", TypeUseDataType), param("timeout", TypeUint16),
	}},
	{ID: FoundationConfigReportingResp, Name: "configReportRsp", Params: []ParamDef{
		param("status", TypeUint8), param("direction", TypeUint8, statusFailed), param("attrId", TypeUint16, statusFailed),
	}},
	{ID: FoundationReadReportingConfig, Name: "readReportConfig", Params: []ParamDef{
		param("direction", TypeUint8), param("attrId", TypeUint16),
	}},
	{ID: FoundationReadReportingConfigResp, Name: "readReportConfigRsp", Params: []ParamDef{
		param("status", TypeUint8), param("direction", TypeUint8), param("attrId", TypeUint16),
		param("dataType", TypeUint8, statusSuccess), param("minRepIntval", TypeUint16, statusSuccess),
		param("maxRepIntval", TypeUint16, statusSuccess), param("repChange", TypeUseDataType, statusSuccess),
		param("timeout", TypeUint16, statusSuccess),
	}},
	{ID: FoundationReportAttributes, Name: "report", Params: attributeRecordParams},
	{ID: FoundationDefaultResponse, Name: "defaultRsp", Params: []ParamDef{
		param("cmdId", TypeUint8), param("statusCode", TypeUint8),
	}},
	{ID: FoundationDiscoverAttributes, Name: "discover", Params: []ParamDef{
		param("startAttrId", TypeUint16), param("maxAttrIds", TypeUint8),
	}},
	{ID: FoundationDiscoverAttributesResp, Name: "discoverRsp", Params: []ParamDef{
		param("discComplete", TypeUint8), param("attrId", TypeUint16), param("dataType", TypeUint8),
	}},
	{ID: FoundationReadStructured, Name: "readStructured", Params: []ParamDef{
		param("attrId", TypeUint16), param("selector", TypeStructuredSelector),
	}},
	{ID: FoundationWriteStructured, Name: "writeStructured", Params: []ParamDef{
		param("attrId", TypeUint16), param("selector", TypeStructuredSelector),
		param("dataType", TypeUint8), param("elementData", TypeUseDataType),
	}},
	{ID: FoundationWriteStructuredResp, Name: "writeStructuredRsp", Params: []ParamDef{
		param("status", TypeUint8), param("attrId", TypeUint16, statusFailed),
		param("selector", TypeStructuredSelector, statusFailed),
	}},
	{ID: FoundationDiscoverCommandsReceived, Name: "discoverCommands", Params: discoverCommandsParams},
	{ID: FoundationDiscoverCommandsReceivedResp, Name: "discoverCommandsRsp", Params: discoverCommandsRspParams},
	{ID: FoundationDiscoverCommandsGenerated, Name: "discoverCommandsGen", Params: discoverCommandsParams},
	{ID: FoundationDiscoverCommandsGeneratedResp, Name: "discoverCommandsGenRsp", Params: discoverCommandsRspParams},
	{ID: FoundationDiscoverAttributesExtended, Name: "discoverExt", Params: []ParamDef{
		param("startAttrId", TypeUint16), param("maxAttrIds", TypeUint8),
	}},
	{ID: FoundationDiscoverAttributesExtendedResp, Name: "discoverExtRsp", Params: []ParamDef{
		param("discComplete", TypeUint8), param("attrId", TypeUint16), param("dataType", TypeUint8), param("access", TypeUint8),
	}},
}

var (
	attributeRecordParams = []ParamDef{
		param("attrId", TypeUint16), param("dataType", TypeUint8), param("attrData", TypeUseDataType),
	}
	discoverCommandsParams = []ParamDef{
		param("startCmdId", TypeUint8), param("maxCmdIds", TypeUint8),
	}
	discoverCommandsRspParams = []ParamDef{
		param("discComplete", TypeUint8), param("commandIds", TypeListUint8),
	}
)

// GlobalCommand resolves a foundation command by ID or name.
func GlobalCommand(key Key) (*CommandDef, error) {
	for i := range globalCommands {
		cmd := &globalCommands[i]
		if key.matches(uint16(cmd.ID), cmd.Name) {
			return cmd, nil
		}
	}
	return nil, &LookupError{Err: ErrUnknownGlobalCommand, Key: key}
}

// GlobalCommands returns the foundation command table. The slice is shared.
func GlobalCommands() []CommandDef {
	return globalCommands
}
