package clusters

import "zigbee-zcl/internal/zcl"

var Metering = zcl.ClusterDef{
	ID:   0x0702,
	Name: "seMetering",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "currentSummDelivered", Type: zcl.TypeUint48, Access: rp},
		{ID: 0x0001, Name: "currentSummReceived", Type: zcl.TypeUint48, Access: rp},
		{ID: 0x0002, Name: "currentMaxDemandDelivered", Type: zcl.TypeUint48, Access: ro},
		{ID: 0x0003, Name: "currentMaxDemandReceived", Type: zcl.TypeUint48, Access: ro},
		{ID: 0x0004, Name: "dftSumm", Type: zcl.TypeUint48, Access: ro},
		{ID: 0x0005, Name: "dailyFreezeTime", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0006, Name: "powerFactor", Type: zcl.TypeInt8, Access: ro},
		{ID: 0x0007, Name: "readingSnapShotTime", Type: zcl.TypeUTC, Access: ro},
		{ID: 0x0100, Name: "currentTier1SummDelivered", Type: zcl.TypeUint48, Access: ro},
		{ID: 0x0101, Name: "currentTier1SummReceived", Type: zcl.TypeUint48, Access: ro},
		{ID: 0x0102, Name: "currentTier2SummDelivered", Type: zcl.TypeUint48, Access: ro},
		{ID: 0x0103, Name: "currentTier2SummReceived", Type: zcl.TypeUint48, Access: ro},
		{ID: 0x0200, Name: "status", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0300, Name: "unitOfMeasure", Type: zcl.TypeEnum8, Access: ro},
		{ID: 0x0301, Name: "multiplier", Type: zcl.TypeUint24, Access: ro},
		{ID: 0x0302, Name: "divisor", Type: zcl.TypeUint24, Access: ro},
		{ID: 0x0303, Name: "summaFormatting", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0304, Name: "demandFormatting", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0306, Name: "meteringDeviceType", Type: zcl.TypeBitmap8, Access: ro},
		{ID: 0x0400, Name: "instantaneousDemand", Type: zcl.TypeInt24, Access: rp},
		{ID: 0x0401, Name: "currentdayConsumpDelivered", Type: zcl.TypeUint24, Access: ro},
		{ID: 0x0403, Name: "previousdayConsumpDelivered", Type: zcl.TypeUint24, Access: ro},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "getProfile", param("intervalChannel", zcl.TypeEnum8),
			param("endTime", zcl.TypeUTC), param("numberOfPeriods", zcl.TypeUint8)),
		toClient(0x00, "getProfileRsp", param("endTime", zcl.TypeUTC), param("status", zcl.TypeEnum8),
			param("profileIntervalPeriod", zcl.TypeEnum8), param("numberOfPeriodsDelivered", zcl.TypeUint8),
			param("intervals", zcl.TypeListUint24)),
	},
}

var ApplianceIdentification = zcl.ClusterDef{
	ID:   0x0B00,
	Name: "haApplianceIdentification",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "basicIdentification", Type: zcl.TypeUint56, Access: ro},
		{ID: 0x0010, Name: "companyName", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0011, Name: "companyId", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0012, Name: "brandName", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0013, Name: "brandId", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0014, Name: "model", Type: zcl.TypeOctetStr, Access: ro},
		{ID: 0x0015, Name: "partNumber", Type: zcl.TypeOctetStr, Access: ro},
		{ID: 0x0016, Name: "productRevision", Type: zcl.TypeOctetStr, Access: ro},
		{ID: 0x0017, Name: "softwareRevision", Type: zcl.TypeOctetStr, Access: ro},
		{ID: 0x0018, Name: "productTypeName", Type: zcl.TypeOctetStr, Access: ro},
		{ID: 0x0019, Name: "productTypeId", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x001A, Name: "cecedSpecificationVersion", Type: zcl.TypeUint8, Access: ro},
	},
}

var MeterIdentification = zcl.ClusterDef{
	ID:   0x0B01,
	Name: "haMeterIdentification",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "companyName", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0001, Name: "meterTypeId", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0004, Name: "dataQualityId", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0005, Name: "customerName", Type: zcl.TypeCharStr, Access: rw},
		{ID: 0x0006, Name: "model", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0007, Name: "partNumber", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x0008, Name: "productRevision", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x000A, Name: "softwareRevision", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x000B, Name: "utilityName", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x000C, Name: "pod", Type: zcl.TypeCharStr, Access: ro},
		{ID: 0x000D, Name: "availablePower", Type: zcl.TypeInt24, Access: ro},
		{ID: 0x000E, Name: "powerThreshold", Type: zcl.TypeInt24, Access: ro},
	},
}

var ApplianceEventsAndAlerts = zcl.ClusterDef{
	ID:   0x0B02,
	Name: "haApplianceEventsAlerts",
	Commands: []zcl.CommandDef{
		toServer(0x00, "getAlerts"),
		toClient(0x00, "getAlertsRsp", param("alertscount", zcl.TypeUint8), param("aalert", zcl.TypeListUint24)),
		toClient(0x01, "alertsNotification", param("alertscount", zcl.TypeUint8), param("aalert", zcl.TypeListUint24)),
		toClient(0x02, "eventNotification", param("eventheader", zcl.TypeUint8), param("eventid", zcl.TypeUint8)),
	},
}

var ApplianceStatistics = zcl.ClusterDef{
	ID:   0x0B03,
	Name: "haApplianceStatistics",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "logMaxSize", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0001, Name: "logQueueMaxSize", Type: zcl.TypeUint8, Access: ro},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "log", param("logid", zcl.TypeUint32)),
		toServer(0x01, "logQueue"),
		toClient(0x00, "logNotification", param("timestamp", zcl.TypeUint32), param("logid", zcl.TypeUint32),
			param("loglength", zcl.TypeUint32), param("logpayload", zcl.TypeListUint8)),
		toClient(0x01, "logRsp", param("timestamp", zcl.TypeUint32), param("logid", zcl.TypeUint32),
			param("loglength", zcl.TypeUint32), param("logpayload", zcl.TypeListUint8)),
		toClient(0x02, "logQueueRsp", param("logqueuesize", zcl.TypeUint8), param("logid", zcl.TypeListUint32)),
		toClient(0x03, "statisticsAvailable", param("logqueuesize", zcl.TypeUint8), param("logid", zcl.TypeListUint32)),
	},
}

// ElectricalMeasurement reports raw values; the multiplier and divisor
// attributes scale them to physical units.
var ElectricalMeasurement = zcl.ClusterDef{
	ID:   0x0B04,
	Name: "haElectricalMeasurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measurementType", Type: zcl.TypeBitmap32, Access: ro},
		{ID: 0x0100, Name: "dcVoltage", Type: zcl.TypeInt16, Access: rp},
		{ID: 0x0103, Name: "dcCurrent", Type: zcl.TypeInt16, Access: rp},
		{ID: 0x0106, Name: "dcPower", Type: zcl.TypeInt16, Access: rp},
		{ID: 0x0200, Name: "dcVoltageMultiplier", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0201, Name: "dcVoltageDivisor", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0202, Name: "dcCurrentMultiplier", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0203, Name: "dcCurrentDivisor", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0204, Name: "dcPowerMultiplier", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0205, Name: "dcPowerDivisor", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0300, Name: "acFrequency", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0304, Name: "totalActivePower", Type: zcl.TypeInt32, Access: rp},
		{ID: 0x0305, Name: "totalReactivePower", Type: zcl.TypeInt32, Access: rp},
		{ID: 0x0306, Name: "totalApparentPower", Type: zcl.TypeUint32, Access: rp},
		{ID: 0x0400, Name: "acFrequencyMultiplier", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0401, Name: "acFrequencyDivisor", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0505, Name: "rmsVoltage", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0508, Name: "rmsCurrent", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x050B, Name: "activePower", Type: zcl.TypeInt16, Access: rp},
		{ID: 0x050E, Name: "reactivePower", Type: zcl.TypeInt16, Access: rp},
		{ID: 0x050F, Name: "apparentPower", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0510, Name: "powerFactor", Type: zcl.TypeInt8, Access: rp},
		{ID: 0x0600, Name: "acVoltageMultiplier", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0601, Name: "acVoltageDivisor", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0602, Name: "acCurrentMultiplier", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0603, Name: "acCurrentDivisor", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0604, Name: "acPowerMultiplier", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0605, Name: "acPowerDivisor", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0905, Name: "rmsVoltagePhB", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0908, Name: "rmsCurrentPhB", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x090B, Name: "activePowerPhB", Type: zcl.TypeInt16, Access: rp},
		{ID: 0x0A05, Name: "rmsVoltagePhC", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0A08, Name: "rmsCurrentPhC", Type: zcl.TypeUint16, Access: rp},
		{ID: 0x0A0B, Name: "activePowerPhC", Type: zcl.TypeInt16, Access: rp},
	},
	Commands: []zcl.CommandDef{
		toServer(0x00, "getProfileInfo"),
		toServer(0x01, "getMeasurementProfile", param("attrId", zcl.TypeUint16),
			param("starttime", zcl.TypeUint32), param("numofintervals", zcl.TypeUint8)),
		toClient(0x00, "getProfileInfoRsp", param("profilecount", zcl.TypeUint8),
			param("profileintervalperiod", zcl.TypeUint8), param("maxnumofintervals", zcl.TypeUint8),
			param("numofattrs", zcl.TypeUint8), param("listofattr", zcl.TypeListUint16)),
		toClient(0x01, "getMeasurementProfileRsp", param("starttime", zcl.TypeUint32),
			param("status", zcl.TypeUint8), param("profileintervalperiod", zcl.TypeUint8),
			param("numofintervalsdeliv", zcl.TypeUint8), param("attrId", zcl.TypeUint16),
			param("intervals", zcl.TypeBuffer)),
	},
}

var Diagnostics = zcl.ClusterDef{
	ID:   0x0B05,
	Name: "haDiagnostic",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "numberOfResets", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0001, Name: "persistentMemoryWrites", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0100, Name: "macRxBcast", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0101, Name: "macTxBcast", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0102, Name: "macRxUcast", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0103, Name: "macTxUcast", Type: zcl.TypeUint32, Access: ro},
		{ID: 0x0104, Name: "macTxUcastRetry", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0105, Name: "macTxUcastFail", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0106, Name: "apsRxBcast", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0107, Name: "apsTxBcast", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0108, Name: "apsRxUcast", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0109, Name: "apsTxUcastSuccess", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x010A, Name: "apsTxUcastRetry", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x010B, Name: "apsTxUcastFail", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x010C, Name: "routeDiscInitiated", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x010D, Name: "neighborAdded", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x010E, Name: "neighborRemoved", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x010F, Name: "neighborStale", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0110, Name: "joinIndication", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0111, Name: "childMoved", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0112, Name: "nwkFcFailure", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0113, Name: "apsFcFailure", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0114, Name: "apsUnauthorizedKey", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0115, Name: "nwkDecryptFailures", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0116, Name: "apsDecryptFailures", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0117, Name: "packetBufferAllocateFailures", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0118, Name: "relayedUcast", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x0119, Name: "phyToMacQueueLimitReached", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x011A, Name: "packetValidateDropCount", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x011B, Name: "averageMacRetryPerApsMessageSent", Type: zcl.TypeUint16, Access: ro},
		{ID: 0x011C, Name: "lastMessageLqi", Type: zcl.TypeUint8, Access: ro},
		{ID: 0x011D, Name: "lastMessageRssi", Type: zcl.TypeInt8, Access: ro},
	},
}

// Touchlink commissioning runs on its own profile but shares the frame
// format. Only the scan exchange is decoded; the rest is left as raw data.
var Touchlink = zcl.ClusterDef{
	ID:   0x1000,
	Name: "touchlink",
	Commands: []zcl.CommandDef{
		toServer(0x00, "scanRequest", param("transactionID", zcl.TypeUint32),
			param("zigbeeInformation", zcl.TypeBitmap8), param("touchlinkInformation", zcl.TypeBitmap8)),
		toServer(0x06, "identifyRequest", param("transactionID", zcl.TypeUint32), param("duration", zcl.TypeUint16)),
		toServer(0x07, "resetToFactoryNew", param("transactionID", zcl.TypeUint32)),
		toClient(0x01, "scanResponse", param("transactionID", zcl.TypeUint32),
			param("rssiCorrection", zcl.TypeUint8), param("zigbeeInformation", zcl.TypeBitmap8),
			param("touchlinkInformation", zcl.TypeBitmap8), param("keyBitmask", zcl.TypeBitmap16),
			param("responseID", zcl.TypeUint32), param("extendedPanID", zcl.TypeEUI64),
			param("networkUpdateID", zcl.TypeUint8), param("logicalChannel", zcl.TypeUint8),
			param("panID", zcl.TypeUint16), param("networkAddress", zcl.TypeUint16),
			param("numberOfSubDevices", zcl.TypeUint8), param("totalGroupIdentifiers", zcl.TypeUint8),
			param("rest", zcl.TypeBuffer, minRemaining(1))),
	},
}
