package zcl

import (
	"encoding/json"
	"fmt"
)

// Payload is the decoded body of a frame: Fields for cluster-specific
// commands, or one of the foundation payload types in this file.
type Payload interface {
	isPayload()
}

type globalPayload interface {
	Payload
	encode(b *Buffer) error
}

type globalCodec struct {
	decode   func(b *Buffer) (globalPayload, error)
	fromJSON func(data []byte) (globalPayload, error)
	accepts  func(p Payload) bool
	zero     globalPayload
}

func codecFor[T globalPayload](decode func(b *Buffer) (T, error)) globalCodec {
	return globalCodec{
		decode: func(b *Buffer) (globalPayload, error) {
			v, err := decode(b)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		fromJSON: func(data []byte) (globalPayload, error) {
			var v T
			if err := json.Unmarshal(data, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
		accepts: func(p Payload) bool {
			_, ok := p.(T)
			return ok
		},
		zero: *new(T),
	}
}

var globalCodecs = map[uint8]globalCodec{
	FoundationReadAttributes:                 codecFor(decodeReadAttributes),
	FoundationReadAttributesResponse:         codecFor(decodeReadAttributesResponse),
	FoundationWriteAttributes:                codecFor(decodeAttributeRecords),
	FoundationWriteAttributesUndivided:       codecFor(decodeAttributeRecords),
	FoundationWriteAttributesResp:            codecFor(decodeWriteAttributesResponse),
	FoundationWriteAttributesNoResp:          codecFor(decodeAttributeRecords),
	FoundationConfigReporting:                codecFor(decodeConfigureReporting),
	FoundationConfigReportingResp:            codecFor(decodeConfigureReportingResponse),
	FoundationReadReportingConfig:            codecFor(decodeReadReportingConfig),
	FoundationReadReportingConfigResp:        codecFor(decodeReadReportingConfigResponse),
	FoundationReportAttributes:               codecFor(decodeAttributeRecords),
	FoundationDefaultResponse:                codecFor(decodeDefaultResponse),
	FoundationDiscoverAttributes:             codecFor(decodeDiscoverAttributes),
	FoundationDiscoverAttributesResp:         codecFor(decodeDiscoverAttributesResponse),
	FoundationReadStructured:                 codecFor(decodeReadStructured),
	FoundationWriteStructured:                codecFor(decodeWriteStructured),
	FoundationWriteStructuredResp:            codecFor(decodeWriteStructuredResponse),
	FoundationDiscoverCommandsReceived:       codecFor(decodeDiscoverCommands),
	FoundationDiscoverCommandsReceivedResp:   codecFor(decodeDiscoverCommandsResponse),
	FoundationDiscoverCommandsGenerated:      codecFor(decodeDiscoverCommands),
	FoundationDiscoverCommandsGeneratedResp:  codecFor(decodeDiscoverCommandsResponse),
	FoundationDiscoverAttributesExtended:     codecFor(decodeDiscoverAttributes),
	FoundationDiscoverAttributesExtendedResp: codecFor(decodeDiscoverAttributesExtendedResponse),
}

// GlobalPayloadFromJSON decodes the JSON form of a foundation command payload.
func GlobalPayloadFromJSON(commandID uint8, data []byte) (Payload, error) {
	codec, ok := globalCodecs[commandID]
	if !ok {
		return nil, &LookupError{Err: ErrUnknownGlobalCommand, Key: ByID(uint16(commandID))}
	}
	p, err := codec.fromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("zcl: global command %d payload: %w", commandID, err)
	}
	return p, nil
}

// records decodes repeated records until the buffer is exhausted.
func records[T any](b *Buffer, decode func(b *Buffer) (T, error)) ([]T, error) {
	var out []T
	for b.Remaining() > 0 {
		rec, err := decode(b)
		if err != nil {
			return nil, fmt.Errorf("zcl: record %d: %w", len(out), err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// readAttributeValue reads a data type tag followed by a value of that type.
func readAttributeValue(b *Buffer, attrID uint16) (DataType, any, error) {
	t, err := b.ReadUint8()
	if err != nil {
		return 0, nil, err
	}
	v, err := b.Read(DataType(t), Options{AttrID: attrID})
	if err != nil {
		return 0, nil, err
	}
	return DataType(t), v, nil
}

func writeAttributeValue(b *Buffer, attrID uint16, t DataType, v any) error {
	if !t.IsWire() {
		return fmt.Errorf("%w: attribute 0x%04X has type %s", ErrUnknownDataType, attrID, t)
	}
	b.WriteUint8(uint8(t))
	if err := b.Write(t, v, Options{AttrID: attrID}); err != nil {
		return fmt.Errorf("zcl: attribute 0x%04X: %w", attrID, err)
	}
	return nil
}

// AttributeRef names one attribute in a read request.
type AttributeRef struct {
	AttrID uint16 `json:"attrId"`
}

// ReadAttributes is the payload of read (0x00).
type ReadAttributes []AttributeRef

func (ReadAttributes) isPayload() {}

func decodeReadAttributes(b *Buffer) (ReadAttributes, error) {
	return records(b, func(b *Buffer) (AttributeRef, error) {
		id, err := b.ReadUint16()
		return AttributeRef{AttrID: id}, err
	})
}

func (p ReadAttributes) encode(b *Buffer) error {
	for _, r := range p {
		b.WriteUint16(r.AttrID)
	}
	return nil
}

// ReadResponseRecord is a ReadSuccess or a ReadFailure.
type ReadResponseRecord interface {
	readResponseRecord()
	Attribute() uint16
}

type ReadSuccess struct {
	AttrID   uint16   `json:"attrId"`
	DataType DataType `json:"dataType"`
	Value    any      `json:"attrData"`
}

// ReadFailure carries the status of an attribute that could not be read.
type ReadFailure struct {
	AttrID uint16 `json:"attrId"`
	Status uint8  `json:"status"`
}

func (ReadSuccess) readResponseRecord() {}
func (ReadFailure) readResponseRecord() {}

func (r ReadSuccess) Attribute() uint16 { return r.AttrID }
func (r ReadFailure) Attribute() uint16 { return r.AttrID }

func (r ReadSuccess) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AttrID   uint16   `json:"attrId"`
		Status   uint8    `json:"status"`
		DataType DataType `json:"dataType"`
		Value    any      `json:"attrData"`
	}{r.AttrID, ZCLStatusSuccess, r.DataType, r.Value})
}

// ReadAttributesResponse is the payload of readRsp (0x01).
type ReadAttributesResponse []ReadResponseRecord

func (ReadAttributesResponse) isPayload() {}

func decodeReadAttributesResponse(b *Buffer) (ReadAttributesResponse, error) {
	return records(b, func(b *Buffer) (ReadResponseRecord, error) {
		id, err := b.ReadUint16()
		if err != nil {
			return nil, err
		}
		status, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		if status != ZCLStatusSuccess {
			return ReadFailure{AttrID: id, Status: status}, nil
		}
		t, v, err := readAttributeValue(b, id)
		if err != nil {
			return nil, err
		}
		return ReadSuccess{AttrID: id, DataType: t, Value: v}, nil
	})
}

func (p ReadAttributesResponse) encode(b *Buffer) error {
	for _, rec := range p {
		switch r := rec.(type) {
		case ReadSuccess:
			b.WriteUint16(r.AttrID)
			b.WriteUint8(ZCLStatusSuccess)
			if err := writeAttributeValue(b, r.AttrID, r.DataType, r.Value); err != nil {
				return err
			}
		case ReadFailure:
			if r.Status == ZCLStatusSuccess {
				return fmt.Errorf("zcl: read failure for attribute 0x%04X has success status", r.AttrID)
			}
			b.WriteUint16(r.AttrID)
			b.WriteUint8(r.Status)
		default:
			return fmt.Errorf("zcl: unexpected read response record %T", rec)
		}
	}
	return nil
}

func (p *ReadAttributesResponse) UnmarshalJSON(data []byte) error {
	var raw []struct {
		AttrID   uint16   `json:"attrId"`
		Status   uint8    `json:"status"`
		DataType DataType `json:"dataType"`
		Value    any      `json:"attrData"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ReadAttributesResponse, 0, len(raw))
	for _, r := range raw {
		if r.Status != ZCLStatusSuccess {
			out = append(out, ReadFailure{AttrID: r.AttrID, Status: r.Status})
			continue
		}
		out = append(out, ReadSuccess{AttrID: r.AttrID, DataType: r.DataType, Value: r.Value})
	}
	*p = out
	return nil
}

// AttributeRecord is an attribute value as carried by write and report.
type AttributeRecord struct {
	AttrID   uint16   `json:"attrId"`
	DataType DataType `json:"dataType"`
	Value    any      `json:"attrData"`
}

// AttributeRecords is the payload of write (0x02), writeUndiv (0x03),
// writeNoRsp (0x05) and report (0x0A).
type AttributeRecords []AttributeRecord

func (AttributeRecords) isPayload() {}

func decodeAttributeRecords(b *Buffer) (AttributeRecords, error) {
	return records(b, func(b *Buffer) (AttributeRecord, error) {
		id, err := b.ReadUint16()
		if err != nil {
			return AttributeRecord{}, err
		}
		t, v, err := readAttributeValue(b, id)
		if err != nil {
			return AttributeRecord{}, err
		}
		return AttributeRecord{AttrID: id, DataType: t, Value: v}, nil
	})
}

func (p AttributeRecords) encode(b *Buffer) error {
	for _, r := range p {
		b.WriteUint16(r.AttrID)
		if err := writeAttributeValue(b, r.AttrID, r.DataType, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatus is a WriteSuccess or a WriteFailure. A device that wrote every
// attribute answers with a single WriteSuccess.
type WriteStatus interface {
	writeStatus()
}

type WriteSuccess struct{}

type WriteFailure struct {
	Status uint8  `json:"status"`
	AttrID uint16 `json:"attrId"`
}

func (WriteSuccess) writeStatus() {}
func (WriteFailure) writeStatus() {}

func (WriteSuccess) MarshalJSON() ([]byte, error) {
	return []byte(`{"status":0}`), nil
}

// WriteAttributesResponse is the payload of writeRsp (0x04).
type WriteAttributesResponse []WriteStatus

func (WriteAttributesResponse) isPayload() {}

func decodeWriteAttributesResponse(b *Buffer) (WriteAttributesResponse, error) {
	return records(b, func(b *Buffer) (WriteStatus, error) {
		status, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		if status == ZCLStatusSuccess {
			return WriteSuccess{}, nil
		}
		id, err := b.ReadUint16()
		if err != nil {
			return nil, err
		}
		return WriteFailure{Status: status, AttrID: id}, nil
	})
}

func (p WriteAttributesResponse) encode(b *Buffer) error {
	for _, rec := range p {
		switch r := rec.(type) {
		case WriteSuccess:
			b.WriteUint8(ZCLStatusSuccess)
		case WriteFailure:
			if r.Status == ZCLStatusSuccess {
				return fmt.Errorf("zcl: write failure for attribute 0x%04X has success status", r.AttrID)
			}
			b.WriteUint8(r.Status)
			b.WriteUint16(r.AttrID)
		default:
			return fmt.Errorf("zcl: unexpected write response record %T", rec)
		}
	}
	return nil
}

func (p *WriteAttributesResponse) UnmarshalJSON(data []byte) error {
	var raw []WriteFailure
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(WriteAttributesResponse, 0, len(raw))
	for _, r := range raw {
		if r.Status == ZCLStatusSuccess {
			out = append(out, WriteSuccess{})
		} else {
			out = append(out, r)
		}
	}
	*p = out
	return nil
}

// ReportingConfig is one configure reporting record: ReportSent when the
// server is told how to send reports, ReportReceived when it is told how
// often to expect them.
type ReportingConfig interface {
	reportingConfig()
	Attribute() uint16
}

// ReportSent configures reports the server sends. Change is only present for
// analog data types.
type ReportSent struct {
	AttrID      uint16   `json:"attrId"`
	DataType    DataType `json:"dataType"`
	MinInterval uint16   `json:"minRepIntval"`
	MaxInterval uint16   `json:"maxRepIntval"`
	Change      any      `json:"repChange,omitempty"`
}

// ReportReceived configures the timeout for reports the server receives.
type ReportReceived struct {
	AttrID  uint16 `json:"attrId"`
	Timeout uint16 `json:"timeout"`
}

func (ReportSent) reportingConfig()     {}
func (ReportReceived) reportingConfig() {}

func (r ReportSent) Attribute() uint16     { return r.AttrID }
func (r ReportReceived) Attribute() uint16 { return r.AttrID }

func (r ReportSent) MarshalJSON() ([]byte, error) {
	type plain ReportSent
	return json.Marshal(struct {
		Direction uint8 `json:"direction"`
		plain
	}{ReportDirectionSend, plain(r)})
}

func (r ReportReceived) MarshalJSON() ([]byte, error) {
	type plain ReportReceived
	return json.Marshal(struct {
		Direction uint8 `json:"direction"`
		plain
	}{ReportDirectionReceive, plain(r)})
}

// decodeReportingBody reads what follows direction and attribute ID.
func decodeReportingBody(b *Buffer, direction uint8, attrID uint16) (ReportingConfig, error) {
	switch direction {
	case ReportDirectionSend:
		t, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		r := ReportSent{AttrID: attrID, DataType: DataType(t)}
		if r.MinInterval, err = b.ReadUint16(); err != nil {
			return nil, err
		}
		if r.MaxInterval, err = b.ReadUint16(); err != nil {
			return nil, err
		}
		class, err := Classify(r.DataType)
		if err != nil {
			return nil, err
		}
		if class == ClassAnalog {
			if r.Change, err = b.Read(r.DataType, Options{}); err != nil {
				return nil, err
			}
		}
		return r, nil
	case ReportDirectionReceive:
		timeout, err := b.ReadUint16()
		if err != nil {
			return nil, err
		}
		return ReportReceived{AttrID: attrID, Timeout: timeout}, nil
	}
	return nil, fmt.Errorf("zcl: reporting direction %d not valid", direction)
}

func encodeReportingBody(b *Buffer, rec ReportingConfig) error {
	switch r := rec.(type) {
	case ReportSent:
		class, err := Classify(r.DataType)
		if err != nil {
			return err
		}
		b.WriteUint8(uint8(r.DataType))
		b.WriteUint16(r.MinInterval)
		b.WriteUint16(r.MaxInterval)
		if class == ClassAnalog {
			if r.Change == nil {
				return fmt.Errorf("zcl: attribute 0x%04X: analog type %s needs a reportable change", r.AttrID, r.DataType)
			}
			if err := b.Write(r.DataType, r.Change, Options{}); err != nil {
				return fmt.Errorf("zcl: attribute 0x%04X: %w", r.AttrID, err)
			}
		} else if r.Change != nil {
			return fmt.Errorf("zcl: attribute 0x%04X: discrete type %s takes no reportable change", r.AttrID, r.DataType)
		}
	case ReportReceived:
		b.WriteUint16(r.Timeout)
	default:
		return fmt.Errorf("zcl: unexpected reporting record %T", rec)
	}
	return nil
}

func reportingDirection(rec ReportingConfig) uint8 {
	if _, ok := rec.(ReportReceived); ok {
		return ReportDirectionReceive
	}
	return ReportDirectionSend
}

type reportingJSON struct {
	Status      *uint8   `json:"status"`
	Direction   uint8    `json:"direction"`
	AttrID      uint16   `json:"attrId"`
	DataType    DataType `json:"dataType"`
	MinInterval uint16   `json:"minRepIntval"`
	MaxInterval uint16   `json:"maxRepIntval"`
	Change      any      `json:"repChange"`
	Timeout     uint16   `json:"timeout"`
}

func (r reportingJSON) config() (ReportingConfig, error) {
	switch r.Direction {
	case ReportDirectionSend:
		return ReportSent{AttrID: r.AttrID, DataType: r.DataType, MinInterval: r.MinInterval,
			MaxInterval: r.MaxInterval, Change: r.Change}, nil
	case ReportDirectionReceive:
		return ReportReceived{AttrID: r.AttrID, Timeout: r.Timeout}, nil
	}
	return nil, fmt.Errorf("zcl: reporting direction %d not valid", r.Direction)
}

// ConfigureReporting is the payload of configReport (0x06).
type ConfigureReporting []ReportingConfig

func (ConfigureReporting) isPayload() {}

func decodeConfigureReporting(b *Buffer) (ConfigureReporting, error) {
	return records(b, func(b *Buffer) (ReportingConfig, error) {
		direction, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		id, err := b.ReadUint16()
		if err != nil {
			return nil, err
		}
		return decodeReportingBody(b, direction, id)
	})
}

func (p ConfigureReporting) encode(b *Buffer) error {
	for _, rec := range p {
		if rec == nil {
			return fmt.Errorf("zcl: nil reporting record")
		}
		b.WriteUint8(reportingDirection(rec))
		b.WriteUint16(rec.Attribute())
		if err := encodeReportingBody(b, rec); err != nil {
			return err
		}
	}
	return nil
}

func (p *ConfigureReporting) UnmarshalJSON(data []byte) error {
	var raw []reportingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ConfigureReporting, 0, len(raw))
	for _, r := range raw {
		rec, err := r.config()
		if err != nil {
			return err
		}
		out = append(out, rec)
	}
	*p = out
	return nil
}

// ReportingStatus is a configure reporting response record.
type ReportingStatus interface {
	reportingStatus()
}

// ReportingSuccess is the single record sent when every attribute was
// configured.
type ReportingSuccess struct{}

type ReportingFailure struct {
	Status    uint8  `json:"status"`
	Direction uint8  `json:"direction"`
	AttrID    uint16 `json:"attrId"`
}

func (ReportingSuccess) reportingStatus() {}
func (ReportingFailure) reportingStatus() {}

func (ReportingSuccess) MarshalJSON() ([]byte, error) {
	return []byte(`{"status":0}`), nil
}

// ConfigureReportingResponse is the payload of configReportRsp (0x07).
type ConfigureReportingResponse []ReportingStatus

func (ConfigureReportingResponse) isPayload() {}

func decodeConfigureReportingResponse(b *Buffer) (ConfigureReportingResponse, error) {
	return records(b, func(b *Buffer) (ReportingStatus, error) {
		status, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		if status == ZCLStatusSuccess {
			return ReportingSuccess{}, nil
		}
		f := ReportingFailure{Status: status}
		if f.Direction, err = b.ReadUint8(); err != nil {
			return nil, err
		}
		if f.AttrID, err = b.ReadUint16(); err != nil {
			return nil, err
		}
		return f, nil
	})
}

func (p ConfigureReportingResponse) encode(b *Buffer) error {
	for _, rec := range p {
		switch r := rec.(type) {
		case ReportingSuccess:
			b.WriteUint8(ZCLStatusSuccess)
		case ReportingFailure:
			if r.Status == ZCLStatusSuccess {
				return fmt.Errorf("zcl: reporting failure for attribute 0x%04X has success status", r.AttrID)
			}
			b.WriteUint8(r.Status)
			b.WriteUint8(r.Direction)
			b.WriteUint16(r.AttrID)
		default:
			return fmt.Errorf("zcl: unexpected reporting status %T", rec)
		}
	}
	return nil
}

func (p *ConfigureReportingResponse) UnmarshalJSON(data []byte) error {
	var raw []ReportingFailure
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ConfigureReportingResponse, 0, len(raw))
	for _, r := range raw {
		if r.Status == ZCLStatusSuccess {
			out = append(out, ReportingSuccess{})
		} else {
			out = append(out, r)
		}
	}
	*p = out
	return nil
}

type ReportingConfigRef struct {
	Direction uint8  `json:"direction"`
	AttrID    uint16 `json:"attrId"`
}

// ReadReportingConfig is the payload of readReportConfig (0x08).
type ReadReportingConfig []ReportingConfigRef

func (ReadReportingConfig) isPayload() {}

func decodeReadReportingConfig(b *Buffer) (ReadReportingConfig, error) {
	return records(b, func(b *Buffer) (ReportingConfigRef, error) {
		var r ReportingConfigRef
		var err error
		if r.Direction, err = b.ReadUint8(); err != nil {
			return r, err
		}
		r.AttrID, err = b.ReadUint16()
		return r, err
	})
}

func (p ReadReportingConfig) encode(b *Buffer) error {
	for _, r := range p {
		b.WriteUint8(r.Direction)
		b.WriteUint16(r.AttrID)
	}
	return nil
}

// ReportingConfigResult is a read reporting configuration response record:
// a ReportSent or ReportReceived on success, a ReportingFailure otherwise.
type ReportingConfigResult interface {
	reportingConfigResult()
}

func (ReportSent) reportingConfigResult()       {}
func (ReportReceived) reportingConfigResult()   {}
func (ReportingFailure) reportingConfigResult() {}

// ReadReportingConfigResponse is the payload of readReportConfigRsp (0x09).
type ReadReportingConfigResponse []ReportingConfigResult

func (ReadReportingConfigResponse) isPayload() {}

func decodeReadReportingConfigResponse(b *Buffer) (ReadReportingConfigResponse, error) {
	return records(b, func(b *Buffer) (ReportingConfigResult, error) {
		status, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		direction, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		id, err := b.ReadUint16()
		if err != nil {
			return nil, err
		}
		if status != ZCLStatusSuccess {
			return ReportingFailure{Status: status, Direction: direction, AttrID: id}, nil
		}
		rec, err := decodeReportingBody(b, direction, id)
		if err != nil {
			return nil, err
		}
		return rec.(ReportingConfigResult), nil
	})
}

func (p ReadReportingConfigResponse) encode(b *Buffer) error {
	for _, rec := range p {
		switch r := rec.(type) {
		case ReportingFailure:
			if r.Status == ZCLStatusSuccess {
				return fmt.Errorf("zcl: reporting failure for attribute 0x%04X has success status", r.AttrID)
			}
			b.WriteUint8(r.Status)
			b.WriteUint8(r.Direction)
			b.WriteUint16(r.AttrID)
		case ReportingConfig:
			b.WriteUint8(ZCLStatusSuccess)
			b.WriteUint8(reportingDirection(r))
			b.WriteUint16(r.Attribute())
			if err := encodeReportingBody(b, r); err != nil {
				return err
			}
		default:
			return fmt.Errorf("zcl: unexpected reporting configuration record %T", rec)
		}
	}
	return nil
}

func (p *ReadReportingConfigResponse) UnmarshalJSON(data []byte) error {
	var raw []reportingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ReadReportingConfigResponse, 0, len(raw))
	for _, r := range raw {
		if r.Status != nil && *r.Status != ZCLStatusSuccess {
			out = append(out, ReportingFailure{Status: *r.Status, Direction: r.Direction, AttrID: r.AttrID})
			continue
		}
		rec, err := r.config()
		if err != nil {
			return err
		}
		out = append(out, rec.(ReportingConfigResult))
	}
	*p = out
	return nil
}

// DefaultResponse is the payload of defaultRsp (0x0B).
type DefaultResponse struct {
	CommandID uint8 `json:"cmdId"`
	Status    uint8 `json:"statusCode"`
}

func (DefaultResponse) isPayload() {}

func decodeDefaultResponse(b *Buffer) (DefaultResponse, error) {
	var r DefaultResponse
	var err error
	if r.CommandID, err = b.ReadUint8(); err != nil {
		return r, err
	}
	r.Status, err = b.ReadUint8()
	return r, err
}

func (p DefaultResponse) encode(b *Buffer) error {
	b.WriteUint8(p.CommandID)
	b.WriteUint8(p.Status)
	return nil
}

// DiscoverAttributes is the payload of discover (0x0C) and discoverExt (0x15).
type DiscoverAttributes struct {
	StartAttrID uint16 `json:"startAttrId"`
	MaxAttrIDs  uint8  `json:"maxAttrIds"`
}

func (DiscoverAttributes) isPayload() {}

func decodeDiscoverAttributes(b *Buffer) (DiscoverAttributes, error) {
	var r DiscoverAttributes
	var err error
	if r.StartAttrID, err = b.ReadUint16(); err != nil {
		return r, err
	}
	r.MaxAttrIDs, err = b.ReadUint8()
	return r, err
}

func (p DiscoverAttributes) encode(b *Buffer) error {
	b.WriteUint16(p.StartAttrID)
	b.WriteUint8(p.MaxAttrIDs)
	return nil
}

type AttributeInfo struct {
	AttrID   uint16   `json:"attrId"`
	DataType DataType `json:"dataType"`
}

// DiscoverAttributesResponse is the payload of discoverRsp (0x0D).
type DiscoverAttributesResponse struct {
	Complete   uint8           `json:"discComplete"`
	Attributes []AttributeInfo `json:"attrInfos"`
}

func (DiscoverAttributesResponse) isPayload() {}

func decodeDiscoverAttributesResponse(b *Buffer) (DiscoverAttributesResponse, error) {
	complete, err := b.ReadUint8()
	if err != nil {
		return DiscoverAttributesResponse{}, err
	}
	infos, err := records(b, func(b *Buffer) (AttributeInfo, error) {
		id, err := b.ReadUint16()
		if err != nil {
			return AttributeInfo{}, err
		}
		t, err := b.ReadUint8()
		return AttributeInfo{AttrID: id, DataType: DataType(t)}, err
	})
	if err != nil {
		return DiscoverAttributesResponse{}, err
	}
	return DiscoverAttributesResponse{Complete: complete, Attributes: infos}, nil
}

func (p DiscoverAttributesResponse) encode(b *Buffer) error {
	b.WriteUint8(p.Complete)
	for _, a := range p.Attributes {
		if !a.DataType.IsWire() {
			return fmt.Errorf("%w: attribute 0x%04X has type %s", ErrUnknownDataType, a.AttrID, a.DataType)
		}
		b.WriteUint16(a.AttrID)
		b.WriteUint8(uint8(a.DataType))
	}
	return nil
}

type ExtendedAttributeInfo struct {
	AttrID   uint16   `json:"attrId"`
	DataType DataType `json:"dataType"`
	Access   uint8    `json:"access"`
}

// DiscoverAttributesExtendedResponse is the payload of discoverExtRsp (0x16).
type DiscoverAttributesExtendedResponse struct {
	Complete   uint8                   `json:"discComplete"`
	Attributes []ExtendedAttributeInfo `json:"attrInfos"`
}

func (DiscoverAttributesExtendedResponse) isPayload() {}

func decodeDiscoverAttributesExtendedResponse(b *Buffer) (DiscoverAttributesExtendedResponse, error) {
	complete, err := b.ReadUint8()
	if err != nil {
		return DiscoverAttributesExtendedResponse{}, err
	}
	infos, err := records(b, func(b *Buffer) (ExtendedAttributeInfo, error) {
		p, err := b.ReadBytes(4)
		if err != nil {
			return ExtendedAttributeInfo{}, err
		}
		return ExtendedAttributeInfo{
			AttrID:   uint16(p[0]) | uint16(p[1])<<8,
			DataType: DataType(p[2]),
			Access:   p[3],
		}, nil
	})
	if err != nil {
		return DiscoverAttributesExtendedResponse{}, err
	}
	return DiscoverAttributesExtendedResponse{Complete: complete, Attributes: infos}, nil
}

func (p DiscoverAttributesExtendedResponse) encode(b *Buffer) error {
	b.WriteUint8(p.Complete)
	for _, a := range p.Attributes {
		if !a.DataType.IsWire() {
			return fmt.Errorf("%w: attribute 0x%04X has type %s", ErrUnknownDataType, a.AttrID, a.DataType)
		}
		b.WriteUint16(a.AttrID)
		b.WriteUint8(uint8(a.DataType))
		b.WriteUint8(a.Access)
	}
	return nil
}

type StructuredAttributeRef struct {
	AttrID   uint16             `json:"attrId"`
	Selector StructuredSelector `json:"selector"`
}

// ReadStructured is the payload of readStructured (0x0E).
type ReadStructured []StructuredAttributeRef

func (ReadStructured) isPayload() {}

func decodeReadStructured(b *Buffer) (ReadStructured, error) {
	return records(b, func(b *Buffer) (StructuredAttributeRef, error) {
		id, err := b.ReadUint16()
		if err != nil {
			return StructuredAttributeRef{}, err
		}
		sel, err := b.readStructuredSelector()
		return StructuredAttributeRef{AttrID: id, Selector: sel}, err
	})
}

func (p ReadStructured) encode(b *Buffer) error {
	for _, r := range p {
		b.WriteUint16(r.AttrID)
		if err := b.writeStructuredSelector(r.Selector); err != nil {
			return err
		}
	}
	return nil
}

type StructuredWriteRecord struct {
	AttrID   uint16             `json:"attrId"`
	Selector StructuredSelector `json:"selector"`
	DataType DataType           `json:"dataType"`
	Value    any                `json:"elementData"`
}

// WriteStructured is the payload of writeStructured (0x0F).
type WriteStructured []StructuredWriteRecord

func (WriteStructured) isPayload() {}

func decodeWriteStructured(b *Buffer) (WriteStructured, error) {
	return records(b, func(b *Buffer) (StructuredWriteRecord, error) {
		var r StructuredWriteRecord
		var err error
		if r.AttrID, err = b.ReadUint16(); err != nil {
			return r, err
		}
		if r.Selector, err = b.readStructuredSelector(); err != nil {
			return r, err
		}
		r.DataType, r.Value, err = readAttributeValue(b, r.AttrID)
		return r, err
	})
}

func (p WriteStructured) encode(b *Buffer) error {
	for _, r := range p {
		b.WriteUint16(r.AttrID)
		if err := b.writeStructuredSelector(r.Selector); err != nil {
			return err
		}
		if err := writeAttributeValue(b, r.AttrID, r.DataType, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteStructuredStatus is a WriteSuccess or a WriteStructuredFailure.
type WriteStructuredStatus interface {
	writeStructuredStatus()
}

type WriteStructuredFailure struct {
	Status   uint8              `json:"status"`
	AttrID   uint16             `json:"attrId"`
	Selector StructuredSelector `json:"selector"`
}

func (WriteSuccess) writeStructuredStatus()           {}
func (WriteStructuredFailure) writeStructuredStatus() {}

// WriteStructuredResponse is the payload of writeStructuredRsp (0x10).
type WriteStructuredResponse []WriteStructuredStatus

func (WriteStructuredResponse) isPayload() {}

func decodeWriteStructuredResponse(b *Buffer) (WriteStructuredResponse, error) {
	return records(b, func(b *Buffer) (WriteStructuredStatus, error) {
		status, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		if status == ZCLStatusSuccess {
			return WriteSuccess{}, nil
		}
		f := WriteStructuredFailure{Status: status}
		if f.AttrID, err = b.ReadUint16(); err != nil {
			return nil, err
		}
		if f.Selector, err = b.readStructuredSelector(); err != nil {
			return nil, err
		}
		return f, nil
	})
}

func (p WriteStructuredResponse) encode(b *Buffer) error {
	for _, rec := range p {
		switch r := rec.(type) {
		case WriteSuccess:
			b.WriteUint8(ZCLStatusSuccess)
		case WriteStructuredFailure:
			if r.Status == ZCLStatusSuccess {
				return fmt.Errorf("zcl: structured write failure for attribute 0x%04X has success status", r.AttrID)
			}
			b.WriteUint8(r.Status)
			b.WriteUint16(r.AttrID)
			if err := b.writeStructuredSelector(r.Selector); err != nil {
				return err
			}
		default:
			return fmt.Errorf("zcl: unexpected structured write record %T", rec)
		}
	}
	return nil
}

func (p *WriteStructuredResponse) UnmarshalJSON(data []byte) error {
	var raw []WriteStructuredFailure
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(WriteStructuredResponse, 0, len(raw))
	for _, r := range raw {
		if r.Status == ZCLStatusSuccess {
			out = append(out, WriteSuccess{})
		} else {
			out = append(out, r)
		}
	}
	*p = out
	return nil
}

// DiscoverCommands is the payload of discoverCommands (0x11) and
// discoverCommandsGen (0x13).
type DiscoverCommands struct {
	StartCommandID uint8 `json:"startCmdId"`
	MaxCommandIDs  uint8 `json:"maxCmdIds"`
}

func (DiscoverCommands) isPayload() {}

func decodeDiscoverCommands(b *Buffer) (DiscoverCommands, error) {
	var r DiscoverCommands
	var err error
	if r.StartCommandID, err = b.ReadUint8(); err != nil {
		return r, err
	}
	r.MaxCommandIDs, err = b.ReadUint8()
	return r, err
}

func (p DiscoverCommands) encode(b *Buffer) error {
	b.WriteUint8(p.StartCommandID)
	b.WriteUint8(p.MaxCommandIDs)
	return nil
}

// IDList is a list of 8-bit IDs. It marshals to a JSON array of numbers.
type IDList []uint8

func (l IDList) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(l))
	for i, v := range l {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// DiscoverCommandsResponse is the payload of discoverCommandsRsp (0x12) and
// discoverCommandsGenRsp (0x14).
type DiscoverCommandsResponse struct {
	Complete   uint8  `json:"discComplete"`
	CommandIDs IDList `json:"commandIds"`
}

func (DiscoverCommandsResponse) isPayload() {}

func decodeDiscoverCommandsResponse(b *Buffer) (DiscoverCommandsResponse, error) {
	complete, err := b.ReadUint8()
	if err != nil {
		return DiscoverCommandsResponse{}, err
	}
	ids := b.ReadRest()
	if len(ids) == 0 {
		ids = nil
	}
	return DiscoverCommandsResponse{Complete: complete, CommandIDs: ids}, nil
}

func (p DiscoverCommandsResponse) encode(b *Buffer) error {
	b.WriteUint8(p.Complete)
	b.WriteBytes(p.CommandIDs)
	return nil
}
