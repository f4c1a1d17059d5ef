package zcl

import (
	"encoding/json"
	"fmt"
)

// FrameType is the value of frame control bits 0-1.
type FrameType uint8

const (
	FrameTypeGlobal   FrameType = 0x00
	FrameTypeSpecific FrameType = 0x01
)

func (t FrameType) valid() bool { return t <= FrameTypeSpecific }

// Direction is frame control bit 3.
type Direction uint8

const (
	DirectionClientToServer Direction = 0
	DirectionServerToClient Direction = 1
)

// Frame control bits
const (
	frameControlTypeMask     = 0x03
	frameControlManufacturer = 0x04
	frameControlDirection    = 0x08
	frameControlDisableDR    = 0x10
)

type FrameControl struct {
	FrameType              FrameType `json:"frameType"`
	ManufacturerSpecific   bool      `json:"manufacturerSpecific"`
	Direction              Direction `json:"direction"`
	DisableDefaultResponse bool      `json:"disableDefaultResponse"`
}

func (fc FrameControl) bits() uint8 {
	b := uint8(fc.FrameType) & frameControlTypeMask
	if fc.ManufacturerSpecific {
		b |= frameControlManufacturer
	}
	if fc.Direction == DirectionServerToClient {
		b |= frameControlDirection
	}
	if fc.DisableDefaultResponse {
		b |= frameControlDisableDR
	}
	return b
}

func parseFrameControl(b uint8) FrameControl {
	fc := FrameControl{
		FrameType:              FrameType(b & frameControlTypeMask),
		ManufacturerSpecific:   b&frameControlManufacturer != 0,
		DisableDefaultResponse: b&frameControlDisableDR != 0,
	}
	if b&frameControlDirection != 0 {
		fc.Direction = DirectionServerToClient
	}
	return fc
}

// Header is the ZCL frame header. ManufacturerCode is only on the wire when
// FrameControl.ManufacturerSpecific is set.
type Header struct {
	FrameControl        FrameControl `json:"frameControl"`
	ManufacturerCode    uint16       `json:"manufacturerCode,omitempty"`
	TransactionSequence uint8        `json:"transactionSequenceNumber"`
	CommandID           uint8        `json:"commandIdentifier"`
}

func (h Header) minLength() int {
	if h.FrameControl.ManufacturerSpecific {
		return 5
	}
	return 3
}

func parseHeader(b *Buffer) (Header, error) {
	if b.Remaining() < 3 {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrFrameTooShort, b.Remaining())
	}
	control, _ := b.ReadUint8()
	h := Header{FrameControl: parseFrameControl(control)}
	if b.Len() < h.minLength() {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrFrameTooShort, b.Len())
	}
	if h.FrameControl.ManufacturerSpecific {
		h.ManufacturerCode, _ = b.ReadUint16()
	}
	h.TransactionSequence, _ = b.ReadUint8()
	h.CommandID, _ = b.ReadUint8()
	return h, nil
}

func (h Header) write(b *Buffer) {
	b.WriteUint8(h.FrameControl.bits())
	if h.FrameControl.ManufacturerSpecific {
		b.WriteUint16(h.ManufacturerCode)
	}
	b.WriteUint8(h.TransactionSequence)
	b.WriteUint8(h.CommandID)
}

// Frame is a decoded or constructed ZCL frame. Frames are immutable; the
// cluster is nil for global frames built without a cluster.
type Frame struct {
	header  Header
	payload Payload
	cluster *ClusterDef
	command *CommandDef
}

func (f *Frame) Header() Header { return f.header }

// Payload returns Fields for cluster-specific frames and one of the typed
// foundation payloads for global frames.
func (f *Frame) Payload() Payload { return f.payload }

func (f *Frame) Cluster() *ClusterDef { return f.cluster }

func (f *Frame) Command() *CommandDef { return f.command }

func (f *Frame) IsGlobal() bool {
	return f.header.FrameControl.FrameType == FrameTypeGlobal
}

func (f *Frame) IsClusterSpecific() bool {
	return f.header.FrameControl.FrameType == FrameTypeSpecific
}

func (f *Frame) MatchesCluster(name string) bool {
	return f.cluster != nil && f.cluster.Name == name
}

func (f *Frame) MatchesCommand(name string) bool {
	return f.command != nil && f.command.Name == name
}

func (f *Frame) MarshalJSON() ([]byte, error) {
	out := struct {
		Header  Header  `json:"header"`
		Cluster string  `json:"cluster,omitempty"`
		Command string  `json:"command"`
		Payload Payload `json:"payload"`
	}{Header: f.header, Payload: f.payload}
	if f.cluster != nil {
		out.Cluster = f.cluster.Name
	}
	if f.command != nil {
		out.Command = f.command.Name
	}
	return json.Marshal(out)
}

// ParseFrame decodes a frame received on clusterID. The manufacturer code in
// the header selects the cluster variant when present, manufacturerHint
// otherwise. Global frames on clusters missing from the registry decode
// against a placeholder cluster named after the ID.
func (r *Registry) ParseFrame(clusterID uint16, data []byte, manufacturerHint uint16) (*Frame, error) {
	b := NewBuffer(data)
	h, err := parseHeader(b)
	if err != nil {
		return nil, err
	}
	if !h.FrameControl.FrameType.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFrameType, h.FrameControl.FrameType)
	}
	manufacturer := manufacturerHint
	if h.FrameControl.ManufacturerSpecific {
		manufacturer = h.ManufacturerCode
	}
	cluster, err := r.Cluster(ByID(clusterID), manufacturer)
	if err != nil {
		if h.FrameControl.FrameType != FrameTypeGlobal {
			return nil, err
		}
		cluster = &ClusterDef{ID: clusterID, Name: fmt.Sprintf("0x%04x", clusterID)}
	}
	cmd, err := resolveCommand(cluster, h.FrameControl, ByID(uint16(h.CommandID)))
	if err != nil {
		return nil, err
	}
	payload, err := decodePayload(b, h.FrameControl.FrameType, cmd)
	if err != nil {
		return nil, fmt.Errorf("zcl: %s %s: %w", cluster.Name, cmd.Name, err)
	}
	return &Frame{header: h, payload: payload, cluster: cluster, command: cmd}, nil
}

// resolveCommand looks the command up in the global table for global frames
// and in the cluster's command or command response table otherwise.
func resolveCommand(cluster *ClusterDef, fc FrameControl, key Key) (*CommandDef, error) {
	switch {
	case fc.FrameType == FrameTypeGlobal:
		return GlobalCommand(key)
	case cluster == nil:
		return nil, &LookupError{Err: ErrUnknownCluster, Key: Key{}}
	case fc.Direction == DirectionClientToServer:
		return cluster.Command(key)
	default:
		return cluster.CommandResponse(key)
	}
}

func decodePayload(b *Buffer, t FrameType, cmd *CommandDef) (Payload, error) {
	switch t {
	case FrameTypeGlobal:
		codec, ok := globalCodecs[cmd.ID]
		if !ok {
			return nil, &LookupError{Err: ErrUnknownGlobalCommand, Key: ByID(uint16(cmd.ID))}
		}
		return codec.decode(b)
	case FrameTypeSpecific:
		return decodeFields(b, cmd.Params)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedFrameType, t)
}

func encodePayload(b *Buffer, t FrameType, cmd *CommandDef, p Payload) error {
	switch t {
	case FrameTypeGlobal:
		gp, ok := p.(globalPayload)
		codec, known := globalCodecs[cmd.ID]
		if !ok || !known || !codec.accepts(p) {
			return fmt.Errorf("zcl: payload %T does not fit global command %s", p, cmd.Name)
		}
		return gp.encode(b)
	case FrameTypeSpecific:
		fields, ok := p.(Fields)
		if !ok {
			return fmt.Errorf("zcl: payload %T does not fit command %s", p, cmd.Name)
		}
		return encodeFields(b, cmd.Params, fields)
	}
	return fmt.Errorf("%w: %d", ErrInvalidFrameType, t)
}

// FrameSpec describes a frame to build. Command and Cluster are resolved the
// way ParseFrame resolves them; Cluster may be left zero for global frames.
// A non-zero ManufacturerCode implies ManufacturerSpecific.
type FrameSpec struct {
	FrameType              FrameType
	Direction              Direction
	DisableDefaultResponse bool
	ManufacturerSpecific   bool
	ManufacturerCode       uint16
	TransactionSequence    uint8
	Command                Key
	Cluster                Key
	Payload                Payload
}

// NewFrame builds a frame from spec. The payload is checked by encoding it,
// so a frame returned here serializes unless its frame type is invalid.
func (r *Registry) NewFrame(spec FrameSpec) (*Frame, error) {
	fc := FrameControl{
		FrameType:              spec.FrameType,
		ManufacturerSpecific:   spec.ManufacturerSpecific || spec.ManufacturerCode != 0,
		Direction:              spec.Direction,
		DisableDefaultResponse: spec.DisableDefaultResponse,
	}
	var cluster *ClusterDef
	if !spec.Cluster.IsZero() || spec.FrameType != FrameTypeGlobal {
		c, err := r.Cluster(spec.Cluster, spec.ManufacturerCode)
		if err != nil {
			return nil, err
		}
		cluster = c
	}
	cmd, err := resolveCommand(cluster, fc, spec.Command)
	if err != nil {
		return nil, err
	}

	payload := spec.Payload
	if payload == nil {
		if spec.FrameType == FrameTypeGlobal {
			if codec, ok := globalCodecs[cmd.ID]; ok {
				payload = codec.zero
			}
		} else {
			payload = Fields{}
		}
	}
	if spec.FrameType.valid() {
		if err := encodePayload(NewBuffer(nil), spec.FrameType, cmd, payload); err != nil {
			return nil, err
		}
	}

	return &Frame{
		header: Header{
			FrameControl:        fc,
			ManufacturerCode:    spec.ManufacturerCode,
			TransactionSequence: spec.TransactionSequence,
			CommandID:           cmd.ID,
		},
		payload: payload,
		cluster: cluster,
		command: cmd,
	}, nil
}

// MarshalBinary serializes the frame.
func (f *Frame) MarshalBinary() ([]byte, error) {
	t := f.header.FrameControl.FrameType
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameType, t)
	}
	b := NewBuffer(make([]byte, 0, 16))
	f.header.write(b)
	if err := encodePayload(b, t, f.command, f.payload); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
