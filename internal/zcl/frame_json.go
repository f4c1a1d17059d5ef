package zcl

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FrameRequest is the JSON form of a frame to build, as accepted by the HTTP
// API and the MQTT encode topic. Cluster and Command take a name or an ID.
type FrameRequest struct {
	FrameType              FrameType       `json:"frameType"`
	Direction              Direction       `json:"direction"`
	DisableDefaultResponse bool            `json:"disableDefaultResponse"`
	ManufacturerCode       uint16          `json:"manufacturerCode,omitempty"`
	TransactionSequence    uint8           `json:"transactionSequenceNumber"`
	Cluster                Key             `json:"cluster"`
	Command                Key             `json:"command"`
	Payload                json.RawMessage `json:"payload,omitempty"`
}

// DecodeFrameRequest parses a JSON frame request and builds the frame.
func (r *Registry) DecodeFrameRequest(data []byte) (*Frame, error) {
	var req FrameRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("zcl: frame request: %w", err)
	}
	return r.BuildFrame(req)
}

// BuildFrame resolves the payload of req against the command it names and
// builds the frame.
func (r *Registry) BuildFrame(req FrameRequest) (*Frame, error) {
	spec := FrameSpec{
		FrameType:              req.FrameType,
		Direction:              req.Direction,
		DisableDefaultResponse: req.DisableDefaultResponse,
		ManufacturerCode:       req.ManufacturerCode,
		TransactionSequence:    req.TransactionSequence,
		Cluster:                req.Cluster,
		Command:                req.Command,
	}
	raw := bytes.TrimSpace(req.Payload)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return r.NewFrame(spec)
	}

	if req.FrameType == FrameTypeGlobal {
		cmd, err := GlobalCommand(req.Command)
		if err != nil {
			return nil, err
		}
		if spec.Payload, err = GlobalPayloadFromJSON(cmd.ID, raw); err != nil {
			return nil, err
		}
		return r.NewFrame(spec)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields Fields
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("zcl: command payload: %w", err)
	}
	spec.Payload = fields
	return r.NewFrame(spec)
}
