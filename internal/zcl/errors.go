package zcl

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCluster       = errors.New("zcl: unknown cluster")
	ErrUnknownAttribute     = errors.New("zcl: unknown attribute")
	ErrUnknownCommand       = errors.New("zcl: unknown command")
	ErrUnknownGlobalCommand = errors.New("zcl: unknown global command")
	ErrUnknownDataType      = errors.New("zcl: unknown data type")
	ErrFrameTooShort        = errors.New("zcl: frame length is lower than minimal length")
	ErrUnsupportedFrameType = errors.New("zcl: unsupported frame type")
	ErrInvalidFrameType     = errors.New("zcl: invalid frame type")
	ErrBufferUnderrun       = errors.New("zcl: buffer underrun")
)

// Lookup tables named in LookupError.
const (
	TableAttributes       = "attribute"
	TableCommands         = "command"
	TableCommandResponses = "command response"
)

// LookupError reports a registry key that matched nothing.
// It unwraps to one of the ErrUnknown* sentinels.
type LookupError struct {
	Err     error
	Cluster string // owning cluster, empty for cluster and global lookups
	Table   string
	Key     Key
}

func (e *LookupError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownCluster):
		return fmt.Sprintf("zcl: cluster with key '%s' does not exist", e.Key)
	case errors.Is(e.Err, ErrUnknownGlobalCommand):
		return fmt.Sprintf("zcl: global command with key '%s' does not exist", e.Key)
	default:
		return fmt.Sprintf("zcl: cluster '%s' has no %s '%s'", e.Cluster, e.Table, e.Key)
	}
}

func (e *LookupError) Unwrap() error { return e.Err }
