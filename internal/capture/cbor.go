package capture

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("capture: cbor encoder mode: %v", err))
	}
	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyQuiet,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("capture: cbor decoder mode: %v", err))
	}
}

func encodeRecord(rec *Record) ([]byte, error) {
	return encMode.Marshal(rec)
}

func decodeRecord(data []byte) (*Record, error) {
	var rec Record
	if err := decMode.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode capture: %w", err)
	}
	return &rec, nil
}
