package zcl

import (
	"encoding/binary"
	"fmt"
)

// Buffer is a byte slice with a read cursor. Reads consume from the cursor,
// writes append to the end. A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	pos  int
}

// NewBuffer returns a Buffer reading from data. The slice is not copied.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the full underlying slice, including bytes already read.
func (b *Buffer) Bytes() []byte { return b.data }

// Position returns the read cursor.
func (b *Buffer) Position() int { return b.pos }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.data) - b.pos }

// Len returns the total number of bytes held.
func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) need(n int) error {
	if n < 0 || b.Remaining() < n {
		return fmt.Errorf("%w: need %d, have %d", ErrBufferUnderrun, n, b.Remaining())
	}
	return nil
}

func (b *Buffer) ReadUint8() (uint8, error) {
	if err := b.need(1); err != nil {
		return 0, err
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

func (b *Buffer) ReadUint16() (uint16, error) {
	if err := b.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(b.data[b.pos:])
	b.pos += 2
	return v, nil
}

// ReadUint16BE reads a big-endian uint16 (Tuya datapoint lengths).
func (b *Buffer) ReadUint16BE() (uint16, error) {
	if err := b.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(b.data[b.pos:])
	b.pos += 2
	return v, nil
}

func (b *Buffer) ReadUint24() (uint32, error) {
	if err := b.need(3); err != nil {
		return 0, err
	}
	d := b.data[b.pos:]
	b.pos += 3
	return uint32(d[0]) | uint32(d[1])<<8 | uint32(d[2])<<16, nil
}

func (b *Buffer) ReadUint32() (uint32, error) {
	if err := b.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(b.data[b.pos:])
	b.pos += 4
	return v, nil
}

func (b *Buffer) ReadUint64() (uint64, error) {
	if err := b.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(b.data[b.pos:])
	b.pos += 8
	return v, nil
}

// ReadBytes returns a copy of the next n bytes.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if err := b.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b.data[b.pos:b.pos+n])
	b.pos += n
	return out, nil
}

// ReadRest returns a copy of all unread bytes.
func (b *Buffer) ReadRest() []byte {
	out, _ := b.ReadBytes(b.Remaining())
	return out
}

func (b *Buffer) WriteUint8(v uint8) {
	b.data = append(b.data, v)
}

func (b *Buffer) WriteUint16(v uint16) {
	b.data = binary.LittleEndian.AppendUint16(b.data, v)
}

func (b *Buffer) WriteUint16BE(v uint16) {
	b.data = binary.BigEndian.AppendUint16(b.data, v)
}

func (b *Buffer) WriteUint24(v uint32) {
	b.data = append(b.data, byte(v), byte(v>>8), byte(v>>16))
}

func (b *Buffer) WriteUint32(v uint32) {
	b.data = binary.LittleEndian.AppendUint32(b.data, v)
}

func (b *Buffer) WriteUint64(v uint64) {
	b.data = binary.LittleEndian.AppendUint64(b.data, v)
}

func (b *Buffer) WriteBytes(p []byte) {
	b.data = append(b.data, p...)
}
