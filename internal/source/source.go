// Package source produces raw ZCL frames from capture hardware and replay
// files.
package source

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// RawFrame is one captured ZCL frame, header included, before decoding.
type RawFrame struct {
	Source           string
	Time             time.Time
	ClusterID        uint16
	ManufacturerHint uint16
	Data             []byte
}

// Source delivers frames on out until ctx is cancelled or the input ends.
type Source interface {
	Name() string
	Run(ctx context.Context, out chan<- RawFrame) error
}

// ErrSkip is returned by ParseLine for blank lines and comments.
var ErrSkip = errors.New("source: nothing to parse")

// ParseLine parses one line of the capture protocol:
//
//	<cluster>:<frame hex>[:<manufacturer>]
//
// Cluster and manufacturer are hexadecimal with an optional 0x prefix. The
// frame may contain spaces between bytes. Everything after '#' is ignored.
func ParseLine(line string) (RawFrame, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return RawFrame{}, ErrSkip
	}

	parts := strings.Split(line, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return RawFrame{}, fmt.Errorf("source: malformed line %q", line)
	}
	var f RawFrame
	cluster, err := ParseHex16(parts[0])
	if err != nil {
		return RawFrame{}, fmt.Errorf("source: cluster: %w", err)
	}
	f.ClusterID = cluster
	f.Data, err = hex.DecodeString(strings.ReplaceAll(strings.TrimSpace(parts[1]), " ", ""))
	if err != nil {
		return RawFrame{}, fmt.Errorf("source: frame: %w", err)
	}
	if len(f.Data) == 0 {
		return RawFrame{}, fmt.Errorf("source: empty frame in %q", line)
	}
	if len(parts) == 3 {
		if f.ManufacturerHint, err = ParseHex16(parts[2]); err != nil {
			return RawFrame{}, fmt.Errorf("source: manufacturer: %w", err)
		}
	}
	return f, nil
}

// ParseHex16 parses a 16-bit hexadecimal ID with an optional 0x prefix.
func ParseHex16(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// FormatLine is the inverse of ParseLine.
func FormatLine(f RawFrame) string {
	s := fmt.Sprintf("%04x:%x", f.ClusterID, f.Data)
	if f.ManufacturerHint != 0 {
		s += fmt.Sprintf(":%04x", f.ManufacturerHint)
	}
	return s
}

// scanLines feeds every parsable line of r to out. Malformed lines are
// logged and skipped.
func scanLines(ctx context.Context, name string, r io.Reader, out chan<- RawFrame, logger *slog.Logger) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		f, err := ParseLine(sc.Text())
		if errors.Is(err, ErrSkip) {
			continue
		}
		if err != nil {
			logger.Warn("skipping line", "source", name, "line", lineNo, "err", err)
			continue
		}
		f.Source = name
		f.Time = time.Now()
		select {
		case out <- f:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return sc.Err()
}

// Reader replays frames from an io.Reader such as a capture file or stdin.
type Reader struct {
	name   string
	r      io.Reader
	logger *slog.Logger
}

func NewReader(name string, r io.Reader, logger *slog.Logger) *Reader {
	return &Reader{name: name, r: r, logger: logger}
}

func (s *Reader) Name() string { return s.name }

// Run returns nil once the reader is exhausted.
func (s *Reader) Run(ctx context.Context, out chan<- RawFrame) error {
	return scanLines(ctx, s.name, s.r, out, s.logger)
}
