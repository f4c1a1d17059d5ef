package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.bug.st/serial"
)

// Serial reads the line protocol from a sniffer dongle. The port is reopened
// with exponential backoff when it disappears, e.g. on USB re-enumeration.
type Serial struct {
	portName string
	mode     *serial.Mode
	logger   *slog.Logger
	open     func(name string, mode *serial.Mode) (serial.Port, error)
}

func NewSerial(portName string, baudRate int, logger *slog.Logger) *Serial {
	return &Serial{
		portName: portName,
		mode: &serial.Mode{
			BaudRate: baudRate,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		},
		logger: logger,
		open:   serial.Open,
	}
}

func (s *Serial) Name() string { return "serial:" + s.portName }

func (s *Serial) Run(ctx context.Context, out chan<- RawFrame) error {
	backoff := 100 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		err := s.session(ctx, out)
		if ctx.Err() != nil {
			return nil
		}
		s.logger.Warn("serial source interrupted", "port", s.portName, "err", err, "retry", backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil
		}
		if backoff < maxBackoff {
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}
}

// session reads from one opened port until it fails or ctx is cancelled.
func (s *Serial) session(ctx context.Context, out chan<- RawFrame) error {
	port, err := s.open(s.portName, s.mode)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.portName, err)
	}
	// USB CDC ACM dongles only stream with DTR/RTS asserted.
	_ = port.SetDTR(true)
	_ = port.SetRTS(true)
	s.logger.Info("serial source open", "port", s.portName, "baud", s.mode.BaudRate)

	// Closing the port unblocks the pending read.
	stop := context.AfterFunc(ctx, func() { port.Close() })
	defer func() {
		if stop() {
			port.Close()
		}
	}()

	err = scanLines(ctx, s.Name(), port, out, s.logger)
	if err == nil {
		err = fmt.Errorf("%s: port closed", s.portName)
	}
	return err
}
