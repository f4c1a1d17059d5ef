//go:build no_scripts

package main

import (
	"log/slog"

	"zigbee-zcl/internal/sniffer"
)

type scriptStopper struct{}

func (s *scriptStopper) Stop() {}

func initScripts(_ *sniffer.Pipeline, _ *Config, _ *slog.Logger) *scriptStopper {
	return &scriptStopper{}
}
