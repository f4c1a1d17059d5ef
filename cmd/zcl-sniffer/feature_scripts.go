//go:build !no_scripts

package main

import (
	"log/slog"

	"zigbee-zcl/internal/script"
	"zigbee-zcl/internal/sniffer"
)

type scriptStopper struct {
	engine *script.Engine
}

func (s *scriptStopper) Stop() {
	if s.engine != nil {
		s.engine.Stop()
	}
}

func initScripts(p *sniffer.Pipeline, cfg *Config, logger *slog.Logger) *scriptStopper {
	mgr, err := script.NewManager(cfg.ScriptsDir, logger)
	if err != nil {
		logger.Error("create script manager", "err", err)
		return &scriptStopper{}
	}
	engine := script.NewEngine(p, mgr, logger)
	if err := engine.Start(); err != nil {
		logger.Error("start script engine", "err", err)
		return &scriptStopper{}
	}
	return &scriptStopper{engine: engine}
}
