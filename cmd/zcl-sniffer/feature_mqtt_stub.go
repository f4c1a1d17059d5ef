//go:build no_mqtt

package main

import (
	"log/slog"

	"zigbee-zcl/internal/sniffer"
)

type mqttStopper struct{}

func (m *mqttStopper) Stop() {}

func initMQTT(_ *sniffer.Pipeline, cfg *Config, logger *slog.Logger) *mqttStopper {
	if cfg.MQTT.Enabled {
		logger.Warn("mqtt is enabled in config but this build has no MQTT support")
	}
	return &mqttStopper{}
}
