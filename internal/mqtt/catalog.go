//go:build !no_mqtt

package mqtt

import (
	"encoding/json"
	"strings"

	"zigbee-zcl/internal/zcl"
)

// catalogMsg is a retained message describing the registry to MQTT clients.
type catalogMsg struct {
	Topic   string
	Payload []byte
}

// clusterSummary is one entry of the <prefix>/bridge/clusters index.
type clusterSummary struct {
	ID               uint16 `json:"id"`
	Name             string `json:"name"`
	ManufacturerCode uint16 `json:"manufacturerCode,omitempty"`
	Attributes       int    `json:"attributes"`
	Commands         int    `json:"commands"`
}

// topicLevel makes name safe for use as a single MQTT topic level.
func topicLevel(name string) string {
	if name == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '+', '#', ' ', 0:
			return '_'
		}
		return r
	}, name)
}

// buildCatalog returns the index of every registered cluster followed by one
// message per cluster carrying its full definition.
func buildCatalog(registry *zcl.Registry, prefix string) []catalogMsg {
	all := registry.All()
	index := make([]clusterSummary, 0, len(all))
	msgs := make([]catalogMsg, 0, len(all)+1)
	for _, c := range all {
		index = append(index, clusterSummary{
			ID:               c.ID,
			Name:             c.Name,
			ManufacturerCode: c.ManufacturerCode,
			Attributes:       len(c.Attributes),
			Commands:         len(c.Commands),
		})
		msgs = append(msgs, catalogMsg{
			Topic:   prefix + "/bridge/clusters/" + topicLevel(c.Name),
			Payload: mustJSON(c),
		})
	}
	return append([]catalogMsg{{Topic: prefix + "/bridge/clusters", Payload: mustJSON(index)}}, msgs...)
}

// frameTopic is where a decoded frame is published.
func frameTopic(prefix string, f *zcl.Frame) string {
	cluster := "unknown"
	if c := f.Cluster(); c != nil {
		cluster = c.Name
	}
	command := "unknown"
	if c := f.Command(); c != nil {
		command = c.Name
	}
	return prefix + "/frames/" + topicLevel(cluster) + "/" + topicLevel(command)
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("{}")
	}
	return data
}
