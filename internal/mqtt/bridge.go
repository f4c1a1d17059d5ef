//go:build !no_mqtt

package mqtt

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"zigbee-zcl/internal/sniffer"
	"zigbee-zcl/internal/source"
	"zigbee-zcl/internal/zcl"
)

// Config holds MQTT bridge configuration.
type Config struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

// Bridge feeds raw frames from MQTT into the pipeline, publishes decoded
// frames and answers encode requests.
//
// Topics, relative to the prefix:
//
//	raw/<cluster>[/<manufacturer>]   in: frame hex; cluster is a name or hex ID
//	frames/<cluster>/<command>       out: decoded frame event JSON
//	errors                           out: {"error": ...} JSON
//	encode                           in: frame request JSON
//	encoded                          out: frame hex
//	bridge/state                     out: online/offline, retained
//	bridge/clusters[/<cluster>]      out: registry catalog, retained
type Bridge struct {
	client   pahomqtt.Client
	pipeline *sniffer.Pipeline
	prefix   string
	logger   *slog.Logger
	unsub    func()
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewBridge creates and connects an MQTT bridge.
func NewBridge(p *sniffer.Pipeline, cfg Config, logger *slog.Logger) (*Bridge, error) {
	b := newBridge(p, cfg.TopicPrefix, logger)

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "zcl-sniffer"
	}
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetWill(b.prefix+"/bridge/state", "offline", 1, true).
		SetOnConnectHandler(func(_ pahomqtt.Client) {
			b.logger.Info("MQTT connected")
			b.onConnect()
		}).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			b.logger.Warn("MQTT connection lost", "err", err)
		})

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	// The client must be set before Connect: the connect handler publishes.
	b.client = pahomqtt.NewClient(opts)
	token := b.client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		b.cancel()
		return nil, fmt.Errorf("mqtt connect timeout")
	}
	if err := token.Error(); err != nil {
		b.cancel()
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return b, nil
}

func newBridge(p *sniffer.Pipeline, prefix string, logger *slog.Logger) *Bridge {
	ctx, cancel := context.WithCancel(context.Background())
	if prefix == "" {
		prefix = "zcl"
	}
	return &Bridge{
		pipeline: p,
		prefix:   strings.TrimSuffix(prefix, "/"),
		logger:   logger.With("component", "mqtt"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// onConnect runs on every (re)connect: subscriptions do not survive a clean
// session.
func (b *Bridge) onConnect() {
	b.publish(b.prefix+"/bridge/state", []byte("online"), true)
	for _, msg := range buildCatalog(b.pipeline.Registry(), b.prefix) {
		b.publish(msg.Topic, msg.Payload, true)
	}
	b.subscribe(b.prefix+"/raw/#", b.handleRaw)
	b.subscribe(b.prefix+"/encode", b.handleEncode)
}

func (b *Bridge) subscribe(topic string, handle func(topic string, payload []byte)) {
	token := b.client.Subscribe(topic, 1, func(_ pahomqtt.Client, msg pahomqtt.Message) {
		handle(msg.Topic(), msg.Payload())
	})
	go func() {
		if !token.WaitTimeout(5 * time.Second) {
			b.logger.Warn("MQTT subscribe timeout", "topic", topic)
		} else if err := token.Error(); err != nil {
			b.logger.Warn("MQTT subscribe error", "topic", topic, "err", err)
		}
	}()
}

// Start subscribes to pipeline events and begins MQTT publishing.
func (b *Bridge) Start() {
	b.unsub = b.pipeline.Events().OnAll(b.handleEvent)
	b.logger.Info("MQTT bridge started", "prefix", b.prefix)
}

// Stop publishes offline state, unsubscribes, and disconnects.
func (b *Bridge) Stop() {
	b.cancel()
	if b.unsub != nil {
		b.unsub()
	}
	b.publish(b.prefix+"/bridge/state", []byte("offline"), true)
	b.client.Disconnect(1000)
	b.logger.Info("MQTT bridge stopped")
}

func (b *Bridge) handleEvent(event sniffer.Event) {
	ev, ok := event.Data.(*sniffer.FrameEvent)
	if !ok {
		return
	}
	switch event.Type {
	case sniffer.EventFrameDecoded:
		b.publish(frameTopic(b.prefix, ev.Frame), mustJSON(ev), false)
	case sniffer.EventFrameError:
		b.publish(b.prefix+"/errors", mustJSON(ev), false)
	}
}

// parseRawTopic extracts the cluster and optional manufacturer from
// <prefix>/raw/<cluster>[/<manufacturer>].
func (b *Bridge) parseRawTopic(topic string) (cluster, manufacturer uint16, err error) {
	rest, ok := strings.CutPrefix(topic, b.prefix+"/raw/")
	if !ok {
		return 0, 0, fmt.Errorf("unexpected topic %q", topic)
	}
	levels := strings.Split(rest, "/")
	if len(levels) > 2 || levels[0] == "" {
		return 0, 0, fmt.Errorf("unexpected topic %q", topic)
	}
	if c, err := b.pipeline.Registry().Cluster(zcl.ByName(levels[0]), 0); err == nil {
		cluster = c.ID
	} else if cluster, err = source.ParseHex16(levels[0]); err != nil {
		return 0, 0, fmt.Errorf("cluster %q: %w", levels[0], err)
	}
	if len(levels) == 2 {
		if manufacturer, err = source.ParseHex16(levels[1]); err != nil {
			return 0, 0, fmt.Errorf("manufacturer %q: %w", levels[1], err)
		}
	}
	return cluster, manufacturer, nil
}

func (b *Bridge) handleRaw(topic string, payload []byte) {
	cluster, manufacturer, err := b.parseRawTopic(topic)
	if err != nil {
		b.publishError(err, topic)
		return
	}
	data, err := hex.DecodeString(strings.ReplaceAll(strings.TrimSpace(string(payload)), " ", ""))
	if err != nil {
		b.publishError(fmt.Errorf("frame hex: %w", err), topic)
		return
	}
	err = b.pipeline.Submit(b.ctx, source.RawFrame{
		Source:           "mqtt",
		Time:             time.Now(),
		ClusterID:        cluster,
		ManufacturerHint: manufacturer,
		Data:             data,
	})
	if err != nil {
		b.logger.Debug("raw frame dropped", "topic", topic, "err", err)
	}
}

func (b *Bridge) handleEncode(topic string, payload []byte) {
	frame, err := b.pipeline.Registry().DecodeFrameRequest(payload)
	if err != nil {
		b.publishError(err, topic)
		return
	}
	data, err := frame.MarshalBinary()
	if err != nil {
		b.publishError(err, topic)
		return
	}
	b.publish(b.prefix+"/encoded", []byte(hex.EncodeToString(data)), false)
}

func (b *Bridge) publishError(err error, topic string) {
	b.logger.Warn("MQTT request rejected", "topic", topic, "err", err)
	b.publish(b.prefix+"/errors", mustJSON(map[string]string{"error": err.Error(), "topic": topic}), false)
}

func (b *Bridge) publish(topic string, payload []byte, retained bool) {
	token := b.client.Publish(topic, 1, retained, payload)
	go func() {
		if !token.WaitTimeout(5 * time.Second) {
			b.logger.Warn("MQTT publish timeout", "topic", topic)
		} else if err := token.Error(); err != nil {
			b.logger.Warn("MQTT publish error", "topic", topic, "err", err)
		}
	}()
}
