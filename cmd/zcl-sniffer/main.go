package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"zigbee-zcl/internal/capture"
	"zigbee-zcl/internal/sniffer"
	"zigbee-zcl/internal/source"
	"zigbee-zcl/internal/web"
	"zigbee-zcl/internal/zcl"
	"zigbee-zcl/internal/zcl/clusters"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

type Config struct {
	Sources struct {
		Serial []SerialConfig `yaml:"serial"`
		Files  []string       `yaml:"files"` // replay files, "-" reads stdin
	} `yaml:"sources"`
	Web struct {
		Listen         string   `yaml:"listen"`
		APIKey         string   `yaml:"api_key"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"web"`
	Store struct {
		Disabled  bool   `yaml:"disabled"`
		Path      string `yaml:"path"`
		Retention string `yaml:"retention"` // e.g. "168h"; empty keeps everything
	} `yaml:"store"`
	MQTT struct {
		Enabled     bool   `yaml:"enabled"`
		Broker      string `yaml:"broker"`
		ClientID    string `yaml:"client_id"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		TopicPrefix string `yaml:"topic_prefix"`
	} `yaml:"mqtt"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	DefinitionsDir string `yaml:"definitions_dir"`
	ScriptsDir     string `yaml:"scripts_dir"`
}

func (c *Config) applyDefaults() {
	if c.Web.Listen == "" {
		c.Web.Listen = "127.0.0.1:8080"
	}
	if c.Store.Path == "" {
		c.Store.Path = "zcl-sniffer.db"
	}
	for i := range c.Sources.Serial {
		if c.Sources.Serial[i].Baud == 0 {
			c.Sources.Serial[i].Baud = 115200
		}
	}
	if c.DefinitionsDir == "" {
		c.DefinitionsDir = "definitions"
	}
	if c.ScriptsDir == "" {
		c.ScriptsDir = "scripts"
	}
	if c.MQTT.TopicPrefix == "" {
		c.MQTT.TopicPrefix = "zcl"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) validate() error {
	for i, s := range c.Sources.Serial {
		if s.Port == "" {
			return fmt.Errorf("sources.serial[%d].port is required", i)
		}
		if s.Baud < 0 {
			return fmt.Errorf("sources.serial[%d].baud must be positive, got %d", i, s.Baud)
		}
	}
	if _, err := c.retention(); err != nil {
		return err
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt.broker is required when mqtt is enabled")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// retention returns the capture retention, zero when captures are kept
// forever.
func (c *Config) retention() (time.Duration, error) {
	if c.Store.Retention == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Store.Retention)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("store.retention must be a positive duration, got %q", c.Store.Retention)
	}
	return d, nil
}

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to the YAML config file")
	shellMode := flag.Bool("shell", false, "start the interactive decode shell instead of the daemon")
	flag.Parse()

	// Temporary logger for config loading errors.
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(*cfgPath)
	if errors.Is(err, fs.ErrNotExist) && *shellMode {
		// The shell needs no config; definitions_dir defaults still apply.
		cfg, err = &Config{}, nil
		cfg.applyDefaults()
	}
	if err != nil {
		bootLogger.Error("load config", "err", err)
		os.Exit(1)
	}
	if err := cfg.validate(); err != nil {
		bootLogger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	if *shellMode {
		// Keep log lines off the prompt unless something is wrong.
		cfg.Log.Level = "warn"
	}
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	registry, err := buildRegistry(cfg, logger)
	if err != nil {
		logger.Error("build registry", "err", err)
		os.Exit(1)
	}

	if *shellMode {
		if err := runShell(registry); err != nil {
			logger.Error("shell", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, registry, logger); err != nil {
		logger.Error("zcl-sniffer", "err", err)
		os.Exit(1)
	}
}

func run(cfg *Config, registry *zcl.Registry, logger *slog.Logger) error {
	logger.Info("zcl-sniffer starting", "version", version)

	var store capture.Store
	if !cfg.Store.Disabled {
		db, err := capture.NewBoltStore(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()
		store = db
	}

	sources, closeSources, err := openSources(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSources()

	events := sniffer.NewEventBus(logger)
	pipeline := sniffer.NewPipeline(registry, store, events, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if retention, _ := cfg.retention(); store != nil && retention > 0 {
		go pruneLoop(ctx, store, retention, logger)
	}

	// Start script engine (no-op when built with no_scripts tag).
	scripts := initScripts(pipeline, cfg, logger)

	var webOpts []web.ServerOption
	if cfg.Web.APIKey != "" {
		webOpts = append(webOpts, web.WithAPIKey(cfg.Web.APIKey))
	}
	if len(cfg.Web.AllowedOrigins) > 0 {
		webOpts = append(webOpts, web.WithAllowedOrigins(cfg.Web.AllowedOrigins))
	}
	webOpts = append(webOpts, web.WithVersion(version))
	webServer := web.NewServer(pipeline, logger, webOpts...)

	httpServer := &http.Server{
		Addr:         cfg.Web.Listen,
		Handler:      webServer,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	go func() {
		logger.Info("web server starting", "addr", cfg.Web.Listen)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", "err", err)
		}
	}()

	// Start MQTT bridge (no-op when built with no_mqtt tag).
	mqtt := initMQTT(pipeline, cfg, logger)

	pipelineDone := make(chan struct{})
	go func() {
		defer close(pipelineDone)
		pipeline.Run(ctx, sources...)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	signal.Stop(sigCh)
	logger.Info("shutting down", "signal", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	mqtt.Stop()
	scripts.Stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "err", err)
	}
	webServer.Stop()
	cancel()
	<-pipelineDone

	s := pipeline.Stats()
	logger.Info("goodbye", "decoded", s.Decoded, "failed", s.Failed, "stored", s.Stored)
	return nil
}

// buildRegistry merges the definitions directory into the built-in clusters.
func buildRegistry(cfg *Config, logger *slog.Logger) (*zcl.Registry, error) {
	defs, err := zcl.LoadDefinitions(cfg.DefinitionsDir, logger)
	if err != nil {
		return nil, err
	}
	registry, err := clusters.NewRegistry(logger, defs...)
	if err != nil {
		return nil, err
	}
	logger.Info("ZCL registry initialized", "clusters", len(registry.All()), "custom", len(defs))
	return registry, nil
}

// openSources creates every configured source. The returned func closes
// replay files.
func openSources(cfg *Config, logger *slog.Logger) ([]source.Source, func(), error) {
	var sources []source.Source
	var files []io.Closer
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	for _, s := range cfg.Sources.Serial {
		logger.Info("using serial source", "port", s.Port, "baud", s.Baud)
		sources = append(sources, source.NewSerial(s.Port, s.Baud, logger))
	}
	for _, path := range cfg.Sources.Files {
		if path == "-" {
			sources = append(sources, source.NewReader("stdin", os.Stdin, logger))
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open replay file: %w", err)
		}
		files = append(files, f)
		sources = append(sources, source.NewReader("file:"+path, f, logger))
	}
	if len(sources) == 0 {
		logger.Warn("no capture sources configured; frames arrive only via the API and MQTT")
	}
	return sources, closeAll, nil
}

// pruneLoop deletes captures older than retention once at start and then
// hourly.
func pruneLoop(ctx context.Context, store capture.Store, retention time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		n, err := store.Prune(time.Now().Add(-retention))
		if err != nil {
			logger.Error("prune captures", "err", err)
		} else if n > 0 {
			logger.Info("pruned captures", "count", n, "retention", retention)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
