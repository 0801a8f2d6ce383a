// Package di wires configuration, logging, transports and services
// together for the CLI.
package di

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mayafbx/internal/application/services"
	"mayafbx/internal/core/ports/host"
	"mayafbx/internal/infrastructure/commandport"
	"mayafbx/internal/infrastructure/config"
	"mayafbx/internal/infrastructure/mayaprompt"
	"mayafbx/internal/infrastructure/presets"
)

// Container holds all application dependencies.
type Container struct {
	Settings config.Settings
	Logger   *zap.Logger
	Dialer   host.Dialer
	Service  *services.PluginService
	Presets  *presets.Store

	verbose bool
}

// NewContainer loads configuration and wires every component.
func NewContainer() (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	c := &Container{Settings: settings}
	if err := c.rebuild(); err != nil {
		return nil, err
	}
	return c, nil
}

// Overrides carries command-line settings. Nil fields keep the
// configured value.
type Overrides struct {
	ConfigPath *string
	Host       *string
	Mode       *string
	MayaBin    *string
	Timeout    *time.Duration
	Restore    *bool
	Verbose    bool
}

// Apply overlays command-line overrides and rebuilds the affected
// components.
func (c *Container) Apply(o Overrides) error {
	if o.ConfigPath != nil {
		settings, err := config.LoadFrom(*o.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		c.Settings = settings
	}
	if o.Host != nil {
		c.Settings.Host = *o.Host
	}
	if o.Mode != nil {
		c.Settings.Mode = *o.Mode
	}
	if o.MayaBin != nil {
		c.Settings.MayaBin = *o.MayaBin
	}
	if o.Timeout != nil {
		c.Settings.Timeout = *o.Timeout
	}
	if o.Restore != nil {
		c.Settings.Restore = *o.Restore
	}
	c.verbose = o.Verbose

	if err := c.Settings.Validate(); err != nil {
		return err
	}
	return c.rebuild()
}

// rebuild constructs the logger, transport and services from the current
// settings.
func (c *Container) rebuild() error {
	zc := zap.NewProductionConfig()
	// Keep normal runs quiet; the commands print their own outcomes.
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if c.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.Logger = logger

	restore := c.Settings.Restore
	switch c.Settings.Mode {
	case config.ModePrompt:
		c.Dialer = mayaprompt.NewDialer(c.Settings.MayaBin, c.Settings.Timeout)
		// A fresh interpreter starts from factory state and exits right
		// after the operation; there is nothing to put back.
		restore = false
	default:
		c.Dialer = commandport.NewDialer(c.Settings.Host, c.Settings.Timeout)
	}

	c.Service = services.NewPluginService(c.Dialer, c.Logger, restore)
	c.Presets = presets.NewStore(c.Settings.PresetDir)
	return nil
}

// HealthCheck dials the host once to prove it is reachable.
func (c *Container) HealthCheck(ctx context.Context) error {
	sess, err := c.Dialer.Dial(ctx)
	if err != nil {
		return fmt.Errorf("host unreachable: %w", err)
	}
	return sess.Close()
}

// Shutdown flushes anything still buffered.
func (c *Container) Shutdown(context.Context) error {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return nil
}
