package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Prefix is the environment variable prefix for all settings
const Prefix = "KUBEDASH"

// ErrInvalidConfig is returned when a setting is outside its allowed values
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the dashboard
type Config struct {
	// Server settings
	Server ServerConfig `envconfig:"SERVER"`

	// Logging settings
	Logging LoggingConfig `envconfig:"LOGGING"`

	// Table view settings
	View ViewConfig `envconfig:"VIEW"`

	// Export settings
	Export ExportConfig `envconfig:"EXPORT"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

// Addr is the listen address for the configured port
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Development bool `envconfig:"DEV" default:"false"` // Whether to use development logger (more verbose)
}

// ViewConfig contains workload table configuration
type ViewConfig struct {
	// QuantityOrdering is "lexical" (raw string order) or "numeric"
	QuantityOrdering string `envconfig:"QUANTITY_ORDERING" default:"lexical"`
}

// ExportConfig contains snapshot export configuration
type ExportConfig struct {
	Dir       string `envconfig:"DIR" default:"."`
	BaseName  string `envconfig:"BASE_NAME" default:"kubernetes_manager_data"`
	Format    string `envconfig:"FORMAT" default:"xlsx"`
	Timestamp bool   `envconfig:"TIMESTAMP" default:"true"`
}

// Module provides configuration to the fx container
var Module = fx.Options(
	fx.Provide(LoadConfig),
)

// LoadConfig loads configuration from environment variables using envconfig
func LoadConfig() (*Config, error) {
	var config Config

	if err := envconfig.Process(Prefix, &config); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks enumerated and ranged settings
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	switch strings.ToLower(c.View.QuantityOrdering) {
	case "lexical", "numeric":
	default:
		return fmt.Errorf("%w: quantity ordering %q (want lexical or numeric)", ErrInvalidConfig, c.View.QuantityOrdering)
	}
	switch strings.ToLower(c.Export.Format) {
	case "xlsx", "yaml":
	default:
		return fmt.Errorf("%w: export format %q (want xlsx or yaml)", ErrInvalidConfig, c.Export.Format)
	}
	if strings.TrimSpace(c.Export.BaseName) == "" {
		return fmt.Errorf("%w: export base name is empty", ErrInvalidConfig)
	}
	return nil
}

// LogConfig writes the effective configuration at info level
func LogConfig(logger *zap.Logger, config *Config) {
	logger.Info("Dashboard configuration",
		zap.Int("port", config.Server.Port),
		zap.Duration("readTimeout", config.Server.ReadTimeout),
		zap.Duration("writeTimeout", config.Server.WriteTimeout),
		zap.Duration("shutdownTimeout", config.Server.ShutdownTimeout),
		zap.Strings("allowedOrigins", config.Server.AllowedOrigins),
		zap.Bool("development", config.Logging.Development),
		zap.String("quantityOrdering", config.View.QuantityOrdering),
		zap.String("exportDir", config.Export.Dir),
		zap.String("exportFormat", config.Export.Format),
	)
}
