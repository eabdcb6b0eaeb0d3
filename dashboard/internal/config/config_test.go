package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, "lexical", cfg.View.QuantityOrdering)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, "kubernetes_manager_data", cfg.Export.BaseName)
	assert.Equal(t, "xlsx", cfg.Export.Format)
	assert.True(t, cfg.Export.Timestamp)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("KUBEDASH_SERVER_PORT", "9090")
	t.Setenv("KUBEDASH_SERVER_ALLOWED_ORIGINS", "http://localhost:3000,https://dash.example.com")
	t.Setenv("KUBEDASH_LOGGING_DEV", "true")
	t.Setenv("KUBEDASH_VIEW_QUANTITY_ORDERING", "numeric")
	t.Setenv("KUBEDASH_EXPORT_FORMAT", "yaml")
	t.Setenv("KUBEDASH_EXPORT_TIMESTAMP", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://dash.example.com"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "numeric", cfg.View.QuantityOrdering)
	assert.Equal(t, "yaml", cfg.Export.Format)
	assert.False(t, cfg.Export.Timestamp)

	LogConfig(zaptest.NewLogger(t), cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"ordering", "KUBEDASH_VIEW_QUANTITY_ORDERING", "alphabetical"},
		{"format", "KUBEDASH_EXPORT_FORMAT", "csv"},
		{"port", "KUBEDASH_SERVER_PORT", "70000"},
		{"base name", "KUBEDASH_EXPORT_BASE_NAME", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadConfig_Unparsable(t *testing.T) {
	t.Setenv("KUBEDASH_SERVER_READ_TIMEOUT", "soon")
	_, err := LoadConfig()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}
