package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	config, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 0, config.HealthcheckPort)
}

func TestNewConfig_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	config, err := NewConfig(Config{LogFormat: "json", LogLevel: "debug", HealthcheckPort: 8080})
	require.NoError(t, err)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 8080, config.HealthcheckPort)
}

func TestNewConfig_RejectsNegativePort(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{HealthcheckPort: -1})
	require.Error(t, err)
	assert.ErrorContains(t, err, "must not be negative")
}
