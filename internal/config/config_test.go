package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("API_KEYS", "k1,k2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, []string{"k1", "k2"}, cfg.APIKeys)
	assert.Equal(t, 26.629307, cfg.BaseLatitude)
	assert.Equal(t, 87.982475, cfg.BaseLongitude)
	assert.Equal(t, 0.0045, cfg.ClusterThresholdDeg)
	assert.Equal(t, 5*time.Second, cfg.RoutingTimeout)
	assert.Zero(t, cfg.RouteCacheTTL)
	assert.Zero(t, cfg.DetectInterval)
}

func TestLoadConfig_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfig_RejectsInvalidBase(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BASE_LATITUDE", "123")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dispatch base")
}

func TestLoadConfig_UnknownStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown STORAGE_DRIVER")
}
