package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/config"
)

func TestPoolConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.URL = "postgres://u:p@db.internal:5433/courses?sslmode=disable"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 3
	cfg.Database.ConnMaxLifetime = 15 * time.Minute

	pc, err := poolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "courses", pc.ConnConfig.Database)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, 15*time.Minute, pc.MaxConnLifetime)
	assert.NotNil(t, pc.BeforeAcquire)
}

func TestPoolConfigClampsIdleToMax(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.URL = "postgres://u:p@localhost:5432/x"
	cfg.Database.MaxOpenConns = 2
	cfg.Database.MaxIdleConns = 10

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(2), pc.MinConns)
}

func TestPoolConfigRejectsBadURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.URL = "postgres://u:p@localhost:notaport/x"

	_, err := poolConfig(cfg)
	assert.Error(t, err)
}

func TestCloseNil(t *testing.T) {
	var database *PostgresDB
	assert.NotPanics(t, database.Close)
	assert.NotPanics(t, (&PostgresDB{}).Close)
}
