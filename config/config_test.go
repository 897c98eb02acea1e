package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFromTempDir(t, "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "marketplace_settlement", cfg.Database.DBName)
	assert.Equal(t, 7.0, cfg.Settlement.DefaultRatePercent)
	assert.Equal(t, 7, cfg.Settlement.GracePeriodDays)
	assert.Equal(t, 3, cfg.Settlement.ReminderCadenceDays)
	assert.Equal(t, 5, cfg.Settlement.BreakerThreshold)
	assert.Equal(t, 60*time.Second, cfg.Settlement.BreakerResetTimeout)
	assert.Equal(t, "settlement-events", cfg.Kafka.Topic)
	assert.Equal(t, "info", cfg.Log.Level)
}

func loadFromTempDir(t *testing.T, content string) (*Config, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return Load(path)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := loadFromTempDir(t, `
settlement:
  grace_period_days: 14
  default_rate_percent: 10.5
database:
  dbname: settlement_test
`)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Settlement.GracePeriodDays)
	assert.Equal(t, 14*24*time.Hour, cfg.Settlement.GracePeriod())
	assert.Equal(t, 10.5, cfg.Settlement.DefaultRatePercent)
	assert.Equal(t, "settlement_test", cfg.Database.DBName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MKT_DATABASE_HOST", "db.internal")
	t.Setenv("MKT_SETTLEMENT_BREAKER_THRESHOLD", "9")

	cfg, err := loadFromTempDir(t, "")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 9, cfg.Settlement.BreakerThreshold)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "u", Password: "p", DBName: "settlement", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/settlement?sslmode=disable", d.DSN())
}

func TestSettlementConfig_DerivedDurations(t *testing.T) {
	s := SettlementConfig{ReminderCadenceDays: 3, OverdueAlertDays: 7}
	assert.Equal(t, 72*time.Hour, s.ReminderCadence())
	assert.Equal(t, 168*time.Hour, s.OverdueAlertAge())
}
