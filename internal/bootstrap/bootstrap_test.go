package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/bootstrap"
	"github.com/jhoicas/gestfinance-api/pkg/config"
)

func sqliteConfig(schedule string) *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "gestfinance-test", Env: "test"},
		Store:  config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
		Backup: config.BackupConfig{Dir: "", Schedule: schedule},
	}
}

func TestNew_SQLiteEnMemoria(t *testing.T) {
	app, err := bootstrap.New(context.Background(), sqliteConfig(""), nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.BackupRunner)
	reg, err := app.Registry.Get(context.Background())
	require.NoError(t, err)
	assert.Contains(t, reg.Stores, "Casa")
}

func TestNew_ConProgramacionDeBackups(t *testing.T) {
	cfg := sqliteConfig("@daily")
	cfg.Backup.Dir = t.TempDir()
	app, err := bootstrap.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.BackupRunner)
	path, err := app.BackupRunner.RunOnce(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestNew_ProgramacionInvalida(t *testing.T) {
	_, err := bootstrap.New(context.Background(), sqliteConfig("cada dia"), nil)
	assert.Error(t, err)
}

func TestNew_DriverDesconocido(t *testing.T) {
	cfg := sqliteConfig("")
	cfg.Store.Driver = "mongo"
	_, err := bootstrap.New(context.Background(), cfg, nil)
	assert.Error(t, err)
}
