package scheduler_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/application/backup"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/scheduler"
)

type fakeExporter struct{ err error }

func (f fakeExporter) Export(context.Context) (*backup.Data, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &backup.Data{
		Transactions: &[]entity.Transaction{},
		Products:     &[]entity.Product{},
		Movements:    &[]entity.OutboundMovement{},
		Registry:     entity.DefaultRegistry(),
		Version:      backup.Version,
	}, nil
}

func TestNewBackupScheduler_ExpresionInvalida(t *testing.T) {
	_, err := scheduler.NewBackupScheduler("cada hora", t.TempDir(), fakeExporter{}, nil)
	assert.Error(t, err)
}

func TestRunOnce_GuardaArchivo(t *testing.T) {
	dir := t.TempDir()
	s, err := scheduler.NewBackupScheduler("@daily", dir, fakeExporter{}, nil)
	require.NoError(t, err)

	path, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRunOnce_PropagaErrorDelExport(t *testing.T) {
	boom := errors.New("almacén caído")
	s, err := scheduler.NewBackupScheduler("@every 1h", t.TempDir(), fakeExporter{err: boom}, nil)
	require.NoError(t, err)

	_, err = s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStartStop(t *testing.T) {
	s, err := scheduler.NewBackupScheduler("@every 1h", t.TempDir(), fakeExporter{}, nil)
	require.NoError(t, err)
	s.Start()
	s.Stop()
}
