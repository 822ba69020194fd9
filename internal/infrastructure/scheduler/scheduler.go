// Package scheduler ejecuta las copias de seguridad automáticas con expresiones cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/gestfinance-api/internal/application/backup"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/backupfile"
	"github.com/jhoicas/gestfinance-api/pkg/logger"
)

// Exporter fuente del documento de backup.
type Exporter interface {
	Export(ctx context.Context) (*backup.Data, error)
}

// BackupScheduler escribe un backup en Dir cada vez que se cumple la expresión cron.
type BackupScheduler struct {
	cron     *cron.Cron
	exporter Exporter
	dir      string
	log      *logger.Logger
	timeout  time.Duration
}

// NewBackupScheduler registra el job. spec acepta el formato estándar de 5 campos y descriptores (@daily, @every 6h).
func NewBackupScheduler(spec, dir string, exporter Exporter, log *logger.Logger) (*BackupScheduler, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &BackupScheduler{
		cron:     cron.New(),
		exporter: exporter,
		dir:      dir,
		log:      log.Component("scheduler"),
		timeout:  time.Minute,
	}
	if _, err := s.cron.AddFunc(spec, s.runJob); err != nil {
		return nil, fmt.Errorf("BACKUP_SCHEDULE inválido %q: %w", spec, err)
	}
	return s, nil
}

// Start inicia el scheduler en segundo plano.
func (s *BackupScheduler) Start() {
	s.cron.Start()
	s.log.Info().Str("dir", s.dir).Msg("backups automáticos activos")
}

// Stop detiene el scheduler y espera al job en curso.
func (s *BackupScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *BackupScheduler) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.RunOnce(ctx); err != nil {
		s.log.Error().Err(err).Msg("backup automático falló")
	}
}

// RunOnce exporta y guarda un backup; devuelve la ruta del archivo.
func (s *BackupScheduler) RunOnce(ctx context.Context) (string, error) {
	data, err := s.exporter.Export(ctx)
	if err != nil {
		return "", err
	}
	path, err := backupfile.Save(s.dir, data, time.Now())
	if err != nil {
		return "", err
	}
	s.log.Info().Str("path", path).Int("transacoes", len(*data.Transactions)).Msg("backup automático guardado")
	return path, nil
}
