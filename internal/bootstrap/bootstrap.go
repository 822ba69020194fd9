// Package bootstrap arma los casos de uso sobre el almacén elegido por configuración.
// La API HTTP y la CLI comparten este mismo grafo de dependencias.
package bootstrap

import (
	"context"
	"fmt"

	appanalytics "github.com/jhoicas/gestfinance-api/internal/application/analytics"
	"github.com/jhoicas/gestfinance-api/internal/application/backup"
	"github.com/jhoicas/gestfinance-api/internal/application/inventory"
	"github.com/jhoicas/gestfinance-api/internal/application/usecase"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/gestfinance-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/records"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/gestfinance-api/pkg/config"
	"github.com/jhoicas/gestfinance-api/pkg/logger"
)

// txRunner satisface los puertos de inventory y backup.
type txRunner interface {
	inventory.TxRunner
	backup.TxRunner
}

// App casos de uso listos para usar y el cierre del almacén.
type App struct {
	Config       *config.Config
	Log          *logger.Logger
	Store        repository.RecordStore
	Transactions *usecase.TransactionUseCase
	Products     *usecase.ProductUseCase
	Registry     *usecase.RegistryUseCase
	Outbound     *inventory.OutboundUseCase
	Backup       *backup.Service
	Dashboard    *appanalytics.DashboardUseCase
	Reports      *appanalytics.ReportUseCase
	Showcase     *appanalytics.ShowcaseUseCase
	BackupRunner *scheduler.BackupScheduler
	closers      []func()
}

// New abre el almacén (sqlite o postgres) y construye los casos de uso.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	var (
		store  repository.RecordStore
		runner txRunner
		closer func()
	)

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		store, runner, closer = postgres.NewRecordStore(pool), postgres.NewTxRunner(pool), pool.Close
	case config.DriverSQLite, "":
		db, err := sqlite.Open(cfg.Store.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		store, runner = sqlite.NewRecordStore(db), sqlite.NewTxRunner(db)
		closer = func() {
			if err := sqlite.Close(db); err != nil {
				log.Error().Err(err).Msg("cerrar sqlite")
			}
		}
	default:
		return nil, fmt.Errorf("bootstrap: driver de almacén desconocido %q", cfg.Store.Driver)
	}

	log.Info().Str("driver", cfg.Store.Driver).Msg("almacén de registros abierto")

	repos := records.NewRepositories(store)
	backupSvc := backup.NewService(store, runner, log)
	app := &App{
		Config:       cfg,
		Log:          log,
		Store:        store,
		Transactions: usecase.NewTransactionUseCase(repos.Transactions),
		Products:     usecase.NewProductUseCase(repos.Products, runner),
		Registry:     usecase.NewRegistryUseCase(repos.Registry),
		Outbound:     inventory.NewOutboundUseCase(runner, repos, log),
		Backup:       backupSvc,
		Dashboard:    appanalytics.NewDashboardUseCase(repos.Transactions, repos.Products),
		Reports:      appanalytics.NewReportUseCase(repos.Transactions, infrapdf.NewMarotoPDFGenerator(cfg.App.Name)),
		Showcase:     appanalytics.NewShowcaseUseCase(repos.Products),
		closers:      []func(){closer},
	}

	if cfg.Backup.Schedule != "" {
		sched, err := scheduler.NewBackupScheduler(cfg.Backup.Schedule, cfg.Backup.Dir, backupSvc, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.BackupRunner = sched
	}
	return app, nil
}

// Close detiene el programador de backups y cierra el almacén.
func (a *App) Close() {
	if a.BackupRunner != nil {
		a.BackupRunner.Stop()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
