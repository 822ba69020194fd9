// Package sqlite implementa el almacén de registros local sobre SQLite (gorm + driver puro Go).
package sqlite

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/pkg/logger"
)

// recordModel fila de la tabla registros.
type recordModel struct {
	ID         int64          `gorm:"primaryKey;autoIncrement"`
	Kind       string         `gorm:"column:tipo;size:20;not null;index:idx_registros_tipo_chave,priority:1"`
	Key        string         `gorm:"column:chave;size:64;not null;index:idx_registros_tipo_chave,priority:2"`
	Payload    datatypes.JSON `gorm:"column:dados;not null"`
	ModifiedAt time.Time      `gorm:"column:data_modificacao;not null;index"`
}

// TableName fija el nombre de la tabla (gorm pluralizaría a record_models).
func (recordModel) TableName() string { return "registros" }

// Open abre (o crea) la base SQLite en path y migra la tabla registros.
// Usar ":memory:" en tests. Una sola conexión: el almacén tiene un único usuario.
func Open(path string, log *logger.Logger) (*gorm.DB, error) {
	if log == nil {
		log = logger.Nop()
	}
	gl := gormlogger.New(log.Component("gorm"), gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, fmt.Errorf("%w: abrir sqlite %s: %v", domain.ErrStorageUnavailable, path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&recordModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: migrar registros: %v", domain.ErrStorageUnavailable, err)
	}
	return db, nil
}

// Close libera la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
