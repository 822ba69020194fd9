// Package backup exporta e importa el contenido completo del almacén de registros
// en el formato JSON de copia de seguridad (transacoes, produtos, saidasProdutos, cadastros).
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
	"github.com/jhoicas/gestfinance-api/pkg/logger"
)

// Version versión del formato de backup.
const Version = "1.0"

// TxRunner ejecuta una función dentro de una transacción del almacén.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}

// Data documento de backup. Las colecciones son punteros para distinguir ausente/null de vacío.
type Data struct {
	Transactions *[]entity.Transaction      `json:"transacoes"`
	Products     *[]entity.Product          `json:"produtos"`
	Movements    *[]entity.OutboundMovement `json:"saidasProdutos"`
	Registry     *entity.Registry           `json:"cadastros"`
	BackupDate   string                     `json:"dataBackup"`
	Version      string                     `json:"versao"`
}

// Validate exige las cuatro colecciones.
func (d *Data) Validate() error {
	if d == nil || d.Transactions == nil || d.Products == nil || d.Movements == nil || d.Registry == nil {
		return domain.ErrInvalidBackupStructure
	}
	return nil
}

// Summary cantidades restauradas por una importación.
type Summary struct {
	Transactions int
	Products     int
	Movements    int
	BackupDate   string
}

// Service exporta e importa backups.
type Service struct {
	store    repository.RecordStore
	txRunner TxRunner
	now      func() time.Time
	log      *logger.Logger
}

// NewService construye el servicio. store se usa para la lectura completa del export.
func NewService(store repository.RecordStore, txRunner TxRunner, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: store, txRunner: txRunner, now: time.Now, log: log.Component("backup")}
}

// WithClock reemplaza el reloj usado para dataBackup (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Export lee todos los registros y los separa por tipo.
// Si hay más de un registro de cadastros gana el último; sin ninguno se exportan los valores por defecto.
func (s *Service) Export(ctx context.Context) (*Data, error) {
	recs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	txs := make([]entity.Transaction, 0)
	products := make([]entity.Product, 0)
	movements := make([]entity.OutboundMovement, 0)
	var registry *entity.Registry

	for _, rec := range recs {
		switch rec.Kind {
		case entity.RecordTransaction:
			var t entity.Transaction
			if err := decode(rec, &t); err != nil {
				return nil, err
			}
			txs = append(txs, t)
		case entity.RecordProduct:
			var p entity.Product
			if err := decode(rec, &p); err != nil {
				return nil, err
			}
			products = append(products, p)
		case entity.RecordOutbound:
			var m entity.OutboundMovement
			if err := decode(rec, &m); err != nil {
				return nil, err
			}
			movements = append(movements, m)
		case entity.RecordRegistry:
			var r entity.Registry
			if err := decode(rec, &r); err != nil {
				return nil, err
			}
			registry = &r
		default:
			s.log.Warn().Str("tipo", rec.Kind).Int64("id", rec.ID).Msg("registro de tipo desconocido omitido")
		}
	}
	if registry == nil {
		registry = entity.DefaultRegistry()
	}

	return &Data{
		Transactions: &txs,
		Products:     &products,
		Movements:    &movements,
		Registry:     registry,
		BackupDate:   s.now().UTC().Format(time.RFC3339),
		Version:      Version,
	}, nil
}

// Import valida el documento, vacía el almacén y reescribe las cuatro colecciones en una sola transacción.
func (s *Service) Import(ctx context.Context, data *Data) (*Summary, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	err := s.txRunner.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Records.Clear(ctx); err != nil {
			return err
		}
		for i := range *data.Transactions {
			t := &(*data.Transactions)[i]
			if t.ID == "" {
				t.ID = uuid.New().String()
			}
			if err := repos.Transactions.Create(ctx, t); err != nil {
				return err
			}
		}
		for i := range *data.Products {
			p := &(*data.Products)[i]
			if p.ID == "" {
				p.ID = uuid.New().String()
			}
			if err := repos.Products.Create(ctx, p); err != nil {
				return err
			}
		}
		for i := range *data.Movements {
			m := &(*data.Movements)[i]
			if m.ID == "" {
				m.ID = uuid.New().String()
			}
			if err := repos.Movements.Create(ctx, m); err != nil {
				return err
			}
		}
		return repos.Registry.Save(ctx, data.Registry)
	})
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Transactions: len(*data.Transactions),
		Products:     len(*data.Products),
		Movements:    len(*data.Movements),
		BackupDate:   data.BackupDate,
	}
	s.log.Info().
		Int("transacoes", sum.Transactions).
		Int("produtos", sum.Products).
		Int("saidas", sum.Movements).
		Str("data_backup", sum.BackupDate).
		Msg("backup importado")
	return sum, nil
}

// Encode escribe el documento como JSON indentado.
func Encode(w io.Writer, data *Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("codificar backup: %w", err)
	}
	return nil
}

// Decode lee y valida un documento de backup. JSON mal formado o colecciones ausentes
// devuelven domain.ErrInvalidBackupStructure.
func Decode(r io.Reader) (*Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrInvalidBackupStructure
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackupStructure, err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

func decode(rec *entity.Record, v any) error {
	if err := json.Unmarshal(rec.Payload, v); err != nil {
		return fmt.Errorf("decodificar %s #%d: %w", rec.Kind, rec.ID, err)
	}
	return nil
}
