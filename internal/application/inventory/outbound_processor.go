package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/inventory"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
	"github.com/jhoicas/gestfinance-api/pkg/logger"
)

// DefaultDestination nombre usado en la nota cuando la salida no tiene local de llegada.
const DefaultDestination = "Destino"

// OutboundUseCase registra salidas de producto de forma transaccional:
// movimiento, producto recalculado y transacción de débito en una sola tx.
type OutboundUseCase struct {
	txRunner TxRunner
	repos    repository.Repositories
	log      *logger.Logger
}

// NewOutboundUseCase construye el caso de uso. repos se usa para las lecturas fuera de tx.
func NewOutboundUseCase(txRunner TxRunner, repos repository.Repositories, log *logger.Logger) *OutboundUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OutboundUseCase{txRunner: txRunner, repos: repos, log: log.Component("outbound")}
}

// OutboundInput entrada del procesador de salidas.
type OutboundInput struct {
	Date        string // YYYY-MM-DD; vacío = hoy
	Origin      string
	Destination string
	ProductCode string
	Quantity    decimal.Decimal
}

// OutboundResult resultado de una salida procesada.
// Product y Transaction son nil cuando el código no corresponde a ningún producto.
type OutboundResult struct {
	Movement    *entity.OutboundMovement
	Product     *entity.Product
	Transaction *entity.Transaction
}

// Process ejecuta la salida sin las validaciones de formulario: un código desconocido
// registra solo el movimiento y la cantidad no se compara con el stock.
func (uc *OutboundUseCase) Process(ctx context.Context, in OutboundInput) (*OutboundResult, error) {
	return uc.process(ctx, in, false)
}

func (uc *OutboundUseCase) process(ctx context.Context, in OutboundInput, guarded bool) (*OutboundResult, error) {
	if in.Date == "" {
		in.Date = time.Now().Format(time.DateOnly)
	}

	var result *OutboundResult
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		product, err := repos.Products.GetByCode(ctx, in.ProductCode)
		if err != nil {
			return err
		}
		if product == nil && guarded {
			return fmt.Errorf("producto %s: %w", in.ProductCode, domain.ErrNotFound)
		}
		if product != nil && guarded && in.Quantity.GreaterThan(product.RemainingQty) {
			return fmt.Errorf("salida de %s con stock %s: %w", in.Quantity, product.RemainingQty, domain.ErrInsufficientStock)
		}

		if product != nil {
			registry, err := repos.Registry.Get(ctx)
			if err != nil {
				return err
			}
			if !registry.HasDescription(product.Name) {
				return &domain.MissingRegistryEntryError{ProductName: product.Name}
			}
		}

		movement := newMovement(in, product)
		if err := repos.Movements.Create(ctx, movement); err != nil {
			return err
		}
		result = &OutboundResult{Movement: movement}
		if product == nil {
			return nil
		}

		product.ShippedQty = product.ShippedQty.Add(movement.Quantity)
		if err := inventory.ApplyLedger(product); err != nil {
			return err
		}
		if err := repos.Products.Update(ctx, product); err != nil {
			return err
		}

		debit := newDebitTransaction(movement)
		if err := repos.Transactions.Create(ctx, debit); err != nil {
			return err
		}
		result.Product = product
		result.Transaction = debit
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := uc.log.Info().
		Str("movement_id", result.Movement.ID).
		Str("product_code", in.ProductCode).
		Str("quantity", in.Quantity.String())
	if result.Product != nil {
		ev = ev.Str("remaining", result.Product.RemainingQty.String()).Str("status", result.Product.Status)
	}
	ev.Msg("salida registrada")
	return result, nil
}

func newMovement(in OutboundInput, product *entity.Product) *entity.OutboundMovement {
	m := &entity.OutboundMovement{
		ID:          uuid.New().String(),
		Date:        in.Date,
		Location:    in.Origin,
		Origin:      in.Origin,
		Destination: in.Destination,
		ProductCode: in.ProductCode,
		Quantity:    in.Quantity,
		UnitPrice:   decimal.Zero,
		Total:       decimal.Zero,
	}
	if product != nil {
		m.ProductName = product.Name
		m.ExpiryDate = product.ExpiryDate
		m.UnitPrice = product.DiscountedUnitPrice
		m.Total = product.DiscountedUnitPrice.Mul(in.Quantity)
	}
	return m
}

func newDebitTransaction(m *entity.OutboundMovement) *entity.Transaction {
	dest := m.Destination
	if dest == "" {
		dest = DefaultDestination
	}
	return &entity.Transaction{
		ID:          uuid.New().String(),
		Date:        m.Date,
		Store:       m.OriginLocation(),
		Category:    entity.CategoryDebit,
		Note:        fmt.Sprintf("Saída de produto do %s para %s", m.OriginLocation(), dest),
		Description: m.ProductName,
		Quantity:    m.Quantity,
		Value:       m.Total,
	}
}
