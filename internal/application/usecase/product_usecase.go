package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/inventory"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

const (
	codePrefix = "PRD"
	codeSpace  = 1_000_000
)

// TxRunner ejecuta una función dentro de una transacción del almacén.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}

// ProductUseCase casos de uso CRUD para compras de producto.
// Los derivados se recalculan en cada alta o edición; la cantidad de salida solo cambia vía salidas.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
	now      func() time.Time
	// createMu serializa la generación de código y el alta dentro del proceso.
	createMu sync.Mutex
}

// NewProductUseCase construye el caso de uso. Las altas corren dentro de txRunner.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, now: time.Now}
}

// WithClock reemplaza el reloj usado para generar códigos (tests).
func (uc *ProductUseCase) WithClock(now func() time.Time) *ProductUseCase {
	uc.now = now
	return uc
}

// Create registra una compra: genera el código y aplica el ledger con salida cero.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &entity.Product{
		ID:           uuid.New().String(),
		PurchaseDate: strings.TrimSpace(in.PurchaseDate),
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.TrimSpace(in.Category),
		Brand:        strings.TrimSpace(in.Brand),
		Description:  strings.TrimSpace(in.Description),
		ExpiryDate:   strings.TrimSpace(in.ExpiryDate),
		PurchasedQty: in.PurchasedQty,
		UnitPrice:    in.UnitPrice,
		Discount:     in.Discount,
		ShippedQty:   decimal.Zero,
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if err := inventory.ApplyLedger(p); err != nil {
		return nil, err
	}

	uc.createMu.Lock()
	defer uc.createMu.Unlock()
	err := uc.txRunner.Run(ctx, func(repos repository.Repositories) error {
		code, err := nextCode(ctx, repos.Products, uc.now())
		if err != nil {
			return err
		}
		p.Code = code
		return repos.Products.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(p), nil
}

// GetByCode obtiene un producto por su código PRD.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(p), nil
}

// Update aplica los campos presentes y recalcula los derivados con la salida acumulada guardada.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.PurchaseDate != nil {
		p.PurchaseDate = strings.TrimSpace(*in.PurchaseDate)
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Brand != nil {
		p.Brand = strings.TrimSpace(*in.Brand)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.ExpiryDate != nil {
		p.ExpiryDate = strings.TrimSpace(*in.ExpiryDate)
	}
	if in.PurchasedQty != nil {
		p.PurchasedQty = *in.PurchasedQty
	}
	if in.UnitPrice != nil {
		p.UnitPrice = *in.UnitPrice
	}
	if in.Discount != nil {
		p.Discount = *in.Discount
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if err := inventory.ApplyLedger(p); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(p), nil
}

// Delete elimina un producto. Sus salidas y transacciones generadas se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista productos filtrados en el orden de alta.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	code := strings.ToLower(strings.TrimSpace(f.Code))
	name := strings.ToLower(strings.TrimSpace(f.Name))
	brand := strings.ToLower(strings.TrimSpace(f.Brand))

	filtered := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if code != "" && !strings.Contains(strings.ToLower(p.Code), code) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(p.Brand), brand) {
			continue
		}
		if f.PurchaseDate != "" && p.PurchaseDate != f.PurchaseDate {
			continue
		}
		if f.ExpiryDate != "" && p.ExpiryDate != f.ExpiryDate {
			continue
		}
		if f.InStockOnly && !p.InStock() {
			continue
		}
		filtered = append(filtered, p)
	}
	return dto.NewProductListResponse(filtered), nil
}

// RecomputeAll vuelve a aplicar el ledger a todos los productos guardados.
// Devuelve cuántos productos cambiaron de valores.
func (uc *ProductUseCase) RecomputeAll(ctx context.Context) (int, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, p := range list {
		before := *p
		if err := inventory.ApplyLedger(p); err != nil {
			return changed, fmt.Errorf("producto %s: %w", p.Code, err)
		}
		if sameDerived(&before, p) {
			continue
		}
		if err := uc.repo.Update(ctx, p); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

// nextCode genera PRD + últimos 6 dígitos del epoch en ms; ante colisión incrementa el sufijo.
func nextCode(ctx context.Context, repo repository.ProductRepository, now time.Time) (string, error) {
	list, err := repo.List(ctx)
	if err != nil {
		return "", err
	}
	used := make(map[string]struct{}, len(list))
	for _, p := range list {
		used[p.Code] = struct{}{}
	}
	n := now.UnixMilli() % codeSpace
	for i := 0; i < codeSpace; i++ {
		code := codePrefix + fmt.Sprintf("%06d", (n+int64(i))%codeSpace)
		if _, taken := used[code]; !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("códigos de producto agotados: %w", domain.ErrInvalidInput)
}

func validateProduct(p *entity.Product) error {
	if p.Name == "" {
		return domain.ErrInvalidInput
	}
	if p.PurchasedQty.LessThan(decimal.NewFromInt(1)) {
		return domain.ErrInvalidInput
	}
	if p.UnitPrice.IsNegative() || p.Discount.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func sameDerived(a, b *entity.Product) bool {
	return a.Status == b.Status &&
		a.TotalPrice.Equal(b.TotalPrice) &&
		a.UnitDiscount.Equal(b.UnitDiscount) &&
		a.DiscountedUnitPrice.Equal(b.DiscountedUnitPrice) &&
		a.DiscountedTotal.Equal(b.DiscountedTotal) &&
		a.RemainingQty.Equal(b.RemainingQty) &&
		a.ShippedValue.Equal(b.ShippedValue) &&
		a.RemainingValue.Equal(b.RemainingValue)
}

