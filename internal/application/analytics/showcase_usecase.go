package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

// DefaultShowcaseTitle título de la vitrine cuando no se indica otro.
const DefaultShowcaseTitle = "Vitrine da Fábrica"

// ShowcaseUseCase arma la vitrine de productos con su valor en stock.
type ShowcaseUseCase struct {
	products repository.ProductRepository
	now      func() time.Time
}

// NewShowcaseUseCase construye el caso de uso.
func NewShowcaseUseCase(products repository.ProductRepository) *ShowcaseUseCase {
	return &ShowcaseUseCase{products: products, now: time.Now}
}

// WithClock reemplaza el reloj usado para marcar vencimientos próximos (tests).
func (uc *ShowcaseUseCase) WithClock(now func() time.Time) *ShowcaseUseCase {
	uc.now = now
	return uc
}

// Get filtra por nombre, marca, categoría y situación; suma el valor en stock de los filtrados.
func (uc *ShowcaseUseCase) Get(ctx context.Context, f dto.ShowcaseFilter) (*dto.ShowcaseDTO, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(strings.TrimSpace(f.Name))
	brand := strings.ToLower(strings.TrimSpace(f.Brand))
	category := strings.ToLower(strings.TrimSpace(f.Category))
	status := strings.TrimSpace(f.Status)
	now := uc.now()

	out := &dto.ShowcaseDTO{
		Title:          strings.TrimSpace(f.Title),
		Items:          make([]dto.ShowcaseItemDTO, 0),
		RemainingValue: decimal.Zero,
	}
	if out.Title == "" {
		out.Title = DefaultShowcaseTitle
	}

	for _, p := range list {
		if p.Status == entity.StatusInStock {
			out.InStockCount++
		} else {
			out.OutOfStockCount++
		}

		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(p.Brand), brand) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		_, soon := expiringSoon(p.ExpiryDate, now)
		out.Items = append(out.Items, dto.ShowcaseItemDTO{
			ProductResponse: *dto.NewProductResponse(p),
			ExpiringSoon:    soon,
		})
		out.RemainingValue = out.RemainingValue.Add(p.RemainingValue)
	}
	return out, nil
}
