package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain"
)

// GetMovement obtiene una salida por ID.
func (uc *OutboundUseCase) GetMovement(ctx context.Context, id string) (*dto.OutboundMovementResponse, error) {
	m, err := uc.repos.Movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewOutboundMovementResponse(m), nil
}

// ListMovements lista las salidas filtradas por código, nombre (subcadena) y fecha exacta.
func (uc *OutboundUseCase) ListMovements(ctx context.Context, f dto.OutboundFilter) (*dto.OutboundListResponse, error) {
	list, err := uc.repos.Movements.List(ctx)
	if err != nil {
		return nil, err
	}
	code := strings.ToLower(strings.TrimSpace(f.ProductCode))
	name := strings.ToLower(strings.TrimSpace(f.ProductName))

	items := make([]dto.OutboundMovementResponse, 0, len(list))
	for _, m := range list {
		if code != "" && !strings.Contains(strings.ToLower(m.ProductCode), code) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(m.ProductName), name) {
			continue
		}
		if f.Date != "" && m.Date != f.Date {
			continue
		}
		items = append(items, *dto.NewOutboundMovementResponse(m))
	}
	return &dto.OutboundListResponse{Items: items, Total: len(items)}, nil
}

// UpdateMovement cambia fecha y locales de una salida. La cantidad y el producto no se reajustan.
func (uc *OutboundUseCase) UpdateMovement(ctx context.Context, id string, in dto.UpdateOutboundRequest) (*dto.OutboundMovementResponse, error) {
	m, err := uc.repos.Movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		if strings.TrimSpace(*in.Date) == "" {
			return nil, domain.ErrInvalidInput
		}
		m.Date = strings.TrimSpace(*in.Date)
	}
	if in.Origin != nil {
		m.Origin = strings.TrimSpace(*in.Origin)
		m.Location = m.Origin
	}
	if in.Destination != nil {
		m.Destination = strings.TrimSpace(*in.Destination)
	}
	if err := uc.repos.Movements.Update(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewOutboundMovementResponse(m), nil
}

// DeleteMovement elimina una salida sin revertir stock ni la transacción generada.
func (uc *OutboundUseCase) DeleteMovement(ctx context.Context, id string) error {
	return uc.repos.Movements.Delete(ctx, id)
}

