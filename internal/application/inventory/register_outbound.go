package inventory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain"
)

// RegisterFromRequest adapta el request HTTP al procesador con las validaciones del formulario:
// cantidad positiva, código existente y cantidad no mayor al stock disponible.
func (uc *OutboundUseCase) RegisterFromRequest(ctx context.Context, in dto.RegisterOutboundRequest) (*dto.OutboundResultResponse, error) {
	in.ProductCode = strings.TrimSpace(in.ProductCode)
	in.Origin = strings.TrimSpace(in.Origin)
	if in.ProductCode == "" || in.Origin == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	res, err := uc.process(ctx, OutboundInput{
		Date:        strings.TrimSpace(in.Date),
		Origin:      in.Origin,
		Destination: strings.TrimSpace(in.Destination),
		ProductCode: in.ProductCode,
		Quantity:    in.Quantity,
	}, true)
	if err != nil {
		return nil, err
	}

	out := &dto.OutboundResultResponse{Movement: *dto.NewOutboundMovementResponse(res.Movement)}
	if res.Product != nil {
		out.Product = dto.NewProductResponse(res.Product)
	}
	if res.Transaction != nil {
		out.Transaction = dto.NewTransactionResponse(res.Transaction)
	}
	return out, nil
}
