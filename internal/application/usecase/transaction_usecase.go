package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
	"github.com/jhoicas/gestfinance-api/pkg/ptbr"
)

// TransactionUseCase casos de uso CRUD para lanzamientos financieros.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create registra una transacción de crédito o débito.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	t := &entity.Transaction{
		ID:          uuid.New().String(),
		Date:        strings.TrimSpace(in.Date),
		Store:       strings.TrimSpace(in.Store),
		Category:    strings.TrimSpace(in.Category),
		Note:        strings.TrimSpace(in.Note),
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		Value:       in.Value,
	}
	if err := validateTransaction(t); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return dto.NewTransactionResponse(t), nil
}

// GetByID obtiene una transacción por ID.
func (uc *TransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewTransactionResponse(t), nil
}

// Update aplica los campos presentes y valida el resultado completo.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		t.Date = strings.TrimSpace(*in.Date)
	}
	if in.Store != nil {
		t.Store = strings.TrimSpace(*in.Store)
	}
	if in.Category != nil {
		t.Category = strings.TrimSpace(*in.Category)
	}
	if in.Note != nil {
		t.Note = strings.TrimSpace(*in.Note)
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Quantity != nil {
		t.Quantity = *in.Quantity
	}
	if in.Value != nil {
		t.Value = *in.Value
	}
	if err := validateTransaction(t); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return dto.NewTransactionResponse(t), nil
}

// Delete elimina una transacción por ID.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista transacciones filtradas, ordenadas por descripción.
func (uc *TransactionUseCase) List(ctx context.Context, f dto.TransactionFilter) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	store := strings.ToLower(strings.TrimSpace(f.Store))
	desc := strings.ToLower(strings.TrimSpace(f.Description))
	value := strings.TrimSpace(f.Value)

	filtered := make([]*entity.Transaction, 0, len(list))
	for _, t := range list {
		if f.Date != "" && t.Date != f.Date {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if store != "" && !strings.Contains(strings.ToLower(t.Store), store) {
			continue
		}
		if desc != "" && !strings.Contains(strings.ToLower(t.Description), desc) {
			continue
		}
		if value != "" && !strings.Contains(t.Value.String(), value) {
			continue
		}
		filtered = append(filtered, t)
	}

	col := ptbr.NewCollator()
	slices.SortStableFunc(filtered, func(a, b *entity.Transaction) int {
		return col.CompareString(a.Description, b.Description)
	})

	items := make([]dto.TransactionResponse, 0, len(filtered))
	for _, t := range filtered {
		items = append(items, *dto.NewTransactionResponse(t))
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}, nil
}

func validateTransaction(t *entity.Transaction) error {
	if t.Date == "" || t.Store == "" || t.Description == "" {
		return domain.ErrInvalidInput
	}
	if !entity.IsValidCategory(t.Category) {
		return domain.ErrInvalidInput
	}
	if !t.Quantity.GreaterThan(decimal.Zero) || t.Value.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}
