package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

// RegistryUseCase mantiene las listas de cadastros (lojas, descricoes, categoriasProdutos, marcas).
type RegistryUseCase struct {
	repo repository.RegistryRepository
}

// NewRegistryUseCase construye el caso de uso.
func NewRegistryUseCase(repo repository.RegistryRepository) *RegistryUseCase {
	return &RegistryUseCase{repo: repo}
}

// Get devuelve los cadastros guardados o los valores por defecto.
func (uc *RegistryUseCase) Get(ctx context.Context) (*dto.RegistryResponse, error) {
	reg, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewRegistryResponse(reg), nil
}

// ReplaceList reemplaza una lista completa. Los valores se recortan; vacíos y repetidos se descartan.
func (uc *RegistryUseCase) ReplaceList(ctx context.Context, list string, values []string) (*dto.RegistryResponse, error) {
	reg, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	clean := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(clean, v) {
			continue
		}
		clean = append(clean, v)
	}
	if !reg.SetList(list, clean) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Save(ctx, reg); err != nil {
		return nil, err
	}
	return dto.NewRegistryResponse(reg), nil
}

// AddValue agrega un valor a la lista; si ya existe no se duplica.
func (uc *RegistryUseCase) AddValue(ctx context.Context, list, value string) (*dto.RegistryResponse, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, domain.ErrInvalidInput
	}
	reg, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	values, ok := reg.List(list)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if slices.Contains(values, value) {
		return dto.NewRegistryResponse(reg), nil
	}
	reg.SetList(list, append(slices.Clone(values), value))
	if err := uc.repo.Save(ctx, reg); err != nil {
		return nil, err
	}
	return dto.NewRegistryResponse(reg), nil
}

// RemoveValue quita un valor de la lista; domain.ErrNotFound si no estaba.
func (uc *RegistryUseCase) RemoveValue(ctx context.Context, list, value string) (*dto.RegistryResponse, error) {
	reg, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	values, ok := reg.List(list)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	idx := slices.Index(values, strings.TrimSpace(value))
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	reg.SetList(list, slices.Delete(slices.Clone(values), idx, idx+1))
	if err := uc.repo.Save(ctx, reg); err != nil {
		return nil, err
	}
	return dto.NewRegistryResponse(reg), nil
}
