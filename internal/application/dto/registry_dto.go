package dto

import "github.com/jhoicas/gestfinance-api/internal/domain/entity"

// RegistryResponse salida de GET /api/registry.
type RegistryResponse struct {
	Stores            []string `json:"stores"`
	Descriptions      []string `json:"descriptions"`
	ProductCategories []string `json:"product_categories"`
	Brands            []string `json:"brands"`
}

// ReplaceRegistryListRequest body para PUT /api/registry/:list.
type ReplaceRegistryListRequest struct {
	Values []string `json:"values"`
}

// RegistryValueRequest body para POST /api/registry/:list.
type RegistryValueRequest struct {
	Value string `json:"value"`
}

// NewRegistryResponse mapea los cadastros a la respuesta.
func NewRegistryResponse(r *entity.Registry) *RegistryResponse {
	return &RegistryResponse{
		Stores:            nonNil(r.Stores),
		Descriptions:      nonNil(r.Descriptions),
		ProductCategories: nonNil(r.ProductCategories),
		Brands:            nonNil(r.Brands),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
