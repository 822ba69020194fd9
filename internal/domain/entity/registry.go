package entity

import "slices"

// Nombres de las listas de cadastros.
const (
	RegistryStores            = "lojas"
	RegistryDescriptions      = "descricoes"
	RegistryProductCategories = "categoriasProdutos"
	RegistryBrands            = "marcas"
)

// Registry agrupa las listas de selección (cadastros): tiendas, descripciones,
// categorías de producto y marcas. No hay unicidad forzada en el almacén.
type Registry struct {
	Stores            []string `json:"lojas"`
	Descriptions      []string `json:"descricoes"`
	ProductCategories []string `json:"categoriasProdutos"`
	Brands            []string `json:"marcas"`
}

// DefaultRegistry devuelve los cadastros iniciales cuando no hay nada guardado.
func DefaultRegistry() *Registry {
	return &Registry{
		Stores:            []string{"Casa", "Trabalho", "Supermercado", "Banco"},
		Descriptions:      []string{"Conta Corrente", "Poupança", "Cartão de Crédito", "Dinheiro"},
		ProductCategories: []string{"Fardo", "Caixa", "Unidade", "Kg", "Lt"},
		Brands:            []string{"Nestlé", "Coca-Cola", "Unilever", "P&G", "Johnson & Johnson"},
	}
}

// HasDescription indica si name existe exactamente en la lista de descripciones.
func (r *Registry) HasDescription(name string) bool {
	return slices.Contains(r.Descriptions, name)
}

// List devuelve la lista indicada; ok=false si el nombre no existe.
func (r *Registry) List(name string) (values []string, ok bool) {
	switch name {
	case RegistryStores:
		return r.Stores, true
	case RegistryDescriptions:
		return r.Descriptions, true
	case RegistryProductCategories:
		return r.ProductCategories, true
	case RegistryBrands:
		return r.Brands, true
	}
	return nil, false
}

// SetList reemplaza la lista indicada; devuelve false si el nombre no existe.
func (r *Registry) SetList(name string, values []string) bool {
	if values == nil {
		values = []string{}
	}
	switch name {
	case RegistryStores:
		r.Stores = values
	case RegistryDescriptions:
		r.Descriptions = values
	case RegistryProductCategories:
		r.ProductCategories = values
	case RegistryBrands:
		r.Brands = values
	default:
		return false
	}
	return true
}
