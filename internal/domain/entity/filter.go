package entity

import "github.com/shopspring/decimal"

// FilterCriteria conjunción de predicados elegidos por el usuario.
// No se valida min <= max: un rango invertido simplemente no deja pasar ningún registro.
type FilterCriteria struct {
	Categories map[string]struct{}
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
	RatingMin  decimal.Decimal
	RatingMax  decimal.Decimal
}

// NewCategorySet construye el conjunto de categorías incluidas.
func NewCategorySet(categories ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}

// Matches evalúa los cuatro predicados. Un rating nulo falla cualquier comparación de rango.
func (f FilterCriteria) Matches(r Record) bool {
	if _, ok := f.Categories[r.ProductCategory]; !ok {
		return false
	}
	if r.Price.LessThan(f.PriceMin) || r.Price.GreaterThan(f.PriceMax) {
		return false
	}
	if !r.ProductRatings.Valid {
		return false
	}
	rating := r.ProductRatings.Decimal
	return !rating.LessThan(f.RatingMin) && !rating.GreaterThan(f.RatingMax)
}
