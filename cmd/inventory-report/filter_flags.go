package main

import (
	"github.com/spf13/pflag"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
)

// filterFlags flags de filtro compartidos por summary y export.
type filterFlags struct {
	categories []string
	priceMin   float64
	priceMax   float64
	ratingMin  float64
	ratingMax  float64
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVar(&f.categories, "category", nil, "categoría a incluir, etiqueta exacta (repetible); sin flag: todas")
	fs.Float64Var(&f.priceMin, "price-min", 0, "precio mínimo")
	fs.Float64Var(&f.priceMax, "price-max", 0, "precio máximo (por defecto el máximo del dataset)")
	fs.Float64Var(&f.ratingMin, "rating-min", 0, "rating mínimo [0,5]")
	fs.Float64Var(&f.ratingMax, "rating-max", 5, "rating máximo [0,5]")
}

// request traduce a FilterRequest; solo los flags explícitos sobrescriben los valores por defecto.
func (f *filterFlags) request(fs *pflag.FlagSet) dto.FilterRequest {
	var req dto.FilterRequest
	if fs.Changed("category") {
		req.CategoriesSet = true
		req.Categories = make([]string, 0, len(f.categories))
		for _, c := range f.categories {
			if c != "" {
				req.Categories = append(req.Categories, c)
			}
		}
	}
	set := func(name string, v float64, dst **float64) {
		if fs.Changed(name) {
			*dst = &v
		}
	}
	set("price-min", f.priceMin, &req.PriceMin)
	set("price-max", f.priceMax, &req.PriceMax)
	set("rating-min", f.ratingMin, &req.RatingMin)
	set("rating-max", f.ratingMax, &req.RatingMax)
	return req
}
