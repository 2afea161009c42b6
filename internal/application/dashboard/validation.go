package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
)

var validate = validator.New()

// ValidationError rechazo de un FilterRequest; envuelve domain.ErrInvalidInput.
type ValidationError struct {
	Fields []dto.ValidationErrorDTO
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "filtro inválido: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// ValidateFilter comprueba los límites de cada campo (precio >= 0, rating en [0,5]).
// Inf y NaN se rechazan antes de las reglas de rango. No compara min con max.
func ValidateFilter(req dto.FilterRequest) error {
	if fields := nonFinite(req); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar filtro: %w", err)
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, dto.ValidationErrorDTO{
			Field:   fieldName(fe.Field()),
			Tag:     fe.Tag(),
			Message: validationMessage(fe),
		})
	}
	return out
}

func nonFinite(req dto.FilterRequest) []dto.ValidationErrorDTO {
	bounds := []struct {
		field string
		v     *float64
	}{
		{"price_min", req.PriceMin},
		{"price_max", req.PriceMax},
		{"rating_min", req.RatingMin},
		{"rating_max", req.RatingMax},
	}
	var out []dto.ValidationErrorDTO
	for _, b := range bounds {
		if b.v != nil && (math.IsInf(*b.v, 0) || math.IsNaN(*b.v)) {
			out = append(out, dto.ValidationErrorDTO{Field: b.field, Tag: "finite", Message: "debe ser un número finito"})
		}
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "lte":
		return "debe ser menor o igual a " + fe.Param()
	default:
		return "valor inválido"
	}
}

// fieldName PriceMin → price_min, igual que el parámetro de consulta.
func fieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
