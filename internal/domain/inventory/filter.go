// Package inventory contiene la lógica pura de filtrado y agregación del dashboard.
// Ninguna función modifica el Dataset recibido.
package inventory

import "github.com/jhoicas/inventario-dashboard/internal/domain/entity"

// Filter devuelve la vista filtrada: los registros del dataset que cumplen todos los
// predicados del criterio, en el orden original. Nunca devuelve nil.
func Filter(ds *entity.Dataset, criteria entity.FilterCriteria) []entity.Record {
	out := make([]entity.Record, 0)
	if ds == nil {
		return out
	}
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		if criteria.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
