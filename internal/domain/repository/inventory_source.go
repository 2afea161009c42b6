package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// InventorySource define el puerto de lectura del dataset de inventario (DIP).
// Identity identifica la fuente para la caché; dos fuentes con la misma identidad
// comparten el mismo Dataset cacheado.
type InventorySource interface {
	Identity() string
	Load(ctx context.Context) (*entity.Dataset, error)
}
