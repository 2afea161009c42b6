// Package dataset mantiene en memoria los datasets cargados, uno por identidad de fuente.
package dataset

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// Cache singleton perezoso con invalidación manual.
// La primera llamada a Get para una identidad carga la fuente; las siguientes devuelven
// el mismo *entity.Dataset hasta que se invalide. Las cargas fallidas no se cachean.
//
// Cada identidad tiene una generación que Invalidate incrementa: una carga iniciada
// antes de la invalidación no se guarda al terminar.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entity.Dataset
	gens    map[string]uint64
	epoch   uint64 // incrementado por InvalidateAll
	group   singleflight.Group
	log     zerolog.Logger
}

// NewCache construye una caché vacía.
func NewCache(log zerolog.Logger) *Cache {
	return &Cache{
		entries: make(map[string]*entity.Dataset),
		gens:    make(map[string]uint64),
		log:     log,
	}
}

// Get devuelve el dataset de src, cargándolo si aún no está en memoria.
// Las cargas concurrentes de la misma identidad y generación se unifican en una sola
// lectura, que no se cancela si el llamador que la inició se va.
func (c *Cache) Get(ctx context.Context, src repository.InventorySource) (*entity.Dataset, error) {
	id := src.Identity()

	c.mu.RLock()
	ds, ok := c.entries[id]
	gen := c.generation(id)
	c.mu.RUnlock()
	if ok {
		return ds, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	key := fmt.Sprintf("%s#%d", id, gen)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		cached, ok := c.entries[id]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		loaded, err := src.Load(loadCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		current := c.generation(id) == gen
		if current {
			c.entries[id] = loaded
		}
		c.mu.Unlock()

		if current {
			c.log.Debug().Str("source", id).Str("dataset_id", loaded.ID()).Msg("dataset cacheado")
		} else {
			c.log.Debug().Str("source", id).Msg("carga descartada: invalidada durante la lectura")
		}
		return loaded, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: cargar %s: %w", id, err)
	}
	return v.(*entity.Dataset), nil
}

// Invalidate descarta el dataset de la identidad indicada y cualquier carga en curso.
// Devuelve true si había un dataset en memoria.
func (c *Cache) Invalidate(identity string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[identity]
	delete(c.entries, identity)
	c.gens[identity]++
	if ok {
		c.log.Info().Str("source", identity).Msg("dataset invalidado")
	}
	return ok
}

// InvalidateAll vacía la caché.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entity.Dataset)
	c.epoch++
}

// Len número de datasets en memoria.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// generation requiere c.mu. Ambos contadores solo crecen, así que la suma cambia
// con cualquier invalidación.
func (c *Cache) generation(id string) uint64 {
	return c.epoch + c.gens[id]
}
