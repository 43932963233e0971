// Package memory implementa el puerto ItemRepository en memoria de proceso.
// Sirve como modo demo (STORE_DRIVER=memory) y como doble de test.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/omsayari/sayari-api/internal/domain/entity"
	"github.com/omsayari/sayari-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo store en memoria protegido por mutex.
type ItemRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Item
}

// NewItemRepository construye el store vacío.
func NewItemRepository() *ItemRepo {
	return &ItemRepo{items: make(map[string]*entity.Item)}
}

// Create persiste un item nuevo.
func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

// ListAll lista todos los items, más recientes primero.
func (r *ItemRepo) ListAll(_ context.Context) ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*entity.Item) bool { return true }), nil
}

// ListByCategory lista los items de una categoría, más recientes primero.
func (r *ItemRepo) ListByCategory(_ context.Context, category entity.Category) ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(item *entity.Item) bool { return item.Category == category }), nil
}

// UpdateContent actualiza el contenido y devuelve el item resultante.
func (r *ItemRepo) UpdateContent(_ context.Context, id, content string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	item.Content = content
	cp := *item
	return &cp, nil
}

// Delete elimina un item por id. Id desconocido -> ErrNotFound.
func (r *ItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// collect copia los items que pasan el filtro, ordenados por fecha descendente.
// Se llama con el lock tomado.
func (r *ItemRepo) collect(keep func(*entity.Item) bool) []*entity.Item {
	var list []*entity.Item
	for _, item := range r.items {
		if keep(item) {
			cp := *item
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}
