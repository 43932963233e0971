package repository

import (
	"context"
	"errors"

	"github.com/omsayari/sayari-api/internal/domain/entity"
)

// ErrNotFound lo devuelven UpdateContent y Delete cuando el id no existe.
// El original devolvía respuestas con forma de éxito para ids desconocidos;
// aquí el resultado es explícito para que el handler responda 404.
var ErrNotFound = errors.New("item no encontrado")

// ItemRepository define el puerto de persistencia para Item (DIP).
// Todas las operaciones son atómicas sobre un único registro.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	ListAll(ctx context.Context) ([]*entity.Item, error)
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Item, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Item, error)
	Delete(ctx context.Context, id string) error
}
