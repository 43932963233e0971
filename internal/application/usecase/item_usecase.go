package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/omsayari/sayari-api/internal/application/dto"
	"github.com/omsayari/sayari-api/internal/domain/entity"
	"github.com/omsayari/sayari-api/internal/domain/repository"
)

// Errores de validación de la capa de aplicación. El handler los mapea a 400.
var (
	ErrEmptyContent    = errors.New("content es requerido")
	ErrInvalidCategory = errors.New("categoría inválida")
	ErrInvalidID       = errors.New("id inválido")
)

// ItemUseCase casos de uso CRUD para items.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un item nuevo. El contenido se recorta y debe quedar no vacío;
// la categoría debe pertenecer al conjunto cerrado.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	category := entity.Category(in.Category)
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	item := &entity.Item{
		ID:        uuid.New().String(),
		Content:   content,
		Category:  category,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ListAll lista todos los items, más recientes primero.
func (uc *ItemUseCase) ListAll(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// ListByCategory lista los items de una categoría, más recientes primero.
func (uc *ItemUseCase) ListByCategory(ctx context.Context, category string) ([]dto.ItemResponse, error) {
	cat := entity.Category(category)
	if !cat.IsValid() {
		return nil, ErrInvalidCategory
	}
	list, err := uc.repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// UpdateContent actualiza solo el contenido de un item existente.
// Categoría y fecha de creación quedan intactas. Id desconocido -> repository.ErrNotFound.
func (uc *ItemUseCase) UpdateContent(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	item, err := uc.repo.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un item por id. Id desconocido -> repository.ErrNotFound.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        item.ID,
		Content:   item.Content,
		Category:  item.Category.String(),
		CreatedAt: item.CreatedAt,
	}
}

func toItemResponses(list []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, *toItemResponse(item))
	}
	return out
}
