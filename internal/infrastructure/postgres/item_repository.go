package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omsayari/sayari-api/internal/domain/entity"
	"github.com/omsayari/sayari-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// Create persiste un item nuevo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, content, category, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Content, item.Category.String(), item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// ListAll lista todos los items, más recientes primero.
func (r *ItemRepo) ListAll(ctx context.Context) ([]*entity.Item, error) {
	query := `
		SELECT id, content, category, created_at
		FROM items ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListByCategory lista los items de una categoría, más recientes primero.
func (r *ItemRepo) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Item, error) {
	query := `
		SELECT id, content, category, created_at
		FROM items WHERE category = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, category.String())
	if err != nil {
		return nil, fmt.Errorf("list items por categoría: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// UpdateContent actualiza el contenido y devuelve el item resultante.
// RETURNING evita una segunda ida a la base; sin fila -> ErrNotFound.
func (r *ItemRepo) UpdateContent(ctx context.Context, id, content string) (*entity.Item, error) {
	query := `
		UPDATE items SET content = $2
		WHERE id = $1
		RETURNING id, content, category, created_at`
	var item entity.Item
	var category string
	err := r.pool.QueryRow(ctx, query, id, content).Scan(
		&item.ID, &item.Content, &category, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	item.Category = entity.Category(category)
	return &item, nil
}

// Delete elimina un item por id. Sin filas afectadas -> ErrNotFound.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var item entity.Item
		var category string
		if err := rows.Scan(&item.ID, &item.Content, &category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.Category = entity.Category(category)
		list = append(list, &item)
	}
	return list, rows.Err()
}
