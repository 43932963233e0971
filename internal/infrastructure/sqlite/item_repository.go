// Package sqlite implementa el puerto ItemRepository sobre una base SQLite de
// un solo archivo, pensado para modo local sin PostgreSQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/omsayari/sayari-api/internal/domain/entity"
	"github.com/omsayari/sayari-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo adaptador SQLite del puerto ItemRepository.
type ItemRepo struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y asegura el esquema.
func Open(ctx context.Context, path string) (*ItemRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// El driver es de un solo escritor; serializar desde el pool evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS items (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL CHECK (length(trim(content)) > 0),
			category   TEXT NOT NULL CHECK (category IN ('flirting', 'sayari', 'mix')),
			created_at INTEGER NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema sqlite: %w", err)
	}
	return &ItemRepo{db: db}, nil
}

// Close cierra la base.
func (r *ItemRepo) Close() error { return r.db.Close() }

// Create persiste un item nuevo. La fecha se guarda como epoch en nanosegundos
// para conservar el orden total entre inserciones rápidas.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, content, category, created_at) VALUES (?, ?, ?, ?)`,
		item.ID, item.Content, item.Category.String(), item.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// ListAll lista todos los items, más recientes primero.
func (r *ItemRepo) ListAll(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, content, category, created_at FROM items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListByCategory lista los items de una categoría, más recientes primero.
func (r *ItemRepo) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, content, category, created_at FROM items WHERE category = ? ORDER BY created_at DESC`,
		category.String())
	if err != nil {
		return nil, fmt.Errorf("list items por categoría: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// UpdateContent actualiza el contenido y devuelve el item resultante.
func (r *ItemRepo) UpdateContent(ctx context.Context, id, content string) (*entity.Item, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET content = ? WHERE id = ?`, content, id)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, repository.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT id, content, category, created_at FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("releer item: %w", err)
	}
	return item, nil
}

// Delete elimina un item por id. Sin filas afectadas -> ErrNotFound.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entity.Item, error) {
	var item entity.Item
	var category string
	var createdAt int64
	if err := row.Scan(&item.ID, &item.Content, &category, &createdAt); err != nil {
		return nil, err
	}
	item.Category = entity.Category(category)
	item.CreatedAt = time.Unix(0, createdAt)
	return &item, nil
}

func scanItems(rows *sql.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
