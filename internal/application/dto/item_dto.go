package dto

import "time"

// CreateItemRequest entrada para crear un item.
type CreateItemRequest struct {
	Content  string `json:"content" validate:"required,min=1"`
	Category string `json:"category" validate:"required,oneof=flirting sayari mix"`
}

// UpdateItemRequest entrada para actualizar el contenido de un item.
// La categoría y la fecha de creación son inmutables: no hay campo para ellas.
type UpdateItemRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
