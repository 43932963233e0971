package entity

import "time"

// Item representa un fragmento de texto almacenado, etiquetado con una categoría.
// CreatedAt es la única clave de orden (descendente, más reciente primero).
type Item struct {
	ID        string
	Content   string
	Category  Category
	CreatedAt time.Time
}
