package entity

// Category una de las categorías fijas que particionan los items.
// El conjunto es cerrado: no se crean categorías en runtime.
type Category string

const (
	CategoryFlirting Category = "flirting"
	CategorySayari   Category = "sayari"
	CategoryMix      Category = "mix"
)

// Categories devuelve las categorías válidas en orden de presentación.
func Categories() []Category {
	return []Category{CategoryFlirting, CategorySayari, CategoryMix}
}

// IsValid indica si la categoría pertenece al conjunto cerrado.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFlirting, CategorySayari, CategoryMix:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }
