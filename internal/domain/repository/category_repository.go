package repository

import "github.com/tu-usuario/stocktrack-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
// GetByID devuelve (nil, nil) cuando la categoría no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	// CountProducts devuelve cuántos productos referencian la categoría
	// (para impedir borrar categorías en uso).
	CountProducts(id string) (int64, error)
}
