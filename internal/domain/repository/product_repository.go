package repository

import "github.com/tu-usuario/stocktrack-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// Los métodos Get* devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// IncrementStock suma delta (positivo o negativo) al stock de forma atómica
	// en el storage (UPDATE ... SET stock = stock + delta) y devuelve el
	// producto actualizado, o (nil, nil) si no existe.
	IncrementStock(id string, delta int64) (*entity.Product, error)
}
