package repository

import "github.com/tu-usuario/stocktrack-api/internal/domain/entity"

// StockHistoryRepository puerto de persistencia para el libro de cambios de stock.
// GetByID devuelve (nil, nil) cuando el registro no existe.
type StockHistoryRepository interface {
	Create(entry *entity.StockHistory) error
	GetByID(id string) (*entity.StockHistory, error)
	List(limit, offset int) ([]*entity.StockHistory, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockHistory, error)
	// Update persiste change y reason de un registro existente (product_id es inmutable).
	Update(entry *entity.StockHistory) error
	Delete(id string) error
}
