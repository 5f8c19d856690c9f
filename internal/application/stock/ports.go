package stock

import (
	"context"

	"github.com/tu-usuario/stocktrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ajustes:
// o se escriben el registro y el stock del producto, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		historyRepo repository.StockHistoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
