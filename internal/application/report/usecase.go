package report

import (
	"context"

	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
	"github.com/tu-usuario/stocktrack-api/internal/domain/repository"
)

// StockReportGenerator renderiza el reporte de inventario a PDF.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, products []*entity.Product, history []*entity.StockHistory) ([]byte, error)
}

// Límites del reporte: inventario completo acotado y últimos movimientos.
const (
	maxReportProducts = 500
	maxReportEntries  = 100
)

// StockReportUseCase arma el reporte PDF del inventario actual con los
// últimos movimientos del libro de stock.
type StockReportUseCase struct {
	productRepo repository.ProductRepository
	historyRepo repository.StockHistoryRepository
	generator   StockReportGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	productRepo repository.ProductRepository,
	historyRepo repository.StockHistoryRepository,
	generator StockReportGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{productRepo: productRepo, historyRepo: historyRepo, generator: generator}
}

// Generate devuelve los bytes del PDF.
func (uc *StockReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List(maxReportProducts, 0)
	if err != nil {
		return nil, err
	}
	history, err := uc.historyRepo.List(maxReportEntries, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, products, history)
}
