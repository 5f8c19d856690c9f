package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stocktrack-api/internal/domain"
	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
	"github.com/tu-usuario/stocktrack-api/internal/domain/repository"
)

// AdjustmentUseCase es el motor de ajustes de stock: registra, corrige y
// revierte entradas del libro de cambios manteniendo Product.Stock consistente
// con la suma de los cambios aplicados y sin permitir stock negativo.
//
// Cada operación mutadora corre dentro de una transacción (TxRunner) con la
// fila del producto bloqueada (SELECT FOR UPDATE), así dos ajustes
// concurrentes sobre el mismo producto no pueden validar contra un snapshot
// obsoleto. El incremento final siempre es un delta atómico en el storage,
// nunca un valor absoluto recalculado en la aplicación.
type AdjustmentUseCase struct {
	txRunner    TxRunner
	historyRepo repository.StockHistoryRepository
	productRepo repository.ProductRepository
}

// NewAdjustmentUseCase construye el motor. historyRepo y productRepo se usan
// solo para lecturas; las mutaciones pasan por los repos atados a la tx.
func NewAdjustmentUseCase(
	txRunner TxRunner,
	historyRepo repository.StockHistoryRepository,
	productRepo repository.ProductRepository,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		txRunner:    txRunner,
		historyRepo: historyRepo,
		productRepo: productRepo,
	}
}

// RecordChange registra un nuevo cambio de stock y aplica el delta al producto.
// Rechaza change == 0 (ErrInvalidChange), motivos fuera del conjunto cerrado
// (ErrInvalidInput) y proyecciones negativas (ErrInsufficientStock).
func (uc *AdjustmentUseCase) RecordChange(ctx context.Context, productID string, change int64, reason string) (*entity.StockHistory, *entity.Product, error) {
	if change == 0 {
		return nil, nil, domain.ErrInvalidChange
	}
	if !entity.ValidReason(reason) {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		entry   *entity.StockHistory
		updated *entity.Product
	)
	err := uc.txRunner.Run(ctx, func(
		historyRepo repository.StockHistoryRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para que la validación y el incremento
		// vean el mismo stock.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Stock+change < 0 {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		entry = &entity.StockHistory{
			ID:        uuid.New().String(),
			ProductID: productID,
			Change:    change,
			Reason:    reason,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := historyRepo.Create(entry); err != nil {
			return err
		}
		updated, err = productRepo.IncrementStock(productID, change)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, updated, nil
}

// ReviseChange corrige change y reason de un registro existente y aplica al
// producto la diferencia contra el valor anterior. El producto asociado es
// inmutable. No re-valida change != 0: corregir a cero equivale a anular el
// efecto del registro sin borrarlo (comportamiento documentado).
func (uc *AdjustmentUseCase) ReviseChange(ctx context.Context, entryID string, change int64, reason string) (*entity.StockHistory, *entity.Product, error) {
	if !entity.ValidReason(reason) {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		entry   *entity.StockHistory
		updated *entity.Product
	)
	err := uc.txRunner.Run(ctx, func(
		historyRepo repository.StockHistoryRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		entry, err = historyRepo.GetByID(entryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrEntryNotFound
		}

		product, err := productRepo.GetForUpdate(entry.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			// Solo posible ante una inconsistencia de datos (FK rota).
			return domain.ErrProductNotFound
		}

		delta := change - entry.Change
		if product.Stock+delta < 0 {
			return domain.ErrInsufficientStock
		}

		entry.Change = change
		entry.Reason = reason
		entry.UpdatedAt = time.Now()
		if err := historyRepo.Update(entry); err != nil {
			return err
		}
		// delta puede ser 0 (corrección solo de reason); el incremento no-op es válido.
		updated, err = productRepo.IncrementStock(entry.ProductID, delta)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, updated, nil
}

// RemoveChange revierte un registro: deshace su efecto sobre el stock y lo
// elimina del libro. Falla con ErrInsufficientStock si deshacer una entrada
// positiva dejaría el stock negativo (ya se consumió contra ella).
func (uc *AdjustmentUseCase) RemoveChange(ctx context.Context, entryID string) error {
	return uc.txRunner.Run(ctx, func(
		historyRepo repository.StockHistoryRepository,
		productRepo repository.ProductRepository,
	) error {
		entry, err := historyRepo.GetByID(entryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrEntryNotFound
		}

		product, err := productRepo.GetForUpdate(entry.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Stock-entry.Change < 0 {
			return domain.ErrInsufficientStock
		}

		if _, err := productRepo.IncrementStock(entry.ProductID, -entry.Change); err != nil {
			return err
		}
		return historyRepo.Delete(entryID)
	})
}

// GetEntry obtiene un registro por ID (lectura, sin transacción).
func (uc *AdjustmentUseCase) GetEntry(id string) (*entity.StockHistory, error) {
	entry, err := uc.historyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

// List lista registros del libro, opcionalmente filtrados por producto.
func (uc *AdjustmentUseCase) List(productID string, limit, offset int) ([]*entity.StockHistory, error) {
	if productID != "" {
		return uc.historyRepo.ListByProduct(productID, limit, offset)
	}
	return uc.historyRepo.List(limit, offset)
}
