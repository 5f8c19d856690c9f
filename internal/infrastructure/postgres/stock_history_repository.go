package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stocktrack-api/internal/domain"
	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
	"github.com/tu-usuario/stocktrack-api/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo implementación de StockHistoryRepository sobre PostgreSQL (usable con pool o tx).
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador del libro de stock. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Create persiste un registro del libro de stock.
func (r *StockHistoryRepo) Create(entry *entity.StockHistory) error {
	query := `
		INSERT INTO stock_history (id, product_id, change, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Change, entry.Reason, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert stock history: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID, incluyendo el nombre del producto.
func (r *StockHistoryRepo) GetByID(id string) (*entity.StockHistory, error) {
	query := `
		SELECT h.id, h.product_id, h.change, h.reason, h.created_at, h.updated_at, p.name
		FROM stock_history h
		JOIN products p ON p.id = h.product_id
		WHERE h.id = $1`
	var e entity.StockHistory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ProductID, &e.Change, &e.Reason, &e.CreatedAt, &e.UpdatedAt, &e.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock history: %w", err)
	}
	return &e, nil
}

// List lista registros del libro (más recientes primero).
func (r *StockHistoryRepo) List(limit, offset int) ([]*entity.StockHistory, error) {
	query := `
		SELECT h.id, h.product_id, h.change, h.reason, h.created_at, h.updated_at, p.name
		FROM stock_history h
		JOIN products p ON p.id = h.product_id
		ORDER BY h.created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByProduct lista los registros de un producto (más recientes primero).
func (r *StockHistoryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockHistory, error) {
	query := `
		SELECT h.id, h.product_id, h.change, h.reason, h.created_at, h.updated_at, p.name
		FROM stock_history h
		JOIN products p ON p.id = h.product_id
		WHERE h.product_id = $1
		ORDER BY h.created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, productID, limit, offset)
}

func (r *StockHistoryRepo) list(query string, args ...any) ([]*entity.StockHistory, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockHistory
	for rows.Next() {
		var e entity.StockHistory
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Change, &e.Reason, &e.CreatedAt, &e.UpdatedAt, &e.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update persiste change y reason de un registro existente (product_id es inmutable).
func (r *StockHistoryRepo) Update(entry *entity.StockHistory) error {
	query := `
		UPDATE stock_history SET change = $2, reason = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Change, entry.Reason, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock history: %w", err)
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *StockHistoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock history: %w", err)
	}
	return nil
}
