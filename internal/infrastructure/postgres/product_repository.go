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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con su stock inicial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, color, category_id, stock, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Color,
		product.CategoryID, product.Stock, product.Supplier, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, incluyendo el nombre de su categoría.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.color, p.category_id, p.stock, p.supplier, p.created_at, p.updated_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Color, &p.CategoryID,
		&p.Stock, &p.Supplier, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetForUpdate obtiene un producto bloqueando la fila (SELECT FOR UPDATE).
// Sin JOIN: FOR UPDATE bloquea solo la fila de products.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, color, category_id, stock, supplier, created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Color, &p.CategoryID,
		&p.Stock, &p.Supplier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación, incluyendo el nombre de la categoría.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.color, p.category_id, p.stock, p.supplier, p.created_at, p.updated_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Color, &p.CategoryID,
			&p.Stock, &p.Supplier, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente. No toca stock (se maneja vía el motor de ajustes).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, color = $5, category_id = $6, supplier = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Color,
		product.CategoryID, product.Supplier, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// IncrementStock suma delta al stock de forma atómica en el storage y devuelve
// el producto actualizado, o (nil, nil) si no existe. Nunca lee-modifica-escribe
// el contador en la aplicación.
func (r *ProductRepo) IncrementStock(id string, delta int64) (*entity.Product, error) {
	query := `
		UPDATE products SET stock = stock + $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, description, price, color, category_id, stock, supplier, created_at, updated_at`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Color, &p.CategoryID,
		&p.Stock, &p.Supplier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("increment stock: %w", err)
	}
	return &p, nil
}

// Delete elimina un producto por ID (sus registros de stock caen en cascada).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
