package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Stock es el inventario inicial; después solo se modifica vía stock-history.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Color       string          `json:"color"`
	CategoryID  string          `json:"category_id"`
	Stock       int64           `json:"stock"`
	Supplier    string          `json:"supplier"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Sin Stock: el stock se maneja exclusivamente vía el motor de ajustes.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Color       *string          `json:"color"`
	CategoryID  *string          `json:"category_id"`
	Supplier    *string          `json:"supplier"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Color        string          `json:"color"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Stock        int64           `json:"stock"`
	Supplier     string          `json:"supplier"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
