package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock solo se modifica vía el motor de ajustes (stock history); el update
// genérico de producto no lo toca.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, nunca negativo
	Color       string
	CategoryID  string
	Stock       int64 // invariante: siempre >= 0
	Supplier    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CategoryName se carga en lecturas con JOIN a categories (no se persiste aquí).
	CategoryName string
}
