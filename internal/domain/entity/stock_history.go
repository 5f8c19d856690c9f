package entity

import "time"

// Motivos válidos de un cambio de stock (conjunto cerrado).
const (
	ReasonRestock    = "restock"
	ReasonSale       = "sale"
	ReasonCorrection = "correction"
	ReasonOther      = "other"
)

// ValidReason indica si el motivo pertenece al conjunto cerrado.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonRestock, ReasonSale, ReasonCorrection, ReasonOther:
		return true
	}
	return false
}

// StockHistory representa un registro del libro de cambios de stock.
// Change es un delta con signo: positivo = entrada, negativo = salida.
// ProductID es inmutable después de la creación; Change y Reason pueden
// corregirse vía el motor de ajustes.
type StockHistory struct {
	ID        string
	ProductID string
	Change    int64  // != 0 al crear
	Reason    string // restock, sale, correction, other
	CreatedAt time.Time
	UpdatedAt time.Time

	// ProductName se carga en lecturas con JOIN a products (no se persiste aquí).
	ProductName string
}
