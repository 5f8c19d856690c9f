package dto

import "time"

// RecordChangeRequest entrada para registrar un cambio de stock.
type RecordChangeRequest struct {
	ProductID string `json:"product"`
	Change    int64  `json:"change"`
	Reason    string `json:"reason"`
}

// ReviseChangeRequest entrada para corregir un registro existente
// (el producto asociado es inmutable).
type ReviseChangeRequest struct {
	Change int64  `json:"change"`
	Reason string `json:"reason"`
}

// StockHistoryResponse salida de un registro del libro de stock.
type StockHistoryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product"`
	ProductName string    `json:"product_name,omitempty"`
	Change      int64     `json:"change"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordChangeResponse respuesta al registrar un cambio: el registro creado
// y el producto con el stock ya actualizado.
type RecordChangeResponse struct {
	Message        string               `json:"message"`
	StockHistory   StockHistoryResponse `json:"stockHistory"`
	UpdatedProduct ProductResponse      `json:"updatedProduct"`
}

// ReviseChangeResponse respuesta al corregir un registro.
type ReviseChangeResponse struct {
	Message        string               `json:"message"`
	UpdatedHistory StockHistoryResponse `json:"updatedHistory"`
	UpdatedProduct ProductResponse      `json:"updatedProduct"`
}

// StockHistoryListResponse lista paginada de registros.
type StockHistoryListResponse struct {
	Items  []StockHistoryResponse `json:"items"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}
