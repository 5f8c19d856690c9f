package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stocktrack-api/internal/application/dto"
	"github.com/tu-usuario/stocktrack-api/internal/application/stock"
	"github.com/tu-usuario/stocktrack-api/internal/domain"
	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
)

// StockHistoryHandler maneja las peticiones HTTP del libro de stock (protegido).
// Las mutaciones pasan siempre por el motor de ajustes; no hay escritura
// directa al stock de un producto desde esta capa.
type StockHistoryHandler struct {
	uc *stock.AdjustmentUseCase
}

// NewStockHistoryHandler construye el handler.
func NewStockHistoryHandler(uc *stock.AdjustmentUseCase) *StockHistoryHandler {
	return &StockHistoryHandler{uc: uc}
}

// RecordChange godoc
// @Summary      Registrar un cambio de stock
// @Description  Crea un registro en el libro de stock y aplica el delta al producto.
// @Tags         stock-history
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordChangeRequest  true  "product, change (entero != 0), reason (restock|sale|correction|other)"
// @Success      201   {object}  dto.RecordChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-history [post]
func (h *StockHistoryHandler) RecordChange(c *fiber.Ctx) error {
	var in dto.RecordChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product es requerido"})
	}
	entry, product, err := h.uc.RecordChange(c.Context(), in.ProductID, in.Change, in.Reason)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordChangeResponse{
		Message:        "cambio de stock registrado",
		StockHistory:   *toStockHistoryResponse(entry),
		UpdatedProduct: *toProductSummary(product),
	})
}

// ReviseChange godoc
// @Summary      Corregir un registro del libro de stock
// @Description  Actualiza change/reason de un registro y aplica al producto la diferencia.
// @Tags         stock-history
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.ReviseChangeRequest  true  "change, reason"
// @Success      200   {object}  dto.ReviseChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-history/{id} [put]
func (h *StockHistoryHandler) ReviseChange(c *fiber.Ctx) error {
	var in dto.ReviseChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, product, err := h.uc.ReviseChange(c.Context(), c.Params("id"), in.Change, in.Reason)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.ReviseChangeResponse{
		Message:        "registro corregido",
		UpdatedHistory: *toStockHistoryResponse(entry),
		UpdatedProduct: *toProductSummary(product),
	})
}

// RemoveChange godoc
// @Summary      Revertir un registro del libro de stock
// @Description  Deshace el efecto del registro sobre el stock y lo elimina.
// @Tags         stock-history
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-history/{id} [delete]
func (h *StockHistoryHandler) RemoveChange(c *fiber.Ctx) error {
	if err := h.uc.RemoveChange(c.Context(), c.Params("id")); err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro eliminado y stock revertido"})
}

// GetByID godoc
// @Summary      Obtener un registro del libro de stock
// @Tags         stock-history
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.StockHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-history/{id} [get]
func (h *StockHistoryHandler) GetByID(c *fiber.Ctx) error {
	entry, err := h.uc.GetEntry(c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(toStockHistoryResponse(entry))
}

// List godoc
// @Summary      Listar el libro de stock
// @Tags         stock-history
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  false  "Filtrar por producto"
// @Param        limit    query  int     false  "Límite de página"
// @Param        offset   query  int     false  "Offset de página"
// @Success      200  {object}  dto.StockHistoryListResponse
// @Router       /api/stock-history [get]
func (h *StockHistoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Query("product"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.StockHistoryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toStockHistoryResponse(e))
	}
	return c.JSON(dto.StockHistoryListResponse{Items: items, Limit: page.Limit, Offset: page.Offset})
}

// stockError mapea los errores del motor de ajustes a códigos HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidChange:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CHANGE", Message: "el cambio de stock no puede ser cero"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reason debe ser restock, sale, correction u other"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el stock no puede quedar por debajo de cero"})
	case domain.ErrProductNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	case domain.ErrEntryNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ENTRY_NOT_FOUND", Message: "registro de stock no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toStockHistoryResponse(e *entity.StockHistory) *dto.StockHistoryResponse {
	if e == nil {
		return nil
	}
	return &dto.StockHistoryResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		Change:      e.Change,
		Reason:      e.Reason,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toProductSummary(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Color:        p.Color,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Stock:        p.Stock,
		Supplier:     p.Supplier,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
