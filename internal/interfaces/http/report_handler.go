package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stocktrack-api/internal/application/dto"
	"github.com/tu-usuario/stocktrack-api/internal/application/report"
)

// ReportHandler maneja la exportación de reportes (protegido).
type ReportHandler struct {
	uc *report.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StockReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockReport godoc
// @Summary      Reporte de inventario en PDF
// @Description  Inventario actual más los últimos movimientos del libro de stock.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.pdf"`)
	return c.Send(pdfBytes)
}
