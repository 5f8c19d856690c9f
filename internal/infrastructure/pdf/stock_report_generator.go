// Package pdf implementa la generación del reporte de inventario en PDF:
// estado actual de los productos más los últimos movimientos del libro de stock.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/stocktrack-api/internal/application/report"
	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStockReportGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoStockReportGenerator struct{}

var _ report.StockReportGenerator = (*MarotoStockReportGenerator)(nil)

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator { return &MarotoStockReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(
	_ context.Context,
	products []*entity.Product,
	history []*entity.StockHistory,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Productos"))
	m.AddRows(productsHeader())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	m.AddRows(line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitle("Últimos movimientos"))
	m.AddRows(historyHeader())
	for _, h := range history {
		m.AddRows(historyRow(h))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de inventario", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Size: 11, Style: fontstyle.Bold, Color: colorPrimary}),
		),
	)
}

func productsHeader() core.Row {
	return row.New(6).Add(
		headerCell(4, "Producto"),
		headerCell(3, "Categoría"),
		headerCell(2, "Proveedor"),
		headerCellRight(1, "Stock"),
		headerCellRight(2, "Precio"),
	)
}

func productRow(p *entity.Product) core.Row {
	return row.New(5).Add(
		bodyCell(4, p.Name),
		bodyCell(3, p.CategoryName),
		bodyCell(2, p.Supplier),
		bodyCellRight(1, fmt.Sprintf("%d", p.Stock)),
		bodyCellRight(2, p.Price.StringFixed(2)),
	)
}

func historyHeader() core.Row {
	return row.New(6).Add(
		headerCell(3, "Fecha"),
		headerCell(5, "Producto"),
		headerCellRight(2, "Cambio"),
		headerCell(2, "Motivo"),
	)
}

func historyRow(h *entity.StockHistory) core.Row {
	return row.New(5).Add(
		bodyCell(3, h.CreatedAt.Format("2006-01-02 15:04")),
		bodyCell(5, h.ProductName),
		bodyCellRight(2, fmt.Sprintf("%+d", h.Change)),
		bodyCell(2, h.Reason),
	)
}

func headerCell(size int, content string) core.Col {
	return col.New(size).Add(text.New(content, props.Text{Size: 8, Style: fontstyle.Bold}))
}

func headerCellRight(size int, content string) core.Col {
	return col.New(size).Add(text.New(content, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}))
}

func bodyCell(size int, content string) core.Col {
	return col.New(size).Add(text.New(content, props.Text{Size: 8}))
}

func bodyCellRight(size int, content string) core.Col {
	return col.New(size).Add(text.New(content, props.Text{Size: 8, Align: align.Right}))
}
