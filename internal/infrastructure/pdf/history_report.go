// Package pdf genera el reporte imprimible del historial de ajustes que
// exporta el panel de administración.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación + filtros aplicados    │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Bodega | Producto | Tipo | Cant | Prev→Nuevo │
//	│         | Razón | Actor                                      │
//	│  ──────────────────────────────────────────────────────────  │
//	│  PIE: total de ajustes listados                              │
//	└──────────────────────────────────────────────────────────────┘
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

	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// HistoryReportGenerator genera el PDF del historial de ajustes usando Maroto v2.
type HistoryReportGenerator struct{}

// NewHistoryReportGenerator construye el generador.
func NewHistoryReportGenerator() *HistoryReportGenerator { return &HistoryReportGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *HistoryReportGenerator) Generate(
	_ context.Context,
	filter repository.AdjustmentFilter,
	adjustments []*entity.AdjustmentRecord,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Historial de ajustes de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(filter))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, a := range adjustments {
		m.AddRows(tableDetailRow(a))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(adjustments)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación + filtros (der).
func headerRow(filter repository.AdjustmentFilter) core.Row {
	scope := "todas las bodegas"
	if filter.WarehouseID != "" {
		scope = "bodega " + filter.WarehouseID
	}
	if filter.ProductID != "" {
		scope += " · producto " + filter.ProductID
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Historial de ajustes de stock", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(scope, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(6).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(2).Add(text.New("Bodega", header)),
		col.New(2).Add(text.New("Producto", header)),
		col.New(1).Add(text.New("Tipo", header)),
		col.New(1).Add(text.New("Cant.", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Prev → Nuevo", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Razón / Actor", header)),
	)
}

func tableDetailRow(a *entity.AdjustmentRecord) core.Row {
	cell := props.Text{Size: 7}
	reason := a.Reason
	if a.Actor != "" {
		reason += " · " + a.Actor
	}
	return row.New(5).Add(
		col.New(2).Add(text.New(a.CreatedAt.Format("02/01/2006 15:04"), cell)),
		col.New(2).Add(text.New(shortID(a.WarehouseID), cell)),
		col.New(2).Add(text.New(shortID(a.ProductID), cell)),
		col.New(1).Add(text.New(a.Type, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", a.Quantity), props.Text{Size: 7, Align: align.Right})),
		col.New(2).Add(text.New(fmt.Sprintf("%d → %d", a.PreviousQuantity, a.NewQuantity), props.Text{Size: 7, Align: align.Right})),
		col.New(2).Add(text.New(reason, cell)),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d ajustes listados", total), props.Text{
				Size: 8, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// shortID recorta un UUID para que la tabla quepa en la página.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
