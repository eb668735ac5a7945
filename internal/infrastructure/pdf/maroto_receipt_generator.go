// Package pdf genera el comprobante de pedido en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante + cocina │  N° Pedido + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: usuario + estado del pedido                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Plato | P.Unit | Subtotal                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                               │
//	│  QR con la referencia del pedido                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 200, Green: 70, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	restaurant *entity.Restaurant,
	user *entity.User,
) ([]byte, error) {
	if order == nil || restaurant == nil || user == nil {
		return nil, fmt.Errorf("pdf: pedido, restaurante y usuario son obligatorios")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Pedido #%d", order.ID), true).
		WithAuthor(restaurant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, restaurant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order, user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order.Total))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(order *entity.Order, restaurant *entity.Restaurant) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(restaurant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(restaurant.Cuisine, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("#%d", order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(order *entity.Order, user *entity.User) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Estado: %s", user.Username, order.Status),
				props.Text{Size: 9, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Plato", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// itemRows una fila por línea del carrito.
func itemRows(items []entity.CartItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.MenuItem.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				FormatCents(it.MenuItem.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				FormatCents(it.MenuItem.Price*int64(it.Quantity)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalRow(total int64) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL A PAGAR:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(FormatCents(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func footerRow(order *entity.Order) core.Row {
	ref := fmt.Sprintf("pedido:%d;usuario:%d;restaurante:%d", order.ID, order.UserID, order.RestaurantID)
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Presente este código al retirar su pedido.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
		),
	)
}

// FormatCents convierte centavos a texto monetario con dos decimales. Ej: 1499 → "$14.99".
func FormatCents(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
