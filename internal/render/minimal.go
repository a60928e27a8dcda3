package render

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/billcraft/billcraft/internal/invoice/document"
)

// minimalTemplate strips the chrome: no logo, no borders, no fills.
// Items collapse to description and amount only.
type minimalTemplate struct{}

var (
	nearBlack = props.Color{Red: 33, Green: 33, Blue: 33}
	midGrey   = props.Color{Red: 130, Green: 130, Blue: 130}
)

func (t *minimalTemplate) Name() string { return MinimalTemplate }

func (t *minimalTemplate) Description() string {
	return "Sparse layout, description and amount only"
}

func (t *minimalTemplate) Layout(doc document.Document) []core.Row {
	rows := make([]core.Row, 0, 14+len(doc.Items.Rows))

	rows = append(rows,
		row.New(12).Add(
			text.NewCol(8, doc.Header.Title, props.Text{
				Size:  18,
				Style: fontstyle.Bold,
				Color: &nearBlack,
			}),
			text.NewCol(4, doc.Header.InvoiceNumber, props.Text{
				Size:  10,
				Align: align.Right,
				Color: &midGrey,
				Top:   3,
			}),
		),
		line.NewRow(3, props.Line{Color: &nearBlack, Thickness: 0.5}),
	)

	if doc.Header.CompanyName != "" {
		rows = append(rows, row.New(7).Add(
			text.NewCol(12, doc.Header.CompanyName, props.Text{
				Size:  10,
				Color: &midGrey,
				Top:   1,
			}),
		))
	}

	// Parties side by side; details compressed below.
	rows = append(rows, row.New(30).Add(
		partyCol(6, doc.Parties.From, nearBlack),
		partyCol(6, doc.Parties.To, nearBlack),
	))

	detailTop := 0.0
	detailCol := col.New(12)
	for _, d := range doc.Details {
		detailCol.Add(text.New(d.Label+" "+d.Value, props.Text{
			Size:  8,
			Color: &midGrey,
			Top:   detailTop,
		}))
		detailTop += 4
	}
	rows = append(rows, row.New(detailTop+2).Add(detailCol))

	// Items: description and amount only, separated by hairlines.
	rows = append(rows, row.New(7).Add(
		text.NewCol(9, doc.Items.Headers[0], props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		text.NewCol(3, doc.Items.Headers[3], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1}),
	))
	rows = append(rows, line.NewRow(2, props.Line{Color: &midGrey, Thickness: 0.3}))

	for _, item := range doc.Items.Rows {
		rows = append(rows,
			row.New(7).Add(
				text.NewCol(9, item.Description, props.Text{Size: 9, Top: 1}),
				text.NewCol(3, item.Amount, props.Text{Size: 9, Align: align.Right, Top: 1}),
			),
			line.NewRow(2, props.Line{Color: &midGrey, Thickness: 0.2}),
		)
	}

	// Totals.
	rows = append(rows, totalsRows(doc.Totals, nearBlack)...)

	// Notes, unlabeled.
	if doc.HasNotes() {
		rows = append(rows, row.New(12).Add(text.NewCol(12, doc.Notes, props.Text{
			Size:  8,
			Color: &midGrey,
			Top:   3,
		})))
	}

	// Footer.
	rows = append(rows,
		row.New(8).Add(text.NewCol(12, doc.Footer.Message, props.Text{
			Size:  8,
			Align: align.Center,
			Color: &midGrey,
			Top:   4,
		})),
		row.New(5).Add(text.NewCol(12, doc.Footer.GeneratedAt, props.Text{
			Size:  7,
			Align: align.Center,
			Color: &midGrey,
		})),
	)

	return rows
}
