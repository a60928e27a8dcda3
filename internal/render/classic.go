package render

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/billcraft/billcraft/internal/invoice/document"
)

// classicTemplate is the formal layout: centered serif-weight header,
// double rules, and a fully bordered item table.
type classicTemplate struct{}

var charcoal = props.Color{Red: 28, Green: 40, Blue: 51}

func (t *classicTemplate) Name() string { return ClassicTemplate }

func (t *classicTemplate) Description() string {
	return "Formal layout with a bordered item table"
}

func (t *classicTemplate) Layout(doc document.Document) []core.Row {
	rows := make([]core.Row, 0, 16+len(doc.Items.Rows))

	// Centered header.
	if doc.Header.LogoPath != "" {
		rows = append(rows, row.New(16).Add(
			col.New(4),
			image.NewFromFileCol(4, doc.Header.LogoPath, props.Rect{Percent: 80, Center: true}),
			col.New(4),
		))
	} else if doc.Header.CompanyName != "" {
		rows = append(rows, row.New(10).Add(
			text.NewCol(12, doc.Header.CompanyName, props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Center,
				Color: &charcoal,
			}),
		))
	}
	rows = append(rows,
		row.New(12).Add(text.NewCol(12, doc.Header.Title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: &charcoal,
			Top:   2,
		})),
		row.New(6).Add(text.NewCol(12, doc.Header.InvoiceNumber, props.Text{
			Size:  11,
			Align: align.Center,
		})),
		line.NewRow(3, props.Line{Color: &charcoal, Thickness: 0.8}),
		line.NewRow(2, props.Line{Color: &charcoal, Thickness: 0.3}),
	)

	// Parties and details.
	rows = append(rows, row.New(34).Add(
		partyCol(4, doc.Parties.From, charcoal),
		partyCol(4, doc.Parties.To, charcoal),
		detailsCol(4, doc.Details),
	))

	// Bordered item table.
	rows = append(rows, row.New(8).Add(
		text.NewCol(6, doc.Items.Headers[0], props.Text{Style: fontstyle.Bold, Size: 9, Left: 1, Top: 2}),
		text.NewCol(2, doc.Items.Headers[1], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}),
		text.NewCol(2, doc.Items.Headers[2], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}),
		text.NewCol(2, doc.Items.Headers[3], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1}),
	).WithStyle(&props.Cell{BorderType: border.Full, BorderColor: &charcoal}))

	for _, item := range doc.Items.Rows {
		rows = append(rows, row.New(7).Add(
			text.NewCol(6, item.Description, props.Text{Size: 9, Left: 1, Top: 1}),
			text.NewCol(2, item.Quantity, props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.NewCol(2, item.Rate, props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}),
		).WithStyle(&props.Cell{BorderType: border.Full, BorderColor: &charcoal}))
	}

	// Totals.
	rows = append(rows, totalsRows(doc.Totals, charcoal)...)

	// Notes.
	if doc.HasNotes() {
		rows = append(rows,
			row.New(7).Add(text.NewCol(12, "Notes:", props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Top:   3,
			})),
			row.New(12).Add(text.NewCol(12, doc.Notes, props.Text{Size: 9})),
		)
	}

	// Footer with double rule.
	rows = append(rows,
		line.NewRow(2, props.Line{Color: &charcoal, Thickness: 0.3}),
		line.NewRow(3, props.Line{Color: &charcoal, Thickness: 0.8}),
		row.New(6).Add(text.NewCol(12, doc.Footer.Message, props.Text{
			Size:  9,
			Align: align.Center,
		})),
		row.New(5).Add(text.NewCol(12, doc.Footer.GeneratedAt, props.Text{
			Size:  7,
			Align: align.Center,
			Color: &softGrey,
		})),
	)

	return rows
}
