package render

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/billcraft/billcraft/internal/invoice/document"
)

// defaultTemplate is the general-purpose layout: company header with
// optional logo, side-by-side parties, a shaded item table, and
// right-aligned totals.
type defaultTemplate struct{}

var (
	slateAccent = props.Color{Red: 44, Green: 62, Blue: 80}
	softGrey    = props.Color{Red: 189, Green: 195, Blue: 199}
	white       = props.Color{Red: 255, Green: 255, Blue: 255}
)

func (t *defaultTemplate) Name() string { return DefaultTemplate }

func (t *defaultTemplate) Description() string {
	return "Balanced layout with a shaded item table"
}

func (t *defaultTemplate) Layout(doc document.Document) []core.Row {
	rows := make([]core.Row, 0, 16+len(doc.Items.Rows))

	// Header: logo or company name on the left, document title right.
	left := col.New(7)
	if doc.Header.LogoPath != "" {
		left = image.NewFromFileCol(7, doc.Header.LogoPath, props.Rect{Percent: 60})
	} else {
		left.Add(text.New(doc.Header.CompanyName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Color: &slateAccent,
		}))
	}
	rows = append(rows,
		row.New(16).Add(
			left,
			text.NewCol(5, doc.Header.Title, props.Text{
				Size:  22,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: &slateAccent,
			}),
		),
		row.New(8).Add(
			col.New(7),
			text.NewCol(5, doc.Header.InvoiceNumber, props.Text{
				Size:  11,
				Align: align.Right,
			}),
		),
		line.NewRow(4, props.Line{Color: &softGrey, Thickness: 0.6}),
	)

	// Parties and invoice details.
	rows = append(rows, row.New(34).Add(
		partyCol(4, doc.Parties.From, slateAccent),
		partyCol(4, doc.Parties.To, slateAccent),
		detailsCol(4, doc.Details),
	))

	// Item table.
	rows = append(rows, row.New(8).Add(
		text.NewCol(6, doc.Items.Headers[0], props.Text{Style: fontstyle.Bold, Size: 9, Color: &white, Left: 1, Top: 2}),
		text.NewCol(2, doc.Items.Headers[1], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &white, Top: 2}),
		text.NewCol(2, doc.Items.Headers[2], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &white, Top: 2}),
		text.NewCol(2, doc.Items.Headers[3], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &white, Top: 2, Right: 1}),
	).WithStyle(&props.Cell{BackgroundColor: &slateAccent}))

	for _, item := range doc.Items.Rows {
		rows = append(rows, row.New(7).Add(
			text.NewCol(6, item.Description, props.Text{Size: 9, Left: 1, Top: 1}),
			text.NewCol(2, item.Quantity, props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.NewCol(2, item.Rate, props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}),
		))
	}
	rows = append(rows, line.NewRow(3, props.Line{Color: &softGrey, Thickness: 0.4}))

	// Totals.
	rows = append(rows, totalsRows(doc.Totals, slateAccent)...)

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

	// Footer.
	rows = append(rows,
		line.NewRow(4, props.Line{Color: &softGrey, Thickness: 0.6}),
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

// partyCol renders one party block as a single column.
func partyCol(size int, p document.Party, accent props.Color) core.Col {
	c := col.New(size)
	c.Add(text.New(p.Label, props.Text{Style: fontstyle.Bold, Size: 10, Color: &accent}))
	top := 5.0
	for _, ln := range partyLines(p) {
		c.Add(text.New(ln, props.Text{Size: 9, Top: top}))
		top += 4
	}
	return c
}

// detailsCol renders the labeled detail rows as a single column.
func detailsCol(size int, details []document.Detail) core.Col {
	c := col.New(size)
	top := 0.0
	for _, d := range details {
		c.Add(
			text.New(d.Label, props.Text{Style: fontstyle.Bold, Size: 9, Top: top}),
			text.New(d.Value, props.Text{Size: 9, Top: top, Align: align.Right}),
		)
		top += 5
	}
	return c
}

// totalsRows renders the money summary, tax row included only when
// the document says so.
func totalsRows(t document.TotalsBlock, accent props.Color) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(8),
			text.NewCol(2, t.SubtotalLabel, props.Text{Size: 9}),
			text.NewCol(2, t.Subtotal, props.Text{Size: 9, Align: align.Right}),
		),
	}
	if t.ShowTax {
		rows = append(rows, row.New(6).Add(
			col.New(8),
			text.NewCol(2, t.TaxLabel, props.Text{Size: 9}),
			text.NewCol(2, t.TaxAmount, props.Text{Size: 9, Align: align.Right}),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(8),
		text.NewCol(2, t.TotalLabel, props.Text{Style: fontstyle.Bold, Size: 11, Color: &accent, Top: 1}),
		text.NewCol(2, t.Total, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: &accent, Top: 1}),
	))
	return rows
}
