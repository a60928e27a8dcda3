package render

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/billcraft/billcraft/internal/invoice/document"
)

// modernTemplate uses a full-width accent banner and zebra-striped
// item rows.
type modernTemplate struct{}

var (
	oceanBlue = props.Color{Red: 46, Green: 134, Blue: 171}
	iceBlue   = props.Color{Red: 232, Green: 242, Blue: 248}
	inkGrey   = props.Color{Red: 90, Green: 98, Blue: 104}
)

func (t *modernTemplate) Name() string { return ModernTemplate }

func (t *modernTemplate) Description() string {
	return "Accent banner with zebra-striped items"
}

func (t *modernTemplate) Layout(doc document.Document) []core.Row {
	rows := make([]core.Row, 0, 14+len(doc.Items.Rows))

	// Banner: title and number on an accent background.
	banner := row.New(18).Add(
		text.NewCol(8, doc.Header.Title, props.Text{
			Size:  24,
			Style: fontstyle.Bold,
			Color: &white,
			Left:  2,
			Top:   3,
		}),
		text.NewCol(4, doc.Header.InvoiceNumber, props.Text{
			Size:  12,
			Align: align.Right,
			Color: &white,
			Right: 2,
			Top:   6,
		}),
	).WithStyle(&props.Cell{BackgroundColor: &oceanBlue})
	rows = append(rows, banner)

	// Company identity under the banner.
	if doc.Header.LogoPath != "" {
		rows = append(rows, row.New(16).Add(
			image.NewFromFileCol(3, doc.Header.LogoPath, props.Rect{Percent: 75, Top: 2}),
			col.New(9),
		))
	} else if doc.Header.CompanyName != "" {
		rows = append(rows, row.New(10).Add(
			text.NewCol(12, doc.Header.CompanyName, props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Color: &oceanBlue,
				Top:   2,
			}),
		))
	}

	// Parties and details.
	rows = append(rows, row.New(34).Add(
		partyCol(4, doc.Parties.From, oceanBlue),
		partyCol(4, doc.Parties.To, oceanBlue),
		detailsCol(4, doc.Details),
	))

	// Item table with zebra rows.
	rows = append(rows, row.New(8).Add(
		text.NewCol(6, doc.Items.Headers[0], props.Text{Style: fontstyle.Bold, Size: 9, Color: &white, Left: 1, Top: 2}),
		text.NewCol(2, doc.Items.Headers[1], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &white, Top: 2}),
		text.NewCol(2, doc.Items.Headers[2], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &white, Top: 2}),
		text.NewCol(2, doc.Items.Headers[3], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &white, Top: 2, Right: 1}),
	).WithStyle(&props.Cell{BackgroundColor: &oceanBlue}))

	for i, item := range doc.Items.Rows {
		r := row.New(7).Add(
			text.NewCol(6, item.Description, props.Text{Size: 9, Left: 1, Top: 1}),
			text.NewCol(2, item.Quantity, props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.NewCol(2, item.Rate, props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: &iceBlue})
		}
		rows = append(rows, r)
	}

	// Totals.
	rows = append(rows, totalsRows(doc.Totals, oceanBlue)...)

	// Notes.
	if doc.HasNotes() {
		rows = append(rows,
			row.New(7).Add(text.NewCol(12, "Notes:", props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &oceanBlue,
				Top:   3,
			})),
			row.New(12).Add(text.NewCol(12, doc.Notes, props.Text{Size: 9})),
		)
	}

	// Footer.
	rows = append(rows,
		row.New(8).Add(text.NewCol(12, doc.Footer.Message, props.Text{
			Size:  9,
			Align: align.Center,
			Color: &inkGrey,
			Top:   3,
		})),
		row.New(5).Add(text.NewCol(12, doc.Footer.GeneratedAt, props.Text{
			Size:  7,
			Align: align.Center,
			Color: &inkGrey,
		})),
	)

	return rows
}
