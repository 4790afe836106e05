package ticketsheet

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry is A4 at 300 dpi, one PDF unit per pixel.
const (
	PageWidth    = 2480
	PageHeight   = 3508
	Columns      = 2
	Rows         = 5
	Margin       = 40
	SlotsPerPage = Columns * Rows
)

// Slot is where one ticket lands on the sheet.
type Slot struct {
	Page int
	X    int
	Y    int
}

// SlotFor returns the row-major slot of the index-th ticket.
func SlotFor(index int) Slot {
	pos := index % SlotsPerPage
	col := pos % Columns
	row := pos / Columns
	return Slot{
		Page: index / SlotsPerPage,
		X:    col*(TicketWidth+Margin) + Margin,
		Y:    row*(TicketHeight+Margin) + Margin,
	}
}

// PageCount is the number of pages needed for n tickets.
func PageCount(n int) int {
	return (n + SlotsPerPage - 1) / SlotsPerPage
}

// ComposePDF lays PNG tickets out on grid pages in the given order. A nil entry
// leaves its slot empty. A ticket that cannot be placed is logged and skipped.
// It returns the PDF bytes and the number of pages written.
func ComposePDF(tickets [][]byte) ([]byte, int, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pages := 0

	for i, ticket := range tickets {
		slot := SlotFor(i)
		if slot.Page >= pages {
			pdf.AddPage()
			pages++
		}
		if ticket == nil {
			continue
		}

		name := fmt.Sprintf("ticket-%d", i)
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(ticket))
		if pdf.Ok() {
			pdf.ImageOptions(name, float64(slot.X), float64(slot.Y), TicketWidth, TicketHeight, false, opts, 0, "")
		}
		if err := pdf.Error(); err != nil {
			slog.Warn("TicketSheet ComposePDF skipped slot", "index", i, "page", slot.Page, "error", err)
			pdf.ClearError()
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("write ticket sheet pdf: %w", err)
	}
	return buf.Bytes(), pages, nil
}
