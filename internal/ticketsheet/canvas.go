package ticketsheet

import (
	"math"
)

const (
	TicketWidth  = 1200
	TicketHeight = 680

	minBarcodeWidth  = 100
	minBarcodeHeight = 50
)

// Layout describes how a template is contain-fitted into the ticket canvas.
type Layout struct {
	Scale     float64
	FitWidth  int
	FitHeight int
	OffsetX   int
	OffsetY   int
}

// FitLayout computes the uniform scale that fits the template inside the ticket
// canvas, enlarging small templates, and the offset that centers the result.
func FitLayout(templateSize Size) Layout {
	scale := math.Min(
		float64(TicketWidth)/float64(templateSize.Width),
		float64(TicketHeight)/float64(templateSize.Height),
	)

	fitW := max(1, min(TicketWidth, int(math.Round(float64(templateSize.Width)*scale))))
	fitH := max(1, min(TicketHeight, int(math.Round(float64(templateSize.Height)*scale))))

	return Layout{
		Scale:     scale,
		FitWidth:  fitW,
		FitHeight: fitH,
		OffsetX:   (TicketWidth - fitW) / 2,
		OffsetY:   (TicketHeight - fitH) / 2,
	}
}

// ScaleToCanvas maps a native-space rectangle into ticket canvas pixels using
// the layout's uniform scale and offset. Width and height are floored at a
// minimum printable barcode size.
func ScaleToCanvas(native Rect, layout Layout) Rect {
	return Rect{
		X:      layout.OffsetX + int(math.Round(float64(native.X)*layout.Scale)),
		Y:      layout.OffsetY + int(math.Round(float64(native.Y)*layout.Scale)),
		Width:  max(minBarcodeWidth, int(math.Round(float64(native.Width)*layout.Scale))),
		Height: max(minBarcodeHeight, int(math.Round(float64(native.Height)*layout.Scale))),
	}
}

// ClampToCanvas shifts and then shrinks r so it lies inside the ticket canvas.
func ClampToCanvas(r Rect) Rect {
	w := min(r.Width, TicketWidth)
	h := min(r.Height, TicketHeight)
	x := max(0, min(r.X, TicketWidth-w))
	y := max(0, min(r.Y, TicketHeight-h))
	return Rect{
		X:      x,
		Y:      y,
		Width:  min(w, TicketWidth-x),
		Height: min(h, TicketHeight-y),
	}
}
