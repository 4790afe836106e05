package ticketsheet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Renderer draws tickets for one batch. The base canvas is built once and never
// mutated, so a Renderer is safe for concurrent use.
type Renderer struct {
	base   *image.NRGBA
	layout Layout
	rect   Rect
}

// NewRenderer contain-fits the template into a white ticket canvas and resolves
// where the barcode goes on that canvas. placement is in native template pixels.
func NewRenderer(tpl *TemplateAsset, placement Rect) *Renderer {
	layout := FitLayout(tpl.Size())

	fitted := image.NewNRGBA(image.Rect(0, 0, layout.FitWidth, layout.FitHeight))
	xdraw.CatmullRom.Scale(fitted, fitted.Bounds(), tpl.Image, tpl.Image.Bounds(), xdraw.Src, nil)
	canvas := imaging.New(TicketWidth, TicketHeight, color.White)
	base := imaging.Paste(canvas, fitted, image.Pt(layout.OffsetX, layout.OffsetY))

	return &Renderer{
		base:   base,
		layout: layout,
		rect:   ClampToCanvas(ScaleToCanvas(placement, layout)),
	}
}

// BarcodeRect is the canvas rectangle resolved from the placement.
func (r *Renderer) BarcodeRect() Rect {
	return r.rect
}

// BarcodeRectFor is where token's barcode is drawn. A placement narrower than
// the symbol's module count is widened about its centre so no bar is dropped.
func (r *Renderer) BarcodeRectFor(token string) (Rect, error) {
	modules, err := ModuleCount(token)
	if err != nil {
		return Rect{}, err
	}
	return widenTo(r.rect, modules), nil
}

func widenTo(rect Rect, width int) Rect {
	if rect.Width >= width {
		return rect
	}
	grow := width - rect.Width
	return ClampToCanvas(Rect{
		X:      rect.X - grow/2,
		Y:      rect.Y,
		Width:  width,
		Height: rect.Height,
	})
}

func (r *Renderer) Layout() Layout {
	return r.layout
}

// RenderImage composites the token's barcode onto a fresh copy of the base canvas.
func (r *Renderer) RenderImage(token string) (*image.NRGBA, error) {
	rect, err := r.BarcodeRectFor(token)
	if err != nil {
		return nil, renderError(token, err)
	}
	code, err := RenderBarcode(token, rect.Width, rect.Height)
	if err != nil {
		return nil, renderError(token, err)
	}
	return imaging.Paste(r.base, code, image.Pt(rect.X, rect.Y)), nil
}

// Render returns the ticket as PNG bytes.
func (r *Renderer) Render(token string) ([]byte, error) {
	img, err := r.RenderImage(token)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestSpeed)); err != nil {
		return nil, renderError(token, err)
	}
	return buf.Bytes(), nil
}
