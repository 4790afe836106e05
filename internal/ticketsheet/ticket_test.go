package ticketsheet

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_TicketSizeAndBarcode(t *testing.T) {
	tpl := whiteTemplate(t, 1280, 720)
	r := NewRenderer(tpl, Rect{X: 320, Y: 480, Width: 640, Height: 160})

	assert.Equal(t, Rect{X: 300, Y: 452, Width: 600, Height: 150}, r.BarcodeRect())

	ticket, err := r.Render("T1")
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(ticket))
	require.NoError(t, err)
	assert.Equal(t, TicketWidth, cfg.Width)
	assert.Equal(t, TicketHeight, cfg.Height)

	assert.Equal(t, "T1", decodeTicket(t, ticket, r.BarcodeRect()))
}

func TestRenderer_BaseCanvasIsNotMutated(t *testing.T) {
	tpl := whiteTemplate(t, 600, 340)
	r := NewRenderer(tpl, Rect{X: 50, Y: 50, Width: 250, Height: 80})

	first, err := r.Render("FIRST-TOKEN")
	require.NoError(t, err)
	second, err := r.Render("B2")
	require.NoError(t, err)

	assert.Equal(t, "FIRST-TOKEN", decodeTicket(t, first, r.BarcodeRect()))
	assert.Equal(t, "B2", decodeTicket(t, second, r.BarcodeRect()))
}

func TestRenderer_LetterboxIsWhite(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	asset, err := LoadTemplate("wide.png", "image/png", pngBytes(t, solidImage(1280, 720, red)))
	require.NoError(t, err)

	r := NewRenderer(asset, Rect{X: 100, Y: 100, Width: 400, Height: 120})
	img, err := r.RenderImage("ABC123")
	require.NoError(t, err)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, white, img.NRGBAAt(600, 0), "top letterbox band")
	assert.Equal(t, white, img.NRGBAAt(600, 679), "bottom letterbox band")
	assert.Equal(t, red, img.NRGBAAt(1100, 600), "template area")
}

func TestRenderer_RenderFailureCarriesToken(t *testing.T) {
	r := NewRenderer(whiteTemplate(t, 1200, 680), Rect{X: 10, Y: 10, Width: 300, Height: 100})

	_, err := r.Render("")
	require.Error(t, err)
	assert.Equal(t, CodeTicketRender, CodeOf(err))
}

func TestRenderer_NarrowPlacementIsWidened(t *testing.T) {
	tpl := whiteTemplate(t, TicketWidth, TicketHeight)
	token := "A1B2C3D4E5F6"

	tests := []struct {
		name      string
		placement Rect
		want      Rect
	}{
		{name: "about its centre", placement: Rect{X: 500, Y: 300, Width: 100, Height: 60}, want: Rect{X: 467, Y: 300, Width: 167, Height: 60}},
		{name: "kept on the canvas", placement: Rect{X: 1100, Y: 300, Width: 100, Height: 60}, want: Rect{X: 1033, Y: 300, Width: 167, Height: 60}},
		{name: "wide enough already", placement: Rect{X: 100, Y: 300, Width: 400, Height: 60}, want: Rect{X: 100, Y: 300, Width: 400, Height: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(tpl, tt.placement)
			assert.Equal(t, tt.placement, r.BarcodeRect())

			rect, err := r.BarcodeRectFor(token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rect)

			ticket, err := r.Render(token)
			require.NoError(t, err)
			assert.Equal(t, token, decodeTicket(t, ticket, rect))
		})
	}
}
