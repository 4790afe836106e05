package ticketsheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

var errEmptyToken = errors.New("token is empty")

func encodeCode128(token string) (barcode.Barcode, error) {
	if token == "" {
		return nil, errEmptyToken
	}
	code, err := code128.Encode(token)
	if err != nil {
		return nil, fmt.Errorf("encode code128: %w", err)
	}
	return code, nil
}

// RenderBarcode draws a Code128 barcode of token that exactly fills width x height.
// Bars are black on white with no human readable text and no quiet zone.
func RenderBarcode(token string, width, height int) (*image.NRGBA, error) {
	code, err := encodeCode128(token)
	if err != nil {
		return nil, err
	}
	return drawBarcode(code, width, height)
}

// ModuleCount is the width of token's symbol in modules, the narrowest it can be
// drawn without dropping bars.
func ModuleCount(token string) (int, error) {
	code, err := encodeCode128(token)
	if err != nil {
		return 0, err
	}
	return code.Bounds().Dx(), nil
}

// drawBarcode stretches the symbol over width pixels. Pixel x shows module
// x*modules/width, so every module gets floor or ceil of width/modules pixels.
func drawBarcode(code barcode.Barcode, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid barcode size %dx%d", width, height)
	}

	modules := code.Bounds().Dx()
	if width < modules {
		return nil, fmt.Errorf("barcode needs at least %d px, got %d", modules, width)
	}

	row := make([]color.NRGBA, width)
	for x := range row {
		r, g, b, _ := code.At(x*modules/width, 0).RGBA()
		if r+g+b == 0 {
			row[x] = color.NRGBA{A: 255}
		} else {
			row[x] = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x, c := range row {
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst, nil
}
