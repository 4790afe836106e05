package ticketsheet

import (
	"fmt"
	"math"
)

// Rect is a barcode rectangle in pixels. Which pixel space it lives in depends on the caller.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) fields() map[string]int {
	return map[string]int{
		"x":      r.X,
		"y":      r.Y,
		"width":  r.Width,
		"height": r.Height,
	}
}

// RescaleToTemplate maps a rectangle drawn on a preview of the template to the
// template's native pixel space. X and Y are scaled independently and every
// value is rounded half away from zero. The result is validated against the template bounds.
func RescaleToTemplate(preview Rect, previewSize, templateSize Size) (Rect, error) {
	if previewSize.Width <= 0 || previewSize.Height <= 0 {
		return Rect{}, invalidPlacement("preview size must be positive", map[string]int{
			"preview_width":  previewSize.Width,
			"preview_height": previewSize.Height,
		})
	}

	scaleX := float64(templateSize.Width) / float64(previewSize.Width)
	scaleY := float64(templateSize.Height) / float64(previewSize.Height)

	native := Rect{
		X:      int(math.Round(float64(preview.X) * scaleX)),
		Y:      int(math.Round(float64(preview.Y) * scaleY)),
		Width:  int(math.Round(float64(preview.Width) * scaleX)),
		Height: int(math.Round(float64(preview.Height) * scaleY)),
	}

	if err := ValidatePlacement(native, templateSize); err != nil {
		return Rect{}, err
	}
	return native, nil
}

// ValidatePlacement checks a native-space rectangle lies fully inside the template.
func ValidatePlacement(r Rect, templateSize Size) error {
	var problem string
	switch {
	case templateSize.Width <= 0 || templateSize.Height <= 0:
		problem = "template size must be positive"
	case r.Width <= 0 || r.Height <= 0:
		problem = "barcode width and height must be positive"
	case r.X < 0 || r.Y < 0:
		problem = "barcode position must not be negative"
	case r.X+r.Width > templateSize.Width:
		problem = fmt.Sprintf("barcode right edge %d exceeds template width %d", r.X+r.Width, templateSize.Width)
	case r.Y+r.Height > templateSize.Height:
		problem = fmt.Sprintf("barcode bottom edge %d exceeds template height %d", r.Y+r.Height, templateSize.Height)
	default:
		return nil
	}

	fields := r.fields()
	fields["template_width"] = templateSize.Width
	fields["template_height"] = templateSize.Height
	return invalidPlacement(problem, fields)
}
