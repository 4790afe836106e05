package ticketsheet

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const MimePNG = "image/png"

// TemplateAsset is a normalized ticket template: always PNG, with its native size.
type TemplateAsset struct {
	MimeType string
	Width    int
	Height   int
	Image    image.Image
	PNG      []byte
}

func (t *TemplateAsset) Size() Size {
	return Size{Width: t.Width, Height: t.Height}
}

func templateKind(filename, contentType string) (imaging.Format, bool) {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/png":
		return imaging.PNG, true
	case "image/jpeg", "image/jpg", "image/pjpeg":
		return imaging.JPEG, true
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return imaging.PNG, true
	case ".jpg", ".jpeg":
		return imaging.JPEG, true
	}
	return 0, false
}

// LoadTemplate validates an uploaded template and normalizes it to PNG.
// Only PNG and JPEG are accepted, judged by declared content type or file suffix.
func LoadTemplate(filename, contentType string, data []byte) (*TemplateAsset, error) {
	format, ok := templateKind(filename, contentType)
	if !ok {
		return nil, unsupportedTemplate(filename, contentType)
	}
	if len(data) == 0 {
		return nil, templateDecodeError("template file is empty", false, nil)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, templateDecodeError("failed to decode template image", false, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, templateDecodeError("template image has zero dimensions", false, nil)
	}

	pngBytes := data
	if format != imaging.PNG || !isPNG(data) {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, templateDecodeError("failed to re-encode template as PNG", true, err)
		}
		pngBytes = buf.Bytes()
	}

	return &TemplateAsset{
		MimeType: MimePNG,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Image:    img,
		PNG:      pngBytes,
	}, nil
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func isPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngMagic)
}
