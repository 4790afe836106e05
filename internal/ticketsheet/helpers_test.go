package ticketsheet

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"regexp"
	"strconv"
	"testing"

	"github.com/digitorus/pdf"
	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func whiteTemplate(t *testing.T, w, h int) *TemplateAsset {
	t.Helper()
	asset, err := LoadTemplate("template.png", "image/png", pngBytes(t, solidImage(w, h, color.White)))
	require.NoError(t, err)
	return asset
}

// decodeCode128 reads a single Code128 symbol from img after giving it a white border.
func decodeCode128(t *testing.T, img image.Image) string {
	t.Helper()
	b := img.Bounds()
	padded := imaging.Paste(solidImage(b.Dx()+80, b.Dy()+80, color.White), img, image.Pt(40, 40))

	bmp, err := gozxing.NewBinaryBitmapFromImage(padded)
	require.NoError(t, err)

	result, err := oned.NewCode128Reader().Decode(bmp, nil)
	require.NoError(t, err)
	return result.GetText()
}

// decodeTicket crops the barcode area out of a rendered ticket and decodes it.
func decodeTicket(t *testing.T, ticket []byte, rect Rect) string {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(ticket))
	require.NoError(t, err)
	crop := imaging.Crop(img, image.Rect(rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height))
	return decodeCode128(t, crop)
}

func openPDF(t *testing.T, data []byte) *pdf.Reader {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return r
}

func tinyTicket(t *testing.T) []byte {
	t.Helper()
	return pngBytes(t, solidImage(12, 7, color.White))
}

// placedImage is one image draw on a page, in PDF points with the origin at the bottom left.
type placedImage struct {
	ID   string
	X, Y float64
	W, H float64
}

var drawImageOp = regexp.MustCompile(`q ([0-9.]+) 0 0 ([0-9.]+) (-?[0-9.]+) (-?[0-9.]+) cm /I([0-9a-f]+) Do Q`)

// placedImages reads the image draws of a page from its content stream in drawing order.
func placedImages(t *testing.T, doc *pdf.Reader, page int) []placedImage {
	t.Helper()
	rc := doc.Page(page).V.Key("Contents").Reader()
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)

	var placed []placedImage
	for _, m := range drawImageOp.FindAllStringSubmatch(string(content), -1) {
		var nums [4]float64
		for i := range nums {
			nums[i], err = strconv.ParseFloat(m[i+1], 64)
			require.NoError(t, err)
		}
		placed = append(placed, placedImage{ID: m[5], W: nums[0], H: nums[1], X: nums[2], Y: nums[3]})
	}
	return placed
}

// pdfImageID is the resource id gofpdf gives ticket once it is embedded.
func pdfImageID(t *testing.T, ticket []byte) string {
	t.Helper()
	scratch := gofpdf.New("P", "pt", "A4", "")
	info := scratch.RegisterImageOptionsReader("ticket", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(ticket))
	require.NoError(t, scratch.Error())

	enc, err := info.GobEncode()
	require.NoError(t, err)
	return fmt.Sprintf("%x", sha1.Sum(enc))
}
