package certificate

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Data is what gets printed on a participation certificate.
type Data struct {
	ParticipantName string
	EventName       string
	IssuedAt        time.Time
}

// Render produces a one page A4 certificate of participation.
func Render(data Data) ([]byte, error) {
	if data.ParticipantName == "" || data.EventName == "" {
		return nil, fmt.Errorf("participant name and event name are required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := pageW - left - right

	line := func(size float64, style string, text string, gap float64) {
		pdf.SetFont("Helvetica", style, size)
		pdf.CellFormat(width, size*0.5, tr(text), "", 1, "C", false, 0, "")
		pdf.Ln(gap)
	}

	pdf.Ln(40)
	line(24, "B", "Certificate of Participation", 16)
	line(18, "", "Awarded to:", 8)
	line(28, "BU", data.ParticipantName, 16)
	line(18, "", "For participating in:", 8)
	line(22, "B", data.EventName, 40)
	line(14, "", "Date: "+FormatDate(data.IssuedAt), 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write certificate pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func FormatDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// ObjectName is where a participant's certificate is stored.
func ObjectName(participantID int64, eventID int64) string {
	return fmt.Sprintf("certificates/cert_%d_%d.pdf", participantID, eventID)
}
