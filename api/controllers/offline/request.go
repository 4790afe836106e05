package offline_controller

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/internal/ticketsheet"
	"github.com/sunthewhat/easy-event-api/type/payload"
)

// requestError is a client error that is not produced by the pipeline itself.
type requestError struct {
	message string
}

func (e *requestError) Error() string {
	return e.message
}

func placementError(msg string) *ticketsheet.Error {
	return &ticketsheet.Error{Code: ticketsheet.CodeInvalidBarcodePlacement, Message: msg}
}

// formInt reads a numeric form field, rounding fractional values half away from zero.
func formInt(c *fiber.Ctx, key string) (int, bool, error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) > math.MaxInt32 {
		return 0, true, placementError(fmt.Sprintf("%s must be a number", key))
	}
	return int(math.Round(value)), true, nil
}

func (ctrl *OfflineTicketController) readTemplate(c *fiber.Ctx) (*ticketsheet.TemplateAsset, error) {
	file, err := c.FormFile("template")
	if err != nil {
		return nil, &requestError{message: "Template file is required"}
	}
	if file.Size > ctrl.maxUploadBytes {
		return nil, &requestError{message: fmt.Sprintf("Template file too large (%dMB out of %dMB)", file.Size/(1024*1024), ctrl.maxUploadBytes/(1024*1024))}
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	return ticketsheet.LoadTemplate(file.Filename, file.Header.Get("Content-Type"), data)
}

// readPlacement returns the barcode rectangle in native template pixels. When a
// preview size is sent the four coordinates are treated as preview pixels.
func readPlacement(c *fiber.Ctx, templateSize ticketsheet.Size) (ticketsheet.Rect, error) {
	var rect ticketsheet.Rect
	fields := []struct {
		key   string
		value *int
	}{
		{"barcode_x", &rect.X},
		{"barcode_y", &rect.Y},
		{"barcode_width", &rect.Width},
		{"barcode_height", &rect.Height},
	}
	for _, field := range fields {
		value, present, err := formInt(c, field.key)
		if err != nil {
			return rect, err
		}
		if !present {
			return rect, placementError(fmt.Sprintf("%s is required", field.key))
		}
		*field.value = value
	}

	previewWidth, hasWidth, err := formInt(c, "preview_width")
	if err != nil {
		return rect, err
	}
	previewHeight, hasHeight, err := formInt(c, "preview_height")
	if err != nil {
		return rect, err
	}

	switch {
	case hasWidth && hasHeight:
		return ticketsheet.RescaleToTemplate(rect, ticketsheet.Size{Width: previewWidth, Height: previewHeight}, templateSize)
	case hasWidth || hasHeight:
		return rect, placementError("preview_width and preview_height must be sent together")
	}
	return rect, nil
}

// readParticipants decodes the optional participants field. ok is false when the field is absent.
func readParticipants(c *fiber.Ctx) ([]ticketsheet.Participant, bool, error) {
	raw := strings.TrimSpace(c.FormValue("participants"))
	if raw == "" {
		return nil, false, nil
	}

	var entries []payload.OfflineTicketParticipant
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, true, &requestError{message: "participants must be a JSON array of {name, token}"}
	}

	participants := make([]ticketsheet.Participant, len(entries))
	for i, entry := range entries {
		participants[i] = ticketsheet.Participant{Name: entry.Name, Token: entry.Token}
	}
	return participants, true, nil
}
