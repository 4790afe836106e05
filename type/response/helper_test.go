package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-event-api/internal/ticketsheet"
)

func TestSendTicketSheetError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
		wantCode       string
	}{
		{
			name:           "placement is a client error",
			err:            ticketsheet.ValidatePlacement(ticketsheet.Rect{X: 901, Y: 0, Width: 100, Height: 10}, ticketsheet.Size{Width: 1000, Height: 500}),
			wantStatusCode: fiber.StatusBadRequest,
			wantCode:       "InvalidBarcodePlacement",
		},
		{
			name:           "empty batch",
			err:            ticketsheet.ValidateBatch(nil),
			wantStatusCode: fiber.StatusBadRequest,
			wantCode:       "EmptyBatch",
		},
		{
			name:           "render failure",
			err:            &ticketsheet.Error{Code: ticketsheet.CodeTicketRender, Message: "failed to render ticket", Token: "T9", Internal: true},
			wantStatusCode: fiber.StatusInternalServerError,
			wantCode:       "TicketRenderError",
		},
		{
			name:           "timeout",
			err:            &ticketsheet.Error{Code: ticketsheet.CodeBatchTimeout, Message: "too slow"},
			wantStatusCode: fiber.StatusServiceUnavailable,
			wantCode:       "BatchTimeout",
		},
		{
			name:           "internal decode fault",
			err:            &ticketsheet.Error{Code: ticketsheet.CodeTemplateDecode, Message: "encode failed", Internal: true},
			wantStatusCode: fiber.StatusInternalServerError,
			wantCode:       "TemplateDecodeError",
		},
		{
			name:           "plain error",
			err:            errors.New("boom"),
			wantStatusCode: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return SendTicketSheetError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var payload map[string]any
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, false, payload["success"])
			assert.NotEmpty(t, payload["message"])
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, payload["error"])
			}
		})
	}
}

func TestSendTicketSheetError_EchoesOffendingFields(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SendTicketSheetError(c, ticketsheet.ValidatePlacement(
			ticketsheet.Rect{X: 10, Y: 450, Width: 100, Height: 60},
			ticketsheet.Size{Width: 1000, Height: 500},
		))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Data map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 450, payload.Data["y"])
	assert.Equal(t, 60, payload.Data["height"])
	assert.Equal(t, 500, payload.Data["template_height"])
}
