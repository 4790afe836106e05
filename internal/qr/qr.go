package qr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// Size is the edge length of generated QR PNGs in pixels.
const Size = 400

const tokenLength = 12

// NewToken returns a 12 character upper-case hex ticket token.
func NewToken() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:tokenLength])
}

// RegistrationURL is what a ticket's QR code points to.
func RegistrationURL(serverURL string, token string) string {
	return fmt.Sprintf("%s/register?token=%s", strings.TrimRight(serverURL, "/"), url.QueryEscape(token))
}

// Encode renders content as a high error correction QR code PNG.
func Encode(content string) ([]byte, error) {
	code, err := qrcode.New(content, qrcode.High)
	if err != nil {
		return nil, fmt.Errorf("create qr code: %w", err)
	}
	png, err := code.PNG(Size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

// ObjectName is where a ticket's QR PNG is stored.
func ObjectName(eventID int64, token string) string {
	return fmt.Sprintf("events/%d/qr_%s.png", eventID, token)
}
