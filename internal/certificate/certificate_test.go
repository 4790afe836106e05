package certificate

import (
	"bytes"
	"testing"
	"time"

	"github.com/digitorus/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render(Data{
		ParticipantName: "José Ramírez",
		EventName:       "Go Meetup",
		IssuedAt:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	r, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Equal(t, 1, r.NumPage())
}

func TestRender_RequiresNames(t *testing.T) {
	_, err := Render(Data{EventName: "Go Meetup"})
	assert.Error(t, err)

	_, err = Render(Data{ParticipantName: "Ada"})
	assert.Error(t, err)
}

func TestFormatDateAndObjectName(t *testing.T) {
	assert.Equal(t, "1 March 2025", FormatDate(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "certificates/cert_3_9.pdf", ObjectName(3, 9))
}
