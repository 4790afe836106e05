package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `environment: false
port: ":8000"
backend_url: "http://localhost:8000"
server_url: "http://localhost:3000"
cors: ["http://localhost:3000"]
postgres: "host=localhost"
mongo: "mongodb://localhost:27017"
mongo_database: "easyevent"
minio_endpoint: "localhost:9000"
minio_access_key: "key"
minio_secret_key: "secret"
bucket_resource: "resources"
bucket_ticket: "tickets"
bucket_certificate: "certificates"
mail_host: "smtp.example.com"
mail_user: "events@example.com"
mail_pass: "pass"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse(writeConfig(t, baseConfig+`ticket_sheet:
  workers: 4
  failure_mode: collect
`))
	require.NoError(t, err)

	assert.Equal(t, ":8000", *cfg.Port)
	assert.Equal(t, "tickets", *cfg.BucketTicket)
	assert.Nil(t, cfg.MinIoSecure)
	require.NotNil(t, cfg.TicketSheet)
	assert.Equal(t, 4, *cfg.TicketSheet.Workers)
	assert.Equal(t, "collect", *cfg.TicketSheet.FailureMode)
	assert.Nil(t, cfg.TicketSheet.MaxUploadMB)
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"Missing required key", "port: \":8000\"\n"},
		{"Unknown failure mode", baseConfig + "ticket_sheet:\n  failure_mode: retry\n"},
		{"Too many workers", baseConfig + "ticket_sheet:\n  workers: 500\n"},
		{"Broken yaml", "port: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
