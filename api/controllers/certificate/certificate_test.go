package certificate_controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	certificate_controller "github.com/sunthewhat/easy-event-api/api/controllers/certificate"
	certificatemodel "github.com/sunthewhat/easy-event-api/api/model/certificateModel"
	fileuploadmodel "github.com/sunthewhat/easy-event-api/api/model/fileUploadModel"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

type fixture struct {
	certificates *certificatemodel.MockCertificateRepository
	uploads      *fileuploadmodel.MockFileUploadRepository
	storage      *util.MockFileStorage
	mailer       *util.MockMailer

	sent []int64
}

func newFixture() *fixture {
	f := &fixture{
		certificates: certificatemodel.NewMockCertificateRepository(),
		uploads:      fileuploadmodel.NewMockFileUploadRepository(),
		storage:      util.NewMockFileStorage(),
		mailer:       util.NewMockMailer(),
	}
	f.certificates.MarkSentFunc = func(id int64, sentAt time.Time) error {
		f.sent = append(f.sent, id)
		return nil
	}
	return f
}

func (f *fixture) app() *fiber.App {
	ctrl := certificate_controller.NewCertificateController(f.certificates, f.uploads, f.storage, f.mailer, "certificates", "resources")
	app := fiber.New(fiber.Config{BodyLimit: 16 * 1024 * 1024})
	app.Get("/certificates", ctrl.GetAll)
	app.Get("/certificates/templates", ctrl.GetTemplates)
	app.Post("/certificates/templates", ctrl.UploadTemplate)
	app.Post("/certificates/:id/send", ctrl.Send)
	return app
}

func readBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func storedCertificate(t *testing.T, storage *util.MockFileStorage) *model.Certificate {
	t.Helper()
	url, err := storage.Upload(context.Background(), "certificates", "certificates/cert_4_2.pdf", []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	return &model.Certificate{
		ID:            9,
		ParticipantID: 4,
		Path:          url,
		Participant: &model.Participant{
			ID:     4,
			Name:   "Ada",
			Email:  "ada@example.com",
			Ticket: &model.Ticket{ID: 1, Event: &model.Event{ID: 2, Name: "Go Meetup"}},
		},
	}
}

func TestCertificateController_GetAll(t *testing.T) {
	f := newFixture()
	f.certificates.GetAllFunc = func() ([]*model.Certificate, error) {
		return []*model.Certificate{{ID: 1}, {ID: 2}}, nil
	}

	resp, err := f.app().Test(httptest.NewRequest("GET", "/certificates", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, readBody(t, resp.Body)["data"], 2)

	resp, err = newFixture().app().Test(httptest.NewRequest("GET", "/certificates", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, []any{}, readBody(t, resp.Body)["data"])
}

func TestCertificateController_Send(t *testing.T) {
	f := newFixture()
	cert := storedCertificate(t, f.storage)
	f.certificates.GetByIdFunc = func(id int64) (*model.Certificate, error) {
		assert.Equal(t, int64(9), id)
		return cert, nil
	}
	var attachment []byte
	f.mailer.SendCertificateFunc = func(to string, participantName string, eventName string, certificate []byte) error {
		assert.Equal(t, "Ada", participantName)
		assert.Equal(t, "Go Meetup", eventName)
		attachment = certificate
		return nil
	}

	resp, err := f.app().Test(httptest.NewRequest("POST", "/certificates/9/send", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Certificate sent successfully", readBody(t, resp.Body)["message"])
	assert.Equal(t, []string{"ada@example.com"}, f.mailer.Certificates)
	assert.Equal(t, []byte("%PDF-1.4"), attachment)
	assert.Equal(t, []int64{9}, f.sent)
}

func TestCertificateController_SendFailures(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setup          func(t *testing.T, f *fixture)
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "invalid id",
			path:           "/certificates/abc/send",
			wantStatusCode: fiber.StatusBadRequest,
			wantMessage:    "Invalid certificate ID",
		},
		{
			name:           "not found",
			path:           "/certificates/9/send",
			wantStatusCode: fiber.StatusNotFound,
			wantMessage:    "Certificate not found",
		},
		{
			name: "object missing",
			path: "/certificates/9/send",
			setup: func(t *testing.T, f *fixture) {
				cert := storedCertificate(t, f.storage)
				f.storage.Objects = map[string][]byte{}
				f.certificates.GetByIdFunc = func(id int64) (*model.Certificate, error) { return cert, nil }
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "Certificate file is unavailable",
		},
		{
			name: "path in another bucket",
			path: "/certificates/9/send",
			setup: func(t *testing.T, f *fixture) {
				cert := storedCertificate(t, f.storage)
				cert.Path = "https://storage.test/elsewhere/cert.pdf"
				f.certificates.GetByIdFunc = func(id int64) (*model.Certificate, error) { return cert, nil }
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "Certificate file is unavailable",
		},
		{
			name: "mail failure",
			path: "/certificates/9/send",
			setup: func(t *testing.T, f *fixture) {
				cert := storedCertificate(t, f.storage)
				f.certificates.GetByIdFunc = func(id int64) (*model.Certificate, error) { return cert, nil }
				f.mailer.SendCertificateFunc = func(to string, participantName string, eventName string, certificate []byte) error {
					return errors.New("smtp down")
				}
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "Failed to send certificate email",
		},
		{
			name: "database error",
			path: "/certificates/9/send",
			setup: func(t *testing.T, f *fixture) {
				f.certificates.GetByIdFunc = func(id int64) (*model.Certificate, error) {
					return nil, errors.New("connection refused")
				}
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(t, f)
			}

			resp, err := f.app().Test(httptest.NewRequest("POST", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, readBody(t, resp.Body)["message"])
			assert.Empty(t, f.sent)
		})
	}
}

func templateRequest(t *testing.T, filename string, contentType string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="certificateTemplate"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.WriteField("name", "Gold border"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/certificates/templates", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCertificateController_UploadTemplate(t *testing.T) {
	f := newFixture()
	var created *model.CertificateTemplate
	f.certificates.CreateTemplateFunc = func(template *model.CertificateTemplate) error {
		template.ID = 3
		created = template
		return nil
	}

	resp, err := f.app().Test(templateRequest(t, "border.pdf", "application/pdf", []byte("%PDF-1.4")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Template uploaded successfully", readBody(t, resp.Body)["message"])

	require.NotNil(t, created)
	assert.Equal(t, "Gold border", created.Name)
	assert.Equal(t, "application/pdf", created.FileType)
	assert.Contains(t, created.FileURL, "https://storage.test/resources/certificates/template_")
	assert.Equal(t, 1, f.storage.Count())

	require.Len(t, f.uploads.Created, 1)
	assert.Equal(t, model.UploadTypeCertificateTemplate, f.uploads.Created[0].UploadType)
	assert.Equal(t, int64(3), *f.uploads.Created[0].RelatedID)
}

func TestCertificateController_UploadTemplateRejected(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		wantMessage string
	}{
		{"no file", "", "", nil, "No file uploaded"},
		{"wrong type", "border.gif", "image/gif", []byte("gif"), "Only PNG, JPG, and PDF files are allowed"},
		{"too large", "border.png", "image/png", make([]byte, 10*1024*1024+1), "File size must be less than 10MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			resp, err := f.app().Test(templateRequest(t, tt.filename, tt.contentType, tt.data), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, readBody(t, resp.Body)["message"])
			assert.Equal(t, 0, f.storage.Count())
		})
	}
}

func TestCertificateController_UploadTemplateRollsBackObject(t *testing.T) {
	f := newFixture()
	f.certificates.CreateTemplateFunc = func(template *model.CertificateTemplate) error {
		return errors.New("connection refused")
	}

	resp, err := f.app().Test(templateRequest(t, "border.png", "image/png", []byte("png")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 0, f.storage.Count())
	assert.Empty(t, f.uploads.Created)
}

func TestCertificateController_GetTemplates(t *testing.T) {
	f := newFixture()
	f.certificates.GetTemplatesFunc = func() ([]*model.CertificateTemplate, error) {
		return []*model.CertificateTemplate{{ID: 1, Name: "Gold"}}, nil
	}

	resp, err := f.app().Test(httptest.NewRequest("GET", "/certificates/templates", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, readBody(t, resp.Body)["data"], 1)
}
