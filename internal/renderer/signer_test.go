package renderer

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-event-api/internal/certificate"
	"github.com/sunthewhat/easy-event-api/type/shared"
)

func ptr[T any](v T) *T {
	return &v
}

func writeKeyPair(t *testing.T) (string, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "Easy Event Test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}), 0o600))
	return certPath, keyPath
}

func samplePDF(t *testing.T) []byte {
	t.Helper()
	out, err := certificate.Render(certificate.Data{ParticipantName: "Ada", EventName: "Go Meetup", IssuedAt: time.Now()})
	require.NoError(t, err)
	return out
}

func TestNewDocumentSigner_Disabled(t *testing.T) {
	signer, err := NewDocumentSigner(&shared.Config{SigningEnabled: ptr(false)})
	require.NoError(t, err)
	assert.False(t, signer.IsEnabled())

	in := samplePDF(t)
	out, err := signer.SignPDF(in, "test", "ref-1")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestNewDocumentSigner_MissingPaths(t *testing.T) {
	_, err := NewDocumentSigner(&shared.Config{SigningEnabled: ptr(true)})
	assert.Error(t, err)

	_, err = NewDocumentSigner(&shared.Config{
		SigningEnabled:  ptr(true),
		SigningCertPath: ptr("/does/not/exist.pem"),
		SigningKeyPath:  ptr("/does/not/exist.key"),
	})
	assert.Error(t, err)
}

func TestDocumentSigner_SignPDF(t *testing.T) {
	certPath, keyPath := writeKeyPair(t)
	signer, err := NewDocumentSigner(&shared.Config{
		SigningEnabled:  ptr(true),
		SigningCertPath: &certPath,
		SigningKeyPath:  &keyPath,
	})
	require.NoError(t, err)
	assert.True(t, signer.IsEnabled())

	in := samplePDF(t)
	out, err := signer.SignPDF(in, "Certificate of participation", "cert-1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.GreaterOrEqual(t, len(out), len(in))

	_, err = signer.SignPDF(nil, "empty", "cert-2")
	assert.Error(t, err)
}
