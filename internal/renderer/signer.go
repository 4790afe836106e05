package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
	"github.com/sunthewhat/easy-event-api/type/shared"
)

// IDocumentSigner signs generated PDFs. Implementations fall back to the
// unsigned document when signing is disabled or fails.
type IDocumentSigner interface {
	SignPDF(pdfBytes []byte, reason string, reference string) ([]byte, error)
	IsEnabled() bool
}

type DocumentSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

var _ IDocumentSigner = (*DocumentSigner)(nil)

func NewDocumentSigner(config *shared.Config) (*DocumentSigner, error) {
	if config.SigningEnabled == nil || !*config.SigningEnabled {
		slog.Info("PDF signing disabled in configuration")
		return &DocumentSigner{enabled: false}, nil
	}

	if config.SigningCertPath == nil || config.SigningKeyPath == nil {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certificate, err := loadCertificate(*config.SigningCertPath)
	if err != nil {
		return nil, err
	}

	privateKey, err := loadPrivateKey(*config.SigningKeyPath)
	if err != nil {
		return nil, err
	}

	slog.Info("Document signer initialized successfully",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &DocumentSigner{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func loadCertificate(certPath string) (*x509.Certificate, error) {
	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", certPath, err)
	}

	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", certPath)
	}

	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return certificate, nil
}

func loadPrivateKey(keyPath string) (*rsa.PrivateKey, error) {
	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", keyPath, err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", keyPath)
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err == nil {
		return privateKey, nil
	}

	// PKCS8 fallback
	key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA format")
	}
	return rsaKey, nil
}

// SignPDF applies an approval signature. reference identifies the document in logs.
func (s *DocumentSigner) SignPDF(pdfBytes []byte, reason string, reference string) ([]byte, error) {
	if len(pdfBytes) == 0 {
		return pdfBytes, fmt.Errorf("empty PDF bytes")
	}

	if !s.enabled || s.privateKey == nil || s.certificate == nil {
		slog.Debug("PDF signing disabled, returning unsigned PDF", "reference", reference)
		return pdfBytes, nil
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "Easy Event System",
				Location: "Event Management Platform",
				Reason:   reason,
				Date:     time.Now(),
			},
			CertType:   sign.ApprovalSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	var outputBuffer bytes.Buffer

	var signingError error
	func() {
		defer func() {
			if r := recover(); r != nil {
				signingError = fmt.Errorf("panic during signing: %v", r)
			}
		}()

		pdfReader, err := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
		if err != nil {
			signingError = err
			return
		}

		inputReader.Seek(0, io.SeekStart)
		signingError = sign.Sign(inputReader, &outputBuffer, pdfReader, int64(len(pdfBytes)), signData)
	}()

	if signingError != nil || outputBuffer.Len() == 0 {
		slog.Warn("PDF signing failed, returning unsigned PDF",
			"reference", reference,
			"error", signingError)
		return pdfBytes, nil
	}

	slog.Info("PDF signed successfully",
		"reference", reference,
		"original_size", len(pdfBytes),
		"signed_size", outputBuffer.Len())

	return outputBuffer.Bytes(), nil
}

func (s *DocumentSigner) IsEnabled() bool {
	return s.enabled
}
