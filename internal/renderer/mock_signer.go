package renderer

// MockDocumentSigner is a mock implementation for testing
type MockDocumentSigner struct {
	SignPDFFunc func(pdfBytes []byte, reason string, reference string) ([]byte, error)
	Enabled     bool

	References []string
}

var _ IDocumentSigner = (*MockDocumentSigner)(nil)

func NewMockDocumentSigner() *MockDocumentSigner {
	return &MockDocumentSigner{}
}

func (m *MockDocumentSigner) SignPDF(pdfBytes []byte, reason string, reference string) ([]byte, error) {
	m.References = append(m.References, reference)
	if m.SignPDFFunc != nil {
		return m.SignPDFFunc(pdfBytes, reason, reference)
	}
	return pdfBytes, nil
}

func (m *MockDocumentSigner) IsEnabled() bool {
	return m.Enabled
}
