package util

import (
	"context"
	"fmt"
	"sync"
)

// MockFileStorage is an in-memory IFileStorage for tests.
type MockFileStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte

	UploadFunc      func(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) (string, error)
	DownloadFunc    func(ctx context.Context, bucketName string, objectName string) ([]byte, error)
	DeleteByURLFunc func(ctx context.Context, url string, bucketName string) error
}

var _ IFileStorage = (*MockFileStorage)(nil)

func NewMockFileStorage() *MockFileStorage {
	return &MockFileStorage{Objects: map[string][]byte{}}
}

func (m *MockFileStorage) Upload(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, bucketName, objectName, data, contentType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[bucketName+"/"+objectName] = data
	return ObjectURL("storage.test", true, bucketName, objectName), nil
}

func (m *MockFileStorage) Download(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, bucketName, objectName)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[bucketName+"/"+objectName]
	if !ok {
		return nil, fmt.Errorf("object %s/%s not found", bucketName, objectName)
	}
	return data, nil
}

func (m *MockFileStorage) DeleteByURL(ctx context.Context, url string, bucketName string) error {
	if m.DeleteByURLFunc != nil {
		return m.DeleteByURLFunc(ctx, url, bucketName)
	}
	objectName, err := ExtractObjectNameFromURL(url, bucketName)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, bucketName+"/"+objectName)
	return nil
}

// Count returns how many objects are stored.
func (m *MockFileStorage) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Objects)
}
