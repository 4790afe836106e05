package util

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sunthewhat/easy-event-api/common"
)

// IFileStorage is the object store used for designs, QR codes and certificates.
type IFileStorage interface {
	Upload(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, bucketName string, objectName string) ([]byte, error)
	DeleteByURL(ctx context.Context, url string, bucketName string) error
}

// MinIOStorage implements IFileStorage on top of a MinIO client.
type MinIOStorage struct {
	client   *minio.Client
	endpoint string
	secure   bool
}

var _ IFileStorage = (*MinIOStorage)(nil)

func InitMinIO() error {
	if common.Config.MinIoEndpoint == nil || common.Config.MinIoAccessKey == nil || common.Config.MinIoSecretKey == nil {
		return fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(*common.Config.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(*common.Config.MinIoAccessKey, *common.Config.MinIoSecretKey, ""),
		Secure: minioSecure(),
	})

	if err != nil {
		return fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	common.MinIOClient = client
	return nil
}

func minioSecure() bool {
	if common.Config.MinIoSecure == nil {
		return true
	}
	return *common.Config.MinIoSecure
}

// NewMinIOStorage wraps the client created by InitMinIO.
func NewMinIOStorage(client *minio.Client) *MinIOStorage {
	return &MinIOStorage{
		client:   client,
		endpoint: *common.Config.MinIoEndpoint,
		secure:   minioSecure(),
	}
}

// ObjectURL builds the public URL of an object.
func ObjectURL(endpoint string, secure bool, bucketName string, objectName string) string {
	scheme := "https"
	if !secure {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, bucketName, objectName)
}

func (s *MinIOStorage) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

func (s *MinIOStorage) Upload(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("MinIO client not initialized")
	}

	// Check if bucket exists, if not create it
	if err := s.ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	// Upload the file
	_, err := s.client.PutObject(ctx, bucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	// Return the object URL
	return ObjectURL(s.endpoint, s.secure, bucketName, objectName), nil
}

func (s *MinIOStorage) Download(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	if s.client == nil {
		return nil, fmt.Errorf("MinIO client not initialized")
	}

	object, err := s.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s *MinIOStorage) DeleteByURL(ctx context.Context, url string, bucketName string) error {
	if s.client == nil {
		return fmt.Errorf("MinIO client not initialized")
	}

	objectName, err := ExtractObjectNameFromURL(url, bucketName)
	if err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ExtractObjectNameFromURL extracts the object name from a MinIO URL
// Example: https://endpoint/bucket/path/to/file.pdf -> path/to/file.pdf
func ExtractObjectNameFromURL(url string, bucketName string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("URL is empty")
	}

	// Find the bucket name in the URL and extract everything after it
	bucketPrefix := fmt.Sprintf("/%s/", bucketName)
	idx := strings.Index(url, bucketPrefix)
	if idx == -1 {
		return "", fmt.Errorf("bucket name not found in URL")
	}

	objectName := url[idx+len(bucketPrefix):]
	if objectName == "" {
		return "", fmt.Errorf("object name is empty")
	}

	return objectName, nil
}
