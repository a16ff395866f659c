// Package backup stores export documents outside the record store.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Sink persists a named backup blob.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
}

// ObjectName returns a unique name for doc: its download filename plus a short random suffix.
func ObjectName(doc domain.ExportDocument) string {
	base := strings.TrimSuffix(doc.Filename(), ".json")
	return fmt.Sprintf("%s-%s.json", base, uuid.NewString()[:8])
}

// Encode renders doc in the export file format.
func Encode(doc domain.ExportDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export document: %w", err)
	}
	return data, nil
}

// DirSink writes backups as files in a local directory.
type DirSink struct {
	Dir string
}

func (s DirSink) Put(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o750); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("write backup %s: %w", path, err)
	}
	return nil
}

// MinioSink uploads backups to an S3-compatible bucket.
type MinioSink struct {
	client     *minio.Client
	bucketName string
}

// NewMinioSink connects to endpoint and creates bucketName when it does not exist.
func NewMinioSink(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinioSink, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioSink{client: client, bucketName: bucketName}, nil
}

func (s *MinioSink) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucketName, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload backup %s: %w", name, err)
	}
	return nil
}
