package webpack

import (
	"context"
	"fmt"
	"os"

	"revo-utils/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source reads the raw bytes of a stats file.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	String() string
}

// FileSource reads stats from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Read(context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

func (s FileSource) String() string {
	return s.Path
}

// StorageSource reads stats from an object in a bucket.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Key    string
}

func (s StorageSource) Read(ctx context.Context) ([]byte, error) {
	return storage.ReadObject(ctx, s.Client, s.Bucket, s.Key)
}

// Version returns the object's ETag, which changes whenever it is rewritten.
func (s StorageSource) Version(ctx context.Context) (string, error) {
	info, err := s.Client.StatObject(ctx, s.Bucket, s.Key, minio.StatObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", s, err)
	}
	return info.ETag, nil
}

func (s StorageSource) String() string {
	return s.Bucket + "/" + s.Key
}
