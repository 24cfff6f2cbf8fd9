package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"revo-utils/core/storage"
	"revo-utils/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"ValidConfig", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Region: "us-east-1"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "revo").Return(true, nil)
		assert.NoError(t, storage.EnsureBucket(ctx, m, "revo"))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "revo").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "revo", mock.Anything).Return(nil)
		assert.NoError(t, storage.EnsureBucket(ctx, m, "revo"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "revo").Return(false, errors.New("denied"))
		err := storage.EnsureBucket(ctx, m, "revo")
		assert.EqualError(t, err, "failed to check bucket revo: denied")
	})
}

func TestUpload(t *testing.T) {
	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "revo").Return(true, nil)
	m.On("PutObject", mock.Anything, "revo", "exports/a.xlsx", mock.Anything, int64(3), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "application/test"
	})).Return(minio.UploadInfo{Key: "exports/a.xlsx", Size: 3}, nil)

	info, err := storage.Upload(context.Background(), m, "revo", "exports/a.xlsx", []byte("abc"), "application/test")
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size)
	m.AssertExpectations(t)
}

func TestReadObject(t *testing.T) {
	m := new(mocks.Client)
	m.On("GetObject", mock.Anything, "revo", "stats.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"status":"done"}`))), nil)
	m.On("GetObject", mock.Anything, "revo", "missing.json", mock.Anything).
		Return(nil, errors.New("not found"))

	data, err := storage.ReadObject(context.Background(), m, "revo", "stats.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"done"}`, string(data))

	_, err = storage.ReadObject(context.Background(), m, "revo", "missing.json")
	assert.EqualError(t, err, "failed to get missing.json: not found")
}
