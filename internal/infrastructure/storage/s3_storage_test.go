package storage

import (
	"context"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		cfg := &config.StorageConfig{
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
		}
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing access key returns error", func(t *testing.T) {
		cfg := &config.StorageConfig{
			Bucket:          "station-assets",
			SecretAccessKey: "test-secret",
		}
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access key is required")
	})

	t.Run("missing secret key returns error", func(t *testing.T) {
		cfg := &config.StorageConfig{
			Bucket:      "station-assets",
			AccessKeyID: "test-key",
		}
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret key is required")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		cfg := &config.StorageConfig{
			Bucket:          "station-assets",
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
			Region:          "ap-south-1",
			Endpoint:        "http://localhost:9000",
			UsePathStyle:    true,
		}
		storage, err := NewS3ObjectStorage(cfg,
			WithLogger(zap.NewNop()),
			WithPresignExpiration(30*time.Minute))
		require.NoError(t, err)
		require.NotNil(t, storage)
		assert.Equal(t, "station-assets", storage.bucket)
		assert.Equal(t, 30*time.Minute, storage.presignExpiration)
	})
}

func TestS3ObjectStorage_EmptyKeyGuards(t *testing.T) {
	cfg := &config.StorageConfig{
		Bucket:          "station-assets",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		Endpoint:        "http://localhost:9000",
	}
	storage, err := NewS3ObjectStorage(cfg)
	require.NoError(t, err)

	ctx := context.Background()

	_, _, err = storage.GenerateUploadURL(ctx, "", "image/png", 0)
	assert.Error(t, err)

	_, _, err = storage.GenerateDownloadURL(ctx, "", 0)
	assert.Error(t, err)

	assert.Error(t, storage.DeleteObject(ctx, ""))

	_, err = storage.ObjectExists(ctx, "")
	assert.Error(t, err)
}
