package export

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/RMahshie/pants/internal/storage"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"
	"github.com/xuri/excelize/v2"
)

const (
	minioUser     = "pantsadmin"
	minioPassword = "pantssecret"
	exportBucket  = "pants-exports"
)

// setupMinio starts a MinIO container with an empty export bucket and
// returns its host:port
func setupMinio(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := tcminio.Run(ctx,
		"minio/minio:RELEASE.2024-01-16T16-07-38Z",
		tcminio.WithUsername(minioUser),
		tcminio.WithPassword(minioPassword),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(minioUser, minioPassword, ""),
		Secure: false,
	})
	require.NoError(t, err)
	require.NoError(t, client.MakeBucket(ctx, exportBucket, miniogo.MakeBucketOptions{}))

	return endpoint
}

func TestExportRange_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	endpoint := setupMinio(t)
	ctx := context.Background()

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Bucket:    exportBucket,
		Endpoint:  endpoint,
		AccessKey: minioUser,
		SecretKey: minioPassword,
	})
	require.NoError(t, err)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	nutritionSvc := &MockNutritionService{}
	nutritionSvc.On("RangeSummaries", mock.Anything, from, to).Return(sampleSummaries(), nil)

	svc := NewService(nutritionSvc, store, 10*time.Minute)
	result, err := svc.ExportRange(ctx, from, to)
	require.NoError(t, err)

	t.Run("object is stored with the spreadsheet content type", func(t *testing.T) {
		client, err := miniogo.New(endpoint, &miniogo.Options{
			Creds: credentials.NewStaticV4(minioUser, minioPassword, ""),
		})
		require.NoError(t, err)

		info, err := client.StatObject(ctx, exportBucket, result.Key, miniogo.StatObjectOptions{})
		require.NoError(t, err)
		assert.Equal(t, storage.ContentTypeXLSX, info.ContentType)
		assert.Greater(t, info.Size, int64(0))
	})

	t.Run("presigned URL serves the workbook", func(t *testing.T) {
		resp, err := http.Get(result.DownloadURL)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		food, err := f.GetCellValue(DiarySheet, "C2")
		require.NoError(t, err)
		assert.Equal(t, "Oats", food)
	})

	t.Run("delete removes the export", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, result.Key))

		resp, err := http.Get(result.DownloadURL)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
