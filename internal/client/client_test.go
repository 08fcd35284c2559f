package client_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"jobify-backend/config"
	"jobify-backend/internal/client"
	v1 "jobify-backend/internal/delivery/http/v1"
	"jobify-backend/internal/repository/disk"
	"jobify-backend/internal/repository/kv"
	"jobify-backend/internal/usecase"
	"jobify-backend/pkg/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage, err := disk.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := kvstore.NewMemory()
	fileUC := usecase.NewFileUsecase(storage, nil, usecase.FileUsecaseConfig{})

	router := v1.NewRouter(v1.RouterDeps{
		JobUC:    usecase.NewJobUsecase(kv.NewJobRepository(store), nil),
		CVUC:     usecase.NewCVUsecase(kv.NewCVRepository(store), fileUC, nil),
		FileUC:   fileUC,
		HealthUC: usecase.NewHealthUsecase(),
		Config:   &config.Config{MaxUploadBytes: 10 << 20, FrontendURL: "http://localhost:3000"},
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := client.New(newServer(t).URL+"/", nil)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Server is running", health.Status)

	path := filepath.Join(t.TempDir(), "My Resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte(samplePDF), 0o644))

	res, err := c.UploadCV(ctx, path, client.UploadMeta{Name: "Backend", Tags: []string{"go"}, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "My Resume.pdf", res.File.OriginalName)
	assert.Equal(t, []string{"go"}, res.Metadata.Tags)
	assert.True(t, res.Metadata.IsActive)

	files, err := c.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, res.File.Filename, files[0].Filename)

	var buf bytes.Buffer
	n, err := c.Download(ctx, res.File.Filename, &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(samplePDF)), n)
	assert.Equal(t, samplePDF, buf.String())

	require.NoError(t, c.DeleteFile(ctx, res.File.Filename))

	err = c.DeleteFile(ctx, res.File.Filename)
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
	assert.Contains(t, err.Error(), "File not found")

	_, err = c.Download(ctx, res.File.Filename, &buf)
	assert.True(t, client.IsNotFound(err))
}

func TestClientRejectedUpload(t *testing.T) {
	c := client.New(newServer(t).URL, nil)

	path := filepath.Join(t.TempDir(), "resume.exe")
	require.NoError(t, os.WriteFile(path, []byte("MZ"), 0o644))

	_, err := c.UploadCV(context.Background(), path, client.UploadMeta{})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, usecase.MsgInvalidFileType, apiErr.Message)
}

func TestClientNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, nil).ListFiles(context.Background())
	require.Error(t, err)
	assert.Equal(t, "server returned 502: bad gateway", err.Error())
	assert.False(t, client.IsNotFound(err))
}

func TestClientMissingLocalFile(t *testing.T) {
	_, err := client.New("http://127.0.0.1:1", nil).UploadCV(context.Background(), "/does/not/exist.pdf", client.UploadMeta{})
	assert.Error(t, err)
}
