package usecase_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jobify-backend/internal/domain"
	"jobify-backend/internal/repository/disk"
	"jobify-backend/internal/usecase"
	"jobify-backend/pkg/apperror"
	"jobify-backend/pkg/security/antivirus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n"

type fakeScanner struct {
	infected bool
	err      error
}

func (f fakeScanner) Scan(_ context.Context, _ string, data io.Reader) antivirus.ScanResult {
	_, _ = io.Copy(io.Discard, data)
	return antivirus.ScanResult{Infected: f.infected, ThreatName: "Eicar-Test-Signature", ScannerName: f.Name(), Error: f.err}
}

func (f fakeScanner) Name() string { return "fake" }

func newFileUC(t *testing.T, scanner antivirus.Scanner, cfg usecase.FileUsecaseConfig) (domain.FileUsecase, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := disk.NewFileStorage(dir)
	require.NoError(t, err)
	return usecase.NewFileUsecase(storage, scanner, cfg), dir
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func pdfUpload(name string) domain.UploadRequest {
	return domain.UploadRequest{
		OriginalName: "resume.pdf",
		Size:         int64(len(samplePDF)),
		Content:      strings.NewReader(samplePDF),
		Name:         name,
		Tags:         `["frontend","react"]`,
		IsActive:     "true",
	}
}

func TestFileUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("Should store the file under a generated name", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{})

		res, err := uc.Upload(ctx, pdfUpload("My CV"))
		require.NoError(t, err)

		assert.Regexp(t, `^My_CV_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z\.pdf$`, res.File.Filename)
		assert.Equal(t, "resume.pdf", res.File.OriginalName)
		assert.Equal(t, "application/pdf", res.File.Mimetype)
		assert.Equal(t, int64(len(samplePDF)), res.File.Size)
		assert.Equal(t, "My CV", res.Metadata.Name)
		assert.Equal(t, []string{"frontend", "react"}, res.Metadata.Tags)
		assert.True(t, res.Metadata.IsActive)

		data, err := os.ReadFile(filepath.Join(dir, res.File.Filename))
		require.NoError(t, err)
		assert.Equal(t, samplePDF, string(data))
	})

	t.Run("Should default the name to the original filename", func(t *testing.T) {
		uc, _ := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		req := pdfUpload("")
		req.IsActive = ""

		res, err := uc.Upload(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "resume", res.Metadata.Name)
		assert.True(t, strings.HasPrefix(res.File.Filename, "cv_"))
		assert.False(t, res.Metadata.IsActive)
	})

	t.Run("Should reject disallowed extensions without writing", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		req := pdfUpload("x")
		req.OriginalName = "resume.exe"

		_, err := uc.Upload(ctx, req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
		assert.Equal(t, usecase.MsgInvalidFileType, err.Error())
		assert.Empty(t, dirEntries(t, dir))
	})

	t.Run("Should accept extensions case-insensitively", func(t *testing.T) {
		uc, _ := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		req := pdfUpload("x")
		req.OriginalName = "RESUME.PDF"

		res, err := uc.Upload(ctx, req)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(res.File.Filename, ".PDF"), res.File.Filename)
		assert.Equal(t, "application/pdf", res.File.Mimetype)

		opened, err := uc.Open(ctx, res.File.Filename)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", opened.ContentType)
		require.NoError(t, opened.Content.Close())
	})

	t.Run("Should reject a missing file", func(t *testing.T) {
		uc, _ := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		_, err := uc.Upload(ctx, domain.UploadRequest{})
		require.Error(t, err)
		assert.Equal(t, usecase.MsgNoFile, err.Error())
	})

	t.Run("Should reject oversized streams and leave nothing behind", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{MaxUploadBytes: 10 << 20})
		big := bytes.Repeat([]byte("a"), 11<<20)
		req := pdfUpload("big")
		req.Size = -1
		req.Content = bytes.NewReader(append([]byte("%PDF-1.4\n"), big...))

		_, err := uc.Upload(ctx, req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
		assert.Equal(t, "File too large. Maximum size is 10MB.", err.Error())
		assert.Empty(t, dirEntries(t, dir))
	})

	t.Run("Should reject an oversized declared size up front", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{MaxUploadBytes: 1 << 20})
		req := pdfUpload("big")
		req.Size = 2 << 20

		_, err := uc.Upload(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Maximum size is 1MB")
		assert.Empty(t, dirEntries(t, dir))
	})

	t.Run("Should remove the stored file when tags are not valid JSON", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		req := pdfUpload("x")
		req.Tags = "not-json"

		_, err := uc.Upload(ctx, req)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, apperror.StatusCode(err))
		assert.Empty(t, dirEntries(t, dir))
	})

	t.Run("Should remove infected uploads", func(t *testing.T) {
		uc, dir := newFileUC(t, fakeScanner{infected: true}, usecase.FileUsecaseConfig{})

		_, err := uc.Upload(ctx, pdfUpload("x"))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
		assert.Empty(t, dirEntries(t, dir))
	})

	t.Run("Strict mode should reject content that does not match the extension", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{StrictContentCheck: true})
		req := pdfUpload("x")
		req.Content = strings.NewReader("MZ\x90\x00 this is an executable")

		_, err := uc.Upload(ctx, req)
		require.Error(t, err)
		assert.Equal(t, usecase.MsgInvalidFileType, err.Error())
		assert.Empty(t, dirEntries(t, dir))
	})

	t.Run("Strict mode should keep the sniffed bytes", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{StrictContentCheck: true})

		res, err := uc.Upload(ctx, pdfUpload("x"))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, res.File.Filename))
		require.NoError(t, err)
		assert.Equal(t, samplePDF, string(data))
	})
}

func TestFileAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list, open and delete stored files", func(t *testing.T) {
		uc, _ := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		res, err := uc.Upload(ctx, pdfUpload("x"))
		require.NoError(t, err)

		files, err := uc.List(ctx)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, res.File.Filename, files[0].Filename)

		opened, err := uc.Open(ctx, res.File.Filename)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", opened.ContentType)
		require.NoError(t, opened.Content.Close())

		require.NoError(t, uc.DeleteFile(ctx, res.File.Filename))
		err = uc.DeleteFile(ctx, res.File.Filename)
		assert.True(t, apperror.IsNotFound(err))
		assert.Equal(t, usecase.MsgFileNotFound, err.Error())
	})

	t.Run("Should list dotfiles alongside uploads", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.pdf"), []byte(samplePDF), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".cache"), 0o755))
		res, err := uc.Upload(ctx, pdfUpload("x"))
		require.NoError(t, err)

		files, err := uc.List(ctx)
		require.NoError(t, err)
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Filename)
		}
		assert.ElementsMatch(t, []string{".hidden.pdf", res.File.Filename}, names)
	})

	t.Run("Should refuse names that escape the directory", func(t *testing.T) {
		uc, dir := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		outside := filepath.Join(filepath.Dir(dir), "x")
		require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
		t.Cleanup(func() { os.Remove(outside) })

		for _, name := range []string{"../x", "..", "a/b.pdf", `..\x`} {
			_, err := uc.Open(ctx, name)
			assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err), name)
			err = uc.DeleteFile(ctx, name)
			assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err), name)
		}

		_, err := os.Stat(outside)
		assert.NoError(t, err)
	})

	t.Run("Preview should refuse non-PDF files", func(t *testing.T) {
		uc, _ := newFileUC(t, nil, usecase.FileUsecaseConfig{})
		req := pdfUpload("x")
		req.OriginalName = "resume.docx"
		req.Content = strings.NewReader("PK\x03\x04")
		req.Size = 4

		res, err := uc.Upload(ctx, req)
		require.NoError(t, err)

		_, err = uc.Preview(ctx, res.File.Filename)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))

		_, err = uc.Preview(ctx, "missing.pdf")
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestGenerateFilename(t *testing.T) {
	now := time.Date(2025, 9, 10, 12, 30, 45, 123_000_000, time.UTC)

	assert.Equal(t, "Jane_s_CV__v2__2025-09-10T12-30-45-123Z.pdf", usecase.GenerateFilename("Jane's CV (v2)", ".pdf", now))
	assert.Equal(t, "cv_2025-09-10T12-30-45-123Z.docx", usecase.GenerateFilename("", ".docx", now))
	assert.Equal(t, "___etc_passwd_2025-09-10T12-30-45-123Z.doc", usecase.GenerateFilename("../etc/passwd", ".doc", now))
}

func TestTooLargeMessage(t *testing.T) {
	assert.Equal(t, "File too large. Maximum size is 10MB.", usecase.TooLargeMessage(10<<20))
}
