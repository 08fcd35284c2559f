package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"jobify-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDownloader struct {
	data     string
	err      error
	filename string
}

func (s *stubDownloader) Download(_ context.Context, filename string, w io.Writer) (int64, error) {
	s.filename = filename
	if s.err != nil {
		return 0, s.err
	}
	n, err := io.WriteString(w, s.data)
	return int64(n), err
}

func TestDownloadCV(t *testing.T) {
	ctx := context.Background()
	pdf := "%PDF-1.4 body"

	t.Run("server copy wins", func(t *testing.T) {
		dl := &stubDownloader{data: pdf}
		var buf bytes.Buffer
		cv := domain.CV{Name: "A", ServerFilename: "A_2025.pdf", FileContent: base64.StdEncoding.EncodeToString([]byte("stale"))}

		n, err := downloadCV(ctx, cv, dl, &buf)
		require.NoError(t, err)
		assert.Equal(t, int64(len(pdf)), n)
		assert.Equal(t, "A_2025.pdf", dl.filename)
		assert.Equal(t, pdf, buf.String())
	})

	t.Run("server error is returned", func(t *testing.T) {
		dl := &stubDownloader{err: errors.New("server returned 404: File not found")}
		_, err := downloadCV(ctx, domain.CV{ServerFilename: "gone.pdf"}, dl, io.Discard)
		assert.EqualError(t, err, "server returned 404: File not found")
	})

	t.Run("inline base64 fallback", func(t *testing.T) {
		for _, content := range []string{
			base64.StdEncoding.EncodeToString([]byte(pdf)),
			"data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte(pdf)),
		} {
			dl := &stubDownloader{}
			var buf bytes.Buffer
			_, err := downloadCV(ctx, domain.CV{Name: "B", FileContent: content}, dl, &buf)
			require.NoError(t, err)
			assert.Equal(t, pdf, buf.String())
			assert.Empty(t, dl.filename)
		}
	})

	t.Run("corrupt inline content", func(t *testing.T) {
		_, err := downloadCV(ctx, domain.CV{Name: "C", FileContent: "%%%"}, &stubDownloader{}, io.Discard)
		assert.ErrorContains(t, err, "corrupt")
	})

	t.Run("nothing to download", func(t *testing.T) {
		_, err := downloadCV(ctx, domain.CV{Name: "D", FilePath: "/home/me/cv.pdf"}, &stubDownloader{}, io.Discard)
		assert.ErrorContains(t, err, "/home/me/cv.pdf")
	})
}
