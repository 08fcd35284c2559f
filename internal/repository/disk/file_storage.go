// Package disk keeps uploaded CV binaries in a single managed directory.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"jobify-backend/internal/domain"
	"jobify-backend/pkg/security"
)

type fileStorage struct {
	dir string
}

// NewFileStorage creates the managed directory if needed.
func NewFileStorage(dir string) (domain.FileStorage, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &fileStorage{dir: abs}, nil
}

func (s *fileStorage) Dir() string {
	return s.dir
}

// resolve maps a filename to its path, refusing anything outside the directory.
func (s *fileStorage) resolve(filename string) (string, error) {
	if err := security.ValidateFilename(filename); err != nil {
		return "", domain.ErrInvalidFileRef
	}
	path := filepath.Join(s.dir, filename)
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel != filename || strings.HasPrefix(rel, "..") {
		return "", domain.ErrInvalidFileRef
	}
	return path, nil
}

// Create writes r to a new file. More than limit bytes yields
// domain.ErrFileTooLarge; on any failure the partial file is removed.
func (s *fileStorage) Create(ctx context.Context, filename string, r io.Reader, limit int64) (domain.StoredFile, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return domain.StoredFile{}, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("failed to create file: %w", err)
	}

	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}
	written, copyErr := io.Copy(f, readerWithContext(ctx, src))
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		_ = os.Remove(path)
		return domain.StoredFile{}, fmt.Errorf("failed to save file: %w", copyErr)
	case limit > 0 && written > limit:
		_ = os.Remove(path)
		return domain.StoredFile{}, domain.ErrFileTooLarge
	case closeErr != nil:
		_ = os.Remove(path)
		return domain.StoredFile{}, fmt.Errorf("failed to save file: %w", closeErr)
	}

	return s.Stat(ctx, filename)
}

func (s *fileStorage) Open(ctx context.Context, filename string) (*domain.OpenedFile, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, mapNotExist(err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, domain.ErrFileNotFound
	}
	return &domain.OpenedFile{
		StoredFile:  s.describe(info),
		ContentType: security.ContentTypeForExtension(filename),
		Content:     f,
	}, nil
}

func (s *fileStorage) Stat(ctx context.Context, filename string) (domain.StoredFile, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return domain.StoredFile{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.StoredFile{}, mapNotExist(err)
	}
	if !info.Mode().IsRegular() {
		return domain.StoredFile{}, domain.ErrFileNotFound
	}
	return s.describe(info), nil
}

// List returns every regular file in the directory ordered by name, dotfiles
// included.
func (s *fileStorage) List(ctx context.Context) ([]domain.StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	files := make([]domain.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, s.describe(info))
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })
	return files, nil
}

func (s *fileStorage) Remove(ctx context.Context, filename string) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return mapNotExist(err)
	}
	return nil
}

func (s *fileStorage) describe(info fs.FileInfo) domain.StoredFile {
	return domain.StoredFile{
		Filename: info.Name(),
		FilePath: filepath.Join(s.dir, info.Name()),
		Size:     info.Size(),
		Created:  info.ModTime(),
		Modified: info.ModTime(),
	}
}

func mapNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrFileNotFound
	}
	return err
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
