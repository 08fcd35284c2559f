package domain

import (
	"context"
	"errors"
	"io"
	"time"
)

// StoredFile describes one binary in the managed directory.
type StoredFile struct {
	Filename string    `json:"filename"`
	FilePath string    `json:"filePath"`
	Size     int64     `json:"size"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// UploadRequest is one incoming CV file plus its form metadata.
type UploadRequest struct {
	OriginalName string
	Size         int64 // declared size, -1 when unknown
	Content      io.Reader
	Name         string
	Description  string
	Tags         string // JSON-encoded array
	IsActive     string
}

type UploadedFile struct {
	OriginalName string `json:"originalName"`
	Filename     string `json:"filename"`
	FilePath     string `json:"filePath"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
}

type UploadMetadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	IsActive    bool     `json:"isActive"`
}

type UploadResult struct {
	File     UploadedFile   `json:"file"`
	Metadata UploadMetadata `json:"metadata"`
}

type FilePreview struct {
	Filename  string `json:"filename"`
	PageCount int    `json:"pageCount"`
	Text      string `json:"text"`
}

// OpenedFile is a stored binary ready to stream. The caller closes Content.
type OpenedFile struct {
	StoredFile
	ContentType string
	Content     io.ReadSeekCloser
}

// FileStorage is the managed directory. Names are single path elements.
type FileStorage interface {
	Dir() string
	Create(ctx context.Context, filename string, r io.Reader, limit int64) (StoredFile, error)
	Open(ctx context.Context, filename string) (*OpenedFile, error)
	Stat(ctx context.Context, filename string) (StoredFile, error)
	List(ctx context.Context) ([]StoredFile, error)
	Remove(ctx context.Context, filename string) error
}

type FileUsecase interface {
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)
	Open(ctx context.Context, filename string) (*OpenedFile, error)
	List(ctx context.Context) ([]StoredFile, error)
	DeleteFile(ctx context.Context, filename string) error
	Preview(ctx context.Context, filename string) (*FilePreview, error)
}

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrFileTooLarge   = errors.New("file too large")
	ErrInvalidFileRef = errors.New("invalid filename")
)
