package domain

import (
	"context"
	"time"
)

// CV is one resume record. ServerFilename is the key the upload service
// knows the binary by; FileContent is the inline fallback for older records.
type CV struct {
	ID             string    `json:"id" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	FileName       string    `json:"fileName"`
	FilePath       string    `json:"filePath"`
	FileSize       int64     `json:"fileSize" validate:"gte=0"`
	ServerFilename string    `json:"serverFilename,omitempty"`
	FileContent    string    `json:"fileContent,omitempty"`
	UploadDate     time.Time `json:"uploadDate"`
	LastModified   time.Time `json:"lastModified"`
	Version        int       `json:"version"`
	IsActive       bool      `json:"isActive"`
	Tags           []string  `json:"tags"`
	Description    string    `json:"description,omitempty"`
}

func (c CV) GetID() string { return c.ID }

// CVInput registers a CV after its file has been uploaded.
type CVInput struct {
	Name           string   `json:"name" binding:"required"`
	FileName       string   `json:"fileName"`
	FilePath       string   `json:"filePath"`
	FileSize       int64    `json:"fileSize"`
	ServerFilename string   `json:"serverFilename"`
	FileContent    string   `json:"fileContent"`
	IsActive       bool     `json:"isActive"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description"`
}

// CVUpdate holds the editable metadata of a CV.
type CVUpdate struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	IsActive    bool     `json:"isActive"`
}

// DeleteOutcome reports both steps of a CV delete. The file step runs first
// and never blocks the metadata step.
type DeleteOutcome struct {
	FileAttempted   bool   `json:"fileAttempted"`
	FileDeleted     bool   `json:"fileDeleted"`
	FileError       string `json:"fileError,omitempty"`
	MetadataDeleted bool   `json:"metadataDeleted"`
}

// Orphaned reports whether a binary may have been left behind on the upload service.
func (o DeleteOutcome) Orphaned() bool {
	return o.FileAttempted && !o.FileDeleted
}

type CVRepository interface {
	Load(ctx context.Context) []CV
	Save(ctx context.Context, cvs []CV) error
	Add(ctx context.Context, cv CV) ([]CV, error)
	Update(ctx context.Context, cv CV) ([]CV, error)
	Delete(ctx context.Context, id string) ([]CV, error)
	Mutate(ctx context.Context, fn func([]CV) []CV) ([]CV, error)
	GetByID(ctx context.Context, id string) (CV, bool)
	SetActive(ctx context.Context, id string) ([]CV, error)
	GetActive(ctx context.Context) (CV, bool)
	Clear(ctx context.Context) error
}

// FileRemover deletes a stored binary by its server filename. It is
// satisfied both by the in-process file usecase and by the HTTP client.
type FileRemover interface {
	DeleteFile(ctx context.Context, filename string) error
}

type CVUsecase interface {
	RegisterCV(ctx context.Context, input CVInput) (*CV, error)
	GetCV(ctx context.Context, id string) (*CV, error)
	ListCVs(ctx context.Context, search string) []CV
	UpdateCV(ctx context.Context, id string, update CVUpdate) (*CV, error)
	SetActive(ctx context.Context, id string) ([]CV, error)
	GetActive(ctx context.Context) (*CV, error)
	DeleteCV(ctx context.Context, id string) (DeleteOutcome, error)
}
