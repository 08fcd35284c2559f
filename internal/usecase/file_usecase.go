package usecase

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"jobify-backend/internal/domain"
	"jobify-backend/pkg/apperror"
	"jobify-backend/pkg/logger"
	"jobify-backend/pkg/pdftext"
	"jobify-backend/pkg/security"
	"jobify-backend/pkg/security/antivirus"
)

const (
	MsgInvalidFileType = "Invalid file type. Only PDF, DOC, and DOCX files are allowed."
	MsgNoFile          = "No file uploaded"
	MsgFileNotFound    = "File not found"
	MsgInvalidFilename = "Invalid filename"

	PreviewMaxChars = 2000
	sniffLen        = 512
)

// FileUsecaseConfig tunes the upload pipeline.
type FileUsecaseConfig struct {
	MaxUploadBytes     int64
	StrictContentCheck bool
}

type fileUsecase struct {
	storage domain.FileStorage
	scanner antivirus.Scanner
	audit   *security.SecurityLogger
	cfg     FileUsecaseConfig
	now     func() time.Time
}

func NewFileUsecase(storage domain.FileStorage, scanner antivirus.Scanner, cfg FileUsecaseConfig) domain.FileUsecase {
	if scanner == nil {
		scanner = antivirus.NewNoOpScanner()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	return &fileUsecase{
		storage: storage,
		scanner: scanner,
		audit:   security.DefaultLogger(),
		cfg:     cfg,
		now:     time.Now,
	}
}

// Upload validates the file, stores it under a generated name and echoes the
// metadata. Every rejection happens before or instead of leaving a file behind.
func (u *fileUsecase) Upload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	if req.Content == nil || req.OriginalName == "" {
		return nil, apperror.BadRequest(MsgNoFile)
	}
	requestID := domain.RequestIDFrom(ctx)
	if err := security.ValidateFileExtension(req.OriginalName); err != nil {
		u.audit.LogUploadRejected(ctx, security.EventUploadRejected, req.OriginalName, requestID, err.Error())
		return nil, apperror.BadRequest(MsgInvalidFileType)
	}
	if req.Size > u.cfg.MaxUploadBytes {
		u.audit.LogUploadRejected(ctx, security.EventUploadRejected, req.OriginalName, requestID, "declared size over limit")
		return nil, apperror.TooLarge(u.tooLargeMessage())
	}

	content := req.Content
	if u.cfg.StrictContentCheck {
		br := bufio.NewReaderSize(req.Content, sniffLen)
		head, err := br.Peek(sniffLen)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return nil, apperror.Internal(err)
		}
		if res := security.ValidateContent(req.OriginalName, head); !res.Valid {
			u.audit.LogUploadRejected(ctx, security.EventContentMismatch, req.OriginalName, requestID,
				res.Error+" (detected "+res.DetectedMIME+")")
			return nil, apperror.BadRequest(MsgInvalidFileType)
		}
		content = br
	}

	// The whitelist check ignores case; the stored name keeps the client's extension.
	ext := filepath.Ext(req.OriginalName)
	filename := GenerateFilename(req.Name, ext, u.now())

	stored, err := u.storage.Create(ctx, filename, content, u.cfg.MaxUploadBytes)
	if err != nil {
		if errors.Is(err, domain.ErrFileTooLarge) {
			u.audit.LogUploadRejected(ctx, security.EventUploadRejected, req.OriginalName, requestID, "stream over limit")
			return nil, apperror.TooLarge(u.tooLargeMessage())
		}
		return nil, apperror.Internal(fmt.Errorf("store upload: %w", err))
	}

	if err := u.scan(ctx, filename); err != nil {
		u.discard(ctx, filename)
		return nil, err
	}

	tags, err := parseTags(req.Tags)
	if err != nil {
		u.discard(ctx, filename)
		return nil, apperror.Internal(fmt.Errorf("parse tags: %w", err))
	}

	name := req.Name
	if name == "" {
		name = strings.TrimSuffix(req.OriginalName, filepath.Ext(req.OriginalName))
	}

	u.audit.Log(ctx, security.SecurityEvent{
		Event:     security.EventUploadAccepted,
		Filename:  stored.Filename,
		RequestID: requestID,
		Details:   map[string]interface{}{"size": stored.Size, "scanner": u.scanner.Name()},
	})

	return &domain.UploadResult{
		File: domain.UploadedFile{
			OriginalName: req.OriginalName,
			Filename:     stored.Filename,
			FilePath:     stored.FilePath,
			Size:         stored.Size,
			Mimetype:     security.ContentTypeForExtension(req.OriginalName),
		},
		Metadata: domain.UploadMetadata{
			Name:        name,
			Description: req.Description,
			Tags:        tags,
			IsActive:    req.IsActive == "true",
		},
	}, nil
}

func (u *fileUsecase) Open(ctx context.Context, filename string) (*domain.OpenedFile, error) {
	f, err := u.storage.Open(ctx, filename)
	if err != nil {
		return nil, u.storageError(ctx, "open", filename, err)
	}
	return f, nil
}

func (u *fileUsecase) List(ctx context.Context) ([]domain.StoredFile, error) {
	files, err := u.storage.List(ctx)
	if err != nil {
		return nil, apperror.InternalMsg("Failed to list files", err)
	}
	return files, nil
}

func (u *fileUsecase) DeleteFile(ctx context.Context, filename string) error {
	if err := u.storage.Remove(ctx, filename); err != nil {
		return u.storageError(ctx, "delete", filename, err)
	}
	u.audit.Log(ctx, security.SecurityEvent{
		Event:     security.EventFileDeleted,
		Filename:  filename,
		RequestID: domain.RequestIDFrom(ctx),
	})
	return nil
}

// Preview extracts the page count and leading text of a stored PDF.
func (u *fileUsecase) Preview(ctx context.Context, filename string) (*domain.FilePreview, error) {
	stored, err := u.storage.Stat(ctx, filename)
	if err != nil {
		return nil, u.storageError(ctx, "preview", filename, err)
	}
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return nil, apperror.BadRequest("Preview is only available for PDF files")
	}

	content, err := pdftext.Extract(stored.FilePath, PreviewMaxChars)
	if err != nil {
		return nil, apperror.InternalMsg("Failed to read PDF", err)
	}
	return &domain.FilePreview{
		Filename:  stored.Filename,
		PageCount: content.PageCount,
		Text:      content.Text,
	}, nil
}

// scan fails closed: a scanner error rejects the upload like a detection.
func (u *fileUsecase) scan(ctx context.Context, filename string) error {
	f, err := u.storage.Open(ctx, filename)
	if err != nil {
		return apperror.Internal(err)
	}
	defer f.Content.Close()

	res := u.scanner.Scan(ctx, filename, f.Content)
	if res.Error != nil {
		u.audit.Log(ctx, security.SecurityEvent{
			Event:     security.EventScanFailed,
			Filename:  filename,
			RequestID: domain.RequestIDFrom(ctx),
			Details:   map[string]interface{}{"scanner": res.ScannerName, "error": res.Error.Error()},
		})
		return apperror.InternalMsg("Virus scan failed", res.Error)
	}
	if res.Infected {
		u.audit.LogMalwareDetected(ctx, filename, domain.RequestIDFrom(ctx), res.ScannerName, res.ThreatName)
		return apperror.BadRequest("File rejected by virus scan")
	}
	return nil
}

func (u *fileUsecase) discard(ctx context.Context, filename string) {
	if err := u.storage.Remove(ctx, filename); err != nil {
		logger.Log.Error("Failed to remove rejected upload", "filename", filename, "error", err)
	}
}

func (u *fileUsecase) tooLargeMessage() string {
	return TooLargeMessage(u.cfg.MaxUploadBytes)
}

// TooLargeMessage is the client message for uploads over maxBytes.
func TooLargeMessage(maxBytes int64) string {
	return fmt.Sprintf("File too large. Maximum size is %dMB.", maxBytes>>20)
}

// GenerateFilename builds "<sanitized name>_<timestamp><ext>". The timestamp
// is ISO-8601 UTC with milliseconds, with ':' and '.' replaced by '-'.
func GenerateFilename(name, ext string, now time.Time) string {
	if name == "" {
		name = "cv"
	}
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return security.SanitizeName(name) + "_" + stamp + ext
}

func parseTags(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// storageError maps a storage failure to its client error. Names that fail
// containment are audited as traversal attempts.
func (u *fileUsecase) storageError(ctx context.Context, op, filename string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidFileRef):
		u.audit.LogPathTraversal(ctx, filename, domain.RequestIDFrom(ctx), op)
		return apperror.BadRequest(MsgInvalidFilename)
	case errors.Is(err, domain.ErrFileNotFound):
		return apperror.NotFound(MsgFileNotFound)
	default:
		return apperror.Internal(err)
	}
}
