package usecase

import (
	"context"
	"strings"
	"time"

	"jobify-backend/internal/cvquery"
	"jobify-backend/internal/domain"
	"jobify-backend/pkg/apperror"
	"jobify-backend/pkg/logger"
	"jobify-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type cvUsecase struct {
	cvRepo   domain.CVRepository
	files    domain.FileRemover
	validate *validator.Validate
	now      func() time.Time
}

// NewCVUsecase wires the CV record store to the service holding the binaries.
// files may be nil when no upload service is reachable; deletes then skip the file step.
func NewCVUsecase(cvRepo domain.CVRepository, files domain.FileRemover, validate *validator.Validate) domain.CVUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &cvUsecase{
		cvRepo:   cvRepo,
		files:    files,
		validate: validate,
		now:      time.Now,
	}
}

// RegisterCV records a freshly uploaded file. An active CV takes the flag from
// every other record in the same save.
func (u *cvUsecase) RegisterCV(ctx context.Context, input domain.CVInput) (*domain.CV, error) {
	now := u.now().UTC()
	cv := domain.CV{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		FileName:       input.FileName,
		FilePath:       input.FilePath,
		FileSize:       input.FileSize,
		ServerFilename: input.ServerFilename,
		FileContent:    input.FileContent,
		UploadDate:     now,
		LastModified:   now,
		Version:        1,
		IsActive:       input.IsActive,
		Tags:           cleanTags(input.Tags),
		Description:    input.Description,
	}
	if err := u.validate.Struct(cv); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	_, err := u.cvRepo.Mutate(ctx, func(cvs []domain.CV) []domain.CV {
		out := append([]domain.CV{cv}, cvs...)
		if cv.IsActive {
			markActive(out, cv.ID)
		}
		return out
	})
	if err != nil {
		return nil, apperror.InternalMsg("Failed to save CV", err)
	}
	return &cv, nil
}

func (u *cvUsecase) GetCV(ctx context.Context, id string) (*domain.CV, error) {
	cv, ok := u.cvRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("CV not found")
	}
	return &cv, nil
}

func (u *cvUsecase) ListCVs(ctx context.Context, search string) []domain.CV {
	return cvquery.Search(u.cvRepo.Load(ctx), search)
}

// UpdateCV edits name, description, tags and the active flag, and bumps lastModified.
func (u *cvUsecase) UpdateCV(ctx context.Context, id string, update domain.CVUpdate) (*domain.CV, error) {
	existing, ok := u.cvRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("CV not found")
	}
	modified := u.now().UTC()
	if err := u.validate.Struct(applyCVUpdate(existing, update, modified)); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	// The edit is re-applied to the record as it stands inside the write so a
	// concurrent update or activation is not overwritten by a stale copy.
	var cv domain.CV
	found := false
	_, err := u.cvRepo.Mutate(ctx, func(cvs []domain.CV) []domain.CV {
		idx := indexOfCV(cvs, id)
		if idx < 0 {
			return nil
		}
		found = true
		cv = applyCVUpdate(cvs[idx], update, modified)
		cvs[idx] = cv
		if cv.IsActive {
			markActive(cvs, cv.ID)
		}
		return cvs
	})
	if err != nil {
		return nil, apperror.InternalMsg("Failed to save CV", err)
	}
	if !found {
		return nil, apperror.NotFound("CV not found")
	}
	return &cv, nil
}

func applyCVUpdate(cv domain.CV, update domain.CVUpdate, modified time.Time) domain.CV {
	cv.Name = strings.TrimSpace(update.Name)
	cv.Description = update.Description
	cv.Tags = cleanTags(update.Tags)
	cv.IsActive = update.IsActive
	cv.LastModified = modified
	return cv
}

func (u *cvUsecase) SetActive(ctx context.Context, id string) ([]domain.CV, error) {
	if _, ok := u.cvRepo.GetByID(ctx, id); !ok {
		return nil, apperror.NotFound("CV not found")
	}
	cvs, err := u.cvRepo.SetActive(ctx, id)
	if err != nil {
		return nil, apperror.InternalMsg("Failed to save CV", err)
	}
	return cvs, nil
}

func (u *cvUsecase) GetActive(ctx context.Context) (*domain.CV, error) {
	cv, ok := u.cvRepo.GetActive(ctx)
	if !ok {
		return nil, apperror.NotFound("No active CV")
	}
	return &cv, nil
}

// DeleteCV removes the stored binary first and the record second. A failed
// file step is logged and reported in the outcome but never stops the record
// from being deleted.
func (u *cvUsecase) DeleteCV(ctx context.Context, id string) (domain.DeleteOutcome, error) {
	var outcome domain.DeleteOutcome

	cv, ok := u.cvRepo.GetByID(ctx, id)
	if !ok {
		return outcome, apperror.NotFound("CV not found")
	}

	if cv.ServerFilename != "" && u.files != nil {
		outcome.FileAttempted = true
		if err := u.files.DeleteFile(ctx, cv.ServerFilename); err != nil {
			outcome.FileError = err.Error()
			logger.Log.Warn("Failed to delete CV file, continuing with metadata",
				"cv_id", cv.ID,
				"filename", cv.ServerFilename,
				"error", err,
			)
		} else {
			outcome.FileDeleted = true
		}
	}

	if _, err := u.cvRepo.Delete(ctx, id); err != nil {
		logger.Log.Error("Failed to delete CV metadata",
			"cv_id", cv.ID,
			"file_deleted", outcome.FileDeleted,
			"error", err,
		)
		return outcome, apperror.InternalMsg("Failed to delete CV", err)
	}
	outcome.MetadataDeleted = true
	return outcome, nil
}

func markActive(cvs []domain.CV, id string) {
	for i := range cvs {
		cvs[i].IsActive = cvs[i].ID == id
	}
}

func indexOfCV(cvs []domain.CV, id string) int {
	for i := range cvs {
		if cvs[i].ID == id {
			return i
		}
	}
	return -1
}

// cleanTags trims tags and drops empty ones, keeping order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
