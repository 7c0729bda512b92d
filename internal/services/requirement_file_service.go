package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Ta1kunjms/GensanWorks/internal/compliance"
	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/repositories"
	"github.com/Ta1kunjms/GensanWorks/internal/storage"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type RequirementFileService interface {
	Upload(ctx context.Context, employerID, requirementKey, fileName, mimeType string, fileSize int, r io.Reader) (*models.RequirementFile, *models.Employer, error)
}

type requirementFileService struct {
	files     repositories.RequirementFileRepository
	employers EmployerService
	uploader  storage.Uploader
}

func NewRequirementFileService(
	files repositories.RequirementFileRepository,
	employers EmployerService,
	uploader storage.Uploader,
) RequirementFileService {
	return &requirementFileService{files: files, employers: employers, uploader: uploader}
}

// Upload stores the document, records its metadata and writes the URL into
// the employer's requirement entry so the compliance view picks it up
// immediately.
func (s *requirementFileService) Upload(ctx context.Context, employerID, requirementKey, fileName, mimeType string, fileSize int, r io.Reader) (*models.RequirementFile, *models.Employer, error) {
	const op = "RequirementFileService.Upload"

	if employerID == "" || requirementKey == "" {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "employer id and requirement key are required", nil)
	}
	if s.uploader == nil {
		return nil, nil, utils.E(utils.CodeUnavailable, op, "file storage is not configured", nil)
	}

	e, err := s.employers.Get(ctx, employerID)
	if err != nil {
		return nil, nil, err
	}

	objectName := fmt.Sprintf("requirements/%s/%s/%s", employerID, requirementKey, fileName)
	url, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return nil, nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	row := &models.RequirementFile{
		ID:             uuid.NewString(),
		EmployerID:     employerID,
		RequirementKey: requirementKey,
		FileName:       fileName,
		FileURL:        url,
		FileSize:       fileSize,
		MimeType:       mimeType,
		UploadedAt:     time.Now().UTC(),
	}
	if err := s.files.Insert(ctx, row); err != nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to persist file metadata", err)
	}

	e.Requirements = []byte(compliance.AttachFile([]byte(e.Requirements), requirementKey, url))
	if err := s.employers.Save(ctx, e); err != nil {
		return nil, nil, err
	}
	return row, e, nil
}
