package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadService handles standalone image uploads for section content such
// as about images and package covers.
type UploadService struct {
	projects *repository.ProjectRepository
	storage  storage.ObjectStorage
}

// NewUploadService creates a new upload service
func NewUploadService(projects *repository.ProjectRepository, store storage.ObjectStorage) *UploadService {
	return &UploadService{projects: projects, storage: store}
}

// UploadResponse carries the stored object location
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Upload stores the image bytes under the project's upload folder and
// returns the public URL.
func (s *UploadService) Upload(ctx context.Context, projectID uuid.UUID, file io.Reader) (*UploadResponse, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	folder := fmt.Sprintf("projects/%s/uploads", project.Slug)
	result, err := s.storage.Upload(ctx, file, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return &UploadResponse{URL: result.URL, PublicID: result.PublicID}, nil
}
