package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/logger"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryService handles gallery image uploads, listing and deletion
type GalleryService struct {
	projects *repository.ProjectRepository
	images   *repository.GalleryImageRepository
	storage  storage.ObjectStorage
	guard    *OwnershipGuard
	log      *logger.Logger
}

// NewGalleryService creates a new gallery service
func NewGalleryService(projects *repository.ProjectRepository, images *repository.GalleryImageRepository, store storage.ObjectStorage, guard *OwnershipGuard, log *logger.Logger) *GalleryService {
	return &GalleryService{
		projects: projects,
		images:   images,
		storage:  store,
		guard:    guard,
		log:      log,
	}
}

// List returns a project's gallery images, newest first
func (s *GalleryService) List(projectID uuid.UUID) ([]models.GalleryImage, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	images, err := s.images.ListByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	if images == nil {
		images = []models.GalleryImage{}
	}
	return images, nil
}

// Add uploads the image bytes to object storage under the project's
// gallery folder and records the resulting URL.
func (s *GalleryService) Add(ctx context.Context, projectID uuid.UUID, file io.Reader, alt *string) (*models.GalleryImage, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	folder := fmt.Sprintf("projects/%s/gallery", project.Slug)
	result, err := s.storage.Upload(ctx, file, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	image := &models.GalleryImage{
		ProjectID: projectID,
		URL:       result.URL,
		Alt:       alt,
	}
	if err := s.images.Create(image); err != nil {
		return nil, fmt.Errorf("failed to save gallery image: %w", err)
	}
	return image, nil
}

// Delete removes a gallery image. The stored object is deleted best-effort:
// a storage failure or an unparseable URL is logged and the row is deleted
// regardless.
func (s *GalleryService) Delete(ctx context.Context, projectID, imageID uuid.UUID) error {
	image, err := s.guard.AuthorizeGalleryImage(projectID, imageID)
	if err != nil {
		return err
	}

	if publicID, ok := storage.PublicIDFromURL(image.URL); ok {
		if err := s.storage.Delete(ctx, publicID); err != nil {
			s.log.WithError(err).WithField("public_id", publicID).Warn("failed to delete stored object")
		}
	} else {
		s.log.WithField("url", image.URL).Warn("could not derive public id from image url")
	}

	if err := s.images.Delete(imageID); err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return nil
}
