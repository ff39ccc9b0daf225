package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the contract for project data access
type ProjectRepositoryInterface interface {
	CreateTree(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetBySlug(slug string) (*models.Project, error)
	GetWithTree(id uuid.UUID) (*models.Project, error)
	GetMainData(id uuid.UUID) (*models.Project, error)
	UpdateMainData(id uuid.UUID, name, description string, settings map[string]interface{}, hero map[string]interface{}) error
}

var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

// RatingRepositoryInterface defines the contract for rating data access
type RatingRepositoryInterface interface {
	Create(rating *models.Rating) error
	ListByProjectID(projectID uuid.UUID) ([]models.Rating, error)
}

var _ RatingRepositoryInterface = (*RatingRepository)(nil)

// ArticleRepositoryInterface defines the contract for article data access
type ArticleRepositoryInterface interface {
	Create(article *models.Article) error
	GetByID(id uuid.UUID) (*models.Article, error)
	GetByTitle(title string) (*models.Article, error)
	ListByProjectID(projectID uuid.UUID) ([]models.Article, error)
	Update(id uuid.UUID, assign map[string]interface{}) (*models.Article, error)
	Delete(id uuid.UUID) error
}

var _ ArticleRepositoryInterface = (*ArticleRepository)(nil)
