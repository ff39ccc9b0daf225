package service

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RatingServiceInterface defines the contract for rating operations
type RatingServiceInterface interface {
	Add(projectID uuid.UUID, req *AddRatingRequest) (*AddRatingResponse, error)
	AddBySlug(slug string, req *AddRatingRequest) (*AddRatingResponse, error)
	Stats(projectID uuid.UUID) (*RatingStats, error)
}

var _ RatingServiceInterface = (*RatingService)(nil)

// ArticleServiceInterface defines the contract for article operations
type ArticleServiceInterface interface {
	List(projectID uuid.UUID) ([]models.Article, error)
	Get(projectID, articleID uuid.UUID) (*models.Article, error)
	GetByTitle(title string) (*models.Article, error)
	Create(projectID uuid.UUID, req *CreateArticleRequest) (*models.Article, error)
	Update(projectID, articleID uuid.UUID, req *UpdateArticleRequest) (*models.Article, error)
	Delete(projectID, articleID uuid.UUID) error
}

var _ ArticleServiceInterface = (*ArticleService)(nil)
