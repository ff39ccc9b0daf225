package service

import (
	"errors"
	"fmt"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleService handles project articles. Article titles are unique
// across all projects because the public lookup is by title alone.
type ArticleService struct {
	projects  repository.ProjectRepositoryInterface
	articles  repository.ArticleRepositoryInterface
	validator *validator.Validate
}

// NewArticleService creates a new article service
func NewArticleService(projects repository.ProjectRepositoryInterface, articles repository.ArticleRepositoryInterface, validator *validator.Validate) *ArticleService {
	return &ArticleService{projects: projects, articles: articles, validator: validator}
}

// CreateArticleRequest represents a new article
type CreateArticleRequest struct {
	Title      string  `json:"title" validate:"required,min=1,max=300"`
	Content    string  `json:"content" validate:"required"`
	CoverImage *string `json:"coverImage"`
}

// UpdateArticleRequest partially updates an article
type UpdateArticleRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CoverImage *string `json:"coverImage"`
}

// List returns a project's articles, newest first
func (s *ArticleService) List(projectID uuid.UUID) ([]models.Article, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	articles, err := s.articles.ListByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}

// Get returns one article scoped to a project
func (s *ArticleService) Get(projectID, articleID uuid.UUID) (*models.Article, error) {
	return s.getOwned(projectID, articleID)
}

// GetByTitle returns an article by its title, used by the public site
func (s *ArticleService) GetByTitle(title string) (*models.Article, error) {
	article, err := s.articles.GetByTitle(title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	return article, nil
}

// Create adds an article to a project. The title must not be in use by
// any project.
func (s *ArticleService) Create(projectID uuid.UUID, req *CreateArticleRequest) (*models.Article, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if err := s.ensureTitleFree(req.Title); err != nil {
		return nil, err
	}

	article := &models.Article{
		ProjectID:  projectID,
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
	}
	if err := s.articles.Create(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrArticleTitleExists
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return article, nil
}

// Update partially updates an article. A title change is checked against
// all projects.
func (s *ArticleService) Update(projectID, articleID uuid.UUID, req *UpdateArticleRequest) (*models.Article, error) {
	existing, err := s.getOwned(projectID, articleID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != existing.Title {
		if err := s.ensureTitleFree(*req.Title); err != nil {
			return nil, err
		}
	}

	assign := map[string]interface{}{}
	setIfPresent(assign, "title", req.Title)
	setIfPresent(assign, "content", req.Content)
	setIfPresent(assign, "cover_image", req.CoverImage)
	if len(assign) == 0 {
		return existing, nil
	}

	article, err := s.articles.Update(articleID, assign)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrArticleTitleExists
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return article, nil
}

// Delete removes an article from a project
func (s *ArticleService) Delete(projectID, articleID uuid.UUID) error {
	if _, err := s.getOwned(projectID, articleID); err != nil {
		return err
	}
	if err := s.articles.Delete(articleID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

func (s *ArticleService) getOwned(projectID, articleID uuid.UUID) (*models.Article, error) {
	article, err := s.articles.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if article.ProjectID != projectID {
		return nil, apperrors.ErrArticleNotFound
	}
	return article, nil
}

func (s *ArticleService) ensureTitleFree(title string) error {
	existing, err := s.articles.GetByTitle(title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check article title: %w", err)
	}
	if existing != nil {
		return apperrors.ErrArticleTitleExists
	}
	return nil
}
