package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleRepository handles database operations for articles
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Create creates a new article
func (r *ArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article by ID
func (r *ArticleRepository) GetByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// GetByTitle retrieves an article by its title. Titles are unique across
// the whole store, not per project.
func (r *ArticleRepository) GetByTitle(title string) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, "title = ?", title).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// ListByProjectID retrieves all articles of a project, newest first
func (r *ArticleRepository) ListByProjectID(projectID uuid.UUID) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// Update applies the supplied column assignments to an article
func (r *ArticleRepository) Update(id uuid.UUID, assign map[string]interface{}) (*models.Article, error) {
	if err := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(assign).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes an article
func (r *ArticleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Article{}, "id = ?", id).Error
}
