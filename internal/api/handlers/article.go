package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ArticleHandler handles HTTP requests for articles
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ListArticles handles GET /dashboard/:projectId/articles
// @Summary List articles
// @Description List a project's articles, newest first
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {array} models.Article "Articles"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	articles, err := h.articleService.List(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

// GetArticle handles GET /dashboard/:projectId/articles/:articleId
// @Summary Get an article
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param articleId path string true "Article ID (UUID)"
// @Success 200 {object} models.Article "Article"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/articles/{articleId} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	articleID, ok := parseUUIDParam(c, "articleId")
	if !ok {
		return
	}

	article, err := h.articleService.Get(projectID, articleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// GetArticleByTitle handles GET /public/articles/:title
// @Summary Get an article by title
// @Description Public article lookup by its globally unique title
// @Tags public
// @Produce json
// @Param title path string true "Article title"
// @Success 200 {object} models.Article "Article"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /public/articles/{title} [get]
func (h *ArticleHandler) GetArticleByTitle(c *gin.Context) {
	article, err := h.articleService.GetByTitle(c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// CreateArticle handles POST /dashboard/:projectId/articles
// @Summary Create an article
// @Description Create an article; the title must be unused across all projects
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.CreateArticleRequest true "Article data"
// @Success 201 {object} models.Article "Created article"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 409 {object} handlers.ErrorResponse "Title already in use"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	article, err := h.articleService.Create(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// UpdateArticle handles PATCH /dashboard/:projectId/articles/:articleId
// @Summary Update an article
// @Description Partially update an article; a title change is checked for global uniqueness
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param articleId path string true "Article ID (UUID)"
// @Param request body service.UpdateArticleRequest true "Fields to change"
// @Success 200 {object} models.Article "Updated article"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 409 {object} handlers.ErrorResponse "Title already in use"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/articles/{articleId} [patch]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	articleID, ok := parseUUIDParam(c, "articleId")
	if !ok {
		return
	}

	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	article, err := h.articleService.Update(projectID, articleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /dashboard/:projectId/articles/:articleId
// @Summary Delete an article
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param articleId path string true "Article ID (UUID)"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/articles/{articleId} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	articleID, ok := parseUUIDParam(c, "articleId")
	if !ok {
		return
	}

	if err := h.articleService.Delete(projectID, articleID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
