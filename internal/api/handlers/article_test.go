package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/api/handlers"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/mocks"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ArticleHandlerTestSuite defines the test suite for ArticleHandler
type ArticleHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockArticleSvc *mocks.MockArticleServiceInterface
	handler        *handlers.ArticleHandler
	router         *gin.Engine
	projectID      uuid.UUID
}

func (suite *ArticleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockArticleSvc = mocks.NewMockArticleServiceInterface(suite.ctrl)
	suite.handler = handlers.NewArticleHandler(suite.mockArticleSvc)
	suite.projectID = uuid.New()

	suite.router = gin.New()
	suite.router.GET("/dashboard/:projectId/articles", suite.handler.ListArticles)
	suite.router.POST("/dashboard/:projectId/articles", suite.handler.CreateArticle)
	suite.router.GET("/dashboard/:projectId/articles/:articleId", suite.handler.GetArticle)
	suite.router.PATCH("/dashboard/:projectId/articles/:articleId", suite.handler.UpdateArticle)
	suite.router.DELETE("/dashboard/:projectId/articles/:articleId", suite.handler.DeleteArticle)
	suite.router.GET("/public/articles/:title", suite.handler.GetArticleByTitle)
}

func (suite *ArticleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ArticleHandlerTestSuite) articleURL(parts ...string) string {
	url := "/dashboard/" + suite.projectID.String() + "/articles"
	if len(parts) > 0 {
		url += "/" + strings.Join(parts, "/")
	}
	return url
}

func (suite *ArticleHandlerTestSuite) TestListArticles_Success() {
	articles := []models.Article{
		{ProjectID: suite.projectID, Title: "Brewing at home", Content: "A guide"},
		{ProjectID: suite.projectID, Title: "Choosing beans", Content: "Another guide"},
	}
	suite.mockArticleSvc.EXPECT().List(suite.projectID).Return(articles, nil)

	req := httptest.NewRequest(http.MethodGet, suite.articleURL(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []models.Article
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Brewing at home", got[0].Title)
}

func (suite *ArticleHandlerTestSuite) TestListArticles_InvalidProjectID() {
	req := httptest.NewRequest(http.MethodGet, "/dashboard/not-a-uuid/articles", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "projectId")
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_Success() {
	created := &models.Article{ProjectID: suite.projectID, Title: "Brewing at home", Content: "A guide"}
	suite.mockArticleSvc.EXPECT().
		Create(suite.projectID, &service.CreateArticleRequest{Title: "Brewing at home", Content: "A guide"}).
		Return(created, nil)

	body := `{"title":"Brewing at home","content":"A guide"}`
	req := httptest.NewRequest(http.MethodPost, suite.articleURL(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got models.Article
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Brewing at home", got.Title)
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_TitleConflict() {
	suite.mockArticleSvc.EXPECT().
		Create(suite.projectID, gomock.Any()).
		Return(nil, apperrors.ErrArticleTitleExists)

	body := `{"title":"Brewing at home","content":"A guide"}`
	req := httptest.NewRequest(http.MethodPost, suite.articleURL(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, suite.articleURL(), strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ArticleHandlerTestSuite) TestGetArticle_NotFound() {
	articleID := uuid.New()
	suite.mockArticleSvc.EXPECT().
		Get(suite.projectID, articleID).
		Return(nil, apperrors.ErrArticleNotFound)

	req := httptest.NewRequest(http.MethodGet, suite.articleURL(articleID.String()), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ArticleHandlerTestSuite) TestGetArticle_InvalidArticleID() {
	req := httptest.NewRequest(http.MethodGet, suite.articleURL("not-a-uuid"), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "articleId")
}

func (suite *ArticleHandlerTestSuite) TestUpdateArticle_Success() {
	articleID := uuid.New()
	newTitle := "Brewing at home, revised"
	updated := &models.Article{ProjectID: suite.projectID, Title: newTitle, Content: "A guide"}
	suite.mockArticleSvc.EXPECT().
		Update(suite.projectID, articleID, &service.UpdateArticleRequest{Title: &newTitle}).
		Return(updated, nil)

	body := `{"title":"Brewing at home, revised"}`
	req := httptest.NewRequest(http.MethodPatch, suite.articleURL(articleID.String()), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.Article
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newTitle, got.Title)
}

func (suite *ArticleHandlerTestSuite) TestUpdateArticle_TitleConflict() {
	articleID := uuid.New()
	suite.mockArticleSvc.EXPECT().
		Update(suite.projectID, articleID, gomock.Any()).
		Return(nil, apperrors.ErrArticleTitleExists)

	body := `{"title":"Taken title"}`
	req := httptest.NewRequest(http.MethodPatch, suite.articleURL(articleID.String()), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ArticleHandlerTestSuite) TestDeleteArticle_Success() {
	articleID := uuid.New()
	suite.mockArticleSvc.EXPECT().Delete(suite.projectID, articleID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, suite.articleURL(articleID.String()), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "deleted")
}

func (suite *ArticleHandlerTestSuite) TestDeleteArticle_NotFound() {
	articleID := uuid.New()
	suite.mockArticleSvc.EXPECT().
		Delete(suite.projectID, articleID).
		Return(apperrors.ErrArticleNotFound)

	req := httptest.NewRequest(http.MethodDelete, suite.articleURL(articleID.String()), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ArticleHandlerTestSuite) TestGetArticleByTitle_Success() {
	article := &models.Article{Title: "Brewing at home", Content: "A guide"}
	suite.mockArticleSvc.EXPECT().GetByTitle("Brewing at home").Return(article, nil)

	req := httptest.NewRequest(http.MethodGet, "/public/articles/Brewing%20at%20home", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.Article
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "A guide", got.Content)
}

func (suite *ArticleHandlerTestSuite) TestGetArticleByTitle_NotFound() {
	suite.mockArticleSvc.EXPECT().GetByTitle("missing").Return(nil, apperrors.ErrArticleNotFound)

	req := httptest.NewRequest(http.MethodGet, "/public/articles/missing", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestArticleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleHandlerTestSuite))
}
