package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/logger"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/mocks"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GalleryServiceTestSuite tests gallery deletion against a real database
// with mocked object storage
type GalleryServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	projects      *repository.ProjectRepository
	images        *repository.GalleryImageRepository
	factories     *testutils.FactorySet

	ctrl    *gomock.Controller
	store   *mocks.MockObjectStorage
	service *service.GalleryService

	project *models.Project
}

// SetupSuite runs before all tests in the suite
func (suite *GalleryServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.projects = repository.NewProjectRepository(db)
	suite.images = repository.NewGalleryImageRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GalleryServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates a project and wires the service with fresh storage mocks
func (suite *GalleryServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.ctrl = gomock.NewController(suite.T())
	suite.store = mocks.NewMockObjectStorage(suite.ctrl)

	db := suite.baseTestSuite.DB
	serviceRepo := repository.NewServiceRepository(db)
	featureRepo := repository.NewWhyUsFeatureRepository(db)
	guard := service.NewOwnershipGuard(serviceRepo, featureRepo, suite.images)
	suite.service = service.NewGalleryService(suite.projects, suite.images, suite.store, guard, logger.New())

	suite.project = suite.factories.Project.Create()
	suite.Require().NoError(suite.projects.CreateTree(suite.project))
}

// TearDownTest runs after each test
func (suite *GalleryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
	suite.baseTestSuite.TearDownTest()
}

func (suite *GalleryServiceTestSuite) createImage(url string) *models.GalleryImage {
	image := suite.factories.Gallery.Create(suite.project.ID)
	image.URL = url
	suite.Require().NoError(suite.baseTestSuite.DB.Create(image).Error)
	return image
}

func (suite *GalleryServiceTestSuite) assertRowGone(image *models.GalleryImage) {
	var stored models.GalleryImage
	err := suite.baseTestSuite.DB.First(&stored, "id = ?", image.ID).Error
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteRemovesStoredObject tests the happy path: the asset is
// destroyed in storage and the row is removed
func (suite *GalleryServiceTestSuite) TestDeleteRemovesStoredObject() {
	image := suite.createImage("https://res.cloudinary.com/demo/image/upload/v1700000000/projects/test/gallery/sample.jpg")
	suite.store.EXPECT().
		Delete(gomock.Any(), "projects/test/gallery/sample").
		Return(nil)

	err := suite.service.Delete(context.Background(), suite.project.ID, image.ID)
	suite.NoError(err)
	suite.assertRowGone(image)
}

// TestDeleteStorageFailureStillRemovesRow tests that a storage error is
// swallowed and the database row is removed anyway
func (suite *GalleryServiceTestSuite) TestDeleteStorageFailureStillRemovesRow() {
	image := suite.createImage("https://res.cloudinary.com/demo/image/upload/v1700000000/projects/test/gallery/sample.jpg")
	suite.store.EXPECT().
		Delete(gomock.Any(), "projects/test/gallery/sample").
		Return(errors.New("cloudinary unavailable"))

	err := suite.service.Delete(context.Background(), suite.project.ID, image.ID)
	suite.NoError(err)
	suite.assertRowGone(image)
}

// TestDeleteUnparseableURLSkipsStorage tests that a URL without the
// upload marker never reaches storage but the row is still removed
func (suite *GalleryServiceTestSuite) TestDeleteUnparseableURLSkipsStorage() {
	image := suite.createImage("https://example.com/static/cup.jpg")

	err := suite.service.Delete(context.Background(), suite.project.ID, image.ID)
	suite.NoError(err)
	suite.assertRowGone(image)
}

// TestDeleteCrossProjectRejected tests that a foreign project cannot
// delete the image and neither storage nor the row is touched
func (suite *GalleryServiceTestSuite) TestDeleteCrossProjectRejected() {
	image := suite.createImage("https://res.cloudinary.com/demo/image/upload/v1700000000/projects/test/gallery/sample.jpg")

	other := suite.factories.Project.Create()
	suite.Require().NoError(suite.projects.CreateTree(other))

	err := suite.service.Delete(context.Background(), other.ID, image.ID)
	suite.ErrorIs(err, apperrors.ErrGalleryImageOwnership)

	var stored models.GalleryImage
	suite.Require().NoError(suite.baseTestSuite.DB.First(&stored, "id = ?", image.ID).Error)
}

// TestGalleryServiceTestSuite runs the test suite
func TestGalleryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GalleryServiceTestSuite))
}
