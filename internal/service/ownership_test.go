package service

import (
	"testing"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// OwnershipGuardTestSuite tests the ownership chain checks against two
// separate projects
type OwnershipGuardTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	projects      *repository.ProjectRepository
	guard         *OwnershipGuard
	servicesSvc   *ServicesSectionService
	whyUsSvc      *WhyUsService
	factories     *testutils.FactorySet

	projectA *models.Project
	projectB *models.Project
}

// SetupSuite runs before all tests in the suite
func (suite *OwnershipGuardTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.projects = repository.NewProjectRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	featureRepo := repository.NewWhyUsFeatureRepository(db)
	galleryRepo := repository.NewGalleryImageRepository(db)
	sectionRepo := repository.NewSectionRepository(db)

	suite.guard = NewOwnershipGuard(serviceRepo, featureRepo, galleryRepo)
	v := validator.New()
	suite.servicesSvc = NewServicesSectionService(suite.projects, sectionRepo, serviceRepo, suite.guard, v)
	suite.whyUsSvc = NewWhyUsService(suite.projects, sectionRepo, featureRepo, suite.guard, v)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OwnershipGuardTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates two projects, each with a services and why-us section
func (suite *OwnershipGuardTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.projectA = suite.factories.Project.Create()
	suite.Require().NoError(suite.projects.CreateTree(suite.projectA))
	suite.projectB = suite.factories.Project.Create()
	suite.Require().NoError(suite.projects.CreateTree(suite.projectB))

	db := suite.baseTestSuite.DB
	for _, p := range []*models.Project{suite.projectA, suite.projectB} {
		suite.Require().NoError(db.Create(suite.factories.Services.Create(p.ID)).Error)
		suite.Require().NoError(db.Create(suite.factories.WhyUs.Create(p.ID)).Error)
		suite.Require().NoError(db.Create(suite.factories.Gallery.Create(p.ID)).Error)
	}
}

// TearDownTest runs after each test
func (suite *OwnershipGuardTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OwnershipGuardTestSuite) serviceOf(p *models.Project) *models.Service {
	var svc models.Service
	err := suite.baseTestSuite.DB.
		Joins("JOIN services_sections ON services_sections.id = services.section_id").
		Where("services_sections.project_id = ?", p.ID).
		First(&svc).Error
	suite.Require().NoError(err)
	return &svc
}

func (suite *OwnershipGuardTestSuite) featureOf(p *models.Project) *models.WhyUsFeature {
	var feature models.WhyUsFeature
	err := suite.baseTestSuite.DB.
		Joins("JOIN why_us_sections ON why_us_sections.id = why_us_features.section_id").
		Where("why_us_sections.project_id = ?", p.ID).
		First(&feature).Error
	suite.Require().NoError(err)
	return &feature
}

// TestAuthorizeServiceOwned tests the happy path of the chain walk
func (suite *OwnershipGuardTestSuite) TestAuthorizeServiceOwned() {
	svc := suite.serviceOf(suite.projectA)

	got, err := suite.guard.AuthorizeService(suite.projectA.ID, svc.ID)
	suite.NoError(err)
	suite.Equal(svc.ID, got.ID)
}

// TestAuthorizeServiceCrossProject tests that a foreign service is rejected
func (suite *OwnershipGuardTestSuite) TestAuthorizeServiceCrossProject() {
	svc := suite.serviceOf(suite.projectB)

	_, err := suite.guard.AuthorizeService(suite.projectA.ID, svc.ID)
	suite.ErrorIs(err, apperrors.ErrServiceOwnership)
}

// TestUpdateServiceCrossProjectLeavesRowUntouched tests that the rejected
// update writes nothing
func (suite *OwnershipGuardTestSuite) TestUpdateServiceCrossProjectLeavesRowUntouched() {
	svc := suite.serviceOf(suite.projectB)
	originalTitle := svc.Title

	newTitle := "Hijacked"
	_, err := suite.servicesSvc.UpdateService(suite.projectA.ID, svc.ID, &UpdateServiceRequest{Title: &newTitle})
	suite.ErrorIs(err, apperrors.ErrServiceOwnership)

	var stored models.Service
	suite.Require().NoError(suite.baseTestSuite.DB.First(&stored, "id = ?", svc.ID).Error)
	suite.Equal(originalTitle, stored.Title)
}

// TestAuthorizeWhyUsFeatureCrossProject tests the feature chain rejection
func (suite *OwnershipGuardTestSuite) TestAuthorizeWhyUsFeatureCrossProject() {
	feature := suite.featureOf(suite.projectB)

	_, err := suite.guard.AuthorizeWhyUsFeature(suite.projectA.ID, feature.ID)
	suite.ErrorIs(err, apperrors.ErrWhyUsFeatureOwnership)

	// And the owning project still passes
	_, err = suite.guard.AuthorizeWhyUsFeature(suite.projectB.ID, feature.ID)
	suite.NoError(err)
}

// TestUpdateWhyUsFeatureCrossProjectLeavesRowUntouched tests that the
// rejected feature update writes nothing
func (suite *OwnershipGuardTestSuite) TestUpdateWhyUsFeatureCrossProjectLeavesRowUntouched() {
	feature := suite.featureOf(suite.projectB)
	originalTitle := feature.Title

	newTitle := "Hijacked"
	_, err := suite.whyUsSvc.UpdateFeature(suite.projectA.ID, feature.ID, &UpdateWhyUsFeatureRequest{Title: &newTitle})
	suite.ErrorIs(err, apperrors.ErrWhyUsFeatureOwnership)

	var stored models.WhyUsFeature
	suite.Require().NoError(suite.baseTestSuite.DB.First(&stored, "id = ?", feature.ID).Error)
	suite.Equal(originalTitle, stored.Title)
}

// TestAuthorizeGalleryImageCrossProject tests the one-hop gallery check
func (suite *OwnershipGuardTestSuite) TestAuthorizeGalleryImageCrossProject() {
	var image models.GalleryImage
	suite.Require().NoError(suite.baseTestSuite.DB.First(&image, "project_id = ?", suite.projectB.ID).Error)

	_, err := suite.guard.AuthorizeGalleryImage(suite.projectA.ID, image.ID)
	suite.ErrorIs(err, apperrors.ErrGalleryImageOwnership)
}

// TestAuthorizeServiceMissing tests the not-found path
func (suite *OwnershipGuardTestSuite) TestAuthorizeServiceMissing() {
	_, err := suite.guard.AuthorizeService(suite.projectA.ID, suite.projectA.ID)
	suite.ErrorIs(err, apperrors.ErrServiceNotFound)
}

// TestOwnershipGuardTestSuite runs the test suite
func TestOwnershipGuardTestSuite(t *testing.T) {
	suite.Run(t, new(OwnershipGuardTestSuite))
}
