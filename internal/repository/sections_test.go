package repository

import (
	"testing"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SectionRepositoryTestSuite tests the project-scoped section upserts
type SectionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SectionRepository
	projects      *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SectionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewSectionRepository(suite.baseTestSuite.DB)
	suite.projects = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SectionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SectionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SectionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SectionRepositoryTestSuite) createProject() *models.Project {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.projects.CreateTree(project))
	return project
}

// TestUpsertAboutCreates tests the create path of the about upsert
func (suite *SectionRepositoryTestSuite) TestUpsertAboutCreates() {
	project := suite.createProject()

	row := &models.AboutSection{
		ProjectID:    project.ID,
		Label:        "About us",
		Title:        "Our story",
		Description1: "How it started",
	}
	section, err := suite.repo.UpsertAbout(row, map[string]interface{}{
		"label":        "About us",
		"title":        "Our story",
		"description1": "How it started",
	})
	suite.NoError(err)
	suite.Equal("Our story", section.Title)
}

// TestUpsertAboutMerges tests that unsupplied fields keep their prior value
func (suite *SectionRepositoryTestSuite) TestUpsertAboutMerges() {
	project := suite.createProject()

	first := &models.AboutSection{
		ProjectID:    project.ID,
		Label:        "About us",
		Title:        "Our story",
		Description1: "How it started",
	}
	_, err := suite.repo.UpsertAbout(first, map[string]interface{}{
		"label":        "About us",
		"title":        "Our story",
		"description1": "How it started",
	})
	suite.Require().NoError(err)

	// Second upsert supplies only the title
	second := &models.AboutSection{ProjectID: project.ID, Title: "New story"}
	section, err := suite.repo.UpsertAbout(second, map[string]interface{}{"title": "New story"})
	suite.NoError(err)
	suite.Equal("New story", section.Title)
	suite.Equal("About us", section.Label)
	suite.Equal("How it started", section.Description1)
	suite.Equal(first.ID, section.ID, "upsert must update the existing row, not replace it")
}

// TestUpsertAboutSingleRow tests that repeated upserts never create a second row
func (suite *SectionRepositoryTestSuite) TestUpsertAboutSingleRow() {
	project := suite.createProject()

	for i := 0; i < 3; i++ {
		row := &models.AboutSection{ProjectID: project.ID, Title: "Title"}
		_, err := suite.repo.UpsertAbout(row, map[string]interface{}{"title": "Title"})
		suite.Require().NoError(err)
	}

	var count int64
	suite.baseTestSuite.DB.Model(&models.AboutSection{}).
		Where("project_id = ?", project.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestUpsertHeroMerges tests the hero merge path
func (suite *SectionRepositoryTestSuite) TestUpsertHeroMerges() {
	project := suite.createProject()

	first := &models.HeroSection{ProjectID: project.ID, Headline: "Hello", Subheadline: "World"}
	_, err := suite.repo.UpsertHero(first, map[string]interface{}{
		"headline":    "Hello",
		"subheadline": "World",
	})
	suite.Require().NoError(err)

	second := &models.HeroSection{ProjectID: project.ID, Headline: "Changed"}
	hero, err := suite.repo.UpsertHero(second, map[string]interface{}{"headline": "Changed"})
	suite.NoError(err)
	suite.Equal("Changed", hero.Headline)
	suite.Equal("World", hero.Subheadline)
}

// TestGetServicesOrdered tests insertion order on the preloaded items
func (suite *SectionRepositoryTestSuite) TestGetServicesOrdered() {
	project := suite.createProject()

	section := suite.factories.Services.Create(project.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(section).Error)

	stored, err := suite.repo.GetServices(project.ID)
	suite.NoError(err)
	suite.Require().Len(stored.Services, 2)
	suite.Equal("Coffee corner", stored.Services[0].Title)
	suite.Equal("Catering", stored.Services[1].Title)
}

// TestGetContactNotFound tests the error on an absent section
func (suite *SectionRepositoryTestSuite) TestGetContactNotFound() {
	project := suite.createProject()

	_, err := suite.repo.GetContact(project.ID)
	suite.Error(err)
}

// TestSectionRepositoryTestSuite runs the test suite
func TestSectionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SectionRepositoryTestSuite))
}
