package service

import (
	"testing"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/auth"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

const testRegistrationSecret = "reg-secret"

// AdminServiceTestSuite tests registration and login against a real database
type AdminServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *AdminService
	authSvc       *auth.Service
}

// SetupSuite runs before all tests in the suite
func (suite *AdminServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.authSvc = auth.NewService("test-secret", false)
	repo := repository.NewAdminRepository(suite.baseTestSuite.DB)
	suite.service = NewAdminService(repo, suite.authSvc, testRegistrationSecret, validator.New())
}

// TearDownSuite runs after all tests in the suite
func (suite *AdminServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AdminServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AdminServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AdminServiceTestSuite) registerRequest() *RegisterRequest {
	return &RegisterRequest{
		Name:     "Ibrahim",
		Email:    "admin@example.com",
		Password: "long-enough-password",
		Secret:   testRegistrationSecret,
	}
}

func (suite *AdminServiceTestSuite) TestRegister() {
	resp, err := suite.service.Register(suite.registerRequest())
	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal("Ibrahim", resp.Admin.Name)
	suite.Equal("admin@example.com", resp.Admin.Email)

	// the issued token carries the stored admin's identity
	claims, err := suite.authSvc.ValidateToken(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(resp.Admin.ID, claims.AdminID)

	// the password is stored hashed, never verbatim
	var admin models.Admin
	err = suite.baseTestSuite.DB.Where("email = ?", "admin@example.com").First(&admin).Error
	suite.Require().NoError(err)
	suite.NotEqual("long-enough-password", admin.Password)
	suite.True(suite.authSvc.VerifyPassword("long-enough-password", admin.Password))
}

func (suite *AdminServiceTestSuite) TestRegisterWrongSecret() {
	req := suite.registerRequest()
	req.Secret = "wrong"

	_, err := suite.service.Register(req)
	suite.ErrorIs(err, apperrors.ErrInvalidSecret)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Admin{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *AdminServiceTestSuite) TestRegisterDisabledWhenNoSecretConfigured() {
	repo := repository.NewAdminRepository(suite.baseTestSuite.DB)
	svc := NewAdminService(repo, suite.authSvc, "", validator.New())

	req := suite.registerRequest()
	req.Secret = ""
	_, err := svc.Register(req)

	// a blank secret field fails validation before the gate is consulted
	suite.Error(err)

	req.Secret = "anything"
	_, err = svc.Register(req)
	suite.ErrorIs(err, apperrors.ErrInvalidSecret)
}

func (suite *AdminServiceTestSuite) TestRegisterDuplicateEmail() {
	_, err := suite.service.Register(suite.registerRequest())
	suite.Require().NoError(err)

	req := suite.registerRequest()
	req.Name = "Someone Else"
	_, err = suite.service.Register(req)
	suite.ErrorIs(err, apperrors.ErrAdminExists)
}

func (suite *AdminServiceTestSuite) TestRegisterShortPassword() {
	req := suite.registerRequest()
	req.Password = "short"

	_, err := suite.service.Register(req)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AdminServiceTestSuite) TestLogin() {
	_, err := suite.service.Register(suite.registerRequest())
	suite.Require().NoError(err)

	resp, err := suite.service.Login(&LoginRequest{
		Email:    "admin@example.com",
		Password: "long-enough-password",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal("admin@example.com", resp.Admin.Email)
}

func (suite *AdminServiceTestSuite) TestLoginWrongPassword() {
	_, err := suite.service.Register(suite.registerRequest())
	suite.Require().NoError(err)

	_, err = suite.service.Login(&LoginRequest{
		Email:    "admin@example.com",
		Password: "not-the-password",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AdminServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.Login(&LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
