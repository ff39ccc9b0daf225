package service

import (
	"errors"
	"fmt"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/auth"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService handles registration and login of dashboard admins
type AdminService struct {
	repo               *repository.AdminRepository
	auth               *auth.Service
	registrationSecret string
	validator          *validator.Validate
}

// NewAdminService creates a new admin service
func NewAdminService(repo *repository.AdminRepository, authSvc *auth.Service, registrationSecret string, validator *validator.Validate) *AdminService {
	return &AdminService{
		repo:               repo,
		auth:               authSvc,
		registrationSecret: registrationSecret,
		validator:          validator,
	}
}

// RegisterRequest represents a secret-gated admin registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Secret   string `json:"secret" validate:"required"`
}

// LoginRequest represents admin credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued token and the admin it belongs to
type AuthResponse struct {
	Token string `json:"token"`
	Admin struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Email string    `json:"email"`
	} `json:"admin"`
}

// Register creates an admin account. Registration is gated by a shared
// secret; a wrong secret is rejected before any credential check.
func (s *AdminService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if s.registrationSecret == "" || req.Secret != s.registrationSecret {
		return nil, apperrors.ErrInvalidSecret
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAdminExists
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.repo.Create(admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return s.issue(admin)
}

// Login verifies credentials and issues a fresh token
func (s *AdminService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	admin, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if !s.auth.VerifyPassword(req.Password, admin.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(admin)
}

func (s *AdminService) issue(admin *models.Admin) (*AuthResponse, error) {
	token, err := s.auth.IssueToken(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	resp := &AuthResponse{Token: token}
	resp.Admin.ID = admin.ID
	resp.Admin.Name = admin.Name
	resp.Admin.Email = admin.Email
	return resp, nil
}
