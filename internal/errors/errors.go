package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this slug"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// OwnershipError represents an ownership-chain mismatch: a child entity was
// addressed through a project it does not belong to.
type OwnershipError struct {
	Entity string
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("%s does not belong to this project", e.Entity)
}

// Is enables errors.Is() comparison for OwnershipError
func (e *OwnershipError) Is(target error) bool {
	t, ok := target.(*OwnershipError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrProjectNotFound         = &NotFoundError{Entity: "project"}
	ErrSiteSettingsNotFound    = &NotFoundError{Entity: "site settings"}
	ErrAboutSectionNotFound    = &NotFoundError{Entity: "about section"}
	ErrServicesSectionNotFound = &NotFoundError{Entity: "services section"}
	ErrWhyUsSectionNotFound    = &NotFoundError{Entity: "why us section"}
	ErrServiceNotFound         = &NotFoundError{Entity: "service"}
	ErrWhyUsFeatureNotFound    = &NotFoundError{Entity: "why us feature"}
	ErrGalleryImageNotFound    = &NotFoundError{Entity: "gallery image"}
	ErrPackageNotFound         = &NotFoundError{Entity: "package"}
	ErrArticleNotFound         = &NotFoundError{Entity: "article"}
	ErrMetadataNotFound        = &NotFoundError{Entity: "metadata"}
)

// Already Exists Errors
var (
	ErrProjectExists      = &AlreadyExistsError{Entity: "project", Context: "with this slug"}
	ErrAdminExists        = &AlreadyExistsError{Entity: "admin", Context: "with this email"}
	ErrArticleTitleExists = &AlreadyExistsError{Entity: "article", Context: "with this title"}
)

// Ownership Errors
var (
	ErrServiceOwnership      = &OwnershipError{Entity: "service"}
	ErrWhyUsFeatureOwnership = &OwnershipError{Entity: "why us feature"}
	ErrGalleryImageOwnership = &OwnershipError{Entity: "gallery image"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Business Logic Errors
var (
	ErrInvalidStars        = errors.New("stars must be an integer between 1 and 5")
	ErrInvalidSecret       = errors.New("invalid registration secret")
	ErrInvalidKeywords     = errors.New("all keywords must be non-empty strings")
	ErrUnsupportedFileType = errors.New("only JPEG, PNG, WebP, and GIF images are allowed")
	ErrFileTooLarge        = errors.New("file size must be less than 10MB")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsOwnership checks if an error is an OwnershipError
func IsOwnership(err error) bool {
	var ownErr *OwnershipError
	return errors.As(err, &ownErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
