package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db               *gorm.DB
	maxLoginAttempts int
	lockoutDuration  time.Duration
}

// NewUserService creates a new UserServicer. After maxLoginAttempts
// consecutive failures an account is locked for lockoutDuration.
func NewUserService(db *gorm.DB, maxLoginAttempts int, lockoutDuration time.Duration) UserServicer {
	if maxLoginAttempts < 1 {
		maxLoginAttempts = 5
	}
	return &userService{db: db, maxLoginAttempts: maxLoginAttempts, lockoutDuration: lockoutDuration}
}

// CreateUser registers a new user
func (s *userService) CreateUser(username, email, password string, role models.Role, assignedBaseID *string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username, email and password are required")
	}
	if !role.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid role")
	}
	if assignedBaseID != nil && *assignedBaseID == "" {
		assignedBaseID = nil
	}
	if role == models.RoleBaseCommander && assignedBaseID == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "base commanders require an assigned base")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ? OR username = ?", email, username).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUser
	}

	if assignedBaseID != nil {
		if _, err := requireBase(s.db, *assignedBaseID); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		Password:       string(hashedPassword),
		Role:           role,
		AssignedBaseID: assignedBaseID,
		IsActive:       true,
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// GetUserByEmail retrieves an active user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).First(&user).Error; err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID with its assigned base.
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("AssignedBase").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// AttemptLogin verifies credentials and maintains the failed-attempt counter.
// Unknown emails and wrong passwords both yield INVALID_CREDENTIALS.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, apperrors.ErrAccountLocked
	}

	if !s.VerifyPassword(user, password) {
		attempts := user.FailedLoginAttempts + 1
		updates := map[string]any{"failed_login_attempts": attempts}
		if attempts >= s.maxLoginAttempts {
			updates["locked_until"] = now.Add(s.lockoutDuration)
			updates["failed_login_attempts"] = 0
		}
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.db.Model(user).Updates(map[string]any{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetUserByID(user.ID)
}
