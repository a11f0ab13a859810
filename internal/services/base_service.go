package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
)

// baseService manages the directory of installations.
type baseService struct {
	db *gorm.DB
}

// NewBaseService creates a new BaseServicer.
func NewBaseService(db *gorm.DB) BaseServicer {
	return &baseService{db: db}
}

// CreateBase registers a new base.
func (s *baseService) CreateBase(name, location string, commanderID *string) (*models.Base, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and location are required")
	}
	if commanderID != nil && *commanderID == "" {
		commanderID = nil
	}

	base := &models.Base{Name: name, Location: location, CommanderID: commanderID}
	if err := s.db.Create(base).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateBase
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return base, nil
}

// GetBase retrieves a base visible to policy.
func (s *baseService) GetBase(policy access.Policy, id string) (*models.Base, error) {
	if err := policy.CanAccessBase(id); err != nil {
		return nil, err
	}
	var base models.Base
	if err := s.db.Where("id = ?", id).First(&base).Error; err != nil {
		return nil, notFound(err, apperrors.ErrBaseNotFound)
	}
	return &base, nil
}

// ListBases returns all bases, or only the policy's own base when restricted.
func (s *baseService) ListBases(policy access.Policy) ([]models.Base, error) {
	q := s.db.Model(&models.Base{})
	if base := policy.ScopeBase(""); base != "" {
		q = q.Where("id = ?", base)
	}

	bases := []models.Base{}
	if err := q.Order("name ASC").Find(&bases).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bases, nil
}
