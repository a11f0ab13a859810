// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"arsenal/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("asset_type", validateAssetType)
	_ = v.RegisterValidation("user_role", validateUserRole)
	_ = v.RegisterValidation("transfer_status", validateTransferStatus)
	_ = v.RegisterValidation("assignment_status", validateAssignmentStatus)
}

func validateAssetType(fl validator.FieldLevel) bool {
	return models.AssetType(fl.Field().String()).Valid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

func validateTransferStatus(fl validator.FieldLevel) bool {
	switch models.TransferStatus(fl.Field().String()) {
	case models.TransferStatusPending, models.TransferStatusCompleted, models.TransferStatusRejected:
		return true
	}
	return false
}

func validateAssignmentStatus(fl validator.FieldLevel) bool {
	switch models.AssignmentStatus(fl.Field().String()) {
	case models.AssignmentStatusActive, models.AssignmentStatusReturned:
		return true
	}
	return false
}
