package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"arsenal/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestBase creates a base with a unique name.
func CreateTestBase(t *testing.T, db *gorm.DB) *models.Base {
	t.Helper()

	n := nextID()
	base := &models.Base{
		Name:     fmt.Sprintf("Base %d", n),
		Location: fmt.Sprintf("Sector %d", n),
	}
	if err := db.Create(base).Error; err != nil {
		t.Fatalf("failed to create test base: %v", err)
	}
	return base
}

// CreateTestAsset creates an asset line at baseID with the given opening
// balance, which is also its current balance.
func CreateTestAsset(t *testing.T, db *gorm.DB, baseID string, assetType models.AssetType, opening int64) *models.Asset {
	t.Helper()
	return CreateTestAssetNamed(t, db, fmt.Sprintf("Test Asset %d", nextID()), baseID, assetType, opening)
}

// CreateTestAssetNamed is CreateTestAsset with a caller-chosen name, for
// tests that need matching lines at several bases.
func CreateTestAssetNamed(t *testing.T, db *gorm.DB, name, baseID string, assetType models.AssetType, opening int64) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Name:           name,
		Type:           assetType,
		BaseID:         baseID,
		OpeningBalance: opening,
		CurrentBalance: opening,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestUser creates an active user with the given role. baseID may be
// empty for users without an assigned base.
func CreateTestUser(t *testing.T, db *gorm.DB, role models.Role, baseID string) *models.User {
	t.Helper()

	n := nextID()
	return CreateTestUserWithEmail(t, db, fmt.Sprintf("user%d@test.mil", n), role, baseID)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string, role models.Role, baseID string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: fmt.Sprintf("user%d", nextID()),
		Email:    email,
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if baseID != "" {
		user.AssignedBaseID = &baseID
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// ReloadAsset re-reads an asset so tests observe committed balances.
func ReloadAsset(t *testing.T, db *gorm.DB, id string) *models.Asset {
	t.Helper()

	var asset models.Asset
	if err := db.First(&asset, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload asset %s: %v", id, err)
	}
	return &asset
}
