package services

import (
	"testing"

	"gorm.io/gorm"

	"arsenal/internal/access"
	"arsenal/internal/models"
	"arsenal/internal/testutil"
)

// ledgerEnv is a two-base world with one actor of each role.
type ledgerEnv struct {
	db        *gorm.DB
	ledger    LedgerServicer
	baseA     *models.Base
	baseB     *models.Base
	admin     access.Policy
	commander access.Policy // commands baseA
	logistics access.Policy
}

func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()
	return newLedgerEnvOn(t, testutil.SetupTestDB(t))
}

// newConcurrentLedgerEnv is newLedgerEnv on a pool of conns connections.
func newConcurrentLedgerEnv(t *testing.T, conns int) *ledgerEnv {
	t.Helper()
	return newLedgerEnvOn(t, testutil.SetupConcurrentTestDB(t, conns))
}

func newLedgerEnvOn(t *testing.T, db *gorm.DB) *ledgerEnv {
	t.Helper()

	baseA := testutil.CreateTestBase(t, db)
	baseB := testutil.CreateTestBase(t, db)

	admin := testutil.CreateTestUser(t, db, models.RoleAdmin, "")
	commander := testutil.CreateTestUser(t, db, models.RoleBaseCommander, baseA.ID)
	logistics := testutil.CreateTestUser(t, db, models.RoleLogisticsOfficer, baseB.ID)

	return &ledgerEnv{
		db:        db,
		ledger:    NewLedgerService(),
		baseA:     baseA,
		baseB:     baseB,
		admin:     access.Admin(admin.ID),
		commander: access.BaseCommander(commander.ID, baseA.ID),
		logistics: access.LogisticsOfficer(logistics.ID, ""),
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
