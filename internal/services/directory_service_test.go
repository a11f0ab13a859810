package services

import (
	"testing"

	"arsenal/internal/models"
	"arsenal/internal/pagination"
	"arsenal/internal/testutil"
)

func TestBaseService(t *testing.T) {
	env := newLedgerEnv(t)
	svc := NewBaseService(env.db)

	t.Run("create", func(t *testing.T) {
		base, err := svc.CreateBase("Fort Irwin", "California", nil)
		testutil.AssertNoError(t, err)
		if base.ID == "" {
			t.Fatal("expected base ID")
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		_, err := svc.CreateBase("Fort Bragg", "North Carolina", nil)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateBase("Fort Bragg", "Elsewhere", nil)
		testutil.AssertAppError(t, err, "DUPLICATE_BASE")
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := svc.CreateBase("", "Nowhere", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("commander_lists_own_base", func(t *testing.T) {
		bases, err := svc.ListBases(env.commander)
		testutil.AssertNoError(t, err)
		if len(bases) != 1 || bases[0].ID != env.baseA.ID {
			t.Errorf("unexpected bases %+v", bases)
		}
	})

	t.Run("admin_lists_all", func(t *testing.T) {
		bases, err := svc.ListBases(env.admin)
		testutil.AssertNoError(t, err)
		if len(bases) < 2 {
			t.Errorf("expected every base, got %d", len(bases))
		}
	})

	t.Run("get_forbidden", func(t *testing.T) {
		_, err := svc.GetBase(env.commander, env.baseB.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("get_missing", func(t *testing.T) {
		_, err := svc.GetBase(env.admin, "missing")
		testutil.AssertAppError(t, err, "BASE_NOT_FOUND")
	})
}

func TestAssetService(t *testing.T) {
	env := newLedgerEnv(t)
	svc := NewAssetService(env.db)

	t.Run("create_seeds_current_balance", func(t *testing.T) {
		asset, err := svc.CreateAsset("Night vision goggles", models.AssetTypeEquipment, env.baseA.ID, 12)
		testutil.AssertNoError(t, err)
		testutil.AssertBalances(t, env.db, asset.ID, 12, 0, 0)
		if asset.OpeningBalance != 12 {
			t.Errorf("OpeningBalance = %d, want 12", asset.OpeningBalance)
		}
	})

	t.Run("duplicate_line", func(t *testing.T) {
		_, err := svc.CreateAsset("Mortar", models.AssetTypeWeapon, env.baseA.ID, 1)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateAsset("Mortar", models.AssetTypeWeapon, env.baseA.ID, 1)
		testutil.AssertAppError(t, err, "DUPLICATE_ASSET")
	})

	t.Run("same_name_other_base", func(t *testing.T) {
		_, err := svc.CreateAsset("Mortar", models.AssetTypeWeapon, env.baseB.ID, 1)
		testutil.AssertNoError(t, err)
	})

	t.Run("invalid_input", func(t *testing.T) {
		_, err := svc.CreateAsset("Tank", models.AssetType("spaceship"), env.baseA.ID, 1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateAsset("Tank", models.AssetTypeVehicle, env.baseA.ID, -1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_base", func(t *testing.T) {
		_, err := svc.CreateAsset("Tank", models.AssetTypeVehicle, "missing", 1)
		testutil.AssertAppError(t, err, "BASE_NOT_FOUND")
	})

	t.Run("list_scoped", func(t *testing.T) {
		result, err := svc.ListAssets(env.commander, RecordFilter{BaseID: env.baseB.ID}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		for _, a := range result.Data {
			if a.BaseID != env.baseA.ID {
				t.Errorf("commander saw asset at base %s", a.BaseID)
			}
		}
		if result.TotalItems != 2 {
			t.Errorf("TotalItems = %d, want 2", result.TotalItems)
		}
	})

	t.Run("get_forbidden", func(t *testing.T) {
		result, err := svc.ListAssets(env.admin, RecordFilter{BaseID: env.baseB.ID}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		_, err = svc.GetAsset(env.commander, result.Data[0].ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}
