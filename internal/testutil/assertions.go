package testutil

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	apperrors "arsenal/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected code and
// returns it so callers can inspect details.
func AssertAppError(t *testing.T, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertAvailable checks that err is INSUFFICIENT_QUANTITY reporting the
// given available quantity.
func AssertAvailable(t *testing.T, err error, want int64) {
	t.Helper()

	appErr := AssertAppError(t, err, "INSUFFICIENT_QUANTITY")
	got, ok := appErr.Details["available"].(int64)
	if !ok || got != want {
		t.Errorf("details.available = %v, want %d", appErr.Details["available"], want)
	}
}

// AssertBalances fails the test unless the stored asset has the given
// current, assigned and expended counters.
func AssertBalances(t *testing.T, db *gorm.DB, id string, current, assigned, expended int64) {
	t.Helper()

	a := ReloadAsset(t, db, id)
	if a.CurrentBalance != current || a.Assigned != assigned || a.Expended != expended {
		t.Errorf("asset %s balances = (current %d, assigned %d, expended %d), want (%d, %d, %d)",
			id, a.CurrentBalance, a.Assigned, a.Expended, current, assigned, expended)
	}
	if a.CurrentBalance < a.Assigned || a.CurrentBalance < 0 || a.Assigned < 0 || a.Expended < 0 {
		t.Errorf("asset %s violates ledger invariants: %+v", id, a)
	}
}
