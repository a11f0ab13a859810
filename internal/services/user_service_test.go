package services

import (
	"testing"
	"time"

	"arsenal/internal/models"
	"arsenal/internal/testutil"

	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T) (UserServicer, *models.Base, func(string) *models.User) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db, 5, 15*time.Minute)
	base := testutil.CreateTestBase(t, db)
	reload := func(email string) *models.User {
		t.Helper()
		var u models.User
		if err := db.Where("email = ?", email).First(&u).Error; err != nil {
			t.Fatalf("failed to reload user: %v", err)
		}
		return &u
	}
	return svc, base, reload
}

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, base, _ := newTestUserService(t)

		user, err := svc.CreateUser("cdr.alpha", "Alpha@Army.MIL", "password123", models.RoleBaseCommander, &base.ID)
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected user ID to be set")
		}
		if user.Email != "alpha@army.mil" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.AssignedBaseID == nil || *user.AssignedBaseID != base.ID {
			t.Error("expected assigned base to be stored")
		}
		if !user.IsActive {
			t.Error("expected user to be active")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
			t.Error("expected password to be stored as a bcrypt hash")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)

		_, err := svc.CreateUser("one", "dup@army.mil", "password123", models.RoleAdmin, nil)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("two", "dup@army.mil", "password456", models.RoleAdmin, nil)
		testutil.AssertAppError(t, err, "DUPLICATE_USER")
	})

	t.Run("commander_requires_base", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)

		_, err := svc.CreateUser("cdr", "cdr@army.mil", "password123", models.RoleBaseCommander, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_base", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)

		missing := "00000000-0000-0000-0000-000000000000"
		_, err := svc.CreateUser("lo", "lo@army.mil", "password123", models.RoleLogisticsOfficer, &missing)
		testutil.AssertAppError(t, err, "BASE_NOT_FOUND")
	})

	t.Run("invalid_role", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)

		_, err := svc.CreateUser("x", "x@army.mil", "password123", models.Role("quartermaster"), nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_password", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)

		_, err := svc.CreateUser("x", "x@army.mil", "", models.RoleAdmin, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("found_with_base", func(t *testing.T) {
		svc, base, _ := newTestUserService(t)

		created, err := svc.CreateUser("lo", "lo@army.mil", "password123", models.RoleLogisticsOfficer, &base.ID)
		testutil.AssertNoError(t, err)

		user, err := svc.GetUserByID(created.ID)
		testutil.AssertNoError(t, err)
		if user.AssignedBase == nil || user.AssignedBase.ID != base.ID {
			t.Error("expected assigned base to be preloaded")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)

		_, err := svc.GetUserByID("missing")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success_resets_attempts", func(t *testing.T) {
		svc, _, reload := newTestUserService(t)

		_, err := svc.CreateUser("login", "login@army.mil", "password123", models.RoleAdmin, nil)
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("login@army.mil", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		user, err := svc.AttemptLogin("login@army.mil", "password123")
		testutil.AssertNoError(t, err)

		if user.FailedLoginAttempts != 0 {
			t.Errorf("expected 0 failed attempts after success, got %d", user.FailedLoginAttempts)
		}
		if reload("login@army.mil").LastLoginAt == nil {
			t.Error("expected LastLoginAt to be set after successful login")
		}
	})

	t.Run("wrong_password_increments_attempts", func(t *testing.T) {
		svc, _, reload := newTestUserService(t)

		_, err := svc.CreateUser("fail", "fail@army.mil", "password123", models.RoleAdmin, nil)
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("fail@army.mil", "wrongpassword")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		if got := reload("fail@army.mil").FailedLoginAttempts; got != 1 {
			t.Errorf("expected 1 failed attempt, got %d", got)
		}
	})

	t.Run("lockout_after_max_failures", func(t *testing.T) {
		svc, _, reload := newTestUserService(t)

		_, err := svc.CreateUser("lockout", "lockout@army.mil", "password123", models.RoleAdmin, nil)
		testutil.AssertNoError(t, err)

		for i := 0; i < 5; i++ {
			_, err = svc.AttemptLogin("lockout@army.mil", "wrong")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		user := reload("lockout@army.mil")
		if user.LockedUntil == nil || !user.LockedUntil.After(time.Now()) {
			t.Fatal("expected LockedUntil in the future after 5 failures")
		}

		_, err = svc.AttemptLogin("lockout@army.mil", "password123")
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("nonexistent_user", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)

		_, err := svc.AttemptLogin("nobody@army.mil", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}
