package service

import (
	"errors"
	"testing"

	"github.com/modahaus-api/internal/config"
	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/repository"
)

func newTestUserAuthService(t *testing.T) *UserAuthService {
	t.Helper()
	db := newServiceTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:             "test-secret-key-for-unit-tests-0123456789",
			ExpireHours:           24,
			RememberMeExpireHours: 168,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8},
		},
	}
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegister_DefaultsToBuyer(t *testing.T) {
	svc := newTestUserAuthService(t)

	user, token, _, err := svc.Register("Amina@Example.com", "Password1", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "amina@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.Role != constants.RoleBuyer {
		t.Fatalf("expected default role buyer, got %s", user.Role)
	}
	if user.DisplayName != "amina" {
		t.Fatalf("expected nickname derived from email, got %s", user.DisplayName)
	}
	if token == "" {
		t.Fatalf("expected token on registration")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleBuyer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestUserAuthService(t)

	if _, _, _, err := svc.Register("not-an-email", "Password1", "", ""); err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, _, _, err := svc.Register("amina@example.com", "short", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password error, got %v", err)
	}
	if _, _, _, err := svc.Register("amina@example.com", "Password1", "", constants.RoleAdmin); err != ErrRoleInvalid {
		t.Fatalf("expected ErrRoleInvalid for admin registration, got %v", err)
	}

	if _, _, _, err := svc.Register("amina@example.com", "Password1", "", constants.RoleSeller); err != nil {
		t.Fatalf("seller registration failed: %v", err)
	}
	if _, _, _, err := svc.Register("amina@example.com", "Password1", "", ""); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestUserAuthService(t)
	if _, _, _, err := svc.Register("amina@example.com", "Password1", "Amina", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, expiresAt, err := svc.Login("amina@example.com", "Password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatalf("expected token and expiry")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("expected last login recorded")
	}

	if _, _, _, err := svc.Login("amina@example.com", "wrong-pass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("missing@example.com", "Password1"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestLogin_DisabledUserRejected(t *testing.T) {
	svc := newTestUserAuthService(t)
	user, _, _, err := svc.Register("amina@example.com", "Password1", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user.Status = constants.UserStatusDisabled
	if err := svc.userRepo.Update(user); err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	if _, _, _, err := svc.Login("amina@example.com", "Password1"); err != ErrUserDisabled {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}

func TestChangePassword_BumpsTokenVersion(t *testing.T) {
	svc := newTestUserAuthService(t)
	user, _, _, err := svc.Register("amina@example.com", "Password1", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-old", "Password2"); err != ErrInvalidPassword {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "Password1", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password error, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "Password1", "Password2"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	updated, err := svc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if updated.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("expected token version bumped, got %d", updated.TokenVersion)
	}
	if updated.TokenInvalidBefore == nil {
		t.Fatalf("expected token invalid before set")
	}

	if _, _, _, err := svc.Login("amina@example.com", "Password2"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, _, err := svc.Login("amina@example.com", "Password1"); err != ErrInvalidCredentials {
		t.Fatalf("expected old password rejected, got %v", err)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	svc := newTestUserAuthService(t)
	user, _, _, err := svc.Register("amina@example.com", "Password1", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.CompleteOnboarding(user.ID, "", "", "admin"); err != ErrRoleInvalid {
		t.Fatalf("expected ErrRoleInvalid for admin role, got %v", err)
	}

	updated, err := svc.CompleteOnboarding(user.ID, "Wanjiku Fashion", "+254700000001", "Seller")
	if err != nil {
		t.Fatalf("complete onboarding failed: %v", err)
	}
	if !updated.Onboarded {
		t.Fatalf("expected onboarded flag set")
	}
	if updated.Role != constants.RoleSeller {
		t.Fatalf("expected role seller, got %s", updated.Role)
	}
	if updated.DisplayName != "Wanjiku Fashion" || updated.Phone != "+254700000001" {
		t.Fatalf("unexpected profile: name=%s phone=%s", updated.DisplayName, updated.Phone)
	}

	// 空角色保持当前角色不变
	updated, err = svc.CompleteOnboarding(user.ID, "", "", "")
	if err != nil {
		t.Fatalf("repeat onboarding failed: %v", err)
	}
	if updated.Role != constants.RoleSeller {
		t.Fatalf("expected role unchanged, got %s", updated.Role)
	}

	if _, err := svc.CompleteOnboarding(0, "", "", ""); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for zero id, got %v", err)
	}
}

func TestCompleteOnboarding_AdminRoleLocked(t *testing.T) {
	svc := newTestUserAuthService(t)
	user, _, _, err := svc.Register("admin@example.com", "Password1", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user.Role = constants.RoleAdmin
	if err := svc.userRepo.Update(user); err != nil {
		t.Fatalf("promote user failed: %v", err)
	}

	updated, err := svc.CompleteOnboarding(user.ID, "", "", constants.RoleBuyer)
	if err != nil {
		t.Fatalf("complete onboarding failed: %v", err)
	}
	if updated.Role != constants.RoleAdmin {
		t.Fatalf("expected admin role preserved, got %s", updated.Role)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestUserAuthService(t)
	user, _, _, err := svc.Register("amina@example.com", "Password1", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Amina W."
	locale := "sw"
	updated, err := svc.UpdateProfile(user.ID, &name, &locale)
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.DisplayName != "Amina W." || updated.Locale != "sw" {
		t.Fatalf("unexpected profile: name=%s locale=%s", updated.DisplayName, updated.Locale)
	}

	if _, err := svc.UpdateProfile(user.ID, nil, nil); err != ErrProfileEmpty {
		t.Fatalf("expected ErrProfileEmpty, got %v", err)
	}
	empty := "   "
	if _, err := svc.UpdateProfile(user.ID, &empty, nil); err != ErrProfileEmpty {
		t.Fatalf("expected ErrProfileEmpty for blank name, got %v", err)
	}
}
