package service

import (
	"errors"
	"testing"

	"github.com/shanhu-mall/internal/config"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserServiceTest(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate user tables failed: %v", err)
	}
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "unit-test-secret-key-0123456789abcdef",
			ExpireHours: 1,
		},
	}
	return NewUserService(cfg, repository.NewUserRepository(db)), db
}

func TestRegisterLoginParseJWT(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Username: "jwt_roundtrip",
		Email:    "jwt_roundtrip@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user id assigned")
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in plain text")
	}

	logged, token, expiresAt, err := svc.Login("jwt_roundtrip", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatalf("expected token and expiry")
	}
	if logged.LastLoginAt == nil {
		t.Fatalf("expected last_login_at set")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "jwt_roundtrip" || claims.IsStaff {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	if _, err := svc.Register(RegisterInput{
		Username: "login_wrong_pass",
		Email:    "login_wrong_pass@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Login("login_wrong_pass", "bad-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("no_such_user", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	if _, err := svc.Register(RegisterInput{
		Username: "dup_user",
		Email:    "dup_user@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Register(RegisterInput{
		Username: "dup_user",
		Email:    "dup_user_other@example.com",
		Password: "secret123",
	}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("want ErrUsernameExists got %v", err)
	}
	if _, err := svc.Register(RegisterInput{
		Username: "dup_user_other",
		Email:    "dup_user@example.com",
		Password: "secret123",
	}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
	if _, err := svc.Register(RegisterInput{
		Username: "short_pass",
		Email:    "short_pass@example.com",
		Password: "123",
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Username: "change_pass",
		Email:    "change_pass@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-old", "newsecret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "secret123", "123"); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "secret123", "newsecret123"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, _, err := svc.Login("change_pass", "newsecret123"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, _, err := svc.Login("change_pass", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should be rejected")
	}
}

func TestUpdateProfileUpsertsExtendedFields(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Username: "profile_user",
		Email:    "profile_user@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{
		Phone:   "13900000000",
		Gender:  "female",
		Company: "珊瑚科技",
		Bio:     "测试简介",
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Phone != "13900000000" || updated.Profile == nil || updated.Profile.Company != "珊瑚科技" {
		t.Fatalf("unexpected profile: %+v", updated.Profile)
	}

	// 再次更新走已有 profile 行
	updated, err = svc.UpdateProfile(user.ID, UpdateProfileInput{
		Phone:   "13900000000",
		Company: "珊瑚网络",
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Profile.Company != "珊瑚网络" {
		t.Fatalf("company want 珊瑚网络 got %s", updated.Profile.Company)
	}
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	svc, db := setupUserServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Username: "disabled_user",
		Email:    "disabled_user@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !user.IsActive {
		t.Fatalf("registered user should default active")
	}

	if _, _, _, err := svc.Login("disabled_user", "secret123"); err != nil {
		t.Fatalf("login before disabling failed: %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login("disabled_user", "secret123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("want ErrUserDisabled got %v", err)
	}
}
