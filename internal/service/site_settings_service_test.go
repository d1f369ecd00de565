package service

import (
	"errors"
	"testing"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupSiteSettingsServiceTest(t *testing.T) *SiteSettingsService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate site settings table failed: %v", err)
	}
	return NewSiteSettingsService(repository.NewSiteSettingsRepository(db))
}

func TestSiteSettingsSingletonLifecycle(t *testing.T) {
	svc := setupSiteSettingsServiceTest(t)

	enabled := true
	created, err := svc.Create(SaveSiteSettingsInput{
		SiteName:        "珊瑚商城",
		ContactEmail:    "support@example.com",
		MaintenanceMode: &enabled,
		MaintenanceMsg:  "升级维护中",
	})
	if err != nil {
		t.Fatalf("create settings failed: %v", err)
	}
	if created.SiteName != "珊瑚商城" {
		t.Fatalf("site name want 珊瑚商城 got %s", created.SiteName)
	}

	// 单行表：重复创建被拒绝
	if _, err := svc.Create(SaveSiteSettingsInput{SiteName: "另一个站点"}); !errors.Is(err, ErrSettingsExists) {
		t.Fatalf("want ErrSettingsExists got %v", err)
	}

	if !svc.MaintenanceEnabled() {
		t.Fatalf("expected maintenance mode enabled")
	}

	disabled := false
	updated, err := svc.Update(SaveSiteSettingsInput{
		SiteName:        "珊瑚商城二期",
		MaintenanceMode: &disabled,
	})
	if err != nil {
		t.Fatalf("update settings failed: %v", err)
	}
	if updated.SiteName != "珊瑚商城二期" {
		t.Fatalf("site name want 珊瑚商城二期 got %s", updated.SiteName)
	}

	// 快照随更新刷新
	current, err := svc.Current()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if current.SiteName != "珊瑚商城二期" || current.MaintenanceMode {
		t.Fatalf("snapshot not refreshed: %+v", current)
	}
	if svc.MaintenanceEnabled() {
		t.Fatalf("expected maintenance mode disabled")
	}
}
