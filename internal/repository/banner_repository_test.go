package repository

import (
	"testing"
	"time"

	"github.com/shanhu-mall/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBannerRepositoryTest(t *testing.T) *GormBannerRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate banner table failed: %v", err)
	}
	return NewBannerRepository(db)
}

func createTestBanner(t *testing.T, repo *GormBannerRepository, title string, sortOrder int, active bool, start, end *time.Time) *models.Banner {
	t.Helper()
	banner := &models.Banner{
		Title:     title,
		Image:     "/uploads/banners/" + title + ".jpg",
		IsActive:  active,
		SortOrder: sortOrder,
		StartDate: start,
		EndDate:   end,
	}
	if err := repo.Create(banner); err != nil {
		t.Fatalf("create banner failed: %v", err)
	}
	return banner
}

func TestListValidHonorsWindowAndOrder(t *testing.T) {
	repo := setupBannerRepositoryTest(t)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	inWindow := createTestBanner(t, repo, "valid-window", 2, true, &past, &future)
	noWindow := createTestBanner(t, repo, "valid-open", 1, true, nil, nil)
	expired := createTestBanner(t, repo, "valid-expired", 3, true, nil, &past)
	upcoming := createTestBanner(t, repo, "valid-upcoming", 4, true, &future, nil)
	disabled := createTestBanner(t, repo, "valid-disabled", 0, false, nil, nil)

	banners, err := repo.ListValid(now)
	if err != nil {
		t.Fatalf("list valid failed: %v", err)
	}

	ids := make(map[uint]bool, len(banners))
	for _, b := range banners {
		ids[b.ID] = true
	}
	if !ids[inWindow.ID] || !ids[noWindow.ID] {
		t.Fatalf("expected in-window banners in result")
	}
	if ids[expired.ID] || ids[upcoming.ID] || ids[disabled.ID] {
		t.Fatalf("expired/upcoming/disabled banners should be excluded")
	}

	// sort_order 升序
	for i := 1; i < len(banners); i++ {
		if banners[i-1].SortOrder > banners[i].SortOrder {
			t.Fatalf("banners not ordered by sort_order")
		}
	}
}
