package repository

import (
	"testing"
	"time"

	"github.com/shanhu-mall/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupNotificationRepositoryTest(t *testing.T) *GormNotificationRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate notification table failed: %v", err)
	}
	return NewNotificationRepository(db)
}

func createTestNotification(t *testing.T, repo *GormNotificationRepository, userID uint, title string) *models.Notification {
	t.Helper()
	n := &models.Notification{
		UserID:           userID,
		Title:            title,
		Message:          "测试消息",
		NotificationType: "info",
	}
	if err := repo.Create(n); err != nil {
		t.Fatalf("create notification failed: %v", err)
	}
	return n
}

func TestMarkReadOnlyFirstTime(t *testing.T) {
	repo := setupNotificationRepositoryTest(t)
	const userID = 8001
	n := createTestNotification(t, repo, userID, "订单已发货")

	firstReadAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	affected, err := repo.MarkRead(n.ID, userID, firstReadAt)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	// 重复标记不生效，read_at 保持首次时间
	affected, err = repo.MarkRead(n.ID, userID, firstReadAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected want 0 got %d", affected)
	}

	current, err := repo.GetByID(n.ID)
	if err != nil {
		t.Fatalf("get notification failed: %v", err)
	}
	if !current.IsRead {
		t.Fatalf("expected notification read")
	}
	if current.ReadAt == nil || !current.ReadAt.Equal(firstReadAt) {
		t.Fatalf("read_at want %v got %v", firstReadAt, current.ReadAt)
	}
}

func TestMarkReadRejectsOtherUser(t *testing.T) {
	repo := setupNotificationRepositoryTest(t)
	n := createTestNotification(t, repo, 8002, "余额变动")

	affected, err := repo.MarkRead(n.ID, 8003, time.Now())
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected want 0 got %d", affected)
	}
}

func TestUnreadCountAndMarkAllRead(t *testing.T) {
	repo := setupNotificationRepositoryTest(t)
	const userID = 8004
	createTestNotification(t, repo, userID, "通知一")
	createTestNotification(t, repo, userID, "通知二")
	createTestNotification(t, repo, userID, "通知三")

	count, err := repo.UnreadCount(userID)
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("unread want 3 got %d", count)
	}

	affected, err := repo.MarkAllRead(userID, time.Now())
	if err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	if affected != 3 {
		t.Fatalf("affected want 3 got %d", affected)
	}

	count, err = repo.UnreadCount(userID)
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("unread want 0 got %d", count)
	}
}
