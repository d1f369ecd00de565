package service

import (
	"errors"
	"testing"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupFAQServiceTest(t *testing.T) *FAQService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate faq table failed: %v", err)
	}
	return NewFAQService(repository.NewFAQRepository(db))
}

func TestFAQDetailAccumulatesViews(t *testing.T) {
	svc := setupFAQServiceTest(t)

	faq, err := svc.Create(SaveFAQInput{
		Question: "订单多久发货？",
		Answer:   "付款后 48 小时内发货。",
		Category: "shipping",
	})
	if err != nil {
		t.Fatalf("create faq failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.GetDetail(faq.ID); err != nil {
			t.Fatalf("get detail failed: %v", err)
		}
	}

	detail, err := svc.GetDetail(faq.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.ViewCount != 4 {
		t.Fatalf("view count want 4 got %d", detail.ViewCount)
	}
}

func TestFAQValidationAndListFilter(t *testing.T) {
	svc := setupFAQServiceTest(t)

	if _, err := svc.Create(SaveFAQInput{Question: "只有问题"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}

	inactive := false
	if _, err := svc.Create(SaveFAQInput{
		Question: "filter-退款多久到账？",
		Answer:   "3-7 个工作日原路退回。",
		Category: "refund",
	}); err != nil {
		t.Fatalf("create faq failed: %v", err)
	}
	if _, err := svc.Create(SaveFAQInput{
		Question: "filter-下架的问题",
		Answer:   "不展示。",
		Category: "refund",
		IsActive: &inactive,
	}); err != nil {
		t.Fatalf("create faq failed: %v", err)
	}

	faqs, total, err := svc.List(repository.FAQListFilter{
		Page:       1,
		PageSize:   20,
		Category:   "refund",
		Search:     "filter-",
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list faqs failed: %v", err)
	}
	if total != 1 || len(faqs) != 1 {
		t.Fatalf("want single active faq got total=%d len=%d", total, len(faqs))
	}
	if faqs[0].Question != "filter-退款多久到账？" {
		t.Fatalf("unexpected faq %q", faqs[0].Question)
	}
}

func TestFAQDeleteMissing(t *testing.T) {
	svc := setupFAQServiceTest(t)
	if err := svc.Delete(987654); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}
