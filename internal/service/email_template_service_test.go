package service

import (
	"errors"
	"testing"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupEmailTemplateServiceTest(t *testing.T) *EmailTemplateService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate email template table failed: %v", err)
	}
	return NewEmailTemplateService(repository.NewEmailTemplateRepository(db))
}

func TestRenderTemplateReplacesPlaceholders(t *testing.T) {
	content := "尊敬的 {{username}}，您的订单 {{order_number}} 已发货。"
	rendered := RenderTemplate(content, map[string]string{
		"username":     "张三",
		"order_number": "ORD20260101ABCDEF01",
	})
	want := "尊敬的 张三，您的订单 ORD20260101ABCDEF01 已发货。"
	if rendered != want {
		t.Fatalf("rendered want %q got %q", want, rendered)
	}

	// 未提供的占位符保持原样
	rendered = RenderTemplate("你好 {{username}}，{{unknown}}", map[string]string{"username": "李四"})
	if rendered != "你好 李四，{{unknown}}" {
		t.Fatalf("unexpected rendered %q", rendered)
	}

	if RenderTemplate("", map[string]string{"a": "b"}) != "" {
		t.Fatalf("empty content should stay empty")
	}
	if RenderTemplate("原文", nil) != "原文" {
		t.Fatalf("nil variables should keep content")
	}
}

func TestEmailTemplateCreateAndLookup(t *testing.T) {
	svc := setupEmailTemplateServiceTest(t)

	created, err := svc.Create(SaveEmailTemplateInput{
		Name:        "发货通知",
		Code:        "tpl_order_shipped",
		Subject:     "您的订单已发货",
		HTMLContent: "<p>订单 {{order_number}} 已发货</p>",
	})
	if err != nil {
		t.Fatalf("create template failed: %v", err)
	}
	if !created.IsActive {
		t.Fatalf("template should default active")
	}

	if _, err := svc.Create(SaveEmailTemplateInput{Name: "缺字段"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}

	found, err := svc.GetByCode("tpl_order_shipped")
	if err != nil {
		t.Fatalf("get by code failed: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("unexpected template lookup result: %+v", found)
	}

	inactive := false
	if _, err := svc.Update(created.ID, SaveEmailTemplateInput{
		Name:     "发货通知",
		Code:     "tpl_order_shipped",
		Subject:  "您的订单已发货",
		IsActive: &inactive,
	}); err != nil {
		t.Fatalf("update template failed: %v", err)
	}

	templates, err := svc.List(true)
	if err != nil {
		t.Fatalf("list templates failed: %v", err)
	}
	for _, tpl := range templates {
		if tpl.ID == created.ID {
			t.Fatalf("inactive template should be excluded from active list")
		}
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete template failed: %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
	found, err = svc.GetByCode("tpl_order_shipped")
	if err != nil {
		t.Fatalf("get by code failed: %v", err)
	}
	if found != nil {
		t.Fatalf("deleted template should not be found")
	}
}
