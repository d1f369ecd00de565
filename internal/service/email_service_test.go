package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shanhu-mall/internal/config"
	"github.com/shanhu-mall/internal/models"

	"github.com/shopspring/decimal"
)

func TestSendEmailGuards(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: false}, nil)
	if err := svc.SendCustomEmail("user@example.com", "测试", "正文"); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("want ErrEmailServiceDisabled got %v", err)
	}

	svc = NewEmailService(&config.EmailConfig{Enabled: true}, nil)
	if err := svc.SendCustomEmail("user@example.com", "测试", "正文"); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("want ErrEmailServiceNotConfigured got %v", err)
	}

	svc = NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    465,
		From:    "noreply@example.com",
	}, nil)
	if err := svc.SendCustomEmail("不是邮箱", "测试", "正文"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail got %v", err)
	}
}

func TestBuildOrderStatusContentFallback(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{}, nil)

	subject, body := svc.buildOrderStatusContent(OrderStatusEmailInput{
		OrderNumber: "ORD20260101ABCDEF01",
		Status:      "paid",
		Amount:      models.NewMoneyFromDecimal(decimal.NewFromFloat(99.90)),
		UserName:    "张三",
	})
	if !strings.Contains(subject, "ORD20260101ABCDEF01") {
		t.Fatalf("subject should contain order number, got %q", subject)
	}
	if !strings.Contains(body, "99.90") || !strings.Contains(body, "张三") {
		t.Fatalf("body should contain amount and user name, got %q", body)
	}
}

func TestTemplateCodeForStatus(t *testing.T) {
	if code := templateCodeForStatus("paid"); code == "" {
		t.Fatalf("paid status should map to a template code")
	}
	if code := templateCodeForStatus("pending"); code != "" {
		t.Fatalf("pending status should not map to a template code, got %q", code)
	}
}

func TestBuildEmailMessageHeaders(t *testing.T) {
	msg := buildEmailMessage("noreply@example.com", "user@example.com", "订单通知", "正文内容")
	if !strings.Contains(msg, "From: noreply@example.com\r\n") {
		t.Fatalf("missing From header: %q", msg)
	}
	if !strings.Contains(msg, "Content-Type: text/plain; charset=UTF-8\r\n") {
		t.Fatalf("missing content type header: %q", msg)
	}
	if !strings.HasSuffix(msg, "正文内容") {
		t.Fatalf("body should end message: %q", msg)
	}
}
