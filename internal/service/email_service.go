package service

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/shanhu-mall/internal/config"
	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/models"
)

// 邮件发送相关错误
var (
	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrInvalidEmail              = errors.New("邮箱地址不合法")
)

// EmailService 邮件发送服务
type EmailService struct {
	cfg          *config.EmailConfig
	templateRepo interface {
		GetByCode(code string) (*models.EmailTemplate, error)
	}
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig, templates *EmailTemplateService) *EmailService {
	s := &EmailService{cfg: cfg}
	// 接口字段不能直接接收 nil 指针，否则非 nil 接口包着 nil 接收者
	if templates != nil {
		s.templateRepo = templates
	}
	return s
}

// OrderStatusEmailInput 订单状态邮件输入
type OrderStatusEmailInput struct {
	OrderNumber string
	Status      string
	Amount      models.Money
	UserName    string
}

// SendOrderStatusEmail 发送订单状态通知，优先使用库内模板
func (s *EmailService) SendOrderStatusEmail(toEmail string, input OrderStatusEmailInput) error {
	subject, body := s.buildOrderStatusContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

// SendContactReplyEmail 发送联系消息回复
func (s *EmailService) SendContactReplyEmail(toEmail, subject, reply string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "您的留言已回复"
	}
	return s.sendTextEmail(toEmail, subject, reply)
}

// SendCustomEmail 发送自定义邮件
func (s *EmailService) SendCustomEmail(toEmail, subject, body string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "SMTP 配置测试邮件"
	}
	return s.sendTextEmail(toEmail, subject, body)
}

func (s *EmailService) buildOrderStatusContent(input OrderStatusEmailInput) (string, string) {
	variables := map[string]string{
		"order_number": input.OrderNumber,
		"status":       input.Status,
		"amount":       input.Amount.String(),
		"user_name":    input.UserName,
	}
	code := templateCodeForStatus(input.Status)
	if code != "" && s.templateRepo != nil {
		template, err := s.templateRepo.GetByCode(code)
		if err == nil && template != nil && template.IsActive {
			return RenderTemplate(template.Subject, variables), RenderTemplate(template.TextContent, variables)
		}
	}

	subject := fmt.Sprintf("订单 %s 状态更新", input.OrderNumber)
	body := fmt.Sprintf("您好 %s：\n\n您的订单 %s 当前状态为：%s，金额 %s。\n\n感谢您的惠顾。",
		input.UserName, input.OrderNumber, input.Status, input.Amount.String())
	return subject, body
}

func templateCodeForStatus(status string) string {
	switch status {
	case constants.OrderStatusPaid:
		return constants.EmailTemplateOrderPaid
	case constants.OrderStatusShipped:
		return constants.EmailTemplateOrderShipped
	case constants.OrderStatusDelivered:
		return constants.EmailTemplateOrderDelivered
	default:
		return ""
	}
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	if s.cfg.UseTLS {
		return sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	return sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}
	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
