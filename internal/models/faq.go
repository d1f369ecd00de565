package models

import "time"

// FAQ 常见问题表
type FAQ struct {
	ID        uint      `gorm:"primarykey" json:"id"`                     // 主键
	Question  string    `gorm:"type:varchar(300);not null" json:"question"` // 问题
	Answer    string    `gorm:"type:text;not null" json:"answer"`         // 答案
	Category  string    `gorm:"type:varchar(100);index" json:"category"`  // 分类
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`      // 是否激活
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`        // 排序
	ViewCount int       `gorm:"not null;default:0" json:"view_count"`     // 查看次数
	CreatedAt time.Time `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (FAQ) TableName() string {
	return "faqs"
}

// ContactMessage 联系消息表
type ContactMessage struct {
	ID           uint       `gorm:"primarykey" json:"id"`                   // 主键
	Name         string     `gorm:"type:varchar(100);not null" json:"name"` // 姓名
	Email        string     `gorm:"type:varchar(200);not null" json:"email"` // 邮箱
	Phone        string     `gorm:"type:varchar(20)" json:"phone"`          // 电话
	Subject      string     `gorm:"type:varchar(200);not null" json:"subject"` // 主题
	Message      string     `gorm:"type:text;not null" json:"message"`      // 消息内容
	IsReplied    bool       `gorm:"default:false;index" json:"is_replied"`  // 是否已回复
	ReplyMessage string     `gorm:"type:text" json:"reply_message"`         // 回复内容
	RepliedByID  *uint      `gorm:"index" json:"replied_by_id,omitempty"`   // 回复人ID
	RepliedAt    *time.Time `json:"replied_at"`                            // 回复时间
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// EmailTemplate 邮件模板表
type EmailTemplate struct {
	ID          uint      `gorm:"primarykey" json:"id"`                        // 主键
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`      // 模板名称
	Code        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // 模板代码
	Subject     string    `gorm:"type:varchar(200);not null" json:"subject"`   // 邮件主题
	HTMLContent string    `gorm:"type:text;not null" json:"html_content"`      // HTML内容
	TextContent string    `gorm:"type:text" json:"text_content"`               // 文本内容
	Variables   JSON      `gorm:"type:json" json:"variables"`                  // 可用变量说明
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`         // 是否激活
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                     // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                 // 更新时间
}

// TableName 指定表名
func (EmailTemplate) TableName() string {
	return "email_templates"
}
