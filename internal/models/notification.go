package models

import "time"

// Notification 通知表
type Notification struct {
	ID               uint       `gorm:"primarykey" json:"id"`                                            // 主键
	UserID           uint       `gorm:"index;not null" json:"user_id"`                                   // 用户ID
	Title            string     `gorm:"type:varchar(200);not null" json:"title"`                         // 标题
	Message          string     `gorm:"type:text;not null" json:"message"`                               // 消息内容
	NotificationType string     `gorm:"type:varchar(20);not null;default:'info'" json:"notification_type"` // 通知类型（info/success/warning/error）
	IsRead           bool       `gorm:"default:false;index" json:"is_read"`                              // 是否已读
	Link             string     `gorm:"type:varchar(500)" json:"link"`                                   // 相关链接
	RelatedType      string     `gorm:"type:varchar(50);index" json:"related_type,omitempty"`            // 关联实体类型（仅引用，不级联）
	RelatedID        *uint      `json:"related_id,omitempty"`                                           // 关联实体ID
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`                                         // 创建时间
	ReadAt           *time.Time `json:"read_at"`                                                        // 阅读时间
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}

// ActivityLog 活动日志表（仅追加，创建后只读）
type ActivityLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`                       // 主键
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`             // 用户ID（匿名操作为空）
	Action      string    `gorm:"type:varchar(20);index;not null" json:"action"` // 操作（create/update/delete/login/logout/view/download/upload/other）
	Description string    `gorm:"type:text;not null" json:"description"`      // 描述
	IPAddress   string    `gorm:"type:varchar(64)" json:"ip_address"`         // IP地址
	UserAgent   string    `gorm:"type:text" json:"user_agent"`                // 用户代理
	RelatedType string    `gorm:"type:varchar(50);index" json:"related_type,omitempty"` // 关联实体类型
	RelatedID   *uint     `json:"related_id,omitempty"`                      // 关联实体ID
	ExtraData   JSON      `gorm:"type:json" json:"extra_data"`                // 额外数据（不校验结构）
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                    // 创建时间
}

// TableName 指定表名
func (ActivityLog) TableName() string {
	return "activity_logs"
}
