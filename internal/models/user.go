package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                 // 主键
	Username     string         `gorm:"uniqueIndex;not null" json:"username"` // 用户名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`    // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	Phone        string         `gorm:"type:varchar(20)" json:"phone"`        // 手机号
	Avatar       string         `gorm:"type:varchar(500)" json:"avatar"`      // 头像路径
	BirthDate    *time.Time     `json:"birth_date"`                          // 出生日期
	Gender       string         `gorm:"type:varchar(1)" json:"gender"`        // 性别（M/F/O）
	Address      string         `gorm:"type:text" json:"address"`             // 地址
	IsStaff      bool           `gorm:"default:false;index" json:"is_staff"`  // 是否后台人员
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`  // 是否可用（禁用后无法登录）
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`     // 是否已验证
	LastLoginAt  *time.Time     `json:"last_login_at"`                       // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                          // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间

	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"` // 用户资料
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// UserProfile 用户资料扩展（一对一）
type UserProfile struct {
	ID       uint   `gorm:"primarykey" json:"id"`                     // 主键
	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`      // 用户ID
	Company  string `gorm:"type:varchar(100)" json:"company"`         // 公司
	Position string `gorm:"type:varchar(50)" json:"position"`         // 职位
	Bio      string `gorm:"type:text" json:"bio"`                     // 个人简介
	Website  string `gorm:"type:varchar(500)" json:"website"`         // 个人网站
}

// TableName 指定表名
func (UserProfile) TableName() string {
	return "user_profiles"
}
