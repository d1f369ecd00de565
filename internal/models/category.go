package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 产品分类表（parent_id 邻接表，单层父子结构）
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`                // 主键
	Name        string         `gorm:"type:varchar(100);not null" json:"name"` // 分类名称
	Description string         `gorm:"type:text" json:"description"`        // 描述
	ParentID    *uint          `gorm:"index" json:"parent_id,omitempty"`    // 父分类ID（空为顶级分类）
	Image       string         `gorm:"type:varchar(500)" json:"image"`      // 分类图片
	IsActive    bool           `gorm:"default:true;index" json:"is_active"` // 是否激活
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`   // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`             // 创建时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间

	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"` // 子分类
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// Brand 品牌表
type Brand struct {
	ID          uint           `gorm:"primarykey" json:"id"`                // 主键
	Name        string         `gorm:"type:varchar(100);not null" json:"name"` // 品牌名称
	Logo        string         `gorm:"type:varchar(500)" json:"logo"`       // 品牌LOGO
	Description string         `gorm:"type:text" json:"description"`        // 品牌描述
	Website     string         `gorm:"type:varchar(500)" json:"website"`    // 官方网站
	IsActive    bool           `gorm:"default:true;index" json:"is_active"` // 是否激活
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`             // 创建时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间
}

// TableName 指定表名
func (Brand) TableName() string {
	return "brands"
}
