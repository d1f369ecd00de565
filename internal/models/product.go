package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 产品表
type Product struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                 // 主键
	Name             string         `gorm:"type:varchar(200);not null" json:"name"`               // 产品名称
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`                     // URL别名
	Description      string         `gorm:"type:text" json:"description"`                         // 产品描述
	ShortDescription string         `gorm:"type:varchar(500)" json:"short_description"`           // 简短描述
	CategoryID       uint           `gorm:"not null;index" json:"category_id"`                    // 分类ID
	BrandID          *uint          `gorm:"index" json:"brand_id,omitempty"`                      // 品牌ID（可空）
	SKU              string         `gorm:"column:sku;uniqueIndex;not null" json:"sku"`           // SKU编码
	Price            Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"`   // 价格
	CostPrice        *Money         `gorm:"type:decimal(10,2)" json:"cost_price,omitempty"`       // 成本价（可空）
	StockQuantity    int            `gorm:"not null;default:0" json:"stock_quantity"`             // 库存数量
	MinStockLevel    int            `gorm:"not null;default:10" json:"min_stock_level"`           // 最低库存阈值
	Weight           *Money         `gorm:"type:decimal(8,3)" json:"weight,omitempty"`            // 重量(kg)
	Dimensions       string         `gorm:"type:varchar(100)" json:"dimensions"`                  // 尺寸
	IsActive         bool           `gorm:"default:true;index" json:"is_active"`                  // 是否上架
	IsFeatured       bool           `gorm:"default:false;index" json:"is_featured"`               // 是否推荐
	CreatedByID      uint           `gorm:"index" json:"created_by_id"`                           // 创建者ID
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                              // 创建时间
	UpdatedAt        time.Time      `json:"updated_at"`                                           // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                       // 软删除时间

	// 关联
	Category   Category                `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Brand      *Brand                  `gorm:"foreignKey:BrandID" json:"brand,omitempty"`       // 品牌信息
	Images     []ProductImage          `gorm:"foreignKey:ProductID" json:"images,omitempty"`    // 产品图片
	Attributes []ProductAttributeValue `gorm:"foreignKey:ProductID" json:"attributes,omitempty"` // 属性值
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// InStock 是否有库存
func (p Product) InStock() bool {
	return p.StockQuantity > 0
}

// LowStock 是否低库存
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// ProductImage 产品图片表（有序，至多一张主图）
type ProductImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`                 // 主键
	ProductID uint      `gorm:"not null;index" json:"product_id"`     // 产品ID
	Image     string    `gorm:"type:varchar(500);not null" json:"image"` // 图片路径
	AltText   string    `gorm:"type:varchar(200)" json:"alt_text"`    // 替代文本
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`      // 是否为主图
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`    // 排序
	CreatedAt time.Time `gorm:"index" json:"created_at"`              // 创建时间
}

// TableName 指定表名
func (ProductImage) TableName() string {
	return "product_images"
}

// ProductAttribute 产品属性定义表
type ProductAttribute struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                     // 主键
	Name          string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`       // 属性标识
	DisplayName   string    `gorm:"type:varchar(100);not null" json:"display_name"`           // 显示名称
	AttributeType string    `gorm:"type:varchar(20);not null;default:'text'" json:"attribute_type"` // 属性类型（text/number/select/color/size）
	IsRequired    bool      `gorm:"default:false" json:"is_required"`                         // 是否必填
	IsFilterable  bool      `gorm:"default:true" json:"is_filterable"`                        // 是否可筛选
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
}

// TableName 指定表名
func (ProductAttribute) TableName() string {
	return "product_attributes"
}

// ProductAttributeValue 产品属性值表（product+attribute 唯一）
type ProductAttributeValue struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                        // 主键
	ProductID   uint      `gorm:"not null;uniqueIndex:idx_product_attribute" json:"product_id"` // 产品ID
	AttributeID uint      `gorm:"not null;uniqueIndex:idx_product_attribute" json:"attribute_id"` // 属性ID
	Value       string    `gorm:"type:text;not null" json:"value"`                             // 属性值
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                     // 创建时间

	Attribute ProductAttribute `gorm:"foreignKey:AttributeID" json:"attribute,omitempty"` // 属性定义
}

// TableName 指定表名
func (ProductAttributeValue) TableName() string {
	return "product_attribute_values"
}
