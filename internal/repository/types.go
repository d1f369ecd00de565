package repository

import (
	"time"

	"github.com/shanhu-mall/internal/models"
)

// ProductListFilter 查询产品列表的过滤条件（AND 组合）
type ProductListFilter struct {
	Page        int
	PageSize    int
	CategoryIDs []uint // 分类ID集合（含子分类展开后的集合）
	BrandID     uint
	MinPrice    *models.Money
	MaxPrice    *models.Money
	Search      string // 名称/描述/简短描述子串匹配
	Sort        string // newest / name / price_asc / price_desc
	OnlyActive  bool
	Featured    *bool
	WithAssoc   bool // 预加载分类/品牌/图片
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	OnlyActive   bool
	OnlyRoots    bool
	WithChildren bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNumber string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// NotificationListFilter 查询通知列表的过滤条件
type NotificationListFilter struct {
	Page       int
	PageSize   int
	UserID     uint
	OnlyUnread bool
}

// ActivityLogListFilter 查询活动日志列表的过滤条件
type ActivityLogListFilter struct {
	Page        int
	PageSize    int
	UserID      *uint
	Action      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// FAQListFilter 查询常见问题列表的过滤条件
type FAQListFilter struct {
	Page       int
	PageSize   int
	Category   string
	Search     string
	OnlyActive bool
}

// ContactMessageListFilter 查询联系消息列表的过滤条件
type ContactMessageListFilter struct {
	Page      int
	PageSize  int
	IsReplied *bool
	Search    string
}

// BannerListFilter 查询轮播图列表的过滤条件
type BannerListFilter struct {
	Page     int
	PageSize int
	IsActive *bool
	Search   string
}
