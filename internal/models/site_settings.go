package models

import "time"

// SiteSettings 网站设置表（单例，至多一行）
type SiteSettings struct {
	ID              uint      `gorm:"primarykey" json:"id"`                              // 主键
	SiteName        string    `gorm:"type:varchar(100);default:'我的网站'" json:"site_name"` // 网站名称
	SiteDescription string    `gorm:"type:text" json:"site_description"`                 // 网站描述
	SiteKeywords    string    `gorm:"type:text" json:"site_keywords"`                    // 网站关键词
	Logo            string    `gorm:"type:varchar(500)" json:"logo"`                     // 网站LOGO
	Favicon         string    `gorm:"type:varchar(500)" json:"favicon"`                  // 网站图标
	ContactEmail    string    `gorm:"type:varchar(200)" json:"contact_email"`            // 联系邮箱
	ContactPhone    string    `gorm:"type:varchar(20)" json:"contact_phone"`             // 联系电话
	Address         string    `gorm:"type:text" json:"address"`                          // 地址
	WeiboURL        string    `gorm:"type:varchar(500)" json:"weibo_url"`                // 微博链接
	WechatQR        string    `gorm:"type:varchar(500)" json:"wechat_qr"`                // 微信二维码
	GoogleAnalytics string    `gorm:"type:text" json:"google_analytics"`                 // Google Analytics 代码
	BaiduAnalytics  string    `gorm:"type:text" json:"baidu_analytics"`                  // 百度统计代码
	MaintenanceMode bool      `gorm:"default:false" json:"maintenance_mode"`             // 维护模式
	MaintenanceMsg  string    `gorm:"type:text" json:"maintenance_message"`              // 维护提示信息
	CreatedAt       time.Time `json:"created_at"`                                       // 创建时间
	UpdatedAt       time.Time `json:"updated_at"`                                       // 更新时间
}

// TableName 指定表名
func (SiteSettings) TableName() string {
	return "site_settings"
}

// Banner 轮播图表
type Banner struct {
	ID         uint       `gorm:"primarykey" json:"id"`                   // 主键
	Title      string     `gorm:"type:varchar(200);not null" json:"title"` // 标题
	Subtitle   string     `gorm:"type:varchar(200)" json:"subtitle"`      // 副标题
	Image      string     `gorm:"type:varchar(500);not null" json:"image"` // 图片
	Link       string     `gorm:"type:varchar(500)" json:"link"`          // 链接
	ButtonText string     `gorm:"type:varchar(50)" json:"button_text"`    // 按钮文字
	IsActive   bool       `gorm:"default:true;index" json:"is_active"`    // 是否激活
	SortOrder  int        `gorm:"default:0;index" json:"sort_order"`      // 排序
	StartDate  *time.Time `gorm:"index" json:"start_date"`                // 开始时间
	EndDate    *time.Time `gorm:"index" json:"end_date"`                  // 结束时间
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (Banner) TableName() string {
	return "banners"
}

// IsValid 是否在投放窗口内
func (b Banner) IsValid(now time.Time) bool {
	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return b.IsActive
}
