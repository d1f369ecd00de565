package service

import (
	"sync/atomic"

	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// SiteSettingsService 站点设置业务服务。
// 设置表至多一行，读路径走进程内快照，写入后刷新快照。
type SiteSettingsService struct {
	repo     repository.SiteSettingsRepository
	snapshot atomic.Pointer[models.SiteSettings]
}

// NewSiteSettingsService 创建站点设置服务
func NewSiteSettingsService(repo repository.SiteSettingsRepository) *SiteSettingsService {
	return &SiteSettingsService{repo: repo}
}

// SaveSiteSettingsInput 创建/更新设置输入
type SaveSiteSettingsInput struct {
	SiteName        string
	SiteDescription string
	SiteKeywords    string
	Logo            string
	Favicon         string
	ContactEmail    string
	ContactPhone    string
	Address         string
	WeiboURL        string
	WechatQR        string
	GoogleAnalytics string
	BaiduAnalytics  string
	MaintenanceMode *bool
	MaintenanceMsg  string
}

// Current 当前设置快照，未初始化时回源数据库
func (s *SiteSettingsService) Current() (*models.SiteSettings, error) {
	if cached := s.snapshot.Load(); cached != nil {
		return cached, nil
	}
	return s.Reload()
}

// Reload 重新加载快照
func (s *SiteSettingsService) Reload() (*models.SiteSettings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &models.SiteSettings{SiteName: "我的网站"}
	}
	s.snapshot.Store(settings)
	return settings, nil
}

// Create 创建设置行，已存在时拒绝
func (s *SiteSettingsService) Create(input SaveSiteSettingsInput) (*models.SiteSettings, error) {
	count, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSettingsExists
	}
	settings := &models.SiteSettings{}
	applySettingsInput(settings, input)
	if settings.SiteName == "" {
		settings.SiteName = "我的网站"
	}
	if err := s.repo.Create(settings); err != nil {
		return nil, err
	}
	s.snapshot.Store(settings)
	return settings, nil
}

// Update 更新设置并刷新快照
func (s *SiteSettingsService) Update(input SaveSiteSettingsInput) (*models.SiteSettings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrNotFound
	}
	applySettingsInput(settings, input)
	if err := s.repo.Update(settings); err != nil {
		return nil, err
	}
	s.snapshot.Store(settings)
	logger.Infow("site_settings_reloaded", "site_name", settings.SiteName)
	return settings, nil
}

// MaintenanceEnabled 维护模式开关
func (s *SiteSettingsService) MaintenanceEnabled() bool {
	settings, err := s.Current()
	if err != nil || settings == nil {
		return false
	}
	return settings.MaintenanceMode
}

func applySettingsInput(settings *models.SiteSettings, input SaveSiteSettingsInput) {
	settings.SiteName = input.SiteName
	settings.SiteDescription = input.SiteDescription
	settings.SiteKeywords = input.SiteKeywords
	settings.Logo = input.Logo
	settings.Favicon = input.Favicon
	settings.ContactEmail = input.ContactEmail
	settings.ContactPhone = input.ContactPhone
	settings.Address = input.Address
	settings.WeiboURL = input.WeiboURL
	settings.WechatQR = input.WechatQR
	settings.GoogleAnalytics = input.GoogleAnalytics
	settings.BaiduAnalytics = input.BaiduAnalytics
	settings.MaintenanceMsg = input.MaintenanceMsg
	if input.MaintenanceMode != nil {
		settings.MaintenanceMode = *input.MaintenanceMode
	}
}
