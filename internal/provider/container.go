package provider

import (
	"github.com/shanhu-mall/internal/cache"
	"github.com/shanhu-mall/internal/config"
	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/queue"
	"github.com/shanhu-mall/internal/repository"
	"github.com/shanhu-mall/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo           repository.UserRepository
	CategoryRepo       repository.CategoryRepository
	BrandRepo          repository.BrandRepository
	ProductRepo        repository.ProductRepository
	OrderRepo          repository.OrderRepository
	CartRepo           repository.CartRepository
	WishlistRepo       repository.WishlistRepository
	NotificationRepo   repository.NotificationRepository
	ActivityLogRepo    repository.ActivityLogRepository
	SiteSettingsRepo   repository.SiteSettingsRepository
	BannerRepo         repository.BannerRepository
	FAQRepo            repository.FAQRepository
	ContactMessageRepo repository.ContactMessageRepository
	EmailTemplateRepo  repository.EmailTemplateRepository

	// Services
	UserService          *service.UserService
	CategoryService      *service.CategoryService
	BrandService         *service.BrandService
	ProductService       *service.ProductService
	OrderService         *service.OrderService
	ShippingService      *service.ShippingService
	CartService          *service.CartService
	WishlistService      *service.WishlistService
	NotificationService  *service.NotificationService
	ActivityLogService   *service.ActivityLogService
	SiteSettingsService  *service.SiteSettingsService
	BannerService        *service.BannerService
	FAQService           *service.FAQService
	ContactService       *service.ContactService
	EmailTemplateService *service.EmailTemplateService
	EmailService         *service.EmailService
	CaptchaService       *service.CaptchaService
	DashboardService     *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.BrandRepo = repository.NewBrandRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.NotificationRepo = repository.NewNotificationRepository(db)
	c.ActivityLogRepo = repository.NewActivityLogRepository(db)
	c.SiteSettingsRepo = repository.NewSiteSettingsRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.FAQRepo = repository.NewFAQRepository(db)
	c.ContactMessageRepo = repository.NewContactMessageRepository(db)
	c.EmailTemplateRepo = repository.NewEmailTemplateRepository(db)
}

func (c *Container) initServices() {
	c.UserService = service.NewUserService(c.Config, c.UserRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.ProductRepo)
	c.BrandService = service.NewBrandService(c.BrandRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CartRepo, c.QueueClient)
	c.ShippingService = service.NewShippingService(c.OrderRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
	c.NotificationService = service.NewNotificationService(c.NotificationRepo)
	c.ActivityLogService = service.NewActivityLogService(c.ActivityLogRepo)
	c.SiteSettingsService = service.NewSiteSettingsService(c.SiteSettingsRepo)
	c.BannerService = service.NewBannerService(c.BannerRepo)
	c.FAQService = service.NewFAQService(c.FAQRepo)
	c.EmailTemplateService = service.NewEmailTemplateService(c.EmailTemplateRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email, c.EmailTemplateService)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.ContactService = service.NewContactService(c.ContactMessageRepo, c.CaptchaService, c.EmailService)
	c.DashboardService = service.NewDashboardService(c.OrderRepo, c.ProductRepo, c.UserRepo)
}
