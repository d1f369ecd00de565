package router

import (
	"fmt"
	"strings"

	"github.com/shanhu-mall/internal/cache"
	"github.com/shanhu-mall/internal/config"
	adminhandlers "github.com/shanhu-mall/internal/http/handlers/admin"
	publichandlers "github.com/shanhu-mall/internal/http/handlers/public"
	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "mall"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "登录尝试过于频繁",
	}
	contactRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:contact", redisPrefix),
		WindowSeconds: cfg.Security.ContactRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.ContactRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.ContactRateLimit.BlockSeconds,
		Message:       "留言过于频繁",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/site-settings", publicHandler.GetSiteSettings)
			public.GET("/banners", publicHandler.ListBanners)
			public.GET("/faqs", publicHandler.ListFAQs)
			public.GET("/faqs/:id", publicHandler.GetFAQ)
			public.GET("/captcha", publicHandler.GetCaptcha)
			public.POST("/contact", RateLimitMiddleware(redisClient, contactRule, KeyByIP), publicHandler.SubmitContact)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/price-range", publicHandler.PriceRange)
			public.GET("/products/:slug", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/categories/:id", publicHandler.GetCategory)
			public.GET("/brands", publicHandler.ListBrands)
			public.GET("/brands/:id", publicHandler.GetBrand)
			public.GET("/search", publicHandler.Search)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), publicHandler.Login)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("/user")
		user.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/dashboard", publicHandler.Dashboard)
			user.GET("/profile", publicHandler.GetProfile)
			user.PUT("/profile", publicHandler.UpdateProfile)
			user.POST("/change-password", publicHandler.ChangePassword)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:product_id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.GET("/wishlist", publicHandler.GetWishlist)
			user.POST("/wishlist/:product_id", publicHandler.AddWishlistItem)
			user.DELETE("/wishlist/:product_id", publicHandler.RemoveWishlistItem)

			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:order_number", publicHandler.GetOrder)
			user.POST("/orders/:order_number/cancel", publicHandler.CancelOrder)
			user.GET("/orders/:order_number/shipping", publicHandler.GetOrderShipping)

			user.GET("/notifications", publicHandler.ListNotifications)
			user.GET("/notifications/unread-count", publicHandler.UnreadCount)
			user.POST("/notifications/:id/read", publicHandler.MarkNotificationRead)
			user.POST("/notifications/read-all", publicHandler.MarkAllNotificationsRead)
		}

		// 管理员接口（需鉴权 + 后台人员）
		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), StaffGuardMiddleware())
		{
			// 仪表盘
			admin.GET("/dashboard", adminHandler.Dashboard)

			// 商品管理
			admin.GET("/products", adminHandler.ListProducts)
			admin.GET("/products/:id", adminHandler.GetProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.PUT("/products/:id/attributes/:attribute_id", adminHandler.SetProductAttribute)
			admin.GET("/attributes", adminHandler.ListProductAttributes)
			admin.POST("/attributes", adminHandler.CreateProductAttribute)

			// 分类与品牌管理
			admin.GET("/categories", adminHandler.ListCategories)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
			admin.GET("/brands", adminHandler.ListBrands)
			admin.POST("/brands", adminHandler.CreateBrand)
			admin.PUT("/brands/:id", adminHandler.UpdateBrand)
			admin.DELETE("/brands/:id", adminHandler.DeleteBrand)

			// 订单管理
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:order_number", adminHandler.GetOrder)
			admin.POST("/orders/:order_number/payments", adminHandler.RecordPayment)
			admin.POST("/orders/:order_number/mark-paid", adminHandler.MarkOrderPaid)
			admin.POST("/orders/:order_number/mark-processing", adminHandler.MarkOrderProcessing)
			admin.POST("/orders/:order_number/mark-shipped", adminHandler.MarkOrderShipped)
			admin.POST("/orders/:order_number/mark-delivered", adminHandler.MarkOrderDelivered)
			admin.POST("/orders/:order_number/mark-refunded", adminHandler.MarkOrderRefunded)
			admin.POST("/orders/:order_number/cancel", adminHandler.CancelOrder)
			admin.PUT("/orders/:order_number/note", adminHandler.UpdateOrderNote)
			admin.POST("/orders/:order_number/shipping", adminHandler.CreateShipping)
			admin.PUT("/orders/:order_number/shipping", adminHandler.UpdateShippingStatus)
			admin.POST("/orders/:order_number/shipping/tracking", adminHandler.AddShippingTracking)

			// 站点内容管理
			admin.GET("/site-settings", adminHandler.GetSiteSettings)
			admin.POST("/site-settings", adminHandler.CreateSiteSettings)
			admin.PUT("/site-settings", adminHandler.UpdateSiteSettings)
			admin.GET("/banners", adminHandler.ListBanners)
			admin.POST("/banners", adminHandler.CreateBanner)
			admin.PUT("/banners/:id", adminHandler.UpdateBanner)
			admin.DELETE("/banners/:id", adminHandler.DeleteBanner)
			admin.GET("/faqs", adminHandler.ListFAQs)
			admin.POST("/faqs", adminHandler.CreateFAQ)
			admin.PUT("/faqs/:id", adminHandler.UpdateFAQ)
			admin.DELETE("/faqs/:id", adminHandler.DeleteFAQ)

			// 运营管理
			admin.GET("/contact-messages", adminHandler.ListContactMessages)
			admin.GET("/contact-messages/:id", adminHandler.GetContactMessage)
			admin.POST("/contact-messages/:id/reply", adminHandler.ReplyContactMessage)
			admin.GET("/email-templates", adminHandler.ListEmailTemplates)
			admin.POST("/email-templates", adminHandler.CreateEmailTemplate)
			admin.PUT("/email-templates/:id", adminHandler.UpdateEmailTemplate)
			admin.DELETE("/email-templates/:id", adminHandler.DeleteEmailTemplate)
			admin.GET("/activity-logs", adminHandler.ListActivityLogs)
			admin.POST("/notifications", adminHandler.SendNotification)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
