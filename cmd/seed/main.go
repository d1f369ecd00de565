package main

import (
	"fmt"
	"time"

	"github.com/shanhu-mall/internal/config"
	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "电子产品", Description: "耳机、手表与其他数码设备", IsActive: true, SortOrder: 300},
		{Name: "生活用品", Description: "日常家居与出行好物", IsActive: true, SortOrder: 200},
		{Name: "数码配件", Description: "充电、收纳与周边配件", IsActive: true, SortOrder: 100},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Name)
			categoryIDs[cat.Name] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
			categoryIDs[cat.Name] = existing.ID
		}
	}
	electronicsID := categoryIDs["电子产品"]
	lifestyleID := categoryIDs["生活用品"]
	accessoriesID := categoryIDs["数码配件"]

	// 添加子分类
	if electronicsID != 0 {
		subCategories := []models.Category{
			{Name: "音频设备", ParentID: &electronicsID, IsActive: true, SortOrder: 20},
			{Name: "智能穿戴", ParentID: &electronicsID, IsActive: true, SortOrder: 10},
		}
		for _, cat := range subCategories {
			var existing models.Category
			if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
				if err := models.DB.Create(&cat).Error; err != nil {
					stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				} else {
					stdLog.Printf("Created category: %s", cat.Name)
				}
			}
			categoryIDs[cat.Name] = cat.ID
		}
	}

	// 添加品牌
	brands := []models.Brand{
		{Name: "声海湾", Description: "专注音频产品", Website: "https://example.com/shanhaiwan", IsActive: true},
		{Name: "极屿", Description: "智能穿戴与出行装备", Website: "https://example.com/jiyu", IsActive: true},
	}
	brandIDs := map[string]uint{}
	for _, brand := range brands {
		var existing models.Brand
		if err := models.DB.Where("name = ?", brand.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&brand).Error; err != nil {
				stdLog.Printf("Failed to create brand %s: %v", brand.Name, err)
				continue
			}
			stdLog.Printf("Created brand: %s", brand.Name)
			brandIDs[brand.Name] = brand.ID
		} else {
			brandIDs[brand.Name] = existing.ID
		}
	}
	audioBrandID := brandIDs["声海湾"]
	wearBrandID := brandIDs["极屿"]

	// 添加商品
	products := []models.Product{
		{
			Name:             "无线蓝牙耳机",
			Slug:             "wireless-earphones",
			Description:      "采用蓝牙5.0技术，支持主动降噪，续航时间长达24小时。人体工学设计，佩戴舒适。",
			ShortDescription: "高品质音质，长续航，舒适佩戴",
			CategoryID:       pickCategory(categoryIDs, "音频设备", electronicsID),
			BrandID:          optionalID(audioBrandID),
			SKU:              "SKU-EARPHONE-001",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(299.00)),
			StockQuantity:    120,
			MinStockLevel:    10,
			IsActive:         true,
			IsFeatured:       true,
		},
		{
			Name:             "智能手表",
			Slug:             "smart-watch",
			Description:      "全天候心率监测，多种运动模式，防水设计，支持消息推送和通话功能。",
			ShortDescription: "健康监测，运动追踪，消息提醒",
			CategoryID:       pickCategory(categoryIDs, "智能穿戴", electronicsID),
			BrandID:          optionalID(wearBrandID),
			SKU:              "SKU-WATCH-001",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(899.00)),
			StockQuantity:    60,
			MinStockLevel:    10,
			IsActive:         true,
			IsFeatured:       true,
		},
		{
			Name:             "便携充电宝",
			Slug:             "power-bank",
			Description:      "20000mAh 大容量，支持双向快充，兼容主流手机与平板。",
			ShortDescription: "大容量，快速充电，多设备兼容",
			CategoryID:       accessoriesID,
			SKU:              "SKU-POWER-001",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(149.00)),
			StockQuantity:    200,
			MinStockLevel:    20,
			IsActive:         true,
		},
		{
			Name:             "多功能背包",
			Slug:             "backpack",
			Description:      "大容量分层设计，防水防盗，内置 USB 充电接口，适合通勤与旅行。",
			ShortDescription: "大容量，防水防盗，USB充电接口",
			CategoryID:       lifestyleID,
			SKU:              "SKU-BAG-001",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(239.00)),
			StockQuantity:    80,
			MinStockLevel:    10,
			IsActive:         true,
		},
		{
			Name:             "演示商品-库存紧张",
			Slug:             "demo-low-stock",
			Description:      "用于前台库存徽章展示：剩余库存低于阈值。",
			ShortDescription: "库存演示商品",
			CategoryID:       accessoriesID,
			SKU:              "SKU-DEMO-LOW",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(39.90)),
			StockQuantity:    3,
			MinStockLevel:    10,
			IsActive:         true,
		},
		{
			Name:             "演示商品-已售罄",
			Slug:             "demo-sold-out",
			Description:      "用于前台库存徽章与禁购按钮展示：库存为零。",
			ShortDescription: "库存演示商品",
			CategoryID:       accessoriesID,
			SKU:              "SKU-DEMO-OUT",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(49.90)),
			StockQuantity:    0,
			MinStockLevel:    10,
			IsActive:         true,
		},
	}

	productImages := map[string]string{
		"wireless-earphones": "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
		"smart-watch":        "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800",
		"power-bank":         "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800",
		"backpack":           "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
	}

	for _, prod := range products {
		if prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category_id missing", prod.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
				continue
			}
			stdLog.Printf("Created product: %s", prod.Slug)
			if image, ok := productImages[prod.Slug]; ok {
				img := models.ProductImage{
					ProductID: prod.ID,
					Image:     image,
					AltText:   prod.Name,
					IsPrimary: true,
				}
				if err := models.DB.Create(&img).Error; err != nil {
					stdLog.Printf("Failed to create image for %s: %v", prod.Slug, err)
				}
			}
		} else {
			existing.Name = prod.Name
			existing.Description = prod.Description
			existing.ShortDescription = prod.ShortDescription
			existing.CategoryID = prod.CategoryID
			existing.BrandID = prod.BrandID
			existing.Price = prod.Price
			existing.StockQuantity = prod.StockQuantity
			existing.MinStockLevel = prod.MinStockLevel
			existing.IsActive = prod.IsActive
			existing.IsFeatured = prod.IsFeatured
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Slug)
			}
		}
	}

	// 添加轮播图
	now := time.Now()
	primaryStart := now.Add(-24 * time.Hour)
	primaryEnd := now.AddDate(0, 2, 0)
	secondaryStart := now.Add(-12 * time.Hour)
	secondaryEnd := now.AddDate(0, 1, 0)

	banners := []models.Banner{
		{
			Title:      "2026 秋季上新",
			Subtitle:   "耳机、手表与数码配件限时优惠",
			Image:      "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=1920",
			Link:       "/products",
			ButtonText: "立即选购",
			IsActive:   true,
			SortOrder:  300,
			StartDate:  &primaryStart,
			EndDate:    &primaryEnd,
		},
		{
			Title:      "本周新品到货",
			Subtitle:   "上新 20+ 款数码配件，立即抢先体验",
			Image:      "https://images.unsplash.com/photo-1517336714739-489689fd1ca8?w=1920",
			Link:       "/products?sort=newest",
			ButtonText: "查看新品",
			IsActive:   true,
			SortOrder:  200,
			StartDate:  &secondaryStart,
			EndDate:    &secondaryEnd,
		},
	}

	for _, banner := range banners {
		var existing models.Banner
		if err := models.DB.Where("title = ?", banner.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&banner).Error; err != nil {
				stdLog.Printf("Failed to create banner %s: %v", banner.Title, err)
			} else {
				stdLog.Printf("Created banner: %s", banner.Title)
			}
		} else {
			stdLog.Printf("Banner already exists: %s", banner.Title)
		}
	}

	// 添加常见问题
	faqs := []models.FAQ{
		{Question: "订单多久发货？", Answer: "付款后 48 小时内发货，节假日顺延。", Category: "shipping", IsActive: true, SortOrder: 300},
		{Question: "支持哪些支付方式？", Answer: "支持银行转账和货到付款，支付完成后由客服在后台确认。", Category: "payment", IsActive: true, SortOrder: 200},
		{Question: "如何申请退款？", Answer: "签收后 7 天内可联系客服申请退款，退回款项将原路返还。", Category: "refund", IsActive: true, SortOrder: 100},
	}

	for _, faq := range faqs {
		var existing models.FAQ
		if err := models.DB.Where("question = ?", faq.Question).First(&existing).Error; err != nil {
			if err := models.DB.Create(&faq).Error; err != nil {
				stdLog.Printf("Failed to create faq: %v", err)
			} else {
				stdLog.Printf("Created faq: %s", faq.Question)
			}
		} else {
			stdLog.Printf("FAQ already exists: %s", faq.Question)
		}
	}

	// 初始化网站设置（单例）
	var settingsCount int64
	models.DB.Model(&models.SiteSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := models.SiteSettings{
			SiteName:        "珊瑚商城",
			SiteDescription: "精选数码与生活好物",
			ContactEmail:    "support@example.com",
		}
		if err := models.DB.Create(&settings).Error; err != nil {
			stdLog.Printf("Failed to create site settings: %v", err)
		} else {
			stdLog.Println("Created site settings")
		}
	} else {
		stdLog.Println("Site settings already exist")
	}

	fmt.Println("\n✅ Test data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 5 Categories (3 roots + 2 children)")
	fmt.Println("- 2 Brands")
	fmt.Println("- 6 Products (含库存演示商品)")
	fmt.Println("- 2 Banners")
	fmt.Println("- 3 FAQs")
	fmt.Println("- Site settings")
}

func pickCategory(ids map[string]uint, name string, fallback uint) uint {
	if id, ok := ids[name]; ok && id != 0 {
		return id
	}
	return fallback
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
