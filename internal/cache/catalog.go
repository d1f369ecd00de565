package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/shanhu-mall/internal/models"
)

const (
	productDetailCacheTTL = 5 * time.Minute
	validBannersCacheTTL  = time.Minute
)

func productDetailKey(slug string) string {
	return fmt.Sprintf("catalog:product:%s", slug)
}

const validBannersKey = "catalog:banners:valid"

// GetProductDetail 获取产品详情缓存
func GetProductDetail(ctx context.Context, slug string) (*models.Product, bool, error) {
	if slug == "" {
		return nil, false, nil
	}
	var product models.Product
	hit, err := GetJSON(ctx, productDetailKey(slug), &product)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &product, true, nil
}

// SetProductDetail 写入产品详情缓存
func SetProductDetail(ctx context.Context, product *models.Product) error {
	if product == nil || product.Slug == "" {
		return nil
	}
	return SetJSON(ctx, productDetailKey(product.Slug), product, productDetailCacheTTL)
}

// DelProductDetail 删除产品详情缓存
func DelProductDetail(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}
	return Del(ctx, productDetailKey(slug))
}

// GetValidBanners 获取有效轮播图缓存
func GetValidBanners(ctx context.Context) ([]models.Banner, bool, error) {
	var banners []models.Banner
	hit, err := GetJSON(ctx, validBannersKey, &banners)
	if err != nil || !hit {
		return nil, hit, err
	}
	return banners, true, nil
}

// SetValidBanners 写入有效轮播图缓存
func SetValidBanners(ctx context.Context, banners []models.Banner) error {
	return SetJSON(ctx, validBannersKey, banners, validBannersCacheTTL)
}

// DelValidBanners 删除有效轮播图缓存
func DelValidBanners(ctx context.Context) error {
	return Del(ctx, validBannersKey)
}
