package public

import (
	"strconv"

	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 产品列表
// GET /api/v1/public/products
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	input := service.ProductListInput{
		Page:       page,
		PageSize:   pageSize,
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
		OnlyActive: true,
	}
	if categoryID, err := strconv.ParseUint(c.Query("category_id"), 10, 64); err == nil {
		input.CategoryID = uint(categoryID)
	}
	if brandID, err := strconv.ParseUint(c.Query("brand_id"), 10, 64); err == nil {
		input.BrandID = uint(brandID)
	}
	if raw := c.Query("min_price"); raw != "" {
		price, err := models.NewMoneyFromString(raw)
		if err != nil {
			response.BadRequest(c, "最低价格不合法")
			return
		}
		input.MinPrice = &price
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := models.NewMoneyFromString(raw)
		if err != nil {
			response.BadRequest(c, "最高价格不合法")
			return
		}
		input.MaxPrice = &price
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		input.Featured = &featured
	}

	products, total, err := h.ProductService.List(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 产品详情
// GET /api/v1/public/products/:slug
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"), true)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	related, err := h.ProductService.ListRelated(product, 4)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"product":          product,
		"related_products": related,
		"in_stock":         product.InStock(),
	})
}

// PriceRange 在售产品价格区间
// GET /api/v1/public/products/price-range
func (h *Handler) PriceRange(c *gin.Context) {
	minPrice, maxPrice, err := h.ProductService.PriceRange()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"min_price": minPrice, "max_price": maxPrice})
}

// ListCategories 分类树
// GET /api/v1/public/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListTree(true)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, categories)
}

// GetCategory 分类详情（含子树产品）
// GET /api/v1/public/categories/:id
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	page, pageSize := shared.QueryPagination(c)
	detail, err := h.CategoryService.GetDetail(id, page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, detail)
}

// ListBrands 品牌列表
// GET /api/v1/public/brands
func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.BrandService.List(true)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, brands)
}

// GetBrand 品牌详情（含品牌下在售产品）
// GET /api/v1/public/brands/:id
func (h *Handler) GetBrand(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	brand, err := h.BrandService.GetByID(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	page, pageSize := shared.QueryPagination(c)
	products, total, err := h.ProductService.List(service.ProductListInput{
		Page:       page,
		PageSize:   pageSize,
		BrandID:    brand.ID,
		OnlyActive: true,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{
		"brand":    brand,
		"products": products,
	}, response.NewPagination(page, pageSize, total))
}

// Search 站内搜索：匹配产品与常见问题
// GET /api/v1/public/search
func (h *Handler) Search(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		response.BadRequest(c, "搜索关键词不能为空")
		return
	}
	page, pageSize := shared.QueryPagination(c)
	products, total, err := h.ProductService.List(service.ProductListInput{
		Page:       page,
		PageSize:   pageSize,
		Search:     keyword,
		OnlyActive: true,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	faqs, _, err := h.FAQService.List(repository.FAQListFilter{
		Page:       1,
		PageSize:   5,
		Search:     keyword,
		OnlyActive: true,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, gin.H{
		"products": products,
		"faqs":     faqs,
	}, response.NewPagination(page, pageSize, total))
}
