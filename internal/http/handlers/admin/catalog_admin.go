package admin

import (
	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

type saveCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

type saveBrandRequest struct {
	Name        string `json:"name" binding:"required"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Website     string `json:"website"`
	IsActive    *bool  `json:"is_active"`
}

// ListCategories 后台分类列表（平铺）
// GET /api/v1/admin/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListFlat(false)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory 创建分类
// POST /api/v1/admin/categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req saveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	category, err := h.CategoryService.Create(service.SaveCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		Image:       req.Image,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "分类已创建", category)
}

// UpdateCategory 更新分类
// PUT /api/v1/admin/categories/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var req saveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	category, err := h.CategoryService.Update(id, service.SaveCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		Image:       req.Image,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "分类已更新", category)
}

// DeleteCategory 删除分类（级联删除后代分类）
// DELETE /api/v1/admin/categories/:id
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "分类已删除", nil)
}

// ListBrands 后台品牌列表
// GET /api/v1/admin/brands
func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.BrandService.List(false)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, brands)
}

// CreateBrand 创建品牌
// POST /api/v1/admin/brands
func (h *Handler) CreateBrand(c *gin.Context) {
	var req saveBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	brand, err := h.BrandService.Create(service.SaveBrandInput{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Website:     req.Website,
		IsActive:    req.IsActive,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "品牌已创建", brand)
}

// UpdateBrand 更新品牌
// PUT /api/v1/admin/brands/:id
func (h *Handler) UpdateBrand(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var req saveBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	brand, err := h.BrandService.Update(id, service.SaveBrandInput{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Website:     req.Website,
		IsActive:    req.IsActive,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "品牌已更新", brand)
}

// DeleteBrand 删除品牌
// DELETE /api/v1/admin/brands/:id
func (h *Handler) DeleteBrand(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.BrandService.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "品牌已删除", nil)
}
