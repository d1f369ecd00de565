package admin

import (
	"strconv"

	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

type saveProductRequest struct {
	Name             string `json:"name" binding:"required"`
	Slug             string `json:"slug" binding:"required"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	CategoryID       uint   `json:"category_id" binding:"required"`
	BrandID          *uint  `json:"brand_id"`
	SKU              string `json:"sku" binding:"required"`
	Price            string `json:"price" binding:"required"`
	CostPrice        string `json:"cost_price"`
	StockQuantity    int    `json:"stock_quantity"`
	MinStockLevel    *int   `json:"min_stock_level"`
	Weight           string `json:"weight"`
	Dimensions       string `json:"dimensions"`
	IsActive         *bool  `json:"is_active"`
	IsFeatured       *bool  `json:"is_featured"`
}

func (r saveProductRequest) toInput(createdByID uint) (service.SaveProductInput, error) {
	input := service.SaveProductInput{
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		CategoryID:       r.CategoryID,
		BrandID:          r.BrandID,
		SKU:              r.SKU,
		StockQuantity:    r.StockQuantity,
		MinStockLevel:    r.MinStockLevel,
		Dimensions:       r.Dimensions,
		IsActive:         r.IsActive,
		IsFeatured:       r.IsFeatured,
		CreatedByID:      createdByID,
	}
	price, err := models.NewMoneyFromString(r.Price)
	if err != nil {
		return input, err
	}
	input.Price = price
	if r.CostPrice != "" {
		costPrice, err := models.NewMoneyFromString(r.CostPrice)
		if err != nil {
			return input, err
		}
		input.CostPrice = &costPrice
	}
	if r.Weight != "" {
		weight, err := models.NewMoneyFromString(r.Weight)
		if err != nil {
			return input, err
		}
		input.Weight = &weight
	}
	return input, nil
}

// ListProducts 后台产品列表
// GET /api/v1/admin/products
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	input := service.ProductListInput{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	if categoryID, err := strconv.ParseUint(c.Query("category_id"), 10, 64); err == nil {
		input.CategoryID = uint(categoryID)
	}
	products, total, err := h.ProductService.List(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 后台产品详情
// GET /api/v1/admin/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"product":   product,
		"in_stock":  product.InStock(),
		"low_stock": product.LowStock(),
	})
}

// CreateProduct 创建产品
// POST /api/v1/admin/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var req saveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	input, err := req.toInput(shared.OptionalUserID(c))
	if err != nil {
		response.BadRequest(c, "金额格式不合法")
		return
	}
	product, err := h.ProductService.Create(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "产品已创建", product)
}

// UpdateProduct 更新产品
// PUT /api/v1/admin/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var req saveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	input, err := req.toInput(shared.OptionalUserID(c))
	if err != nil {
		response.BadRequest(c, "金额格式不合法")
		return
	}
	product, err := h.ProductService.Update(id, input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "产品已更新", product)
}

// DeleteProduct 删除产品
// DELETE /api/v1/admin/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "产品已删除", nil)
}

// SetProductAttribute 设置产品属性值
// PUT /api/v1/admin/products/:id/attributes/:attribute_id
func (h *Handler) SetProductAttribute(c *gin.Context) {
	productID, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	attributeID, ok := shared.ParamUint(c, "attribute_id")
	if !ok {
		return
	}
	var req struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	if err := h.ProductService.SetAttributeValue(productID, attributeID, req.Value); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "属性已设置", nil)
}

// ListProductAttributes 属性定义列表
// GET /api/v1/admin/attributes
func (h *Handler) ListProductAttributes(c *gin.Context) {
	attributes, err := h.ProductService.ListAttributes()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, attributes)
}

// CreateProductAttribute 创建属性定义
// POST /api/v1/admin/attributes
func (h *Handler) CreateProductAttribute(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		DisplayName   string `json:"display_name" binding:"required"`
		AttributeType string `json:"attribute_type"`
		IsRequired    bool   `json:"is_required"`
		IsFilterable  bool   `json:"is_filterable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	attribute, err := h.ProductService.CreateAttribute(service.SaveAttributeInput{
		Name:          req.Name,
		DisplayName:   req.DisplayName,
		AttributeType: req.AttributeType,
		IsRequired:    req.IsRequired,
		IsFilterable:  req.IsFilterable,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "属性已创建", attribute)
}
