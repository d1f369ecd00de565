package service

import "errors"

// 服务层错误哨兵，供处理器按 errors.Is 映射响应码
var (
	ErrNotFound          = errors.New("资源不存在")
	ErrValidation        = errors.New("参数校验失败")
	ErrSlugExists        = errors.New("标识符已存在")
	ErrSKUExists         = errors.New("SKU 已存在")
	ErrCodeExists        = errors.New("编码已存在")
	ErrUsernameExists    = errors.New("用户名已存在")
	ErrEmailExists       = errors.New("邮箱已被注册")
	ErrSettingsExists    = errors.New("站点设置已存在")
	ErrAttributeConflict = errors.New("属性值已存在")

	ErrInvalidQuantity     = errors.New("数量必须为正整数")
	ErrEmptyOrder          = errors.New("订单必须至少包含一个订单项")
	ErrStockInsufficient   = errors.New("库存不足")
	ErrProductNotAvailable = errors.New("产品不可用")
	ErrOrderNumberConflict = errors.New("订单号生成冲突")
	ErrOrderStatusInvalid  = errors.New("订单状态不合法")
	ErrShippingExists      = errors.New("订单已存在物流记录")

	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserDisabled       = errors.New("账号已被禁用")
	ErrPermissionDenied   = errors.New("无权访问")
	ErrCaptchaInvalid     = errors.New("验证码错误")

	ErrCircularCategory = errors.New("分类不能作为自身的子分类")
)
