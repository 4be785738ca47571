package service

import "errors"

// 服务层哨兵错误
var (
	ErrDeviceRequired      = errors.New("设备标识不能为空")
	ErrCartEmpty           = errors.New("购物车为空")
	ErrCartLineNotFound    = errors.New("购物车行不存在")
	ErrInvalidCartLine     = errors.New("购物车行无效")
	ErrInvalidQuantity     = errors.New("数量无效")
	ErrShippingInfoInvalid = errors.New("收货信息不完整")
	ErrOrderCreateFailed   = errors.New("订单创建失败")
	ErrOrderFinalizeFailed = errors.New("订单状态确认失败")
	ErrOrderNotFound       = errors.New("订单不存在")
	ErrOrderNotCancellable = errors.New("订单当前状态不可取消")
	ErrPaintingNotFound    = errors.New("画作不存在")
	ErrVariantNotFound     = errors.New("画作规格不存在")
	ErrUpstreamUnavailable = errors.New("画廊后端不可用")
	ErrLoginFailed         = errors.New("邮箱或密码错误")
	ErrEmailExists         = errors.New("邮箱已被注册")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrPasswordIncorrect   = errors.New("当前密码不正确")
	ErrReviewInvalid       = errors.New("评价内容无效")
	ErrInvalidToken        = errors.New("无效的 token")
)
