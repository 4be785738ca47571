package constants

// 订单状态常量（与画廊后端约定的原样大小写）
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipping  = "Shipping"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// 订单状态集合（用于校验后端返回值）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipping,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// 结账单行结果备注常量
const (
	LineNoteOK               = "ok"
	LineNoteShortStock       = "short_stock"
	LineNoteDetailFailed     = "detail_create_failed"
	LineNoteStockSyncFailed  = "stock_update_failed"
	LineNoteVariantUnfetched = "variant_fetch_failed"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault         = "default"
	TaskStockRetry       = "checkout:stock_retry"
	TaskOrderDetailRetry = "checkout:detail_retry"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "gl"
)

// 缓存键常量
const (
	CacheKeyPaintingList    = "catalog:paintings"
	CacheKeyPaintingDetail  = "catalog:painting"
	CacheKeyPaintingVariant = "catalog:variants"
	CacheKeyArtistList      = "catalog:artists"
)

// 请求头常量
const (
	HeaderDeviceID  = "X-Device-ID"
	HeaderRequestID = "X-Request-ID"
)

// 站点语言常量
const (
	LocaleViVN = "vi-VN"
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleViVN, LocaleEnUS, LocaleZhCN}
