package i18n

// messages 文案表（按语言 → key）
var messages = map[string]map[string]string{
	LocaleVI: {
		"error.invalid_request":        "Yêu cầu không hợp lệ",
		"error.device_required":        "Thiếu mã thiết bị",
		"error.unauthorized":           "Vui lòng đăng nhập",
		"error.too_many_requests":      "Thao tác quá nhanh, vui lòng thử lại sau",
		"error.internal":               "Lỗi hệ thống, vui lòng thử lại sau",
		"error.not_found":              "Không tìm thấy tài nguyên",
		"error.cart_empty":             "Giỏ hàng đang trống",
		"error.cart_line_not_found":    "Sản phẩm không có trong giỏ hàng",
		"error.cart_invalid_variant":   "Phiên bản tranh không hợp lệ",
		"error.cart_invalid_quantity":  "Số lượng không hợp lệ",
		"error.shipping_info_invalid":  "Vui lòng nhập đầy đủ thông tin nhận hàng",
		"error.order_create_failed":    "Không thể tạo đơn hàng, vui lòng thử lại",
		"error.order_finalize_failed":  "Đơn hàng chưa được xác nhận, vui lòng kiểm tra lại",
		"error.order_not_found":        "Không tìm thấy đơn hàng",
		"error.painting_not_found":     "Không tìm thấy tranh",
		"error.variant_not_found":      "Không tìm thấy phiên bản tranh",
		"error.upstream_unavailable":   "Máy chủ cửa hàng tạm thời gián đoạn",
		"error.login_failed":           "Email hoặc mật khẩu không đúng",
		"error.user_exists":            "Email đã được đăng ký",
		"error.user_not_found":         "Không tìm thấy người dùng",
		"error.password_incorrect":     "Mật khẩu hiện tại không đúng",
		"error.review_invalid":         "Nội dung đánh giá không hợp lệ",
		"error.auth_header_missing":    "Thiếu thông tin đăng nhập",
		"error.auth_header_invalid":    "Thông tin đăng nhập không hợp lệ",
		"error.token_invalid":          "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại",
		"error.rate_limited":           "Thao tác quá nhanh, vui lòng thử lại sau %d giây",
		"error.login_too_many":         "Đăng nhập sai quá nhiều lần, vui lòng thử lại sau %d giây",
		"error.checkout_too_many":      "Đặt hàng quá nhanh, vui lòng thử lại sau %d giây",
		"error.rate_limit_unavailable": "Hệ thống đang bận, vui lòng thử lại sau",
	},
	LocaleEN: {
		"error.invalid_request":        "Invalid request",
		"error.device_required":        "Device ID is required",
		"error.unauthorized":           "Please sign in",
		"error.too_many_requests":      "Too many requests, please retry later",
		"error.internal":               "Internal error, please retry later",
		"error.not_found":              "Resource not found",
		"error.cart_empty":             "Cart is empty",
		"error.cart_line_not_found":    "Item not found in cart",
		"error.cart_invalid_variant":   "Invalid painting variant",
		"error.cart_invalid_quantity":  "Invalid quantity",
		"error.shipping_info_invalid":  "Please fill in all shipping fields",
		"error.order_create_failed":    "Order could not be created, please retry",
		"error.order_finalize_failed":  "Order was not confirmed, please check again",
		"error.order_not_found":        "Order not found",
		"error.painting_not_found":     "Painting not found",
		"error.variant_not_found":      "Painting variant not found",
		"error.upstream_unavailable":   "Store backend is temporarily unavailable",
		"error.login_failed":           "Incorrect email or password",
		"error.user_exists":            "Email is already registered",
		"error.user_not_found":         "User not found",
		"error.password_incorrect":     "Current password is incorrect",
		"error.review_invalid":         "Invalid review content",
		"error.auth_header_missing":    "Authorization header is missing",
		"error.auth_header_invalid":    "Authorization header is invalid",
		"error.token_invalid":          "Session expired, please sign in again",
		"error.rate_limited":           "Too many requests, retry in %d seconds",
		"error.login_too_many":         "Too many login attempts, retry in %d seconds",
		"error.checkout_too_many":      "Checkout too frequent, retry in %d seconds",
		"error.rate_limit_unavailable": "Service is busy, please retry later",
	},
	LocaleZH: {
		"error.invalid_request":        "请求参数无效",
		"error.device_required":        "缺少设备标识",
		"error.unauthorized":           "请先登录",
		"error.too_many_requests":      "操作过于频繁，请稍后再试",
		"error.internal":               "系统错误，请稍后再试",
		"error.not_found":              "资源不存在",
		"error.cart_empty":             "购物车为空",
		"error.cart_line_not_found":    "购物车中不存在该商品",
		"error.cart_invalid_variant":   "画作规格无效",
		"error.cart_invalid_quantity":  "数量无效",
		"error.shipping_info_invalid":  "请完整填写收货信息",
		"error.order_create_failed":    "订单创建失败，请重试",
		"error.order_finalize_failed":  "订单状态未确认，请稍后查看",
		"error.order_not_found":        "订单不存在",
		"error.painting_not_found":     "画作不存在",
		"error.variant_not_found":      "画作规格不存在",
		"error.upstream_unavailable":   "商店后端暂时不可用",
		"error.login_failed":           "邮箱或密码错误",
		"error.user_exists":            "邮箱已被注册",
		"error.user_not_found":         "用户不存在",
		"error.password_incorrect":     "当前密码不正确",
		"error.review_invalid":         "评价内容无效",
		"error.auth_header_missing":    "缺少登录凭证",
		"error.auth_header_invalid":    "登录凭证格式无效",
		"error.token_invalid":          "登录已过期，请重新登录",
		"error.rate_limited":           "操作过于频繁，请 %d 秒后再试",
		"error.login_too_many":         "登录失败次数过多，请 %d 秒后再试",
		"error.checkout_too_many":      "下单过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable": "系统繁忙，请稍后再试",
	},
}
