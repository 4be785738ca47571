package response

// 业务码，数值对齐 HTTP 语义便于前端直接判断
const (
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
