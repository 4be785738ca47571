package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 统一响应包体
// status_code 为业务码，0 表示成功，非 0 沿用对应 HTTP 语义（400/401/404/429/500）；
// HTTP 层始终返回 200，前端只看业务码
type Body struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination 分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// NewPagination 由总数推导总页数
// 上游画廊接口全量返回列表，分页在网关侧切片完成
func NewPagination(page, pageSize int, total int64) Pagination {
	var totalPage int64
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{
		StatusCode: 0,
		Message:    "success",
		Data:       data,
	})
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, Body{
		StatusCode: 0,
		Message:    "success",
		Data:       data,
		Pagination: &pagination,
	})
}

// Error 错误响应，data 里带上 request_id 便于排查
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(http.StatusOK, Body{
		StatusCode: statusCode,
		Message:    message,
		Data:       withRequestID(c),
	})
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, CodeUnauthorized, message)
}

func withRequestID(c *gin.Context) interface{} {
	if c == nil {
		return nil
	}
	value, ok := c.Get("request_id")
	if !ok {
		return nil
	}
	requestID, ok := value.(string)
	if !ok || requestID == "" {
		return nil
	}
	return gin.H{"request_id": requestID}
}
