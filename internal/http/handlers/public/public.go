package public

import (
	"time"

	"github.com/galeria-next/internal/cache"
	"github.com/galeria-next/internal/constants"
	"github.com/galeria-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig 获取全局配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data := map[string]interface{}{
		"languages":      constants.SupportedLocales,
		"default_locale": constants.LocaleViVN,
		"currency":       "VND",
		"order_statuses": constants.OrderStatuses,
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}

// Health 健康检查：上游画廊后端可达时返回 ok
func (h *Handler) Health(c *gin.Context) {
	status := "ok"
	if _, err := h.CatalogService.ListArtists(c.Request.Context()); err != nil {
		status = "degraded"
	}
	response.Success(c, gin.H{"status": status})
}
