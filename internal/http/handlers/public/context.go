package public

import (
	"strings"

	"github.com/galeria-next/internal/constants"
	handlershared "github.com/galeria-next/internal/http/handlers/shared"
	"github.com/galeria-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getUserID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "user_id", "error.invalid_request", "error.internal")
}

// getDeviceID 读取设备标识，缺失时返回统一错误
func getDeviceID(c *gin.Context) (string, bool) {
	deviceID := strings.TrimSpace(c.GetHeader(constants.HeaderDeviceID))
	if deviceID == "" {
		respondError(c, response.CodeBadRequest, "error.device_required", nil)
		return "", false
	}
	return deviceID, true
}
