package public

import (
	"strconv"

	"github.com/galeria-next/internal/http/response"
	"github.com/galeria-next/internal/models"
	"github.com/galeria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartLineRequest 加入购物车请求
// variant_id / painting_variants_id / variants_id 三者取第一个非零值
type CartLineRequest struct {
	VariantID          uint         `json:"variant_id"`
	PaintingVariantsID uint         `json:"painting_variants_id"`
	VariantsID         uint         `json:"variants_id"`
	PaintingID         uint         `json:"painting_id"`
	Name               string       `json:"name"`
	Image              string       `json:"image"`
	Price              models.Money `json:"price"`
	Quantity           int          `json:"quantity"`
}

// CartQuantityRequest 修改数量请求
type CartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	lines, err := h.CartService.ListByDevice(deviceID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{
		"lines": lines,
		"count": len(lines),
	})
}

// AddCartLine 加入购物车
func (h *Handler) AddCartLine(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req CartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.CartService.AddLine(service.AddCartLineInput{
		DeviceID:           deviceID,
		VariantID:          req.VariantID,
		PaintingVariantsID: req.PaintingVariantsID,
		VariantsID:         req.VariantsID,
		PaintingID:         req.PaintingID,
		Name:               req.Name,
		Image:              req.Image,
		Price:              req.Price,
		Quantity:           req.Quantity,
	}); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// ReplaceCart 全量覆盖购物车（客户端同步）
func (h *Handler) ReplaceCart(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req struct {
		Lines []CartLineRequest `json:"lines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	inputs := make([]service.ReplaceCartLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		inputs = append(inputs, service.ReplaceCartLineInput{
			VariantID:          line.VariantID,
			PaintingVariantsID: line.PaintingVariantsID,
			VariantsID:         line.VariantsID,
			PaintingID:         line.PaintingID,
			Name:               line.Name,
			Image:              line.Image,
			Price:              line.Price,
			Quantity:           line.Quantity,
		})
	}
	if err := h.CartService.Replace(deviceID, inputs); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// UpdateCartLineQuantity 修改购物车行数量
func (h *Handler) UpdateCartLineQuantity(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	variantID, ok := parseUintParam(c, "variant_id")
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.CartService.UpdateQuantity(deviceID, variantID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveCartLine 删除购物车行
func (h *Handler) RemoveCartLine(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	variantID, ok := parseUintParam(c, "variant_id")
	if !ok {
		return
	}
	if err := h.CartService.RemoveLine(deviceID, variantID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(deviceID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// parseUintParam 解析路径中的数字参数
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return 0, false
	}
	return uint(value), true
}
