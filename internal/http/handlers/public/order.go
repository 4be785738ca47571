package public

import (
	"github.com/galeria-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetMyOrders 获取当前用户订单列表（含明细）
func (h *Handler) GetMyOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, orders)
}

// CancelMyOrder 取消当前用户订单
func (h *Handler) CancelMyOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.OrderService.Cancel(c.Request.Context(), userID, orderID); err != nil {
		respondOrderError(c, err)
		return
	}
	requestLog(c).Infow("order_cancelled", "user_id", userID, "order_id", orderID)
	response.Success(c, nil)
}
