package public

import (
	handlershared "github.com/galeria-next/internal/http/handlers/shared"
	"github.com/galeria-next/internal/http/response"
	"github.com/galeria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 提交订单请求
type CheckoutRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Note     string `json:"note"`
}

// SubmitCheckout 提交结算：按购物车逐行下单并扣减库存
func (h *Handler) SubmitCheckout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	result, err := h.CheckoutService.SubmitFromCart(c.Request.Context(), userID, deviceID, service.ShippingInfo{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Note:     req.Note,
	})
	if err != nil {
		handlershared.RequestLog(c).Warnw("checkout_submit_failed",
			"user_id", userID,
			"device_id", deviceID,
			"error", err,
		)
		respondCheckoutError(c, err)
		return
	}

	handlershared.RequestLog(c).Infow("checkout_submitted",
		"user_id", userID,
		"order_id", result.OrderID,
		"final_status", result.FinalStatus,
		"line_count", len(result.Lines),
	)
	response.Success(c, result)
}
