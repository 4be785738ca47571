package service

import (
	"strings"

	"github.com/galeria-next/internal/constants"
)

// allowedOrderTransitions 订单状态流转表
// Pending 可发货或取消；Shipping 可完成或取消；终态不可变更
var allowedOrderTransitions = map[string][]string{
	constants.OrderStatusPending: {
		constants.OrderStatusShipping,
		constants.OrderStatusCancelled,
	},
	constants.OrderStatusShipping: {
		constants.OrderStatusCompleted,
		constants.OrderStatusCancelled,
	},
	constants.OrderStatusCompleted: {},
	constants.OrderStatusCancelled: {},
}

// NormalizeOrderStatus 归一化订单状态为约定大小写，未知状态原样返回
func NormalizeOrderStatus(status string) string {
	trimmed := strings.TrimSpace(status)
	for _, known := range constants.OrderStatuses {
		if strings.EqualFold(trimmed, known) {
			return known
		}
	}
	return trimmed
}

// canTransitionOrderStatus 判断订单状态是否允许流转
func canTransitionOrderStatus(from, to string) bool {
	targets, ok := allowedOrderTransitions[NormalizeOrderStatus(from)]
	if !ok {
		return false
	}
	normalizedTo := NormalizeOrderStatus(to)
	for _, target := range targets {
		if target == normalizedTo {
			return true
		}
	}
	return false
}
