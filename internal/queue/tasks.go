package queue

import (
	"encoding/json"

	"github.com/galeria-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskStockRetry 库存回写补偿任务
	TaskStockRetry = constants.TaskStockRetry
	// TaskOrderDetailRetry 订单明细补偿任务
	TaskOrderDetailRetry = constants.TaskOrderDetailRetry
)

// StockRetryPayload 库存回写补偿任务载荷
// 记录应扣减的数量而非目标库存，补偿时重新读取当前库存再扣减
type StockRetryPayload struct {
	OrderID   uint `json:"order_id"`
	VariantID uint `json:"variant_id"`
	Quantity  int  `json:"quantity"`
}

// OrderDetailRetryPayload 订单明细补偿任务载荷
type OrderDetailRetryPayload struct {
	OrderID    uint   `json:"order_id"`
	PaintingID uint   `json:"painting_id"`
	VariantID  uint   `json:"variant_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
}

// NewStockRetryTask 创建库存回写补偿任务
func NewStockRetryTask(payload StockRetryPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStockRetry, body), nil
}

// NewOrderDetailRetryTask 创建订单明细补偿任务
func NewOrderDetailRetryTask(payload OrderDetailRetryPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderDetailRetry, body), nil
}
