package worker

import (
	"context"
	"encoding/json"

	"github.com/galeria-next/internal/gallery"
	"github.com/galeria-next/internal/logger"
	"github.com/galeria-next/internal/models"
	"github.com/galeria-next/internal/provider"
	"github.com/galeria-next/internal/queue"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskStockRetry, c.handleStockRetry)
	mux.HandleFunc(queue.TaskOrderDetailRetry, c.handleOrderDetailRetry)
}

// handleStockRetry 补偿失败的库存回写
// 重新读取当前库存再扣减，避免按下单时的快照覆盖后续变化
func (c *Consumer) handleStockRetry(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.StockRetryPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_stock_retry_unmarshal_failed", "error", err)
		return err
	}
	if payload.VariantID == 0 || payload.Quantity <= 0 {
		logger.Debugw("worker_stock_retry_skip_invalid_payload",
			"variant_id", payload.VariantID,
			"quantity", payload.Quantity,
		)
		return nil
	}

	variant, err := c.GalleryClient.GetVariant(ctx, payload.VariantID)
	if err != nil {
		logger.Warnw("worker_stock_retry_fetch_failed",
			"order_id", payload.OrderID,
			"variant_id", payload.VariantID,
			"error", err,
		)
		return err
	}
	newStock := variant.StockQuantity.Int() - payload.Quantity
	if newStock < 0 {
		newStock = 0
	}
	if err := c.GalleryClient.UpdateVariantStock(ctx, payload.VariantID, newStock); err != nil {
		logger.Warnw("worker_stock_retry_update_failed",
			"order_id", payload.OrderID,
			"variant_id", payload.VariantID,
			"new_stock", newStock,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_stock_retry_done",
		"order_id", payload.OrderID,
		"variant_id", payload.VariantID,
		"new_stock", newStock,
	)
	return nil
}

// handleOrderDetailRetry 补偿失败的订单明细写入
func (c *Consumer) handleOrderDetailRetry(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderDetailRetryPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_detail_retry_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 || payload.Quantity <= 0 {
		logger.Debugw("worker_detail_retry_skip_invalid_payload",
			"order_id", payload.OrderID,
			"quantity", payload.Quantity,
		)
		return nil
	}

	unitPrice, err := models.NewMoneyFromString(payload.UnitPrice)
	if err != nil {
		logger.Warnw("worker_detail_retry_price_invalid", "order_id", payload.OrderID, "unit_price", payload.UnitPrice)
		unitPrice = models.NewMoneyFromDecimal(decimal.Zero)
	}
	if err := c.GalleryClient.CreateOrderDetail(ctx, gallery.CreateOrderDetailInput{
		OrderID:            payload.OrderID,
		PaintingID:         payload.PaintingID,
		PaintingVariantsID: payload.VariantID,
		Quantity:           payload.Quantity,
		UnitPrice:          unitPrice,
	}); err != nil {
		logger.Warnw("worker_detail_retry_create_failed",
			"order_id", payload.OrderID,
			"variant_id", payload.VariantID,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_detail_retry_done",
		"order_id", payload.OrderID,
		"variant_id", payload.VariantID,
	)
	return nil
}
