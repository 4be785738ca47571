package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/galeria-next/internal/cache"
	"github.com/galeria-next/internal/constants"
	"github.com/galeria-next/internal/gallery"
	"github.com/galeria-next/internal/logger"
	"github.com/galeria-next/internal/models"
	"github.com/galeria-next/internal/queue"
	"github.com/galeria-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ShippingInfo 收货信息
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Note     string `json:"note"`
}

// Valid 校验必填字段（去除首尾空白后非空）
func (s ShippingInfo) Valid() bool {
	return strings.TrimSpace(s.FullName) != "" &&
		strings.TrimSpace(s.Phone) != "" &&
		strings.TrimSpace(s.Address) != ""
}

// LineOutcome 结账单行处理结果
type LineOutcome struct {
	VariantID     uint         `json:"variant_id"`
	PaintingID    uint         `json:"painting_id"`
	Quantity      int          `json:"quantity"`
	UnitPrice     models.Money `json:"unit_price"`
	Stocked       bool         `json:"stocked"`
	DetailCreated bool         `json:"detail_created"`
	StockUpdated  bool         `json:"stock_updated"`
	Note          string       `json:"note"`
}

// SubmitResult 提交订单结果
type SubmitResult struct {
	OrderID     uint          `json:"order_id"`
	FinalStatus string        `json:"final_status"`
	TotalPrice  models.Money  `json:"total_price"`
	Lines       []LineOutcome `json:"lines"`
}

// CheckoutService 结账服务
// 订单创建与状态确认失败视为致命错误；单行处理失败只记录结果并继续
type CheckoutService struct {
	gallery  *gallery.Client
	cartRepo repository.CartRepository
	queue    *queue.Client
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(galleryClient *gallery.Client, cartRepo repository.CartRepository, queueClient *queue.Client) *CheckoutService {
	return &CheckoutService{
		gallery:  galleryClient,
		cartRepo: cartRepo,
		queue:    queueClient,
	}
}

// SubmitFromCart 读取设备购物车并提交订单，成功后清空购物车
// 购物车仅在订单创建与状态确认都成功时清空，单行失败不阻止清空
func (s *CheckoutService) SubmitFromCart(ctx context.Context, userID uint, deviceID string, shipping ShippingInfo) (*SubmitResult, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, ErrDeviceRequired
	}
	lines, err := s.cartRepo.ListByDevice(deviceID)
	if err != nil {
		return nil, err
	}
	result, err := s.Submit(ctx, userID, shipping, lines)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.ClearByDevice(deviceID); err != nil {
		logger.Errorw("checkout_cart_clear_failed",
			"device_id", deviceID,
			"order_id", result.OrderID,
			"error", err,
		)
	}
	return result, nil
}

// Submit 提交订单工作流
// 流程：校验 → 计算总价 → 创建订单 → 逐行处理（取库存、比较、写明细、回写库存）→ 确认最终状态
// 行处理严格按购物车顺序串行执行
func (s *CheckoutService) Submit(ctx context.Context, userID uint, shipping ShippingInfo, lines []models.CartLine) (*SubmitResult, error) {
	if !shipping.Valid() {
		return nil, ErrShippingInfoInvalid
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	total := computeTotal(lines)

	orderID, err := s.gallery.CreateOrder(ctx, gallery.CreateOrderInput{
		UserID:     userID,
		FullName:   strings.TrimSpace(shipping.FullName),
		Email:      strings.TrimSpace(shipping.Email),
		Phone:      strings.TrimSpace(shipping.Phone),
		Address:    strings.TrimSpace(shipping.Address),
		Note:       strings.TrimSpace(shipping.Note),
		TotalPrice: total,
		Status:     constants.OrderStatusPending,
	})
	if err != nil {
		logger.Errorw("checkout_order_create_failed",
			"user_id", userID,
			"line_count", len(lines),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
	}

	finalStatus := constants.OrderStatusShipping
	outcomes := make([]LineOutcome, 0, len(lines))
	for _, line := range lines {
		outcome := s.processLine(ctx, orderID, line)
		if !outcome.Stocked {
			// 任一行缺货后最终状态保持 Pending，后续行不再翻回
			finalStatus = constants.OrderStatusPending
		}
		outcomes = append(outcomes, outcome)
	}

	if err := s.gallery.UpdateOrderStatus(ctx, orderID, finalStatus); err != nil {
		logger.Errorw("checkout_order_finalize_failed",
			"order_id", orderID,
			"status", finalStatus,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrOrderFinalizeFailed, err)
	}

	logger.Infow("checkout_order_submitted",
		"order_id", orderID,
		"user_id", userID,
		"final_status", finalStatus,
		"total_price", total.String(),
		"line_count", len(lines),
	)
	return &SubmitResult{
		OrderID:     orderID,
		FinalStatus: finalStatus,
		TotalPrice:  total,
		Lines:       outcomes,
	}, nil
}

// computeTotal 计算订单总价，单价缺省按 0、数量缺省按 1
func computeTotal(lines []models.CartLine) models.Money {
	total := models.NewMoneyFromDecimal(decimal.Zero)
	for _, line := range lines {
		total = total.Add(line.Price.Mul(normalizeQuantity(line.Quantity)))
	}
	return total
}

func normalizeQuantity(quantity int) int {
	if quantity <= 0 {
		return 1
	}
	return quantity
}

// processLine 处理单个购物车行
// 库存读取失败按 0 处理；明细与库存回写失败只记录结果并投递补偿任务
func (s *CheckoutService) processLine(ctx context.Context, orderID uint, line models.CartLine) LineOutcome {
	quantity := normalizeQuantity(line.Quantity)
	outcome := LineOutcome{
		VariantID:  line.VariantID,
		PaintingID: line.PaintingID,
		Quantity:   quantity,
		UnitPrice:  line.Price,
		Stocked:    true,
	}
	// 同一行可能有多处失败，全部记录在 Note 里
	var notes []string

	stock := 0
	if line.VariantID != 0 {
		variant, err := s.gallery.GetVariant(ctx, line.VariantID)
		if err != nil {
			logger.Warnw("checkout_variant_fetch_failed",
				"order_id", orderID,
				"variant_id", line.VariantID,
				"error", err,
			)
			notes = append(notes, constants.LineNoteVariantUnfetched)
		} else {
			stock = variant.StockQuantity.Int()
		}
	}

	newStock := stock - quantity
	if quantity > stock {
		outcome.Stocked = false
		if len(notes) == 0 {
			notes = append(notes, constants.LineNoteShortStock)
		}
		newStock = 0
	}

	if err := s.gallery.CreateOrderDetail(ctx, gallery.CreateOrderDetailInput{
		OrderID:            orderID,
		PaintingID:         line.PaintingID,
		PaintingVariantsID: line.VariantID,
		Quantity:           quantity,
		UnitPrice:          line.Price,
	}); err != nil {
		logger.Warnw("checkout_detail_create_failed",
			"order_id", orderID,
			"variant_id", line.VariantID,
			"error", err,
		)
		notes = append(notes, constants.LineNoteDetailFailed)
		if enqueueErr := s.queue.EnqueueOrderDetailRetry(queue.OrderDetailRetryPayload{
			OrderID:    orderID,
			PaintingID: line.PaintingID,
			VariantID:  line.VariantID,
			Quantity:   quantity,
			UnitPrice:  line.Price.String(),
		}); enqueueErr != nil {
			logger.Errorw("checkout_detail_retry_enqueue_failed",
				"order_id", orderID,
				"variant_id", line.VariantID,
				"error", enqueueErr,
			)
		}
	} else {
		outcome.DetailCreated = true
	}

	if line.VariantID != 0 {
		if err := s.gallery.UpdateVariantStock(ctx, line.VariantID, newStock); err != nil {
			logger.Warnw("checkout_stock_update_failed",
				"order_id", orderID,
				"variant_id", line.VariantID,
				"new_stock", newStock,
				"error", err,
			)
			notes = append(notes, constants.LineNoteStockSyncFailed)
			if enqueueErr := s.queue.EnqueueStockRetry(queue.StockRetryPayload{
				OrderID:   orderID,
				VariantID: line.VariantID,
				Quantity:  quantity,
			}); enqueueErr != nil {
				logger.Errorw("checkout_stock_retry_enqueue_failed",
					"order_id", orderID,
					"variant_id", line.VariantID,
					"error", enqueueErr,
				)
			}
		} else {
			outcome.StockUpdated = true
			_ = cache.DelPaintingVariants(ctx, line.PaintingID)
		}
	}

	outcome.Note = constants.LineNoteOK
	if len(notes) > 0 {
		outcome.Note = strings.Join(notes, ",")
	}
	return outcome
}
