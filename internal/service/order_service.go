package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/galeria-next/internal/constants"
	"github.com/galeria-next/internal/gallery"
	"github.com/galeria-next/internal/logger"
)

// OrderDetailView 订单明细视图（含画作与规格快照）
type OrderDetailView struct {
	Detail   gallery.OrderDetail `json:"detail"`
	Painting *gallery.Painting   `json:"painting,omitempty"`
	Variant  *gallery.Variant    `json:"variant,omitempty"`
}

// OrderView 订单视图
type OrderView struct {
	Order   gallery.Order     `json:"order"`
	Details []OrderDetailView `json:"details"`
}

// OrderService 订单查询与取消服务
type OrderService struct {
	gallery *gallery.Client
}

// NewOrderService 创建订单服务
func NewOrderService(galleryClient *gallery.Client) *OrderService {
	return &OrderService{gallery: galleryClient}
}

// ListByUser 查询用户订单及明细
// 明细的画作与规格读取失败时降级为只返回明细本身
func (s *OrderService) ListByUser(ctx context.Context, userID uint) ([]OrderView, error) {
	if userID == 0 {
		return nil, ErrUserNotFound
	}
	orders, err := s.gallery.ListOrdersByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			return []OrderView{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{Order: order, Details: []OrderDetailView{}}
		details, err := s.gallery.ListOrderDetailsByOrder(ctx, order.ID)
		if err != nil {
			logger.Warnw("order_details_fetch_failed", "order_id", order.ID, "error", err)
			views = append(views, view)
			continue
		}
		for _, detail := range details {
			item := OrderDetailView{Detail: detail}
			if detail.PaintingID != 0 {
				if painting, err := s.gallery.GetPainting(ctx, detail.PaintingID); err == nil {
					item.Painting = painting
				}
			}
			if detail.PaintingVariantsID != 0 {
				if variant, err := s.gallery.GetVariant(ctx, detail.PaintingVariantsID); err == nil {
					item.Variant = variant
				}
			}
			view.Details = append(view.Details, item)
		}
		views = append(views, view)
	}
	return views, nil
}

// Cancel 取消订单
// 仅允许本人订单且状态在可取消集合内
func (s *OrderService) Cancel(ctx context.Context, userID, orderID uint) error {
	if userID == 0 || orderID == 0 {
		return ErrOrderNotFound
	}
	orders, err := s.gallery.ListOrdersByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	var target *gallery.Order
	for i := range orders {
		if orders[i].ID == orderID {
			target = &orders[i]
			break
		}
	}
	if target == nil {
		return ErrOrderNotFound
	}
	if !canTransitionOrderStatus(target.Status, constants.OrderStatusCancelled) {
		return ErrOrderNotCancellable
	}
	if err := s.gallery.UpdateOrderStatus(ctx, orderID, constants.OrderStatusCancelled); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	logger.Infow("order_cancelled", "order_id", orderID, "user_id", userID)
	return nil
}
