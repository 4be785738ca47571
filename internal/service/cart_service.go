package service

import (
	"errors"
	"strings"

	"github.com/galeria-next/internal/models"
	"github.com/galeria-next/internal/repository"

	"gorm.io/gorm"
)

// AddCartLineInput 加入购物车输入
// 规格 ID 兼容移动端三种历史字段名，入库前归一化为 VariantID
type AddCartLineInput struct {
	DeviceID           string
	VariantID          uint
	PaintingVariantsID uint
	VariantsID         uint
	PaintingID         uint
	Name               string
	Image              string
	Price              models.Money
	Quantity           int
}

// ReplaceCartLineInput 覆盖购物车的单行输入
type ReplaceCartLineInput struct {
	VariantID          uint
	PaintingVariantsID uint
	VariantsID         uint
	PaintingID         uint
	Name               string
	Image              string
	Price              models.Money
	Quantity           int
}

// CartService 购物车服务
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// canonicalVariantID 归一化规格 ID，取第一个非零字段
func canonicalVariantID(variantID, paintingVariantsID, variantsID uint) uint {
	if variantID != 0 {
		return variantID
	}
	if paintingVariantsID != 0 {
		return paintingVariantsID
	}
	return variantsID
}

// ListByDevice 获取设备购物车
func (s *CartService) ListByDevice(deviceID string) ([]models.CartLine, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, ErrDeviceRequired
	}
	return s.cartRepo.ListByDevice(deviceID)
}

// AddLine 加入购物车，同规格已存在时累加数量
func (s *CartService) AddLine(input AddCartLineInput) error {
	deviceID := strings.TrimSpace(input.DeviceID)
	if deviceID == "" {
		return ErrDeviceRequired
	}
	variantID := canonicalVariantID(input.VariantID, input.PaintingVariantsID, input.VariantsID)
	if variantID == 0 {
		return ErrInvalidCartLine
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	line := &models.CartLine{
		DeviceID:   deviceID,
		VariantID:  variantID,
		PaintingID: input.PaintingID,
		Name:       strings.TrimSpace(input.Name),
		Image:      strings.TrimSpace(input.Image),
		Price:      input.Price,
		Quantity:   quantity,
	}
	return s.cartRepo.Upsert(line)
}

// UpdateQuantity 修改购物车行数量
func (s *CartService) UpdateQuantity(deviceID string, variantID uint, quantity int) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return ErrDeviceRequired
	}
	if variantID == 0 {
		return ErrInvalidCartLine
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	err := s.cartRepo.UpdateQuantity(deviceID, variantID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartLineNotFound
		}
		return err
	}
	return nil
}

// Replace 整体覆盖设备购物车（客户端全量同步）
func (s *CartService) Replace(deviceID string, inputs []ReplaceCartLineInput) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return ErrDeviceRequired
	}
	merged := make([]models.CartLine, 0, len(inputs))
	index := make(map[uint]int, len(inputs))
	for _, input := range inputs {
		variantID := canonicalVariantID(input.VariantID, input.PaintingVariantsID, input.VariantsID)
		if variantID == 0 {
			return ErrInvalidCartLine
		}
		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		if i, ok := index[variantID]; ok {
			merged[i].Quantity += quantity
			continue
		}
		index[variantID] = len(merged)
		merged = append(merged, models.CartLine{
			DeviceID:   deviceID,
			VariantID:  variantID,
			PaintingID: input.PaintingID,
			Name:       strings.TrimSpace(input.Name),
			Image:      strings.TrimSpace(input.Image),
			Price:      input.Price,
			Quantity:   quantity,
		})
	}
	return s.cartRepo.ReplaceAll(deviceID, merged)
}

// RemoveLine 删除购物车行
func (s *CartService) RemoveLine(deviceID string, variantID uint) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return ErrDeviceRequired
	}
	if variantID == 0 {
		return ErrInvalidCartLine
	}
	return s.cartRepo.DeleteByDeviceAndVariant(deviceID, variantID)
}

// Clear 清空设备购物车
func (s *CartService) Clear(deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return ErrDeviceRequired
	}
	return s.cartRepo.ClearByDevice(deviceID)
}

// Count 统计设备购物车行数
func (s *CartService) Count(deviceID string) (int64, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return 0, ErrDeviceRequired
	}
	return s.cartRepo.CountByDevice(deviceID)
}
