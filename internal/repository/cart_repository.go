package repository

import (
	"errors"

	"github.com/galeria-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByDevice(deviceID string) ([]models.CartLine, error)
	GetByDeviceAndVariant(deviceID string, variantID uint) (*models.CartLine, error)
	Upsert(line *models.CartLine) error
	UpdateQuantity(deviceID string, variantID uint, quantity int) error
	ReplaceAll(deviceID string, lines []models.CartLine) error
	DeleteByDeviceAndVariant(deviceID string, variantID uint) error
	ClearByDevice(deviceID string) error
	CountByDevice(deviceID string) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByDevice 获取设备购物车行（按创建顺序，结账按此顺序处理）
func (r *GormCartRepository) ListByDevice(deviceID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Where("device_id = ?", deviceID).Order("id asc").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// GetByDeviceAndVariant 按规格查询单行
func (r *GormCartRepository) GetByDeviceAndVariant(deviceID string, variantID uint) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Where("device_id = ? AND variant_id = ?", deviceID, variantID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Upsert 添加购物车行，已存在时累加数量并刷新快照
func (r *GormCartRepository) Upsert(line *models.CartLine) error {
	if line == nil {
		return nil
	}
	var existing models.CartLine
	err := r.db.Where("device_id = ? AND variant_id = ?", line.DeviceID, line.VariantID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(line).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"quantity": existing.Quantity + line.Quantity,
		"name":     line.Name,
		"image":    line.Image,
		"price":    line.Price,
	}
	return r.db.Model(&existing).Updates(updates).Error
}

// UpdateQuantity 覆盖购物车行数量
func (r *GormCartRepository) UpdateQuantity(deviceID string, variantID uint, quantity int) error {
	result := r.db.Model(&models.CartLine{}).
		Where("device_id = ? AND variant_id = ?", deviceID, variantID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceAll 整体替换设备购物车
func (r *GormCartRepository) ReplaceAll(deviceID string, lines []models.CartLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", deviceID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].DeviceID = deviceID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByDeviceAndVariant 删除购物车行
func (r *GormCartRepository) DeleteByDeviceAndVariant(deviceID string, variantID uint) error {
	return r.db.Where("device_id = ? AND variant_id = ?", deviceID, variantID).Delete(&models.CartLine{}).Error
}

// ClearByDevice 清空设备购物车
func (r *GormCartRepository) ClearByDevice(deviceID string) error {
	return r.db.Where("device_id = ?", deviceID).Delete(&models.CartLine{}).Error
}

// CountByDevice 统计设备购物车行数
func (r *GormCartRepository) CountByDevice(deviceID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CartLine{}).Where("device_id = ?", deviceID).Count(&count).Error
	return count, err
}
