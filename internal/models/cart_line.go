package models

import (
	"time"

	"gorm.io/gorm"
)

// CartLine 购物车行（按设备维度持久化）
type CartLine struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                                   // 主键
	DeviceID   string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_device_variant" json:"-"` // 设备ID
	VariantID  uint           `gorm:"not null;uniqueIndex:idx_cart_device_variant" json:"variant_id"`         // 规格ID（入库前已归一化）
	PaintingID uint           `gorm:"not null;index" json:"painting_id"`                                      // 画作ID
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`                                 // 画作名称快照
	Image      string         `gorm:"type:varchar(512)" json:"image"`                                         // 图片地址快照
	Price      Money          `gorm:"type:decimal(12,2);not null" json:"price"`                               // 单价快照
	Quantity   int            `gorm:"not null;default:1" json:"quantity"`                                     // 数量
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                                // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                                                // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                                         // 软删除时间
}

// TableName 指定表名
func (CartLine) TableName() string {
	return "cart_lines"
}
