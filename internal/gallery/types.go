package gallery

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/galeria-next/internal/models"
)

// FlexInt 宽容整数类型（后端字段可能为数字、字符串或缺失，无效时取 0）
type FlexInt int

// UnmarshalJSON 解析数字或字符串形式的整数
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = 0
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexInt(int(n))
		}
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return nil
	}
	*f = FlexInt(int(n))
	return nil
}

// Int 返回 int 值
func (f FlexInt) Int() int {
	return int(f)
}

// Painting 画作
type Painting struct {
	ID          uint         `json:"id"`
	ArtistID    uint         `json:"artist_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
	Price       models.Money `json:"price"`
}

// Variant 画作规格（尺寸/材质/价格/库存）
type Variant struct {
	ID            uint         `json:"id"`
	PaintingID    uint         `json:"painting_id"`
	Size          string       `json:"size"`
	Material      string       `json:"material"`
	Price         models.Money `json:"price"`
	StockQuantity FlexInt      `json:"stock_quantity"`
}

// Artist 画家
type Artist struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// User 用户
type User struct {
	ID       uint   `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
}

// Review 画作评价
type Review struct {
	ID         uint   `json:"id"`
	PaintingID uint   `json:"painting_id"`
	UserID     uint   `json:"user_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
}

// Order 订单
type Order struct {
	ID         uint         `json:"id"`
	UserID     uint         `json:"user_id"`
	FullName   string       `json:"full_name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Address    string       `json:"address"`
	Note       string       `json:"note"`
	TotalPrice models.Money `json:"total_price"`
	Status     string       `json:"status"`
	OrderDate  string       `json:"order_date"`
}

// OrderDetail 订单明细行
type OrderDetail struct {
	ID                 uint         `json:"id"`
	OrderID            uint         `json:"order_id"`
	PaintingID         uint         `json:"painting_id"`
	PaintingVariantsID uint         `json:"painting_variants_id"`
	Quantity           int          `json:"quantity"`
	UnitPrice          models.Money `json:"unit_price"`
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID     uint         `json:"user_id"`
	FullName   string       `json:"full_name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Address    string       `json:"address"`
	Note       string       `json:"note"`
	TotalPrice models.Money `json:"total_price"`
	Status     string       `json:"status"`
}

// CreateOrderDetailInput 创建订单明细输入
type CreateOrderDetailInput struct {
	OrderID            uint         `json:"order_id"`
	PaintingID         uint         `json:"painting_id"`
	PaintingVariantsID uint         `json:"painting_variants_id"`
	Quantity           int          `json:"quantity"`
	UnitPrice          models.Money `json:"unit_price"`
}

// CreateUserInput 注册用户输入
type CreateUserInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// CreateReviewInput 创建评价输入
type CreateReviewInput struct {
	PaintingID uint   `json:"painting_id"`
	UserID     uint   `json:"user_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}
