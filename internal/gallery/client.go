package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	ErrConfigInvalid   = errors.New("gallery config invalid")
	ErrRequestFailed   = errors.New("gallery request failed")
	ErrResponseInvalid = errors.New("gallery response invalid")
	ErrNotFound        = errors.New("gallery resource not found")
)

const defaultTimeout = 15 * time.Second

// Config 画廊后端客户端配置
type Config struct {
	BaseURL string        // 后端地址，如 http://api.example.com
	Timeout time.Duration // 单次请求超时
}

// Client 画廊后端 API 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建客户端
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base_url is required", ErrConfigInvalid)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// CreateOrder 创建订单，返回订单 ID
// 后端返回格式不稳定，先按文本读取再尝试 JSON 解析，
// 订单 ID 兼容 order_id/id 两种字段名及数字/字符串两种类型。
func (c *Client) CreateOrder(ctx context.Context, input CreateOrderInput) (uint, error) {
	body, err := c.do(ctx, http.MethodPost, "/orders", input)
	if err != nil {
		return 0, err
	}
	orderID, err := parseOrderID(body)
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// UpdateOrderStatus 更新订单状态
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID uint, status string) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), map[string]string{
		"status": status,
	})
	return err
}

// ListOrdersByUser 查询用户订单列表
func (c *Client) ListOrdersByUser(ctx context.Context, userID uint) ([]Order, error) {
	var orders []Order
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/user/%d", userID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrderDetail 创建订单明细行
func (c *Client) CreateOrderDetail(ctx context.Context, input CreateOrderDetailInput) error {
	_, err := c.do(ctx, http.MethodPost, "/order_details", input)
	return err
}

// ListOrderDetailsByOrder 查询订单明细列表
func (c *Client) ListOrderDetailsByOrder(ctx context.Context, orderID uint) ([]OrderDetail, error) {
	var details []OrderDetail
	if err := c.getJSON(ctx, fmt.Sprintf("/order_details/order/%d", orderID), &details); err != nil {
		return nil, err
	}
	return details, nil
}

// GetVariant 查询画作规格
func (c *Client) GetVariant(ctx context.Context, variantID uint) (*Variant, error) {
	var variant Variant
	if err := c.getJSON(ctx, fmt.Sprintf("/painting_variants/%d", variantID), &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

// UpdateVariantStock 更新画作规格库存
func (c *Client) UpdateVariantStock(ctx context.Context, variantID uint, stock int) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/painting_variants/%d", variantID), map[string]int{
		"stock_quantity": stock,
	})
	return err
}

// ListVariantsByPainting 查询画作的全部规格
func (c *Client) ListVariantsByPainting(ctx context.Context, paintingID uint) ([]Variant, error) {
	var variants []Variant
	if err := c.getJSON(ctx, fmt.Sprintf("/painting_variants/painting/%d", paintingID), &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

// ListPaintings 查询画作列表
func (c *Client) ListPaintings(ctx context.Context) ([]Painting, error) {
	var paintings []Painting
	if err := c.getJSON(ctx, "/paintings", &paintings); err != nil {
		return nil, err
	}
	return paintings, nil
}

// GetPainting 查询画作详情
func (c *Client) GetPainting(ctx context.Context, paintingID uint) (*Painting, error) {
	var painting Painting
	if err := c.getJSON(ctx, fmt.Sprintf("/paintings/%d", paintingID), &painting); err != nil {
		return nil, err
	}
	return &painting, nil
}

// ListArtists 查询画家列表
func (c *Client) ListArtists(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	if err := c.getJSON(ctx, "/artists", &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// ListUsers 查询全部用户
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser 查询用户
func (c *Client) GetUser(ctx context.Context, userID uint) (*User, error) {
	var user User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser 创建用户
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) error {
	_, err := c.do(ctx, http.MethodPost, "/users", input)
	return err
}

// UpdateUser 更新用户字段
func (c *Client) UpdateUser(ctx context.Context, userID uint, fields map[string]interface{}) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", userID), fields)
	return err
}

// ListReviewsByPainting 查询画作评价列表
func (c *Client) ListReviewsByPainting(ctx context.Context, paintingID uint) ([]Review, error) {
	var reviews []Review
	if err := c.getJSON(ctx, fmt.Sprintf("/reviews/painting/%d", paintingID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview 创建画作评价
func (c *Client) CreateReview(ctx context.Context, input CreateReviewInput) error {
	_, err := c.do(ctx, http.MethodPost, "/reviews", input)
	return err
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http status %d", ErrRequestFailed, resp.StatusCode)
	}
	return body, nil
}

// parseOrderID 从创建订单响应中解析订单 ID
func parseOrderID(body []byte) (uint, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	for _, key := range []string{"order_id", "id"} {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if id, ok := parseIDValue(value); ok {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: order id missing", ErrResponseInvalid)
}

func parseIDValue(value json.RawMessage) (uint, bool) {
	var n float64
	if err := json.Unmarshal(value, &n); err == nil {
		if n <= 0 {
			return 0, false
		}
		return uint(n), true
	}
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		if id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil && id > 0 {
			return uint(id), true
		}
	}
	return 0, false
}
