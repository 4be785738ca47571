package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/galeria-next/internal/config"
	"github.com/galeria-next/internal/gallery"
	"github.com/galeria-next/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

// UserAuthService 用户认证服务
// 账号数据归画廊后端所有，本服务负责校验凭据并签发网关侧会话 Token
type UserAuthService struct {
	cfg     *config.Config
	gallery *gallery.Client
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, galleryClient *gallery.Client) *UserAuthService {
	return &UserAuthService{
		cfg:     cfg,
		gallery: galleryClient,
	}
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// LoginResult 登录结果
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      gallery.User `json:"user"`
}

// RegisterInput 注册输入
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	Address  string
}

// GenerateUserJWT 生成用户 JWT Token
func (s *UserAuthService) GenerateUserJWT(user *gallery.User) (string, time.Time, error) {
	expireHours := s.cfg.UserJWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析用户 JWT Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// Login 登录并签发会话 Token
// 画廊后端没有独立登录接口，按邮箱在用户表中匹配凭据
func (s *UserAuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrLoginFailed
	}
	if password == "" {
		return nil, ErrLoginFailed
	}
	user, err := s.findUserByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, ErrLoginFailed
	}

	token, expiresAt, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, err
	}
	logger.Infow("user_login_success", "user_id", user.ID)
	sanitized := *user
	sanitized.Password = ""
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      sanitized,
	}, nil
}

// Register 注册新用户
func (s *UserAuthService) Register(ctx context.Context, input RegisterInput) error {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return ErrLoginFailed
	}
	if strings.TrimSpace(input.FullName) == "" || input.Password == "" {
		return ErrLoginFailed
	}
	existing, err := s.findUserByEmail(ctx, normalized)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExists
	}
	if err := s.gallery.CreateUser(ctx, gallery.CreateUserInput{
		FullName: strings.TrimSpace(input.FullName),
		Email:    normalized,
		Password: input.Password,
		Phone:    strings.TrimSpace(input.Phone),
		Address:  strings.TrimSpace(input.Address),
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	logger.Infow("user_registered", "email_domain", emailDomain(normalized))
	return nil
}

// GetProfile 获取用户资料
func (s *UserAuthService) GetProfile(ctx context.Context, userID uint) (*gallery.User, error) {
	if userID == 0 {
		return nil, ErrUserNotFound
	}
	user, err := s.gallery.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile 更新用户资料（姓名/电话/地址/头像）
func (s *UserAuthService) UpdateProfile(ctx context.Context, userID uint, fields map[string]interface{}) error {
	if userID == 0 {
		return ErrUserNotFound
	}
	allowed := map[string]bool{
		"full_name": true,
		"phone":     true,
		"address":   true,
		"avatar":    true,
	}
	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if allowed[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.gallery.UpdateUser(ctx, userID, updates); err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

// ChangePassword 修改密码，需校验当前密码
func (s *UserAuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if userID == 0 {
		return ErrUserNotFound
	}
	if newPassword == "" {
		return ErrPasswordIncorrect
	}
	user, err := s.gallery.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if user.Password != currentPassword {
		return ErrPasswordIncorrect
	}
	if err := s.gallery.UpdateUser(ctx, userID, map[string]interface{}{
		"password": newPassword,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	logger.Infow("user_password_changed", "user_id", userID)
	return nil
}

// findUserByEmail 按邮箱查找用户（画廊后端无查询参数，取全量匹配）
func (s *UserAuthService) findUserByEmail(ctx context.Context, email string) (*gallery.User, error) {
	users, err := s.gallery.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	for i := range users {
		if strings.EqualFold(strings.TrimSpace(users[i].Email), email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", errors.New("邮箱不能为空")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}

func emailDomain(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[i+1:]
	}
	return ""
}
