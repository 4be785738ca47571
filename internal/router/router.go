package router

import (
	"fmt"
	"strings"

	"github.com/galeria-next/internal/cache"
	"github.com/galeria-next/internal/config"
	"github.com/galeria-next/internal/constants"
	publichandlers "github.com/galeria-next/internal/http/handlers/public"
	"github.com/galeria-next/internal/logger"
	"github.com/galeria-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
		MessageKey:    "error.checkout_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/paintings", publicHandler.GetPaintings)
			public.GET("/paintings/:id", publicHandler.GetPainting)
			public.GET("/paintings/:id/variants", publicHandler.GetPaintingVariants)
			public.GET("/paintings/:id/reviews", publicHandler.GetPaintingReviews)
			public.GET("/variants/:id", publicHandler.GetVariant)
			public.GET("/artists", publicHandler.GetArtists)
		}

		// 购物车接口（按设备标识区分，无需登录）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/lines", publicHandler.AddCartLine)
			cart.PUT("", publicHandler.ReplaceCart)
			cart.PUT("/lines/:variant_id", publicHandler.UpdateCartLineQuantity)
			cart.DELETE("/lines/:variant_id", publicHandler.RemoveCartLine)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(c.UserAuthService))
		{
			user.GET("/me", publicHandler.UserProfile)
			user.PUT("/me/profile", publicHandler.UserUpdateProfile)
			user.PUT("/me/password", publicHandler.UserChangePassword)
			user.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByIP), publicHandler.SubmitCheckout)
			user.GET("/orders", publicHandler.GetMyOrders)
			user.POST("/orders/:id/cancel", publicHandler.CancelMyOrder)
			user.POST("/paintings/:id/reviews", publicHandler.CreatePaintingReview)
		}
	}

	// 健康检查
	r.GET("/health", publicHandler.Health)

	return r
}
