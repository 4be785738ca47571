package provider

import (
	"time"

	"github.com/galeria-next/internal/cache"
	"github.com/galeria-next/internal/config"
	"github.com/galeria-next/internal/gallery"
	"github.com/galeria-next/internal/logger"
	"github.com/galeria-next/internal/models"
	"github.com/galeria-next/internal/queue"
	"github.com/galeria-next/internal/repository"
	"github.com/galeria-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config        *config.Config
	QueueClient   *queue.Client
	GalleryClient *gallery.Client

	// Repositories
	CartRepo repository.CartRepository

	// Services
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	CatalogService  *service.CatalogService
	OrderService    *service.OrderService
	ReviewService   *service.ReviewService
	UserAuthService *service.UserAuthService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	// 初始化画廊后端客户端
	galleryClient, err := gallery.NewClient(gallery.Config{
		BaseURL: cfg.Gallery.BaseURL,
		Timeout: time.Duration(cfg.Gallery.TimeoutMS) * time.Millisecond,
	})
	if err != nil {
		logger.Errorw("provider_init_gallery_client_failed", "error", err)
		panic(err)
	}

	c := &Container{
		Config:        cfg,
		QueueClient:   queueClient,
		GalleryClient: galleryClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	cacheTTL := time.Duration(c.Config.Cache.CatalogTTLSeconds) * time.Second

	c.CartService = service.NewCartService(c.CartRepo)
	c.CheckoutService = service.NewCheckoutService(c.GalleryClient, c.CartRepo, c.QueueClient)
	c.CatalogService = service.NewCatalogService(c.GalleryClient, cacheTTL)
	c.OrderService = service.NewOrderService(c.GalleryClient)
	c.ReviewService = service.NewReviewService(c.GalleryClient)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.GalleryClient)
}
