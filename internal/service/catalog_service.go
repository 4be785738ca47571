package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/galeria-next/internal/cache"
	"github.com/galeria-next/internal/gallery"
	"github.com/galeria-next/internal/logger"
)

// PaintingDetail 画作详情（含规格）
type PaintingDetail struct {
	Painting gallery.Painting  `json:"painting"`
	Variants []gallery.Variant `json:"variants"`
}

// CatalogService 目录服务（画作/画家，带 Redis 读穿缓存）
type CatalogService struct {
	gallery  *gallery.Client
	cacheTTL time.Duration
}

// NewCatalogService 创建目录服务
func NewCatalogService(galleryClient *gallery.Client, cacheTTL time.Duration) *CatalogService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &CatalogService{
		gallery:  galleryClient,
		cacheTTL: cacheTTL,
	}
}

// ListPaintings 获取画作列表
func (s *CatalogService) ListPaintings(ctx context.Context) ([]gallery.Painting, error) {
	if paintings, hit, err := cache.GetPaintingList(ctx); err == nil && hit {
		return paintings, nil
	}
	paintings, err := s.gallery.ListPaintings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if err := cache.SetPaintingList(ctx, paintings, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "key", "paintings", "error", err)
	}
	return paintings, nil
}

// GetPainting 获取画作详情（含规格）
func (s *CatalogService) GetPainting(ctx context.Context, paintingID uint) (*PaintingDetail, error) {
	if paintingID == 0 {
		return nil, ErrPaintingNotFound
	}

	painting, hit, err := cache.GetPaintingDetail(ctx, paintingID)
	if err != nil || !hit {
		painting, err = s.gallery.GetPainting(ctx, paintingID)
		if err != nil {
			if errors.Is(err, gallery.ErrNotFound) {
				return nil, ErrPaintingNotFound
			}
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		if err := cache.SetPaintingDetail(ctx, painting, s.cacheTTL); err != nil {
			logger.Warnw("catalog_cache_write_failed", "key", "painting", "painting_id", paintingID, "error", err)
		}
	}

	variants, err := s.ListVariants(ctx, paintingID)
	if err != nil {
		return nil, err
	}
	return &PaintingDetail{
		Painting: *painting,
		Variants: variants,
	}, nil
}

// ListVariants 获取画作规格列表（库存展示用，缓存时间较短不影响下单校验）
func (s *CatalogService) ListVariants(ctx context.Context, paintingID uint) ([]gallery.Variant, error) {
	if paintingID == 0 {
		return nil, ErrPaintingNotFound
	}
	if variants, hit, err := cache.GetPaintingVariants(ctx, paintingID); err == nil && hit {
		return variants, nil
	}
	variants, err := s.gallery.ListVariantsByPainting(ctx, paintingID)
	if err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			return nil, ErrPaintingNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if err := cache.SetPaintingVariants(ctx, paintingID, variants, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "key", "variants", "painting_id", paintingID, "error", err)
	}
	return variants, nil
}

// GetVariant 获取单个规格（实时读取，不走缓存）
func (s *CatalogService) GetVariant(ctx context.Context, variantID uint) (*gallery.Variant, error) {
	if variantID == 0 {
		return nil, ErrVariantNotFound
	}
	variant, err := s.gallery.GetVariant(ctx, variantID)
	if err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return variant, nil
}

// ListArtists 获取画家列表
func (s *CatalogService) ListArtists(ctx context.Context) ([]gallery.Artist, error) {
	if artists, hit, err := cache.GetArtistList(ctx); err == nil && hit {
		return artists, nil
	}
	artists, err := s.gallery.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if err := cache.SetArtistList(ctx, artists, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "key", "artists", "error", err)
	}
	return artists, nil
}
