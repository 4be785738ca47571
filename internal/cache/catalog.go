package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/galeria-next/internal/constants"
	"github.com/galeria-next/internal/gallery"
)

// 目录缓存键构造
func paintingListKey() string {
	return constants.CacheKeyPaintingList
}

func paintingDetailKey(paintingID uint) string {
	return fmt.Sprintf("%s:%d", constants.CacheKeyPaintingDetail, paintingID)
}

func paintingVariantsKey(paintingID uint) string {
	return fmt.Sprintf("%s:%d", constants.CacheKeyPaintingVariant, paintingID)
}

func artistListKey() string {
	return constants.CacheKeyArtistList
}

// GetPaintingList 读取画作列表缓存
func GetPaintingList(ctx context.Context) ([]gallery.Painting, bool, error) {
	var paintings []gallery.Painting
	hit, err := GetJSON(ctx, paintingListKey(), &paintings)
	if err != nil || !hit {
		return nil, hit, err
	}
	return paintings, true, nil
}

// SetPaintingList 写入画作列表缓存
func SetPaintingList(ctx context.Context, paintings []gallery.Painting, ttl time.Duration) error {
	return SetJSON(ctx, paintingListKey(), paintings, ttl)
}

// GetPaintingDetail 读取画作详情缓存
func GetPaintingDetail(ctx context.Context, paintingID uint) (*gallery.Painting, bool, error) {
	if paintingID == 0 {
		return nil, false, nil
	}
	var painting gallery.Painting
	hit, err := GetJSON(ctx, paintingDetailKey(paintingID), &painting)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &painting, true, nil
}

// SetPaintingDetail 写入画作详情缓存
func SetPaintingDetail(ctx context.Context, painting *gallery.Painting, ttl time.Duration) error {
	if painting == nil || painting.ID == 0 {
		return nil
	}
	return SetJSON(ctx, paintingDetailKey(painting.ID), painting, ttl)
}

// GetPaintingVariants 读取画作规格缓存
func GetPaintingVariants(ctx context.Context, paintingID uint) ([]gallery.Variant, bool, error) {
	if paintingID == 0 {
		return nil, false, nil
	}
	var variants []gallery.Variant
	hit, err := GetJSON(ctx, paintingVariantsKey(paintingID), &variants)
	if err != nil || !hit {
		return nil, hit, err
	}
	return variants, true, nil
}

// SetPaintingVariants 写入画作规格缓存
func SetPaintingVariants(ctx context.Context, paintingID uint, variants []gallery.Variant, ttl time.Duration) error {
	if paintingID == 0 {
		return nil
	}
	return SetJSON(ctx, paintingVariantsKey(paintingID), variants, ttl)
}

// DelPaintingVariants 删除画作规格缓存（下单扣减库存后失效）
func DelPaintingVariants(ctx context.Context, paintingID uint) error {
	if paintingID == 0 {
		return nil
	}
	return Del(ctx, paintingVariantsKey(paintingID))
}

// GetArtistList 读取画家列表缓存
func GetArtistList(ctx context.Context) ([]gallery.Artist, bool, error) {
	var artists []gallery.Artist
	hit, err := GetJSON(ctx, artistListKey(), &artists)
	if err != nil || !hit {
		return nil, hit, err
	}
	return artists, true, nil
}

// SetArtistList 写入画家列表缓存
func SetArtistList(ctx context.Context, artists []gallery.Artist, ttl time.Duration) error {
	return SetJSON(ctx, artistListKey(), artists, ttl)
}
