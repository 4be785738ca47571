package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/galeria-next/internal/gallery"
)

// ReviewView 评价视图（附带用户展示名）
type ReviewView struct {
	Review   gallery.Review `json:"review"`
	UserName string         `json:"user_name"`
}

// CreateReviewInput 创建评价输入
type CreateReviewInput struct {
	PaintingID uint
	UserID     uint
	Rating     int
	Comment    string
}

// ReviewService 画作评价服务
type ReviewService struct {
	gallery *gallery.Client
}

// NewReviewService 创建评价服务
func NewReviewService(galleryClient *gallery.Client) *ReviewService {
	return &ReviewService{gallery: galleryClient}
}

// ListByPainting 查询画作评价，逐条补充用户展示名
func (s *ReviewService) ListByPainting(ctx context.Context, paintingID uint) ([]ReviewView, error) {
	if paintingID == 0 {
		return nil, ErrPaintingNotFound
	}
	reviews, err := s.gallery.ListReviewsByPainting(ctx, paintingID)
	if err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			return []ReviewView{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	views := make([]ReviewView, 0, len(reviews))
	for _, review := range reviews {
		view := ReviewView{Review: review}
		if review.UserID != 0 {
			if user, err := s.gallery.GetUser(ctx, review.UserID); err == nil {
				view.UserName = user.FullName
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Create 创建评价
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) error {
	if input.PaintingID == 0 || input.UserID == 0 {
		return ErrReviewInvalid
	}
	if input.Rating < 1 || input.Rating > 5 {
		return ErrReviewInvalid
	}
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return ErrReviewInvalid
	}
	if err := s.gallery.CreateReview(ctx, gallery.CreateReviewInput{
		PaintingID: input.PaintingID,
		UserID:     input.UserID,
		Rating:     input.Rating,
		Comment:    comment,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}
