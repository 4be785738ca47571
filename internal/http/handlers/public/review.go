package public

import (
	"github.com/galeria-next/internal/http/response"
	"github.com/galeria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest 提交评价请求
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// GetPaintingReviews 获取画作评价列表
func (h *Handler) GetPaintingReviews(c *gin.Context) {
	paintingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	reviews, err := h.ReviewService.ListByPainting(c.Request.Context(), paintingID)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, reviews)
}

// CreatePaintingReview 提交画作评价
func (h *Handler) CreatePaintingReview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	paintingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.ReviewService.Create(c.Request.Context(), service.CreateReviewInput{
		PaintingID: paintingID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}); err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, nil)
}
