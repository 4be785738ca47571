package public

import (
	"strconv"

	handlershared "github.com/galeria-next/internal/http/handlers/shared"
	"github.com/galeria-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPaintings 获取画作列表（上游全量返回，网关侧分页）
func (h *Handler) GetPaintings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	paintings, err := h.CatalogService.ListPaintings(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	start, end := handlershared.PageWindow(len(paintings), page, pageSize)
	response.SuccessWithPage(c, paintings[start:end],
		response.NewPagination(page, pageSize, int64(len(paintings))))
}

// GetPainting 获取画作详情（含规格）
func (h *Handler) GetPainting(c *gin.Context) {
	paintingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.CatalogService.GetPainting(c.Request.Context(), paintingID)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, detail)
}

// GetPaintingVariants 获取画作规格列表
func (h *Handler) GetPaintingVariants(c *gin.Context) {
	paintingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	variants, err := h.CatalogService.ListVariants(c.Request.Context(), paintingID)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, variants)
}

// GetVariant 获取单个规格（实时库存，不走缓存）
func (h *Handler) GetVariant(c *gin.Context) {
	variantID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	variant, err := h.CatalogService.GetVariant(c.Request.Context(), variantID)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, variant)
}

// GetArtists 获取画家列表
func (h *Handler) GetArtists(c *gin.Context) {
	artists, err := h.CatalogService.ListArtists(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, artists)
}
