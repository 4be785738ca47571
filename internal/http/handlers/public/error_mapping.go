package public

import (
	"errors"

	"github.com/galeria-next/internal/http/response"
	"github.com/galeria-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrDeviceRequired, code: response.CodeBadRequest, key: "error.device_required"},
	{target: service.ErrInvalidCartLine, code: response.CodeBadRequest, key: "error.cart_invalid_variant"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.cart_invalid_quantity"},
	{target: service.ErrCartLineNotFound, code: response.CodeNotFound, key: "error.cart_line_not_found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrDeviceRequired, code: response.CodeBadRequest, key: "error.device_required"},
	{target: service.ErrShippingInfoInvalid, code: response.CodeBadRequest, key: "error.shipping_info_invalid"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrOrderCreateFailed, code: response.CodeInternal, key: "error.order_create_failed"},
	{target: service.ErrOrderFinalizeFailed, code: response.CodeInternal, key: "error.order_finalize_failed"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrPaintingNotFound, code: response.CodeNotFound, key: "error.painting_not_found"},
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, key: "error.variant_not_found"},
	{target: service.ErrUpstreamUnavailable, code: response.CodeInternal, key: "error.upstream_unavailable"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderNotCancellable, code: response.CodeBadRequest, key: "error.invalid_request"},
	{target: service.ErrUpstreamUnavailable, code: response.CodeInternal, key: "error.upstream_unavailable"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrReviewInvalid, code: response.CodeBadRequest, key: "error.review_invalid"},
	{target: service.ErrPaintingNotFound, code: response.CodeNotFound, key: "error.painting_not_found"},
	{target: service.ErrUpstreamUnavailable, code: response.CodeInternal, key: "error.upstream_unavailable"},
}

var userAuthErrorRules = []mappedHandlerError{
	{target: service.ErrLoginFailed, code: response.CodeUnauthorized, key: "error.login_failed"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.user_exists"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
	{target: service.ErrPasswordIncorrect, code: response.CodeBadRequest, key: "error.password_incorrect"},
	{target: service.ErrUpstreamUnavailable, code: response.CodeInternal, key: "error.upstream_unavailable"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.internal")
}

func respondReviewError(c *gin.Context, err error) {
	respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.internal")
}

func respondUserAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, userAuthErrorRules, response.CodeInternal, "error.internal")
}
