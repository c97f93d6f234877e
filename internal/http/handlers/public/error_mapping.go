package public

import (
	"errors"

	"github.com/modahaus-api/internal/http/response"
	"github.com/modahaus-api/internal/service"

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
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrCartInvalidQuantity, code: response.CodeBadRequest, key: "error.cart_invalid_quantity"},
}

var placeOrderErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrPickupLocationRequired, code: response.CodeBadRequest, key: "error.pickup_location_required"},
	{target: service.ErrPickupLocationNotFound, code: response.CodeBadRequest, key: "error.pickup_location_not_found"},
}

var ratingErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var commentErrorRules = []mappedHandlerError{
	{target: service.ErrCommentTextRequired, code: response.CodeBadRequest, key: "error.comment_text_required"},
	{target: service.ErrCommentNotFound, code: response.CodeNotFound, key: "error.comment_not_found"},
	{target: service.ErrCommentNotOwned, code: response.CodeForbidden, key: "error.forbidden"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var sellerProductErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductNotOwned, code: response.CodeForbidden, key: "error.forbidden"},
	{target: service.ErrProductNameRequired, code: response.CodeBadRequest, key: "error.product_name_required"},
	{target: service.ErrProductInvalidPrice, code: response.CodeBadRequest, key: "error.product_invalid_price"},
	{target: service.ErrProductInvalidStock, code: response.CodeBadRequest, key: "error.product_invalid_stock"},
}
