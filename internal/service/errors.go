package service

import "errors"

// 服务层统一错误定义，handler 层据此映射响应码与 i18n 文案。
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrWeakPassword      = errors.New("weak password")
	ErrUserDisabled      = errors.New("user disabled")
	ErrRoleInvalid       = errors.New("role invalid")
	ErrUserStatusInvalid = errors.New("user status invalid")
	ErrProfileEmpty      = errors.New("profile update empty")

	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameRequired = errors.New("product name required")
	ErrProductInvalidPrice = errors.New("product price invalid")
	ErrProductInvalidStock = errors.New("product stock invalid")
	ErrProductNotOwned     = errors.New("product not owned by seller")

	ErrCartEmpty           = errors.New("cart is empty")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrCartInvalidQuantity = errors.New("cart quantity invalid")

	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderFetchFailed       = errors.New("order fetch failed")
	ErrOrderUpdateFailed      = errors.New("order update failed")
	ErrOrderStatusInvalid     = errors.New("order status invalid")
	ErrOrderTransitionInvalid = errors.New("order status transition not allowed")
	ErrOrderNoExhausted       = errors.New("order number generation exhausted")

	ErrRatingOutOfRange = errors.New("rating out of range")

	ErrCommentNotFound     = errors.New("comment not found")
	ErrCommentTextRequired = errors.New("comment text required")
	ErrCommentNotOwned     = errors.New("comment not owned by user")

	ErrPickupLocationRequired     = errors.New("pickup location required")
	ErrPickupLocationNotFound     = errors.New("pickup location not found")
	ErrPickupLocationNameRequired = errors.New("pickup location name required")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailSendFailed           = errors.New("email send failed")
)
