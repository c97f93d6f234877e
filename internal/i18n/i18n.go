package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 支持的语言
const (
	LocaleEN = "en"
	LocaleSW = "sw"
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleEN

// Normalize 归一化语言标识
func Normalize(locale string) string {
	normalized := strings.ToLower(strings.TrimSpace(locale))
	if idx := strings.IndexAny(normalized, "-_,;"); idx >= 0 {
		normalized = normalized[:idx]
	}
	switch normalized {
	case LocaleSW:
		return LocaleSW
	default:
		return DefaultLocale
	}
}

// ResolveLocale 从请求解析语言
// 优先 query 参数 lang，其次 Accept-Language 头。
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Normalize(lang)
	}
	return Normalize(c.GetHeader("Accept-Language"))
}

// T 按语言取文案，缺失时回退默认语言，再回退 key 本身
func T(locale, key string) string {
	normalized := Normalize(locale)
	if catalog, ok := messages[normalized]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 按语言取带占位符的文案并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	template := T(locale, key)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":            "invalid request",
		"error.unauthorized":           "unauthorized",
		"error.forbidden":              "forbidden",
		"error.not_found":              "resource not found",
		"error.internal":               "internal server error",
		"error.auth_header_missing":    "authorization header missing",
		"error.auth_header_invalid":    "authorization header invalid",
		"error.token_invalid":          "token invalid or expired",
		"error.token_revoked":          "token revoked, please sign in again",
		"error.jwt_secret_missing":     "authentication not configured",
		"error.user_disabled":          "account disabled",
		"error.email_taken":            "email already registered",
		"error.invalid_credentials":    "email or password incorrect",
		"error.user_not_found":         "user not found",
		"error.password_too_short":     "password must be at least %d characters",
		"error.role_invalid":           "role invalid",
		"error.email_invalid":          "email address invalid",
		"error.profile_empty":          "nothing to update",
		"error.user_id_invalid":        "user id invalid",
		"error.user_id_type_invalid":   "user id type invalid",
		"error.product_not_found":      "product not found",
		"error.product_name_required":  "product name required",
		"error.product_invalid_price":  "product price must be positive",
		"error.product_invalid_stock":  "product stock must not be negative",
		"error.cart_empty":             "cart is empty",
		"error.cart_item_not_found":    "cart item not found",
		"error.cart_invalid_quantity":  "quantity must be positive",
		"error.order_not_found":        "order not found",
		"error.order_status_invalid":   "order status invalid",
		"error.order_transition_invalid": "order status transition not allowed",
		"error.rating_out_of_range":      "rating must be between %d and %d",
		"error.comment_not_found":        "comment not found",
		"error.comment_text_required":    "comment text required",
		"error.pickup_location_required":      "pickup location required",
		"error.pickup_location_not_found":     "pickup location not found",
		"error.pickup_location_name_required": "pickup location name required",
		"error.rate_limited":             "too many attempts, retry in %d seconds",
		"error.rate_limit_unavailable":   "service busy, please retry later",

		"email.order_confirmation.subject": "Order %s confirmed",
		"email.order_confirmation.body":    "Thank you for shopping with ModaHaus. Your order %s totaling %s %s has been received and is being prepared.",
		"email.pickup_ready.subject":       "Order %s ready for pickup",
		"email.pickup_ready.body":          "Good news! Your order %s is ready for pickup at %s. Please bring your order number when collecting.",

		"order.status.pending":          "Pending",
		"order.status.ready_for_pickup": "Ready for pickup",
		"order.status.paid":             "Paid",
		"order.status.cancelled":        "Cancelled",
	},
	LocaleSW: {
		"error.bad_request":            "ombi batili",
		"error.unauthorized":           "hujaidhinishwa",
		"error.forbidden":              "hairuhusiwi",
		"error.not_found":              "rasilimali haipatikani",
		"error.internal":               "hitilafu ya ndani ya seva",
		"error.auth_header_missing":    "kichwa cha uthibitisho hakipo",
		"error.auth_header_invalid":    "kichwa cha uthibitisho si sahihi",
		"error.token_invalid":          "tokeni si sahihi au imekwisha muda",
		"error.token_revoked":          "tokeni imebatilishwa, tafadhali ingia tena",
		"error.jwt_secret_missing":     "uthibitisho haujasanidiwa",
		"error.user_disabled":          "akaunti imezimwa",
		"error.email_taken":            "barua pepe tayari imesajiliwa",
		"error.invalid_credentials":    "barua pepe au nenosiri si sahihi",
		"error.user_not_found":         "mtumiaji hapatikani",
		"error.password_too_short":     "nenosiri lazima liwe na angalau herufi %d",
		"error.role_invalid":           "jukumu si sahihi",
		"error.email_invalid":          "barua pepe si sahihi",
		"error.profile_empty":          "hakuna cha kusasisha",
		"error.user_id_invalid":        "kitambulisho cha mtumiaji si sahihi",
		"error.user_id_type_invalid":   "aina ya kitambulisho cha mtumiaji si sahihi",
		"error.product_not_found":      "bidhaa haipatikani",
		"error.product_name_required":  "jina la bidhaa linahitajika",
		"error.product_invalid_price":  "bei ya bidhaa lazima iwe chanya",
		"error.product_invalid_stock":  "hisa ya bidhaa haiwezi kuwa hasi",
		"error.cart_empty":             "kikapu ni tupu",
		"error.cart_item_not_found":    "bidhaa haipo kikapuni",
		"error.cart_invalid_quantity":  "idadi lazima iwe chanya",
		"error.order_not_found":        "oda haipatikani",
		"error.order_status_invalid":   "hali ya oda si sahihi",
		"error.order_transition_invalid": "mabadiliko ya hali ya oda hayaruhusiwi",
		"error.rating_out_of_range":      "ukadiriaji lazima uwe kati ya %d na %d",
		"error.comment_not_found":        "maoni hayapatikani",
		"error.comment_text_required":    "maandishi ya maoni yanahitajika",
		"error.pickup_location_required":      "eneo la kuchukulia linahitajika",
		"error.pickup_location_not_found":     "eneo la kuchukulia halipatikani",
		"error.pickup_location_name_required": "jina la eneo la kuchukulia linahitajika",
		"error.rate_limited":             "majaribio mengi mno, jaribu tena baada ya sekunde %d",
		"error.rate_limit_unavailable":   "huduma ina shughuli nyingi, jaribu tena baadaye",

		"email.order_confirmation.subject": "Oda %s imethibitishwa",
		"email.order_confirmation.body":    "Asante kwa kununua ModaHaus. Oda yako %s yenye jumla ya %s %s imepokelewa na inaandaliwa.",
		"email.pickup_ready.subject":       "Oda %s iko tayari kuchukuliwa",
		"email.pickup_ready.body":          "Habari njema! Oda yako %s iko tayari kuchukuliwa katika %s. Tafadhali leta namba ya oda unapokuja.",

		"order.status.pending":          "Inasubiri",
		"order.status.ready_for_pickup": "Tayari kuchukuliwa",
		"order.status.paid":             "Imelipwa",
		"order.status.cancelled":        "Imeghairiwa",
	},
}
