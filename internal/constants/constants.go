package constants

// 账号角色常量
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// 订单状态常量
const (
	OrderStatusPending        = "pending"
	OrderStatusReadyForPickup = "ready_for_pickup"
	OrderStatusPaid           = "paid"
	OrderStatusCancelled      = "cancelled"
)

// 评分取值范围
const (
	RatingMin = 1
	RatingMax = 5
)

// SiteCurrency 站点币种（订单与邮件展示）
const SiteCurrency = "KES"

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskOrderConfirmationEmail = "email:order_confirmation"
	TaskOrderPickupReadyEmail  = "email:order_pickup_ready"
)

// 用户账号状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// OrderStatuses 订单状态全集
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusReadyForPickup,
	OrderStatusPaid,
	OrderStatusCancelled,
}

// IsValidOrderStatus 判断是否为合法订单状态
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidRole 判断是否为合法账号角色
func IsValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller || role == RoleAdmin
}
