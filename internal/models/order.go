package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNo          string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // 订单编号
	UserID           uint           `gorm:"index;not null" json:"user_id"`                              // 买家ID
	Status           string         `gorm:"index;not null" json:"status"`                               // 订单状态
	Currency         string         `gorm:"not null" json:"currency"`                                   // 币种
	TotalAmount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // 实付金额
	PickupLocationID *uint          `gorm:"index" json:"pickup_location_id,omitempty"`                  // 自提点ID
	ReadyAt          *time.Time     `gorm:"index" json:"ready_at"`                                      // 备货完成时间
	PaidAt           *time.Time     `gorm:"index" json:"paid_at"`                                       // 支付时间
	CancelledAt      *time.Time     `gorm:"index" json:"cancelled_at"`                                  // 取消时间
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	// 关联
	Items          []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`                   // 订单项
	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`                     // 买家信息
	PickupLocation *PickupLocation `gorm:"foreignKey:PickupLocationID" json:"pickup_location,omitempty"` // 自提点信息
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
