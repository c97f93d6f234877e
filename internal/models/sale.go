package models

import (
	"time"

	"gorm.io/gorm"
)

// Sale 销售记录表
// 订单支付成功后按订单项生成，(order_id, order_item_id) 唯一保证重复结算不产生重复记录。
type Sale struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                              // 主键
	OrderID     uint           `gorm:"not null;uniqueIndex:idx_sale_order_item" json:"order_id"`          // 订单ID
	OrderItemID uint           `gorm:"not null;uniqueIndex:idx_sale_order_item" json:"order_item_id"`     // 订单项ID
	ProductID   uint           `gorm:"index;not null" json:"product_id"`                                  // 商品ID
	SellerID    uint           `gorm:"index;not null" json:"seller_id"`                                   // 卖家ID
	BuyerID     uint           `gorm:"index;not null" json:"buyer_id"`                                    // 买家ID
	ProductName string         `gorm:"type:varchar(200);not null" json:"product_name"`                    // 商品名称快照
	UnitPrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`           // 成交单价
	Quantity    int            `gorm:"not null" json:"quantity"`                                          // 数量
	TotalPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`          // 成交金额
	SoldAt      time.Time      `gorm:"index;not null" json:"sold_at"`                                     // 成交时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                           // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                        // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                                    // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 商品信息
	Seller  *User    `gorm:"foreignKey:SellerID" json:"seller,omitempty"`   // 卖家信息
	Buyer   *User    `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`     // 买家信息
}

// TableName 指定表名
func (Sale) TableName() string {
	return "sales"
}
