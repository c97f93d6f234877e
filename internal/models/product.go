package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                              // 主键
	SellerID    uint           `gorm:"not null;index" json:"seller_id"`                   // 卖家ID
	Name        string         `gorm:"type:varchar(200);not null;index" json:"name"`      // 商品名称
	Description string         `gorm:"type:text" json:"description"`                      // 商品描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	Quantity    int            `gorm:"not null;default:0" json:"quantity"`                // 可售库存
	Category    string         `gorm:"type:varchar(100);index" json:"category"`           // 分类
	Brand       string         `gorm:"type:varchar(100)" json:"brand"`                    // 品牌
	Color       string         `gorm:"type:varchar(50)" json:"color"`                     // 颜色
	Size        string         `gorm:"type:varchar(50)" json:"size"`                      // 尺码
	Material    string         `gorm:"type:varchar(100)" json:"material"`                 // 材质
	Images      StringArray    `gorm:"type:json" json:"images"`                           // 图片数组
	AvgRating   float64        `gorm:"-" json:"avg_rating"`                               // 平均评分（查询时计算，不写入数据库）
	RatingCount int64          `gorm:"-" json:"rating_count"`                             // 评分人数（查询时计算，不写入数据库）
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                        // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除时间

	// 关联
	Seller *User `gorm:"foreignKey:SellerID" json:"seller,omitempty"` // 卖家信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
