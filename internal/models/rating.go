package models

import (
	"time"

	"gorm.io/gorm"
)

// Rating 商品评分表
// 每个 (user_id, product_id) 仅保留一行，重复评分更新分值。
type Rating struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                           // 主键
	UserID    uint           `gorm:"not null;uniqueIndex:idx_rating_user_product" json:"user_id"`    // 用户ID
	ProductID uint           `gorm:"not null;uniqueIndex:idx_rating_user_product" json:"product_id"` // 商品ID
	Value     int            `gorm:"not null" json:"value"`                                          // 评分值（1-5）
	Count     int            `gorm:"not null;default:1" json:"count"`                                // 提交次数
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                        // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                 // 软删除时间
}

// TableName 指定表名
func (Rating) TableName() string {
	return "ratings"
}
