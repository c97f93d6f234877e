package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment 商品评论表
type Comment struct {
	ID        uint           `gorm:"primarykey" json:"id"`             // 主键
	UserID    uint           `gorm:"index;not null" json:"user_id"`    // 用户ID
	ProductID uint           `gorm:"index;not null" json:"product_id"` // 商品ID
	Text      string         `gorm:"type:text;not null" json:"text"`   // 评论内容
	CreatedAt time.Time      `gorm:"index" json:"created_at"`          // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`          // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                   // 软删除时间

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 评论人信息
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
