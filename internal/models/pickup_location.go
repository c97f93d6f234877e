package models

import (
	"time"

	"gorm.io/gorm"
)

// PickupLocation 自提点表
type PickupLocation struct {
	ID        uint           `gorm:"primarykey" json:"id"`                        // 主键
	Name      string         `gorm:"type:varchar(200);not null" json:"name"`     // 自提点名称
	Address   string         `gorm:"type:varchar(500)" json:"address"`           // 地址
	City      string         `gorm:"type:varchar(100);index" json:"city"`        // 城市
	Phone     string         `gorm:"type:varchar(50)" json:"phone"`              // 联系电话
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`        // 是否启用
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                    // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                 // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                             // 软删除时间
}

// TableName 指定表名
func (PickupLocation) TableName() string {
	return "pickup_locations"
}
