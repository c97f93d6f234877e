package repository

import (
	"errors"

	"github.com/modahaus-api/internal/models"

	"gorm.io/gorm"
)

// PickupLocationRepository 自提点数据访问接口
type PickupLocationRepository interface {
	List(onlyActive bool) ([]models.PickupLocation, error)
	GetByID(id uint) (*models.PickupLocation, error)
	Create(location *models.PickupLocation) error
	Update(location *models.PickupLocation) error
	Delete(id uint) error
}

// GormPickupLocationRepository GORM 实现
type GormPickupLocationRepository struct {
	db *gorm.DB
}

// NewPickupLocationRepository 创建自提点仓库
func NewPickupLocationRepository(db *gorm.DB) *GormPickupLocationRepository {
	return &GormPickupLocationRepository{db: db}
}

// List 自提点列表
func (r *GormPickupLocationRepository) List(onlyActive bool) ([]models.PickupLocation, error) {
	query := r.db.Model(&models.PickupLocation{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var locations []models.PickupLocation
	if err := query.Order("name asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// GetByID 根据 ID 获取自提点
func (r *GormPickupLocationRepository) GetByID(id uint) (*models.PickupLocation, error) {
	var location models.PickupLocation
	if err := r.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

// Create 创建自提点
func (r *GormPickupLocationRepository) Create(location *models.PickupLocation) error {
	return r.db.Create(location).Error
}

// Update 更新自提点
func (r *GormPickupLocationRepository) Update(location *models.PickupLocation) error {
	return r.db.Save(location).Error
}

// Delete 删除自提点（软删除）
func (r *GormPickupLocationRepository) Delete(id uint) error {
	return r.db.Delete(&models.PickupLocation{}, id).Error
}
