package service

import (
	"strings"

	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"
)

// PickupLocationInput 自提点创建/更新入参
type PickupLocationInput struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"`
}

// PickupLocationService 自提点服务
type PickupLocationService struct {
	locationRepo repository.PickupLocationRepository
}

// NewPickupLocationService 创建自提点服务
func NewPickupLocationService(locationRepo repository.PickupLocationRepository) *PickupLocationService {
	return &PickupLocationService{locationRepo: locationRepo}
}

// ListActive 公开的自提点列表，只返回启用中的
func (s *PickupLocationService) ListActive() ([]models.PickupLocation, error) {
	return s.locationRepo.List(true)
}

// ListAll 管理端自提点列表
func (s *PickupLocationService) ListAll() ([]models.PickupLocation, error) {
	return s.locationRepo.List(false)
}

// GetByID 获取自提点
func (s *PickupLocationService) GetByID(id uint) (*models.PickupLocation, error) {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrPickupLocationNotFound
	}
	return location, nil
}

// Create 创建自提点
func (s *PickupLocationService) Create(input PickupLocationInput) (*models.PickupLocation, error) {
	if err := validatePickupLocationInput(input); err != nil {
		return nil, err
	}

	location := &models.PickupLocation{
		Name:     strings.TrimSpace(input.Name),
		Address:  strings.TrimSpace(input.Address),
		City:     strings.TrimSpace(input.City),
		Phone:    strings.TrimSpace(input.Phone),
		IsActive: true,
	}
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// Update 更新自提点
func (s *PickupLocationService) Update(id uint, input PickupLocationInput) (*models.PickupLocation, error) {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrPickupLocationNotFound
	}
	if err := validatePickupLocationInput(input); err != nil {
		return nil, err
	}

	location.Name = strings.TrimSpace(input.Name)
	location.Address = strings.TrimSpace(input.Address)
	location.City = strings.TrimSpace(input.City)
	location.Phone = strings.TrimSpace(input.Phone)
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}
	if err := s.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// Delete 删除自提点
func (s *PickupLocationService) Delete(id uint) error {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return ErrPickupLocationNotFound
	}
	return s.locationRepo.Delete(id)
}

func validatePickupLocationInput(input PickupLocationInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Address) == "" ||
		strings.TrimSpace(input.City) == "" {
		return ErrPickupLocationNameRequired
	}
	return nil
}
