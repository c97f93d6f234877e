package service

import (
	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"

	"gorm.io/gorm"
)

// RatingService 商品评分服务
type RatingService struct {
	ratingRepo  repository.RatingRepository
	productRepo repository.ProductRepository
}

// NewRatingService 创建评分服务
func NewRatingService(ratingRepo repository.RatingRepository, productRepo repository.ProductRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, productRepo: productRepo}
}

// Rate 提交评分。同一用户对同一商品重复提交时覆盖分值，不影响评分人数。
func (s *RatingService) Rate(userID, productID uint, value int) (*models.Rating, error) {
	if value < constants.RatingMin || value > constants.RatingMax {
		return nil, ErrRatingOutOfRange
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	var result *models.Rating
	err = s.ratingRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.ratingRepo.WithTx(tx)
		existing, err := txRepo.GetByUserAndProductForUpdate(userID, productID)
		if err != nil {
			return err
		}
		if existing == nil {
			rating := &models.Rating{
				UserID:    userID,
				ProductID: productID,
				Value:     value,
				Count:     1,
			}
			if err := txRepo.Create(rating); err != nil {
				return err
			}
			result = rating
			return nil
		}
		existing.Value = value
		if err := txRepo.Update(existing); err != nil {
			return err
		}
		result = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetAggregate 获取商品评分汇总
func (s *RatingService) GetAggregate(productID uint) (*repository.RatingAggregate, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.ratingRepo.AggregateByProduct(productID)
}

// GetUserRating 获取用户对商品的评分，未评分时返回 nil
func (s *RatingService) GetUserRating(userID, productID uint) (*models.Rating, error) {
	return s.ratingRepo.GetByUserAndProduct(userID, productID)
}
