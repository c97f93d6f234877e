package repository

import (
	"errors"

	"github.com/modahaus-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingAggregate 商品评分汇总
type RatingAggregate struct {
	ProductID uint    `json:"product_id"`
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
}

// RatingRepository 评分数据访问接口
type RatingRepository interface {
	GetByUserAndProduct(userID, productID uint) (*models.Rating, error)
	GetByUserAndProductForUpdate(userID, productID uint) (*models.Rating, error)
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	AggregateByProduct(productID uint) (*RatingAggregate, error)
	AggregateByProductIDs(productIDs []uint) (map[uint]RatingAggregate, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormRatingRepository
}

// GormRatingRepository GORM 实现
type GormRatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository 创建评分仓库
func NewRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// WithTx 绑定事务
func (r *GormRatingRepository) WithTx(tx *gorm.DB) *GormRatingRepository {
	if tx == nil {
		return r
	}
	return &GormRatingRepository{db: tx}
}

// Transaction 执行事务
func (r *GormRatingRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByUserAndProduct 获取用户对商品的评分
func (r *GormRatingRepository) GetByUserAndProduct(userID, productID uint) (*models.Rating, error) {
	return r.getByUserAndProduct(r.db, userID, productID)
}

// GetByUserAndProductForUpdate 获取评分并加行锁，用于事务内读改写
func (r *GormRatingRepository) GetByUserAndProductForUpdate(userID, productID uint) (*models.Rating, error) {
	return r.getByUserAndProduct(r.db.Clauses(clause.Locking{Strength: "UPDATE"}), userID, productID)
}

func (r *GormRatingRepository) getByUserAndProduct(query *gorm.DB, userID, productID uint) (*models.Rating, error) {
	var rating models.Rating
	err := query.Where("user_id = ? AND product_id = ?", userID, productID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Create 创建评分
func (r *GormRatingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// Update 更新评分
func (r *GormRatingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// AggregateByProduct 汇总单个商品评分
func (r *GormRatingRepository) AggregateByProduct(productID uint) (*RatingAggregate, error) {
	var row RatingAggregate
	err := r.db.Model(&models.Rating{}).
		Select("product_id, COALESCE(SUM(value * count) * 1.0 / SUM(count), 0) AS average, COALESCE(SUM(count), 0) AS count").
		Where("product_id = ?", productID).
		Group("product_id").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &RatingAggregate{ProductID: productID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// AggregateByProductIDs 批量汇总商品评分
func (r *GormRatingRepository) AggregateByProductIDs(productIDs []uint) (map[uint]RatingAggregate, error) {
	result := make(map[uint]RatingAggregate, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var rows []RatingAggregate
	err := r.db.Model(&models.Rating{}).
		Select("product_id, COALESCE(SUM(value * count) * 1.0 / SUM(count), 0) AS average, COALESCE(SUM(count), 0) AS count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProductID] = row
	}
	return result, nil
}
