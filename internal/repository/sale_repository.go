package repository

import (
	"github.com/modahaus-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaleRepository 销售记录数据访问接口
type SaleRepository interface {
	CreateIgnoreDuplicates(sales []models.Sale) error
	List(filter SaleListFilter) ([]models.Sale, int64, error)
	CountByOrder(orderID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormSaleRepository
}

// GormSaleRepository GORM 实现
type GormSaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository 创建销售记录仓库
func NewSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSaleRepository) WithTx(tx *gorm.DB) *GormSaleRepository {
	if tx == nil {
		return r
	}
	return &GormSaleRepository{db: tx}
}

// CreateIgnoreDuplicates 批量写入销售记录
// 依赖 (order_id, order_item_id) 唯一索引，重复结算同一订单时静默跳过已有记录。
func (r *GormSaleRepository) CreateIgnoreDuplicates(sales []models.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "order_item_id"}},
		DoNothing: true,
	}).Create(&sales).Error
}

// List 销售记录列表
func (r *GormSaleRepository) List(filter SaleListFilter) ([]models.Sale, int64, error) {
	query := r.db.Model(&models.Sale{})

	if filter.SellerID != 0 {
		query = query.Where("sales.seller_id = ?", filter.SellerID)
	}
	if filter.SoldFrom != nil {
		query = query.Where("sales.sold_at >= ?", *filter.SoldFrom)
	}
	if filter.SoldTo != nil {
		query = query.Where("sales.sold_at <= ?", *filter.SoldTo)
	}
	if filter.Search != "" {
		cond, argCount := buildLikeCondition(r.db, "sales.product_name", "buyers.display_name")
		query = query.Joins("LEFT JOIN users buyers ON buyers.id = sales.buyer_id").
			Where(cond, repeatLikeArgs("%"+filter.Search+"%", argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var sales []models.Sale
	if err := query.Preload("Product").Preload("Seller").Preload("Buyer").
		Order("sales.sold_at desc").Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// CountByOrder 统计订单已生成的销售记录数
func (r *GormSaleRepository) CountByOrder(orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Sale{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
