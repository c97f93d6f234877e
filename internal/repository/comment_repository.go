package repository

import (
	"errors"

	"github.com/modahaus-api/internal/models"

	"gorm.io/gorm"
)

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	List(filter CommentListFilter) ([]models.Comment, int64, error)
	GetByID(id uint) (*models.Comment, error)
	Create(comment *models.Comment) error
	Delete(id uint) error
}

// GormCommentRepository GORM 实现
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓库
func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// List 评论列表
func (r *GormCommentRepository) List(filter CommentListFilter) ([]models.Comment, int64, error) {
	query := r.db.Model(&models.Comment{})

	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var comments []models.Comment
	if err := query.Preload("User").Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// GetByID 根据 ID 获取评论
func (r *GormCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// Create 创建评论
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Delete 删除评论（软删除）
func (r *GormCommentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
