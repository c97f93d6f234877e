package service

import (
	"strings"

	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"
)

// CommentService 商品评论服务
type CommentService struct {
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
}

// NewCommentService 创建评论服务
func NewCommentService(commentRepo repository.CommentRepository, productRepo repository.ProductRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, productRepo: productRepo}
}

// ListByProduct 商品评论列表，按时间倒序
func (s *CommentService) ListByProduct(productID uint, page, pageSize int) ([]models.Comment, int64, error) {
	return s.commentRepo.List(repository.CommentListFilter{
		ProductID: productID,
		Page:      page,
		PageSize:  pageSize,
	})
}

// Create 发表评论
func (s *CommentService) Create(userID, productID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentTextRequired
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	comment := &models.Comment{
		UserID:    userID,
		ProductID: productID,
		Text:      text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete 删除评论，仅作者本人或管理员可删
func (s *CommentService) Delete(commentID, userID uint, role string) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && role != constants.RoleAdmin {
		return ErrCommentNotOwned
	}
	return s.commentRepo.Delete(commentID)
}
