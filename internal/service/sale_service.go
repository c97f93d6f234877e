package service

import (
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"
)

// SaleService 销售记录服务
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService 创建销售记录服务
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// ListBySeller 卖家查看自己的销售记录
func (s *SaleService) ListBySeller(sellerID uint, filter repository.SaleListFilter) ([]models.Sale, int64, error) {
	filter.SellerID = sellerID
	return s.saleRepo.List(filter)
}

// ListAdmin 管理端销售记录列表
func (s *SaleService) ListAdmin(filter repository.SaleListFilter) ([]models.Sale, int64, error) {
	return s.saleRepo.List(filter)
}
