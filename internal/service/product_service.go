package service

import (
	"strings"
	"time"

	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"
)

// ProductInput 商品创建/更新输入
// ActorRole 为操作者角色，管理员可编辑任意卖家的商品。
type ProductInput struct {
	SellerID    uint
	ActorRole   string
	Name        string
	Description string
	Price       models.Money
	Quantity    int
	Category    string
	Brand       string
	Color       string
	Size        string
	Material    string
	Images      []string
}

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
	ratingRepo  repository.RatingRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, ratingRepo repository.RatingRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		ratingRepo:  ratingRepo,
	}
}

// List 商品列表，附带评分汇总
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	if filter.WithRating && len(products) > 0 {
		ids := make([]uint, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		aggregates, err := s.ratingRepo.AggregateByProductIDs(ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range products {
			if agg, ok := aggregates[products[i].ID]; ok {
				products[i].AvgRating = agg.Average
				products[i].RatingCount = agg.Count
			}
		}
	}
	return products, total, nil
}

// GetByID 商品详情，附带评分汇总
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	agg, err := s.ratingRepo.AggregateByProduct(id)
	if err != nil {
		return nil, err
	}
	if agg != nil {
		product.AvgRating = agg.Average
		product.RatingCount = agg.Count
	}
	return product, nil
}

// Create 卖家创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &models.Product{
		SellerID:    input.SellerID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Quantity:    input.Quantity,
		Category:    strings.TrimSpace(input.Category),
		Brand:       strings.TrimSpace(input.Brand),
		Color:       strings.TrimSpace(input.Color),
		Size:        strings.TrimSpace(input.Size),
		Material:    strings.TrimSpace(input.Material),
		Images:      models.StringArray(input.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 卖家更新自有商品
func (s *ProductService) Update(productID uint, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.SellerID != input.SellerID && input.ActorRole != constants.RoleAdmin {
		return nil, ErrProductNotOwned
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.Category = strings.TrimSpace(input.Category)
	product.Brand = strings.TrimSpace(input.Brand)
	product.Color = strings.TrimSpace(input.Color)
	product.Size = strings.TrimSpace(input.Size)
	product.Material = strings.TrimSpace(input.Material)
	product.Images = models.StringArray(input.Images)
	product.UpdatedAt = time.Now()
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 卖家删除自有商品
func (s *ProductService) Delete(productID, sellerID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if product.SellerID != sellerID {
		return ErrProductNotOwned
	}
	return s.productRepo.Delete(productID)
}

func validateProductInput(input ProductInput) error {
	if input.SellerID == 0 {
		return ErrProductNotOwned
	}
	if strings.TrimSpace(input.Name) == "" {
		return ErrProductNameRequired
	}
	if input.Price.IsNegative() {
		return ErrProductInvalidPrice
	}
	if input.Quantity < 0 {
		return ErrProductInvalidStock
	}
	return nil
}
