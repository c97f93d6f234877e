package service

import (
	"time"

	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	LineTotal models.Money    `json:"line_total"`
	Product   *models.Product `json:"product"`
}

// CartSummary 购物车汇总
type CartSummary struct {
	Items []CartItemDetail `json:"items"`
	Total models.Money     `json:"total"`
}

// AddCartItemInput 购物车新增输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车
// 商品已下架或被删除的购物车项会被静默清理。
func (s *CartService) ListByUser(userID uint) (*CartSummary, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	summary := &CartSummary{Items: make([]CartItemDetail, 0, len(items))}
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil {
			_ = s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}

		lineTotal := product.Price.MulInt(item.Quantity)
		summary.Items = append(summary.Items, CartItemDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
			Product:   product,
		})
		summary.Total = summary.Total.AddMoney(lineTotal)
	}
	return summary, nil
}

// AddItem 加入购物车，已存在时累加数量
func (s *CartService) AddItem(input AddCartItemInput) error {
	if input.UserID == 0 || input.ProductID == 0 || input.Quantity <= 0 {
		return ErrCartInvalidQuantity
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	affected, err := s.cartRepo.IncrementQuantity(input.UserID, input.ProductID, input.Quantity)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.cartRepo.Upsert(item)
}

// UpdateItemQuantity 覆盖购物车项数量
func (s *CartService) UpdateItemQuantity(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 {
		return ErrCartItemNotFound
	}
	if quantity <= 0 {
		return ErrCartInvalidQuantity
	}
	affected, err := s.cartRepo.UpdateQuantity(userID, productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrCartItemNotFound
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrNotFound
	}
	return s.cartRepo.ClearByUser(userID)
}
