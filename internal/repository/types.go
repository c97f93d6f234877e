package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page        int
	PageSize    int
	SellerID    uint
	Search      string
	Category    string
	Brand       string
	MinPrice    string
	MaxPrice    string
	InStockOnly bool
	WithSeller  bool
	WithRating  bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page             int
	PageSize         int
	UserID           uint
	Status           string
	OrderNo          string
	PickupLocationID uint
	BuyerEmail       string
	CreatedFrom      *time.Time
	CreatedTo        *time.Time
}

// SaleListFilter 查询销售记录列表的过滤条件
type SaleListFilter struct {
	Page     int
	PageSize int
	SellerID uint
	Search   string
	SoldFrom *time.Time
	SoldTo   *time.Time
}

// CommentListFilter 查询评论列表的过滤条件
type CommentListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	UserID    uint
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Role        string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
