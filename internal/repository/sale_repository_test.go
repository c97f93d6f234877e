package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
)

func createRepoSale(t *testing.T, db *gorm.DB, orderID, orderItemID uint, product *models.Product, buyerID uint, quantity int, soldAt time.Time) *models.Sale {
	t.Helper()
	sale := &models.Sale{
		OrderID:     orderID,
		OrderItemID: orderItemID,
		ProductID:   product.ID,
		SellerID:    product.SellerID,
		BuyerID:     buyerID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
		TotalPrice:  product.Price.MulInt(quantity),
		SoldAt:      soldAt,
	}
	if err := db.Create(sale).Error; err != nil {
		t.Fatalf("create sale: %v", err)
	}
	return sale
}

func TestSaleList_SellerScopeAndOrder(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewSaleRepository(db)

	wanjiku := createRepoUser(t, db, "wanjiku@modahaus.local", "Wanjiku Fashion", constants.RoleSeller)
	otieno := createRepoUser(t, db, "otieno@modahaus.local", "Otieno Crafts", constants.RoleSeller)
	amina := createRepoUser(t, db, "amina@modahaus.local", "Amina", constants.RoleBuyer)

	dress := createRepoProduct(t, db, wanjiku.ID, "Ankara Print Dress", "", "2499.00", 10)
	tote := createRepoProduct(t, db, wanjiku.ID, "Kitenge Tote Bag", "", "850.00", 10)
	sandals := createRepoProduct(t, db, otieno.ID, "Maasai Beaded Sandals", "", "1200.00", 10)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createRepoSale(t, db, 1, 1, dress, amina.ID, 1, base)
	createRepoSale(t, db, 2, 2, tote, amina.ID, 2, base.Add(48*time.Hour))
	createRepoSale(t, db, 3, 3, sandals, amina.ID, 1, base.Add(24*time.Hour))

	sales, total, err := repo.List(SaleListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(sales) != 3 {
		t.Fatalf("expected 3 sales, got total=%d len=%d", total, len(sales))
	}
	if sales[0].ProductName != "Kitenge Tote Bag" || sales[2].ProductName != "Ankara Print Dress" {
		t.Fatalf("sales should be ordered by sold_at desc, got %s first and %s last", sales[0].ProductName, sales[2].ProductName)
	}
	if sales[0].Product == nil || sales[0].Seller == nil || sales[0].Buyer == nil {
		t.Fatalf("expected product, seller and buyer preloaded")
	}

	sales, total, err = repo.List(SaleListFilter{SellerID: wanjiku.ID})
	if err != nil {
		t.Fatalf("List by seller: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 sales for seller, got %d", total)
	}
	for _, s := range sales {
		if s.SellerID != wanjiku.ID {
			t.Fatalf("sale %d belongs to seller %d", s.ID, s.SellerID)
		}
	}
}

func TestSaleList_SearchAndDateBounds(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewSaleRepository(db)

	seller := createRepoUser(t, db, "seller@modahaus.local", "Seller", constants.RoleSeller)
	amina := createRepoUser(t, db, "amina@modahaus.local", "Amina Hassan", constants.RoleBuyer)
	kamau := createRepoUser(t, db, "kamau@modahaus.local", "Kamau Njoroge", constants.RoleBuyer)

	dress := createRepoProduct(t, db, seller.ID, "Ankara Print Dress", "", "2499.00", 10)
	tote := createRepoProduct(t, db, seller.ID, "Kitenge Tote Bag", "", "850.00", 10)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createRepoSale(t, db, 1, 1, dress, amina.ID, 1, base)
	createRepoSale(t, db, 2, 2, tote, kamau.ID, 1, base.Add(72*time.Hour))

	// Search matches the product name snapshot.
	_, total, err := repo.List(SaleListFilter{Search: "Ankara"})
	if err != nil {
		t.Fatalf("List search by product: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 sale matching product name, got %d", total)
	}

	// Search also matches the buyer display name through the join.
	sales, total, err := repo.List(SaleListFilter{Search: "Kamau"})
	if err != nil {
		t.Fatalf("List search by buyer: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 sale matching buyer name, got %d", total)
	}
	if sales[0].BuyerID != kamau.ID {
		t.Fatalf("expected Kamau's sale, got buyer %d", sales[0].BuyerID)
	}

	from := base.Add(24 * time.Hour)
	_, total, err = repo.List(SaleListFilter{SoldFrom: &from})
	if err != nil {
		t.Fatalf("List sold from: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 sale after lower bound, got %d", total)
	}

	to := base.Add(24 * time.Hour)
	_, total, err = repo.List(SaleListFilter{SoldTo: &to})
	if err != nil {
		t.Fatalf("List sold to: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 sale before upper bound, got %d", total)
	}
}

func TestSaleCountByOrder(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewSaleRepository(db)

	seller := createRepoUser(t, db, "seller@modahaus.local", "Seller", constants.RoleSeller)
	buyer := createRepoUser(t, db, "buyer@modahaus.local", "Buyer", constants.RoleBuyer)
	dress := createRepoProduct(t, db, seller.ID, "Ankara Print Dress", "", "2499.00", 10)
	tote := createRepoProduct(t, db, seller.ID, "Kitenge Tote Bag", "", "850.00", 10)

	now := time.Now()
	createRepoSale(t, db, 7, 1, dress, buyer.ID, 1, now)
	createRepoSale(t, db, 7, 2, tote, buyer.ID, 1, now)

	count, err := repo.CountByOrder(7)
	if err != nil {
		t.Fatalf("CountByOrder: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 sales for order, got %d", count)
	}

	count, err = repo.CountByOrder(99)
	if err != nil {
		t.Fatalf("CountByOrder missing: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 sales for unknown order, got %d", count)
	}
}

func TestSaleCreateIgnoreDuplicates_PartialOverlap(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewSaleRepository(db)

	seller := createRepoUser(t, db, "seller@modahaus.local", "Seller", constants.RoleSeller)
	buyer := createRepoUser(t, db, "buyer@modahaus.local", "Buyer", constants.RoleBuyer)
	price := models.NewMoneyFromDecimal(decimal.RequireFromString("1200.00"))

	now := time.Now()
	first := []models.Sale{{
		OrderID: 1, OrderItemID: 1, ProductID: 1, SellerID: seller.ID, BuyerID: buyer.ID,
		ProductName: "Maasai Beaded Sandals", UnitPrice: price, Quantity: 1, TotalPrice: price, SoldAt: now,
	}}
	if err := repo.CreateIgnoreDuplicates(first); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// Second batch re-sends item 1 and adds item 2; only item 2 lands.
	second := []models.Sale{
		{OrderID: 1, OrderItemID: 1, ProductID: 1, SellerID: seller.ID, BuyerID: buyer.ID,
			ProductName: "Maasai Beaded Sandals", UnitPrice: price, Quantity: 1, TotalPrice: price, SoldAt: now},
		{OrderID: 1, OrderItemID: 2, ProductID: 2, SellerID: seller.ID, BuyerID: buyer.ID,
			ProductName: "Kitenge Tote Bag", UnitPrice: price, Quantity: 1, TotalPrice: price, SoldAt: now},
	}
	if err := repo.CreateIgnoreDuplicates(second); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	count, err := repo.CountByOrder(1)
	if err != nil {
		t.Fatalf("CountByOrder: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 sales after dedupe, got %d", count)
	}

	if err := repo.CreateIgnoreDuplicates(nil); err != nil {
		t.Fatalf("empty batch should be a no-op, got %v", err)
	}
}
