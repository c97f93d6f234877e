package service

import (
	"testing"

	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t)
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func TestAddItem_NewThenIncrement(t *testing.T) {
	svc, db := newTestCartService(t)
	seller := createTestUser(t, db, "seller@example.com", constants.RoleSeller)
	buyer := createTestUser(t, db, "buyer@example.com", constants.RoleBuyer)
	product := createTestProduct(t, db, seller.ID, "Ankara Dress", "2499.00", 10)

	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("add item again failed: %v", err)
	}

	summary, err := svc.ListByUser(buyer.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected single cart line, got %d", len(summary.Items))
	}
	if summary.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity accumulated to 5, got %d", summary.Items[0].Quantity)
	}
	wantTotal := decimal.RequireFromString("12495.00")
	if !summary.Total.Equal(wantTotal) {
		t.Fatalf("expected total %s, got %s", wantTotal.StringFixed(2), summary.Total.String())
	}
}

func TestAddItem_Validation(t *testing.T) {
	svc, db := newTestCartService(t)
	seller := createTestUser(t, db, "seller@example.com", constants.RoleSeller)
	buyer := createTestUser(t, db, "buyer@example.com", constants.RoleBuyer)
	product := createTestProduct(t, db, seller.ID, "Ankara Dress", "2499.00", 10)

	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: product.ID, Quantity: 0}); err != ErrCartInvalidQuantity {
		t.Fatalf("expected ErrCartInvalidQuantity, got %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: product.ID + 99, Quantity: 1}); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdateItemQuantity(t *testing.T) {
	svc, db := newTestCartService(t)
	seller := createTestUser(t, db, "seller@example.com", constants.RoleSeller)
	buyer := createTestUser(t, db, "buyer@example.com", constants.RoleBuyer)
	product := createTestProduct(t, db, seller.ID, "Ankara Dress", "2499.00", 10)

	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if err := svc.UpdateItemQuantity(buyer.ID, product.ID, 7); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	summary, err := svc.ListByUser(buyer.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if summary.Items[0].Quantity != 7 {
		t.Fatalf("expected quantity overwritten to 7, got %d", summary.Items[0].Quantity)
	}

	if err := svc.UpdateItemQuantity(buyer.ID, product.ID, 0); err != ErrCartInvalidQuantity {
		t.Fatalf("expected ErrCartInvalidQuantity, got %v", err)
	}
	if err := svc.UpdateItemQuantity(buyer.ID, product.ID+99, 1); err != ErrCartItemNotFound {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestListByUser_DropsDeletedProducts(t *testing.T) {
	svc, db := newTestCartService(t)
	seller := createTestUser(t, db, "seller@example.com", constants.RoleSeller)
	buyer := createTestUser(t, db, "buyer@example.com", constants.RoleBuyer)
	alive := createTestProduct(t, db, seller.ID, "Beaded Sandals", "1200.00", 5)
	gone := createTestProduct(t, db, seller.ID, "Discontinued Scarf", "300.00", 5)

	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: alive.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: gone.ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := db.Delete(&models.Product{}, gone.ID).Error; err != nil {
		t.Fatalf("soft delete product failed: %v", err)
	}

	summary, err := svc.ListByUser(buyer.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected deleted product dropped from cart, got %d items", len(summary.Items))
	}
	if summary.Items[0].ProductID != alive.ID {
		t.Fatalf("expected surviving product %d, got %d", alive.ID, summary.Items[0].ProductID)
	}

	// 清理后购物车表中也不应再有该商品项
	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ? AND product_id = ?", buyer.ID, gone.ID).Count(&count).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected stale cart row removed, got %d", count)
	}
}

func TestRemoveAndClear(t *testing.T) {
	svc, db := newTestCartService(t)
	seller := createTestUser(t, db, "seller@example.com", constants.RoleSeller)
	buyer := createTestUser(t, db, "buyer@example.com", constants.RoleBuyer)
	dress := createTestProduct(t, db, seller.ID, "Ankara Dress", "2499.00", 10)
	tote := createTestProduct(t, db, seller.ID, "Kitenge Tote", "850.00", 20)

	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: dress.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: buyer.ID, ProductID: tote.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if err := svc.RemoveItem(buyer.ID, dress.ID); err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	summary, err := svc.ListByUser(buyer.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected 1 item after removal, got %d", len(summary.Items))
	}

	if err := svc.Clear(buyer.ID); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	summary, err = svc.ListByUser(buyer.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(summary.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %d items", len(summary.Items))
	}
}
