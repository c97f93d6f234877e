package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
)

func newRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Sale{},
		&models.PickupLocation{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createRepoUser(t *testing.T, db *gorm.DB, email, displayName, role string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		DisplayName:  displayName,
		Role:         role,
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createRepoProduct(t *testing.T, db *gorm.DB, sellerID uint, name, description, price string, quantity int) *models.Product {
	t.Helper()
	product := &models.Product{
		SellerID:    sellerID,
		Name:        name,
		Description: description,
		Price:       models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		Quantity:    quantity,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return product
}

func TestProductList_Filters(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewProductRepository(db)

	wanjiku := createRepoUser(t, db, "wanjiku@modahaus.local", "Wanjiku Fashion", constants.RoleSeller)
	otieno := createRepoUser(t, db, "otieno@modahaus.local", "Otieno Crafts", constants.RoleSeller)

	createRepoProduct(t, db, wanjiku.ID, "Ankara Print Dress", "Vibrant ankara fabric", "2499.00", 10)
	createRepoProduct(t, db, wanjiku.ID, "Kitenge Tote Bag", "Handmade kitenge tote", "850.00", 0)
	createRepoProduct(t, db, otieno.ID, "Maasai Beaded Sandals", "Leather sandals with ankara trim", "1200.00", 5)

	products, total, err := repo.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(products) != 3 {
		t.Fatalf("expected 3 products, got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Search: "ankara"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if total != 2 {
		t.Fatalf("search should match name and description, got total=%d", total)
	}
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), "ankara") && !strings.Contains(strings.ToLower(p.Description), "ankara") {
			t.Fatalf("unexpected search hit: %s", p.Name)
		}
	}

	_, total, err = repo.List(ProductListFilter{MinPrice: "1000", MaxPrice: "2000"})
	if err != nil {
		t.Fatalf("List price range: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 product in [1000, 2000], got %d", total)
	}

	products, total, err = repo.List(ProductListFilter{InStockOnly: true})
	if err != nil {
		t.Fatalf("List in stock: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 in-stock products, got %d", total)
	}
	for _, p := range products {
		if p.Quantity <= 0 {
			t.Fatalf("out-of-stock product returned: %s", p.Name)
		}
	}

	products, total, err = repo.List(ProductListFilter{SellerID: wanjiku.ID, WithSeller: true})
	if err != nil {
		t.Fatalf("List by seller: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 products for seller, got %d", total)
	}
	for _, p := range products {
		if p.SellerID != wanjiku.ID {
			t.Fatalf("product %s belongs to seller %d", p.Name, p.SellerID)
		}
		if p.Seller == nil || p.Seller.DisplayName != "Wanjiku Fashion" {
			t.Fatalf("seller not preloaded for %s", p.Name)
		}
	}
}

func TestProductList_CategoryAndBrand(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewProductRepository(db)

	seller := createRepoUser(t, db, "wanjiku@modahaus.local", "Wanjiku Fashion", constants.RoleSeller)

	dress := createRepoProduct(t, db, seller.ID, "Ankara Print Dress", "", "2499.00", 10)
	dress.Category = "dresses"
	dress.Brand = "Wanjiku Fashion"
	if err := db.Save(dress).Error; err != nil {
		t.Fatalf("save product: %v", err)
	}
	sandals := createRepoProduct(t, db, seller.ID, "Maasai Beaded Sandals", "", "1200.00", 5)
	sandals.Category = "shoes"
	sandals.Brand = "Otieno Crafts"
	if err := db.Save(sandals).Error; err != nil {
		t.Fatalf("save product: %v", err)
	}

	products, total, err := repo.List(ProductListFilter{Category: "dresses"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if total != 1 || products[0].Name != "Ankara Print Dress" {
		t.Fatalf("category filter should match exactly, got total=%d", total)
	}

	// 类目为精确匹配，前缀不算命中
	_, total, err = repo.List(ProductListFilter{Category: "dress"})
	if err != nil {
		t.Fatalf("List by partial category: %v", err)
	}
	if total != 0 {
		t.Fatalf("partial category should not match, got %d", total)
	}

	products, total, err = repo.List(ProductListFilter{Brand: "otieno"})
	if err != nil {
		t.Fatalf("List by brand: %v", err)
	}
	if total != 1 || products[0].Name != "Maasai Beaded Sandals" {
		t.Fatalf("brand filter should match substring, got total=%d", total)
	}

	_, total, err = repo.List(ProductListFilter{Search: "wanjiku"})
	if err != nil {
		t.Fatalf("List search by brand: %v", err)
	}
	if total != 1 {
		t.Fatalf("search should cover brand column, got %d", total)
	}
}

func TestProductList_Pagination(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewProductRepository(db)

	seller := createRepoUser(t, db, "seller@modahaus.local", "Seller", constants.RoleSeller)
	for i := 0; i < 5; i++ {
		createRepoProduct(t, db, seller.ID, fmt.Sprintf("Product %d", i), "", "100.00", 1)
	}

	products, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("List page 2: %v", err)
	}
	if total != 5 {
		t.Fatalf("total should count all rows, got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("expected page of 2, got %d", len(products))
	}
}

func TestProductGetByID_SoftDeleted(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewProductRepository(db)

	seller := createRepoUser(t, db, "seller@modahaus.local", "Seller", constants.RoleSeller)
	product := createRepoProduct(t, db, seller.ID, "Kitenge Tote Bag", "", "850.00", 3)

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Seller == nil {
		t.Fatalf("expected product with preloaded seller, got %+v", got)
	}

	if err := repo.Delete(product.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err = repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("soft-deleted product should not be found, got %+v", got)
	}

	_, total, err := repo.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if total != 0 {
		t.Fatalf("soft-deleted product should be excluded from list, total=%d", total)
	}
}

func TestProductDecrementStock(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewProductRepository(db)

	seller := createRepoUser(t, db, "seller@modahaus.local", "Seller", constants.RoleSeller)
	product := createRepoProduct(t, db, seller.ID, "Ankara Print Dress", "", "2499.00", 3)

	affected, err := repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("DecrementStock: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	affected, err = repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("DecrementStock over stock: %v", err)
	}
	if affected != 0 {
		t.Fatalf("decrement beyond stock should affect 0 rows, got %d", affected)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", got.Quantity)
	}
}
