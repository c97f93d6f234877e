package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
)

func createRepoOrder(t *testing.T, db *gorm.DB, userID uint, orderNo, status string, pickupLocationID *uint, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:          orderNo,
		UserID:           userID,
		Status:           status,
		Currency:         "KES",
		TotalAmount:      models.NewMoneyFromDecimal(decimal.RequireFromString("2499.00")),
		PickupLocationID: pickupLocationID,
		CreatedAt:        createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order %s: %v", orderNo, err)
	}
	return order
}

func TestOrderListAdmin_Filters(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewOrderRepository(db)

	amina := createRepoUser(t, db, "amina@modahaus.local", "Amina", constants.RoleBuyer)
	otieno := createRepoUser(t, db, "otieno@modahaus.local", "Otieno", constants.RoleBuyer)

	cbd := &models.PickupLocation{Name: "CBD Pickup Station", Address: "Kimathi Street 12", City: "Nairobi", IsActive: true}
	if err := db.Create(cbd).Error; err != nil {
		t.Fatalf("create pickup location: %v", err)
	}

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	createRepoOrder(t, db, amina.ID, "MH20250601AAAA", constants.OrderStatusPending, &cbd.ID, base)
	createRepoOrder(t, db, amina.ID, "MH20250602BBBB", constants.OrderStatusPaid, nil, base.Add(24*time.Hour))
	createRepoOrder(t, db, otieno.ID, "MH20250603CCCC", constants.OrderStatusPending, nil, base.Add(48*time.Hour))

	orders, total, err := repo.ListAdmin(OrderListFilter{})
	if err != nil {
		t.Fatalf("ListAdmin: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 orders, got %d", total)
	}
	if orders[0].OrderNo != "MH20250603CCCC" {
		t.Fatalf("expected newest order first, got %s", orders[0].OrderNo)
	}
	if orders[0].User == nil || orders[0].User.Email != "otieno@modahaus.local" {
		t.Fatalf("buyer not preloaded: %+v", orders[0].User)
	}

	// 订单号模糊匹配
	_, total, err = repo.ListAdmin(OrderListFilter{OrderNo: "0602"})
	if err != nil {
		t.Fatalf("ListAdmin by order no: %v", err)
	}
	if total != 1 {
		t.Fatalf("order no should match substring, got %d", total)
	}

	orders, total, err = repo.ListAdmin(OrderListFilter{PickupLocationID: cbd.ID})
	if err != nil {
		t.Fatalf("ListAdmin by pickup location: %v", err)
	}
	if total != 1 || orders[0].OrderNo != "MH20250601AAAA" {
		t.Fatalf("expected 1 order at pickup location, got %d", total)
	}
	if orders[0].PickupLocation == nil || orders[0].PickupLocation.Name != "CBD Pickup Station" {
		t.Fatalf("pickup location not preloaded")
	}

	_, total, err = repo.ListAdmin(OrderListFilter{BuyerEmail: "amina"})
	if err != nil {
		t.Fatalf("ListAdmin by buyer email: %v", err)
	}
	if total != 2 {
		t.Fatalf("buyer email should match substring, got %d", total)
	}

	_, total, err = repo.ListAdmin(OrderListFilter{BuyerEmail: "amina", Status: constants.OrderStatusPaid})
	if err != nil {
		t.Fatalf("ListAdmin combined filters: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 paid order for buyer, got %d", total)
	}

	from := base.Add(12 * time.Hour)
	to := base.Add(36 * time.Hour)
	orders, total, err = repo.ListAdmin(OrderListFilter{CreatedFrom: &from, CreatedTo: &to})
	if err != nil {
		t.Fatalf("ListAdmin date range: %v", err)
	}
	if total != 1 || orders[0].OrderNo != "MH20250602BBBB" {
		t.Fatalf("expected 1 order in range, got %d", total)
	}
}

func TestOrderListByUser_ScopedToBuyer(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewOrderRepository(db)

	amina := createRepoUser(t, db, "amina@modahaus.local", "Amina", constants.RoleBuyer)
	otieno := createRepoUser(t, db, "otieno@modahaus.local", "Otieno", constants.RoleBuyer)

	now := time.Now()
	createRepoOrder(t, db, amina.ID, "MH20250601AAAA", constants.OrderStatusPending, nil, now.Add(-2*time.Hour))
	createRepoOrder(t, db, amina.ID, "MH20250602BBBB", constants.OrderStatusPaid, nil, now.Add(-time.Hour))
	createRepoOrder(t, db, otieno.ID, "MH20250603CCCC", constants.OrderStatusPending, nil, now)

	orders, total, err := repo.ListByUser(OrderListFilter{UserID: amina.ID})
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 orders for buyer, got %d", total)
	}
	for _, o := range orders {
		if o.UserID != amina.ID {
			t.Fatalf("order %s belongs to user %d", o.OrderNo, o.UserID)
		}
	}

	_, total, err = repo.ListByUser(OrderListFilter{UserID: amina.ID, Status: constants.OrderStatusPaid})
	if err != nil {
		t.Fatalf("ListByUser by status: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 paid order, got %d", total)
	}
}

func TestResolveReceiverEmailByOrderID(t *testing.T) {
	db := newRepositoryTestDB(t)
	repo := NewOrderRepository(db)

	amina := createRepoUser(t, db, "amina@modahaus.local", "Amina", constants.RoleBuyer)
	order := createRepoOrder(t, db, amina.ID, "MH20250601AAAA", constants.OrderStatusPending, nil, time.Now())

	email, err := repo.ResolveReceiverEmailByOrderID(order.ID)
	if err != nil {
		t.Fatalf("ResolveReceiverEmailByOrderID: %v", err)
	}
	if email != "amina@modahaus.local" {
		t.Fatalf("unexpected email: %s", email)
	}

	email, err = repo.ResolveReceiverEmailByOrderID(0)
	if err != nil {
		t.Fatalf("zero order id: %v", err)
	}
	if email != "" {
		t.Fatalf("expected empty email for zero id, got %s", email)
	}

	email, err = repo.ResolveReceiverEmailByOrderID(9999)
	if err != nil {
		t.Fatalf("unknown order id: %v", err)
	}
	if email != "" {
		t.Fatalf("expected empty email for unknown order, got %s", email)
	}
}
