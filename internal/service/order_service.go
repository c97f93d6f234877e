package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/modahaus-api/internal/config"
	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/logger"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/queue"
	"github.com/modahaus-api/internal/repository"

	"gorm.io/gorm"
)

// allowedTransitions 订单状态转换表
// paid 与 cancelled 为终态，目标状态与当前相同时视为幂等空操作。
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusReadyForPickup: true,
		constants.OrderStatusPaid:           true,
		constants.OrderStatusCancelled:      true,
	},
	constants.OrderStatusReadyForPickup: {
		constants.OrderStatusPaid:      true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusPaid:      {},
	constants.OrderStatusCancelled: {},
}

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	UserID           uint
	PickupLocationID *uint
}

// OrderService 订单服务
type OrderService struct {
	cfg          *config.Config
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	locationRepo repository.PickupLocationRepository
	queueClient  *queue.Client
	emailService *EmailService
}

// NewOrderService 创建订单服务
func NewOrderService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	locationRepo repository.PickupLocationRepository,
	queueClient *queue.Client,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		cfg:          cfg,
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		locationRepo: locationRepo,
		queueClient:  queueClient,
		emailService: emailService,
	}
}

// PlaceOrder 从购物车下单
// 自提点必填且须处于启用状态。订单、订单项写入与购物车清空在同一事务内完成；
// 价格取下单时刻商品单价快照；已被删除的商品从结算中剔除。
// 确认邮件为尽力而为，失败只记录日志。
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrNotFound
	}

	if input.PickupLocationID == nil || *input.PickupLocationID == 0 {
		return nil, ErrPickupLocationRequired
	}
	if s.locationRepo != nil {
		location, err := s.locationRepo.GetByID(*input.PickupLocationID)
		if err != nil {
			return nil, err
		}
		if location == nil || !location.IsActive {
			return nil, ErrPickupLocationNotFound
		}
	}

	cartItems, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var orderItems []models.OrderItem
	total := models.Money{}
	for _, item := range cartItems {
		product := item.Product
		if product == nil || product.ID == 0 {
			continue
		}
		lineTotal := product.Price.MulInt(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			TotalPrice:  lineTotal,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		total = total.AddMoney(lineTotal)
	}
	if len(orderItems) == 0 {
		return nil, ErrCartEmpty
	}

	orderNo, err := s.resolveOrderNo()
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:          orderNo,
		UserID:           input.UserID,
		Status:           constants.OrderStatusPending,
		Currency:         s.resolveCurrency(),
		TotalAmount:      total,
		PickupLocationID: input.PickupLocationID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		return nil, err
	}
	order.Items = orderItems

	s.enqueueOrderConfirmationEmail(order.ID)
	return order, nil
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrNotFound
	}
	return s.orderRepo.ListByUser(filter)
}

// GetByIDAndUser 用户订单详情
func (s *OrderService) GetByIDAndUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetByID 管理端订单详情
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus 管理端更新订单状态
// 目标为 paid 时在同一事务内生成销售记录并扣减库存，
// (order_id, order_item_id) 唯一索引保证重复结算幂等。
func (s *OrderService) UpdateOrderStatus(orderID uint, targetStatus string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	target := strings.ToLower(strings.TrimSpace(targetStatus))
	if !constants.IsValidOrderStatus(target) {
		return nil, ErrOrderStatusInvalid
	}
	if order.Status == target {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderTransitionInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{"updated_at": now}

	switch target {
	case constants.OrderStatusReadyForPickup:
		updates["ready_at"] = now
		if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
			return nil, ErrOrderUpdateFailed
		}
		order.ReadyAt = &now
		s.enqueuePickupReadyEmail(order.ID)

	case constants.OrderStatusPaid:
		updates["paid_at"] = now
		sales, err := s.buildSales(order, now)
		if err != nil {
			return nil, ErrOrderUpdateFailed
		}
		err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
			orderRepo := s.orderRepo.WithTx(tx)
			saleRepo := s.saleRepo.WithTx(tx)
			productRepo := s.productRepo.WithTx(tx)
			if err := orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
				return err
			}
			if err := saleRepo.CreateIgnoreDuplicates(sales); err != nil {
				return err
			}
			// 结算时扣减库存；库存不足不阻塞结算，只记录日志
			for _, item := range order.Items {
				affected, err := productRepo.DecrementStock(item.ProductID, item.Quantity)
				if err != nil {
					return err
				}
				if affected == 0 {
					logger.Warnw("order_paid_stock_decrement_skipped",
						"order_id", order.ID,
						"product_id", item.ProductID,
						"quantity", item.Quantity,
					)
				}
			}
			return nil
		})
		if err != nil {
			return nil, ErrOrderUpdateFailed
		}
		order.PaidAt = &now

	case constants.OrderStatusCancelled:
		updates["cancelled_at"] = now
		if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
			return nil, ErrOrderUpdateFailed
		}
		order.CancelledAt = &now

	default:
		return nil, ErrOrderStatusInvalid
	}

	order.Status = target
	order.UpdatedAt = now
	return order, nil
}

// buildSales 按订单项生成销售记录，卖家从商品行解析
func (s *OrderService) buildSales(order *models.Order, soldAt time.Time) ([]models.Sale, error) {
	if len(order.Items) == 0 {
		return nil, nil
	}
	productIDs := make([]uint, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	sellerByProduct := make(map[uint]uint, len(products))
	for _, product := range products {
		sellerByProduct[product.ID] = product.SellerID
	}

	sales := make([]models.Sale, 0, len(order.Items))
	for _, item := range order.Items {
		sales = append(sales, models.Sale{
			OrderID:     order.ID,
			OrderItemID: item.ID,
			ProductID:   item.ProductID,
			SellerID:    sellerByProduct[item.ProductID],
			BuyerID:     order.UserID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			TotalPrice:  item.TotalPrice,
			SoldAt:      soldAt,
			CreatedAt:   soldAt,
			UpdatedAt:   soldAt,
		})
	}
	return sales, nil
}

func (s *OrderService) enqueueOrderConfirmationEmail(orderID uint) {
	if skipped, err := enqueueOrderConfirmationEmailIfEligible(s.orderRepo, s.queueClient, s.emailService, orderID); err != nil {
		logger.Warnw("order_enqueue_confirmation_email_failed",
			"order_id", orderID,
			"skipped", skipped,
			"error", err,
		)
	}
}

func (s *OrderService) enqueuePickupReadyEmail(orderID uint) {
	if skipped, err := enqueuePickupReadyEmailIfEligible(s.orderRepo, s.queueClient, s.emailService, orderID); err != nil {
		logger.Warnw("order_enqueue_pickup_ready_email_failed",
			"order_id", orderID,
			"skipped", skipped,
			"error", err,
		)
	}
}

func (s *OrderService) resolveCurrency() string {
	if s.cfg != nil {
		if currency := strings.TrimSpace(s.cfg.Shop.Currency); currency != "" {
			return currency
		}
	}
	return constants.SiteCurrency
}

// resolveOrderNo 生成订单号并校验唯一，碰撞时重新生成
func (s *OrderService) resolveOrderNo() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		orderNo := s.generateOrderNo()
		existing, err := s.orderRepo.GetByOrderNo(orderNo)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return orderNo, nil
		}
	}
	return "", ErrOrderNoExhausted
}

func (s *OrderService) generateOrderNo() string {
	prefix := "MH"
	if s.cfg != nil {
		if p := strings.TrimSpace(s.cfg.Shop.OrderNoPrefix); p != "" {
			prefix = p
		}
	}
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s%s%s", prefix, now, randNumeric(6))
}

func isTransitionAllowed(current, target string) bool {
	if current == target {
		return true
	}
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
