package main

import (
	"log"
	"strings"

	"github.com/modahaus-api/internal/authz"
	"github.com/modahaus-api/internal/config"
	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/logger"
	"github.com/modahaus-api/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 初始化内置角色策略
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		stdLog.Fatalf("Failed to init authz: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		stdLog.Fatalf("Failed to bootstrap builtin roles: %v", err)
	}

	// 默认管理员
	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	// 示例卖家与买家
	seller := ensureUser(stdLog, "seller@modahaus.local", "Seller123", "Wanjiku Fashion", constants.RoleSeller)
	ensureUser(stdLog, "buyer@modahaus.local", "Buyer1234", "Amina", constants.RoleBuyer)

	// 自提点
	locations := []models.PickupLocation{
		{Name: "CBD Pickup Station", Address: "Kimathi Street 12", City: "Nairobi", Phone: "+254700000001", IsActive: true},
		{Name: "Westlands Hub", Address: "Waiyaki Way 45", City: "Nairobi", Phone: "+254700000002", IsActive: true},
		{Name: "Nyali Collection Point", Address: "Links Road 8", City: "Mombasa", Phone: "+254700000003", IsActive: true},
	}
	for _, loc := range locations {
		var existing models.PickupLocation
		if err := models.DB.Where("name = ?", loc.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&loc).Error; err != nil {
				stdLog.Printf("Failed to create pickup location %s: %v", loc.Name, err)
			} else {
				stdLog.Printf("Created pickup location: %s", loc.Name)
			}
		} else {
			stdLog.Printf("Pickup location already exists: %s", loc.Name)
		}
	}

	if seller == nil {
		stdLog.Printf("Seed seller missing, skipping sample products")
		return
	}

	// 示例商品
	products := []models.Product{
		{
			SellerID:    seller.ID,
			Name:        "Ankara Print Dress",
			Description: "Handmade ankara dress with a fitted waist and flared skirt.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(2499.00)),
			Quantity:    15,
			Category:    "dresses",
			Brand:       "Wanjiku Fashion",
			Color:       "orange",
			Size:        "M",
			Material:    "ankara",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1539008835657-9e8e9680c956?w=800",
			}),
		},
		{
			SellerID:    seller.ID,
			Name:        "Maasai Beaded Sandals",
			Description: "Leather sandals finished with traditional Maasai beadwork.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1200.00)),
			Quantity:    30,
			Category:    "shoes",
			Brand:       "Wanjiku Fashion",
			Color:       "brown",
			Size:        "39",
			Material:    "leather",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1603487742131-4160ec999306?w=800",
			}),
		},
		{
			SellerID:    seller.ID,
			Name:        "Kitenge Tote Bag",
			Description: "Roomy everyday tote sewn from kitenge fabric with canvas lining.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(850.00)),
			Quantity:    50,
			Category:    "bags",
			Brand:       "Wanjiku Fashion",
			Color:       "multi",
			Material:    "kitenge",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1591561954557-26941169b49e?w=800",
			}),
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("seller_id = ? AND name = ?", product.SellerID, product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	stdLog.Printf("Seed finished")
}

func ensureUser(stdLog *log.Logger, email, password, displayName, role string) *models.User {
	normalized := strings.ToLower(strings.TrimSpace(email))
	var existing models.User
	if err := models.DB.Where("email = ?", normalized).First(&existing).Error; err == nil {
		stdLog.Printf("User already exists: %s", normalized)
		return &existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash password for %s: %v", normalized, err)
		return nil
	}
	user := models.User{
		Email:        normalized,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Role:         role,
		Status:       constants.UserStatusActive,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		stdLog.Printf("Failed to create user %s: %v", normalized, err)
		return nil
	}
	stdLog.Printf("Created user: %s (%s)", normalized, role)
	return &user
}
