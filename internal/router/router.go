package router

import (
	"fmt"
	"strings"

	"github.com/modahaus-api/internal/cache"
	"github.com/modahaus-api/internal/config"
	adminhandlers "github.com/modahaus-api/internal/http/handlers/admin"
	publichandlers "github.com/modahaus-api/internal/http/handlers/public"
	"github.com/modahaus-api/internal/logger"
	"github.com/modahaus-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "mh"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口（可选鉴权：带 token 时附带用户评分）
		public := apiV1.Group("/public")
		public.Use(OptionalUserJWTMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/products/:id/rating", publicHandler.GetProductRating)
			public.GET("/comments", publicHandler.GetComments)
			public.GET("/pickup-locations", publicHandler.GetPickupLocations)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权 + RBAC）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RBACMiddleware(c.AuthzService))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.PUT("/me/profile", publicHandler.UpdateUserProfile)
			user.PUT("/me/password", publicHandler.ChangeUserPassword)
			user.POST("/me/onboarding", publicHandler.CompleteOnboarding)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PATCH("/cart/items/:id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.POST("/orders", publicHandler.PlaceOrder)
			user.GET("/orders", publicHandler.ListMyOrders)
			user.GET("/orders/:id", publicHandler.GetMyOrder)

			user.POST("/ratings", publicHandler.SubmitRating)
			user.POST("/comments", publicHandler.CreateComment)
			user.DELETE("/comments/:id", publicHandler.DeleteComment)

			// 卖家接口
			user.GET("/seller/products", publicHandler.ListSellerProducts)
			user.POST("/seller/products", publicHandler.CreateSellerProduct)
			user.PUT("/seller/products/:id", publicHandler.UpdateSellerProduct)
			user.DELETE("/seller/products/:id", publicHandler.DeleteSellerProduct)
			user.GET("/seller/sales", publicHandler.ListSellerSales)

			// 管理员接口
			user.GET("/admin/orders", adminHandler.AdminListOrders)
			user.GET("/admin/orders/:id", adminHandler.AdminGetOrder)
			user.PATCH("/admin/orders/:id", adminHandler.AdminUpdateOrderStatus)

			user.GET("/admin/sales", adminHandler.AdminListSales)

			user.GET("/admin/users", adminHandler.AdminListUsers)
			user.PUT("/admin/users/:id/role", adminHandler.AdminSetUserRole)
			user.PUT("/admin/users/batch-status", adminHandler.AdminSetUserStatus)

			user.GET("/admin/pickup-locations", adminHandler.AdminListPickupLocations)
			user.POST("/admin/pickup-locations", adminHandler.AdminCreatePickupLocation)
			user.PUT("/admin/pickup-locations/:id", adminHandler.AdminUpdatePickupLocation)
			user.DELETE("/admin/pickup-locations/:id", adminHandler.AdminDeletePickupLocation)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
