package provider

import (
	"github.com/modahaus-api/internal/authz"
	"github.com/modahaus-api/internal/cache"
	"github.com/modahaus-api/internal/config"
	"github.com/modahaus-api/internal/logger"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/queue"
	"github.com/modahaus-api/internal/repository"
	"github.com/modahaus-api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo           repository.UserRepository
	ProductRepo        repository.ProductRepository
	CartRepo           repository.CartRepository
	OrderRepo          repository.OrderRepository
	SaleRepo           repository.SaleRepository
	RatingRepo         repository.RatingRepository
	CommentRepo        repository.CommentRepository
	PickupLocationRepo repository.PickupLocationRepository

	// Services
	AuthzService          *authz.Service
	UserAuthService       *service.UserAuthService
	UserAdminService      *service.UserAdminService
	EmailService          *service.EmailService
	ProductService        *service.ProductService
	CartService           *service.CartService
	OrderService          *service.OrderService
	RatingService         *service.RatingService
	CommentService        *service.CommentService
	PickupLocationService *service.PickupLocationService
	SaleService           *service.SaleService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SaleRepo = repository.NewSaleRepository(db)
	c.RatingRepo = repository.NewRatingRepository(db)
	c.CommentRepo = repository.NewCommentRepository(db)
	c.PickupLocationRepo = repository.NewPickupLocationRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.UserAdminService = service.NewUserAdminService(c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.RatingRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.Config, c.OrderRepo, c.CartRepo, c.ProductRepo, c.SaleRepo, c.PickupLocationRepo, c.QueueClient, c.EmailService)
	c.RatingService = service.NewRatingService(c.RatingRepo, c.ProductRepo)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.ProductRepo)
	c.PickupLocationService = service.NewPickupLocationService(c.PickupLocationRepo)
	c.SaleService = service.NewSaleService(c.SaleRepo)
}
