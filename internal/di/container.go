package di

import (
	"github.com/QNhat1998/sales-api/internal/handler"
	"github.com/QNhat1998/sales-api/internal/repository"
	"github.com/QNhat1998/sales-api/internal/service"
	"github.com/QNhat1998/sales-api/pkg/database"
	"github.com/QNhat1998/sales-api/pkg/kafka"
)

// Container holds all dependencies for the sales API
type Container struct {
	// Infrastructure
	DB       *database.PostgresDB
	Producer *kafka.Producer

	// Repositories
	UserRepo     repository.UserRepository
	AccessRepo   repository.AccessTokenRepository
	RefreshRepo  repository.RefreshTokenRepository
	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	BrandRepo    repository.BrandRepository
	PaymentRepo  repository.PaymentRepository

	// Publishers
	EventPublisher service.EventPublisher

	// Services
	AuthService     service.AuthService
	UserService     service.UserService
	OrderService    service.OrderService
	ProductService  service.ProductService
	CategoryService service.CategoryService
	BrandService    service.BrandService
	PaymentService  service.PaymentService

	// Handlers
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	OrderHandler    *handler.OrderHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	BrandHandler    *handler.BrandHandler
	PaymentHandler  *handler.PaymentHandler
}

// ContainerConfig contains configuration for building the container.
// Producer may be nil when event publishing is disabled.
type ContainerConfig struct {
	DB         *database.PostgresDB
	Producer   *kafka.Producer
	AuthConfig *service.AuthServiceConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:       cfg.DB,
		Producer: cfg.Producer,
	}

	pool := cfg.DB.Pool()

	// Initialize repositories
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.AccessRepo = repository.NewPostgresAccessTokenRepository(pool)
	c.RefreshRepo = repository.NewPostgresRefreshTokenRepository(pool)
	c.OrderRepo = repository.NewPostgresOrderRepository(pool)
	c.ProductRepo = repository.NewPostgresProductRepository(pool)
	c.CategoryRepo = repository.NewPostgresCategoryRepository(pool)
	c.BrandRepo = repository.NewPostgresBrandRepository(pool)
	c.PaymentRepo = repository.NewPostgresPaymentRepository(pool)

	// Initialize publisher
	c.EventPublisher = service.NewEventPublisher(cfg.Producer)

	// Initialize services
	c.AuthService = service.NewAuthService(c.UserRepo, c.AccessRepo, c.RefreshRepo, cfg.AuthConfig)
	c.UserService = service.NewUserService(c.UserRepo, cfg.AuthConfig.BcryptCost)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.UserRepo, c.ProductRepo, c.EventPublisher)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.BrandRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.BrandService = service.NewBrandService(c.BrandRepo)
	c.PaymentService = service.NewPaymentService(c.PaymentRepo, c.OrderRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.OrderHandler = handler.NewOrderHandler(c.OrderService)
	c.ProductHandler = handler.NewProductHandler(c.ProductService)
	c.CategoryHandler = handler.NewCategoryHandler(c.CategoryService)
	c.BrandHandler = handler.NewBrandHandler(c.BrandService)
	c.PaymentHandler = handler.NewPaymentHandler(c.PaymentService)

	return c
}
