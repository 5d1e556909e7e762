package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/invtrack/inventory-ledger-api/internal/api/handler/v1"
	"github.com/invtrack/inventory-ledger-api/internal/api/middleware"
	"github.com/invtrack/inventory-ledger-api/internal/config"
	"github.com/invtrack/inventory-ledger-api/internal/pkg/idgen"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
	"github.com/invtrack/inventory-ledger-api/internal/repository/dao"
	"github.com/invtrack/inventory-ledger-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	ids := idgen.UUID{}

	authHandler := s.initAuthHandler(db, ids)
	itemHandler, supplierHandler := s.initCatalogHandlers(db, ids)
	stockHandler := s.initStockHandler(db, ids)
	s.MountHandlers(authHandler, itemHandler, supplierHandler, stockHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB, ids idgen.Generator) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo, ids)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initCatalogHandlers(db *gorm.DB, ids idgen.Generator) (*v1.ItemHandler, *v1.SupplierHandler) {
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	supplierRepo := repository.NewSupplierRepository(dao.NewSupplierDAO(db))
	svc := service.NewCatalogService(itemRepo, supplierRepo, ids)

	return v1.NewItemHandler(svc), v1.NewSupplierHandler(svc)
}

func (s *Server) initStockHandler(db *gorm.DB, ids idgen.Generator) *v1.StockHandler {
	stockRepo := repository.NewStockRepository(dao.NewStockDAO(db), dao.NewItemDAO(db), dao.NewSupplierDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))

	ledgerSvc := service.NewLedgerService(stockRepo, ids, nil)
	querySvc := service.NewQueryService(stockRepo, s.Config.Inventory.LowStockThreshold)
	userSvc := service.NewUserService(userRepo)

	return v1.NewStockHandler(ledgerSvc, querySvc, userSvc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, itemHandler *v1.ItemHandler, supplierHandler *v1.SupplierHandler, stockHandler *v1.StockHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/items", itemHandler.HandleListItems)
		authenticated.POST("/items", itemHandler.HandleCreateItem)
		authenticated.GET("/items/:itemID", itemHandler.HandleGetItem)
		authenticated.PUT("/items/:itemID", itemHandler.HandleUpdateItem)

		authenticated.GET("/suppliers", supplierHandler.HandleListSuppliers)
		authenticated.POST("/suppliers", supplierHandler.HandleCreateSupplier)

		authenticated.GET("/stock", stockHandler.HandleGetStockLevels)
		authenticated.GET("/stock/low", stockHandler.HandleGetLowStock)
		authenticated.GET("/stock/:itemID", stockHandler.HandleGetItemStock)
		authenticated.GET("/transactions", stockHandler.HandleGetTransactions)
		authenticated.POST("/transactions", stockHandler.HandleCommitTransaction)
		authenticated.GET("/dashboard", stockHandler.HandleGetDashboard)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
