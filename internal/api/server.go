package api

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/toybridge/toybridge-api/internal/api/handler/v1"
	"github.com/toybridge/toybridge-api/internal/api/middleware"
	"github.com/toybridge/toybridge-api/internal/config"
	"github.com/toybridge/toybridge-api/internal/repository"
	"github.com/toybridge/toybridge-api/internal/repository/dao"
	"github.com/toybridge/toybridge-api/internal/service"
	"github.com/toybridge/toybridge-api/internal/sheet"
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

	authHandler := s.initAuthHandler()
	toyHandler := s.initToyHandler(db)
	schoolHandler := s.initSchoolHandler(db)
	stockHandler := s.initStockHandler(db)
	vendorOrderHandler := s.initVendorOrderHandler(db)
	schoolOrderHandler := s.initSchoolOrderHandler(db)
	otherProductHandler := s.initOtherProductHandler(db)
	s.MountHandlers(authHandler, toyHandler, schoolHandler, stockHandler,
		vendorOrderHandler, schoolOrderHandler, otherProductHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	svc := service.NewAuthService(s.Config.API)
	handler := v1.NewAuthHandler(svc)

	return handler
}

func (s *Server) initToyHandler(db *gorm.DB) *v1.ToyHandler {
	toyDAO := dao.NewToyDAO(db)
	repo := repository.NewToyRepository(toyDAO)
	stockRepo := repository.NewStockRepository(dao.NewStockDAO(db))
	svc := service.NewToyService(repo, stockRepo)
	handler := v1.NewToyHandler(svc)

	return handler
}

func (s *Server) initSchoolHandler(db *gorm.DB) *v1.SchoolHandler {
	schoolDAO := dao.NewSchoolDAO(db)
	repo := repository.NewSchoolRepository(schoolDAO)
	source := sheet.NewRegistrationWorkbook(s.Config.Sheets.RegistrationWorkbook)
	svc := service.NewSchoolService(repo, source)
	handler := v1.NewSchoolHandler(svc)

	return handler
}

func (s *Server) initStockHandler(db *gorm.DB) *v1.StockHandler {
	stockDAO := dao.NewStockDAO(db)
	repo := repository.NewStockRepository(stockDAO)
	toyRepo := repository.NewToyRepository(dao.NewToyDAO(db))
	orderRepo := repository.NewVendorOrderRepository(dao.NewVendorOrderDAO(db))
	svc := service.NewStockService(repo, toyRepo, orderRepo)
	handler := v1.NewStockHandler(svc)

	return handler
}

func (s *Server) initVendorOrderHandler(db *gorm.DB) *v1.VendorOrderHandler {
	orderDAO := dao.NewVendorOrderDAO(db)
	repo := repository.NewVendorOrderRepository(orderDAO)
	toyRepo := repository.NewToyRepository(dao.NewToyDAO(db))
	schoolRepo := repository.NewSchoolRepository(dao.NewSchoolDAO(db))
	stockSvc := service.NewStockService(
		repository.NewStockRepository(dao.NewStockDAO(db)), toyRepo, repo)
	ledger := sheet.NewOrderLedger(s.Config.Sheets.LedgerWorkbook)
	svc := service.NewVendorOrderService(repo, toyRepo, schoolRepo, stockSvc, ledger)
	handler := v1.NewVendorOrderHandler(svc)

	return handler
}

func (s *Server) initSchoolOrderHandler(db *gorm.DB) *v1.SchoolOrderHandler {
	orderDAO := dao.NewSchoolOrderDAO(db)
	repo := repository.NewSchoolOrderRepository(orderDAO)
	toyRepo := repository.NewToyRepository(dao.NewToyDAO(db))
	schoolRepo := repository.NewSchoolRepository(dao.NewSchoolDAO(db))
	svc := service.NewSchoolOrderService(repo, toyRepo, schoolRepo)
	handler := v1.NewSchoolOrderHandler(svc)

	return handler
}

func (s *Server) initOtherProductHandler(db *gorm.DB) *v1.OtherProductHandler {
	productDAO := dao.NewOtherProductDAO(db)
	repo := repository.NewOtherProductRepository(productDAO)
	orderRepo := repository.NewVendorOrderRepository(dao.NewVendorOrderDAO(db))
	svc := service.NewOtherProductService(repo, orderRepo)
	handler := v1.NewOtherProductHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	toyHandler *v1.ToyHandler,
	schoolHandler *v1.SchoolHandler,
	stockHandler *v1.StockHandler,
	vendorOrderHandler *v1.VendorOrderHandler,
	schoolOrderHandler *v1.SchoolOrderHandler,
	otherProductHandler *v1.OtherProductHandler,
) {
	const basePath = "/api/v1"

	s.Router.GET("/healthcheck", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/sign-in", authHandler.HandleSignIn)
	}

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	toys := s.Router.Group(basePath, verifyJWT)
	{
		toys.POST("/toys", toyHandler.HandleAddToy)
		toys.GET("/toys", toyHandler.HandleGetToys)
		toys.GET("/toys/:toyID", toyHandler.HandleGetToy)
		toys.PUT("/toys", toyHandler.HandleUpdateToy)
		toys.DELETE("/toys/:toyID", toyHandler.HandleDeleteToy)
	}

	schools := s.Router.Group(basePath, verifyJWT)
	{
		schools.POST("/school", schoolHandler.HandleImportSchools)
		schools.GET("/school", schoolHandler.HandleGetSchools)
		schools.GET("/school/:schoolID", schoolHandler.HandleGetSchool)
		schools.PUT("/school/:schoolID", schoolHandler.HandleUpdateSchool)
		schools.DELETE("/school/:schoolID", schoolHandler.HandleDeleteSchool)
	}

	stock := s.Router.Group(basePath, verifyJWT)
	{
		stock.GET("/stock", stockHandler.HandleGetStock)
		stock.GET("/stock/:toyID", stockHandler.HandleGetAvailable)
		stock.POST("/stock", stockHandler.HandleAssignStock)
		stock.POST("/stock/add", stockHandler.HandleAddStock)
		stock.POST("/stock/remove", stockHandler.HandleRemoveStock)
		stock.POST("/stock/check-available", stockHandler.HandleCheckAvailability)
		stock.DELETE("/stock/:toyID", stockHandler.HandleDeleteStock)
	}

	vendorOrders := s.Router.Group(basePath, verifyJWT)
	{
		vendorOrders.POST("/vendor-order/place", vendorOrderHandler.HandlePlaceOrder)
		vendorOrders.GET("/vendor-order", vendorOrderHandler.HandleGetOrders)
		vendorOrders.GET("/vendor-order/school/:schoolID", vendorOrderHandler.HandleGetOrdersBySchool)
		vendorOrders.GET("/vendor-order/:orderID", vendorOrderHandler.HandleGetOrder)
		vendorOrders.PUT("/vendor-order/:orderID", vendorOrderHandler.HandleUpdateOrder)
		vendorOrders.DELETE("/vendor-order/:orderID", vendorOrderHandler.HandleDeleteOrder)
	}

	schoolOrders := s.Router.Group(basePath, verifyJWT)
	{
		schoolOrders.POST("/school-order", schoolOrderHandler.HandlePlaceOrder)
		schoolOrders.GET("/school-order/school/:schoolID", schoolOrderHandler.HandleGetOrdersBySchool)
		schoolOrders.GET("/school-order/:orderID", schoolOrderHandler.HandleGetOrder)
		schoolOrders.PUT("/school-order/:orderID", schoolOrderHandler.HandleUpdateOrder)
		schoolOrders.DELETE("/school-order/:orderID", schoolOrderHandler.HandleDeleteOrder)
	}

	otherProducts := s.Router.Group(basePath, verifyJWT)
	{
		otherProducts.GET("/other-products/order/:orderID", otherProductHandler.HandleGetProducts)
		otherProducts.POST("/other-products/order/:orderID", otherProductHandler.HandleAddProduct)
		otherProducts.DELETE("/other-products/:productID", otherProductHandler.HandleDeleteProduct)
	}
}
