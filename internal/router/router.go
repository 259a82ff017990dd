package router

import (
	"time"

	"github.com/layebamba/Fadj-MA/internal/config"
	"github.com/layebamba/Fadj-MA/internal/handler"
	"github.com/layebamba/Fadj-MA/internal/middleware"
	"github.com/layebamba/Fadj-MA/internal/repository"
	"github.com/layebamba/Fadj-MA/internal/service"
	"github.com/layebamba/Fadj-MA/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	clientRepo := repository.NewClientRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg, rdb)
	groupSvc := service.NewGroupService(groupRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	medicineSvc := service.NewMedicineService(medicineRepo, groupRepo, supplierRepo)
	clientSvc := service.NewClientService(clientRepo)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	saleSvc := service.NewSaleService(saleRepo, medicineRepo, clientRepo, dispatcher)
	reportSvc := service.NewReportService(medicineRepo, groupRepo, supplierRepo, clientRepo, saleRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	groupsH := handler.NewGroupsHandler(groupSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	medicinesH := handler.NewMedicinesHandler(medicineSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	saleItemsH := handler.NewSaleItemsHandler(saleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Account — any authenticated user
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/profile", authH.GetProfile)
		v1.PATCH("/auth/profile", authH.UpdateProfile)
		v1.PUT("/auth/change-password", authH.ChangePassword)

		// Roles: user, pharmacist, admin — reads open to all authenticated,
		// catalog writes restricted to pharmacist/admin
		catalogWrite := middleware.RequireRole("pharmacist", "admin")

		v1.GET("/medicine-groups", groupsH.List)
		v1.GET("/medicine-groups/:id", groupsH.GetByID)
		groups := v1.Group("/medicine-groups", catalogWrite)
		{
			groups.POST("", groupsH.Create)
			groups.PUT("/:id", groupsH.Update)
			groups.DELETE("/:id", groupsH.Delete)
		}

		v1.GET("/suppliers", suppliersH.List)
		v1.GET("/suppliers/:id", suppliersH.GetByID)
		suppliers := v1.Group("/suppliers", catalogWrite)
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		v1.GET("/medicines", medicinesH.List)
		v1.GET("/medicines/low_stock", medicinesH.LowStock)
		v1.GET("/medicines/expiring_soon", medicinesH.ExpiringSoon)
		v1.GET("/medicines/expired", medicinesH.Expired)
		v1.GET("/medicines/:id", medicinesH.GetByID)
		medicines := v1.Group("/medicines", catalogWrite)
		{
			medicines.POST("", medicinesH.Create)
			medicines.PUT("/:id", medicinesH.Update)
			medicines.DELETE("/:id", medicinesH.Delete)
		}

		// Clients — any authenticated user
		v1.POST("/clients", clientsH.Create)
		v1.GET("/clients", clientsH.List)
		v1.GET("/clients/:id", clientsH.GetByID)
		v1.PUT("/clients/:id", clientsH.Update)
		v1.DELETE("/clients/:id", middleware.RequireRole("pharmacist", "admin"), clientsH.Delete)

		// Sales — append-only
		v1.POST("/sales", salesH.Create)
		v1.GET("/sales", salesH.List)
		v1.GET("/sales/today", salesH.Today)
		v1.GET("/sales/stats", salesH.Stats)
		v1.GET("/sales/:id", salesH.GetByID)

		v1.GET("/sale-items", saleItemsH.List)
		v1.GET("/sale-items/by_medicine", saleItemsH.ByMedicine)

		// Reports
		v1.GET("/reports/dashboard", middleware.RequireRole("pharmacist", "admin"), reportsH.Dashboard)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
