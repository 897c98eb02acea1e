package handler

import (
	"marketplace-settlement/internal/adapter/http/middleware"
	"marketplace-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SettlementSvc  ports.SettlementService
	ReportingSvc   ports.ReportingService
	LedgerSvc      ports.LedgerService
	WalletRepo     ports.WalletRepository
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	settlementHandler := NewSettlementHandler(deps.SettlementSvc, deps.ReportingSvc)
	walletHandler := NewWalletHandler(deps.LedgerSvc, deps.ReportingSvc)
	adminHandler := NewAdminHandler(deps.SettlementSvc, deps.ReportingSvc, deps.LedgerSvc, deps.WalletRepo)

	v1 := r.Group("/api/v1")

	// --- Internal routes (order state machine) ---
	internal := v1.Group("/internal")
	{
		internal.POST("/orders/delivered", settlementHandler.RecordDelivery)
	}

	// --- Vendor routes ---
	vendors := v1.Group("/vendors/:vendor_id")
	{
		vendors.GET("/commissions", settlementHandler.ListCommissions)
		vendors.GET("/commissions/summary", settlementHandler.GetSummary)
		vendors.POST("/commissions/remit-batch", settlementHandler.RemitBatch)
		vendors.POST("/commissions/:id/remit", settlementHandler.Remit)

		vendors.GET("/wallet", walletHandler.GetBalance)
		vendors.GET("/wallet/transactions", walletHandler.ListTransactions)
		vendors.POST("/wallet/topup", walletHandler.Topup)
		vendors.GET("/wallet/integrity", walletHandler.VerifyIntegrity)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	{
		admin.GET("/commissions", adminHandler.ListCommissions)
		admin.POST("/commissions/:id/waive", adminHandler.Waive)
		admin.POST("/commissions/:id/dispute", adminHandler.Dispute)
		admin.PUT("/wallets/:wallet_id/lock", adminHandler.LockWallet)
		admin.POST("/vendors/:vendor_id/transactions/:id/reverse", adminHandler.ReverseTransaction)
		admin.POST("/breaker/reset", adminHandler.ResetBreaker)
	}

	return r
}
