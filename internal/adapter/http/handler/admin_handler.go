package handler

import (
	"context"

	"marketplace-settlement/internal/adapter/http/dto"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles platform-operator endpoints.
type AdminHandler struct {
	settlementSvc ports.SettlementService
	reportingSvc  ports.ReportingService
	ledgerSvc     ports.LedgerService
	walletRepo    ports.WalletRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(settlementSvc ports.SettlementService, reportingSvc ports.ReportingService, ledgerSvc ports.LedgerService, walletRepo ports.WalletRepository) *AdminHandler {
	return &AdminHandler{
		settlementSvc: settlementSvc,
		reportingSvc:  reportingSvc,
		ledgerSvc:     ledgerSvc,
		walletRepo:    walletRepo,
	}
}

// ListCommissions handles GET /api/v1/admin/commissions. Unlike the vendor
// view it can span all vendors.
func (h *AdminHandler) ListCommissions(c *gin.Context) {
	params := ports.CommissionListParams{}
	params.Page, params.PageSize = pagination(c)

	if v := c.Query("vendor_id"); v != "" {
		vendorID, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
			return
		}
		params.VendorID = &vendorID
	}
	if s := c.Query("status"); s != "" {
		status := domain.CommissionStatus(s)
		params.Status = &status
	}

	items, total, err := h.reportingSvc.ListCommissions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CommissionListResponse{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages(total, params.PageSize),
	})
}

// Waive handles POST /api/v1/admin/commissions/:id/waive.
func (h *AdminHandler) Waive(c *gin.Context) {
	h.close(c, h.settlementSvc.Waive)
}

// Dispute handles POST /api/v1/admin/commissions/:id/dispute.
func (h *AdminHandler) Dispute(c *gin.Context) {
	h.close(c, h.settlementSvc.Dispute)
}

func (h *AdminHandler) close(c *gin.Context, fn func(ctx context.Context, id uuid.UUID, actor, reason string) (*domain.Commission, error)) {
	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("commission"))
		return
	}

	var req dto.CloseCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	commission, err := fn(c.Request.Context(), commissionID, req.Actor, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, commission)
}

// LockWallet handles PUT /api/v1/admin/wallets/:wallet_id/lock.
func (h *AdminHandler) LockWallet(c *gin.Context) {
	walletID, err := uuid.Parse(c.Param("wallet_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("wallet"))
		return
	}

	var req dto.LockWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Locked && (req.Reason == nil || *req.Reason == "") {
		response.Error(c, apperror.Validation("locking a wallet requires a reason"))
		return
	}

	if err := h.walletRepo.SetLock(c.Request.Context(), walletID, req.Locked, req.Reason); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"wallet_id": walletID, "locked": req.Locked})
}

// ReverseTransaction handles POST /api/v1/admin/vendors/:vendor_id/transactions/:id/reverse.
// The correction path for a wrongly applied credit or debit: the original
// is flagged reversed and a compensating entry restores the balance.
func (h *AdminHandler) ReverseTransaction(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("transaction"))
		return
	}

	var req dto.ReverseTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, wtx, err := h.ledgerSvc.Reverse(c.Request.Context(), vendorID, transactionID, req.Actor, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"wallet":      wallet,
		"transaction": wtx,
	})
}

// ResetBreaker handles POST /api/v1/admin/breaker/reset. Operator escape
// hatch for a breaker stuck open after the store recovered.
func (h *AdminHandler) ResetBreaker(c *gin.Context) {
	h.settlementSvc.ResetBreaker()
	response.OK(c, gin.H{"status": "reset"})
}
