package handler

import (
	"marketplace-settlement/internal/adapter/http/dto"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles vendor wallet endpoints.
type WalletHandler struct {
	ledgerSvc    ports.LedgerService
	reportingSvc ports.ReportingService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService, reportingSvc ports.ReportingService) *WalletHandler {
	return &WalletHandler{
		ledgerSvc:    ledgerSvc,
		reportingSvc: reportingSvc,
	}
}

// GetBalance handles GET /api/v1/vendors/:vendor_id/wallet.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}

	balance, err := h.reportingSvc.GetWalletBalance(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletBalanceResponse{
		VendorID: vendorID,
		Balance:  balance,
	})
}

// ListTransactions handles GET /api/v1/vendors/:vendor_id/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}

	page, pageSize := pagination(c)
	items, total, err := h.reportingSvc.ListWalletTransactions(c.Request.Context(), vendorID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	})
}

// Topup handles POST /api/v1/vendors/:vendor_id/wallet/topup.
func (h *WalletHandler) Topup(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}

	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, wtx, err := h.ledgerSvc.Credit(c.Request.Context(), ports.LedgerEntryRequest{
		VendorID:  vendorID,
		Amount:    req.Amount,
		Reference: req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TopupResponse{
		Wallet:      wallet,
		Transaction: wtx,
	})
}

// VerifyIntegrity handles GET /api/v1/vendors/:vendor_id/wallet/integrity.
// It recomputes the balance from the transaction log and reports any
// discrepancy without repairing it.
func (h *WalletHandler) VerifyIntegrity(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}

	report, err := h.ledgerSvc.VerifyBalanceIntegrity(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}
