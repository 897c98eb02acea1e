package handler

import (
	"math"
	"strconv"

	"marketplace-settlement/internal/adapter/http/dto"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SettlementHandler handles delivery intake and vendor-facing commission
// endpoints.
type SettlementHandler struct {
	settlementSvc ports.SettlementService
	reportingSvc  ports.ReportingService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementSvc ports.SettlementService, reportingSvc ports.ReportingService) *SettlementHandler {
	return &SettlementHandler{
		settlementSvc: settlementSvc,
		reportingSvc:  reportingSvc,
	}
}

// RecordDelivery handles POST /api/v1/internal/orders/delivered. The order
// state machine calls it synchronously on the delivered transition; the
// call is idempotent on (order_id, vendor_id).
func (h *SettlementHandler) RecordDelivery(c *gin.Context) {
	var req dto.DeliveredOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.settlementSvc.RecordDelivery(c.Request.Context(), domain.DeliveredOrder{
		OrderID:        req.OrderID,
		VendorID:       req.VendorID,
		OrderAmount:    req.OrderAmount,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		OrderReference: req.OrderReference,
		DeliveredAt:    req.DeliveredAt.UTC(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.AlreadyRecorded {
		response.OK(c, result)
		return
	}
	response.Created(c, result)
}

// ListCommissions handles GET /api/v1/vendors/:vendor_id/commissions.
func (h *SettlementHandler) ListCommissions(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}

	params := ports.CommissionListParams{VendorID: &vendorID}
	params.Page, params.PageSize = pagination(c)
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

// GetSummary handles GET /api/v1/vendors/:vendor_id/commissions/summary.
func (h *SettlementHandler) GetSummary(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}

	summary, err := h.reportingSvc.GetCommissionSummary(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, summary)
}

// Remit handles POST /api/v1/vendors/:vendor_id/commissions/:id/remit.
func (h *SettlementHandler) Remit(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}
	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("commission"))
		return
	}

	// Body is optional; an empty one means the vendor acts for themselves.
	var req dto.RemitActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	actor := req.Actor
	if actor == "" {
		actor = vendorID.String()
	}

	result, err := h.settlementSvc.Remit(c.Request.Context(), ports.RemitRequest{
		CommissionID: commissionID,
		VendorID:     vendorID,
		ActorID:      actor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// RemitBatch handles POST /api/v1/vendors/:vendor_id/commissions/remit-batch.
// The batch is processed item by item; earlier successes stay committed when
// a later item fails, and the response reports each outcome.
func (h *SettlementHandler) RemitBatch(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("vendor"))
		return
	}

	var req dto.BulkRemitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	actor := req.Actor
	if actor == "" {
		actor = vendorID.String()
	}

	outcomes := h.settlementSvc.RemitMany(c.Request.Context(), vendorID, actor, req.CommissionIDs)
	response.OK(c, gin.H{"outcomes": outcomes})
}

// pagination reads page/page_size query parameters with the usual bounds.
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	return int(math.Ceil(float64(total) / float64(pageSize)))
}
