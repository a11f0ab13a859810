package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/services"
)

// PurchaseHandler handles purchase-related requests.
type PurchaseHandler struct {
	purchaseService services.PurchaseServicer
	auditService    services.AuditServicer
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService services.PurchaseServicer, auditService services.AuditServicer) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, auditService: auditService}
}

// CreatePurchaseRequest represents the request payload for recording a purchase.
type CreatePurchaseRequest struct {
	Reference    string `json:"reference" binding:"omitempty,max=64"`
	AssetID      string `json:"assetId" binding:"required,max=36"`
	BaseID       string `json:"baseId" binding:"required,max=36"`
	Quantity     int64  `json:"quantity" binding:"required,gt=0"`
	PurchaseDate string `json:"purchaseDate"`
	Notes        string `json:"notes" binding:"max=1000"`
}

// CreatePurchase records new stock received at a base.
// @Summary     Record a purchase
// @Description Increase an asset's current balance at a base. The reference (or Idempotency-Key header) makes retries safe.
// @Tags        purchases
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       Idempotency-Key header string false "Client reference"
// @Param       request body CreatePurchaseRequest true "Purchase details"
// @Success     201 {object} map[string]interface{} "Purchase recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Asset not found in this base"
// @Failure     409 {object} ErrorResponse "Duplicate reference"
// @Router      /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := optionalDate(req.PurchaseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	purchase, event, err := h.purchaseService.CreatePurchase(policy, services.PurchaseInput{
		Reference:    requestReference(c, req.Reference),
		AssetID:      req.AssetID,
		BaseID:       req.BaseID,
		Quantity:     req.Quantity,
		PurchaseDate: date,
		Notes:        req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(event, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"purchase": purchase})
}

// ListPurchases returns purchases visible to the caller.
// @Summary     List purchases
// @Description List purchases, newest first. Base commanders only see their own base.
// @Tags        purchases
// @Produce     json
// @Security    BearerAuth
// @Param       baseId        query string false "Base ID"
// @Param       equipmentType query string false "Asset type"
// @Param       startDate     query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate       query string false "End date (YYYY-MM-DD or RFC3339)"
// @Param       page          query int    false "Page number (default 1)"
// @Param       pageSize      query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Paginated purchases"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, page, err := bindRecordFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.purchaseService.ListPurchases(policy, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPurchase returns a single purchase.
// @Summary     Get a purchase
// @Tags        purchases
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Purchase ID"
// @Success     200 {object} map[string]interface{} "Purchase"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Purchase not found"
// @Router      /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	purchase, err := h.purchaseService.GetPurchase(policy, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase": purchase})
}
