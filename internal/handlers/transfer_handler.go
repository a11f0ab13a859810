package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/services"
)

// TransferHandler handles inter-base transfer requests.
type TransferHandler struct {
	transferService services.TransferServicer
	auditService    services.AuditServicer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferService services.TransferServicer, auditService services.AuditServicer) *TransferHandler {
	return &TransferHandler{transferService: transferService, auditService: auditService}
}

// CreateTransferRequest represents the request payload for a transfer.
type CreateTransferRequest struct {
	Reference    string `json:"reference" binding:"omitempty,max=64"`
	AssetID      string `json:"assetId" binding:"required,max=36"`
	FromBase     string `json:"fromBase" binding:"required,max=36"`
	ToBase       string `json:"toBase" binding:"required,max=36"`
	Quantity     int64  `json:"quantity" binding:"required,gt=0"`
	TransferDate string `json:"transferDate"`
	Notes        string `json:"notes" binding:"max=1000"`
}

// CreateTransfer moves stock from one base to another.
// @Summary     Transfer assets between bases
// @Description Debit the source base and credit the matching asset line at the destination, creating it when missing. Both sides commit together.
// @Tags        transfers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       Idempotency-Key header string false "Client reference"
// @Param       request body CreateTransferRequest true "Transfer details"
// @Success     201 {object} map[string]interface{} "Transfer completed"
// @Failure     400 {object} ErrorResponse "Same base or insufficient quantity"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Asset not found in this base"
// @Failure     409 {object} ErrorResponse "Duplicate reference"
// @Router      /transfers [post]
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := optionalDate(req.TransferDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transfer, event, err := h.transferService.CreateTransfer(policy, services.TransferInput{
		Reference:    requestReference(c, req.Reference),
		AssetID:      req.AssetID,
		FromBaseID:   req.FromBase,
		ToBaseID:     req.ToBase,
		Quantity:     req.Quantity,
		TransferDate: date,
		Notes:        req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(event, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"transfer": transfer})
}

// ListTransfers returns transfers touching the caller's visible bases.
// @Summary     List transfers
// @Description A base filter matches transfers leaving or arriving at the base.
// @Tags        transfers
// @Produce     json
// @Security    BearerAuth
// @Param       baseId    query string false "Base ID (source or destination)"
// @Param       status    query string false "Transfer status"
// @Param       startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate   query string false "End date (YYYY-MM-DD or RFC3339)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       pageSize  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Paginated transfers"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transfers [get]
func (h *TransferHandler) ListTransfers(c *gin.Context) {
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
	var status TransferStatusQuery
	if err := bindQuery(c, &status); err != nil {
		respondWithError(c, err)
		return
	}
	filter.Status = status.Status

	result, err := h.transferService.ListTransfers(policy, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransfer returns a single transfer.
// @Summary     Get a transfer
// @Tags        transfers
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transfer ID"
// @Success     200 {object} map[string]interface{} "Transfer"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Transfer not found"
// @Router      /transfers/{id} [get]
func (h *TransferHandler) GetTransfer(c *gin.Context) {
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

	transfer, err := h.transferService.GetTransfer(policy, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transfer": transfer})
}
