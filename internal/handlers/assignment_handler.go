package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/services"
)

// AssignmentHandler handles personnel assignments and expenditures.
type AssignmentHandler struct {
	assignmentService  services.AssignmentServicer
	expenditureService services.ExpenditureServicer
	auditService       services.AuditServicer
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(
	assignmentService services.AssignmentServicer,
	expenditureService services.ExpenditureServicer,
	auditService services.AuditServicer,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService:  assignmentService,
		expenditureService: expenditureService,
		auditService:       auditService,
	}
}

// CreateAssignmentRequest represents the request payload for issuing stock to personnel.
type CreateAssignmentRequest struct {
	Reference      string `json:"reference" binding:"omitempty,max=64"`
	AssetID        string `json:"assetId" binding:"required,max=36"`
	BaseID         string `json:"baseId" binding:"required,max=36"`
	PersonnelName  string `json:"personnelName" binding:"required,min=1,max=255"`
	PersonnelID    string `json:"personnelId" binding:"required,min=1,max=64"`
	Quantity       int64  `json:"quantity" binding:"required,gt=0"`
	AssignmentDate string `json:"assignmentDate"`
}

// CreateExpenditureRequest represents the request payload for writing off stock.
type CreateExpenditureRequest struct {
	Reference       string `json:"reference" binding:"omitempty,max=64"`
	AssetID         string `json:"assetId" binding:"required,max=36"`
	BaseID          string `json:"baseId" binding:"required,max=36"`
	Quantity        int64  `json:"quantity" binding:"required,gt=0"`
	Reason          string `json:"reason" binding:"required,min=1,max=1000"`
	ExpenditureDate string `json:"expenditureDate"`
}

// CreateAssignment issues stock to a named person.
// @Summary     Assign assets to personnel
// @Description Move available units into the assigned counter. Fails with INSUFFICIENT_QUANTITY when current minus assigned is too small.
// @Tags        assignments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       Idempotency-Key header string false "Client reference"
// @Param       request body CreateAssignmentRequest true "Assignment details"
// @Success     201 {object} map[string]interface{} "Assignment created"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient quantity"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Asset not found in this base"
// @Failure     409 {object} ErrorResponse "Duplicate reference"
// @Router      /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := optionalDate(req.AssignmentDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assignment, event, err := h.assignmentService.CreateAssignment(policy, services.AssignmentInput{
		Reference:      requestReference(c, req.Reference),
		AssetID:        req.AssetID,
		BaseID:         req.BaseID,
		PersonnelName:  req.PersonnelName,
		PersonnelID:    req.PersonnelID,
		Quantity:       req.Quantity,
		AssignmentDate: date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(event, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"assignment": assignment})
}

// ReturnAssignment marks an active assignment as returned.
// @Summary     Return an assignment
// @Description Release the assigned units back to available stock. A second return fails.
// @Tags        assignments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Assignment ID"
// @Success     200 {object} map[string]interface{} "Assignment returned"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Assignment not found"
// @Failure     409 {object} ErrorResponse "Assignment already returned"
// @Router      /assignments/{id}/return [put]
func (h *AssignmentHandler) ReturnAssignment(c *gin.Context) {
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

	assignment, event, err := h.assignmentService.ReturnAssignment(policy, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(event, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

// ListAssignments returns assignments visible to the caller.
// @Summary     List assignments
// @Tags        assignments
// @Produce     json
// @Security    BearerAuth
// @Param       baseId    query string false "Base ID"
// @Param       status    query string false "active or returned"
// @Param       startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate   query string false "End date (YYYY-MM-DD or RFC3339)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       pageSize  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Paginated assignments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
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
	var status AssignmentStatusQuery
	if err := bindQuery(c, &status); err != nil {
		respondWithError(c, err)
		return
	}
	filter.Status = status.Status

	result, err := h.assignmentService.ListAssignments(policy, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateExpenditure writes off consumed or destroyed stock.
// @Summary     Record an expenditure
// @Tags        assignments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       Idempotency-Key header string false "Client reference"
// @Param       request body CreateExpenditureRequest true "Expenditure details"
// @Success     201 {object} map[string]interface{} "Expenditure recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient quantity"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Asset not found in this base"
// @Failure     409 {object} ErrorResponse "Duplicate reference"
// @Router      /assignments/expenditures [post]
func (h *AssignmentHandler) CreateExpenditure(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := optionalDate(req.ExpenditureDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenditure, event, err := h.expenditureService.CreateExpenditure(policy, services.ExpenditureInput{
		Reference:       requestReference(c, req.Reference),
		AssetID:         req.AssetID,
		BaseID:          req.BaseID,
		Quantity:        req.Quantity,
		Reason:          req.Reason,
		ExpenditureDate: date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(event, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"expenditure": expenditure})
}

// ListExpenditures returns expenditures visible to the caller.
// @Summary     List expenditures
// @Tags        assignments
// @Produce     json
// @Security    BearerAuth
// @Param       baseId    query string false "Base ID"
// @Param       startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate   query string false "End date (YYYY-MM-DD or RFC3339)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       pageSize  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Paginated expenditures"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /assignments/expenditures [get]
func (h *AssignmentHandler) ListExpenditures(c *gin.Context) {
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

	result, err := h.expenditureService.ListExpenditures(policy, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
