package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/logger"
	"arsenal/internal/middleware"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
	"arsenal/internal/services"
	"arsenal/internal/uuid"
)

const (
	dateLayout        = "2006-01-02"
	idempotencyHeader = "Idempotency-Key"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// getPolicy returns the access policy computed by the auth middleware.
func getPolicy(c *gin.Context) (access.Policy, error) {
	policy, ok := middleware.PolicyFrom(c)
	if !ok {
		return access.Policy{}, apperrors.ErrUnauthorized
	}
	return policy, nil
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseDate accepts RFC3339 timestamps or bare YYYY-MM-DD dates and returns
// the instant in UTC. With endOfDay set, a bare date covers the whole day.
func parseDate(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"Invalid date "+value+", expected YYYY-MM-DD or RFC3339")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// optionalDate parses a record date from a request body. An empty value
// yields the zero time, which the services replace with the current time.
func optionalDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return parseDate(value, false)
}

// requestReference returns the client reference for a mutation, taken from
// the body or, failing that, the Idempotency-Key header.
func requestReference(c *gin.Context, fromBody string) string {
	if ref := strings.TrimSpace(fromBody); ref != "" {
		return ref
	}
	return strings.TrimSpace(c.GetHeader(idempotencyHeader))
}

// RecordQuery holds the query parameters shared by ledger list endpoints.
type RecordQuery struct {
	BaseID        string `form:"baseId" binding:"omitempty,max=36"`
	EquipmentType string `form:"equipmentType" binding:"omitempty,asset_type"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
}

// TransferStatusQuery is the status filter accepted by the transfer list.
type TransferStatusQuery struct {
	Status string `form:"status" binding:"omitempty,transfer_status"`
}

// AssignmentStatusQuery is the status filter accepted by the assignment list.
type AssignmentStatusQuery struct {
	Status string `form:"status" binding:"omitempty,assignment_status"`
}

// bindQuery binds query parameters into q, reporting failures as INVALID_INPUT.
func bindQuery(c *gin.Context, q any) error {
	if err := c.ShouldBindQuery(q); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// bindRecordFilter reads the shared filter and paging parameters.
func bindRecordFilter(c *gin.Context) (services.RecordFilter, pagination.PageRequest, error) {
	var q RecordQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return services.RecordFilter{}, pagination.PageRequest{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return services.RecordFilter{}, pagination.PageRequest{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if q.BaseID != "" && !uuid.IsValid(q.BaseID) {
		return services.RecordFilter{}, pagination.PageRequest{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid baseId")
	}

	filter := services.RecordFilter{
		BaseID:        q.BaseID,
		EquipmentType: models.AssetType(q.EquipmentType),
	}
	if q.StartDate != "" {
		start, err := parseDate(q.StartDate, false)
		if err != nil {
			return services.RecordFilter{}, pagination.PageRequest{}, err
		}
		filter.StartDate = &start
	}
	if q.EndDate != "" {
		end, err := parseDate(q.EndDate, true)
		if err != nil {
			return services.RecordFilter{}, pagination.PageRequest{}, err
		}
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return services.RecordFilter{}, pagination.PageRequest{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "endDate is before startDate")
	}
	return filter, page, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message and details.
// Otherwise it logs the unexpected error and returns a generic internal
// server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
