package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
	"arsenal/internal/services"
)

// DirectoryHandler manages bases, the asset catalogue and user accounts.
type DirectoryHandler struct {
	baseService  services.BaseServicer
	assetService services.AssetServicer
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(
	baseService services.BaseServicer,
	assetService services.AssetServicer,
	userService services.UserServicer,
	auditService services.AuditServicer,
) *DirectoryHandler {
	return &DirectoryHandler{
		baseService:  baseService,
		assetService: assetService,
		userService:  userService,
		auditService: auditService,
	}
}

// CreateBaseRequest represents the request payload for creating a base.
type CreateBaseRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Location    string  `json:"location" binding:"required,min=1,max=255"`
	CommanderID *string `json:"commanderId" binding:"omitempty,max=36"`
}

// CreateAssetRequest represents the request payload for adding an asset line.
type CreateAssetRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=255"`
	Type           string `json:"type" binding:"required,asset_type"`
	BaseID         string `json:"baseId" binding:"required,max=36"`
	OpeningBalance int64  `json:"openingBalance" binding:"gte=0"`
}

// CreateUserRequest represents the request payload for creating a user.
type CreateUserRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=100"`
	Email        string  `json:"email" binding:"required,email,max=255"`
	Password     string  `json:"password" binding:"required,min=8,max=128"`
	Role         string  `json:"role" binding:"required,user_role"`
	AssignedBase *string `json:"assignedBase" binding:"omitempty,max=36"`
}

// AssetQuery holds the asset catalogue filters.
type AssetQuery struct {
	BaseID string `form:"baseId" binding:"omitempty,max=36"`
	Type   string `form:"type" binding:"omitempty,asset_type"`
}

// ListBases returns the bases visible to the caller.
// @Summary     List bases
// @Tags        bases
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Bases"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bases [get]
func (h *DirectoryHandler) ListBases(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bases, err := h.baseService.ListBases(policy)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bases": bases})
}

// GetBase returns a single base.
// @Summary     Get a base
// @Tags        bases
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Base ID"
// @Success     200 {object} map[string]interface{} "Base"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Base not found"
// @Router      /bases/{id} [get]
func (h *DirectoryHandler) GetBase(c *gin.Context) {
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

	base, err := h.baseService.GetBase(policy, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"base": base})
}

// CreateBase adds a base.
// @Summary     Create a base
// @Tags        bases
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBaseRequest true "Base details"
// @Success     201 {object} map[string]interface{} "Base created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     409 {object} ErrorResponse "Duplicate base"
// @Router      /bases [post]
func (h *DirectoryHandler) CreateBase(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	base, err := h.baseService.CreateBase(req.Name, req.Location, req.CommanderID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&services.AuditEvent{
		Action:     "CREATE_BASE",
		ActorID:    userID,
		EntityType: "base",
		EntityID:   base.ID,
		Changes:    map[string]any{"name": base.Name, "location": base.Location},
	}, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"base": base})
}

// ListAssets returns asset lines visible to the caller.
// @Summary     List assets
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       baseId   query string false "Base ID"
// @Param       type     query string false "Asset type"
// @Param       page     query int    false "Page number (default 1)"
// @Param       pageSize query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /assets [get]
func (h *DirectoryHandler) ListAssets(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q AssetQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetService.ListAssets(policy, services.RecordFilter{
		BaseID:        q.BaseID,
		EquipmentType: models.AssetType(q.Type),
	}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAsset returns a single asset line with its balances.
// @Summary     Get an asset
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]interface{} "Asset"
// @Failure     403 {object} ErrorResponse "Access denied to this base"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [get]
func (h *DirectoryHandler) GetAsset(c *gin.Context) {
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

	asset, err := h.assetService.GetAsset(policy, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// CreateAsset adds an asset line to a base.
// @Summary     Create an asset
// @Description The current balance starts at the opening balance.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} map[string]interface{} "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Base not found"
// @Failure     409 {object} ErrorResponse "Duplicate asset"
// @Router      /assets [post]
func (h *DirectoryHandler) CreateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(req.Name, models.AssetType(req.Type), req.BaseID, req.OpeningBalance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&services.AuditEvent{
		Action:     "CREATE_ASSET",
		ActorID:    userID,
		EntityType: "asset",
		EntityID:   asset.ID,
		Changes: map[string]any{
			"name":           asset.Name,
			"type":           asset.Type,
			"baseId":         asset.BaseID,
			"openingBalance": asset.OpeningBalance,
		},
	}, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// CreateUser adds a user account.
// @Summary     Create a user
// @Description Base commanders must be given an assigned base.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} map[string]interface{} "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     409 {object} ErrorResponse "Duplicate user"
// @Router      /users [post]
func (h *DirectoryHandler) CreateUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.Username, req.Email, req.Password, models.Role(req.Role), req.AssignedBase)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&services.AuditEvent{
		Action:     "CREATE_USER",
		ActorID:    userID,
		EntityType: "user",
		EntityID:   user.ID,
		Changes:    map[string]any{"username": user.Username, "role": user.Role},
	}, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"user": user})
}
