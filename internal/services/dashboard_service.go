package services

import (
	"gorm.io/gorm"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
)

// dashboardService computes read-only aggregates over the ledger.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

type assetTotals struct {
	OpeningBalance int64
	CurrentBalance int64
	Assigned       int64
	Expended       int64
	AssetsCount    int64
}

// GetMetrics sums balances over the assets in scope and movements over the
// date range. closingBalance = opening + net movement - assigned - expended.
func (s *dashboardService) GetMetrics(policy access.Policy, filter RecordFilter) (*DashboardMetrics, error) {
	filter.BaseID = policy.ScopeBase(filter.BaseID)

	var totals assetTotals
	if err := s.assetQuery(filter).
		Select("COALESCE(SUM(opening_balance), 0) AS opening_balance, " +
			"COALESCE(SUM(current_balance), 0) AS current_balance, " +
			"COALESCE(SUM(assigned), 0) AS assigned, " +
			"COALESCE(SUM(expended), 0) AS expended, " +
			"COUNT(*) AS assets_count").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	purchases, err := sumQuantity(s.purchaseQuery(filter))
	if err != nil {
		return nil, err
	}
	transfersIn, err := sumQuantity(s.transferQuery(filter, "to_base"))
	if err != nil {
		return nil, err
	}
	transfersOut, err := sumQuantity(s.transferQuery(filter, "from_base"))
	if err != nil {
		return nil, err
	}

	net := purchases + transfersIn - transfersOut
	return &DashboardMetrics{
		OpeningBalance: totals.OpeningBalance,
		ClosingBalance: totals.OpeningBalance + net - totals.Assigned - totals.Expended,
		CurrentBalance: totals.CurrentBalance,
		NetMovement:    net,
		Purchases:      purchases,
		TransfersIn:    transfersIn,
		TransfersOut:   transfersOut,
		Assigned:       totals.Assigned,
		Expended:       totals.Expended,
		AssetsCount:    totals.AssetsCount,
	}, nil
}

// GetMovements lists the purchases and transfers counted by GetMetrics.
func (s *dashboardService) GetMovements(policy access.Policy, filter RecordFilter) (*Movements, error) {
	filter.BaseID = policy.ScopeBase(filter.BaseID)

	movements := &Movements{
		Purchases:    []models.Purchase{},
		TransfersIn:  []models.Transfer{},
		TransfersOut: []models.Transfer{},
	}

	if err := s.purchaseQuery(filter).
		Preload("Asset").Preload("Base").Preload("Creator").
		Order("purchase_date DESC").
		Find(&movements.Purchases).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.transferQuery(filter, "to_base").
		Preload("Asset").Preload("FromBase").Preload("ToBase").Preload("Initiator").
		Order("transfer_date DESC").
		Find(&movements.TransfersIn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.transferQuery(filter, "from_base").
		Preload("Asset").Preload("FromBase").Preload("ToBase").Preload("Initiator").
		Order("transfer_date DESC").
		Find(&movements.TransfersOut).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return movements, nil
}

func (s *dashboardService) assetQuery(f RecordFilter) *gorm.DB {
	q := s.db.Model(&models.Asset{})
	if f.BaseID != "" {
		q = q.Where("base_id = ?", f.BaseID)
	}
	if f.EquipmentType != "" {
		q = q.Where("type = ?", f.EquipmentType)
	}
	return q
}

func (s *dashboardService) purchaseQuery(f RecordFilter) *gorm.DB {
	q := s.db.Model(&models.Purchase{})
	if f.BaseID != "" {
		q = q.Where("base_id = ?", f.BaseID)
	}
	return applyRecordFilter(s.db, q, "purchase_date", f)
}

// transferQuery selects completed transfers; baseColumn picks the direction
// (to_base for inbound, from_base for outbound) when a base is in scope.
func (s *dashboardService) transferQuery(f RecordFilter, baseColumn string) *gorm.DB {
	q := s.db.Model(&models.Transfer{}).Where("status = ?", models.TransferStatusCompleted)
	if f.BaseID != "" {
		q = q.Where(baseColumn+" = ?", f.BaseID)
	}
	return applyRecordFilter(s.db, q, "transfer_date", f)
}

func sumQuantity(q *gorm.DB) (int64, error) {
	var total int64
	if err := q.Select("COALESCE(SUM(quantity), 0)").Row().Scan(&total); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
