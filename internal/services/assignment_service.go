package services

import (
	"time"

	"gorm.io/gorm"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
)

// assignmentService issues stock to personnel and takes it back.
type assignmentService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewAssignmentService creates a new AssignmentServicer.
func NewAssignmentService(db *gorm.DB, ledger LedgerServicer) AssignmentServicer {
	return &assignmentService{db: db, ledger: ledger}
}

// CreateAssignment raises the asset's assigned counter and stores the
// assignment. Assigned units remain in current_balance.
func (s *assignmentService) CreateAssignment(policy access.Policy, in AssignmentInput) (*models.Assignment, *AuditEvent, error) {
	if in.AssetID == "" || in.BaseID == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "assetId and baseId are required")
	}
	if in.PersonnelName == "" || in.PersonnelID == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "personnelName and personnelId are required")
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, nil, err
	}
	if err := policy.CanAccessBase(in.BaseID); err != nil {
		return nil, nil, err
	}

	assignment := &models.Assignment{
		Reference:      resolveReference(in.Reference),
		AssetID:        in.AssetID,
		BaseID:         in.BaseID,
		PersonnelName:  in.PersonnelName,
		PersonnelID:    in.PersonnelID,
		Quantity:       in.Quantity,
		AssignmentDate: defaultDate(in.AssignmentDate),
		Status:         models.AssignmentStatusActive,
		AssignedBy:     policy.ActorID(),
	}

	var balance *models.Asset
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureNewReference(tx, &models.Assignment{}, assignment.Reference); err != nil {
			return err
		}
		asset, err := s.ledger.FindForBase(tx, in.AssetID, in.BaseID)
		if err != nil {
			return err
		}
		if balance, err = s.ledger.Adjust(tx, asset.ID, models.BalanceDelta{Assigned: in.Quantity}); err != nil {
			return err
		}
		return createRecord(tx, assignment)
	})
	if err != nil {
		return nil, nil, err
	}

	created, err := s.load(assignment.ID)
	if err != nil {
		return nil, nil, err
	}

	event := &AuditEvent{
		Action:     "CREATE_ASSIGNMENT",
		ActorID:    policy.ActorID(),
		EntityType: "assignment",
		EntityID:   created.ID,
		Changes: map[string]any{
			"reference":     created.Reference,
			"assetId":       created.AssetID,
			"baseId":        created.BaseID,
			"personnelId":   created.PersonnelID,
			"personnelName": created.PersonnelName,
			"quantity":      created.Quantity,
			"assigned":      balance.Assigned,
		},
	}
	return created, event, nil
}

// ReturnAssignment marks an active assignment returned and lowers the
// asset's assigned counter. The status flip is conditional on the row still
// being active, so a second return fails instead of reversing twice.
func (s *assignmentService) ReturnAssignment(policy access.Policy, id string) (*models.Assignment, *AuditEvent, error) {
	actor := policy.ActorID()

	var balance *models.Asset
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var assignment models.Assignment
		if err := tx.Where("id = ?", id).First(&assignment).Error; err != nil {
			return notFound(err, apperrors.ErrAssignmentNotFound)
		}
		if err := policy.CanAccessBase(assignment.BaseID); err != nil {
			return err
		}
		if assignment.Status != models.AssignmentStatusActive {
			return apperrors.ErrAssignmentReturned
		}

		now := time.Now().UTC()
		result := tx.Model(&models.Assignment{}).
			Where("id = ? AND status = ?", id, models.AssignmentStatusActive).
			Updates(map[string]any{
				"status":      models.AssignmentStatusReturned,
				"return_date": now,
				"returned_by": actor,
			})
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrAssignmentReturned
		}

		var err error
		balance, err = s.ledger.Adjust(tx, assignment.AssetID, models.BalanceDelta{Assigned: -assignment.Quantity})
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	returned, err := s.load(id)
	if err != nil {
		return nil, nil, err
	}

	event := &AuditEvent{
		Action:     "RETURN_ASSIGNMENT",
		ActorID:    actor,
		EntityType: "assignment",
		EntityID:   returned.ID,
		Changes: map[string]any{
			"reference": returned.Reference,
			"assetId":   returned.AssetID,
			"quantity":  returned.Quantity,
			"status":    returned.Status,
			"assigned":  balance.Assigned,
		},
	}
	return returned, event, nil
}

// ListAssignments returns assignments in scope, newest first.
func (s *assignmentService) ListAssignments(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Assignment], error) {
	q := s.db.Model(&models.Assignment{})
	if base := policy.ScopeBase(filter.BaseID); base != "" {
		q = q.Where("base_id = ?", base)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = applyRecordFilter(s.db, q, "assignment_date", filter)

	result, err := pagination.Find[models.Assignment](q, page, "assignment_date DESC", "Asset", "Base", "Assigner")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *assignmentService) load(id string) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.Preload("Asset").Preload("Base").Preload("Assigner").
		Where("id = ?", id).First(&assignment).Error; err != nil {
		return nil, notFound(err, apperrors.ErrAssignmentNotFound)
	}
	return &assignment, nil
}
