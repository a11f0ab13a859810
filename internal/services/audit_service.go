package services

import (
	"context"
	"encoding/json"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/logger"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
)

// auditService writes audit entries from a buffered queue on a single
// worker goroutine, off the request path.
type auditService struct {
	db      *gorm.DB
	queue   chan *models.AuditLog
	done    chan struct{}
	closing sync.Once
	mu      sync.RWMutex
	closed  bool
}

// NewAuditService creates a new AuditServicer and starts its worker.
// bufferSize bounds the number of entries waiting to be written.
func NewAuditService(db *gorm.DB, bufferSize int) AuditServicer {
	if bufferSize < 1 {
		bufferSize = 1
	}
	s := &auditService{
		db:    db,
		queue: make(chan *models.AuditLog, bufferSize),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Record enqueues an audit entry without blocking. Entries are dropped and
// logged when the queue is full or the service is closed; audit failures
// never reach the caller.
func (s *auditService) Record(event *AuditEvent, ipAddress string) {
	if event == nil {
		return
	}

	entry := &models.AuditLog{
		Action:     event.Action,
		UserID:     event.ActorID,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		IPAddress:  ipAddress,
	}
	if event.Changes != nil {
		data, err := json.Marshal(event.Changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", event.Action)
			data = []byte("{}")
		}
		entry.Changes = datatypes.JSON(data)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		logger.Get().Warnw("audit service closed, dropping entry", "action", event.Action, "entity_id", event.EntityID)
		return
	}

	select {
	case s.queue <- entry:
	default:
		logger.Get().Errorw("audit queue full, dropping entry",
			"action", event.Action,
			"entity_type", event.EntityType,
			"entity_id", event.EntityID,
		)
	}
}

func (s *auditService) run() {
	defer close(s.done)
	for entry := range s.queue {
		if err := s.db.Create(entry).Error; err != nil {
			logger.Get().Errorw("failed to create audit log entry",
				"error", err,
				"user_id", entry.UserID,
				"action", entry.Action,
				"entity_type", entry.EntityType,
				"entity_id", entry.EntityID,
			)
		}
	}
}

// Close stops accepting entries and waits for the queue to drain or ctx to end.
func (s *auditService) Close(ctx context.Context) error {
	s.closing.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.queue)
		s.mu.Unlock()
	})

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List returns audit entries matching filter, newest first.
func (s *auditService) List(filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	q := s.db.Model(&models.AuditLog{})
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		q = q.Where("entity_id = ?", filter.EntityID)
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}

	result, err := pagination.Find[models.AuditLog](q, page, "audit_logs.timestamp DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
