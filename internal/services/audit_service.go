package services

import (
	"encoding/json"

	"spendwise/internal/logger"
	"spendwise/internal/models"

	"gorm.io/gorm"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer. With a nil db, events are
// only written to the application log.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(action, collection, recordID, ipAddress string, changes map[string]any) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Named("audit").Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	if s.db == nil {
		logger.Named("audit").Infow("audit",
			"action", action,
			"collection", collection,
			"record_id", recordID,
			"ip_address", ipAddress,
			"changes", changesJSON,
		)
		return
	}

	entry := &models.AuditLog{
		Action:     action,
		Collection: collection,
		RecordID:   recordID,
		IPAddress:  ipAddress,
		Changes:    changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Named("audit").Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
			"collection", collection,
			"record_id", recordID,
		)
	}
}
