package models

// AuditLog records mutations of the record store.
type AuditLog struct {
	Base
	Action     string `gorm:"not null;index" json:"action"`
	Collection string `gorm:"not null" json:"collection"`
	RecordID   string `gorm:"index" json:"record_id"`
	IPAddress  string `json:"ip_address"`
	Changes    string `json:"changes,omitempty"`
}
