package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of audit event
type EventType string

const (
	EventAuthenticationSuccess EventType = "AUTHENTICATION_SUCCESS"
	EventAuthenticationFailure EventType = "AUTHENTICATION_FAILURE"
	EventMFAChallengeIssued    EventType = "MFA_CHALLENGE_ISSUED"
	EventAuthenticationError   EventType = "AUTHENTICATION_ERROR"
)

// EventSeverity represents the severity level of an audit event
type EventSeverity string

const (
	SeverityInfo    EventSeverity = "INFO"
	SeverityWarning EventSeverity = "WARNING"
	SeverityError   EventSeverity = "ERROR"
)

// AuditDetails stores additional event-specific information as JSON
type AuditDetails map[string]any

// Value implements the driver.Valuer interface for database storage
func (a AuditDetails) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil //nolint:nilnil // nil driver.Value represents SQL NULL, which is valid here
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for database retrieval
func (a *AuditDetails) Scan(value any) error {
	if value == nil {
		*a = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal AuditDetails value: %v", value)
	}

	result := make(AuditDetails)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}

	*a = result
	return nil
}

// AuditLog records the outcome of one authentication attempt.
// Passwords and second-factor codes never appear here.
type AuditLog struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`

	EventType EventType     `gorm:"type:varchar(50);index;not null" json:"event_type"`
	EventTime time.Time     `gorm:"index;not null"                  json:"event_time"`
	Severity  EventSeverity `gorm:"type:varchar(20);not null"       json:"severity"`

	Email   string `gorm:"type:varchar(255);index" json:"email"`
	ActorIP string `gorm:"type:varchar(45);index"  json:"actor_ip"` // Support IPv6

	Outcome   ResultKind   `gorm:"type:varchar(32);index" json:"outcome"`
	RiskScore int          `gorm:"not null"               json:"risk_score"`
	Method    Method       `gorm:"type:varchar(16)"       json:"method"`
	Success   bool         `gorm:"index;not null"         json:"success"`
	Details   AuditDetails `gorm:"type:json"              json:"details"`

	// Timestamps (no UpdatedAt - immutable logs)
	CreatedAt time.Time `gorm:"index;not null" json:"created_at"`
}

// TableName specifies the table name for GORM
func (AuditLog) TableName() string {
	return "audit_logs"
}
