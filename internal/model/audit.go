package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionImportDocument     = "IMPORT_DOCUMENT"
	ActionRenameDocument     = "RENAME_DOCUMENT"
	ActionDeleteDocument     = "DELETE_DOCUMENT"
	ActionLockDocument       = "LOCK_DOCUMENT"
	ActionChangeChequeStatus = "CHANGE_CHEQUE_STATUS"
	ActionSignCheque         = "SIGN_CHEQUE"
	ActionPrintCheque        = "PRINT_CHEQUE"
	ActionUnlockCheque       = "UNLOCK_CHEQUE"
	ActionChangeIssueDate    = "CHANGE_ISSUE_DATE"
)

// AuditLog tracks Who, What, and When for every cheque and document mutation
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nil for scheduled/system actions
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`        // Cheque or document id
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Cheque number or file name
	Details    string     `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
