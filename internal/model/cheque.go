package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChequeStatus is the closed set of approval states a cheque can be in.
type ChequeStatus string

const (
	StatusPending  ChequeStatus = "Pending"
	StatusApproved ChequeStatus = "Approved"
	StatusDeclined ChequeStatus = "Declined"
)

// Valid reports whether s is one of the three known statuses.
func (s ChequeStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// ParseChequeStatus normalises free-form input ("approved", " DECLINED ") into a ChequeStatus.
func ParseChequeStatus(raw string) (ChequeStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "declined", "denied", "rejected":
		return StatusDeclined, true
	}
	return "", false
}

// Cheque is a single payment instrument moving through approval.
// Required signatures are derived from Amount and never stored.
type Cheque struct {
	ID                    uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"cheque_id"`
	DocumentID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"document_id"`
	ChequeNumber          string          `gorm:"type:varchar(64);not null;index" json:"cheque_number"`
	Amount                decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	ClientName            string          `gorm:"type:varchar(255);not null;index" json:"client_name"`
	IssueDate             *time.Time      `gorm:"type:date" json:"issue_date"`
	Date                  *time.Time      `gorm:"column:date_field;type:date" json:"date"`
	Status                ChequeStatus    `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CurrentSignatures     int             `gorm:"not null;default:0" json:"current_signatures"`
	FirstSignatureUserID  *uuid.UUID      `gorm:"type:uuid" json:"first_signature_user_id"`
	SecondSignatureUserID *uuid.UUID      `gorm:"type:uuid" json:"second_signature_user_id"`
	Remarks               string          `gorm:"type:text" json:"remarks"`
	PrintCount            int             `gorm:"not null;default:0" json:"print_count"`       // Monotonic, kept for audit
	PrintUnlocked         bool            `gorm:"not null;default:false" json:"print_unlocked"` // Set by an explicit unlock
	UnlockReason          string          `gorm:"type:text" json:"unlock_reason,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// Locked reports whether the cheque has been printed and not explicitly unlocked since.
func (c Cheque) Locked() bool {
	return c.PrintCount > 0 && !c.PrintUnlocked
}

// SignedBy reports whether userID already holds one of the signature slots.
func (c Cheque) SignedBy(userID uuid.UUID) bool {
	return (c.FirstSignatureUserID != nil && *c.FirstSignatureUserID == userID) ||
		(c.SecondSignatureUserID != nil && *c.SecondSignatureUserID == userID)
}
