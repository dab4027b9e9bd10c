// Package engine holds the cheque approval rules: signature counting, approval
// transitions, print locking, duplicate detection and statistics.
//
// Every function takes cheques by value and returns new values. Nothing here
// performs I/O or keeps state between calls; persisting the results is the
// caller's job.
package engine

import (
	"fmt"
	"strings"
	"time"

	"chequeflow/internal/apperrors"
	"chequeflow/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DualSignatureThreshold is the amount above which a cheque needs two signatures.
var DualSignatureThreshold = decimal.NewFromInt(1500)

// RequiredSignatures returns 2 for amounts strictly above 1500, otherwise 1.
func RequiredSignatures(amount decimal.Decimal) int {
	if amount.GreaterThan(DualSignatureThreshold) {
		return 2
	}
	return 1
}

// SetStatus moves a cheque to next on behalf of actor.
//
// Entering Approved adds one signature (capped by RequiredSignatures). Moving to
// any other status while the cheque still holds a signature removes one.
// Approved -> Approved leaves signatures untouched.
func SetStatus(c model.Cheque, next model.ChequeStatus, remarks string, actor uuid.UUID) (model.Cheque, error) {
	if c.Locked() {
		return c, apperrors.NewChequeLockedError(c.ID, c.DocumentID)
	}
	if !next.Valid() {
		return c, apperrors.NewValidationError("status", fmt.Sprintf("unknown cheque status %q", next))
	}

	remarks = strings.TrimSpace(remarks)
	if next == model.StatusDeclined && remarks == "" {
		return c, apperrors.NewValidationError("remarks", "A remark is required when declining a cheque")
	}

	switch {
	case next == model.StatusApproved && c.Status != model.StatusApproved:
		if actor == uuid.Nil {
			return c, apperrors.NewValidationError("user_id", "An acting user is required to approve a cheque")
		}
		c = addSignature(c, actor)
	case next != model.StatusApproved && (c.Status == model.StatusApproved || c.CurrentSignatures > 0):
		c = removeSignature(c)
	}

	c.Status = next
	if remarks != "" {
		c.Remarks = remarks
	}
	return c, nil
}

// Sign adds a co-signature to an approved cheque that is still short of its
// required signatures. The same user cannot hold both signature slots.
func Sign(c model.Cheque, actor uuid.UUID) (model.Cheque, error) {
	if c.Locked() {
		return c, apperrors.NewChequeLockedError(c.ID, c.DocumentID)
	}
	if actor == uuid.Nil {
		return c, apperrors.NewValidationError("user_id", "An acting user is required to sign a cheque")
	}
	if c.Status != model.StatusApproved {
		return c, apperrors.NewValidationError("status", "Only approved cheques can be signed")
	}

	required := RequiredSignatures(c.Amount)
	if c.CurrentSignatures >= required {
		return c, apperrors.NewValidationError("current_signatures",
			fmt.Sprintf("Cheque already carries its %d required signature(s)", required))
	}
	if c.SignedBy(actor) {
		return c, apperrors.NewValidationError("user_id", "This user has already signed the cheque")
	}

	return addSignature(c, actor), nil
}

// SetIssueDate changes the instrument issue date of an unlocked cheque.
func SetIssueDate(c model.Cheque, date time.Time) (model.Cheque, error) {
	if c.Locked() {
		return c, apperrors.NewChequeLockedError(c.ID, c.DocumentID)
	}
	if date.IsZero() {
		return c, apperrors.NewValidationError("issue_date", "Issue date is required")
	}
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	c.IssueDate = &d
	return c, nil
}

// addSignature records actor's signature. A user who already holds a slot adds
// nothing, so one person can never satisfy a two-signature cheque alone.
func addSignature(c model.Cheque, actor uuid.UUID) model.Cheque {
	if c.SignedBy(actor) {
		return c
	}
	required := RequiredSignatures(c.Amount)
	if c.CurrentSignatures < required {
		c.CurrentSignatures++
	}

	signer := actor
	switch {
	case c.FirstSignatureUserID == nil:
		c.FirstSignatureUserID = &signer
	case c.SecondSignatureUserID == nil && required == 2 && c.CurrentSignatures == 2:
		c.SecondSignatureUserID = &signer
	}
	return c
}

func removeSignature(c model.Cheque) model.Cheque {
	if c.CurrentSignatures > 0 {
		c.CurrentSignatures--
	}

	switch c.CurrentSignatures {
	case 0:
		c.FirstSignatureUserID = nil
		c.SecondSignatureUserID = nil
	case 1:
		c.SecondSignatureUserID = nil
	}
	return c
}
