package engine

import (
	"strings"

	"chequeflow/internal/apperrors"
	"chequeflow/internal/model"

	"github.com/google/uuid"
)

// Shortfall describes an approved cheque held back from printing.
type Shortfall struct {
	Cheque   model.Cheque `json:"cheque"`
	Required int          `json:"required_signatures"`
	Missing  int          `json:"missing_signatures"`
}

// Unprintable is a fully signed cheque whose amount cannot be written on a slip.
type Unprintable struct {
	Cheque model.Cheque `json:"cheque"`
	Reason string       `json:"reason"`
}

// PrintPlan splits the approved cheques of a working set by print eligibility.
// Slips[i] is the payload for Printable[i].
type PrintPlan struct {
	Printable     []model.Cheque `json:"printable"`
	Slips         []Slip         `json:"slips"`
	Excluded      []Shortfall    `json:"excluded"`
	Unprintable   []Unprintable  `json:"unprintable"`
	AlreadyLocked []model.Cheque `json:"already_locked"`
}

// PrintResult is a confirmed PrintPlan.
type PrintResult struct {
	Printed     []model.Cheque `json:"printed"`
	Slips       []Slip         `json:"slips"`
	Excluded    []Shortfall    `json:"excluded"`
	Unprintable []Unprintable  `json:"unprintable"`
	DocumentIDs []uuid.UUID    `json:"document_ids"`
}

// MarkPrinted plans a print run over the working set.
//
// A single declined cheque without a remark refuses the whole run. Approved
// cheques with all required signatures are printable; approved cheques short of
// signatures are reported in Excluded with the shortfall, and those whose amount
// cannot be spelled out in Unprintable.
func MarkPrinted(working []model.Cheque) (PrintPlan, error) {
	for _, c := range working {
		if c.Status == model.StatusDeclined && strings.TrimSpace(c.Remarks) == "" {
			return PrintPlan{}, apperrors.NewValidationError("remarks",
				"All declined cheques must include a remark before printing")
		}
	}

	var plan PrintPlan
	for _, c := range working {
		if c.Status != model.StatusApproved {
			continue
		}
		if c.Locked() {
			plan.AlreadyLocked = append(plan.AlreadyLocked, c)
			continue
		}

		required := RequiredSignatures(c.Amount)
		if c.CurrentSignatures >= required {
			slip, err := NewSlip(c)
			if err != nil {
				plan.Unprintable = append(plan.Unprintable, Unprintable{Cheque: c, Reason: err.Error()})
				continue
			}
			plan.Printable = append(plan.Printable, c)
			plan.Slips = append(plan.Slips, slip)
			continue
		}
		plan.Excluded = append(plan.Excluded, Shortfall{
			Cheque:   c,
			Required: required,
			Missing:  required - c.CurrentSignatures,
		})
	}
	return plan, nil
}

// ConfirmPrint applies a plan: every printable cheque has its print count
// incremented and becomes locked, and each containing document is returned
// once for locking. Excluded cheques are left untouched.
func ConfirmPrint(plan PrintPlan) PrintResult {
	res := PrintResult{
		Printed:     make([]model.Cheque, 0, len(plan.Printable)),
		Slips:       plan.Slips,
		Excluded:    plan.Excluded,
		Unprintable: plan.Unprintable,
	}

	seen := make(map[uuid.UUID]bool)
	for _, c := range plan.Printable {
		c.PrintCount++
		c.PrintUnlocked = false
		res.Printed = append(res.Printed, c)

		if c.DocumentID != uuid.Nil && !seen[c.DocumentID] {
			seen[c.DocumentID] = true
			res.DocumentIDs = append(res.DocumentIDs, c.DocumentID)
		}
	}
	return res
}

// UnlockPrinted makes a printed cheque mutable again. The reason is kept for
// audit; status, signatures and print count are not changed.
func UnlockPrinted(c model.Cheque, reason string) (model.Cheque, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return c, apperrors.NewValidationError("reason", "A reason is required to unlock a printed cheque")
	}
	if !c.Locked() {
		return c, apperrors.NewValidationError("print_count", "Cheque is not locked")
	}

	c.PrintUnlocked = true
	c.UnlockReason = reason
	return c, nil
}
