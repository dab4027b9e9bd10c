package engine

import (
	"chequeflow/internal/model"

	"github.com/google/uuid"
)

// PriorStatuses remembers, per cheque, the status it had before its last bulk approval.
type PriorStatuses map[uuid.UUID]model.ChequeStatus

// Clone returns an independent copy; a nil receiver yields an empty map.
func (p PriorStatuses) Clone() PriorStatuses {
	out := make(PriorStatuses, len(p))
	for id, status := range p {
		out[id] = status
	}
	return out
}

// ItemFailure is a per-cheque error collected during a bulk operation.
type ItemFailure struct {
	Cheque model.Cheque
	Err    error
}

// BulkResult is the outcome of SelectAll.
type BulkResult struct {
	Cheques  []model.Cheque // full input set, in input order, with changes applied
	Changed  []model.Cheque
	Skipped  []model.Cheque // locked or not yet persisted
	Failures []ItemFailure
	Priors   PriorStatuses
}

// SelectAll approves every eligible cheque (approve=true) or reverts every
// cheque approved through a previous SelectAll to the status it had before
// (approve=false).
//
// Locked cheques and cheques without an ID are skipped silently. Already
// approved cheques are not re-approved. A failure on one cheque never stops
// the others; it is recorded in Failures.
func SelectAll(cheques []model.Cheque, approve bool, priors PriorStatuses, actor uuid.UUID) BulkResult {
	res := BulkResult{
		Cheques: make([]model.Cheque, len(cheques)),
		Priors:  priors.Clone(),
	}

	for i, c := range cheques {
		res.Cheques[i] = c
		if c.Locked() || c.ID == uuid.Nil {
			res.Skipped = append(res.Skipped, c)
			continue
		}

		var (
			updated model.Cheque
			err     error
		)
		if approve {
			if c.Status == model.StatusApproved {
				continue
			}
			updated, err = SetStatus(c, model.StatusApproved, "", actor)
			if err == nil {
				res.Priors[c.ID] = c.Status
			}
		} else {
			prior, ok := res.Priors[c.ID]
			if !ok {
				continue
			}
			if c.Status != model.StatusApproved {
				// changed individually since the bulk approval; nothing to revert
				delete(res.Priors, c.ID)
				continue
			}
			updated, err = SetStatus(c, prior, c.Remarks, actor)
			if err == nil {
				delete(res.Priors, c.ID)
			}
		}

		if err != nil {
			res.Failures = append(res.Failures, ItemFailure{Cheque: c, Err: err})
			continue
		}
		res.Cheques[i] = updated
		res.Changed = append(res.Changed, updated)
	}

	return res
}
