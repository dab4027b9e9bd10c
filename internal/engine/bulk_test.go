package engine_test

import (
	"testing"

	"chequeflow/internal/engine"
	"chequeflow/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAll_ApproveAndRevert(t *testing.T) {
	user := uuid.New()

	pending := pendingCheque("100")
	declined := pendingCheque("300")
	declined.Status = model.StatusDeclined
	declined.Remarks = "wrong payee"
	alreadyApproved := pendingCheque("200")
	alreadyApproved.Status = model.StatusApproved
	alreadyApproved.CurrentSignatures = 1
	alreadyApproved.FirstSignatureUserID = &user
	locked := pendingCheque("400")
	locked.PrintCount = 1
	unsaved := pendingCheque("500")
	unsaved.ID = uuid.Nil

	input := []model.Cheque{pending, declined, alreadyApproved, locked, unsaved}

	approved := engine.SelectAll(input, true, nil, user)

	require.Len(t, approved.Cheques, len(input))
	assert.Empty(t, approved.Failures)
	assert.Len(t, approved.Changed, 2)
	assert.Len(t, approved.Skipped, 2)

	assert.Equal(t, model.StatusApproved, approved.Cheques[0].Status)
	assert.Equal(t, model.StatusApproved, approved.Cheques[1].Status)
	assert.Equal(t, 1, approved.Cheques[2].CurrentSignatures, "already approved cheque is not double-incremented")
	assert.Equal(t, model.StatusPending, approved.Cheques[3].Status, "locked cheque untouched")
	assert.Equal(t, model.StatusPending, approved.Cheques[4].Status, "unsaved cheque untouched")

	assert.Equal(t, engine.PriorStatuses{
		pending.ID:  model.StatusPending,
		declined.ID: model.StatusDeclined,
	}, approved.Priors)

	reverted := engine.SelectAll(approved.Cheques, false, approved.Priors, user)

	assert.Empty(t, reverted.Failures)
	assert.Len(t, reverted.Changed, 2)
	assert.Equal(t, model.StatusPending, reverted.Cheques[0].Status)
	assert.Equal(t, 0, reverted.Cheques[0].CurrentSignatures)
	assert.Equal(t, model.StatusDeclined, reverted.Cheques[1].Status)
	assert.Equal(t, "wrong payee", reverted.Cheques[1].Remarks)
	assert.Equal(t, model.StatusApproved, reverted.Cheques[2].Status, "never bulk-approved, so not reverted")
	assert.Empty(t, reverted.Priors)
}

func TestSelectAll_DoesNotMutatePriors(t *testing.T) {
	c := pendingCheque("100")
	priors := engine.PriorStatuses{}

	res := engine.SelectAll([]model.Cheque{c}, true, priors, uuid.New())

	assert.Empty(t, priors)
	assert.Len(t, res.Priors, 1)
}

func TestSelectAll_CollectsFailures(t *testing.T) {
	ok := pendingCheque("100")
	bad := pendingCheque("100")

	// approving without an actor fails for every item but the batch still completes
	res := engine.SelectAll([]model.Cheque{ok, bad}, true, nil, uuid.Nil)

	assert.Len(t, res.Failures, 2)
	assert.Empty(t, res.Changed)
	assert.Empty(t, res.Priors)
	assert.Equal(t, ok, res.Cheques[0])
}

func TestSelectAll_DropsStalePriors(t *testing.T) {
	user := uuid.New()
	c := pendingCheque("100")
	approved := engine.SelectAll([]model.Cheque{c}, true, nil, user)

	// declined individually after the bulk approval
	declined, err := engine.SetStatus(approved.Cheques[0], model.StatusDeclined, "stop payment", user)
	require.NoError(t, err)

	reverted := engine.SelectAll([]model.Cheque{declined}, false, approved.Priors, user)
	assert.Empty(t, reverted.Changed)
	assert.Empty(t, reverted.Priors)
	assert.Equal(t, model.StatusDeclined, reverted.Cheques[0].Status)
}
