package service

import (
	"context"
	"errors"
	"testing"

	"chequeflow/internal/model"
	"chequeflow/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingAuditRepo struct {
	entries []*model.AuditLog
	err     error
}

func (r *capturingAuditRepo) Log(_ context.Context, entry *model.AuditLog) error {
	r.entries = append(r.entries, entry)
	return r.err
}

func (r *capturingAuditRepo) List(context.Context, repository.AuditFilter) ([]model.AuditLog, int64, error) {
	return nil, 0, nil
}

func TestWriteAudit_EncodesDetails(t *testing.T) {
	repo := &capturingAuditRepo{}
	actor := uuid.New()

	err := writeAudit(context.Background(), repo, actor, model.ActionImportDocument, "doc-1", "batch.xlsx",
		map[string]interface{}{"cheques": 3})

	require.NoError(t, err)
	require.Len(t, repo.entries, 1)
	assert.JSONEq(t, `{"cheques":3}`, repo.entries[0].Details)
	assert.Equal(t, &actor, repo.entries[0].UserID)
}

func TestWriteAudit_UnencodableDetails(t *testing.T) {
	repo := &capturingAuditRepo{}

	err := writeAudit(context.Background(), repo, uuid.New(), model.ActionImportDocument, "doc-1", "batch.xlsx",
		map[string]interface{}{"callback": func() {}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode audit details")
	assert.Empty(t, repo.entries, "nothing is logged when details cannot be encoded")
}

func TestWriteAudit_LogFailure(t *testing.T) {
	repo := &capturingAuditRepo{err: errors.New("connection reset")}

	err := writeAudit(context.Background(), repo, uuid.Nil, model.ActionImportDocument, "doc-1", "batch.xlsx", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, repo.err)
	assert.Nil(t, repo.entries[0].UserID)
}
