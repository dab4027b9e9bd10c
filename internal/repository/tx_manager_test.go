package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestInTx(t *testing.T) {
	assert.False(t, InTx(context.Background()))

	ctx := context.WithValue(context.Background(), txKey{}, &gorm.DB{})
	assert.True(t, InTx(ctx))
}

func TestRunInTx_JoinsOpenTransaction(t *testing.T) {
	tm := NewTransactionManager(nil)
	ctx := context.WithValue(context.Background(), txKey{}, &gorm.DB{})

	var seen context.Context
	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		seen = txCtx
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, ctx, seen)
}
