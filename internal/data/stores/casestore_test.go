package stores

import (
	"context"
	"testing"

	"github.com/careops/dispatch/internal/core/casefile"
	"github.com/careops/dispatch/internal/data/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseStore_List(t *testing.T) {
	store := NewCaseStore(seed.Cases())

	cases, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 5)
	assert.Equal(t, "1150122-08", cases[0].ID)

	// Mutating the returned slice must not affect the store.
	cases[0].PatientName = "changed"
	again, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lin W.", again[0].PatientName)
}

func TestCaseStore_Get(t *testing.T) {
	store := NewCaseStore(seed.Cases())

	c, err := store.Get(context.Background(), "1150122-03")
	require.NoError(t, err)
	assert.Equal(t, "Wang M.", c.PatientName)
	assert.Equal(t, casefile.StatusAssigned, c.Status)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, casefile.ErrNotFound)
}
