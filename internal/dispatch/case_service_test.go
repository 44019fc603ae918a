package dispatch

import (
	"context"
	"testing"

	"github.com/careops/dispatch/internal/core/casefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseService_List_PinnedFirst(t *testing.T) {
	app := newTestApp(t)
	app.Config.PinnedCases = []string{"*-03"}

	cases, err := app.Cases.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 5)
	assert.Equal(t, "1150122-03", cases[0].ID)
	assert.Equal(t, "1150122-08", cases[1].ID, "intake order preserved after pins")
}

func TestCaseService_ListByStatus(t *testing.T) {
	app := newTestApp(t)

	cases, err := app.Cases.ListByStatus(context.Background(), casefile.StatusPendingIntake)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	for _, c := range cases {
		assert.Equal(t, casefile.StatusPendingIntake, c.Status)
	}

	all, err := app.Cases.ListByStatus(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestCaseService_Open(t *testing.T) {
	app := newTestApp(t)

	c, err := app.Cases.Open(context.Background(), "1150122-07")
	require.NoError(t, err)
	assert.Equal(t, "Chen M.", c.PatientName)

	_, err = app.Cases.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, casefile.ErrNotFound)
}
