package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *Repo) {
	t.Helper()
	repo := newTestRepo(t)
	return NewApp(repo, DefaultConfig(), nil), repo
}

func TestAddEntryDerivesSummary(t *testing.T) {
	a, repo := newTestApp(t)

	e, err := a.AddEntry("2026-08-30", "21:15", []int{5, 0, 3, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 10, e.Summary)
	assert.Greater(t, e.ID, int64(0))

	entries, err := repo.ListEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0].Summary)
}

func TestAddEntryDefaultsToNow(t *testing.T) {
	a, _ := newTestApp(t)

	e, err := a.AddEntry("", "", []int{1, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(a.cfg.DateFormat), e.Date)
	assert.NotEmpty(t, e.Time)
}

func TestAddEntryRejectsOutOfRange(t *testing.T) {
	a, repo := newTestApp(t)

	_, err := a.AddEntry("2026-08-30", "21:15", []int{6, 0, 0, 0, 0})
	assert.Error(t, err)

	n, err := repo.CountEntries()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDeleteByID(t *testing.T) {
	a, repo := newTestApp(t)

	e, err := a.AddEntry("2026-08-30", "21:15", []int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	require.NoError(t, a.DeleteByID(e.ID))

	n, err := repo.CountEntries()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAddEntryUnavailableStore(t *testing.T) {
	a := NewApp(nil, DefaultConfig(), nil)

	_, err := a.AddEntry("2026-08-30", "21:15", []int{1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
