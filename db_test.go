package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoIncludeWeekends(t *testing.T) {
	repo := newTestRepo(t)

	include, err := repo.IncludeWeekends()
	require.NoError(t, err)
	assert.False(t, include)

	require.NoError(t, repo.SetIncludeWeekends(true))
	include, err = repo.IncludeWeekends()
	require.NoError(t, err)
	assert.True(t, include)

	require.NoError(t, repo.SetIncludeWeekends(false))
	include, err = repo.IncludeWeekends()
	require.NoError(t, err)
	assert.False(t, include)
}

func TestRepoKeepsSettingAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	repo, err := NewRepo(path)
	require.NoError(t, err)
	require.NoError(t, repo.SetIncludeWeekends(true))
	require.NoError(t, repo.Close())

	repo, err = NewRepo(path)
	require.NoError(t, err)
	defer repo.Close()

	include, err := repo.IncludeWeekends()
	require.NoError(t, err)
	assert.True(t, include)
}
