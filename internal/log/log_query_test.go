package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotOpen(t *testing.T) {
	useTempDB(t)

	_, err := Recent(QueryOptions{})
	assert.ErrorIs(t, err, ErrNotOpen)
	_, err = Prune(time.Now(), true)
	assert.ErrorIs(t, err, ErrNotOpen)
}

func seed(t *testing.T) {
	t.Helper()
	now := time.Now().UnixMilli()
	old := time.Now().Add(-48 * time.Hour).UnixMilli()

	Log(Entry{RequestID: "1", Source: "mcp:get_company_profile", Action: "profile", Company: "01234567", Start: old, End: old, Success: true})
	Log(Entry{RequestID: "2", Source: "company:report", Action: "report", Company: "01234567", Start: now - 2, End: now, Success: false, Code: "UNAUTHORISED", Error: "authentication failed"})
	Log(Entry{RequestID: "3", Source: "mcp:search_companies", Action: "search", Query: "acme", Start: now - 1, End: now, Success: true,
		Detail: map[string]any{"count": 1}})
}

func TestRecent(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())
	seed(t)

	all, err := Recent(QueryOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].RequestID, "newest first")
	assert.Equal(t, "acme", all[0].Query)
	assert.EqualValues(t, 1, all[0].Detail["count"])

	byCompany, err := Recent(QueryOptions{Company: "01234567"})
	require.NoError(t, err)
	assert.Len(t, byCompany, 2)

	mcpOnly, err := Recent(QueryOptions{Source: "mcp:"})
	require.NoError(t, err)
	assert.Len(t, mcpOnly, 2)

	failed, err := Recent(QueryOptions{Failed: true})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "UNAUTHORISED", failed[0].Code)

	limited, err := Recent(QueryOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRecent_SourceIsLiteral(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())
	seed(t)

	got, err := Recent(QueryOptions{Source: "mcp_"})
	require.NoError(t, err)
	assert.Empty(t, got, "underscore must not act as a wildcard")
}

func TestPrune(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())
	seed(t)

	cutoff := time.Now().Add(-24 * time.Hour)

	n, err := Prune(cutoff, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	all, err := Recent(QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3, "dry run deletes nothing")

	n, err = Prune(cutoff, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	all, err = Recent(QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
