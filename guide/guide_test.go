package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	def, err := Get("")
	require.NoError(t, err)
	named, err := Get(" Guide ")
	require.NoError(t, err)
	assert.Equal(t, def, named)

	_, err = Get("missing")
	assert.ErrorIs(t, err, ErrUnknownTopic)
	_, err = Get("guide.md")
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.NotContains(t, names, "guide")
	for _, want := range []string{"tools", "report", "ownership", "errors", "config", "serve", "llm"} {
		assert.Contains(t, names, want)
	}
	for _, n := range names {
		_, err := Get(n)
		assert.NoError(t, err, n)
	}
}
