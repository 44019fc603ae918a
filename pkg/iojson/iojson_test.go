package iojson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	var sb strings.Builder

	type row struct {
		ID   string `json:"id"`
		Done bool   `json:"done"`
	}

	require.NoError(t, WriteLine(&sb, row{ID: "abc", Done: true}))
	require.NoError(t, WriteLine(&sb, row{ID: "def"}))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"id":"abc","done":true}`, lines[0])
	assert.JSONEq(t, `{"id":"def","done":false}`, lines[1])
}

func TestWriteLine_MarshalError(t *testing.T) {
	var sb strings.Builder

	err := WriteLine(&sb, make(chan int))
	require.Error(t, err)
	assert.Empty(t, sb.String())
}
