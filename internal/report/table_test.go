package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	k string
	v int
}

func (pair) Headers() []string { return []string{"Key", "Value"} }
func (p pair) Values() []any   { return []any{p.k, p.v} }

func TestNewKeepsRowOrderAndWidth(t *testing.T) {
	rows := []pair{{"b", 2}, {"a", 1}}
	tbl := New("pairs", pair{}.Headers(), rows)

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "pairs", tbl.Title)
	assert.Equal(t, []any{"b", 2}, tbl.Rows[0])
	assert.Equal(t, []any{"a", 1}, tbl.Rows[1])
	for _, r := range tbl.Rows {
		assert.Len(t, r, len(tbl.Headers))
	}
}

func TestNewEmptyKeepsHeaders(t *testing.T) {
	tbl := New[pair]("none", []string{"Key", "Value"}, nil)

	assert.True(t, tbl.Empty())
	assert.NotNil(t, tbl.Rows)
	assert.Equal(t, []string{"Key", "Value"}, tbl.Headers)
}
