package treediff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionSetStats(t *testing.T) {
	var a, b interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": 2, "arr": [1, 2, 3]}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"a": 9, "c": 4, "arr": [1, 2]}`), &b))

	st := &Stats{}
	diffs := Diff(a, b, OptionSetStats(st))

	assert.Equal(t, 7, st.LeftNodes)
	assert.Equal(t, 6, st.RightNodes)
	assert.Equal(t, -1, st.NodeChange())

	assert.Equal(t, 1, st.Changes)
	assert.Equal(t, 1, st.Additions)
	assert.Equal(t, 2, st.Removals)
	assert.Equal(t, len(diffs), st.Total())
}

func TestStatsUntouchedWithoutOption(t *testing.T) {
	var a, b interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"a": 2}`), &b))

	diffs := Diff(a, b)
	require.Len(t, diffs, 1)
}

func TestStatsOnEqualTrees(t *testing.T) {
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"a": [1, {"b": null}]}`), &v))

	st := &Stats{}
	require.Empty(t, Diff(v, v, OptionSetStats(st)))
	assert.Equal(t, st.LeftNodes, st.RightNodes)
	assert.Zero(t, st.Total())
}
