package treediff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifferenceOperation(t *testing.T) {
	cases := []struct {
		description string
		diff        *Difference
		expect      Operation
	}{
		{"both sides present", &Difference{Path: "a", Before: 1.0, After: 2.0}, OpChange},
		{"before absent", &Difference{Path: "a", Before: Absent, After: 2.0}, OpAdd},
		{"after absent", &Difference{Path: "a", Before: 1.0, After: Absent}, OpRemove},
		{"null values are present", &Difference{Path: "a", Before: nil, After: false}, OpChange},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			assert.Equal(t, c.expect, c.diff.Operation())
		})
	}
}

func TestDifferencePresence(t *testing.T) {
	change := &Difference{Path: "a", Before: nil, After: 2.0}
	assert.True(t, change.InFirst())
	assert.True(t, change.InSecond())

	added := &Difference{Path: "a", Before: Absent, After: 2.0}
	assert.False(t, added.InFirst())
	assert.True(t, added.InSecond())

	removed := &Difference{Path: "a", Before: 2.0, After: Absent}
	assert.True(t, removed.InFirst())
	assert.False(t, removed.InSecond())
}

func TestDifferenceMarshalJSON(t *testing.T) {
	cases := []struct {
		description string
		diff        *Difference
		expect      string
	}{
		{
			"change carries both values",
			&Difference{Path: "a.b", Before: 1.0, After: 2.0},
			`["~","a.b",1,2]`,
		},
		{
			"addition drops the absent side",
			&Difference{Path: "c", Before: Absent, After: true},
			`["+","c",true]`,
		},
		{
			"removal drops the absent side",
			&Difference{Path: "d[0]", Before: nil, After: Absent},
			`["-","d[0]",null]`,
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			data, err := json.Marshal(c.diff)
			require.NoError(t, err)
			assert.Equal(t, c.expect, string(data))
		})
	}
}

func TestDifferencesMarshalJSON(t *testing.T) {
	diffs := Differences{
		{Path: "a", Before: "x", After: "y"},
		{Path: "b", Before: Absent, After: 3.0},
	}

	data, err := json.Marshal(diffs)
	require.NoError(t, err)
	assert.JSONEq(t, `[["~","a","x","y"],["+","b",3]]`, string(data))
}

func TestAbsentString(t *testing.T) {
	assert.Equal(t, "<absent>", Absent.String())
}
