package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriterion(t *testing.T) {
	cases := []struct {
		in   string
		want RankCriterion
	}{
		{"", ByPrice},
		{"price", ByPrice},
		{"PRICE", ByPrice},
		{" duration ", ByDuration},
	}
	for _, c := range cases {
		got, err := ParseCriterion(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}

	_, err := ParseCriterion("cheapest")
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestQueryValidate(t *testing.T) {
	valid := query("KBP", "LWO")
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*Query){
		"missing origin":      func(q *Query) { q.Origin = "" },
		"missing destination": func(q *Query) { q.Dest = "" },
		"same endpoints":      func(q *Query) { q.Dest = q.Origin },
		"bad criterion":       func(q *Query) { q.Criterion = "cheapest" },
		"zero limit":          func(q *Query) { q.Limit = 0 },
		"negative offset":     func(q *Query) { q.Offset = -1 },
	} {
		q := query("KBP", "LWO")
		mutate(&q)
		assert.ErrorIs(t, q.Validate(), ErrInvalidQuery, name)
	}
}
