package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func direct(t *testing.T, id, dep, arr string, cents int64) Route {
	t.Helper()
	return Route{Legs: []Leg{{Flight: flight(t, id, "KBP", "LWO", dep, arr, cents)}}}
}

func connecting(t *testing.T, id1, id2 string, cents1, cents2 int64) Route {
	t.Helper()
	return Route{Legs: []Leg{
		{Flight: flight(t, id1, "KBP", "ODS", "2024-06-01 07:00", "2024-06-01 08:20", cents1)},
		{Flight: flight(t, id2, "ODS", "LWO", "2024-06-01 09:10", "2024-06-01 10:30", cents2)},
	}}
}

func keys(routes []Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Key()
	}
	return out
}

func TestRankByPriceAscending(t *testing.T) {
	ranked := RankAll([]Route{
		direct(t, "F1", "2024-06-01 08:00", "2024-06-01 09:10", 5000),
		direct(t, "F2", "2024-06-01 12:00", "2024-06-01 13:10", 3000),
		connecting(t, "F3", "F4", 1000, 1500),
	}, ByPrice)

	assert.Equal(t, []string{"F3>F4", "F2", "F1"}, keys(ranked))
}

func TestRankByDurationAscending(t *testing.T) {
	ranked := RankAll([]Route{
		connecting(t, "F3", "F4", 1000, 1500), // 3h30m door to door
		direct(t, "F1", "2024-06-01 08:00", "2024-06-01 09:10", 5000), // 1h10m
		direct(t, "F2", "2024-06-01 12:00", "2024-06-01 14:10", 3000), // 2h10m
	}, ByDuration)

	assert.Equal(t, []string{"F1", "F2", "F3>F4"}, keys(ranked))
}

func TestEqualCriterionPrefersDirect(t *testing.T) {
	// Same total price; the connecting route loses on the transfer tie-break
	// even though it departs earlier.
	ranked := RankAll([]Route{
		connecting(t, "F3", "F4", 2000, 2000),
		direct(t, "F1", "2024-06-01 12:00", "2024-06-01 13:10", 4000),
	}, ByPrice)

	assert.Equal(t, []string{"F1", "F3>F4"}, keys(ranked))
}

func TestEqualCriterionAndTransfersPrefersEarlierDeparture(t *testing.T) {
	ranked := RankAll([]Route{
		direct(t, "F2", "2024-06-01 12:00", "2024-06-01 13:10", 4000),
		direct(t, "F1", "2024-06-01 08:00", "2024-06-01 09:10", 4000),
	}, ByPrice)

	assert.Equal(t, []string{"F1", "F2"}, keys(ranked))
}

func TestFullTiePrefersLegIdentityOrder(t *testing.T) {
	ranked := RankAll([]Route{
		direct(t, "FB", "2024-06-01 08:00", "2024-06-01 09:10", 4000),
		direct(t, "FA", "2024-06-01 08:00", "2024-06-01 09:10", 4000),
	}, ByPrice)

	assert.Equal(t, []string{"FA", "FB"}, keys(ranked))
}

func TestDuplicateRoutesAppearOnce(t *testing.T) {
	r := direct(t, "F1", "2024-06-01 08:00", "2024-06-01 09:10", 4000)
	ranked := RankAll([]Route{r, r, r}, ByPrice)
	assert.Len(t, ranked, 1)
}

func TestRankingIsDeterministic(t *testing.T) {
	a := []Route{
		direct(t, "F1", "2024-06-01 08:00", "2024-06-01 09:10", 4000),
		connecting(t, "F3", "F4", 1000, 1500),
		direct(t, "F2", "2024-06-01 12:00", "2024-06-01 13:10", 3000),
	}
	b := []Route{a[2], a[0], a[1]}

	assert.Equal(t, keys(RankAll(a, ByPrice)), keys(RankAll(b, ByPrice)))
	assert.Equal(t, keys(RankAll(a, ByDuration)), keys(RankAll(b, ByDuration)))
}

func TestPaginationLaw(t *testing.T) {
	var feasible []Route
	deps := []string{"08:00", "09:00", "10:00", "11:00", "12:00"}
	for i, dep := range deps {
		feasible = append(feasible, direct(t,
			"F"+string(rune('1'+i)),
			"2024-06-01 "+dep, "2024-06-01 23:00",
			int64(1000*(i+1))))
	}
	ranked := RankAll(feasible, ByPrice)

	// Concatenating all pages reproduces the ranked set exactly once.
	var gathered []string
	for offset := 0; offset < len(ranked); offset += 2 {
		page, err := Paginate(ranked, 2, offset)
		require.NoError(t, err)
		assert.Equal(t, 5, page.Total)
		gathered = append(gathered, keys(page.Routes)...)
	}
	assert.Equal(t, keys(ranked), gathered)

	// limit=2 on a feasible set of 5, offset=4: one route left.
	page, err := Paginate(ranked, 2, 4)
	require.NoError(t, err)
	assert.Len(t, page.Routes, 1)
	assert.Equal(t, 5, page.Total)
}

func TestOffsetBeyondEndReturnsEmptyPage(t *testing.T) {
	ranked := RankAll([]Route{
		direct(t, "F1", "2024-06-01 08:00", "2024-06-01 09:10", 4000),
	}, ByPrice)

	page, err := Paginate(ranked, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, page.Routes)
	assert.Equal(t, 1, page.Total)
}

func TestNonPositiveLimitIsRejected(t *testing.T) {
	_, err := Rank(nil, ByPrice, 0, 0)
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Rank(nil, ByPrice, -1, 0)
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestNegativeOffsetIsRejected(t *testing.T) {
	_, err := Rank(nil, ByPrice, 5, -1)
	require.ErrorIs(t, err, ErrInvalidQuery)
}
