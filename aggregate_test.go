package hasharray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hasharray/keypath"
	"github.com/hupe1980/hasharray/testutil"
)

type ride struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Speed  float64 `json:"speed"`
	Weight float64 `json:"weight"`
	Stats  map[string]any
	Active *bool `json:"active"`
}

func rides() (*Collection[*ride], []*ride) {
	yes, no := true, false
	rs := []*ride{
		{ID: "r1", Kind: "bike", Speed: 10, Weight: 0.2, Stats: map[string]any{"laps": 3}, Active: &yes},
		{ID: "r2", Kind: "bike", Speed: 5, Weight: 0.3, Stats: map[string]any{"laps": 1}, Active: &no},
		{ID: "r3", Kind: "car", Speed: 50, Weight: 0.5},
	}
	c := MustNew[*ride](keypath.Fields("id", "kind"))
	c.Add(rs...)
	return c, rs
}

func TestForEach(t *testing.T) {
	c, rs := rides()

	var seen []*ride
	c.ForEach(Keys("bike"), func(r *ride) { seen = append(seen, r) })
	assert.Equal(t, []*ride{rs[0], rs[1]}, seen)

	seen = nil
	c.ForEach(Everything, func(r *ride) { seen = append(seen, r) })
	assert.Equal(t, rs, seen)
}

func TestForEachDeep(t *testing.T) {
	c, rs := rides()

	var values []any
	var items []*ride
	c.ForEachDeep(Everything, keypath.Path("Stats", "laps"), func(v any, r *ride) {
		values = append(values, v)
		items = append(items, r)
	})

	assert.Equal(t, []any{3, 1, nil}, values)
	assert.Equal(t, rs, items)
}

func TestSum(t *testing.T) {
	c, _ := rides()

	assert.Equal(t, 65.0, c.Sum(Everything, keypath.Field("speed")))
	assert.Equal(t, 15.0, c.Sum(Keys("bike"), keypath.Field("speed")))
	assert.Equal(t, 4.0, c.Sum(Everything, keypath.Path("Stats", "laps")))
	assert.Equal(t, 0.0, c.Sum(Keys("nope"), keypath.Field("speed")))
	assert.Equal(t, 0.0, c.Sum(Everything, keypath.Field("kind")), "non-numeric counts as zero")
}

func TestWeightedSum(t *testing.T) {
	c, _ := rides()

	got := c.WeightedSum(Keys("bike"), keypath.Field("speed"), keypath.Field("weight"))
	assert.InDelta(t, 10*0.2+5*0.3, got, 1e-9)
}

func TestAverage(t *testing.T) {
	c, _ := rides()

	assert.InDelta(t, 7.5, c.Average(Keys("bike"), keypath.Field("speed")), 1e-9)
	assert.InDelta(t, 65.0/3, c.Average(Everything, keypath.Field("speed")), 1e-9)
	assert.Equal(t, 0.0, c.Average(Keys("nope"), keypath.Field("speed")))

	// Items without laps still count toward the denominator.
	assert.InDelta(t, 4.0/3, c.Average(Everything, keypath.Path("Stats", "laps")), 1e-9)
}

func TestWeightedAverage(t *testing.T) {
	c, _ := rides()

	got := c.WeightedAverage(Keys("bike"), keypath.Field("speed"), keypath.Field("weight"))
	assert.InDelta(t, 7.0, got, 1e-9)

	got = c.WeightedAverage(Everything, keypath.Field("speed"), keypath.Field("weight"))
	assert.InDelta(t, 10*0.2+5*0.3+50*0.5, got, 1e-9)

	assert.Equal(t, 0.0, c.WeightedAverage(Everything, keypath.Field("speed"), keypath.Field("missing")))
}

func TestFilter(t *testing.T) {
	c, rs := rides()
	before := c.All()

	fast := c.Filter(Everything, func(r *ride) bool { return r.Speed > 7 })

	assert.Equal(t, []*ride{rs[0], rs[2]}, fast.All())
	assert.Equal(t, before, c.All(), "source unchanged")
	assert.Equal(t, c.KeyFields(), fast.KeyFields())
	assert.Equal(t, []*ride{rs[0]}, fast.GetAsArray("bike"))

	fast.Remove(rs[0])
	assert.True(t, c.Has("r1"))
}

func TestFilter_Selector(t *testing.T) {
	c, rs := rides()

	got := c.Filter(Keys("car", "r2"), func(*ride) bool { return true })
	assert.Equal(t, []*ride{rs[2], rs[1]}, got.All())
}

func TestFilterBy(t *testing.T) {
	c, rs := rides()

	active := c.FilterBy(Everything, keypath.Field("active"))
	assert.Equal(t, []*ride{rs[0]}, active.All(), "false and absent are dropped")

	withStats := c.FilterBy(Everything, keypath.Field("Stats"))
	assert.Equal(t, []*ride{rs[0], rs[1]}, withStats.All())
}

func TestSample(t *testing.T) {
	rng := testutil.NewRNG(42)
	c := MustNew[*testutil.Record](keypath.Fields("id", "group"), WithRandom(rng))
	recs := rng.Records("r", 50, "red", "green")
	c.AddAll(recs)

	got := c.Sample(10, nil)
	require.Len(t, got, 10)
	seen := map[*testutil.Record]bool{}
	for _, r := range got {
		assert.False(t, seen[r], "duplicate draw")
		seen[r] = true
		assert.True(t, c.seq.Contains(r))
	}

	red := c.Sample(100, Keys("red"))
	assert.Len(t, red, 25, "clamped to population")
	for _, r := range red {
		assert.Equal(t, "red", r.Group)
	}

	assert.Empty(t, c.Sample(0, nil))
	assert.Empty(t, c.Sample(-3, nil))
	assert.Empty(t, c.Sample(5, Keys("blue")))
	assert.Empty(t, c.Sample(3, Keys()))
	assert.Empty(t, c.Sample(3, Selector{}))
	assert.Equal(t, 50, c.Len(), "sampling does not mutate")
}

func TestSample_Deterministic(t *testing.T) {
	build := func() *Collection[*testutil.Record] {
		rng := testutil.NewRNG(7)
		c := MustNew[*testutil.Record](keypath.Fields("id"), WithRandom(rng))
		c.AddAll(testutil.NewRNG(1).Records("r", 30))
		return c
	}

	a := build().Sample(5, nil)
	b := build().Sample(5, nil)
	require.Len(t, a, 5)
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestSample_CoversPopulation(t *testing.T) {
	c := MustNew[*testutil.Record](keypath.Fields("id"), WithRandom(testutil.NewRNG(99)))
	recs := testutil.NewRNG(5).Records("r", 4)
	c.AddAll(recs)

	counts := map[string]int{}
	for i := 0; i < 400; i++ {
		for _, r := range c.Sample(1, Everything) {
			counts[r.ID]++
		}
	}
	for _, r := range recs {
		assert.Greater(t, counts[r.ID], 50, r.ID)
	}
}

func TestSample_WholeSequenceAfterRemovals(t *testing.T) {
	rng := testutil.NewRNG(3)
	c := MustNew[*testutil.Record](keypath.Fields("id"), WithRandom(rng))
	recs := rng.Records("r", 12)
	c.AddAll(recs)
	c.Remove(recs[0], recs[5], recs[11])

	got := c.Sample(100, nil)
	assert.ElementsMatch(t, c.All(), got)

	var ids []any
	assert.Empty(t, c.Sample(4, Keys(ids...)))
}
