package screentext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestManager_QueuePlacement(t *testing.T) {
	st := NewManager()

	st.AddText(Big, MakeBig("TEST_1", "Test String", 2, 5000))
	st.AddText(HighPriority, MakeHighPriority("TEST_1", "Test String", 5000))

	big := st.Text(Big)
	require.Len(t, big, 1)
	assert.Equal(t, "Test String", big[0].Text)
	assert.Equal(t, 5000, big[0].DurationMS)
	assert.Equal(t, 0, big[0].DisplayedMS)

	assert.Len(t, st.Text(HighPriority), 1)
	assert.Empty(t, st.Text(Help))

	st.Tick(6.0)

	assert.Empty(t, st.Text(Big))
	assert.Empty(t, st.Text(HighPriority))
}

func TestManager_BigScenario(t *testing.T) {
	st := NewManager()
	big := MakeBig("TEST_1", "Test String", 1, 5000)
	require.Equal(t, 50, big.Size)

	st.AddText(Big, big)
	require.Len(t, st.Text(Big), 1)
	assert.Equal(t, 0, st.Text(Big)[0].DisplayedMS)

	st.Tick(6.0)
	assert.Empty(t, st.Text(Big))
}

func TestManager_Clear(t *testing.T) {
	st := NewManager()
	st.AddText(Big, MakeBig("TEST_1", "Test String", 2, 5000))
	st.AddText(Help, MakeHelp("HELP", "Help"))

	assert.Len(t, st.Text(Big), 1)

	st.Clear(Big)

	assert.Empty(t, st.Text(Big))
	assert.Len(t, st.Text(Help), 1, "Clear must leave other categories alone")

	st.Clear(HighPriority) // empty queue, no-op
	st.Clear(Category(42)) // unregistered, no-op
}

func TestManager_ClearAll(t *testing.T) {
	st := NewManager()
	st.AddText(Big, MakeBig("A", "a", AlignCenter, 1000))
	st.AddText(Help, MakeHelp("B", "b"))
	st.AddText(HighPriority, MakeHighPriority("C", "c", 1000))

	st.ClearAll()

	for _, cat := range st.Categories() {
		assert.Empty(t, st.Text(cat), cat.String())
	}
}

func TestManager_Remove(t *testing.T) {
	st := NewManager()

	st.AddText(Big, MakeBig("TEST_2", "Test String", 2, 5000))
	st.AddText(Big, MakeBig("TEST_1", "Test String", 2, 5000))
	st.AddText(Big, MakeBig("TEST_1", "Test String", 2, 5000))

	assert.Len(t, st.Text(Big), 3)

	st.Remove(Big, "TEST_1")

	assert.Equal(t, []string{"TEST_2"}, ids(st.Text(Big)))
}

func TestManager_RemoveKeepsOrderAndOtherCategories(t *testing.T) {
	st := NewManager()
	for _, id := range []string{"A", "X", "B", "X", "C"} {
		st.AddText(HighPriority, MakeHighPriority(id, "text", 5000))
	}
	st.AddText(Big, MakeBig("X", "text", AlignCenter, 5000))

	st.Remove(HighPriority, "X")

	assert.Equal(t, []string{"A", "B", "C"}, ids(st.Text(HighPriority)))
	assert.Equal(t, []string{"X"}, ids(st.Text(Big)))

	st.Remove(HighPriority, "missing")
	assert.Len(t, st.Text(HighPriority), 3)
}

func TestManager_RemoveAny(t *testing.T) {
	st := NewManager()
	for _, id := range []string{"A", "B", "C", "B", "D"} {
		st.AddText(Big, MakeBig(id, "text", AlignCenter, 5000))
	}

	st.RemoveAny(Big, "B", "D")
	assert.Equal(t, []string{"A", "C"}, ids(st.Text(Big)))

	st.RemoveAny(Big)
	assert.Len(t, st.Text(Big), 2)
}

func TestManager_AddDoesNotDedup(t *testing.T) {
	st := NewManager()
	e := MakeHelp("SAME", "text")
	st.AddText(Help, e)
	st.AddText(Help, e)
	assert.Equal(t, 2, st.Len(Help))
}

func TestManager_TickAccumulates(t *testing.T) {
	st := NewManager()
	st.AddText(HighPriority, MakeHighPriority("A", "text", 1000))

	st.Tick(0.25)
	require.Len(t, st.Text(HighPriority), 1)
	assert.Equal(t, 250, st.Text(HighPriority)[0].DisplayedMS)

	st.Tick(0.5)
	require.Len(t, st.Text(HighPriority), 1)
	assert.Equal(t, 750, st.Text(HighPriority)[0].DisplayedMS)

	st.Tick(0)
	assert.Equal(t, 750, st.Text(HighPriority)[0].DisplayedMS)
}

func TestManager_TickEvictsAtBoundary(t *testing.T) {
	st := NewManager()
	st.AddText(HighPriority, MakeHighPriority("A", "text", 1000))

	st.Tick(0.999)
	require.Len(t, st.Text(HighPriority), 1)

	st.Tick(0.001)
	assert.Empty(t, st.Text(HighPriority), "entry expires once displayed == duration")

	st.Tick(10)
	assert.Empty(t, st.Text(HighPriority))
}

func TestManager_TickIsStableAcrossCategories(t *testing.T) {
	st := NewManager()
	st.AddText(Big, MakeBig("long", "text", AlignCenter, 3000))
	st.AddText(Big, MakeBig("short", "text", AlignCenter, 1000))
	st.AddText(Big, MakeBig("mid", "text", AlignCenter, 2000))
	st.AddText(Help, MakeHelp("help", "text"))

	st.Tick(1.5)

	assert.Equal(t, []string{"long", "mid"}, ids(st.Text(Big)))
	require.Len(t, st.Text(Help), 1)
	assert.Equal(t, 1500, st.Text(Help)[0].DisplayedMS)
}

func TestManager_TickRoundsToNearestMillisecond(t *testing.T) {
	assert.Equal(t, 17, DeltaMS(1.0/60.0))
	assert.Equal(t, 4350, DeltaMS(4.35))
	assert.Equal(t, 6000, DeltaMS(6.0))
	assert.Equal(t, 0, DeltaMS(0.0004))
	assert.Equal(t, 1, DeltaMS(0.0005))
}

func TestManager_NegativeTickIsClamped(t *testing.T) {
	if strictContracts {
		t.Skip("debug build panics on negative deltas")
	}
	st := NewManager()
	st.AddText(HighPriority, MakeHighPriority("A", "text", 1000))
	st.Tick(0.5)

	st.Tick(-3)

	require.Len(t, st.Text(HighPriority), 1)
	assert.Equal(t, 500, st.Text(HighPriority)[0].DisplayedMS)
}

func TestManager_RegisterCategory(t *testing.T) {
	const Subtitle Category = 10

	st := NewManager()
	st.RegisterCategory(Subtitle)
	st.RegisterCategory(Subtitle)

	assert.Equal(t, []Category{Big, HighPriority, Help, Subtitle}, st.Categories())

	st.AddText(Subtitle, MakeHighPriority("S", "subtitle", 500))
	st.AddText(Big, MakeBig("B", "big", AlignCenter, 5000))
	st.Tick(0.5)

	assert.Empty(t, st.Text(Subtitle), "new categories are aged by the same tick")
	assert.Len(t, st.Text(Big), 1)
}

func TestManager_HugeTickSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, DeltaMS(math.Inf(1)))
	assert.Equal(t, math.MaxInt, DeltaMS(1e19))

	st := NewManager()
	st.AddText(Big, MakeBig("A", "a", AlignCenter, 5000))
	st.AddText(Help, MakeHelp("B", "b"))
	st.Tick(math.Inf(1))
	for _, cat := range st.Categories() {
		assert.Empty(t, st.Text(cat), cat.String())
	}

	st.AddText(HighPriority, MakeHighPriority("C", "c", math.MaxInt))
	st.Tick(4.0)
	st.Tick(float64(math.MaxInt64 / 1000))
	assert.Empty(t, st.Text(HighPriority), "elapsed time must never wrap negative")
}

func TestManager_TextDoesNotLeakAppends(t *testing.T) {
	st := NewManager()
	st.AddText(Big, MakeBig("A", "a", AlignCenter, 5000))
	st.AddText(Big, MakeBig("B", "b", AlignCenter, 5000))
	st.Remove(Big, "B")

	view := append(st.Text(Big), MakeBig("X", "x", AlignCenter, 5000))
	st.AddText(Big, MakeBig("C", "c", AlignCenter, 5000))

	assert.Equal(t, []string{"A", "X"}, ids(view))
	assert.Equal(t, []string{"A", "C"}, ids(st.Text(Big)))
}
