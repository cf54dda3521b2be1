package shapecache

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/seuros/gopher-shapes/src/internal/testutil"
	"github.com/seuros/gopher-shapes/src/logging"
	"github.com/seuros/gopher-shapes/src/shapes"
	"github.com/stretchr/testify/require"
)

func newTestCache() *Cache {
	cfg := DefaultConfig()
	cfg.Observability.EnableMetrics = false
	return New(cfg)
}

func sampleCommands() shapes.Commands {
	return shapes.Commands{shapes.Command("mt"), shapes.Number(10), shapes.Number(20), shapes.HexColor("#ff0000")}
}

func TestAddNormalizesColors(t *testing.T) {
	c := newTestCache()

	require.NoError(t, c.Add("shapeA", sampleCommands()))

	got, ok := c.Lookup("shapeA")
	require.True(t, ok)
	require.Equal(t, []interface{}{"mt", 10.0, 20.0, uint32(16711680)}, got.Values())
	require.True(t, got.Normalized())
}

func TestAddLeavesCallerListUntouched(t *testing.T) {
	c := newTestCache()
	input := sampleCommands()

	require.NoError(t, c.Add("shapeA", input))
	require.Equal(t, shapes.HexColor("#ff0000"), input[3])

	input[0] = shapes.Command("lt")
	got, _ := c.Lookup("shapeA")
	require.Equal(t, shapes.Command("mt"), got[0], "stored list must not alias the caller's")
}

func TestAddRejectsBadColor(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Add("keep", sampleCommands()))

	err := c.Add("keep", shapes.Commands{shapes.HexColor("#nothex")})
	require.ErrorIs(t, err, shapes.ErrInvalidColorFormat)

	got, ok := c.Lookup("keep")
	require.True(t, ok)
	require.Len(t, got, 4, "failed add must not replace the existing entry")
}

func TestAddOverwrites(t *testing.T) {
	c := newTestCache()
	second := shapes.Commands{shapes.Command("lt"), shapes.Number(1), shapes.Number(2)}

	require.NoError(t, c.Add("k", sampleCommands()))
	require.NoError(t, c.Add("k", second))

	got, ok := c.Lookup("k")
	require.True(t, ok)
	require.True(t, got.Equal(second))
	require.Equal(t, 1, c.Len())
}

func TestLookupAbsent(t *testing.T) {
	c := newTestCache()

	got, ok := c.Lookup("missing")
	require.False(t, ok)
	require.Nil(t, got)
}

func TestLookupReturnsSharedReference(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Add("k", sampleCommands()))

	a, _ := c.Lookup("k")
	b, _ := c.Lookup("k")
	require.Same(t, &a[0], &b[0])
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Add("k", sampleCommands()))

	c.Remove("absent")
	c.Remove("absent")
	require.Equal(t, []string{"k"}, c.Keys())

	c.Remove("k")
	c.Remove("k")
	_, ok := c.Lookup("k")
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestRemoveClearsStoredTokens(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Add("k", sampleCommands()))

	held, _ := c.Lookup("k")
	c.Remove("k")

	for _, tok := range held {
		require.Equal(t, shapes.KindInvalid, tok.Kind)
	}
}

func TestRemoveAll(t *testing.T) {
	c := newTestCache()
	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, c.Add(key, sampleCommands()))
	}

	c.RemoveAll("a", "c", "zzz")
	require.Equal(t, []string{"b"}, c.Keys())

	c.RemoveAll()
	require.Equal(t, 1, c.Len())
}

func TestAddAllMatchesIndividualAdds(t *testing.T) {
	x := sampleCommands()
	y := shapes.Commands{shapes.Command("f"), shapes.HexColor("#00FF00"), shapes.Command("dc"), shapes.Number(5), shapes.Number(5), shapes.Number(2)}

	batch := newTestCache()
	require.NoError(t, batch.AddAll(map[string]shapes.Commands{"a": x, "b": y}))

	single := newTestCache()
	require.NoError(t, single.Add("a", x))
	require.NoError(t, single.Add("b", y))

	for _, key := range []string{"a", "b"} {
		fromBatch, ok := batch.Lookup(key)
		require.True(t, ok)
		fromSingle, ok := single.Lookup(key)
		require.True(t, ok)
		require.True(t, fromBatch.Equal(fromSingle), "key %s", key)
	}
}

func TestAddAllIsAllOrNothing(t *testing.T) {
	c := newTestCache()

	err := c.AddAll(map[string]shapes.Commands{
		"good": sampleCommands(),
		"bad":  {shapes.HexColor("#12")},
	})
	require.ErrorIs(t, err, shapes.ErrInvalidColorFormat)
	require.Zero(t, c.Len())
}

func TestClear(t *testing.T) {
	c := newTestCache()
	keys := []string{"a", "b", "c"}
	for _, key := range keys {
		require.NoError(t, c.Add(key, sampleCommands()))
	}

	c.Clear()

	for _, key := range keys {
		_, ok := c.Lookup(key)
		require.False(t, ok, "key %s should be gone", key)
	}
	require.Empty(t, c.Keys())

	c.Clear()
	require.Zero(t, c.Len())
}

func TestLoad(t *testing.T) {
	c := newTestCache()

	keys, err := c.Load(nil, testutil.Sample)
	require.NoError(t, err)
	require.Equal(t, testutil.SampleKeys, keys)
	require.Equal(t, testutil.SampleKeys, c.Keys())

	curve, ok := c.Lookup("curve")
	require.True(t, ok)
	require.Equal(t, shapes.Color(0x0000ff), curve[1])
	require.True(t, curve.Normalized())
}

func TestLoadWithDecoderRejectsBadText(t *testing.T) {
	dec, err := shapes.NewDecoder()
	require.NoError(t, err)

	c := newTestCache()
	_, err = c.Load(dec, "a mt 1\nb mt one")
	require.ErrorIs(t, err, shapes.ErrInvalidNumericToken)
	require.Zero(t, c.Len(), "decode failure must not register anything")
}

func TestCacheLogging(t *testing.T) {
	var out bytes.Buffer
	logger := logging.NewConsoleLoggerWithOutput(logging.LogLevelDebug, &out, &out)
	logger.SetTimeFormat("")

	cfg := DefaultConfig()
	cfg.Logger = logger
	cfg.Observability.EnableMetrics = false
	c := New(cfg)

	require.NoError(t, c.Add("k", sampleCommands()))
	require.NoError(t, c.Add("k", sampleCommands()))
	require.Error(t, c.Add("bad", shapes.Commands{shapes.HexColor("#")}))
	c.Remove("k")
	c.Clear()

	logged := out.String()
	require.Contains(t, logged, "registered shape | key=k tokens=4 replaced=false")
	require.Contains(t, logged, "replaced=true")
	require.Contains(t, logged, "WARN [gopher-shapes] rejected shape | key=bad")
	require.Contains(t, logged, "removed shape | key=k")
	require.Contains(t, logged, "cleared shape cache | removed=0")
}

func TestNewWithNilConfig(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add("k", nil))

	got, ok := c.Lookup("k")
	require.True(t, ok)
	require.Empty(t, got)
}

func TestConcurrentAccess(t *testing.T) {
	c := newTestCache()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("w%d-%d", w, i%10)
				_ = c.Add(key, sampleCommands())
				if got, ok := c.Lookup(key); ok {
					_ = len(got)
				}
				if i%7 == 0 {
					c.Remove(key)
				}
			}
		}(w)
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), 80)
	c.Clear()
	require.Zero(t, c.Len())
}
