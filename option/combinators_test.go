package option

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }

	require.Equal(t, Some(10), Map(Some(5), double))
	require.Equal(t, None[int](), Map(None[int](), double))
}

func TestMap_ChangesType(t *testing.T) {
	require.Equal(t, Some("5"), Map(Some(5), strconv.Itoa))
}

func TestMap_PreservesPresence(t *testing.T) {
	f := strconv.Itoa
	for _, o := range []Option[int]{Some(0), Some(7), None[int]()} {
		require.Equal(t, o.IsNone(), Map(o, f).IsNone())
	}
}

func TestMap_NoneSkipsFunction(t *testing.T) {
	calls := 0
	Map(None[int](), func(v int) int { calls++; return v })
	require.Zero(t, calls)
}

func TestBind(t *testing.T) {
	half := func(v int) Option[int] {
		if v%2 != 0 {
			return None[int]()
		}
		return Some(v / 2)
	}

	require.Equal(t, Some(2), Bind(Some(4), half))
	require.Equal(t, None[int](), Bind(Some(3), half))
	require.Equal(t, None[int](), Bind(None[int](), half))
}

func TestBind_NoneSkipsFunction(t *testing.T) {
	calls := 0
	o := Bind(None[int](), func(v int) Option[int] {
		calls++
		return Some(v * 2)
	})

	require.Equal(t, None[int](), o)
	require.Zero(t, calls)
}

func TestFold(t *testing.T) {
	onSome := func(v int) string { return strconv.Itoa(v) }
	onNone := func() string { return "none" }

	require.Equal(t, "5", Fold(Some(5), onSome, onNone))
	require.Equal(t, "none", Fold(None[int](), onSome, onNone))
}

func TestFlatten(t *testing.T) {
	require.Equal(t, Some(5), Flatten(Some(Some(5))))
	require.Equal(t, None[int](), Flatten(Some(None[int]())))
	require.Equal(t, None[int](), Flatten(None[Option[int]]()))
}

func TestZip2(t *testing.T) {
	add := func(a, b int) int { return a + b }

	require.Equal(t, Some(3), Zip2(Some(1), Some(2), add))
	require.Equal(t, None[int](), Zip2(None[int](), Some(2), add))
	require.Equal(t, None[int](), Zip2(Some(1), None[int](), add))
}

func TestZip2_AbsenceSkipsCombiner(t *testing.T) {
	calls := 0
	Zip2(Some(1), None[int](), func(a, b int) int { calls++; return a + b })
	require.Zero(t, calls)
}

func TestZip3(t *testing.T) {
	concat := func(a, b, c string) string { return a + b + c }

	require.Equal(t, Some("abc"), Zip3(Some("a"), Some("b"), Some("c"), concat))
	require.Equal(t, None[string](), Zip3(Some("a"), None[string](), Some("c"), concat))
}
