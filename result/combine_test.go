package result

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymjaber/fluent-unions-sub003/errors"
)

func TestCombine2(t *testing.T) {
	add := func(a, b int) int { return a + b }

	require.Equal(t, Ok(3), Combine2(Ok(1), Ok(2), add))

	first := errors.New("first", "1")
	second := errors.New("second", "2")

	r := Combine2(Fail[int](first), Fail[int](second), add)
	require.Same(t, first, r.Err())

	r = Combine2(Ok(1), Fail[int](second), add)
	require.Same(t, second, r.Err())
}

func TestCombine2_FailureSkipsCombiner(t *testing.T) {
	calls := 0
	Combine2(Fail[int](errors.New("c", "m")), Ok(2), func(a, b int) int {
		calls++
		return a + b
	})
	require.Zero(t, calls)
}

func TestCombine3(t *testing.T) {
	sum := func(a, b, c int) int { return a + b + c }

	require.Equal(t, Ok(6), Combine3(Ok(1), Ok(2), Ok(3), sum))

	middle := errors.New("middle", "m")
	r := Combine3(Ok(1), Fail[int](middle), Fail[int](errors.New("last", "m")), sum)
	require.Same(t, middle, r.Err())
}

func TestCombine8(t *testing.T) {
	sum := func(a, b, c, d, e, f, g, h int) int { return a + b + c + d + e + f + g + h }

	r := Combine8(Ok(1), Ok(2), Ok(3), Ok(4), Ok(5), Ok(6), Ok(7), Ok(8), sum)
	require.Equal(t, Ok(36), r)

	last := errors.New("last", "m")
	r = Combine8(Ok(1), Ok(2), Ok(3), Ok(4), Ok(5), Ok(6), Ok(7), Fail[int](last), sum)
	require.Same(t, last, r.Err())
}

func TestCombine_MixedTypes(t *testing.T) {
	r := Combine3(Ok("user"), Ok(42), Ok(true), func(name string, age int, active bool) string {
		if active {
			return name
		}
		return ""
	})
	require.Equal(t, Ok("user"), r)
}

func TestCollect2_AccumulatesBothFailures(t *testing.T) {
	first := errors.Validation("first", "1")
	second := errors.Validation("second", "2")

	r := Collect2(Fail[int](first), Fail[int](second), func(a, b int) int { return a + b })

	require.True(t, r.IsFailure())
	require.Equal(t, errors.KindAggregate, r.Err().Kind())
	children := r.Err().Errors()
	require.Len(t, children, 2)
	require.Same(t, first, children[0])
	require.Same(t, second, children[1])
}

func TestCollect2_SingleFailureIsNotAggregated(t *testing.T) {
	only := errors.New("only", "m")

	r := Collect2(Ok(1), Fail[int](only), func(a, b int) int { return a + b })
	require.Same(t, only, r.Err())

	r = Collect2(Fail[int](only), Ok(2), func(a, b int) int { return a + b })
	require.Same(t, only, r.Err())
}

func TestCollect2_AllSuccess(t *testing.T) {
	require.Equal(t, Ok(3), Collect2(Ok(1), Ok(2), func(a, b int) int { return a + b }))
}

func TestCollect3_FailureCountMatchesFailingOperands(t *testing.T) {
	a := errors.New("a", "1")
	c := errors.New("c", "3")

	r := Collect3(Fail[int](a), Ok(2), Fail[int](c), func(x, y, z int) int { return x + y + z })

	children := r.Err().Errors()
	require.Len(t, children, 2)
	require.Same(t, a, children[0])
	require.Same(t, c, children[1])
}

func TestCollect8_AllFailuresGathered(t *testing.T) {
	errs := make([]*errors.Error, 8)
	fails := make([]Result[int], 8)
	for i := range errs {
		errs[i] = errors.Newf("e", "failure %d", i)
		fails[i] = Fail[int](errs[i])
	}

	r := Collect8(fails[0], fails[1], fails[2], fails[3], fails[4], fails[5], fails[6], fails[7],
		func(a, b, c, d, e, f, g, h int) int { return 0 })

	children := r.Err().Errors()
	require.Len(t, children, 8)
	for i, child := range children {
		require.Same(t, errs[i], child)
	}
}

func TestCollect_AggregateOperandIsFlattened(t *testing.T) {
	agg := errors.Aggregate(errors.New("a", "1"), errors.New("b", "2"))
	other := errors.New("c", "3")

	r := Collect2(Fail[int](agg), Fail[int](other), func(a, b int) int { return a + b })

	children := r.Err().Errors()
	require.Len(t, children, 3)
	for _, child := range children {
		require.NotEqual(t, errors.KindAggregate, child.Kind())
	}
}
