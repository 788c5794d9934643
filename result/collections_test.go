package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymjaber/fluent-unions-sub003/errors"
)

func parsePositive(s string) Result[int] {
	v, err := strconv.Atoi(s)
	if err != nil {
		return Fail[int](errors.Validation("not.numeric", s+" is not a number"))
	}
	if v <= 0 {
		return Fail[int](errors.Validation("not.positive", s+" is not positive"))
	}
	return Ok(v)
}

func TestSequence(t *testing.T) {
	r := Sequence([]Result[int]{Ok(1), Ok(2), Ok(3)})
	require.Equal(t, []int{1, 2, 3}, r.Must())
}

func TestSequence_FirstFailureWins(t *testing.T) {
	first := errors.New("first", "1")
	second := errors.New("second", "2")

	r := Sequence([]Result[int]{Ok(1), Fail[int](first), Fail[int](second)})
	require.Same(t, first, r.Err())
}

func TestSequence_Empty(t *testing.T) {
	require.Equal(t, []int{}, Sequence([]Result[int]{}).Must())
}

func TestCollectAll_AccumulatesEveryFailure(t *testing.T) {
	first := errors.New("first", "1")
	second := errors.New("second", "2")

	r := CollectAll([]Result[int]{Ok(1), Fail[int](first), Ok(3), Fail[int](second)})

	require.Equal(t, errors.KindAggregate, r.Err().Kind())
	children := r.Err().Errors()
	require.Len(t, children, 2)
	require.Same(t, first, children[0])
	require.Same(t, second, children[1])
}

func TestCollectAll_SingleFailureMatchesSequence(t *testing.T) {
	// With exactly one failing element the accumulating and fail-fast
	// collapses agree on the resulting error.
	only := errors.New("only", "m")
	input := []Result[int]{Ok(1), Fail[int](only), Ok(3)}

	require.Same(t, only, CollectAll(input).Err())
	require.Same(t, only, Sequence(input).Err())
}

func TestCollectAll_AllSuccess(t *testing.T) {
	require.Equal(t, []int{1, 2}, CollectAll([]Result[int]{Ok(1), Ok(2)}).Must())
}

func TestTraverse(t *testing.T) {
	r := Traverse([]string{"1", "2", "3"}, parsePositive)
	require.Equal(t, []int{1, 2, 3}, r.Must())
}

func TestTraverse_ShortCircuits(t *testing.T) {
	calls := 0
	f := func(s string) Result[int] {
		calls++
		return parsePositive(s)
	}

	r := Traverse([]string{"1", "x", "3"}, f)

	require.Equal(t, "not.numeric", r.Err().Code())
	require.Equal(t, 2, calls)
}

func TestTraverseAll_VisitsEveryElement(t *testing.T) {
	calls := 0
	f := func(s string) Result[int] {
		calls++
		return parsePositive(s)
	}

	r := TraverseAll([]string{"x", "2", "-3"}, f)

	require.Equal(t, 3, calls)
	children := r.Err().Errors()
	require.Len(t, children, 2)
	require.Equal(t, "not.numeric", children[0].Code())
	require.Equal(t, "not.positive", children[1].Code())
}

func TestPartition(t *testing.T) {
	first := errors.New("first", "1")
	second := errors.New("second", "2")

	values, errs := Partition([]Result[int]{Ok(1), Fail[int](first), Ok(3), Fail[int](second)})

	require.Equal(t, []int{1, 3}, values)
	require.Len(t, errs, 2)
	require.Same(t, first, errs[0])
	require.Same(t, second, errs[1])
}

func TestPartition_NoFailures(t *testing.T) {
	values, errs := Partition([]Result[int]{Ok(1), Ok(2)})
	require.Equal(t, []int{1, 2}, values)
	require.Empty(t, errs)
}
