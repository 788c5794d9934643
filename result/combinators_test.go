package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymjaber/fluent-unions-sub003/errors"
)

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }

	require.Equal(t, Ok(10), Map(Ok(5), double))

	failure := errors.NotFound("x", "x")
	r := Map(Fail[int](failure), double)
	require.Same(t, failure, r.Err())
}

func TestMap_FailureSkipsFunction(t *testing.T) {
	calls := 0
	Map(Fail[int](errors.New("c", "m")), func(v int) int { calls++; return v + 1 })
	require.Zero(t, calls)
}

func TestMap_ChangesType(t *testing.T) {
	require.Equal(t, Ok("5"), Map(Ok(5), strconv.Itoa))
}

func TestBind(t *testing.T) {
	parse := func(s string) Result[int] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Fail[int](errors.Validation("not.numeric", "not a number"))
		}
		return Ok(v)
	}

	require.Equal(t, Ok(5), Bind(Ok("5"), parse))

	r := Bind(Ok("x"), parse)
	require.Equal(t, "not.numeric", r.Err().Code())
}

func TestBind_FailureSkipsFunction(t *testing.T) {
	failure := errors.New("c", "m")
	calls := 0

	r := Bind(Fail[string](failure), func(s string) Result[int] {
		calls++
		return Ok(len(s))
	})

	require.Same(t, failure, r.Err())
	require.Zero(t, calls)
}

func TestFold(t *testing.T) {
	onSuccess := func(v int) string { return strconv.Itoa(v) }
	onFailure := func(err *errors.Error) string { return err.Code() }

	require.Equal(t, "5", Fold(Ok(5), onSuccess, onFailure))
	require.Equal(t, "c", Fold(Fail[int](errors.New("c", "m")), onSuccess, onFailure))
}

func TestFoldOutcome(t *testing.T) {
	onSuccess := func() string { return "done" }
	onFailure := func(err *errors.Error) string { return err.Code() }

	require.Equal(t, "done", FoldOutcome(Success(), onSuccess, onFailure))
	require.Equal(t, "c", FoldOutcome(Failure(errors.New("c", "m")), onSuccess, onFailure))
}

func TestFlatten(t *testing.T) {
	require.Equal(t, Ok(5), Flatten(Ok(Ok(5))))

	inner := errors.New("inner", "m")
	require.Same(t, inner, Flatten(Ok(Fail[int](inner))).Err())

	outer := errors.New("outer", "m")
	require.Same(t, outer, Flatten(Fail[Result[int]](outer)).Err())
}
