package taskeither_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/effect_stack_go/either"
	"github.com/on-the-ground/effect_stack_go/function"
	"github.com/on-the-ground/effect_stack_go/option"
	"github.com/on-the-ground/effect_stack_go/task"
	"github.com/on-the-ground/effect_stack_go/taskeither"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evenOrInvalid(n int) taskeither.TaskEither[string, int] {
	if n%2 == 0 {
		return taskeither.Right[string](n)
	}
	return taskeither.Left[string, int]("Invalid number")
}

func TestTaskEither_RightChainMap(t *testing.T) {
	ctx := context.Background()

	res, err := function.Pipe2(
		taskeither.RightTask[string](task.Of(42)),
		taskeither.Chain(evenOrInvalid),
		taskeither.Map[string](func(n int) string { return fmt.Sprintf("%d!", n) }),
	)(ctx)

	require.NoError(t, err)
	assert.Equal(t, either.Right[string]("42!"), res)
}

func TestTaskEither_OddCarriesErrorAndSkipsMap(t *testing.T) {
	ctx := context.Background()
	mapped := false

	res, err := function.Pipe2(
		taskeither.RightTask[string](task.Of(3)),
		taskeither.Chain(evenOrInvalid),
		taskeither.Map[string](func(n int) string {
			mapped = true
			return fmt.Sprintf("%d!", n)
		}),
	)(ctx)

	require.NoError(t, err)
	assert.False(t, mapped, "map must not run on the error channel")
	e, ok := res.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "Invalid number", e)
}

func TestTaskEither_LeftIsCarriedUnchanged(t *testing.T) {
	ctx := context.Background()
	calls := 0
	step := func(n int) taskeither.TaskEither[error, int] {
		calls++
		return taskeither.Right[error](n + 1)
	}
	cause := errors.New("Invalid number")

	res, err := function.Pipe3(
		taskeither.Left[error, int](cause),
		taskeither.Chain(step),
		taskeither.Chain(step),
		taskeither.Map[error](func(n int) int { return n * 100 }),
	)(ctx)

	require.NoError(t, err)
	assert.Zero(t, calls)
	got, ok := res.GetLeft()
	require.True(t, ok)
	assert.Same(t, cause, got)
}

func TestTaskEither_Bimap(t *testing.T) {
	ctx := context.Background()
	both := taskeither.Bimap(
		func(e string) error { return errors.New(e) },
		func(n int) string { return fmt.Sprint(n) },
	)

	res, err := both(function.Pipe1(taskeither.RightTask[string](task.Of(3)), taskeither.Chain(evenOrInvalid)))(ctx)
	require.NoError(t, err)
	e, ok := res.GetLeft()
	require.True(t, ok)
	assert.EqualError(t, e, "Invalid number")

	res, err = both(taskeither.Right[string](4))(ctx)
	require.NoError(t, err)
	assert.Equal(t, either.Right[error]("4"), res)
}

func TestTaskEither_MapLeftLeavesRight(t *testing.T) {
	ctx := context.Background()
	wrap := taskeither.MapLeft[string, string, int](func(e string) string { return "wrapped: " + e })

	res, err := wrap(taskeither.Right[string](9))(ctx)
	require.NoError(t, err)
	assert.Equal(t, either.Right[string](9), res)

	res, err = wrap(taskeither.Left[string, int]("x"))(ctx)
	require.NoError(t, err)
	assert.Equal(t, either.Left[string, int]("wrapped: x"), res)
}

func TestTaskEither_OrElseRecovers(t *testing.T) {
	ctx := context.Background()
	recoverWithLength := taskeither.OrElse(func(e string) taskeither.TaskEither[error, int] {
		return taskeither.Right[error](len(e))
	})

	res, err := recoverWithLength(taskeither.Left[string, int]("four"))(ctx)
	require.NoError(t, err)
	assert.Equal(t, either.Right[error](4), res)
}

func TestTaskEither_TryCatchAndExecutionErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	res, err := taskeither.TryCatch(task.Fail[int](boom), func(err error) string { return err.Error() })(ctx)
	require.NoError(t, err)
	assert.Equal(t, either.Left[string, int]("boom"), res)

	called := false
	_, err = taskeither.Chain(func(n int) taskeither.TaskEither[string, int] {
		called = true
		return taskeither.Right[string](n)
	})(taskeither.RightTask[string](task.Fail[int](boom)))(ctx)
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestTaskEither_FromOptionFoldGetOrElse(t *testing.T) {
	ctx := context.Background()
	missing := taskeither.FromOption[string, int](function.Constant("missing"))

	res, err := missing(option.None[int]())(ctx)
	require.NoError(t, err)
	assert.Equal(t, either.Left[string, int]("missing"), res)

	n, err := taskeither.GetOrElse(func(string) int { return 0 })(missing(option.Some(6)))(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	s, err := taskeither.Fold(
		func(e string) string { return "error: " + e },
		func(n int) string { return fmt.Sprint(n) },
	)(taskeither.LeftTask[string, int](task.Of("late")))(ctx)
	require.NoError(t, err)
	assert.Equal(t, "error: late", s)

	res, err = taskeither.FromEither(either.Right[string](1))(ctx)
	require.NoError(t, err)
	assert.Equal(t, either.Right[string](1), res)
}

func ExampleBimap() {
	program := function.Pipe2(
		taskeither.RightTask[string](task.Of(3)),
		taskeither.Chain(func(n int) taskeither.TaskEither[string, int] {
			if n%2 == 0 {
				return taskeither.Right[string](n)
			}
			return taskeither.Left[string, int]("Invalid number")
		}),
		taskeither.Bimap(
			func(e string) error { return errors.New(e) },
			func(n int) string { return fmt.Sprintf("%d!", n) },
		),
	)

	res, _ := program(context.Background())
	fmt.Println(res)
	// Output: Left(Invalid number)
}
