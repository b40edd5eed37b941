package taskeither

import (
	"context"
	"testing"

	"github.com/benbjohnson/immutable"

	"github.com/ib-77/fpkit/pkg/fp/either"
)

func listOf[T any](vs ...T) *immutable.List[T] {
	b := immutable.NewListBuilder[T]()
	for _, v := range vs {
		b.Append(v)
	}
	return b.List()
}

// recorder builds tasks that append their id to order when started.
// Traversal is strictly sequential, so appends are ordered by the channel
// receives inside the traversal goroutine.
func recorder(order *[]int, id int, fail bool) TaskEither[string, int] {
	return From(func(context.Context) either.Either[string, int] {
		*order = append(*order, id)
		if fail {
			return either.Left[string, int]("E")
		}
		return either.Right[string](id)
	})
}

func TestSequenceList_AllRight_InOrder(t *testing.T) {
	t.Parallel()
	order := []int{}
	out := SequenceList(listOf(
		recorder(&order, 1, false),
		recorder(&order, 2, false),
		recorder(&order, 3, false),
	)).Run(context.Background())

	vs, ok := out.Right()
	if !ok || vs.Len() != 3 {
		t.Fatalf("expected Right of 3 elements")
	}
	for i, want := range []int{1, 2, 3} {
		if vs.Get(i) != want {
			t.Fatalf("result order violated at %d", i)
		}
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("execution order violated: %v", order)
	}
}

func TestSequenceList_SecondLeftStopsThird(t *testing.T) {
	t.Parallel()
	order := []int{}
	out := SequenceList(listOf(
		recorder(&order, 1, false),
		recorder(&order, 2, true),
		recorder(&order, 3, false),
	)).Run(context.Background())

	if e, ok := out.Left(); !ok || e != "E" {
		t.Fatalf("expected Left(E)")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("the third task must never be started: %v", order)
	}
}

func TestSequenceList_Empty(t *testing.T) {
	t.Parallel()
	out := SequenceList(listOf[TaskEither[string, int]]()).Run(context.Background())
	vs, ok := out.Right()
	if !ok || vs.Len() != 0 {
		t.Fatalf("empty input must resolve to Right(empty)")
	}
}

func TestTraverseList_ShortCircuit(t *testing.T) {
	t.Parallel()
	invoked := []int{}
	out := TraverseList(listOf(1, 2, 3), func(n int) TaskEither[string, int] {
		invoked = append(invoked, n)
		if n == 2 {
			return Left[string, int]("E")
		}
		return Right[string](n * 10)
	}).Run(context.Background())

	if e, ok := out.Left(); !ok || e != "E" {
		t.Fatalf("expected Left(E)")
	}
	if len(invoked) != 2 {
		t.Fatalf("f must not be invoked past the failure: %v", invoked)
	}
}
