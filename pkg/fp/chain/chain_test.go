package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"

	"github.com/ib-77/fpkit/pkg/fp/either"
)

func TestFromValueAndResult(t *testing.T) {
	t.Parallel()
	c := FromValue(5)
	if v, ok := c.Result().Right(); !ok || v != 5 {
		t.Fatalf("expected Right(5)")
	}
	if c.Id() == uuid.Nil || c.CreatedAt().IsZero() {
		t.Fatalf("metadata missing")
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	called := false
	c := Fail[int](boom).Then(func(v int) either.Either[error, int] {
		called = true
		return either.Right[error](v + 1)
	})
	if err, ok := c.Result().Left(); !ok || !errors.Is(err, boom) {
		t.Fatalf("expected failure to pass through")
	}
	if called {
		t.Fatalf("onSuccess must not be called on a failed chain")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	c := FromValue(3).
		Then(func(v int) either.Either[error, int] { return either.Right[error](v * 2) })
	if v, ok := c.Result().Right(); !ok || v != 6 {
		t.Fatalf("expected Right(6)")
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	bad := errors.New("bad")
	c := FromValue(3).ThenTry(func(v int) (int, error) { return 0, bad })
	if err, ok := c.Result().Left(); !ok || !errors.Is(err, bad) {
		t.Fatalf("expected Left(bad)")
	}
}

func TestEnsure_RunsOnSuccessOnly(t *testing.T) {
	t.Parallel()
	seen := 0
	FromValue(4).Ensure(func(v int) { seen = v })
	if seen != 4 {
		t.Fatalf("ensure must run on success")
	}
	seen = 0
	Fail[int](errors.New("x")).Ensure(func(v int) { seen = v })
	if seen != 0 {
		t.Fatalf("ensure must not run on failure")
	}
}

func TestMap_TypeChanging_KeepsMetadata(t *testing.T) {
	t.Parallel()
	c := FromValue(12)
	mapped := Map(c, strconv.Itoa)
	if v, ok := mapped.Result().Right(); !ok || v != "12" {
		t.Fatalf("expected Right(12)")
	}
	if mapped.Id() != c.Id() || !mapped.CreatedAt().Equal(c.CreatedAt()) {
		t.Fatalf("derived chain must keep source metadata")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	got := Finally(FromValue(2),
		func(v int) string { return "ok:" + strconv.Itoa(v) },
		func(err error) string { return "err" })
	if got != "ok:2" {
		t.Fatalf("expected success handler, got %q", got)
	}
	got = Finally(Fail[int](errors.New("x")),
		func(v int) string { return "ok" },
		func(err error) string { return "err:" + err.Error() })
	if got != "err:x" {
		t.Fatalf("expected failure handler, got %q", got)
	}
}
