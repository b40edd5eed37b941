package taskeither

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/either"
	"github.com/ib-77/fpkit/pkg/fp/eq"
)

func TestFunctorLaws(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	eqE := either.DeriveEq(eq.Natural[string](), eq.Natural[int]())
	f := func(n int) int { return n + 11 }
	g := func(n int) int { return n * 3 }

	fromParts := func(v int, err string, right bool) TaskEither[string, int] {
		if right {
			return Right[string](v)
		}
		return Left[string, int](err)
	}

	properties := gopter.NewProperties(nil)

	properties.Property("map identity", prop.ForAll(
		func(v int, err string, right bool) bool {
			te := fromParts(v, err, right)
			return eqE.Equals(
				Map(te, func(a int) int { return a }).Run(ctx),
				te.Run(ctx),
			)
		},
		gen.Int(), gen.AlphaString(), gen.Bool(),
	))

	properties.Property("map composition", prop.ForAll(
		func(v int, err string, right bool) bool {
			te := fromParts(v, err, right)
			return eqE.Equals(
				Map(Map(te, f), g).Run(ctx),
				Map(te, fp.Compose(f, g)).Run(ctx),
			)
		},
		gen.Int(), gen.AlphaString(), gen.Bool(),
	))

	properties.TestingRun(t)
}
