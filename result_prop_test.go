package functional_test

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"

	functional "github.com/auth-platform/functional-go"
	"github.com/auth-platform/functional-go/testkit"
)

func errGen() *rapid.Generator[error] {
	return rapid.Custom(func(t *rapid.T) error {
		return errors.New(rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "message"))
	})
}

func TestPropertyResultVariantExclusivity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := testkit.ResultGen(rapid.Int(), errGen()).Draw(t, "result")
		if r.IsOk() == r.IsErr() {
			t.Fatal("Result must be exactly one of Ok and Err")
		}
	})
}

func TestPropertyResultMapIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := testkit.ResultGen(rapid.Int(), errGen()).Draw(t, "result")
		mapped := functional.MapResult(r, func(v int) int { return v })
		if !mapped.Equal(r) {
			t.Fatal("mapping identity changed the result")
		}
	})
}

func TestPropertyResultMapErrLeavesOkAlone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := testkit.OkGen[error](rapid.Int()).Draw(t, "ok")
		mapped := functional.MapResultErr(r, func(error) error { return errors.New("replaced") })
		if !mapped.Equal(r) {
			t.Fatal("MapResultErr altered an Ok result")
		}
	})
}

func TestPropertyResultBindAssociativity(t *testing.T) {
	f := func(x int) functional.Result[int, error] {
		if x%3 == 0 {
			return functional.Err[int](errors.New("multiple of three"))
		}
		return functional.Ok[error](x + 1)
	}
	g := func(x int) functional.Result[int, error] {
		return functional.Ok[error](x * 2)
	}
	rapid.Check(t, func(t *rapid.T) {
		r := testkit.ResultGen(rapid.Int(), errGen()).Draw(t, "result")
		lhs := functional.FlatMapResult(functional.FlatMapResult(r, f), g)
		rhs := functional.FlatMapResult(r, func(x int) functional.Result[int, error] {
			return functional.FlatMapResult(f(x), g)
		})
		if !lhs.Equal(rhs) {
			t.Fatal("flatMap is not associative")
		}
	})
}

func TestPropertyResultOptionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "value")
		fallback := errGen().Draw(t, "fallback")
		r := functional.OkOr(functional.Ok[error](v).Ok(), fallback)
		if !r.Equal(functional.Ok[error](v)) {
			t.Fatal("Ok -> Option -> Result round trip changed the value")
		}
	})
}

func TestPropertyTransposeInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := testkit.OptionGen(testkit.ResultGen(rapid.Int(), errGen())).Draw(t, "nested")
		if !functional.TransposeResult(functional.TransposeOption(o)).Equal(o) {
			t.Fatal("transpose round trip changed the value")
		}
	})
}

func TestPropertyCollectResultsLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Int(), 0, 16).Draw(t, "values")
		results := make([]functional.Result[int, error], len(values))
		for i, v := range values {
			results[i] = functional.Ok[error](v)
		}
		collected := functional.CollectResults(slices.Values(results))
		got, ok := collected.Value()
		if !ok || !slices.Equal(got, values) {
			t.Fatal("collecting all-Ok results must preserve values in order")
		}
	})
}

func TestPropertyEqualityIsReflexive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := testkit.OptionGen(rapid.Int()).Draw(t, "option")
		if !o.Equal(o) {
			t.Fatal("Option equality must be reflexive")
		}
		r := testkit.ResultGen(rapid.String(), errGen()).Draw(t, "result")
		if !r.Equal(r) {
			t.Fatal("Result equality must be reflexive")
		}
		i := testkit.IdentityGen(rapid.Int()).Draw(t, "identity")
		if !i.Equal(i) {
			t.Fatal("Identity equality must be reflexive")
		}
	})
}
