package functional

import (
	"slices"
	"testing"
)

func TestIdentityBasics(t *testing.T) {
	t.Run("always holds its value", func(t *testing.T) {
		i := NewIdentity(42)
		if i.Get() != 42 {
			t.Errorf("expected 42, got %d", i.Get())
		}
		if v, ok := i.Value(); !ok || v != 42 {
			t.Error("Identity must always report presence")
		}
	})

	t.Run("extraction operations are trivial", func(t *testing.T) {
		i := NewIdentity(7)
		if i.Unwrap() != 7 {
			t.Error("Unwrap should return the held value")
		}
		if i.Expect("never used") != 7 {
			t.Error("Expect should return the held value")
		}
		if i.ExpectFunc(func() string { t.Error("message factory ran"); return "" }) != 7 {
			t.Error("ExpectFunc should return the held value")
		}
		if i.UnwrapOr(0) != 7 {
			t.Error("UnwrapOr should ignore the default")
		}
		if i.UnwrapOrElse(func() int { t.Error("fallback ran"); return 0 }) != 7 {
			t.Error("UnwrapOrElse should ignore the fallback")
		}
		if i.UnwrapOrZero() != 7 {
			t.Error("UnwrapOrZero should return the held value")
		}
		if ptr := i.ToPtr(); ptr == nil || *ptr != 7 {
			t.Error("ToPtr should point at the held value")
		}
	})
}

func TestIdentityCombinators(t *testing.T) {
	t.Run("Map and MapIdentity", func(t *testing.T) {
		if NewIdentity(3).Map(func(n int) int { return n + 1 }).Get() != 4 {
			t.Error("expected 4")
		}
		got := MapIdentity(NewIdentity(3), func(n int) string {
			return string(rune('a' + n))
		})
		if got.Get() != "d" {
			t.Errorf("expected d, got %s", got.Get())
		}
	})

	t.Run("MapIdentityOr ignores the fallback", func(t *testing.T) {
		if MapIdentityOr(NewIdentity(3), -1, func(n int) int { return n * 2 }) != 6 {
			t.Error("expected 6")
		}
		got := MapIdentityOrElse(NewIdentity(3), func() int {
			t.Error("fallback ran")
			return 0
		}, func(n int) int { return n * 2 })
		if got != 6 {
			t.Errorf("expected 6, got %d", got)
		}
	})

	t.Run("FlatMapIdentity does not double-wrap", func(t *testing.T) {
		got := FlatMapIdentity(NewIdentity(2), func(n int) Identity[int] {
			return NewIdentity(n * 10)
		})
		if got.Get() != 20 {
			t.Errorf("expected 20, got %d", got.Get())
		}
		alias := AndThenIdentity(NewIdentity(2), func(n int) Identity[int] {
			return NewIdentity(n * 10)
		})
		if !alias.Equal(got) {
			t.Error("alias diverged from canonical function")
		}
	})

	t.Run("Zip and ZipWith", func(t *testing.T) {
		p := ZipIdentity(NewIdentity(1), NewIdentity("a")).Get()
		if p.First != 1 || p.Second != "a" {
			t.Errorf("expected Pair(1, a), got %v", p)
		}
		sum := ZipIdentityWith(NewIdentity(2), NewIdentity(3), func(a, b int) int { return a + b })
		if sum.Get() != 5 {
			t.Errorf("expected 5, got %d", sum.Get())
		}
	})

	t.Run("Flatten and Join", func(t *testing.T) {
		nested := NewIdentity(NewIdentity(1))
		if FlattenIdentity(nested).Get() != 1 {
			t.Error("expected 1")
		}
		if !JoinIdentity(nested).Equal(FlattenIdentity(nested)) {
			t.Error("alias diverged from canonical function")
		}
	})

	t.Run("OkOr is always Ok", func(t *testing.T) {
		if got := IdentityOkOr(NewIdentity(1), "unused"); !got.Equal(Ok[string](1)) {
			t.Errorf("expected Ok(1), got %v", got)
		}
		got := IdentityOkOrElse(NewIdentity(1), func() string {
			t.Error("error factory ran")
			return ""
		})
		if !got.Equal(Ok[string](1)) {
			t.Errorf("expected Ok(1), got %v", got)
		}
	})

	t.Run("Tap and TapIdentity return the receiver", func(t *testing.T) {
		calls := 0
		got := NewIdentity(1).
			Tap(func(Identity[int]) { calls++ }).
			TapIdentity(func(int) { calls++ })
		if calls != 2 || got.Get() != 1 {
			t.Error("taps must run and leave the value unchanged")
		}
	})
}

func TestIdentityIteration(t *testing.T) {
	if got := slices.Collect(NewIdentity(5).All()); !slices.Equal(got, []int{5}) {
		t.Errorf("expected [5], got %v", got)
	}
	if !slices.Equal(NewIdentity(5).ToSlice(), []int{5}) {
		t.Error("expected [5]")
	}
}
