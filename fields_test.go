package functional

import (
	"maps"
	"testing"
)

func TestWrapFields(t *testing.T) {
	t.Run("wraps every field in Some", func(t *testing.T) {
		got := WrapFields(map[string]int{"a": 1, "b": 2})
		want := map[string]Option[int]{"a": Some(1), "b": Some(2)}
		if !maps.EqualFunc(got, want, Option[int].Equal) {
			t.Errorf("unexpected wrapped record: %v", got)
		}
	})

	t.Run("record fields take precedence over defaults", func(t *testing.T) {
		defaults := map[string]Option[int]{"a": Some(10), "c": None[int]()}
		got := WrapFields(map[string]int{"a": 1}, defaults)
		want := map[string]Option[int]{"a": Some(1), "c": None[int]()}
		if !maps.EqualFunc(got, want, Option[int].Equal) {
			t.Errorf("unexpected merged record: %v", got)
		}
	})

	t.Run("earlier defaults win over later ones", func(t *testing.T) {
		first := map[string]Option[int]{"x": Some(1)}
		second := map[string]Option[int]{"x": Some(2), "y": Some(3)}
		got := WrapFields(map[string]int{}, first, second)
		want := map[string]Option[int]{"x": Some(1), "y": Some(3)}
		if !maps.EqualFunc(got, want, Option[int].Equal) {
			t.Errorf("unexpected merged record: %v", got)
		}
	})
}

func TestUnwrapFields(t *testing.T) {
	got := UnwrapFields(map[string]Option[int]{
		"a": Some(1),
		"b": None[int](),
		"c": Some(3),
	})
	if !maps.Equal(got, map[string]int{"a": 1, "c": 3}) {
		t.Errorf("unexpected unwrapped record: %v", got)
	}
}

func TestWrapUnwrapRoundTrip(t *testing.T) {
	in := map[string]string{"user": "ada", "host": "example"}
	if !maps.Equal(UnwrapFields(WrapFields(in)), in) {
		t.Error("wrap then unwrap should restore the record")
	}
}
