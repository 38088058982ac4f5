package modset

import (
	"reflect"
	"testing"
)

func TestSet_AddDeduplicates(t *testing.T) {
	s := New("foo", "bar", "foo")
	s.Add("bar", "baz")

	want := []string{"foo", "bar", "baz"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set
	if s.Has("foo") {
		t.Error("zero Set should be empty")
	}
	s.Add("foo")
	if !s.Has("foo") {
		t.Error("zero Set should accept Add")
	}
}

func TestSet_NilSafe(t *testing.T) {
	var s *Set
	if s.Len() != 0 || s.Has("x") || s.Names() != nil {
		t.Error("nil *Set should behave as empty")
	}
}

func TestSet_Merge(t *testing.T) {
	a := New("foo", "bar")
	b := New("bar", "baz")

	a.Merge(b)
	a.Merge(nil)

	want := []string{"foo", "bar", "baz"}
	if got := a.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() after Merge = %v, want %v", got, want)
	}
}

func TestSet_MergeCommutesAsSet(t *testing.T) {
	a, b := New("x", "y"), New("y", "z")

	ab := New()
	ab.Merge(a)
	ab.Merge(b)

	ba := New()
	ba.Merge(b)
	ba.Merge(a)

	if ab.Len() != 3 || ba.Len() != 3 || !ab.Has("z") || !ba.Has("x") {
		t.Errorf("merge order changed contents: %v vs %v", ab.Names(), ba.Names())
	}
}

func TestSet_NamesIsCopy(t *testing.T) {
	s := New("foo")
	names := s.Names()
	names[0] = "changed"

	if !s.Has("foo") || s.Names()[0] != "foo" {
		t.Error("mutating Names() result should not affect the set")
	}
}

func TestSet_CaseSensitive(t *testing.T) {
	s := New("Foo", "foo")
	if s.Len() != 2 {
		t.Errorf("names differing in case are distinct, got Len() = %d", s.Len())
	}
}
