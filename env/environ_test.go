package env

import (
	"maps"
	"slices"
	"testing"
)

func TestEnvironment_FromMap_Copies(t *testing.T) {
	src := map[string]string{"A": "1"}
	e := FromMap(src)
	src["A"] = "changed"
	src["B"] = "2"

	if got := e.Get("A"); got != "1" {
		t.Errorf("Get(A) = %q, want 1", got)
	}

	if _, ok := e.Lookup("B"); ok {
		t.Error("snapshot observed key added after construction")
	}

	m := e.Map()
	m["A"] = "mutated"

	if got := e.Get("A"); got != "1" {
		t.Errorf("Map() exposed internal state: Get(A) = %q", got)
	}
}

func TestEnvironment_FromList(t *testing.T) {
	e := FromList([]string{"A=1", "B=x=y", "C=", "NOEQUALS", "=bad", "A=2"})

	want := map[string]string{"A": "2", "B": "x=y", "C": ""}
	if got := e.Map(); !maps.Equal(got, want) {
		t.Errorf("FromList() = %v, want %v", got, want)
	}

	if v, ok := e.Lookup("C"); !ok || v != "" {
		t.Errorf("Lookup(C) = %q, %v; want empty and set", v, ok)
	}
}

func TestEnvironment_FromOS(t *testing.T) {
	t.Setenv("UENV_TEST_SNAPSHOT", "before")

	e := FromOS()

	t.Setenv("UENV_TEST_SNAPSHOT", "after")

	if got := e.Get("UENV_TEST_SNAPSHOT"); got != "before" {
		t.Errorf("Get() = %q, want before", got)
	}
}

func TestEnvironment_ZeroValue(t *testing.T) {
	var e Environment

	if e.Len() != 0 || e.Get("X") != "" || len(e.Keys()) != 0 {
		t.Error("zero Environment is not empty")
	}

	if m := e.Map(); m == nil || len(m) != 0 {
		t.Errorf("Map() = %v, want empty non-nil map", m)
	}
}

func TestEnvironment_ListSorted(t *testing.T) {
	e := FromMap(map[string]string{"B": "2", "A": "1"})

	if got, want := e.List(), []string{"A=1", "B=2"}; !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}

	if got, want := e.Keys(), []string{"A", "B"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
