package interp

import (
	"reflect"
	"testing"
)

func TestAssignRequiresDefinition(t *testing.T) {
	env := NewEnvironment()
	if env.Assign("a", 1) {
		t.Fatal("assign to an undefined name must fail")
	}
	env.Define("a", 1)
	if !env.Assign("a", 2) {
		t.Fatal("assign to a defined name must succeed")
	}
	if v, _ := env.Get("a"); v != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
}

func TestDefineOverwrites(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", 1)
	env.Define("a", 9)
	if v, _ := env.Get("a"); v != 9 {
		t.Fatalf("expected 9, got %v", v)
	}
	if env.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", env.Len())
	}
}

func TestNamesAreSorted(t *testing.T) {
	env := NewEnvironment()
	env.Define("c", 3)
	env.Define("a", 1)
	env.Define("b", 2)
	if got := env.Names(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected sorted names, got %v", got)
	}
}
