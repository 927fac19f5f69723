package object

import "testing"

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	if hello1.HashKey() != hello2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}

	if diff1.HashKey() != diff2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}

	if hello1.HashKey() == diff1.HashKey() {
		t.Errorf("strings with different content have same hash keys")
	}
}

func TestBooleanHashKey(t *testing.T) {
	true1 := &Boolean{Value: true}
	true2 := &Boolean{Value: true}
	false1 := &Boolean{Value: false}

	if true1.HashKey() != true2.HashKey() {
		t.Errorf("booleans with same value have different hash keys")
	}

	if true1.HashKey() == false1.HashKey() {
		t.Errorf("booleans with different values have same hash keys")
	}
}

func TestIntegerHashKey(t *testing.T) {
	one1 := &Integer{Value: 1}
	one2 := &Integer{Value: 1}
	two := &Integer{Value: 2}

	if one1.HashKey() != one2.HashKey() {
		t.Errorf("integers with same value have different hash keys")
	}

	if one1.HashKey() == two.HashKey() {
		t.Errorf("integers with different values have same hash keys")
	}
}

// TestBuiltinIndicesStable guards the compiler/VM contract: builtin indices are
// positional in the Builtins slice and the core set occupies the first six slots.
func TestBuiltinIndicesStable(t *testing.T) {
	core := []string{"len", "first", "rest", "last", "push", "puts"}
	for i, name := range core {
		if Builtins[i].Name != name {
			t.Fatalf("builtin %d is %q, want %q", i, Builtins[i].Name, name)
		}
	}

	for _, def := range Builtins {
		if GetBuiltinByName(def.Name) != def.Builtin {
			t.Fatalf("GetBuiltinByName(%q) did not return the registered builtin", def.Name)
		}
	}

	if GetBuiltinByName("no_such_builtin") != nil {
		t.Fatalf("GetBuiltinByName returned a builtin for an unknown name")
	}
}
