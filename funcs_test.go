package pebble

import (
	"math"
	"testing"
)

func TestBuiltinArity(t *testing.T) {
	cases := []struct {
		name  string
		arity int
	}{
		{"sin", 1},
		{"cos", 1},
		{"ln", 1},
		{"pow", 2},
	}
	if len(cases) != len(globalfuncs) {
		t.Fatalf("%d test cases for %d builtins", len(cases), len(globalfuncs))
	}
	for _, c := range cases {
		for n := 0; n <= 3; n++ {
			f := Builtin(c.name, n)
			if (f != nil) != (n == c.arity) {
				t.Errorf("%s/%d: got %v", c.name, n, f)
			}
		}
	}
	if f := Builtin("tan", 1); f != nil {
		t.Errorf("tan/1 is defined: %v", f)
	}
}

func TestBuiltinCall(t *testing.T) {
	cases := []struct {
		name  string
		invoc []float64
		want  float64
	}{
		{"sin", []float64{math.Pi / 2}, 1},
		{"cos", []float64{math.Pi}, -1},
		{"ln", []float64{math.E * math.E}, 2},
		{"pow", []float64{2, 10}, 1024},
		{"pow", []float64{10, -1}, 0.1},
	}
	for _, c := range cases {
		r := Builtin(c.name, len(c.invoc)).Call(c.invoc)
		if math.Abs(r-c.want) > 1e-15 {
			t.Errorf("%s%v: want %g, got %g", c.name, c.invoc, c.want, r)
		}
	}
}

func TestConstants(t *testing.T) {
	cases := []struct {
		name string
		want float64
	}{
		{"e", math.E},
		{"pi", math.Pi},
	}
	if len(cases) != len(globalconsts) {
		t.Fatalf("%d test cases for %d constants", len(cases), len(globalconsts))
	}
	for _, c := range cases {
		x, ok := Constant(c.name)
		if !ok {
			t.Errorf("%s is not a constant", c.name)
			continue
		}
		// Computing at high precision should round to the closest float64.
		if x != c.want {
			t.Errorf("%s: want %v, got %v", c.name, c.want, x)
		}
	}
	if _, ok := Constant("tau"); ok {
		t.Error("tau is a constant")
	}
}

func TestEmptyChain(t *testing.T) {
	env := NewEnv()
	r, err := env.Eval(&Expr{n: &node{kind: nodeChain}})
	if err != nil {
		t.Fatalf("empty chain gave error: %v", err)
	}
	if r != 0 {
		t.Errorf("empty chain gave %g", r)
	}
}

func TestEvalStackReset(t *testing.T) {
	env := NewEnv()
	a, err := ParseString("1 + 2 * (3 - pow(nope, 2))")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.Eval(a); err == nil {
		t.Fatal("no error")
	}
	if len(env.stack) != 0 {
		t.Errorf("stack left with %v after error", env.stack)
	}
	// The environment is still usable.
	b, err := ParseString("1 + 2")
	if err != nil {
		t.Fatal(err)
	}
	if r, err := env.Eval(b); err != nil || r != 3 {
		t.Errorf("want 3, got %g, %v", r, err)
	}
}
