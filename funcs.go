package pebble

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a built-in function from reals to reals.
type Func interface {
	// Call evaluates the function. The function arguments are passed in invoc,
	// which has a length for which CanCall returned true. Call may modify the
	// elements of invoc.
	Call(invoc []float64) float64

	// CanCall returns whether the function can be called with n arguments.
	// Calls are resolved by name and argument count together, so a call with
	// a count for which CanCall is false is an undefined function.
	CanCall(n int) bool
}

var globalfuncs = map[string]Func{
	"sin": Monadic(math.Sin),
	"cos": Monadic(math.Cos),
	"ln":  Monadic(math.Log),
	"pow": Dyadic(math.Pow),
}

// constprec is the precision in bits at which global constants are computed
// before rounding to float64.
const constprec = 128

// globalconsts is consulted before the environment when resolving names, so
// constants can't be shadowed by assignments.
var globalconsts = map[string]float64{
	"pi": constant(bigfloat.Pi),
	"e": constant(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(out.Prec()).SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// constant computes a constant and rounds it to the nearest float64.
func constant(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constprec)
	f(r)
	x, _ := r.Float64()
	return x
}

// Builtin returns the built-in function with the given name and argument
// count, or nil if there is none.
func Builtin(name string, n int) Func {
	fn := globalfuncs[name]
	if fn == nil || !fn.CanCall(n) {
		return nil
	}
	return fn
}

// Constant returns the value of a global constant.
func Constant(name string) (float64, bool) {
	x, ok := globalconsts[name]
	return x, ok
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(invoc []float64) float64 {
	return m.f(invoc[0])
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. Out-of-domain
// arguments should produce NaN rather than panicking.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(x, y float64) float64
}

func (d dyadic) Call(invoc []float64) float64 {
	return d.f(invoc[0], invoc[1])
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func. The first argument to
// the call is x.
func Dyadic(f func(x, y float64) float64) Func {
	return dyadic{f}
}
