package pebble

import (
	"io"
	"strconv"
	"strings"
)

// Env is the variable environment of a session. Assignments made while
// evaluating one expression are visible to every later evaluation with the
// same Env. It is not safe to use an Env concurrently.
type Env struct {
	stack []float64
	names map[string]float64
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) envOption()  {}
func (varsopt) envOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val float64) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]float64) EnvOption {
	return varsopt(vars)
}

// NewEnv creates a new, empty environment and applies options to it.
func NewEnv(opts ...EnvOption) *Env {
	var env Env
	return env.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an error occurs,
// then the result is 0, and assignments already completed by earlier
// statements in a chain remain in env.
func (env *Env) Eval(e *Expr) (float64, error) {
	if len(env.stack) != 0 {
		panic("pebble: Eval during Eval")
	}
	if err := e.n.eval(env); err != nil {
		env.stack = env.stack[:0]
		return 0, err
	}
	if len(env.stack) != 1 {
		panic("pebble: inconsistent stack: " + strconv.Itoa(len(env.stack)) + " items (bad AST?)")
	}
	return env.pop(), nil
}

// Set sets the value of a variable. Returns env for chaining.
func (env *Env) Set(name string, value float64) *Env {
	if env.names == nil {
		env.names = make(map[string]float64)
	}
	env.names[name] = value
	return env
}

// Lookup returns the value of a variable and whether it is defined. Global
// constants are not variables.
func (env *Env) Lookup(name string) (float64, bool) {
	v, ok := env.names[name]
	return v, ok
}

// Vars returns the sorted names of the variables defined in env.
func (env *Env) Vars() []string {
	r := make([]string, 0, len(env.names))
	for k := range env.names {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Clone creates a copy of an environment and applies options to it. Later
// assignments in either environment are not seen by the other.
func (env *Env) Clone(opts ...EnvOption) *Env {
	n := Env{
		names: make(map[string]float64, len(env.names)),
	}
	for name, val := range env.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("pebble: unknown option type")
		}
	}
	return &n
}

func (env *Env) push(x float64) {
	env.stack = append(env.stack, x)
}

// pop removes the top from the stack and returns it.
func (env *Env) pop() float64 {
	r := env.stack[len(env.stack)-1]
	env.stack = env.stack[:len(env.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (env *Env) top() *float64 {
	return &env.stack[len(env.stack)-1]
}

// eval pushes the node's value to the environment's stack.
func (n *node) eval(env *Env) error {
	switch n.kind {
	case nodeNum:
		env.push(n.num)
	case nodeName:
		if v, ok := globalconsts[n.name]; ok {
			env.push(v)
			break
		}
		v, ok := env.names[n.name]
		if !ok {
			return &NameError{Name: n.name}
		}
		env.push(v)
	case nodeCall:
		f := Builtin(n.name, len(n.args))
		if f == nil {
			return &CallError{Col: n.pos, Func: n.name, Len: len(n.args)}
		}
		k := len(env.stack)
		for _, a := range n.args {
			if err := a.eval(env); err != nil {
				return err
			}
		}
		invoc := env.stack[k:len(env.stack):len(env.stack)]
		r := f.Call(invoc)
		env.stack = env.stack[:k]
		env.push(r)
	case nodeLet:
		if err := n.left.eval(env); err != nil {
			return err
		}
		// The assigned value stays on the stack as the value of the let.
		env.Set(n.name, *env.top())
	case nodeChain:
		if len(n.args) == 0 {
			env.push(0)
			break
		}
		for i, s := range n.args {
			if err := s.eval(env); err != nil {
				return err
			}
			if i < len(n.args)-1 {
				env.pop()
			}
		}
	case nodeNeg:
		if err := n.left.eval(env); err != nil {
			return err
		}
		v := env.top()
		*v = -*v
	case nodeAdd:
		if err := n.left.eval(env); err != nil {
			return err
		}
		if err := n.right.eval(env); err != nil {
			return err
		}
		r := env.pop()
		l := env.top()
		*l += r
	case nodeSub:
		if err := n.left.eval(env); err != nil {
			return err
		}
		if err := n.right.eval(env); err != nil {
			return err
		}
		r := env.pop()
		l := env.top()
		*l -= r
	case nodeMul:
		if err := n.left.eval(env); err != nil {
			return err
		}
		if err := n.right.eval(env); err != nil {
			return err
		}
		r := env.pop()
		l := env.top()
		*l *= r
	case nodeDiv:
		if err := n.left.eval(env); err != nil {
			return err
		}
		if err := n.right.eval(env); err != nil {
			return err
		}
		// Division by zero gives an infinity or NaN; that is a result, not
		// an error.
		r := env.pop()
		l := env.top()
		*l /= r
	default:
		panic("pebble: invalid AST node " + n.kind.String())
	}
	return nil
}

// Eval is a shortcut to parse an expression and return its result in a new
// environment.
func Eval(src io.RuneScanner, opts ...EnvOption) (float64, error) {
	env := NewEnv(opts...)
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return env.Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...EnvOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// NameError is an error from a lookup for a name that is neither a global
// constant nor a variable in the environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// CallError is an error from a call whose function name and argument count
// together name no built-in function.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments supplied.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "undefined function "+err.Func+"/"+strconv.Itoa(err.Len))
}
