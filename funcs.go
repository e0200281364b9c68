package fcalc

import (
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function callable from expressions. Every call must supply
// exactly Arity arguments.
type Func struct {
	// Name is the identifier that calls the function.
	Name string
	// Arity is the number of arguments the function takes.
	Arity int

	f func(args []float64) float64
}

// Call applies the function to args. Panics if len(args) != f.Arity.
func (f *Func) Call(args []float64) float64 {
	if len(args) != f.Arity {
		panic("fcalc: call to " + f.Name + " with wrong argument count")
	}
	return f.f(args)
}

// Monadic wraps a function of one variable into a Func.
func Monadic(name string, f func(float64) float64) *Func {
	return &Func{
		Name:  name,
		Arity: 1,
		f:     func(args []float64) float64 { return f(args[0]) },
	}
}

// Dyadic wraps a function of two variables into a Func.
func Dyadic(name string, f func(x, y float64) float64) *Func {
	return &Func{
		Name:  name,
		Arity: 2,
		f:     func(args []float64) float64 { return f(args[0], args[1]) },
	}
}

// logb is the logarithm of x in base b.
func logb(b, x float64) float64 {
	return math.Log(x) / math.Log(b)
}

// globalfuncs is never modified after init.
var globalfuncs = funcmap(
	Monadic("sin", math.Sin),
	Monadic("cos", math.Cos),
	Monadic("tan", math.Tan),
	Monadic("arcsin", math.Asin),
	Monadic("arccos", math.Acos),
	Monadic("arctan", math.Atan),
	Dyadic("log", logb),
	Monadic("ln", math.Log),
	Monadic("sqrt", math.Sqrt),
)

// globalconsts is never modified after init.
var globalconsts = map[string]float64{
	"pi": bigconst(bigfloat.Pi),
	"e": bigconst(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

func init() {
	if name, ok := overlap(globalfuncs, globalconsts); ok {
		panic(&ConflictError{Name: name})
	}
}

func funcmap(fns ...*Func) map[string]*Func {
	m := make(map[string]*Func, len(fns))
	for _, f := range fns {
		m[f.Name] = f
	}
	return m
}

// constprec is the precision at which constants are computed before rounding
// to float64.
const constprec = 64

// bigconst computes a constant with a bigfloat function and rounds it to the
// nearest float64.
func bigconst(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constprec)
	f(r)
	x, _ := r.Float64()
	return x
}

// overlap finds a name registered as both a function and a constant.
func overlap(funcs map[string]*Func, consts map[string]float64) (string, bool) {
	for name := range funcs {
		if _, ok := consts[name]; ok {
			return name, true
		}
	}
	return "", false
}

// Funcs returns copies of the built-in functions sorted by name.
func Funcs() []Func {
	r := make([]Func, 0, len(globalfuncs))
	for _, f := range globalfuncs {
		r = append(r, *f)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}

// Constants returns a copy of the built-in constants.
func Constants() map[string]float64 {
	r := make(map[string]float64, len(globalconsts))
	for k, v := range globalconsts {
		r[k] = v
	}
	return r
}
