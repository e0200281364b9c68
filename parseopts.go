package fcalc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	strictopt    struct{}
	leftassocopt struct{}
	registryopt  struct {
		funcs  map[string]*Func
		consts map[string]float64
	}
)

// parsectx holds general data for parsing.
type parsectx struct {
	// strict indicates that unrecognized characters are errors instead of
	// being skipped.
	strict bool
	// leftassoc indicates that chains of additive or multiplicative operators
	// group to the left.
	leftassoc bool
	// funcs and consts replace the built-in registries when non-nil.
	funcs  map[string]*Func
	consts map[string]float64
}

func (p *parsectx) resolver() resolver {
	r := defaultResolver
	if p.funcs != nil {
		r.funcs = p.funcs
	}
	if p.consts != nil {
		r.consts = p.consts
	}
	return r
}

// Strict makes the parser reject characters that can't start a token, rather
// than skipping them. Whitespace is always allowed.
func Strict() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}

// LeftAssociative makes chains of + and - or of * and / group to the left, so
// "10 - 3 - 2" is 5 instead of 9. Exponentiation still groups to the right.
func LeftAssociative() ParseOption {
	return leftassocopt{}
}

func (leftassocopt) parseOption(p parsectx) parsectx {
	p.leftassoc = true
	return p
}

// withRegistries replaces the function and constant registries. It exists so
// that tests can use registries that break the built-in guarantees.
func withRegistries(funcs map[string]*Func, consts map[string]float64) ParseOption {
	return registryopt{funcs: funcs, consts: consts}
}

func (o registryopt) parseOption(p parsectx) parsectx {
	p.funcs = o.funcs
	p.consts = o.consts
	return p
}
