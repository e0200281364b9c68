package fcalc

// resolver replaces keywords with constants and function calls.
type resolver struct {
	funcs  map[string]*Func
	consts map[string]float64
}

// defaultResolver resolves names with the built-in registries.
var defaultResolver = resolver{funcs: globalfuncs, consts: globalconsts}

// resolve returns a copy of seq with every keyword resolved, including those
// inside groups. A function name consumes the group after it as its argument
// list.
func (r resolver) resolve(seq []token) ([]token, error) {
	out := make([]token, 0, len(seq))
	for _, tok := range seq {
		if tok.kind == tokenGroup {
			g, err := r.resolve(tok.group)
			if err != nil {
				return nil, err
			}
			tok.group = g
		}
		out = append(out, tok)
	}
	for i := 0; i < len(out); i++ {
		tok := out[i]
		if tok.kind != tokenKeyword {
			continue
		}
		fn, isfn := r.funcs[tok.name]
		v, isconst := r.consts[tok.name]
		switch {
		case isfn && isconst:
			return nil, &ConflictError{Name: tok.name}
		case isfn:
			if i+1 >= len(out) || out[i+1].kind != tokenGroup {
				return nil, &ArgumentsError{Col: tok.pos, Func: tok.name}
			}
			out[i] = token{
				kind: tokenCall,
				pos:  tok.pos,
				name: tok.name,
				fn:   fn,
				args: splitargs(out[i+1].group),
			}
			out = append(out[:i+1], out[i+2:]...)
		case isconst:
			out[i] = token{kind: tokenConst, pos: tok.pos, name: tok.name, val: v}
		default:
			return nil, &KeywordError{Col: tok.pos, Name: tok.name}
		}
	}
	return out, nil
}

// splitargs splits a group's contents on its separators. An empty group has
// no arguments.
func splitargs(seq []token) [][]token {
	if len(seq) == 0 {
		return nil
	}
	var args [][]token
	k := 0
	for i, tok := range seq {
		if tok.kind == tokenSep {
			args = append(args, seq[k:i:i])
			k = i + 1
		}
	}
	return append(args, seq[k:])
}
