package fcalc

import "strconv"

// ExpressionError is an error indicating a malformed expression: two operands
// or operators in a row, a missing operand, or an empty subexpression. It
// implements InputError.
type ExpressionError struct {
	// Col is the position of the token that made the expression invalid.
	Col int
	// Reason describes the problem.
	Reason string
}

func (err *ExpressionError) Error() string {
	return errpos(err.Col, "invalid expression: "+err.Reason)
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// CharError is an error indicating a character that is not part of any token.
// The tokenizer only reports it when parsing with Strict. It implements
// InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// KeywordError is an error indicating an identifier that names neither a
// function nor a constant. It implements InputError.
type KeywordError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier.
	Name string
}

func (err *KeywordError) Error() string {
	return errpos(err.Col, "unknown keyword "+strconv.Quote(err.Name))
}

func (err *KeywordError) Pos() int {
	return err.Col
}

// ArgumentsError is an error indicating a function name that is not followed
// by a parenthesized argument list. It implements InputError.
type ArgumentsError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *ArgumentsError) Error() string {
	return errpos(err.Col, "missing arguments for function "+strconv.Quote(err.Func))
}

func (err *ArgumentsError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Want is the function's arity.
	Want int
	// Got is the number of arguments in the call.
	Got int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "wrong number of arguments to "+err.Func+": expected "+strconv.Itoa(err.Want)+", got "+strconv.Itoa(err.Got))
}

func (err *CallError) Pos() int {
	return err.Col
}

// ConflictError indicates a name registered as both a function and a
// constant. It is a defect in the registries rather than in the input, so it
// does not implement InputError.
type ConflictError struct {
	// Name is the name in both registries.
	Name string
}

func (err *ConflictError) Error() string {
	return "configuration conflict: " + strconv.Quote(err.Name) + " is both a function and a constant"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*KeywordError)(nil)
	_ InputError = (*ArgumentsError)(nil)
	_ InputError = (*CallError)(nil)
)
