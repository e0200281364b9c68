// Package fcalc implements a floating-point calculator for expressions written
// the way you'd type them into a terminal.
//
// Expressions use + - * / ^, parentheses, the constants pi and e, and the
// functions sin, cos, tan, arcsin, arccos, arctan, ln, sqrt, and log(base, x).
// Arguments are separated by commas or semicolons. Adjacent terms multiply, so
// "3pi" and "(2)(3)" are products.
//
// The parser is forgiving about brackets: "1 + 2) * 3" reads as
// "(1 + 2) * 3", and "3 * (1 + 2" reads as "3 * (1 + 2)". Characters that
// can't start a token are skipped unless parsing with Strict.
//
// Operators of the same precedence group to the right by default, so
// "10 - 3 - 2" is 9. Use LeftAssociative for the conventional reading.
package fcalc
