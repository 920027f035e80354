// Package pebble implements an interactive floating-point calculator language.
//
// A line of input is a statement, or several statements separated by commas.
// A statement is either an expression or an assignment "let x = expr", which
// binds x in the Env and has the assigned value. The value of a line is the
// value of its last statement, so "let x = 1, let y = 2, x + y" is 3.
//
// Expressions use + - * / with the usual precedence, where - and / associate
// to the left and unary negation binds tighter than any binary operator. The
// names e and pi are constants, and sin(x), cos(x), ln(x), and pow(x, y) are
// built in. Division by zero and other domain problems are not errors; they
// produce infinities or NaN as IEEE-754 arithmetic does.
//
// Number literals are digits with an optional fraction, like 12 or 0.5, and
// names are runs of lowercase letters.
//
package pebble
