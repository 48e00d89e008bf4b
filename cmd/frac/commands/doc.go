// Package commands defines the frac CLI.
//
// Commands
//
//   - add  Add two fractions
//   - sub  Subtract the second fraction from the first
//   - mul  Multiply two fractions
//   - div  Divide the first fraction by the second
//
// Each command takes four integer arguments N1 D1 N2 D2, the numerators and
// denominators of the two operands, and prints the result in lowest terms.
// The --real flag prints the result as a real number instead. Negative
// operands must follow a "--" terminator so they are not parsed as flags.
package commands
