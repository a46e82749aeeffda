// Package errs defines the sentinel errors shared across the sciform
// packages. Callers match them with errors.Is after unwrapping.
package errs

import "errors"

var (
	// ErrInvalidExponent indicates a fixed exponent value that is not
	// allowed by the selected exponent mode.
	ErrInvalidExponent = errors.New("exponent value incompatible with exponent mode")

	// ErrInvalidSeparator indicates an unsupported separator character or
	// identical upper and decimal separators.
	ErrInvalidSeparator = errors.New("invalid separator configuration")

	// ErrInvalidNDigits indicates a significant-figure digit count below 1.
	ErrInvalidNDigits = errors.New("significant figure rounding requires ndigits >= 1")

	// ErrInvalidPadChar indicates a left-pad character other than space or
	// zero.
	ErrInvalidPadChar = errors.New("left pad character must be ' ' or '0'")

	// ErrInvalidOption indicates an out-of-range enum value or otherwise
	// malformed option.
	ErrInvalidOption = errors.New("invalid option value")

	// ErrInvalidFormatSpec indicates a format specification string that
	// does not match the mini-language grammar.
	ErrInvalidFormatSpec = errors.New("invalid format specification")

	// ErrInvalidNumber indicates an input string that cannot be parsed as
	// a decimal number.
	ErrInvalidNumber = errors.New("invalid numeric input")
)
