// Package render implements the formatting engine: exponent resolution,
// rounding, mantissa and exponent string construction, and the joint
// value/uncertainty assembly. The root sciform package wraps it with the
// user-facing configuration surface.
package render
