// Package prefix holds the exponent-to-token substitution tables used by
// the prefix and parts-per exponent formats: SI prefixes for base 10, IEC
// prefixes for base 2, and parts-per forms.
//
// The built-in tables are read-only after package initialization. Callers
// customize lookups through an Overrides map: a non-nil entry adds or
// replaces a token, a nil entry suppresses the built-in substitution so the
// standard exponent string is used instead.
package prefix

// Overrides maps exponent values to replacement tokens. A nil value
// suppresses substitution for that exponent.
type Overrides map[int]*string

// SI maps base-10 exponents to SI prefixes.
var SI = map[int]string{
	30:  "Q",
	27:  "R",
	24:  "Y",
	21:  "Z",
	18:  "E",
	15:  "P",
	12:  "T",
	9:   "G",
	6:   "M",
	3:   "k",
	0:   "",
	-3:  "m",
	-6:  "μ",
	-9:  "n",
	-12: "p",
	-15: "f",
	-18: "a",
	-21: "z",
	-24: "y",
	-27: "r",
	-30: "q",
}

// IEC maps base-2 exponents to IEC binary prefixes.
var IEC = map[int]string{
	0:  "",
	10: "Ki",
	20: "Mi",
	30: "Gi",
	40: "Ti",
	50: "Pi",
	60: "Ei",
	70: "Zi",
	80: "Yi",
}

// PartsPer maps base-10 exponents to parts-per forms.
var PartsPer = map[int]string{
	0:   "",
	-6:  "ppm",
	-9:  "ppb",
	-12: "ppt",
	-15: "ppq",
}

// Lookup resolves the token for exp against a built-in table and caller
// overrides. It reports false when no substitution should be made, either
// because no entry exists or because an override suppresses it.
func Lookup(builtin map[int]string, overrides Overrides, exp int) (string, bool) {
	if tok, present := overrides[exp]; present {
		if tok == nil {
			return "", false
		}

		return *tok, true
	}

	tok, ok := builtin[exp]

	return tok, ok
}

// Token returns a pointer to tok, for use as an Overrides value.
func Token(tok string) *string {
	return &tok
}

// Clone returns a copy of o, or nil when o is nil.
func (o Overrides) Clone() Overrides {
	if o == nil {
		return nil
	}

	dup := make(Overrides, len(o))
	for exp, tok := range o {
		dup[exp] = tok
	}

	return dup
}

// Merge returns a map holding o's entries with extra's layered on top.
// Neither input is modified. A nil result means both inputs were nil.
func (o Overrides) Merge(extra Overrides) Overrides {
	if len(extra) == 0 {
		return o
	}

	merged := make(Overrides, len(o)+len(extra))
	for exp, tok := range o {
		merged[exp] = tok
	}
	for exp, tok := range extra {
		merged[exp] = tok
	}

	return merged
}
