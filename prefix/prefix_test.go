package prefix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_Builtin(t *testing.T) {
	tok, ok := Lookup(SI, nil, 3)
	require.True(t, ok)
	require.Equal(t, "k", tok)

	tok, ok = Lookup(SI, nil, -6)
	require.True(t, ok)
	require.Equal(t, "μ", tok)

	tok, ok = Lookup(SI, nil, 0)
	require.True(t, ok)
	require.Equal(t, "", tok)

	// No prefix exists for exponents off the 10^3 grid.
	_, ok = Lookup(SI, nil, 4)
	require.False(t, ok)

	tok, ok = Lookup(IEC, nil, 10)
	require.True(t, ok)
	require.Equal(t, "Ki", tok)

	tok, ok = Lookup(PartsPer, nil, -9)
	require.True(t, ok)
	require.Equal(t, "ppb", tok)
}

func TestLookup_Overrides(t *testing.T) {
	overrides := Overrides{
		-2: Token("c"),
		3:  Token("K"),
		-3: nil, // suppress built-in milli
	}

	tok, ok := Lookup(SI, overrides, -2)
	require.True(t, ok)
	require.Equal(t, "c", tok)

	tok, ok = Lookup(SI, overrides, 3)
	require.True(t, ok)
	require.Equal(t, "K", tok)

	_, ok = Lookup(SI, overrides, -3)
	require.False(t, ok)

	// Untouched entries still resolve through the built-in table.
	tok, ok = Lookup(SI, overrides, 6)
	require.True(t, ok)
	require.Equal(t, "M", tok)
}

func TestOverrides_Merge(t *testing.T) {
	base := Overrides{-2: Token("c")}
	merged := base.Merge(Overrides{-2: nil, -1: Token("d")})

	require.Len(t, merged, 2)
	require.Nil(t, merged[-2])
	require.Equal(t, "d", *merged[-1])

	// Base is untouched.
	require.Equal(t, "c", *base[-2])

	require.Nil(t, Overrides(nil).Merge(nil))
	require.Equal(t, base, base.Merge(nil))
}

func TestOverrides_Clone(t *testing.T) {
	require.Nil(t, Overrides(nil).Clone())

	base := Overrides{3: Token("K")}
	dup := base.Clone()
	dup[3] = nil
	require.Equal(t, "K", *base[3])
}
