package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	value int
	label string
}

func withValue(v int) Option[*target] {
	return New(func(t *target) error {
		if v < 0 {
			return errors.New("value must be non-negative")
		}
		t.value = v

		return nil
	})
}

func withLabel(l string) Option[*target] {
	return NoError(func(t *target) {
		t.label = l
	})
}

func TestApply(t *testing.T) {
	tgt := &target{}
	err := Apply(tgt, withValue(42), withLabel("answer"))
	require.NoError(t, err)
	require.Equal(t, 42, tgt.value)
	require.Equal(t, "answer", tgt.label)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	tgt := &target{}
	err := Apply(tgt, withValue(-1), withLabel("never"))
	require.Error(t, err)
	require.Empty(t, tgt.label)
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&target{}))
}

func TestChain(t *testing.T) {
	tgt := &target{}
	combined := Chain(withValue(7), withLabel("seven"))
	err := Apply(tgt, combined)
	require.NoError(t, err)
	require.Equal(t, 7, tgt.value)
	require.Equal(t, "seven", tgt.label)

	err = Apply(&target{}, Chain(withValue(-1)))
	require.Error(t, err)
}
