// Package options implements the generic functional-option plumbing shared
// by the configurable types in this module.
package options

// Option configures a target of type T and may reject invalid values.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps a fallible configuration function.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError wraps a configuration function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply runs each option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Chain combines several options into one, applied in order.
func Chain[T any](opts ...Option[T]) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			return Apply(target, opts...)
		},
	}
}
