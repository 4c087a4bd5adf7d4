package ensure

import (
	"fmt"
	"reflect"
)

// CoercionError reports a failed dynamic coercion.
type CoercionError struct {
	Want reflect.Type
	Got  reflect.Type // nil when the coerced value was a nil interface
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("ensure: cannot coerce %v to %v", e.Got, e.Want)
}

// As converts a dynamically typed value to T, reporting a *CoercionError
// instead of panicking when the dynamic type does not match.
func As[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, &CoercionError{Want: reflect.TypeFor[T](), Got: reflect.TypeOf(v)}
	}

	return t, nil
}

// MustAs is As for values the caller knows to be of type T. It panics with
// the coercion error on mismatch.
func MustAs[T any](v any) T {
	t, err := As[T](v)
	if err != nil {
		panic(err)
	}

	return t
}

// SliceAs converts every element of in to Out. The first mismatching
// element aborts the conversion.
func SliceAs[Out, In any](in []In) ([]Out, error) {
	out := make([]Out, len(in))
	for i := range in {
		o, err := As[Out](any(in[i]))
		if err != nil {
			return nil, fmt.Errorf("ensure: element %d: %w", i, err)
		}

		out[i] = o
	}

	return out, nil
}
