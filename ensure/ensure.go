// Package ensure provides runtime guards for conditions the type system
// cannot prove on its own: exhaustiveness of switches over closed sets,
// presence of optional values, and checked coercion of dynamically typed
// values.
package ensure

import "fmt"

// Unreachable panics unconditionally. Place it in the default branch of a
// switch over a closed set: reaching it means either a new member was added
// without extending the switch, or external data violated the type
// assumption. An optional message overrides the default one, which embeds
// the offending value.
func Unreachable(v any, msg ...string) {
	if len(msg) > 0 {
		panic(msg[0])
	}

	panic(fmt.Sprintf("ensure: reached unreachable branch with value %#v", v))
}

// NotNil returns p unchanged, panicking when p is nil.
func NotNil[T any](p *T, msg ...string) *T {
	if p == nil {
		if len(msg) > 0 {
			panic(msg[0])
		}

		panic("ensure: value is unexpectedly nil")
	}

	return p
}

// Present returns v unchanged, panicking when ok is false. It converts the
// comma-ok form of map lookups and type assertions into a guaranteed value.
// Zero values pass through untouched as long as ok is true.
func Present[T any](v T, ok bool, msg ...string) T {
	if !ok {
		if len(msg) > 0 {
			panic(msg[0])
		}

		panic("ensure: value is unexpectedly missing")
	}

	return v
}
