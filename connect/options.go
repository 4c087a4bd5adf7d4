package connect

// OptionEnum is a bit set of binding behavior switches.
type OptionEnum int

const (
	OptionPure       OptionEnum = 1 << iota // skip Render when recomputed props equal the previous ones
	OptionDebugProps                        // dump computed props to the store logger at Debug

	OptionNone OptionEnum = 0 // no options selected
)

// Has reports whether all bits of flag are set.
func (o OptionEnum) Has(flag OptionEnum) bool { return o&flag == flag }
