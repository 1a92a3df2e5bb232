package inspect

// Capability is the classification verdict for one type. The values are
// ordered by strength: a mutable sequence is always also a const
// sequence, never the reverse.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityConst
	CapabilityMutable
)

func (c Capability) String() string {
	switch c {
	case CapabilityConst:
		return "const"
	case CapabilityMutable:
		return "mutable"
	default:
		return "none"
	}
}

// Satisfies reports whether a type classified as c meets the demanded
// capability. Widening applies: mutable satisfies a const demand. A
// none demand is only met by types that are not sequences at all.
func (c Capability) Satisfies(want Capability) bool {
	if want == CapabilityNone {
		return c == CapabilityNone
	}
	return c >= want
}
