package eventproto

// sequenceOrder classifies an incoming sequence number relative to the
// sequence expected next.
type sequenceOrder int

const (
	sequenceEqual sequenceOrder = iota
	sequenceOlder
	sequenceNewer
)

// compareSequence implements the wrap-aware comparison: diff = (incoming -
// expected) mod 2^16; diff > 0x7FFF is older (the incoming value is "behind"
// by wraparound), otherwise newer. Equal is reported separately so duplicate
// detection doesn't depend on diff == 0 falling on either side.
func compareSequence(expected, incoming uint16) sequenceOrder {
	if expected == incoming {
		return sequenceEqual
	}
	diff := incoming - expected
	if diff > 0x7FFF {
		return sequenceOlder
	}
	return sequenceNewer
}
