package opt

import "strings"

var ordinals = [...]string{"first", "second", "third", "fourth", "fifth"}

const unspecifiedLabel = "<unspecified value>"

// Missing describes which positions of a combinator call were absent. It is
// handed to the OnMissing handler and is never empty on that path.
type Missing struct {
	positions []int
}

// Positions returns the zero-based absent positions in ascending order.
func (m Missing) Positions() []int {
	out := make([]int, len(m.positions))
	copy(out, m.positions)
	return out
}

// Describe builds a human-readable summary such as "first and third values
// are missing". Each position is labeled by the caller-supplied name at that
// index if names covers it with a non-empty entry, else by the built-in
// ordinal (first..fifth), else by "<unspecified value>". A partial names
// list falls back per position.
func (m Missing) Describe(names ...string) string {
	if len(m.positions) == 0 {
		return ""
	}

	labels := make([]string, len(m.positions))
	for i, pos := range m.positions {
		labels[i] = positionLabel(pos, names)
	}

	var b strings.Builder
	b.WriteString(strings.Join(labels, " and "))
	if len(m.positions) == 1 {
		b.WriteString(" value is missing")
	} else {
		b.WriteString(" values are missing")
	}
	return b.String()
}

func positionLabel(pos int, names []string) string {
	if pos < len(names) && names[pos] != "" {
		return names[pos]
	}
	if pos < len(ordinals) {
		return ordinals[pos]
	}
	return unspecifiedLabel
}

// absentOf collects the absent positions of the given presence flags and
// reports whether all inputs were present.
func absentOf(present ...bool) (Missing, bool) {
	var positions []int
	for i, p := range present {
		if !p {
			positions = append(positions, i)
		}
	}
	return Missing{positions: positions}, len(positions) == 0
}
