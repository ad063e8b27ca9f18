package sortable

import "facette.io/natsort"

// String orders strings byte-wise, the same way the < operator does.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString orders strings the way a human would read them, treating runs
// of digits as numbers: "item2" sorts before "item10".
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	if s == other {
		return false
	}

	return natsort.Compare(string(s), string(other))
}
