package vm

import "strconv"

// Value represents a Brook runtime value.
//
// This build of the machine is numeric only: every value is a
// double-precision float, stored and passed by value. Widening Value
// into a tagged representation is the designated extension point for
// further types.
type Value float64

// String formats the value the way the runtime prints it.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
