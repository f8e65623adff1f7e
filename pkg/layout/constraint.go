package layout

import (
	"fmt"
	"math"
)

// Constraint is the interface satisfied by all layout constraint types.
// The marker method prevents external implementations.
type Constraint interface {
	// Apply returns the length this constraint asks for out of length
	// available cells, looked at in isolation from any other constraint.
	Apply(length uint16) uint16
	String() string
	constraint() // sealed marker
}

// Percentage asks for Value percent of the available space. Values above
// 100 are accepted and ask for more than is available.
type Percentage struct{ Value uint16 }

func (Percentage) constraint() {}

// Apply returns length*Value/100, truncated, saturating at 65535.
func (p Percentage) Apply(length uint16) uint16 {
	return clampUint16(uint64(length) * uint64(p.Value) / 100)
}

func (p Percentage) String() string { return fmt.Sprintf("Percentage(%d)", p.Value) }

// Ratio asks for Num/Den of the available space. Den must not be zero.
type Ratio struct{ Num, Den uint32 }

func (Ratio) constraint() {}

// Apply returns length*Num/Den, truncated, saturating at 65535.
// It panics if Den is zero.
func (r Ratio) Apply(length uint16) uint16 {
	r.mustBeValid()
	return clampUint16(uint64(length) * uint64(r.Num) / uint64(r.Den))
}

func (r Ratio) String() string { return fmt.Sprintf("Ratio(%d/%d)", r.Num, r.Den) }

func (r Ratio) mustBeValid() {
	if r.Den == 0 {
		panic(fmt.Sprintf("layout: %s has a zero denominator", r))
	}
}

// Length asks for exactly Value cells.
type Length struct{ Value uint16 }

func (Length) constraint() {}

// Apply returns min(length, Value).
func (l Length) Apply(length uint16) uint16 { return min(length, l.Value) }

func (l Length) String() string { return fmt.Sprintf("Length(%d)", l.Value) }

// Max asks for at most Value cells, and prefers exactly Value when there
// is room for it.
type Max struct{ Value uint16 }

func (Max) constraint() {}

// Apply returns min(length, Value).
func (m Max) Apply(length uint16) uint16 { return min(length, m.Value) }

func (m Max) String() string { return fmt.Sprintf("Max(%d)", m.Value) }

// Min asks for at least Value cells, and prefers staying close to Value
// over absorbing surplus space that another constraint wants.
type Min struct{ Value uint16 }

func (Min) constraint() {}

// Apply returns max(length, Value).
func (m Min) Apply(length uint16) uint16 { return max(length, m.Value) }

func (m Min) String() string { return fmt.Sprintf("Min(%d)", m.Value) }

func clampUint16(v uint64) uint16 {
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
