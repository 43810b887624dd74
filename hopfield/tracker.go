// SPDX-License-Identifier: MIT

package hopfield

import "gonum.org/v1/gonum/floats"

// EnergyTracker is an append-only log of network energies, one per iteration.
// The zero value is ready to use. It is not safe for concurrent use.
type EnergyTracker struct {
	values []float64
}

// Record appends e.
func (t *EnergyTracker) Record(e float64) { t.values = append(t.values, e) }

// Reset clears the history, keeping the allocation.
func (t *EnergyTracker) Reset() { t.values = t.values[:0] }

// Len reports how many energies were recorded since the last Reset.
func (t *EnergyTracker) Len() int { return len(t.values) }

// Last returns the most recent energy; ok is false when nothing was recorded.
func (t *EnergyTracker) Last() (e float64, ok bool) {
	if len(t.values) == 0 {
		return 0, false
	}

	return t.values[len(t.values)-1], true
}

// Min returns the lowest recorded energy; ok is false when empty.
func (t *EnergyTracker) Min() (e float64, ok bool) {
	if len(t.values) == 0 {
		return 0, false
	}

	return floats.Min(t.values), true
}

// Values returns a copy of the history in recording order.
func (t *EnergyTracker) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)

	return out
}
