// internal/wizard/wizard.go
package wizard

// Step progression for the multi-step setup flows (campaign cloning, A/B
// test setup). Steps are a zero-based index; moves never leave the range.

// Advance moves one step forward, clamped to the last step.
func Advance(step, last int) int {
	if step >= last {
		return last
	}
	return step + 1
}

// Retreat moves one step back, clamped to the first step.
func Retreat(step int) int {
	if step <= 0 {
		return 0
	}
	return step - 1
}

// Jump moves directly to target (indicator click), clamped into [0,last].
func Jump(target, last int) int {
	if target < 0 {
		return 0
	}
	if target > last {
		return last
	}
	return target
}
