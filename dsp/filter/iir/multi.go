package iir

import "sync"

// ApplyMulti filters each channel row of x independently with fresh zero
// states. Channels are processed in parallel: rows are disjoint, so no
// synchronisation beyond the final join is needed.
func ApplyMulti(c Coefficients, x [][]float64) ([][]float64, error) {
	norm, err := c.Normalize()
	if err != nil {
		return nil, err
	}

	y := make([][]float64, len(x))

	var wg sync.WaitGroup
	for r := range x {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			row := make([]float64, len(x[r]))
			state := make([]float64, norm.Order())
			applyDF2T(norm, row, x[r], state)
			y[r] = row
		}(r)
	}
	wg.Wait()

	return y, nil
}

// ApplyMultiWithState filters each channel row of x with its own state row,
// mutating the states in place. len(states) must equal len(x) and each state
// must have length c.Order() after normalization.
func ApplyMultiWithState(c Coefficients, x, states [][]float64) ([][]float64, error) {
	norm, err := c.Normalize()
	if err != nil {
		return nil, err
	}
	if len(states) != len(x) {
		return nil, ErrChannelCount
	}
	for _, s := range states {
		if len(s) != norm.Order() {
			return nil, ErrStateLength
		}
	}

	y := make([][]float64, len(x))

	var wg sync.WaitGroup
	for r := range x {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			row := make([]float64, len(x[r]))
			applyDF2T(norm, row, x[r], states[r])
			y[r] = row
		}(r)
	}
	wg.Wait()

	return y, nil
}
