package rng

// Roll rolls one die with the given number of sides and returns a value in
// [1, sides]. It panics if sides <= 0.
func (r *Rand) Roll(sides int) int {
	return r.Intn(sides) + 1
}

// RollN rolls dice dice with sides sides each and returns their sum, the
// classic NdX notation (RollN(3, 6) is 3d6). Zero dice sum to zero.
//
// Complexity: O(dice).
func (r *Rand) RollN(dice, sides int) int {
	sum := 0
	for i := 0; i < dice; i++ {
		sum += r.Roll(sides)
	}

	return sum
}
