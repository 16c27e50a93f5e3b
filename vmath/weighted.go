package vmath

// WeightedChoice returns an index into weights drawn proportionally to weight
// Non-positive total falls back to the last index; empty input returns -1
func WeightedChoice(weights []float64, rng *FastRand) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return len(weights) - 1
	}

	roll := rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// RandomIndex returns uniform index into a collection of length n, -1 if empty
func RandomIndex(n int, rng *FastRand) int {
	if n <= 0 {
		return -1
	}
	return rng.Intn(n)
}
