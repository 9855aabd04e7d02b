package game

// Reproduce gives every close pair of members a chance to add one newborn
// at a random, unclamped point on the screen. It returns the number born.
//
// The cap is checked once on entry: a population already at the limit is left
// alone, but one call may overshoot it. Rows are taken over the members
// present on entry; each row's partners run up to the length at the start
// of that row, so newborns can pair with later rows.
func Reproduce(pop *Population[Vec], limit int, threshold, width, height, prob float64, rng Rand) int {
	if pop.Len() >= limit {
		return 0
	}
	born := 0
	n := pop.Len()
	for i := 0; i < n; i++ {
		end := pop.Len()
		for j := i + 1; j < end; j++ {
			if !Near(pop.At(i), pop.At(j), threshold) {
				continue
			}
			if rng.Float64() < prob {
				pop.Add(RandomPoint(rng, width, height))
				born++
			}
		}
	}
	return born
}
