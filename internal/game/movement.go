package game

// Wander moves p by U(-speed, speed)·cell on each axis independently, then
// clamps it to the screen using the cell as the footprint.
func Wander(p Vec, speed, cell, width, height float64, rng Rand) Vec {
	p.X += uniform(rng, speed) * cell
	p.Y += uniform(rng, speed) * cell
	return Clamp(p, width, height, cell)
}

// wanderAll moves every member of a plain population at the same speed.
func wanderAll(pop *Population[Vec], speed, cell, width, height float64, rng Rand) {
	pop.Each(func(_ int, v *Vec) {
		*v = Wander(*v, speed, cell, width, height, rng)
	})
}

// wanderSurvivors moves every survivor at its own speed.
func wanderSurvivors(pop *Population[Survivor], cell, width, height float64, rng Rand) {
	pop.Each(func(_ int, s *Survivor) {
		s.Pos = Wander(s.Pos, s.Speed, cell, width, height, rng)
	})
}
