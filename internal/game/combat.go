package game

// --- Hunters vs zombies ---

// HuntZombies removes every zombie within radius of center on both axes and
// returns how many died. The hunter itself is never harmed.
func HuntZombies(zombies *Population[Vec], center Vec, radius float64) int {
	return zombies.RemoveIf(func(z Vec) bool {
		return Near(z, center, radius)
	})
}

// huntWithSurvivors runs HuntZombies once per survivor, in order, each with
// the survivor's current size as its kill radius.
func huntWithSurvivors(survivors *Population[Survivor], zombies *Population[Vec]) int {
	killed := 0
	for _, s := range survivors.Items() {
		killed += HuntZombies(zombies, s.Pos, s.Size)
	}
	return killed
}

// --- Links vs zombies ---

// Skirmish resolves every colliding (link, zombie) pair, links in the outer
// loop over a snapshot taken on entry. Each link only meets zombies still
// alive when its turn comes. Each colliding pair draws once: below
// linkDeathProb the link dies, otherwise the zombie. A dead link keeps its
// snapshot slot, so it can still take zombies down in later pairs.
func Skirmish(links, zombies *Population[Vec], threshold, linkDeathProb float64, rng Rand) (linksLost, zombiesLost int) {
	ls := links.Snapshot()
	zs := zombies.Snapshot()
	deadLinks := make([]bool, len(ls))
	deadZombies := make([]bool, len(zs))

	for i, l := range ls {
		for j, z := range zs {
			if deadZombies[j] || !Near(l, z, threshold) {
				continue
			}
			if rng.Float64() < linkDeathProb {
				if !deadLinks[i] {
					deadLinks[i] = true
					linksLost++
				}
			} else {
				deadZombies[j] = true
				zombiesLost++
			}
		}
	}

	if linksLost > 0 {
		links.removeMarked(deadLinks)
	}
	if zombiesLost > 0 {
		zombies.removeMarked(deadZombies)
	}
	return linksLost, zombiesLost
}
