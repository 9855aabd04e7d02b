package game

import (
	"fmt"
	"strings"
)

// RunStats tallies what happened during one run.
type RunStats struct {
	Frames    int
	ElapsedMs int64

	KilledBySurvivors int // population survivors
	KilledByLegacy    int // the lone hunter
	KilledByLinks     int
	LinksLost         int

	ZombieBirths   int
	LinkBirths     int
	LinkSpawns     int
	SurvivorSpawns int

	PeakZombies int
	PeakLinks   int

	FinalFrameRate int
	Ended          bool
	EndedAtMs      int64
}

// ZombiesKilled is the total across every killer.
func (r RunStats) ZombiesKilled() int {
	return r.KilledBySurvivors + r.KilledByLegacy + r.KilledByLinks
}

func (r *RunStats) observe(zombies, links int) {
	if zombies > r.PeakZombies {
		r.PeakZombies = zombies
	}
	if links > r.PeakLinks {
		r.PeakLinks = links
	}
}

// Summary formats the stats as a short multi-line report.
func (r RunStats) Summary() string {
	var sb strings.Builder
	outcome := "running"
	if r.Ended {
		outcome = fmt.Sprintf("cleared at %.1fs", float64(r.EndedAtMs)/1000)
	}
	fmt.Fprintf(&sb, "Zombie Life run: %s\n", outcome)
	fmt.Fprintf(&sb, "frames=%d elapsed=%.1fs final_rate=%dfps\n", r.Frames, float64(r.ElapsedMs)/1000, r.FinalFrameRate)
	fmt.Fprintf(&sb, "zombies killed=%d (survivors=%d lone=%d links=%d)\n",
		r.ZombiesKilled(), r.KilledBySurvivors, r.KilledByLegacy, r.KilledByLinks)
	fmt.Fprintf(&sb, "links lost=%d\n", r.LinksLost)
	fmt.Fprintf(&sb, "births zombies=%d links=%d\n", r.ZombieBirths, r.LinkBirths)
	fmt.Fprintf(&sb, "spawns links=%d survivors=%d\n", r.LinkSpawns, r.SurvivorSpawns)
	fmt.Fprintf(&sb, "peak zombies=%d links=%d\n", r.PeakZombies, r.PeakLinks)
	return sb.String()
}
