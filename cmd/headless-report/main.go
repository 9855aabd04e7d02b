package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Garsondee/Zombie-Life/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	endFrame int // -1 when zombies survived the frame budget

	firstLinkKillFrame   int
	firstSurvivorSpawnMs int
	firstGrowthMs        int

	stats game.RunStats

	growthEvents int
	rateEvents   int
	finalRate    int
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&frames, "frames", 5000, "frame budget per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}

	fmt.Printf("=== Headless Zombie Life Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d\n\n", runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runOnce(i+1, seed, frames)
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func runOnce(runIndex int, seed int64, frames int) runStats {
	ts := game.NewTestSim(game.WithSeed(seed))
	end := ts.RunUntilEnded(frames)

	entries := ts.SimLog.Entries()
	return runStats{
		runIndex:             runIndex,
		seed:                 seed,
		endFrame:             end,
		firstLinkKillFrame:   firstFrame(entries, "combat", "zombie_killed", "by links"),
		firstSurvivorSpawnMs: firstElapsed(entries, "spawn", "survivor"),
		firstGrowthMs:        firstElapsed(entries, "escalate", "growth"),
		stats:                ts.Sim.Stats(),
		growthEvents:         ts.SimLog.CountCategory("escalate", "growth"),
		rateEvents:           ts.SimLog.CountCategory("escalate", "rate"),
		finalRate:            ts.Sim.FrameRate,
	}
}

func firstFrame(entries []game.Event, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Frame
		}
	}
	return -1
}

func firstElapsed(entries []game.Event, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return int(e.ElapsedMs)
		}
	}
	return -1
}

func printRun(rs runStats) {
	st := rs.stats
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if rs.endFrame >= 0 {
		fmt.Printf("outcome: cleared frame=%d elapsed=%.1fs\n", rs.endFrame, float64(st.EndedAtMs)/1000)
	} else {
		fmt.Printf("outcome: unresolved zombies_left_peak=%d\n", st.PeakZombies)
	}
	fmt.Printf("phase_markers: first_link_kill_frame=%d first_survivor_spawn_ms=%d first_growth_ms=%d\n",
		rs.firstLinkKillFrame, rs.firstSurvivorSpawnMs, rs.firstGrowthMs)
	fmt.Printf("kills: survivors=%d lone=%d links=%d links_lost=%d\n",
		st.KilledBySurvivors, st.KilledByLegacy, st.KilledByLinks, st.LinksLost)
	fmt.Printf("births: zombies=%d links=%d spawns: links=%d survivors=%d\n",
		st.ZombieBirths, st.LinkBirths, st.LinkSpawns, st.SurvivorSpawns)
	fmt.Printf("escalation: growth=%d rate=%d final_rate=%dfps\n", rs.growthEvents, rs.rateEvents, rs.finalRate)
	fmt.Printf("peaks: zombies=%d links=%d\n\n", st.PeakZombies, st.PeakLinks)
}

type aggregate struct {
	runs        int
	cleared     int
	endFrames   []int
	killShare   [3]float64 // survivors, lone, links
	peakZombies int
	peakLinks   int
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all)}
	var kills [3]int
	total := 0
	for _, rs := range all {
		st := rs.stats
		if rs.endFrame >= 0 {
			agg.cleared++
			agg.endFrames = append(agg.endFrames, rs.endFrame)
		}
		kills[0] += st.KilledBySurvivors
		kills[1] += st.KilledByLegacy
		kills[2] += st.KilledByLinks
		total += st.ZombiesKilled()
		agg.peakZombies += st.PeakZombies
		agg.peakLinks += st.PeakLinks
	}
	if total > 0 {
		for i, k := range kills {
			agg.killShare[i] = float64(k) / float64(total)
		}
	}
	return agg
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d cleared=%d (%.0f%%)\n", agg.runs, agg.cleared, 100*avg(agg.cleared, agg.runs))
	fmt.Printf("avg_end_frame=%s\n", avgFrameString(agg.endFrames))
	fmt.Printf("kill_share: survivors=%.0f%% lone=%.0f%% links=%.0f%%\n",
		100*agg.killShare[0], 100*agg.killShare[1], 100*agg.killShare[2])
	fmt.Printf("avg_peaks: zombies=%.1f links=%.1f\n", avg(agg.peakZombies, agg.runs), avg(agg.peakLinks, agg.runs))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
