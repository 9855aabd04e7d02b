package game

import (
	"errors"
	"fmt"
)

// Screen and grid.
const (
	screenWidth  = 800
	screenHeight = 800
	cellSize     = 60 // grid cell: movement step unit, proximity threshold, clamp footprint
	spriteSize   = 40 // on-screen size of plain sprites
)

// Agent speeds, in cells per frame (upper bound of the uniform step).
const (
	legacySurvivorSpeed = 0.6
	zombieSpeed         = 0.2
	linkSpeed           = 0.4
	survivorAgentSpeed  = 1.0
)

// Populations.
const (
	initialZombies = 50
	initialLinks   = 40 // exceeds maxLinks; kept as-is, reported at startup
	maxZombies     = 40
	maxLinks       = 30

	reproductionProb  = 0.25
	linkDeathProb     = 0.5 // draw below this kills the link, otherwise the zombie
	survivorStartSize = 40
	survivorGrowth    = 30
)

// Escalation, all times in milliseconds.
const (
	growthPeriodMs        = 2000
	ratePeriodMs          = 2000
	linkSpawnPeriodMs     = 1000
	survivorSpawnPeriodMs = 5000
	endHoldMs             = 5000

	initialFrameRate = 30
	frameRateStep    = 10
)

// Optional asset tuning.
const (
	MusicVolume = 0.1 // background track volume in [0,1]
	fontSize    = 24
)

// Config holds every tunable of a run. DefaultConfig returns the values the
// interactive game uses; tests and the headless report override fields.
type Config struct {
	Width, Height float64
	CellSize      float64
	SpriteSize    float64

	LegacySpeed float64
	ZombieSpeed float64
	LinkSpeed   float64

	InitialZombies int
	InitialLinks   int
	MaxZombies     int
	MaxLinks       int

	ReproductionProb float64
	LinkDeathProb    float64

	SurvivorStartSize float64
	SurvivorSpeed     float64
	SurvivorGrowth    float64

	GrowthPeriodMs        int64
	RatePeriodMs          int64
	LinkSpawnPeriodMs     int64
	SurvivorSpawnPeriodMs int64
	EndHoldMs             int64

	InitialFrameRate int
	FrameRateStep    int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Width:                 screenWidth,
		Height:                screenHeight,
		CellSize:              cellSize,
		SpriteSize:            spriteSize,
		LegacySpeed:           legacySurvivorSpeed,
		ZombieSpeed:           zombieSpeed,
		LinkSpeed:             linkSpeed,
		InitialZombies:        initialZombies,
		InitialLinks:          initialLinks,
		MaxZombies:            maxZombies,
		MaxLinks:              maxLinks,
		ReproductionProb:      reproductionProb,
		LinkDeathProb:         linkDeathProb,
		SurvivorStartSize:     survivorStartSize,
		SurvivorSpeed:         survivorAgentSpeed,
		SurvivorGrowth:        survivorGrowth,
		GrowthPeriodMs:        growthPeriodMs,
		RatePeriodMs:          ratePeriodMs,
		LinkSpawnPeriodMs:     linkSpawnPeriodMs,
		SurvivorSpawnPeriodMs: survivorSpawnPeriodMs,
		EndHoldMs:             endHoldMs,
		InitialFrameRate:      initialFrameRate,
		FrameRateStep:         frameRateStep,
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: screen %vx%v", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellSize <= 0 || c.CellSize > c.Width || c.CellSize > c.Height {
		return fmt.Errorf("%w: cell size %v", ErrInvalidConfig, c.CellSize)
	}
	if c.ReproductionProb < 0 || c.ReproductionProb > 1 {
		return fmt.Errorf("%w: reproduction probability %v", ErrInvalidConfig, c.ReproductionProb)
	}
	if c.LinkDeathProb < 0 || c.LinkDeathProb > 1 {
		return fmt.Errorf("%w: link death probability %v", ErrInvalidConfig, c.LinkDeathProb)
	}
	if c.InitialZombies < 0 || c.InitialLinks < 0 {
		return fmt.Errorf("%w: negative initial population", ErrInvalidConfig)
	}
	if c.InitialFrameRate <= 0 {
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.InitialFrameRate)
	}
	if c.FrameRateStep < 0 {
		return fmt.Errorf("%w: frame rate step %d", ErrInvalidConfig, c.FrameRateStep)
	}
	for _, p := range []int64{c.GrowthPeriodMs, c.RatePeriodMs, c.LinkSpawnPeriodMs, c.SurvivorSpawnPeriodMs} {
		if p <= 0 {
			return fmt.Errorf("%w: timer period %dms", ErrInvalidConfig, p)
		}
	}
	return nil
}

// Inconsistencies lists tuning combinations that are legal but suspicious.
// They are reported, never corrected.
func (c Config) Inconsistencies() []string {
	var out []string
	if c.InitialLinks > c.MaxLinks {
		out = append(out, fmt.Sprintf("initial links (%d) exceed link cap (%d)", c.InitialLinks, c.MaxLinks))
	}
	if c.InitialZombies > c.MaxZombies {
		out = append(out, fmt.Sprintf("initial zombies (%d) exceed zombie cap (%d)", c.InitialZombies, c.MaxZombies))
	}
	return out
}
