package game

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const audioSampleRate = 44100

// Music is a looping background track. A nil *Music is a silent no-op.
type Music struct {
	player *audio.Player
}

// StartMusic loops the MP3 at path at the given volume in [0,1]. A missing or
// undecodable file only logs a warning and returns nil.
func StartMusic(path string, volume float64) *Music {
	m, err := startMusic(path, volume)
	if err != nil {
		log.Printf("warning: %v, running without music", err)
		return nil
	}
	return m
}

func startMusic(path string, volume float64) (*Music, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read music: %w", err)
	}
	stream, err := mp3.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(audioSampleRate)
	}
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	player.SetVolume(clampVolume(volume))
	player.Play()
	return &Music{player: player}, nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Close stops playback.
func (m *Music) Close() error {
	if m == nil || m.player == nil {
		return nil
	}
	return m.player.Close()
}
